// Package decls converts data and type synonym declarations, groups them
// into mutually recursive clusters, and emits the target sentences for
// each cluster.
package decls

import (
	"github.com/lhaig/hs2v/internal/convert"
	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/freevars"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
	"github.com/lhaig/hs2v/internal/rename"
)

// SynBody is a converted type synonym.
type SynBody struct {
	Name   string
	Params []*gallina.Binder
	Kind   gallina.Term // nil when absent
	Def    gallina.Term
}

// Declaration is a converted type-level declaration: exactly one of Ind
// and Syn is set.
type Declaration struct {
	Ind *gallina.IndBody
	Syn *SynBody
}

// Name returns the target name the declaration introduces
func (d Declaration) Name() string {
	if d.Ind != nil {
		return d.Ind.Name
	}
	return d.Syn.Name
}

// Params returns the declaration's parameter binders
func (d Declaration) Params() []*gallina.Binder {
	if d.Ind != nil {
		return d.Ind.Params
	}
	return d.Syn.Params
}

// FreeVars returns the identifiers the declaration references
func (d Declaration) FreeVars() freevars.Set {
	if d.Ind != nil {
		return freevars.IndBody(d.Ind)
	}
	return freevars.Binders(d.Syn.Params, freevars.Terms(d.Syn.Kind, d.Syn.Def))
}

// ConvertData converts a data declaration into an inductive body. Its
// constructors are registered in the renaming table first, so later
// conversions see their target names.
func ConvertData(c *convert.Converter, d *hsast.DataDecl) (Declaration, error) {
	for _, con := range d.Cons {
		c.Renames.RegisterConstructor(con.Name)
	}

	name := c.Renames.Lookup(rename.TypeNS, d.Name)
	params, err := c.TyVarBinders(d.Params)
	if err != nil {
		return Declaration{}, err
	}
	body := &gallina.IndBody{Name: name, Params: params, Type: gallina.TypeSort()}
	if d.Kind != nil {
		kind, err := c.Type(d.Kind)
		if err != nil {
			return Declaration{}, err
		}
		body.Type = kind
	}

	result := gallina.V(name)
	args := make([]gallina.Term, 0, len(params))
	for _, p := range params {
		args = append(args, gallina.V(p.Name))
	}
	resultType := gallina.Apply(result, args...)

	for _, con := range d.Cons {
		ctor, err := convertCon(c, con, resultType)
		if err != nil {
			return Declaration{}, err
		}
		body.Constructors = append(body.Constructors, ctor)
	}
	return Declaration{Ind: body}, nil
}

func convertCon(c *convert.Converter, con *hsast.ConDecl, result gallina.Term) (*gallina.Constructor, error) {
	line, col := con.Pos()
	if len(con.Context) > 0 {
		return nil, diagnostic.Unsupported("constructor contexts").At(line, col)
	}
	if con.Details == hsast.RecordCon {
		return nil, diagnostic.Unsupported("record syntax in data declarations").At(line, col)
	}
	binders, err := c.TyVarBinders(con.ExVars)
	if err != nil {
		return nil, err
	}
	for _, b := range binders {
		b.Implicit = true
	}
	fields := make([]gallina.Term, 0, len(con.Fields))
	for _, f := range con.Fields {
		ft, err := c.Type(f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ft)
	}
	return &gallina.Constructor{
		Name:    c.Renames.Lookup(rename.ExprNS, con.Name),
		Binders: binders,
		Type:    gallina.Arrows(fields, result),
	}, nil
}

// ConvertSynonym converts a type synonym declaration
func ConvertSynonym(c *convert.Converter, d *hsast.SynonymDecl) (Declaration, error) {
	params, err := c.TyVarBinders(d.Params)
	if err != nil {
		return Declaration{}, err
	}
	def, err := c.Type(d.Body)
	if err != nil {
		return Declaration{}, err
	}
	return Declaration{Syn: &SynBody{
		Name:   c.Renames.Lookup(rename.TypeNS, d.Name),
		Params: params,
		Def:    def,
	}}, nil
}
