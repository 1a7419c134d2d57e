package convert

import (
	"fmt"

	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/freevars"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

// Definition is one converted value binding.
type Definition struct {
	Name       string
	Binders    []*gallina.Binder // quantified type variables from the signature
	ResultType gallina.Term      // nil without a signature
	Body       gallina.Term
}

// Sentence renders the definition as a top-level sentence.
func (d *Definition) Sentence() gallina.Sentence {
	return &gallina.DefinitionSentence{
		Name:    d.Name,
		Binders: d.Binders,
		Type:    d.ResultType,
		Body:    d.Body,
	}
}

// Let wraps body in a local definition of d.
func (d *Definition) Let(body gallina.Term) gallina.Term {
	return &gallina.Let{
		Name:    d.Name,
		Binders: d.Binders,
		Type:    d.ResultType,
		Value:   d.Body,
		Body:    body,
	}
}

// Binding converts one binding with its optional signature.
func (c *Converter) Binding(sig hsast.Type, b *hsast.Binding) (*Definition, error) {
	def, err := c.binding(sig, b)
	if err != nil {
		return nil, at(b, err)
	}
	return def, nil
}

func (c *Converter) binding(sig hsast.Type, b *hsast.Binding) (*Definition, error) {
	def := &Definition{Name: c.valueName(b.Name)}
	if sig != nil {
		ty, err := c.Type(sig)
		if err != nil {
			return nil, err
		}
		tvs, rest := gallina.SplitForall(ty)
		for _, tv := range tvs {
			def.Binders = append(def.Binders, &gallina.Binder{Name: tv.Name, Type: tv.Type, Implicit: true})
		}
		def.ResultType = rest
	}

	if len(b.Equations) == 0 {
		return nil, diagnostic.Malformed("binding without equations")
	}

	if allNullary(b.Equations) {
		if len(b.Equations) != 1 {
			return nil, diagnostic.Malformed("malformed multi-match variable definition")
		}
		body, err := c.GuardedRHSs(b.Equations[0].RHS)
		if err != nil {
			return nil, err
		}
		def.Body = body
		return def, nil
	}
	if len(b.Equations[0].Patterns) == 0 {
		return nil, diagnostic.Malformed("equations with differing numbers of arguments")
	}

	fn, err := c.function(b.Equations)
	if err != nil {
		return nil, err
	}
	if freevars.Term(fn).Has(def.Name) {
		def.Body = &gallina.Fix{Name: def.Name, Binders: fn.Binders, Body: fn.Body}
	} else {
		def.Body = fn
	}
	return def, nil
}

func allNullary(eqs []*hsast.Equation) bool {
	for _, eq := range eqs {
		if len(eq.Patterns) > 0 {
			return false
		}
	}
	return true
}

// Function converts the equations of a function, lambda or \case into a
// function literal over synthesized arguments.
func (c *Converter) Function(eqs []*hsast.Equation) (gallina.Term, error) {
	fn, err := c.function(eqs)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

func (c *Converter) function(eqs []*hsast.Equation) (*gallina.Fun, error) {
	if len(eqs) == 0 {
		return nil, diagnostic.Malformed("function without equations")
	}
	arity := len(eqs[0].Patterns)

	match := &gallina.Match{}
	for _, eq := range eqs {
		conv := &gallina.Equation{}
		for _, p := range eq.Patterns {
			pat, err := c.Pattern(p)
			if err != nil {
				return nil, err
			}
			conv.Patterns = append(conv.Patterns, pat)
		}
		body, err := c.GuardedRHSs(eq.RHS)
		if err != nil {
			return nil, at(eq, err)
		}
		conv.Body = body
		match.Equations = append(match.Equations, conv)
	}

	args := freshArgs(arity, freevars.Names(match))
	binders := make([]*gallina.Binder, arity)
	for i, a := range args {
		binders[i] = gallina.ExplicitBinder(a)
		match.Scrutinees = append(match.Scrutinees, gallina.V(a))
	}

	// A single equation over plain variables needs no match: its
	// variables are the arguments.
	if len(match.Equations) == 1 {
		if m, ok := variableRenaming(match.Equations[0].Patterns, args); ok {
			return &gallina.Fun{Binders: binders, Body: gallina.Rename(match.Equations[0].Body, m)}, nil
		}
	}
	return &gallina.Fun{Binders: binders, Body: match}, nil
}

// variableRenaming maps each variable pattern to its argument when every
// pattern is a variable or a wildcard
func variableRenaming(pats []gallina.Pattern, args []string) (map[string]string, bool) {
	if len(pats) != len(args) {
		return nil, false
	}
	m := make(map[string]string, len(pats))
	for i, p := range pats {
		switch n := p.(type) {
		case *gallina.VarPat:
			m[n.Name] = args[i]
		case *gallina.WildPat:
		default:
			return nil, false
		}
	}
	return m, true
}

// freshArgs picks n argument names that occur nowhere in avoid
func freshArgs(n int, avoid freevars.Set) []string {
	args := make([]string, n)
	for i := range args {
		name := fmt.Sprintf("arg_%d__", i)
		for avoid.Has(name) {
			name += "_"
		}
		args[i] = name
	}
	return args
}

// RecoveryHandler replaces a value declaration that failed to convert with
// the sentences it returns. Returning an error aborts the batch.
type RecoveryHandler func(decl *hsast.ValueDecl, err error) ([]gallina.Sentence, error)

// Bindings converts a batch of value declarations in order. Without a
// handler the first failure aborts the batch.
func (c *Converter) Bindings(decls []*hsast.ValueDecl, onError RecoveryHandler) ([]gallina.Sentence, error) {
	var out []gallina.Sentence
	for _, d := range decls {
		def, err := c.Binding(d.Signature, d.Binding)
		if err != nil {
			if onError == nil {
				return nil, fmt.Errorf("converting %s: %w", d.Binding.Name, err)
			}
			stub, herr := onError(d, err)
			if herr != nil {
				return nil, herr
			}
			out = append(out, stub...)
			continue
		}
		out = append(out, def.Sentence())
	}
	return out, nil
}

// AxiomStub is the standard recovery: a comment describing the failure
// followed by an axiom of type `forall {a : Type}, a` carrying the
// binding's name.
func (c *Converter) AxiomStub(decl *hsast.ValueDecl, err error) ([]gallina.Sentence, error) {
	name := c.valueName(decl.Binding.Name)
	ty := &gallina.Forall{
		Binders: []*gallina.Binder{{Name: "a", Type: gallina.TypeSort(), Implicit: true}},
		Body:    gallina.V("a"),
	}
	return []gallina.Sentence{
		&gallina.CommentSentence{Text: fmt.Sprintf("Translating `%s' failed: %v", decl.Binding.Name, err)},
		&gallina.AxiomSentence{Name: name, Type: ty},
	}, nil
}
