package convert

import (
	"unicode"
	"unicode/utf8"

	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/freevars"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

// Type converts a type or kind
func (c *Converter) Type(t hsast.Type) (gallina.Term, error) {
	term, err := c.typ(t)
	if err != nil {
		return nil, at(t, err)
	}
	return term, nil
}

func (c *Converter) typ(t hsast.Type) (gallina.Term, error) {
	switch n := t.(type) {
	case *hsast.TyVar:
		return gallina.V(c.typeName(n.Name)), nil

	case *hsast.TyApp:
		f, err := c.Type(n.Func)
		if err != nil {
			return nil, err
		}
		arg, err := c.Type(n.Arg)
		if err != nil {
			return nil, err
		}
		return gallina.Apply(f, arg), nil

	case *hsast.TyFun:
		dom, err := c.Type(n.Arg)
		if err != nil {
			return nil, err
		}
		cod, err := c.Type(n.Result)
		if err != nil {
			return nil, err
		}
		return &gallina.Arrow{Dom: dom, Cod: cod}, nil

	case *hsast.TyPar:
		inner, err := c.Type(n.Type)
		if err != nil {
			return nil, err
		}
		return &gallina.Parens{Term: inner}, nil

	case *hsast.TyKindSig:
		ty, err := c.Type(n.Type)
		if err != nil {
			return nil, err
		}
		kind, err := c.Type(n.Kind)
		if err != nil {
			return nil, err
		}
		return &gallina.HasType{Term: ty, Type: kind}, nil

	case *hsast.TyLit:
		if n.Kind == hsast.TyStrLit {
			return &gallina.String{Value: n.Text}, nil
		}
		return OverLiteral(n.Num)

	case *hsast.TyWildcard:
		return &gallina.Underscore{}, nil

	case *hsast.TyList:
		elem, err := c.Type(n.Elem)
		if err != nil {
			return nil, err
		}
		return gallina.Apply(gallina.V(c.typeName("[]")), elem), nil

	case *hsast.TyTuple:
		return c.tupleType(n)

	case *hsast.TyForall:
		return c.forallType(n)

	case *hsast.TyBang:
		return c.Type(n.Type)

	case *hsast.TyQual:
		return nil, diagnostic.Unsupported("type class contexts")
	case *hsast.TyOp:
		return nil, diagnostic.Unsupported("binary type operators")
	case *hsast.TyEq:
		return nil, diagnostic.Unsupported("type equality")
	case *hsast.TyRecord:
		return nil, diagnostic.Unsupported("record types")
	case *hsast.TySplice:
		if n.Quasi {
			return nil, diagnostic.Unsupported("Template Haskell type quasiquoters")
		}
		return nil, diagnostic.Unsupported("Template Haskell type splices")

	default:
		return nil, diagnostic.Malformed("unknown type form")
	}
}

func (c *Converter) tupleType(n *hsast.TyTuple) (gallina.Term, error) {
	switch n.Sort {
	case hsast.UnboxedTuple:
		return nil, diagnostic.Unsupported("unboxed tuples")
	case hsast.ConstraintTuple:
		return nil, diagnostic.Unsupported("constraint tuples")
	}
	if len(n.Elems) == 0 {
		return gallina.V(c.typeName("()")), nil
	}
	acc, err := c.Type(n.Elems[0])
	if err != nil {
		return nil, err
	}
	pair := c.typeName("(,)")
	for _, elem := range n.Elems[1:] {
		next, err := c.Type(elem)
		if err != nil {
			return nil, err
		}
		acc = &gallina.App{Func: gallina.V(pair), Args: []gallina.Term{acc, next}}
	}
	return acc, nil
}

func (c *Converter) forallType(n *hsast.TyForall) (gallina.Term, error) {
	body, err := c.Type(n.Body)
	if err != nil {
		return nil, err
	}
	if n.Implicit && len(n.Vars) == 0 {
		return c.Generalize(body), nil
	}
	binders, err := c.TyVarBinders(n.Vars)
	if err != nil {
		return nil, err
	}
	return gallina.ForallMaybe(binders, body), nil
}

// TyVarBinders converts type variable binders to explicit binders,
// keeping their kinds when given
func (c *Converter) TyVarBinders(vars []*hsast.TyVarBinder) ([]*gallina.Binder, error) {
	binders := make([]*gallina.Binder, 0, len(vars))
	for _, v := range vars {
		b := &gallina.Binder{Name: c.typeName(v.Name)}
		if v.Kind != nil {
			kind, err := c.Type(v.Kind)
			if err != nil {
				return nil, err
			}
			b.Type = kind
		}
		binders = append(binders, b)
	}
	return binders, nil
}

// Generalize binds the type variables free in ty as implicit binders in
// ascending lexical order. Known target types and constructor-like names
// are never bound.
func (c *Converter) Generalize(ty gallina.Term) gallina.Term {
	var binders []*gallina.Binder
	for _, name := range freevars.Term(ty).Sorted() {
		if c.Renames.IsTypeTarget(name) || !IsVarName(name) {
			continue
		}
		binders = append(binders, gallina.ImplicitBinder(name))
	}
	return gallina.ForallMaybe(binders, ty)
}

// IsVarName reports whether name is variable-like under the surface
// capitalization convention
func IsVarName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r == '_' || unicode.IsLower(r)
}
