package convert

import (
	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

// Expr converts an expression
func (c *Converter) Expr(e hsast.Expression) (gallina.Term, error) {
	t, err := c.expr(e)
	if err != nil {
		return nil, at(e, err)
	}
	return t, nil
}

func (c *Converter) expr(e hsast.Expression) (gallina.Term, error) {
	switch n := e.(type) {
	case *hsast.Var:
		return gallina.V(c.valueName(n.Name)), nil

	case *hsast.App:
		f, err := c.Expr(n.Func)
		if err != nil {
			return nil, err
		}
		arg, err := c.Expr(n.Arg)
		if err != nil {
			return nil, err
		}
		return gallina.Apply(f, arg), nil

	case *hsast.Par:
		inner, err := c.Expr(n.Expr)
		if err != nil {
			return nil, err
		}
		return &gallina.Parens{Term: inner}, nil

	case *hsast.If:
		if n.Rebindable {
			return nil, diagnostic.Unsupported("overloaded if-then-else")
		}
		cond, err := c.Expr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := c.Expr(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := c.Expr(n.Else)
		if err != nil {
			return nil, err
		}
		return &gallina.If{Cond: cond, Then: then, Else: els}, nil

	case *hsast.Case:
		return c.caseExpr(n)

	case *hsast.Lit:
		return Literal(n.Lit)

	case *hsast.OverLit:
		return OverLiteral(n.Lit)

	case *hsast.Let:
		body, err := c.Expr(n.Body)
		if err != nil {
			return nil, err
		}
		return c.localBinds(n.Binds, body)

	case *hsast.ExprWithSig:
		inner, err := c.Expr(n.Expr)
		if err != nil {
			return nil, err
		}
		ty, err := c.Type(n.Sig)
		if err != nil {
			return nil, err
		}
		return &gallina.HasType{Term: inner, Type: ty}, nil

	case *hsast.Lam:
		for _, eq := range n.Equations {
			if len(eq.Patterns) == 0 {
				return nil, at(eq, diagnostic.Malformed("no-pattern lambda"))
			}
		}
		return c.Function(n.Equations)

	case *hsast.LamCase:
		for _, alt := range n.Alternatives {
			if err := checkAlternative(alt); err != nil {
				return nil, err
			}
		}
		return c.Function(n.Alternatives)

	case *hsast.Tick:
		return c.Expr(n.Expr)

	case *hsast.OpApp:
		return nil, diagnostic.Unsupported("binary operators")
	case *hsast.NegApp:
		return nil, diagnostic.Unsupported("negation")
	case *hsast.Section:
		return nil, diagnostic.Unsupported("sections")
	case *hsast.Tuple:
		return nil, diagnostic.Unsupported("tuples")
	case *hsast.List:
		return nil, diagnostic.Unsupported("explicit lists")
	case *hsast.PArr:
		return nil, diagnostic.Unsupported("explicit parallel arrays")
	case *hsast.ArithSeq:
		return nil, diagnostic.Unsupported("arithmetic sequences")
	case *hsast.RecordConstruct:
		return nil, diagnostic.Unsupported("record constructors")
	case *hsast.RecordUpdate:
		return nil, diagnostic.Unsupported("record updates")
	case *hsast.MultiIf:
		return nil, diagnostic.Unsupported("multi-way if")
	case *hsast.Do:
		return nil, diagnostic.Unsupported("do-notation")
	case *hsast.Bracket:
		return nil, diagnostic.Unsupported("Template Haskell brackets")
	case *hsast.Splice:
		return nil, diagnostic.Unsupported("Template Haskell splices")
	case *hsast.QuasiQuote:
		return nil, diagnostic.Unsupported("quasiquoters")
	case *hsast.Proc:
		return nil, diagnostic.Unsupported("arrow commands")
	case *hsast.Static:
		return nil, diagnostic.Unsupported("static pointers")
	case *hsast.EViewPat:
		return nil, diagnostic.Unsupported("view patterns in expression position")
	case *hsast.ELazyPat:
		return nil, diagnostic.Unsupported("lazy patterns in expression position")
	case *hsast.EAsPat:
		return nil, diagnostic.Unsupported("as-patterns in expression position")

	default:
		return nil, diagnostic.Malformed("unknown expression form")
	}
}

func checkAlternative(alt *hsast.Equation) error {
	switch len(alt.Patterns) {
	case 1:
		return nil
	case 0:
		return at(alt, diagnostic.Malformed("no-pattern case alternative"))
	default:
		return at(alt, diagnostic.Malformed("multi-pattern case alternative"))
	}
}

func (c *Converter) caseExpr(n *hsast.Case) (gallina.Term, error) {
	scrut, err := c.Expr(n.Scrutinee)
	if err != nil {
		return nil, err
	}
	m := &gallina.Match{Scrutinees: []gallina.Term{scrut}}
	for _, alt := range n.Alternatives {
		if err := checkAlternative(alt); err != nil {
			return nil, err
		}
		pat, err := c.Pattern(alt.Patterns[0])
		if err != nil {
			return nil, err
		}
		body, err := c.GuardedRHSs(alt.RHS)
		if err != nil {
			return nil, err
		}
		m.Equations = append(m.Equations, &gallina.Equation{
			Patterns: []gallina.Pattern{pat},
			Body:     body,
		})
	}
	return m, nil
}

// localBinds wraps body in one Let per local binding, outermost first
func (c *Converter) localBinds(binds *hsast.LocalBinds, body gallina.Term) (gallina.Term, error) {
	if binds.IsEmpty() {
		return body, nil
	}
	if binds.Kind == hsast.ImplicitParamBinds {
		return nil, at(binds, diagnostic.Unsupported("implicit parameter bindings"))
	}
	defs := make([]*Definition, 0, len(binds.Bindings))
	for _, b := range binds.Bindings {
		def, err := c.Binding(binds.Signatures[b.Name], b)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	for i := len(defs) - 1; i >= 0; i-- {
		body = defs[i].Let(body)
	}
	return body, nil
}
