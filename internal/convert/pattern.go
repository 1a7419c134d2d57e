package convert

import (
	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

// Pattern converts a pattern
func (c *Converter) Pattern(p hsast.Pattern) (gallina.Pattern, error) {
	pat, err := c.pattern(p)
	if err != nil {
		return nil, at(p, err)
	}
	return pat, nil
}

func (c *Converter) pattern(p hsast.Pattern) (gallina.Pattern, error) {
	switch n := p.(type) {
	case *hsast.WildPat:
		return &gallina.WildPat{}, nil

	case *hsast.VarPat:
		return &gallina.VarPat{Name: c.valueName(n.Name)}, nil

	case *hsast.ParPat:
		return c.Pattern(n.Pat)

	case *hsast.BangPat:
		return c.Pattern(n.Pat)

	case *hsast.AsPat:
		inner, err := c.Pattern(n.Pat)
		if err != nil {
			return nil, err
		}
		return &gallina.AsPat{Pat: inner, Name: c.valueName(n.Name)}, nil

	case *hsast.ConPat:
		switch n.Details {
		case hsast.InfixCon:
			return nil, diagnostic.Unsupported("infix constructor patterns")
		case hsast.RecordCon:
			return nil, diagnostic.Unsupported("record constructor patterns")
		}
		con := &gallina.ConPat{Con: c.valueName(n.Con)}
		for _, arg := range n.Args {
			ap, err := c.Pattern(arg)
			if err != nil {
				return nil, err
			}
			con.Args = append(con.Args, ap)
		}
		return con, nil

	case *hsast.LitPat:
		return litPattern(n.Lit)

	case *hsast.NPat:
		if n.Negated {
			return nil, diagnostic.Unsupported("negative literal patterns")
		}
		switch n.Lit.Kind {
		case hsast.IntegralOverLit:
			v, err := Integer("integer literal patterns", n.Lit.Int)
			if err != nil {
				return nil, err
			}
			return &gallina.NumPat{Value: v}, nil
		case hsast.StringOverLit:
			return &gallina.StringPat{Value: n.Lit.Text}, nil
		default:
			return nil, diagnostic.Unsupported("fractional literal patterns")
		}

	case *hsast.NPlusKPat:
		return nil, diagnostic.Unsupported("n+k patterns")
	case *hsast.LazyPat:
		return nil, diagnostic.Unsupported("lazy patterns")
	case *hsast.ListPat:
		return nil, diagnostic.Unsupported("list patterns")
	case *hsast.TuplePat:
		return nil, diagnostic.Unsupported("tuple patterns")
	case *hsast.PArrPat:
		return nil, diagnostic.Unsupported("parallel array patterns")
	case *hsast.ViewPat:
		return nil, diagnostic.Unsupported("view patterns")
	case *hsast.SigPat:
		return nil, diagnostic.Unsupported("pattern type signatures")
	case *hsast.SplicePat:
		return nil, diagnostic.Unsupported("Template Haskell pattern splices")

	default:
		return nil, diagnostic.Malformed("unknown pattern form")
	}
}

func litPattern(lit *hsast.Literal) (gallina.Pattern, error) {
	switch lit.Kind {
	case hsast.IntLit, hsast.IntegerLit:
		v, err := Integer("integer literal patterns", lit.Int)
		if err != nil {
			return nil, err
		}
		return &gallina.NumPat{Value: v}, nil
	case hsast.StringLit:
		return &gallina.StringPat{Value: lit.Text}, nil
	}
	if what, ok := unsupportedLiterals[lit.Kind]; ok {
		return nil, diagnostic.Unsupported(what + " in patterns")
	}
	return nil, diagnostic.Malformed("unknown literal kind")
}
