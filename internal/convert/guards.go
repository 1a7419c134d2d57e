package convert

import (
	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

// andName is the target's boolean conjunction
const andName = "andb"

// GuardedRHSs converts the guarded right-hand sides of one equation into a
// single term: a left-to-right conditional chain wrapped in the equation's
// where-bindings. The last alternative must be guarded by an always-true
// condition.
func (c *Converter) GuardedRHSs(g *hsast.GuardedRHSs) (gallina.Term, error) {
	if g == nil || len(g.Alternatives) == 0 {
		return nil, diagnostic.Malformed("empty guard list")
	}
	for _, alt := range g.Alternatives {
		for _, guard := range alt.Guards {
			if err := checkGuard(guard); err != nil {
				return nil, err
			}
		}
	}
	last := g.Alternatives[len(g.Alternatives)-1]
	if !alwaysTrue(last.Guards) {
		return nil, at(last, diagnostic.Malformed("possibly incomplete guards"))
	}

	conds := make([]gallina.Term, len(g.Alternatives)-1)
	bodies := make([]gallina.Term, len(g.Alternatives))
	for i, alt := range g.Alternatives {
		if i < len(conds) {
			cond, err := c.guardCondition(alt.Guards)
			if err != nil {
				return nil, err
			}
			conds[i] = cond
		}
		body, err := c.Expr(alt.Body)
		if err != nil {
			return nil, err
		}
		bodies[i] = body
	}

	result := bodies[len(bodies)-1]
	for i := len(conds) - 1; i >= 0; i-- {
		result = &gallina.If{Cond: conds[i], Then: bodies[i], Else: result}
	}
	return c.localBinds(g.Where, result)
}

func checkGuard(g hsast.GuardStmt) error {
	switch g.(type) {
	case *hsast.BoolGuard:
		return nil
	case *hsast.PatternGuard:
		return at(g, diagnostic.Unsupported("pattern guards"))
	case *hsast.LetGuard:
		return at(g, diagnostic.Unsupported("`let' statements in guards"))
	default:
		return at(g, diagnostic.Malformed("unknown guard form"))
	}
}

// guardCondition converts a comma-separated guard to the conjunction of
// its conditions
func (c *Converter) guardCondition(guards []hsast.GuardStmt) (gallina.Term, error) {
	var acc gallina.Term
	for _, g := range guards {
		cond, err := c.boolGuard(g.(*hsast.BoolGuard))
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = cond
			continue
		}
		acc = &gallina.App{Func: gallina.V(andName), Args: []gallina.Term{acc, cond}}
	}
	if acc == nil {
		return gallina.True(), nil
	}
	return acc, nil
}

func (c *Converter) boolGuard(g *hsast.BoolGuard) (gallina.Term, error) {
	if IsTrueMarker(g.Cond) {
		return gallina.True(), nil
	}
	return c.Expr(g.Cond)
}

func alwaysTrue(guards []hsast.GuardStmt) bool {
	for _, g := range guards {
		bg, ok := g.(*hsast.BoolGuard)
		if !ok || !IsTrueMarker(bg.Cond) {
			return false
		}
	}
	return true
}

// IsTrueMarker recognises the canonical always-true guards `otherwise` and
// `True`, looking through parentheses and annotations
func IsTrueMarker(e hsast.Expression) bool {
	for {
		switch n := e.(type) {
		case *hsast.Par:
			e = n.Expr
		case *hsast.Tick:
			e = n.Expr
		case *hsast.Var:
			return n.Name == "otherwise" || n.Name == "True"
		default:
			return false
		}
	}
}
