package convert

import (
	"testing"

	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/hsast"
)

func vr(name string) *hsast.Var { return &hsast.Var{Name: name} }
func pv(name string) *hsast.VarPat { return &hsast.VarPat{Name: name} }
func tv(name string) *hsast.TyVar { return &hsast.TyVar{Name: name} }
func num(n int64) *hsast.OverLit { return &hsast.OverLit{Lit: hsast.IntLiteral(n)} }
func guard(cond hsast.Expression) hsast.GuardStmt { return &hsast.BoolGuard{Cond: cond} }

func con(name string, args ...hsast.Pattern) *hsast.ConPat {
	return &hsast.ConPat{Con: name, Args: args}
}

func rhs(body hsast.Expression) *hsast.GuardedRHSs {
	return &hsast.GuardedRHSs{Alternatives: []*hsast.GuardedRHS{{Body: body}}}
}

func alt(body hsast.Expression, guards ...hsast.GuardStmt) *hsast.GuardedRHS {
	return &hsast.GuardedRHS{Guards: guards, Body: body}
}

func equation(pats []hsast.Pattern, body hsast.Expression) *hsast.Equation {
	return &hsast.Equation{Patterns: pats, RHS: rhs(body)}
}

func guardedEquation(pats []hsast.Pattern, alts ...*hsast.GuardedRHS) *hsast.Equation {
	return &hsast.Equation{Patterns: pats, RHS: &hsast.GuardedRHSs{Alternatives: alts}}
}

func pats(ps ...hsast.Pattern) []hsast.Pattern { return ps }

func binding(name string, eqs ...*hsast.Equation) *hsast.Binding {
	return &hsast.Binding{Name: name, Equations: eqs}
}

func expectConvError(t *testing.T, err error, kind diagnostic.Kind, description string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error %q, got nil", kind, description)
	}
	if !diagnostic.Is(err, kind, description) {
		t.Fatalf("expected %s error %q, got %v", kind, description, err)
	}
}
