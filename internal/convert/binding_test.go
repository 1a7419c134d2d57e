package convert

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

func convertBinding(t *testing.T, sig hsast.Type, b *hsast.Binding) string {
	t.Helper()
	def, err := New(nil).Binding(sig, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return gallina.PrintSentence(def.Sentence())
}

func TestSingleArgumentConditional(t *testing.T) {
	b := binding("f", equation(pats(pv("x")), &hsast.If{Cond: vr("x"), Then: num(1), Else: num(0)}))
	want := "Definition f := fun arg_0__ => if arg_0__ then 1 else 0."
	if got := convertBinding(t, nil, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestVariableBinding(t *testing.T) {
	b := binding("answer", equation(nil, num(42)))
	want := "Definition answer := 42."
	if got := convertBinding(t, nil, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMultipleEquationsMatch(t *testing.T) {
	b := binding("fromMaybe",
		equation(pats(pv("d"), con("Nothing")), vr("d")),
		equation(pats(&hsast.WildPat{}, con("Just", pv("x"))), vr("x")),
	)
	want := "Definition fromMaybe := fun arg_0__ arg_1__ => match arg_0__, arg_1__ with | d, None => d | _, Some x => x end."
	if got := convertBinding(t, nil, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSelfRecursionBecomesFix(t *testing.T) {
	b := binding("f",
		equation(pats(con("Just", pv("x"))), &hsast.App{Func: vr("f"), Arg: vr("x")}),
		equation(pats(con("Nothing")), num(0)),
	)
	def, err := New(nil).Binding(nil, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := def.Body.(*gallina.Fix); !ok {
		t.Fatalf("expected *gallina.Fix, got %T", def.Body)
	}
	want := "fix f arg_0__ := match arg_0__ with | Some x => f x | None => 0 end"
	if got := gallina.Print(def.Body); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestShadowedNameIsNotRecursion(t *testing.T) {
	b := binding("f", equation(pats(pv("f")), vr("f")))
	def, err := New(nil).Binding(nil, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := def.Body.(*gallina.Fun); !ok {
		t.Errorf("expected *gallina.Fun, got %T", def.Body)
	}
}

func TestFreshArgumentsAvoidExistingNames(t *testing.T) {
	b := binding("k", equation(pats(pv("x")), vr("arg_0__")))
	want := "Definition k := fun arg_0___ => arg_0__."
	if got := convertBinding(t, nil, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSignatureBecomesBinders(t *testing.T) {
	sig := &hsast.TyForall{
		Vars: []*hsast.TyVarBinder{{Name: "a"}},
		Body: hsast.TyFuns(tv("a"), tv("a")),
	}
	b := binding("ident", equation(pats(pv("x")), vr("x")))
	want := "Definition ident {a} : a -> a := fun arg_0__ => arg_0__."
	if got := convertBinding(t, sig, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	implicit := &hsast.TyForall{Implicit: true, Body: hsast.TyFuns(tv("a"), tv("a"), tv("b"))}
	b = binding("const", equation(pats(pv("x"), &hsast.WildPat{}), vr("x")))
	want = "Definition const {a} {b} : a -> b -> a := fun arg_0__ arg_1__ => arg_0__."
	if got := convertBinding(t, implicit, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGuards(t *testing.T) {
	b := binding("g", guardedEquation(pats(pv("x")),
		alt(num(1), guard(vr("x"))),
		alt(num(0), guard(vr("otherwise"))),
	))
	want := "Definition g := fun arg_0__ => if arg_0__ then 1 else 0."
	if got := convertBinding(t, nil, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	b = binding("h", guardedEquation(pats(pv("a"), pv("b")),
		alt(num(1), guard(vr("a")), guard(vr("b"))),
		alt(num(2), guard(vr("a"))),
		alt(num(0), guard(&hsast.Par{Expr: vr("True")})),
	))
	want = "Definition h := fun arg_0__ arg_1__ => if andb arg_0__ arg_1__ then 1 else if arg_0__ then 2 else 0."
	if got := convertBinding(t, nil, b); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	b = binding("g", guardedEquation(pats(pv("x")),
		alt(num(1), guard(vr("x"))),
		alt(num(0), guard(&hsast.Tick{Label: "scc", Expr: &hsast.Par{Expr: vr("otherwise")}})),
	))
	want = "Definition g := fun arg_0__ => if arg_0__ then 1 else 0."
	if got := convertBinding(t, nil, b); got != want {
		t.Errorf("expected annotated otherwise to close the chain, got %q", got)
	}

	b = binding("g", guardedEquation(pats(pv("x")),
		alt(num(1), guard(vr("x"))),
		alt(num(0), guard(&hsast.Tick{Label: "scc", Expr: &hsast.Par{Expr: vr("x")}})),
	))
	_, err := New(nil).Binding(nil, b)
	expectConvError(t, err, diagnostic.MalformedInput, "possibly incomplete guards")
}

func TestWhereBindings(t *testing.T) {
	eq := equation(pats(pv("x")), vr("y"))
	eq.RHS.Where = &hsast.LocalBinds{Bindings: []*hsast.Binding{binding("y", equation(nil, vr("x")))}}
	want := "Definition w := fun arg_0__ => let y := arg_0__ in y."
	if got := convertBinding(t, nil, binding("w", eq)); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGuardErrors(t *testing.T) {
	tests := []struct {
		rhs  *hsast.GuardedRHSs
		kind diagnostic.Kind
		want string
	}{
		{&hsast.GuardedRHSs{}, diagnostic.MalformedInput, "empty guard list"},
		{&hsast.GuardedRHSs{Alternatives: []*hsast.GuardedRHS{alt(num(1), guard(vr("c")))}}, diagnostic.MalformedInput, "possibly incomplete guards"},
		{&hsast.GuardedRHSs{Alternatives: []*hsast.GuardedRHS{alt(num(1), &hsast.PatternGuard{Pat: pv("p"), Expr: vr("e")})}}, diagnostic.UnsupportedConstruct, "pattern guards"},
		{&hsast.GuardedRHSs{Alternatives: []*hsast.GuardedRHS{alt(num(1), &hsast.LetGuard{Binds: &hsast.LocalBinds{}})}}, diagnostic.UnsupportedConstruct, "`let' statements in guards"},
	}
	for _, tt := range tests {
		_, err := New(nil).GuardedRHSs(tt.rhs)
		expectConvError(t, err, tt.kind, tt.want)
	}
}

func TestBindingShapeErrors(t *testing.T) {
	tests := []struct {
		b    *hsast.Binding
		want string
	}{
		{binding("e"), "binding without equations"},
		{binding("v", equation(nil, num(1)), equation(nil, num(2))), "malformed multi-match variable definition"},
		{binding("m", equation(nil, num(1)), equation(pats(pv("x")), num(2))), "equations with differing numbers of arguments"},
	}
	for _, tt := range tests {
		_, err := New(nil).Binding(nil, tt.b)
		expectConvError(t, err, diagnostic.MalformedInput, tt.want)
	}
}

func TestUnsupportedBodyFailsBinding(t *testing.T) {
	b := binding("area",
		equation(pats(pv("w"), pv("h")), &hsast.OpApp{Left: vr("w"), Op: vr("*"), Right: vr("h")}),
	)
	_, err := New(nil).Binding(nil, b)
	expectConvError(t, err, diagnostic.UnsupportedConstruct, "binary operators")
}

func valueDecl(b *hsast.Binding) *hsast.ValueDecl { return &hsast.ValueDecl{Binding: b} }

func TestBindingsWithoutRecovery(t *testing.T) {
	decls := []*hsast.ValueDecl{
		valueDecl(binding("ok", equation(nil, num(1)))),
		valueDecl(binding("bad", equation(nil, &hsast.NegApp{Expr: num(1)}))),
	}
	_, err := New(nil).Bindings(decls, nil)
	expectConvError(t, err, diagnostic.UnsupportedConstruct, "negation")
	if !strings.Contains(err.Error(), "converting bad") {
		t.Errorf("expected error to name the binding, got %q", err.Error())
	}
}

func TestBindingsWithAxiomRecovery(t *testing.T) {
	decls := []*hsast.ValueDecl{
		valueDecl(binding("ok", equation(nil, num(1)))),
		valueDecl(binding("bad", equation(nil, &hsast.NegApp{Expr: num(1)}))),
		valueDecl(binding("after", equation(nil, num(2)))),
	}
	c := New(nil)
	sentences, err := c.Bindings(decls, c.AxiomStub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, s := range sentences {
		got = append(got, gallina.PrintSentence(s))
	}
	want := []string{
		"Definition ok := 1.",
		"(* Translating `bad' failed: unsupported: negation *)",
		"Axiom bad : forall {a : Type}, a.",
		"Definition after := 2.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRecoveryHandlerCanAbort(t *testing.T) {
	stop := errors.New("stop")
	decls := []*hsast.ValueDecl{valueDecl(binding("bad", equation(nil, &hsast.NegApp{Expr: num(1)})))}
	_, err := New(nil).Bindings(decls, func(*hsast.ValueDecl, error) ([]gallina.Sentence, error) {
		return nil, stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected handler error, got %v", err)
	}
}

func TestConversionIsDeterministic(t *testing.T) {
	b := binding("f",
		equation(pats(con("Just", pv("x")), pv("y")), &hsast.App{Func: vr("f"), Arg: vr("y")}),
		equation(pats(con("Nothing"), &hsast.WildPat{}), num(0)),
	)
	first, err := New(nil).Binding(nil, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := New(nil).Binding(nil, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %s and %s",
			gallina.PrintSentence(first.Sentence()), gallina.PrintSentence(second.Sentence()))
	}
}
