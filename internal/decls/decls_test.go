package decls

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lhaig/hs2v/internal/convert"
	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

func tv(name string) *hsast.TyVar { return &hsast.TyVar{Name: name} }

func tapp(f string, args ...string) hsast.Type {
	var t hsast.Type = tv(f)
	for _, a := range args {
		t = &hsast.TyApp{Func: t, Arg: tv(a)}
	}
	return t
}

func binders(names ...string) []*hsast.TyVarBinder {
	out := make([]*hsast.TyVarBinder, len(names))
	for i, n := range names {
		out[i] = &hsast.TyVarBinder{Name: n}
	}
	return out
}

func conDecl(name string, fields ...hsast.Type) *hsast.ConDecl {
	return &hsast.ConDecl{Name: name, Fields: fields}
}

func dataDecl(name string, params []string, cons ...*hsast.ConDecl) *hsast.DataDecl {
	return &hsast.DataDecl{Name: name, Params: binders(params...), Cons: cons}
}

func synDecl(name string, params []string, body hsast.Type) *hsast.SynonymDecl {
	return &hsast.SynonymDecl{Name: name, Params: binders(params...), Body: body}
}

func convertAll(t *testing.T, in ...hsast.Decl) []Declaration {
	t.Helper()
	c := convert.New(nil)
	var out []Declaration
	for _, d := range in {
		var (
			decl Declaration
			err  error
		)
		switch n := d.(type) {
		case *hsast.DataDecl:
			decl, err = ConvertData(c, n)
		case *hsast.SynonymDecl:
			decl, err = ConvertSynonym(c, n)
		default:
			t.Fatalf("unexpected declaration %T", d)
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, decl)
	}
	return out
}

func printAll(sentences []gallina.Sentence) string {
	lines := make([]string, len(sentences))
	for i, s := range sentences {
		lines[i] = gallina.PrintSentence(s)
	}
	return strings.Join(lines, "\n")
}

func TestSelfRecursiveData(t *testing.T) {
	decls := convertAll(t, dataDecl("Tree", nil,
		conDecl("Leaf"),
		conDecl("Branch", tv("Tree"), tv("Tree")),
	))
	groups := GroupDeclarations(decls)
	if len(groups) != 1 || groups[0].Kind != Inductives {
		t.Fatalf("expected one inductive group, got %d", len(groups))
	}
	sentences, err := Emit(groups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Inductive Tree : Type :=\n  | Mk_Leaf : Tree\n  | Mk_Branch : Tree -> Tree -> Tree."
	if got := printAll(sentences); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestParameterizedData(t *testing.T) {
	decls := convertAll(t, dataDecl("Pair", []string{"a", "b"},
		conDecl("MkPair", tv("a"), tapp("Maybe", "b")),
	))
	want := "Inductive Pair a b : Type :=\n  | Mk_MkPair : a -> option b -> Pair a b."
	sentences, err := Emit(GroupDeclarations(decls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := printAll(sentences); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestExistentialBindersAreImplicit(t *testing.T) {
	con := conDecl("Hide", tv("x"), tapp("Show", "x"))
	con.ExVars = binders("x")
	decls := convertAll(t, dataDecl("Box", nil, con))
	want := "Inductive Box : Type :=\n  | Mk_Hide {x} : x -> Show x -> Box."
	sentences, err := Emit(GroupDeclarations(decls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := printAll(sentences); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestConstructorsRegisteredForLaterConversions(t *testing.T) {
	c := convert.New(nil)
	if _, err := ConvertData(c, dataDecl("Color", nil, conDecl("Red"), conDecl("Green"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	term, err := c.Expr(&hsast.Var{Name: "Red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gallina.Print(term); got != "Mk_Red" {
		t.Errorf("expected Mk_Red, got %s", got)
	}
}

func TestUnsupportedConstructors(t *testing.T) {
	withContext := conDecl("C", tv("a"))
	withContext.Context = []hsast.Type{tapp("Eq", "a")}
	_, err := ConvertData(convert.New(nil), dataDecl("D", []string{"a"}, withContext))
	if !diagnostic.Is(err, diagnostic.UnsupportedConstruct, "constructor contexts") {
		t.Errorf("expected constructor contexts error, got %v", err)
	}

	record := conDecl("R", tv("Int"))
	record.Details = hsast.RecordCon
	record.Labels = []string{"field"}
	_, err = ConvertData(convert.New(nil), dataDecl("Rec", nil, record))
	if !diagnostic.Is(err, diagnostic.UnsupportedConstruct, "record syntax in data declarations") {
		t.Errorf("expected record syntax error, got %v", err)
	}
}

func TestPlainSynonym(t *testing.T) {
	decls := convertAll(t, synDecl("Name", nil, tv("String")), synDecl("Wrap", []string{"a"}, tapp("Maybe", "a")))
	sentences, err := Emit(GroupDeclarations(decls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Definition Name := string.\nDefinition Wrap a := option a."
	if got := printAll(sentences); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestMutualInductivesKeepDiscoveryOrder(t *testing.T) {
	decls := convertAll(t,
		dataDecl("A", nil, conDecl("MkA", tv("B")), conDecl("EndA")),
		dataDecl("B", nil, conDecl("MkB", tv("A"))),
	)
	groups := GroupDeclarations(decls)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	if groups[0].Kind != Inductives {
		t.Errorf("expected inductives, got %s", groups[0].Kind)
	}
	if got := groups[0].Names(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("expected [A B], got %v", got)
	}
	sentences, err := groups[0].Sentences()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Inductive A : Type :=\n  | Mk_MkA : B -> A\n  | Mk_EndA : A\nwith B : Type :=\n  | Mk_MkB : A -> B."
	if got := printAll(sentences); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestDependenciesComeFirst(t *testing.T) {
	decls := convertAll(t,
		synDecl("Forest", nil, tapp("List", "Tree")),
		dataDecl("List", []string{"a"}, conDecl("Nil"), conDecl("Cons", tv("a"), tapp("List", "a"))),
		dataDecl("Tree", nil, conDecl("Leaf")),
	)
	groups := GroupDeclarations(decls)
	var order []string
	for _, g := range groups {
		order = append(order, g.Names()...)
	}
	want := []string{"List", "Tree", "Forest"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestMutuallyRecursiveSynonymsRejected(t *testing.T) {
	decls := convertAll(t,
		synDecl("S1", nil, tv("S2")),
		synDecl("S2", nil, tv("S1")),
	)
	groups := GroupDeclarations(decls)
	if len(groups) != 1 || groups[0].Kind != Synonyms {
		t.Fatalf("expected a single synonyms group")
	}
	_, err := Emit(groups)
	if !diagnostic.Is(err, diagnostic.RejectedRecursion, "mutually-recursive type synonyms") {
		t.Errorf("expected rejected recursion, got %v", err)
	}
}

func TestMixedKnot(t *testing.T) {
	decls := convertAll(t,
		dataDecl("T", []string{"a"}, conDecl("Node", tapp("S", "a"))),
		synDecl("S", []string{"a"}, tapp("T", "a")),
	)
	groups := GroupDeclarations(decls)
	if len(groups) != 1 || groups[0].Kind != Mixed {
		t.Fatalf("expected a single mixed group")
	}
	if !NeedsPreamble(groups) {
		t.Errorf("expected mixed groups to need the preamble")
	}
	sentences, err := Emit(groups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"Reserved Notation \"'S'\".",
		"Inductive T a : Type :=",
		"  | Mk_Node : S a -> T a",
		"with S__raw : Type :=",
		"where \"'S'\" := (fun a_ => Synonym S__raw (T a_)).",
	}, "\n")
	if got := printAll(sentences); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestMixedKnotWithoutParams(t *testing.T) {
	decls := convertAll(t,
		synDecl("Env", nil, tapp("Maybe", "Value")),
		dataDecl("Value", nil, conDecl("Closure", tv("Env"))),
	)
	sentences, err := Emit(GroupDeclarations(decls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"Reserved Notation \"'Env'\".",
		"Inductive Value : Type :=",
		"  | Mk_Closure : Env -> Value",
		"with Env__raw : Type :=",
		"where \"'Env'\" := (Synonym Env__raw (option Value)).",
	}, "\n")
	if got := printAll(sentences); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestPreamble(t *testing.T) {
	want := "Definition Synonym {A : Type} (_uniq : Type) (x : A) : A := x.\nArguments Synonym {A}%type _uniq%type x%type."
	if got := printAll(Preamble()); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
	groups := GroupDeclarations(convertAll(t, dataDecl("U", nil, conDecl("MkU"))))
	if NeedsPreamble(groups) {
		t.Errorf("expected no preamble without mixed groups")
	}
}

func TestGroupsPartitionDeclarations(t *testing.T) {
	decls := convertAll(t,
		dataDecl("A", nil, conDecl("MkA", tv("B"))),
		dataDecl("B", nil, conDecl("MkB", tv("A"), tv("D"))),
		synDecl("C", nil, tv("A")),
		dataDecl("D", nil, conDecl("MkD")),
		dataDecl("E", nil, conDecl("MkE", tv("E"), tv("C"))),
		synDecl("F", nil, tv("Int")),
	)
	groups := GroupDeclarations(decls)

	position := make(map[string]int)
	for i, g := range groups {
		for _, name := range g.Names() {
			if _, dup := position[name]; dup {
				t.Fatalf("%s appears in more than one group", name)
			}
			position[name] = i
		}
	}
	if len(position) != len(decls) {
		t.Fatalf("expected %d names across groups, got %d", len(decls), len(position))
	}

	for _, d := range decls {
		fv := d.FreeVars()
		for _, other := range decls {
			if fv.Has(other.Name()) && position[other.Name()] > position[d.Name()] {
				t.Errorf("%s references %s from a later group", d.Name(), other.Name())
			}
		}
	}

	if position["A"] != position["B"] {
		t.Errorf("expected A and B in the same group")
	}
}

func TestGroupKindString(t *testing.T) {
	for kind, want := range map[GroupKind]string{Inductives: "inductives", Synonym: "synonym", Synonyms: "synonyms", Mixed: "mixed"} {
		if got := kind.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
