// Package gallina defines the target term language: terms, patterns,
// binders and the sentences produced by the translator.
package gallina

import "math/big"

// Term is the interface for all target term nodes.
type Term interface {
	termNode()
}

// Var is a reference to a (possibly qualified) identifier.
type Var struct {
	Name string
}

func (*Var) termNode() {}

// App applies Func to one or more arguments.
type App struct {
	Func Term
	Args []Term
}

func (*App) termNode() {}

// Fun is a function literal.
type Fun struct {
	Binders []*Binder
	Body    Term
}

func (*Fun) termNode() {}

// Fix is a named anonymous fixpoint: fix Name binders : Type := Body.
type Fix struct {
	Name    string
	Binders []*Binder
	Type    Term // nil when absent
	Body    Term
}

func (*Fix) termNode() {}

// Match scrutinizes one or more terms at once. Each equation carries one
// pattern per scrutinee.
type Match struct {
	Scrutinees []Term
	Equations  []*Equation
}

func (*Match) termNode() {}

// Equation is one arm of a Match.
type Equation struct {
	Patterns []Pattern
	Body     Term
}

// Num is a non-negative numeric literal.
type Num struct {
	Value *big.Int
}

func (*Num) termNode() {}

// String is a string literal.
type String struct {
	Value string
}

func (*String) termNode() {}

// Parens is an explicit parenthesization.
type Parens struct {
	Term Term
}

func (*Parens) termNode() {}

// Forall is universal quantification.
type Forall struct {
	Binders []*Binder
	Body    Term
}

func (*Forall) termNode() {}

// Arrow is the non-dependent function type.
type Arrow struct {
	Dom Term
	Cod Term
}

func (*Arrow) termNode() {}

// If is the boolean conditional.
type If struct {
	Cond Term
	Then Term
	Else Term
}

func (*If) termNode() {}

// Let is a local definition: let Name binders : Type := Value in Body.
type Let struct {
	Name    string
	Binders []*Binder
	Type    Term // nil when absent
	Value   Term
	Body    Term
}

func (*Let) termNode() {}

// HasType is a type ascription (Term : Type).
type HasType struct {
	Term Term
	Type Term
}

func (*HasType) termNode() {}

// Underscore is the `_` placeholder.
type Underscore struct{}

func (*Underscore) termNode() {}

// Sort is one of the universes Type, Set or Prop.
type Sort struct {
	Name string
}

func (*Sort) termNode() {}

// --- Patterns ---

// Pattern is the interface for all target pattern nodes.
type Pattern interface {
	patNode()
}

// WildPat is `_`.
type WildPat struct{}

func (*WildPat) patNode() {}

// VarPat binds a variable.
type VarPat struct {
	Name string
}

func (*VarPat) patNode() {}

// AsPat is `Pat as Name`.
type AsPat struct {
	Pat  Pattern
	Name string
}

func (*AsPat) patNode() {}

// ConPat is a constructor applied to argument patterns. A nullary
// constructor has no Args.
type ConPat struct {
	Con  string
	Args []Pattern
}

func (*ConPat) patNode() {}

// NumPat matches a numeric literal.
type NumPat struct {
	Value *big.Int
}

func (*NumPat) patNode() {}

// StringPat matches a string literal.
type StringPat struct {
	Value string
}

func (*StringPat) patNode() {}

// --- Binders ---

// Binder introduces one name, optionally typed, explicit or implicit.
type Binder struct {
	Name     string // "_" for an anonymous binder
	Type     Term   // nil when the type is left to inference
	Implicit bool
}
