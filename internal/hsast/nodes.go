// Package hsast holds the resolved surface declaration trees handed to the
// translator by the front end. Nothing in here parses; the nodes only
// describe already-resolved syntax.
package hsast

// Node is the base interface for all surface nodes
type Node interface {
	Pos() (line, col int)
}

// Expression nodes
type Expression interface {
	Node
	exprNode()
}

// Pattern nodes
type Pattern interface {
	Node
	patNode()
}

// Type nodes
type Type interface {
	Node
	typeNode()
}

// Decl is a top-level declaration
type Decl interface {
	Node
	declNode()
}

// Span records the source position of a node.
type Span struct {
	Line   int
	Column int
}

func (s Span) Pos() (int, int) { return s.Line, s.Column }

// Module is an ordered sequence of top-level declarations
type Module struct {
	Name  string
	Decls []Decl
}

// ValueDecl is a value or function binding with its optional signature
type ValueDecl struct {
	Span
	Binding   *Binding
	Signature Type // nil when no signature was given
}

func (*ValueDecl) declNode() {}

// DataDecl represents a data type declaration
type DataDecl struct {
	Span
	Name   string
	Params []*TyVarBinder
	Kind   Type // optional result kind signature
	Cons   []*ConDecl
}

func (*DataDecl) declNode() {}

// SynonymDecl represents a type synonym declaration
type SynonymDecl struct {
	Span
	Name   string
	Params []*TyVarBinder
	Body   Type
}

func (*SynonymDecl) declNode() {}

// ConDetailsKind distinguishes how a data constructor declares its fields
type ConDetailsKind int

const (
	PrefixCon ConDetailsKind = iota
	InfixCon
	RecordCon
)

// ConDecl represents one data constructor of a data declaration
type ConDecl struct {
	Span
	Name    string
	ExVars  []*TyVarBinder // explicitly quantified existential variables
	Context []Type         // constructor context, unsupported when non-empty
	Details ConDetailsKind
	Fields  []Type
	Labels  []string // record field labels, RecordCon only
}

// TyVarBinder is a type variable binder with an optional kind
type TyVarBinder struct {
	Span
	Name string
	Kind Type
}

// Binding is a (possibly multi-clause) value or function definition
type Binding struct {
	Span
	Name      string
	Equations []*Equation
}

// Equation is one clause of a definition, lambda or case alternative
type Equation struct {
	Span
	Patterns []Pattern
	RHS      *GuardedRHSs
}

// GuardedRHSs holds the guarded right-hand sides of an equation together
// with its where-bound local declarations
type GuardedRHSs struct {
	Span
	Alternatives []*GuardedRHS
	Where        *LocalBinds
}

// GuardedRHS is one `| guards = body` alternative. An unguarded right-hand
// side has no guards.
type GuardedRHS struct {
	Span
	Guards []GuardStmt
	Body   Expression
}

// GuardStmt is one comma-separated item in a guard
type GuardStmt interface {
	Node
	guardNode()
}

// BoolGuard is a boolean guard condition
type BoolGuard struct {
	Span
	Cond Expression
}

func (*BoolGuard) guardNode() {}

// PatternGuard is a `pat <- expr` guard
type PatternGuard struct {
	Span
	Pat  Pattern
	Expr Expression
}

func (*PatternGuard) guardNode() {}

// LetGuard is a `let binds` guard
type LetGuard struct {
	Span
	Binds *LocalBinds
}

func (*LetGuard) guardNode() {}

// LocalBindsKind describes what a local binding group contains
type LocalBindsKind int

const (
	ValueBinds LocalBindsKind = iota
	ImplicitParamBinds
)

// LocalBinds is the binding group of a let-expression or where-clause
type LocalBinds struct {
	Span
	Kind       LocalBindsKind
	Bindings   []*Binding
	Signatures map[string]Type
}

// IsEmpty reports whether the group binds nothing
func (b *LocalBinds) IsEmpty() bool {
	return b == nil || (len(b.Bindings) == 0 && b.Kind == ValueBinds)
}
