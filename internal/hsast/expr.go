package hsast

// Var is a reference to a value or data constructor
type Var struct {
	Span
	Name string
}

func (*Var) exprNode() {}

// App is the application of a function to one argument
type App struct {
	Span
	Func Expression
	Arg  Expression
}

func (*App) exprNode() {}

// Par is a parenthesized expression
type Par struct {
	Span
	Expr Expression
}

func (*Par) exprNode() {}

// If is a conditional. Rebindable is set when the front end resolved the
// conditional through a user-supplied ifThenElse.
type If struct {
	Span
	Cond       Expression
	Then       Expression
	Else       Expression
	Rebindable bool
}

func (*If) exprNode() {}

// Case is a case expression; every alternative has exactly one pattern
type Case struct {
	Span
	Scrutinee    Expression
	Alternatives []*Equation
}

func (*Case) exprNode() {}

// Lit is a primitive literal
type Lit struct {
	Span
	Lit *Literal
}

func (*Lit) exprNode() {}

// OverLit is an overloaded literal
type OverLit struct {
	Span
	Lit *OverLiteral
}

func (*OverLit) exprNode() {}

// Let is a let-expression
type Let struct {
	Span
	Binds *LocalBinds
	Body  Expression
}

func (*Let) exprNode() {}

// ExprWithSig is an expression with a type annotation
type ExprWithSig struct {
	Span
	Expr Expression
	Sig  Type
}

func (*ExprWithSig) exprNode() {}

// Lam is a lambda abstraction
type Lam struct {
	Span
	Equations []*Equation
}

func (*Lam) exprNode() {}

// LamCase is a \case expression
type LamCase struct {
	Span
	Alternatives []*Equation
}

func (*LamCase) exprNode() {}

// Tick is a cost-centre, tick or core annotation wrapped around an
// expression. It carries no meaning for translation.
type Tick struct {
	Span
	Label string
	Expr  Expression
}

func (*Tick) exprNode() {}

// The forms below are recognised so that they can be rejected with a
// precise description.

// OpApp is a binary operator application
type OpApp struct {
	Span
	Left  Expression
	Op    Expression
	Right Expression
}

func (*OpApp) exprNode() {}

// NegApp is prefix negation
type NegApp struct {
	Span
	Expr Expression
}

func (*NegApp) exprNode() {}

// Section is a left or right operator section
type Section struct {
	Span
	Left bool
	Op   Expression
	Expr Expression
}

func (*Section) exprNode() {}

// Tuple is an explicit (possibly sectioned) tuple
type Tuple struct {
	Span
	Elems []Expression
	Boxed bool
}

func (*Tuple) exprNode() {}

// List is an explicit list
type List struct {
	Span
	Elems []Expression
}

func (*List) exprNode() {}

// PArr is an explicit parallel array
type PArr struct {
	Span
	Elems []Expression
}

func (*PArr) exprNode() {}

// ArithSeq is an arithmetic sequence such as [a, b .. c]
type ArithSeq struct {
	Span
	From, Then, To Expression
}

func (*ArithSeq) exprNode() {}

// RecordConstruct is record construction syntax
type RecordConstruct struct {
	Span
	Con    string
	Fields map[string]Expression
}

func (*RecordConstruct) exprNode() {}

// RecordUpdate is record update syntax
type RecordUpdate struct {
	Span
	Expr   Expression
	Fields map[string]Expression
}

func (*RecordUpdate) exprNode() {}

// MultiIf is a multi-way if
type MultiIf struct {
	Span
	Alternatives []*GuardedRHS
}

func (*MultiIf) exprNode() {}

// Do is a do block, list comprehension or monad comprehension
type Do struct {
	Span
	Stmts []Node
}

func (*Do) exprNode() {}

// Bracket is a Template Haskell quotation
type Bracket struct {
	Span
	Body Node
}

func (*Bracket) exprNode() {}

// Splice is a Template Haskell splice
type Splice struct {
	Span
	Expr Expression
}

func (*Splice) exprNode() {}

// QuasiQuote is a quasi-quotation
type QuasiQuote struct {
	Span
	Quoter string
	Body   string
}

func (*QuasiQuote) exprNode() {}

// Proc is an arrow-notation proc expression
type Proc struct {
	Span
	Pat  Pattern
	Body Node
}

func (*Proc) exprNode() {}

// Static is a static pointer expression
type Static struct {
	Span
	Expr Expression
}

func (*Static) exprNode() {}

// EViewPat is a view pattern appearing in expression position
type EViewPat struct {
	Span
	View Expression
	Pat  Expression
}

func (*EViewPat) exprNode() {}

// ELazyPat is a lazy pattern appearing in expression position
type ELazyPat struct {
	Span
	Expr Expression
}

func (*ELazyPat) exprNode() {}

// EAsPat is an as-pattern appearing in expression position
type EAsPat struct {
	Span
	Name string
	Expr Expression
}

func (*EAsPat) exprNode() {}

// Apps builds a left-nested application of f to args
func Apps(f Expression, args ...Expression) Expression {
	for _, a := range args {
		f = &App{Func: f, Arg: a}
	}
	return f
}
