package hsast

// TyVar is a type variable or type constructor reference
type TyVar struct {
	Span
	Name string
}

func (*TyVar) typeNode() {}

// TyApp is type application
type TyApp struct {
	Span
	Func Type
	Arg  Type
}

func (*TyApp) typeNode() {}

// TyFun is the function arrow
type TyFun struct {
	Span
	Arg    Type
	Result Type
}

func (*TyFun) typeNode() {}

// TyPar is a parenthesized type
type TyPar struct {
	Span
	Type Type
}

func (*TyPar) typeNode() {}

// TyKindSig is a type with a kind signature
type TyKindSig struct {
	Span
	Type Type
	Kind Type
}

func (*TyKindSig) typeNode() {}

// TyLitKind distinguishes type-level literals
type TyLitKind int

const (
	TyNumLit TyLitKind = iota
	TyStrLit
)

// TyLit is a type-level literal
type TyLit struct {
	Span
	Kind TyLitKind
	Num  *OverLiteral
	Text string
}

func (*TyLit) typeNode() {}

// TyWildcard is a `_` in type position
type TyWildcard struct {
	Span
}

func (*TyWildcard) typeNode() {}

// TyList is [t]
type TyList struct {
	Span
	Elem Type
}

func (*TyList) typeNode() {}

// TupleSort distinguishes boxed, unboxed and constraint tuples
type TupleSort int

const (
	BoxedTuple TupleSort = iota
	UnboxedTuple
	ConstraintTuple
)

// TyTuple is a tuple type
type TyTuple struct {
	Span
	Sort  TupleSort
	Elems []Type
}

func (*TyTuple) typeNode() {}

// TyForall is a quantified type. Implicit marks quantification the front
// end inferred rather than the user wrote.
type TyForall struct {
	Span
	Implicit bool
	Vars     []*TyVarBinder
	Body     Type
}

func (*TyForall) typeNode() {}

// TyBang is a strictness or unpackedness annotation on a field type
type TyBang struct {
	Span
	Type Type
}

func (*TyBang) typeNode() {}

// TyQual is a type with a class context
type TyQual struct {
	Span
	Context []Type
	Body    Type
}

func (*TyQual) typeNode() {}

// TyOp is a binary type operator application
type TyOp struct {
	Span
	Left  Type
	Op    string
	Right Type
}

func (*TyOp) typeNode() {}

// TyEq is a type equality constraint
type TyEq struct {
	Span
	Left  Type
	Right Type
}

func (*TyEq) typeNode() {}

// TyRecord is a record type, only found in constructor declarations
type TyRecord struct {
	Span
	Fields []Type
}

func (*TyRecord) typeNode() {}

// TySplice is a Template Haskell type splice or quasi-quote
type TySplice struct {
	Span
	Quasi bool
}

func (*TySplice) typeNode() {}

// TyFuns builds a right-nested function type ending in res
func TyFuns(res Type, args ...Type) Type {
	for i := len(args) - 1; i >= 0; i-- {
		res = &TyFun{Arg: args[i], Result: res}
	}
	return res
}
