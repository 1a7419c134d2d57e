package hsast

// WildPat is the `_` pattern
type WildPat struct {
	Span
}

func (*WildPat) patNode() {}

// VarPat binds a variable
type VarPat struct {
	Span
	Name string
}

func (*VarPat) patNode() {}

// ParPat is a parenthesized pattern
type ParPat struct {
	Span
	Pat Pattern
}

func (*ParPat) patNode() {}

// BangPat is a strictness-annotated pattern
type BangPat struct {
	Span
	Pat Pattern
}

func (*BangPat) patNode() {}

// AsPat is name@pat
type AsPat struct {
	Span
	Name string
	Pat  Pattern
}

func (*AsPat) patNode() {}

// ConPat is a constructor pattern. Details says whether arguments were
// given positionally, infix, or as record fields.
type ConPat struct {
	Span
	Con     string
	Details ConDetailsKind
	Args    []Pattern
}

func (*ConPat) patNode() {}

// LitPat is a primitive literal pattern
type LitPat struct {
	Span
	Lit *Literal
}

func (*LitPat) patNode() {}

// NPat is an overloaded literal pattern
type NPat struct {
	Span
	Lit     *OverLiteral
	Negated bool
}

func (*NPat) patNode() {}

// NPlusKPat is an n+k pattern
type NPlusKPat struct {
	Span
	Name string
	K    *OverLiteral
}

func (*NPlusKPat) patNode() {}

// LazyPat is ~pat
type LazyPat struct {
	Span
	Pat Pattern
}

func (*LazyPat) patNode() {}

// ListPat is [p1, ..., pn]
type ListPat struct {
	Span
	Elems []Pattern
}

func (*ListPat) patNode() {}

// TuplePat is (p1, ..., pn)
type TuplePat struct {
	Span
	Elems []Pattern
	Boxed bool
}

func (*TuplePat) patNode() {}

// PArrPat is a parallel array pattern
type PArrPat struct {
	Span
	Elems []Pattern
}

func (*PArrPat) patNode() {}

// ViewPat is (expr -> pat)
type ViewPat struct {
	Span
	View Expression
	Pat  Pattern
}

func (*ViewPat) patNode() {}

// SigPat is a pattern with a type signature
type SigPat struct {
	Span
	Pat Pattern
	Sig Type
}

func (*SigPat) patNode() {}

// SplicePat is a Template Haskell pattern splice
type SplicePat struct {
	Span
	Expr Expression
}

func (*SplicePat) patNode() {}
