package hsast

import "math/big"

// LitKind enumerates the literal forms of the surface language
type LitKind int

const (
	CharLit LitKind = iota
	CharPrimLit
	StringLit
	StringPrimLit
	IntLit
	IntPrimLit
	WordPrimLit
	Int64PrimLit
	Word64PrimLit
	IntegerLit
	RationalLit
	FloatPrimLit
	DoublePrimLit
)

// Literal is a non-overloaded literal. Int is set for the integral kinds,
// Text for characters and strings, and Rat for the fractional kinds.
type Literal struct {
	Kind LitKind
	Int  *big.Int
	Text string
	Rat  *big.Rat
}

// OverLitKind enumerates the overloaded literal forms
type OverLitKind int

const (
	IntegralOverLit OverLitKind = iota
	FractionalOverLit
	StringOverLit
)

// OverLiteral is a literal whose type is fixed by overload resolution
type OverLiteral struct {
	Kind OverLitKind
	Int  *big.Int
	Rat  *big.Rat
	Text string
}

// IntLiteral builds an overloaded integral literal
func IntLiteral(n int64) *OverLiteral {
	return &OverLiteral{Kind: IntegralOverLit, Int: big.NewInt(n)}
}

// StrLiteral builds an overloaded string literal
func StrLiteral(s string) *OverLiteral {
	return &OverLiteral{Kind: StringOverLit, Text: s}
}
