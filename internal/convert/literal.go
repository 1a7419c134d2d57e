package convert

import (
	"math/big"

	"github.com/lhaig/hs2v/internal/diagnostic"
	"github.com/lhaig/hs2v/internal/gallina"
	"github.com/lhaig/hs2v/internal/hsast"
)

// Integer checks that n can be written as a target numeric literal. what
// describes the literal form for the error message.
func Integer(what string, n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() < 0 {
		return nil, diagnostic.Unsupported("negative " + what)
	}
	return new(big.Int).Set(n), nil
}

// unsupportedLiterals names the literal kinds with no target counterpart
var unsupportedLiterals = map[hsast.LitKind]string{
	hsast.CharLit:       "character literals",
	hsast.CharPrimLit:   "`Char#' literals",
	hsast.StringPrimLit: "`Addr#' literals",
	hsast.IntPrimLit:    "`Int#' literals",
	hsast.WordPrimLit:   "`Word#' literals",
	hsast.Int64PrimLit:  "`Int64#' literals",
	hsast.Word64PrimLit: "`Word64#' literals",
	hsast.RationalLit:   "`Rational' literals",
	hsast.FloatPrimLit:  "`Float#' literals",
	hsast.DoublePrimLit: "`Double#' literals",
}

// Literal converts a primitive literal
func Literal(lit *hsast.Literal) (gallina.Term, error) {
	switch lit.Kind {
	case hsast.StringLit:
		return &gallina.String{Value: lit.Text}, nil
	case hsast.IntLit:
		n, err := Integer("`Int' literals", lit.Int)
		if err != nil {
			return nil, err
		}
		return &gallina.Num{Value: n}, nil
	case hsast.IntegerLit:
		n, err := Integer("`Integer' literals", lit.Int)
		if err != nil {
			return nil, err
		}
		return &gallina.Num{Value: n}, nil
	}
	if what, ok := unsupportedLiterals[lit.Kind]; ok {
		return nil, diagnostic.Unsupported(what)
	}
	return nil, diagnostic.Malformed("unknown literal kind")
}

// OverLiteral converts an overloaded literal
func OverLiteral(lit *hsast.OverLiteral) (gallina.Term, error) {
	switch lit.Kind {
	case hsast.IntegralOverLit:
		n, err := Integer("integer literals", lit.Int)
		if err != nil {
			return nil, err
		}
		return &gallina.Num{Value: n}, nil
	case hsast.FractionalOverLit:
		return nil, diagnostic.Unsupported("fractional literals")
	case hsast.StringOverLit:
		return &gallina.String{Value: lit.Text}, nil
	default:
		return nil, diagnostic.Malformed("unknown overloaded literal kind")
	}
}
