package bignum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// log2Of10 is log2(10), used to convert a decimal-digit precision budget
// into the binary precision math/big.Float works in.
const log2Of10 = 3.321928094887362347870319429489390175864831393024580612054756395

// guardBits absorbs rounding error accumulated over long chains of
// multiplications/additions so that the requested number of decimal
// digits stays correct through truncation.
const guardBits = 64

// truncGuardDigits is how many decimal digits past the n-th
// TruncateDecimalString formats before cutting, so that the rounding done by
// the formatting lands on a discarded digit.
const truncGuardDigits = 10

// DigitsToBits converts a requested decimal precision (number of significant
// decimal digits) into the binary precision passed to (*big.Float).SetPrec.
func DigitsToBits(digits int) uint {
	if digits <= 0 {
		digits = 1
	}
	return uint(math.Ceil(float64(digits)*log2Of10)) + guardBits
}

// NewFloat allocates a new *big.Float set to x, at a precision (in bits)
// derived from the requested decimal digits.
//
// Accepted types are: int, int64, uint64, float64, string, *big.Int, *big.Float.
func NewFloat(x interface{}, digits int) (y *big.Float) {

	y = new(big.Float).SetPrec(DigitsToBits(digits))

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case string:
		if _, ok := y.SetString(x); !ok {
			panic(fmt.Sprintf("cannot NewFloat: invalid numeral %q", x))
		}
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewFloat: accepted types are int, int64, uint64, float64, string, *big.Int, *big.Float, but is %T", x))
	}

	return
}

// Exp returns exp(x) at x's precision, using github.com/ALTree/bigfloat
// since math/big.Float has no transcendental functions of its own.
func Exp(x *big.Float) *big.Float {
	return bigfloat.Exp(x)
}

// Log returns ln(x) at x's precision.
func Log(x *big.Float) *big.Float {
	return bigfloat.Log(x)
}

// Acosh returns acosh(x) = ln(x + sqrt(x^2-1)) at x's precision, for x >= 1.
func Acosh(x *big.Float) *big.Float {
	prec := x.Prec()
	one := new(big.Float).SetPrec(prec).SetInt64(1)

	sq := new(big.Float).SetPrec(prec).Mul(x, x)
	sq.Sub(sq, one)
	sq.Sqrt(sq)
	sq.Add(sq, x)

	return Log(sq)
}

// Negligible reports whether x is small enough, relative to its own
// precision, that adding it to an accumulator of the same precision would
// not change the accumulator's value -- used as the termination test for
// convergent series evaluated to a fixed working precision.
func Negligible(x *big.Float) bool {
	if x.Sign() == 0 {
		return true
	}
	return x.MantExp(nil) < -int(x.Prec())
}

// TruncateDecimalString returns the first n significant decimal digits of
// |x| (sign and decimal point stripped), used to compare the LHS and RHS of
// a candidate identity digit-for-digit rather than by numeric subtraction
// (which would be vulnerable to ULP-style disputes at the comparison boundary).
//
// The digits are formatted with truncGuardDigits extra digits and then cut,
// so the n-th digit is truncated rather than rounded; only a run of more
// than truncGuardDigits nines right after it can still carry into it.
func TruncateDecimalString(x *big.Float, n int) string {
	abs := new(big.Float).SetPrec(x.Prec()).Abs(x)
	// Text('e', n+truncGuardDigits) gives n+truncGuardDigits+1 significant
	// digits in normalized scientific form, e.g. "1.234500000e+02" -- strip
	// the '.' and exponent, keep the first n digits.
	s := abs.Text('e', n+truncGuardDigits)
	var digits []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'e' {
			break
		}
		if c == '.' {
			continue
		}
		digits = append(digits, c)
	}
	if len(digits) > n {
		digits = digits[:n]
	}
	return string(digits)
}
