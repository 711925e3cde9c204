package constant

import (
	"math/big"

	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
)

// E is Euler's number, computed as sum_{k=0}^inf 1/k!.
var E Constant = primitive{sym: "e", fn: evalE}

// Pi is computed via Machin's formula pi = 16*arctan(1/5) - 4*arctan(1/239),
// whose two arctangent series each converge geometrically.
var Pi Constant = primitive{sym: "\\pi", fn: evalPi}

// Zeta3 is Apery's constant zeta(3), computed via the rapidly convergent
// binomial series zeta(3) = (5/2) * sum_{n=1}^inf (-1)^(n-1)/(n^3*C(2n,n)).
var Zeta3 Constant = primitive{sym: "\\zeta(3)", fn: evalZeta3}

// Catalan is Catalan's constant G = sum_{n=0}^inf (-1)^n/(2n+1)^2,
// evaluated through the Euler transform (see accelerate.go) since the
// defining series alone converges far too slowly to be useful at the
// working precisions this module needs.
var Catalan Constant = primitive{sym: "G", fn: evalCatalan}

// primitive is a Constant backed by a plain evaluator function; it has no
// sub-expression structure of its own (see composite.go for Product/Scale).
type primitive struct {
	sym string
	fn  func(prec uint) *big.Float
}

func (p primitive) EvalAt(digits int) *big.Float {
	return p.fn(bignum.DigitsToBits(digits))
}

func (p primitive) Symbol() Symbol { return name(p.sym) }

// intAt returns v as a *big.Float at the given precision.
func intAt(v int64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetInt64(v)
}

func evalE(prec uint) *big.Float {
	sum := intAt(1, prec)
	term := intAt(1, prec)

	for k := int64(1); ; k++ {
		term.Quo(term, intAt(k, prec))
		sum.Add(sum, term)
		if bignum.Negligible(term) {
			break
		}
	}

	return sum
}

// arctan evaluates the Taylor series for arctan(x) = x - x^3/3 + x^5/5 - ...
// x must satisfy |x| < 1 for the geometric convergence this module relies on.
func arctan(x *big.Float, prec uint) *big.Float {
	xsq := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).Set(x)
	sum := new(big.Float).SetPrec(prec).Set(x)

	negative := true
	for n := int64(1); ; n++ {
		term.Mul(term, xsq)
		delta := new(big.Float).SetPrec(prec).Quo(term, intAt(2*n+1, prec))

		if negative {
			sum.Sub(sum, delta)
		} else {
			sum.Add(sum, delta)
		}
		negative = !negative

		if bignum.Negligible(delta) {
			break
		}
	}

	return sum
}

func evalPi(prec uint) *big.Float {
	fifth := new(big.Float).SetPrec(prec).Quo(intAt(1, prec), intAt(5, prec))
	twoThirtyNinth := new(big.Float).SetPrec(prec).Quo(intAt(1, prec), intAt(239, prec))

	a := arctan(fifth, prec)
	b := arctan(twoThirtyNinth, prec)

	a.Mul(a, intAt(16, prec))
	b.Mul(b, intAt(4, prec))

	return a.Sub(a, b)
}

func evalZeta3(prec uint) *big.Float {
	sum := new(big.Float).SetPrec(prec)
	// binom holds C(2n, n) for the current n, updated via the recurrence
	// C(2n,n) = C(2(n-1),n-1) * (2n-1)(2n) / n^2, starting at n=1: C(2,1)=2.
	binom := big.NewInt(2)

	negative := false
	for n := int64(1); ; n++ {

		if n > 1 {
			binom.Mul(binom, big.NewInt((2*n-1)*(2*n)))
			binom.Quo(binom, big.NewInt(n*n))
		}

		denom := new(big.Int).Mul(binom, new(big.Int).Exp(big.NewInt(n), big.NewInt(3), nil))
		term := new(big.Float).SetPrec(prec).Quo(intAt(1, prec), new(big.Float).SetPrec(prec).SetInt(denom))

		if negative {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		negative = !negative

		if bignum.Negligible(term) {
			break
		}
	}

	half := new(big.Float).SetPrec(prec).Quo(intAt(5, prec), intAt(2, prec))
	sum.Mul(sum, half)
	return sum
}

func evalCatalan(prec uint) *big.Float {
	// The Euler transform needs roughly one extra difference-table row per
	// bit of additional precision requested (see accelerate.go); this bound
	// is generous rather than tight since correctness, not speed, is the
	// point of this fallback path. At ENUM_DPS (50 digits) this is cheap;
	// at the multi-thousand-digit verification precision it is the slowest
	// primitive in this package, which is expected of a generic fallback.
	maxTerms := int(prec) + 16
	f := func(n int) *big.Float {
		denom := intAt(int64(2*n+1), prec)
		denom.Mul(denom, denom)
		return new(big.Float).SetPrec(prec).Quo(intAt(1, prec), denom)
	}
	return eulerAlternatingSum(f, prec, maxTerms)
}
