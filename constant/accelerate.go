package constant

import (
	"math/big"

	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
)

// eulerAlternatingSum computes S = sum_{n=0}^maxTerms (-1)^n f(n) via the
// Euler transform
//
//	S = sum_{n=0}^inf (-1)^n (Delta^n f)(0) / 2^(n+1)
//
// where (Delta^n f)(0) is the n-th forward difference of f at 0. The
// transform turns a sign-alternating sum with only polynomially-decreasing
// terms (such as Catalan's defining series, terms ~ 1/n^2) into one with
// geometrically-decreasing terms, at the cost of a triangular difference
// table. This is the generic fallback used whenever a specific constant has
// no rapidly-convergent closed series available (see primitives.go).
func eulerAlternatingSum(f func(n int) *big.Float, prec uint, maxTerms int) *big.Float {

	row := make([]*big.Float, maxTerms+1)
	for i := range row {
		row[i] = f(i)
	}

	sum := new(big.Float).SetPrec(prec)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	pow2 := new(big.Float).SetPrec(prec).SetInt64(2) // 2^(n+1), n starts at 0

	for n := 0; n < len(row); n++ {

		term := new(big.Float).SetPrec(prec).Quo(row[0], pow2)

		if n%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}

		if bignum.Negligible(term) {
			break
		}

		for i := 0; i < len(row)-1-n; i++ {
			row[i] = new(big.Float).SetPrec(prec).Sub(row[i+1], row[i])
		}

		pow2.Mul(pow2, two)
	}

	return sum
}
