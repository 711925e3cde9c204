package series

import "math/big"

// PowerWeighted wraps another Generator and multiplies its n-th term by
// n^Exp, for families whose sequence is a compact polynomial scaled by a
// fixed power of the index rather than the plain polynomial value.
type PowerWeighted struct {
	Inner Generator
	Exp   int
}

func (p PowerWeighted) Generate(coeffs []int, n int) []*big.Int {
	base := p.Inner.Generate(coeffs, n)
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		weight := new(big.Int).Exp(big.NewInt(int64(i)), big.NewInt(int64(p.Exp)), nil)
		out[i] = new(big.Int).Mul(base[i], weight)
	}
	return out
}

func (p PowerWeighted) Iterate(spec Spec, yield func(coeffs []int) bool) {
	p.Inner.Iterate(spec, yield)
}

func (p PowerWeighted) Count(spec Spec) int64 {
	return p.Inner.Count(spec)
}

// Zeta3An is the a_n family for zeta(3)-targeted searches: a plain compact
// polynomial, unweighted, matching the cubic growth of the Apery-type
// continued fractions for zeta(3).
var Zeta3An Generator = Cartesian{}

// Zeta3Bn is the b_n family for zeta(3)-targeted searches: a compact
// polynomial weighted by n^3, the odd power that lines up with the n^6
// term dominating zeta(3)'s convergents.
var Zeta3Bn Generator = PowerWeighted{Inner: Cartesian{}, Exp: 3}

// CatalanBn is the b_n family for Catalan's-constant-targeted searches: a
// compact polynomial weighted by n^2, the even power that lines up with
// the squared-binomial-coefficient structure of Catalan's continued
// fractions.
var CatalanBn Generator = PowerWeighted{Inner: Cartesian{}, Exp: 2}
