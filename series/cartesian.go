package series

import "math/big"

// Cartesian is the plain compact-polynomial generator: Generate evaluates
// the Horner form directly, Iterate/Count enumerate the full Cartesian
// product of per-coefficient ranges. Used for both {a_n} and {b_n} in the
// generic (non-specialized) case.
type Cartesian struct{}

func (Cartesian) Generate(coeffs []int, n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = horner(coeffs, int64(i))
	}
	return out
}

func (Cartesian) Iterate(spec Spec, yield func(coeffs []int) bool) {
	iterate(spec, yield)
}

func (Cartesian) Count(spec Spec) int64 {
	return count(spec)
}
