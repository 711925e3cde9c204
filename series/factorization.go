package series

import "math/big"

// Factorization wraps another Generator and weights its n-th term by the
// square of the largest integer m such that m^2 divides n (i.e. the
// "square part" of n's prime factorization). Used to force b_n terms that
// telescope against binomial-coefficient-heavy closed forms such as
// Catalan's constant.
type Factorization struct {
	Inner Generator
}

func (f Factorization) Generate(coeffs []int, n int) []*big.Int {
	base := f.Inner.Generate(coeffs, n)
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		w := squareDivisorRoot(int64(i))
		weight := new(big.Int).Mul(big.NewInt(w), big.NewInt(w))
		out[i] = new(big.Int).Mul(base[i], weight)
	}
	return out
}

func (f Factorization) Iterate(spec Spec, yield func(coeffs []int) bool) {
	f.Inner.Iterate(spec, yield)
}

func (f Factorization) Count(spec Spec) int64 {
	return f.Inner.Count(spec)
}

// squareDivisorRoot returns the largest integer m such that m^2 divides n,
// for n >= 0 (by convention, squareDivisorRoot(0) == 1, so index 0 is left
// unweighted rather than forced to zero).
func squareDivisorRoot(n int64) int64 {
	if n <= 0 {
		return 1
	}

	m := n
	root := int64(1)
	for p := int64(2); p*p <= m; p++ {
		if m%p != 0 {
			continue
		}
		e := 0
		for m%p == 0 {
			m /= p
			e++
		}
		for j := 0; j < e/2; j++ {
			root *= p
		}
	}
	return root
}
