package series

import "math/big"

// Shift1 wraps another Generator and evaluates it at n+1 instead of n,
// for the case where a GCF's b_n sequence is naturally a compact
// polynomial in (n+1) rather than n.
type Shift1 struct {
	Inner Generator
}

func (s Shift1) Generate(coeffs []int, n int) []*big.Int {
	shifted := s.Inner.Generate(coeffs, n+1)
	return shifted[1:]
}

func (s Shift1) Iterate(spec Spec, yield func(coeffs []int) bool) {
	s.Inner.Iterate(spec, yield)
}

func (s Shift1) Count(spec Spec) int64 {
	return s.Inner.Count(spec)
}
