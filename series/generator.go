// Package series implements the right-hand-side polynomial-sequence
// generator contract: given a compact-polynomial coefficient vector and a
// term count N, produce the integer sequence s_0..s_(N-1), and enumerate the
// coefficient space a search specification admits.
package series

import "math/big"

// Range is one inclusive [min,max] integer range for a single
// compact-polynomial coefficient. The compact-polynomial form is Horner's
// method applied to the coefficients, high-order term first:
//
//	n(n(...(n*c_k + c_{k-1})...) + c_1) + c_0
//
// Outside this package the polynomial form is never inspected: package mitm
// only calls the Generator methods below and assumes nothing about the
// relation between coefficients and term values beyond determinism.
type Range struct{ Min, Max int }

// Spec is the Cartesian product of one Range per coefficient.
type Spec struct {
	Ranges []Range
}

// Degree is the number of coefficients (compact-polynomial degree + 1).
func (s Spec) Degree() int { return len(s.Ranges) }

// Generator is the pluggable family of right-hand-side sequence generators:
// function/iterator/count over a compact-polynomial coefficient space.
type Generator interface {
	// Generate evaluates the compact polynomial named by coeffs at n=0..N-1
	// and returns the resulting integer sequence, so that Generate(c, N)[0]
	// is the sequence's a_0 (or b_0) term, directly usable by the GCF
	// recurrence in package gcf without a re-indexing step.
	Generate(coeffs []int, n int) []*big.Int
	// Iterate enumerates every coefficient vector admitted by spec, calling
	// yield for each; it stops early if yield returns false.
	Iterate(spec Spec, yield func(coeffs []int) bool)
	// Count returns the total size of the coefficient space spec admits.
	Count(spec Spec) int64
}

// count is the Cartesian-product size of spec, shared by every Generator in
// this package since none of them changes the shape of the coefficient
// space, only how a coefficient vector maps to a sequence.
func count(spec Spec) int64 {
	total := int64(1)
	for _, r := range spec.Ranges {
		n := int64(r.Max - r.Min + 1)
		if n <= 0 {
			return 0
		}
		total *= n
	}
	return total
}

// iterate performs the Cartesian-product enumeration shared by every
// Generator in this package.
func iterate(spec Spec, yield func(coeffs []int) bool) {
	k := len(spec.Ranges)
	if k == 0 {
		return
	}
	coeffs := make([]int, k)
	for i, r := range spec.Ranges {
		coeffs[i] = r.Min
		if r.Min > r.Max {
			return
		}
	}

	for {
		if !yield(coeffs) {
			return
		}

		// odometer increment, least-significant coefficient first.
		i := k - 1
		for i >= 0 {
			coeffs[i]++
			if coeffs[i] <= spec.Ranges[i].Max {
				break
			}
			coeffs[i] = spec.Ranges[i].Min
			i--
		}
		if i < 0 {
			return
		}
	}
}

// horner evaluates the compact polynomial named by coeffs (high-order term
// first, i.e. n(n(...)+c1)+c0) at the integer n.
func horner(coeffs []int, n int64) *big.Int {
	acc := new(big.Int)
	nb := big.NewInt(n)
	for _, c := range coeffs {
		acc.Mul(acc, nb)
		acc.Add(acc, big.NewInt(int64(c)))
	}
	return acc
}
