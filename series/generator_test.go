package series

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartesianGenerate(t *testing.T) {

	t.Run("ConstantPolynomial", func(t *testing.T) {
		out := Cartesian{}.Generate([]int{7}, 5)
		for i, v := range out {
			require.Equal(t, big.NewInt(7), v, "term %d", i)
		}
	})

	t.Run("LinearPolynomial", func(t *testing.T) {
		// coeffs {2, 3} -> horner(n) = 2*n + 3
		out := Cartesian{}.Generate([]int{2, 3}, 4)
		want := []int64{3, 5, 7, 9}
		for i, w := range want {
			require.Equal(t, big.NewInt(w), out[i], "term %d", i)
		}
	})
}

func TestSpecEnumeration(t *testing.T) {

	spec := Spec{Ranges: []Range{{Min: -1, Max: 1}, {Min: 0, Max: 1}}}
	require.Equal(t, 2, spec.Degree())
	require.Equal(t, int64(6), Cartesian{}.Count(spec))

	var seen [][]int
	Cartesian{}.Iterate(spec, func(coeffs []int) bool {
		seen = append(seen, append([]int(nil), coeffs...))
		return true
	})
	require.Len(t, seen, 6)
	require.Equal(t, []int{-1, 0}, seen[0])
	require.Equal(t, []int{1, 1}, seen[len(seen)-1])
}

func TestIterateStopsEarly(t *testing.T) {
	spec := Spec{Ranges: []Range{{Min: 0, Max: 9}}}
	count := 0
	Cartesian{}.Iterate(spec, func(coeffs []int) bool {
		count++
		return count < 3
	})
	require.Equal(t, 3, count)
}

func TestShift1(t *testing.T) {
	// inner(n) = n, so Shift1 evaluated at n should equal n+1.
	inner := Cartesian{}
	shifted := Shift1{Inner: inner}
	out := shifted.Generate([]int{1, 0}, 4)
	want := []int64{1, 2, 3, 4}
	for i, w := range want {
		require.Equal(t, big.NewInt(w), out[i], "term %d", i)
	}
}

func TestFactorizationWeighting(t *testing.T) {
	// inner constantly 1, so Generate should return squareDivisorRoot(i)^2.
	inner := constGenerator{value: 1}
	f := Factorization{Inner: inner}
	out := f.Generate(nil, 10)
	for i, v := range out {
		root := squareDivisorRoot(int64(i))
		require.Equal(t, new(big.Int).Mul(big.NewInt(root), big.NewInt(root)), v, "term %d", i)
	}
}

func TestPowerWeighted(t *testing.T) {
	inner := constGenerator{value: 2}
	p := PowerWeighted{Inner: inner, Exp: 3}
	out := p.Generate(nil, 4)
	want := []int64{0, 2, 16, 54} // 2*i^3
	for i, w := range want {
		require.Equal(t, big.NewInt(w), out[i], "term %d", i)
	}
}

// constGenerator is a test double returning a constant sequence.
type constGenerator struct{ value int64 }

func (c constGenerator) Generate(coeffs []int, n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = big.NewInt(c.value)
	}
	return out
}
func (c constGenerator) Iterate(spec Spec, yield func([]int) bool) {}
func (c constGenerator) Count(spec Spec) int64                     { return 0 }
