package gcf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestConvergentsKnownFraction(t *testing.T) {
	// a_n = [2, 2, 2, 2], b_n = [1, 1, 1] is the continued fraction for
	// 2 + 1/(2 + 1/(2 + 1/2)) = 29/12.
	g := New(ints(2, 2, 2, 2), ints(1, 1, 1))
	p, q := g.Convergents()
	require.Equal(t, big.NewInt(29), p)
	require.Equal(t, big.NewInt(12), q)
}

func TestEvaluateMatchesRational(t *testing.T) {
	g := New(ints(2, 2, 2, 2), ints(1, 1, 1))
	val, err := g.Evaluate(200)
	require.NoError(t, err)

	want := new(big.Float).SetPrec(200).Quo(
		new(big.Float).SetPrec(200).SetInt64(29),
		new(big.Float).SetPrec(200).SetInt64(12),
	)
	require.Equal(t, 0, val.Cmp(want))
}

func TestKeyTruncates(t *testing.T) {
	g := New(ints(2, 2, 2, 2), ints(1, 1, 1))
	key := g.Key(200, 4)
	// 29/12 = 2.41666..., truncated to 4 digits -> 24166
	require.Equal(t, int64(24166), key)
}

func TestConvergentsEmpty(t *testing.T) {
	g := New(nil, nil)
	p, q := g.Convergents()
	require.Equal(t, big.NewInt(0), p)
	require.Equal(t, big.NewInt(1), q)
}
