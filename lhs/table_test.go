package lhs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ranamzr/ramanujan-mitm/constant"
	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
	"github.com/ranamzr/ramanujan-mitm/utils/structs"
)

func TestBuildAndRoundTrip(t *testing.T) {
	table, err := Build(Config{
		SearchRange: 2,
		Constants:   []constant.Constant{constant.E},
		Digits:      10,
		Precision:   50,
	})
	require.NoError(t, err)
	require.Greater(t, table.Len(), 0)

	values := []*big.Float{
		new(big.Float).SetPrec(200).SetInt64(1),
		constant.E.EvalAt(50),
	}

	var checked int
	for key, entry := range exportEntries(table) {
		val, err := table.Evaluate(key, values)
		require.NoError(t, err)
		require.False(t, val.IsInf())
		require.InDelta(t, float64(key), float64(bignum.Key(val, table.Digits())), 1)
		require.NotEmpty(t, entry.Num)
		checked++
		if checked > 20 {
			break
		}
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	_, err := Build(Config{SearchRange: 0, Constants: []constant.Constant{constant.E}, Digits: 10, Precision: 50})
	require.Error(t, err)

	_, err = Build(Config{SearchRange: 2, Constants: []constant.Constant{constant.E}, Digits: 0, Precision: 50})
	require.Error(t, err)
}

func TestClone(t *testing.T) {
	cfg := Config{SearchRange: 1, Constants: []constant.Constant{constant.E}, Digits: 8, Precision: 40}
	table, err := Build(cfg)
	require.NoError(t, err)

	clone := table.Clone()
	require.True(t, table.Equal(clone))
	require.NotSame(t, table, clone)
}

func TestEqual(t *testing.T) {
	cfg := Config{SearchRange: 1, Constants: []constant.Constant{constant.E}, Digits: 8, Precision: 40}
	t1, err := Build(cfg)
	require.NoError(t, err)
	t2, err := Build(cfg)
	require.NoError(t, err)
	require.True(t, t1.Equal(t2))
}

// exportEntries is a tiny test-only accessor over the unexported map, kept
// here rather than adding an exported iteration method the rest of the
// module never needs.
func exportEntries(t *Table) structs.Map[int64, Entry] {
	return t.entries
}
