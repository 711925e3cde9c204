package mitm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ranamzr/ramanujan-mitm/constant"
	"github.com/ranamzr/ramanujan-mitm/series"
)

func toyConfig() SearchConfig {
	return SearchConfig{
		Constants: []constant.Constant{constant.E},
		LHSRange:  1,
		PolyA: series.Spec{Ranges: []series.Range{
			{Min: -2, Max: 2}, {Min: -2, Max: 2},
		}},
		PolyB: series.Spec{Ranges: []series.Range{
			{Min: -2, Max: 2}, {Min: -2, Max: 2},
		}},
		Workers:           2,
		FingerprintDigits: 6,
		InitialTerms:      12,
		VerifyTerms:       200,
		VerifyDigits:      400,
		MatchDigits:       20,
	}
}

// scenario1Config is the first of the mandatory end-to-end scenarios: C={e},
// R=2, a_n a degree-2 polynomial with coefficients in [-2,2], b_n a degree-3
// polynomial with coefficients in [-5,5], a single worker. The reference
// implementation verifies this exact configuration yields 17 validated
// identities, including 1+e over -1+e and 1 over -2+e.
func scenario1Config() SearchConfig {
	return SearchConfig{
		Constants: []constant.Constant{constant.E},
		LHSRange:  2,
		PolyA: series.Spec{Ranges: []series.Range{
			{Min: -2, Max: 2}, {Min: -2, Max: 2}, {Min: -2, Max: 2},
		}},
		PolyB: series.Spec{Ranges: []series.Range{
			{Min: -5, Max: 5}, {Min: -5, Max: 5}, {Min: -5, Max: 5}, {Min: -5, Max: 5},
		}},
		Workers:           1,
		FingerprintDigits: 10,
		EnumDigits:        50,
		InitialTerms:      32,
		VerifyTerms:       1000,
		VerifyDigits:      2000,
		MatchDigits:       100,
	}
}

func TestEngineSearchScenario1EConstant(t *testing.T) {
	cfg := scenario1Config()
	engine, err := New(cfg)
	require.NoError(t, err)

	identities, err := engine.Search(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, identities, 17)

	var symbols []string
	for _, id := range identities {
		symbols = append(symbols, id.Symbolic)
	}
	require.Contains(t, symbols, `\frac{1 + 1 e}{-1 + 1 e}`)
	require.Contains(t, symbols, `\frac{1}{-2 + 1 e}`)
}

func TestEngineSearchEndToEnd(t *testing.T) {
	cfg := toyConfig()
	engine, err := New(cfg)
	require.NoError(t, err)
	require.Greater(t, engine.Table().Len(), 0)

	var progressCalls int
	identities, err := engine.Search(context.Background(), func(p Progress) {
		progressCalls++
		require.GreaterOrEqual(t, p.Done, int64(0))
	})
	require.NoError(t, err)

	for _, id := range identities {
		require.NotEmpty(t, id.Symbolic)
		require.NotEmpty(t, id.Match.ANCoeffs)
		require.NotEmpty(t, id.Match.BNCoeffs)
	}
}

func TestEngineFindHitsThenVerifySeparately(t *testing.T) {
	cfg := toyConfig()
	engine, err := New(cfg)
	require.NoError(t, err)

	matches, err := engine.FindHits(context.Background(), nil)
	require.NoError(t, err)

	identities, err := engine.Verify(context.Background(), matches, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, len(identities), len(matches))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(SearchConfig{})
	require.Error(t, err)
}
