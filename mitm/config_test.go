package mitm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ranamzr/ramanujan-mitm/constant"
	"github.com/ranamzr/ramanujan-mitm/series"
)

func validConfig() SearchConfig {
	return SearchConfig{
		Constants: []constant.Constant{constant.E},
		LHSRange:  2,
		PolyA:     series.Spec{Ranges: []series.Range{{Min: -2, Max: 2}}},
		PolyB:     series.Spec{Ranges: []series.Range{{Min: -2, Max: 2}}},
	}
}

func TestValidateRejectsEmptyConstants(t *testing.T) {
	cfg := validConfig()
	cfg.Constants = nil
	require.Error(t, cfg.validate())
}

func TestValidateRejectsNonPositiveLHSRange(t *testing.T) {
	cfg := validConfig()
	cfg.LHSRange = 0
	require.Error(t, cfg.validate())
}

func TestValidateRejectsEmptyPoly(t *testing.T) {
	cfg := validConfig()
	cfg.PolyB = series.Spec{}
	require.Error(t, cfg.validate())
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.validate())
}

func TestWithDefaultsFillsZeroValues(t *testing.T) {
	cfg := validConfig()
	out := cfg.withDefaults()

	require.NotNil(t, out.AnGenerator)
	require.NotNil(t, out.BnGenerator)
	require.Equal(t, 1, out.Workers)
	require.Equal(t, 10, out.FingerprintDigits)
	require.Equal(t, 50, out.EnumDigits)
	require.Equal(t, 2000, out.VerifyDigits)
	require.Equal(t, 32, out.InitialTerms)
	require.Equal(t, 1000, out.VerifyTerms)
	require.Equal(t, 100, out.MatchDigits)
}

func TestWithDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Workers = 8
	cfg.FingerprintDigits = 6
	cfg.AnGenerator = series.Zeta3An

	out := cfg.withDefaults()
	require.Equal(t, 8, out.Workers)
	require.Equal(t, 6, out.FingerprintDigits)
	require.Equal(t, series.Zeta3An, out.AnGenerator)
}
