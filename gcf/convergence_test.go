package gcf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// piGCF builds the classical generalized continued fraction
// pi = 3 + 1/(6 + 9/(6 + 25/(6 + 49/(6 + ...)))), whose b_n term is
// (2n-1)^2 and whose a_n term is constant at 6 (with a_0 = 3).
func piGCF(terms int) GCF {
	a := make([]*big.Int, terms)
	b := make([]*big.Int, terms-1)
	a[0] = big.NewInt(3)
	for i := 1; i < terms; i++ {
		a[i] = big.NewInt(6)
	}
	for i := 1; i < terms; i++ {
		odd := int64(2*i - 1)
		b[i-1] = big.NewInt(odd * odd)
	}
	return New(a, b)
}

const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"

func piTarget(prec uint) *big.Float {
	f, _, err := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return f
}

func TestMeasureConvergesToPi(t *testing.T) {
	const prec = 512
	g := piGCF(60)
	target := piTarget(prec)

	c, err := Measure(g, target, 20, prec)
	require.NoError(t, err)
	require.Greater(t, c.Samples, 0)
	require.Greater(t, c.DigitsPerTerm, 0.0)
}

func TestMeasureRejectsTooFewWindows(t *testing.T) {
	g := piGCF(10)
	target := piTarget(512)
	_, err := Measure(g, target, 1, 512)
	require.Error(t, err)
}

func TestMeasureClampsWindowsToAvailableTerms(t *testing.T) {
	g := piGCF(5)
	target := piTarget(512)
	c, err := Measure(g, target, 100, 512)
	require.NoError(t, err)
	require.LessOrEqual(t, c.Samples, 4)
}
