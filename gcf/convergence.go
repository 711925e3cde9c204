package gcf

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
)

// Convergence summarizes how quickly a GCF's convergents approach a target
// value: the mean and standard deviation of decimal digits gained per
// additional term, computed over a window of successive convergents.
//
// Grounded on the reference implementation's calculate_convergence, which
// fits a rate of "digits of agreement per term" by comparing consecutive
// convergents against the target value at very high precision.
type Convergence struct {
	DigitsPerTerm float64
	StdDev        float64
	Samples       int
}

// Measure evaluates the last windows+1 partial convergents of g (using
// prec bits of working precision throughout) and returns the rate at
// which they approach target.
func Measure(g GCF, target *big.Float, windows int, prec uint) (Convergence, error) {
	if windows < 2 {
		return Convergence{}, fmt.Errorf("gcf: convergence needs at least 2 windows, got %d", windows)
	}
	maxTerms := len(g.A)
	if windows+1 > maxTerms {
		windows = maxTerms - 1
	}
	if windows < 2 {
		return Convergence{}, fmt.Errorf("gcf: not enough terms (%d) to measure convergence", maxTerms)
	}

	digits := make([]float64, 0, windows)
	for n := maxTerms - windows; n <= maxTerms; n++ {
		partial := GCF{A: g.A[:n], B: g.B[:minInt(n, len(g.B))]}
		val, err := partial.Evaluate(prec)
		if err != nil {
			continue
		}
		digits = append(digits, decimalAgreement(val, target))
	}
	if len(digits) < 2 {
		return Convergence{}, fmt.Errorf("gcf: too few usable convergents to measure a rate")
	}

	diffs := make([]float64, 0, len(digits)-1)
	for i := 1; i < len(digits); i++ {
		diffs = append(diffs, digits[i]-digits[i-1])
	}

	mean, err := stats.Mean(diffs)
	if err != nil {
		return Convergence{}, fmt.Errorf("gcf: convergence mean: %w", err)
	}
	sd, err := stats.StandardDeviation(diffs)
	if err != nil {
		return Convergence{}, fmt.Errorf("gcf: convergence stddev: %w", err)
	}

	return Convergence{DigitsPerTerm: mean, StdDev: sd, Samples: len(diffs)}, nil
}

// decimalAgreement returns an approximate count of decimal digits val and
// target agree on, as log10(1/|val-target|) clamped to [0, prec*log10(2)].
func decimalAgreement(val, target *big.Float) float64 {
	diff := new(big.Float).SetPrec(val.Prec()).Sub(val, target)
	diff.Abs(diff)
	if diff.Sign() == 0 {
		return float64(val.Prec()) * 0.30103
	}
	f, _ := diff.Float64()
	if f == 0 {
		return float64(val.Prec()) * 0.30103
	}
	d := -math.Log10(math.Abs(f))
	if d < 0 {
		return 0
	}
	if limit := float64(val.Prec()) * 0.30103; d > limit {
		return limit
	}
	return d
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
