package mitm

import (
	"context"
	"math/big"

	"github.com/ranamzr/ramanujan-mitm/constant"
	"github.com/ranamzr/ramanujan-mitm/gcf"
	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
)

// verify re-evaluates every candidate Match at verification precision and
// keeps only the ones whose LHS and GCF values agree digit-for-digit in
// their first cfg.MatchDigits significant decimal digits. Grounded on __refine_results in the
// reference implementation, including its "compare the nstr-formatted
// strings" acceptance test -- string comparison over a fixed digit count
// sidesteps the rounding-boundary ambiguity a numeric tolerance check
// would introduce.
//
// The comparison itself runs at double cfg.VerifyDigits (V_DPS = 2*VERIFY_DPS)
// to absorb the truncation error a finite GCF convergent carries relative to
// the true value; the convergence-rate diagnostic afterwards runs at the
// un-doubled cfg.VerifyDigits, since it only measures a rate of digit gain
// rather than needing headroom against truncation error.
func (e *Engine) verify(ctx context.Context, matches []Match, progress ProgressFunc) ([]ValidatedIdentity, error) {
	cfg := e.cfg
	verifyDigits := 2 * cfg.VerifyDigits
	prec := bignum.DigitsToBits(verifyDigits)
	convPrec := bignum.DigitsToBits(cfg.VerifyDigits)

	values := make([]*big.Float, len(cfg.Constants)+1)
	values[0] = new(big.Float).SetPrec(prec).SetInt64(1)
	for i, c := range cfg.Constants {
		values[i+1] = c.EvalAt(verifyDigits)
	}

	rep := newReporter(progress, "verify", int64(len(matches)), maxInt64(int64(len(matches))/20, 1))

	var out []ValidatedIdentity
	for i, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lhsVal, err := e.table.Evaluate(m.LHSKey, values)
		if err != nil {
			rep.maybe(int64(i+1), len(out))
			continue
		}
		if lhsVal.IsInf() {
			rep.maybe(int64(i+1), len(out))
			continue
		}

		an := cfg.AnGenerator.Generate(m.ANCoeffs, cfg.VerifyTerms)
		bn := cfg.BnGenerator.Generate(m.BNCoeffs, cfg.VerifyTerms)
		val, err := gcf.New(an, bn).Evaluate(prec)
		if err != nil {
			rep.maybe(int64(i+1), len(out))
			continue
		}

		lhsStr := bignum.TruncateDecimalString(lhsVal, cfg.MatchDigits)
		rhsStr := bignum.TruncateDecimalString(val, cfg.MatchDigits)
		if lhsStr != rhsStr {
			rep.maybe(int64(i+1), len(out))
			continue
		}

		symbolic, err := e.table.EvaluateSymbolic(m.LHSKey, e.symbols)
		if err != nil {
			rep.maybe(int64(i+1), len(out))
			continue
		}

		rate, convErr := gcf.Measure(gcf.New(an, bn), lhsVal, minInt(cfg.VerifyTerms-1, 20), convPrec)
		digitsPerTerm := 0.0
		if convErr == nil {
			digitsPerTerm = rate.DigitsPerTerm
		}

		out = append(out, ValidatedIdentity{
			Match:         m,
			Symbolic:      symbolic,
			DigitsPerTerm: digitsPerTerm,
		})
		rep.maybe(int64(i+1), len(out))
	}

	return out, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func constantSymbols(constants []constant.Constant) []constant.Symbol {
	out := make([]constant.Symbol, len(constants))
	for i, c := range constants {
		out[i] = c.Symbol()
	}
	return out
}
