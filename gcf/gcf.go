// Package gcf evaluates generalized continued fractions K(b_n / a_n) via
// their three-term convergent recurrence, the same recurrence the
// right-hand-side enumerator in package mitm uses to compute the
// fingerprint key it probes the lhs.Table with.
package gcf

import (
	"fmt"
	"math/big"

	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
)

// GCF is a generalized continued fraction a_0 + b_1/(a_1 + b_2/(a_2 + ...)),
// carried as the two coefficient sequences rather than a nested
// expression, matching the compact representation series.Generator
// produces.
type GCF struct {
	A []*big.Int
	B []*big.Int
}

// New builds a GCF from its a_n and b_n sequences. len(b) is normally
// len(a)-1 (b_0 is unused, mirroring the degenerate first term of the
// recurrence below); New tolerates len(b) == len(a) too and simply ignores
// b[len(a)-1:].
func New(a, b []*big.Int) GCF {
	return GCF{A: a, B: b}
}

// Convergents runs the three-term recurrence
//
//	p_-1 = 1, p_0 = a_0, q_-1 = 0, q_0 = 1
//	p_n = a_n*p_{n-1} + b_n*p_{n-2}
//	q_n = a_n*q_{n-1} + b_n*q_{n-2}
//
// and returns the final numerator and denominator, p and q. Grounded on
// the reference implementation's efficient_gcf_calculation helper (moved
// inline there to avoid Python function-call overhead; here it is just an
// ordinary Go function, since Go function calls carry no comparable cost).
func (g GCF) Convergents() (p, q *big.Int) {
	if len(g.A) == 0 {
		return big.NewInt(0), big.NewInt(1)
	}

	prevP, prevQ := big.NewInt(1), big.NewInt(0)
	p = new(big.Int).Set(g.A[0])
	q = big.NewInt(1)

	tmpP, tmpQ := new(big.Int), new(big.Int)
	for i := 1; i < len(g.A); i++ {
		b := bTerm(g.B, i)

		tmpP.Set(p)
		tmpQ.Set(q)

		np := new(big.Int).Mul(g.A[i], p)
		np.Add(np, new(big.Int).Mul(b, prevP))
		nq := new(big.Int).Mul(g.A[i], q)
		nq.Add(nq, new(big.Int).Mul(b, prevQ))

		prevP, prevQ = tmpP, tmpQ
		p, q = np, nq
	}
	return p, q
}

// Key evaluates the GCF's final convergent at full working precision and
// truncates it to a fingerprint key, without ever materializing p/q as a
// big.Float ratio until the very last step.
func (g GCF) Key(prec uint, digits int) int64 {
	p, q := g.Convergents()
	if q.Sign() == 0 {
		return 0
	}
	val := new(big.Float).SetPrec(prec).Quo(
		new(big.Float).SetPrec(prec).SetInt(p),
		new(big.Float).SetPrec(prec).SetInt(q),
	)
	return bignum.Key(val, digits)
}

// Evaluate returns the GCF's value as a big.Float at the given precision.
func (g GCF) Evaluate(prec uint) (*big.Float, error) {
	p, q := g.Convergents()
	if q.Sign() == 0 {
		return nil, fmt.Errorf("gcf: zero-valued final denominator")
	}
	return new(big.Float).SetPrec(prec).Quo(
		new(big.Float).SetPrec(prec).SetInt(p),
		new(big.Float).SetPrec(prec).SetInt(q),
	), nil
}

// bTerm returns b[i-1] (the shift the recurrence's 1-based b_n numbering
// needs against this package's 0-indexed slice), or 0 past the end of b.
func bTerm(b []*big.Int, i int) *big.Int {
	if i-1 < len(b) {
		return b[i-1]
	}
	return big.NewInt(0)
}
