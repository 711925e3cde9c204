// Package lhs builds and queries the left-hand-side hash table: the set of
// rational-in-constants expressions (a0 + a1*x1 + ... )/(b0 + b1*x1 + ...)
// whose numeric value is reachable within a small integer search range,
// keyed by a truncated decimal fingerprint for constant-time lookup from
// the right-hand-side enumerator in package mitm.
package lhs

import (
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/ranamzr/ramanujan-mitm/constant"
	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
	"github.com/ranamzr/ramanujan-mitm/utils/structs"
)

// Entry is the coefficient pair stored under a fingerprint key: Num and Den
// each hold one coefficient per term, term 0 being the constant 1 and term
// i>0 being the i-th configured constant.
type Entry struct {
	Num []int
	Den []int
}

// Clone returns a deep copy of e, satisfying structs.Cloner so Entry can be
// stored in a structs.Map.
func (e Entry) Clone() *Entry {
	return &Entry{
		Num: append([]int(nil), e.Num...),
		Den: append([]int(nil), e.Den...),
	}
}

// Config controls how a Table is built.
type Config struct {
	// SearchRange bounds every coefficient to [-SearchRange, SearchRange].
	SearchRange int
	// Constants are the symbols x1, x2, ... available to the expression
	// besides the implicit constant term.
	Constants []constant.Constant
	// Digits is the number of decimal digits kept in a fingerprint key.
	Digits int
	// Precision is the decimal precision constants are evaluated at while
	// building the table; it should comfortably exceed Digits.
	Precision int
}

// Table is the built hash table: fingerprint key -> coefficient pair.
type Table struct {
	entries structs.Map[int64, Entry]
	digits  int
}

// Build enumerates every coefficient pair admitted by cfg, discards the
// ones that collide with a rational-number blacklist or one another, and
// returns the resulting Table.
//
// Grounded on LHSHashTable.__init__ from the reference implementation: the
// blacklist-then-enumerate structure, the "numerator <= 0" dedup rule, the
// "gcd over every stored coefficient" simplification rule, and the
// "discard denominator == 0" rule are all carried over unchanged; only the
// arithmetic is re-expressed with Go's math/big instead of mpmath.
func Build(cfg Config) (*Table, error) {
	if cfg.SearchRange <= 0 {
		return nil, fmt.Errorf("lhs: SearchRange must be positive, got %d", cfg.SearchRange)
	}
	if cfg.Digits <= 0 {
		return nil, fmt.Errorf("lhs: Digits must be positive, got %d", cfg.Digits)
	}

	prec := bignum.DigitsToBits(cfg.Precision)
	values := make([]*big.Float, len(cfg.Constants)+1)
	values[0] = new(big.Float).SetPrec(prec).SetInt64(1)
	for i, c := range cfg.Constants {
		values[i+1] = c.EvalAt(cfg.Precision)
	}

	blacklist := rationalBlacklist(cfg.SearchRange, cfg.Digits)

	t := &Table{
		entries: make(structs.Map[int64, Entry]),
		digits:  cfg.Digits,
	}

	n := len(values)
	tops := make([][]int, 0)
	enumerateCoeffs(n, cfg.SearchRange, func(c []int) {
		tops = append(tops, append([]int(nil), c...))
	})
	bottoms := tops // identical shape, safe to reuse the enumeration

	denominators := make([]*big.Float, len(bottoms))
	for i, bot := range bottoms {
		denominators[i] = weightedSum(bot, values, prec)
	}

	for _, top := range tops {
		numerator := weightedSum(top, values, prec)
		if numerator.Sign() <= 0 {
			// keep only positive numerators to avoid storing the same
			// fraction twice under a sign flip of both coefficient vectors.
			continue
		}

		for bi, bot := range bottoms {
			if !coprime(top, bot) {
				continue
			}
			den := denominators[bi]
			if den.Sign() == 0 {
				continue
			}

			val := new(big.Float).SetPrec(prec).Quo(numerator, den)
			key := bignum.Key(val, cfg.Digits)
			if blacklist[key] {
				continue
			}
			t.entries[key] = &Entry{
				Num: append([]int(nil), top...),
				Den: append([]int(nil), bot...),
			}
		}
	}

	return t, nil
}

// Contains reports whether key has a stored expression.
func (t *Table) Contains(key int64) bool {
	_, ok := t.entries[key]
	return ok
}

// Get returns the coefficient pair stored under key.
func (t *Table) Get(key int64) (Entry, bool) {
	e, ok := t.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Clone returns a deep copy of t, independent of any future mutation to the
// original (Table itself is otherwise immutable after Build, but a caller
// handing a *Table to concurrent callers may still want its own copy).
func (t *Table) Clone() *Table {
	return &Table{entries: *t.entries.Clone(), digits: t.digits}
}

// Len returns the number of stored expressions.
func (t *Table) Len() int { return len(t.entries) }

// Digits returns the fingerprint precision the table was built with.
func (t *Table) Digits() int { return t.digits }

// Evaluate computes the numeric value of the expression stored under key,
// given the same constant values (term 0 implicitly being 1) used to
// build the table, at the precision carried by values.
func (t *Table) Evaluate(key int64, values []*big.Float) (*big.Float, error) {
	e, ok := t.entries[key]
	if !ok {
		return nil, fmt.Errorf("lhs: no entry for key %d", key)
	}
	num := weightedSumFloat(e.Num, values)
	den := weightedSumFloat(e.Den, values)
	if den.Sign() == 0 {
		return nil, fmt.Errorf("lhs: zero denominator for key %d", key)
	}
	return new(big.Float).SetPrec(num.Prec()).Quo(num, den), nil
}

// EvaluateSymbolic formats the expression stored under key as a LaTeX-style
// fraction over the given symbols (symbols[i] names term i+1; term 0 is
// the implicit constant 1).
func (t *Table) EvaluateSymbolic(key int64, symbols []constant.Symbol) (string, error) {
	e, ok := t.entries[key]
	if !ok {
		return "", fmt.Errorf("lhs: no entry for key %d", key)
	}
	return fmt.Sprintf("\\frac{%s}{%s}", symbolicSum(e.Num, symbols), symbolicSum(e.Den, symbols)), nil
}

// Equal reports whether t and other were built with the same digit
// precision and store the same set of fingerprint keys; the coefficient
// pairs stored under those keys are not compared.
func (t *Table) Equal(other *Table) bool {
	if other == nil || t.digits != other.digits {
		return false
	}
	return cmp.Equal(t.entries, other.entries, cmp.Comparer(func(a, b *Entry) bool { return true }))
}

func weightedSum(coeffs []int, values []*big.Float, prec uint) *big.Float {
	acc := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)
	for i, c := range coeffs {
		term.SetInt64(int64(c))
		term.Mul(term, values[i])
		acc.Add(acc, term)
	}
	return acc
}

func weightedSumFloat(coeffs []int, values []*big.Float) *big.Float {
	prec := values[0].Prec()
	return weightedSum(coeffs, values, prec)
}

func symbolicSum(coeffs []int, symbols []constant.Symbol) string {
	s := fmt.Sprintf("%d", coeffs[0])
	for i := 1; i < len(coeffs); i++ {
		if coeffs[i] == 0 {
			continue
		}
		s += fmt.Sprintf(" + %d %s", coeffs[i], symbols[i-1])
	}
	return s
}

func coprime(top, bot []int) bool {
	ints := make([]*big.Int, 0, len(top)+len(bot))
	for _, c := range top {
		ints = append(ints, big.NewInt(int64(c)))
	}
	for _, c := range bot {
		ints = append(ints, big.NewInt(int64(c)))
	}
	return bignum.GCD(ints...).Cmp(big.NewInt(1)) == 0
}

// enumerateCoeffs calls yield with every vector in [-r,r]^n, reusing a
// single backing slice (the callback must copy if it retains the value).
func enumerateCoeffs(n, r int, yield func([]int)) {
	coeffs := make([]int, n)
	for i := range coeffs {
		coeffs[i] = -r
	}
	for {
		yield(coeffs)
		i := n - 1
		for i >= 0 {
			coeffs[i]++
			if coeffs[i] <= r {
				break
			}
			coeffs[i] = -r
			i--
		}
		if i < 0 {
			return
		}
	}
}

// rationalBlacklist returns the set of fingerprint keys that correspond to
// plain rationals p/q with p, q in [-r,r]\{0} -- values independent of any
// constant, which must not be mistaken for a genuine hit. Matches the
// reference implementation's "+-1 for numeric errors in keys" widening.
func rationalBlacklist(r, digits int) map[int64]bool {
	blacklist := make(map[int64]bool)
	prec := bignum.DigitsToBits(digits + 8)
	for p := -r; p <= r; p++ {
		if p == 0 {
			continue
		}
		for q := -r; q <= r; q++ {
			if q == 0 {
				continue
			}
			val := new(big.Float).SetPrec(prec).Quo(
				new(big.Float).SetPrec(prec).SetInt64(int64(p)),
				new(big.Float).SetPrec(prec).SetInt64(int64(q)),
			)
			key := bignum.Key(val, digits)
			blacklist[key] = true
			blacklist[key+1] = true
			blacklist[key-1] = true
		}
	}
	return blacklist
}
