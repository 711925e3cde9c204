package mitm

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ranamzr/ramanujan-mitm/gcf"
	"github.com/ranamzr/ramanujan-mitm/series"
	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
	"github.com/ranamzr/ramanujan-mitm/utils/concurrency"
)

// seriesEntry pairs a coefficient vector with its already-generated term
// sequence, so the smaller of the two coefficient spaces can be evaluated
// once and held in memory while the larger is walked.
type seriesEntry struct {
	coeffs []int
	terms  []*big.Int
}

// collectCoeffs materializes every coefficient vector spec admits.
func collectCoeffs(spec series.Spec, gen series.Generator) [][]int {
	var out [][]int
	gen.Iterate(spec, func(coeffs []int) bool {
		out = append(out, append([]int(nil), coeffs...))
		return true
	})
	return out
}

// buildFiltered generates terms for every vector in coeffsList and drops
// any whose sequence contains a zero term. skipFirst, when true, exempts
// index 0 of the sequence from the zero check (the GCF's leading a_0 term
// is allowed to be 0; no other term may be).
func buildFiltered(coeffsList [][]int, gen series.Generator, n int, skipFirst bool) []seriesEntry {
	out := make([]seriesEntry, 0, len(coeffsList))
	for _, c := range coeffsList {
		terms := gen.Generate(c, n)
		from := 0
		if skipFirst {
			from = 1
		}
		if containsZero(terms[from:]) {
			continue
		}
		out = append(out, seriesEntry{coeffs: c, terms: terms})
	}
	return out
}

func containsZero(terms []*big.Int) bool {
	for _, t := range terms {
		if t.Sign() == 0 {
			return true
		}
	}
	return false
}

// firstEnumeration is the bottleneck pass: it walks the full a_n x b_n
// coefficient space, evaluates each resulting GCF's final convergent as a
// fingerprint key, and records a Match for every key present in the LHS
// table. Grounded on __first_enumeration in the reference implementation,
// including its "cache the smaller coefficient space in memory, regenerate
// the larger one per outer iteration" axis choice: Generator.Count decides
// which axis is smaller BEFORE either side's term sequences are built, so
// only the smaller side ever pays for a filtered []seriesEntry -- the
// larger side is streamed one coefficient vector at a time inside scanTile.
func (e *Engine) firstEnumeration(ctx context.Context, progress ProgressFunc) ([]Match, error) {
	cfg := e.cfg

	aCount := cfg.AnGenerator.Count(cfg.PolyA)
	bCount := cfg.BnGenerator.Count(cfg.PolyB)
	outerA := aCount > bCount // outer axis is the larger space; it is streamed, never filtered in full.

	aCoeffs := collectCoeffs(cfg.PolyA, cfg.AnGenerator)
	bCoeffs := collectCoeffs(cfg.PolyB, cfg.BnGenerator)

	var (
		innerFiltered []seriesEntry
		outerLen      int
	)
	if outerA {
		innerFiltered = buildFiltered(bCoeffs, cfg.BnGenerator, cfg.InitialTerms, false)
		outerLen = len(aCoeffs)
	} else {
		innerFiltered = buildFiltered(aCoeffs, cfg.AnGenerator, cfg.InitialTerms, true)
		outerLen = len(bCoeffs)
	}

	prec := bignum.DigitsToBits(cfg.EnumDigits)

	tiles := partition(outerLen, cfg.Workers)
	rep := newReporter(progress, "enumerate", int64(outerLen), maxInt64(int64(outerLen)/100, 1))

	var (
		mu      sync.Mutex
		done    int64
		matches int
	)

	// RunIndexed hands each tile's result back in its own slot, indexed by
	// tile position, so the final concatenation below is deterministic by
	// worker-index order regardless of which goroutine finishes first.
	slots := concurrency.RunIndexed(len(tiles), cfg.Workers, func(i int) ([]Match, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tl := tiles[i]
		local := e.scanTile(tl, outerA, aCoeffs, bCoeffs, innerFiltered, cfg.AnGenerator, cfg.BnGenerator, cfg.InitialTerms, prec)

		mu.Lock()
		done += int64(tl.End - tl.Start)
		matches += len(local)
		rep.maybe(done, matches)
		mu.Unlock()
		return local, nil
	})

	// A failed slab does not discard the others: the matches of every slab
	// that completed are returned together with the first failed slab's error.
	var (
		results  []Match
		firstErr error
	)
	for i, s := range slots {
		if s.Err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("mitm: enumeration: slab %d: %w", i, s.Err)
			}
			continue
		}
		results = append(results, s.Value...)
	}

	return results, firstErr
}

// scanTile scans one contiguous slice of the outer enumeration axis,
// streaming one coefficient vector's term sequence at a time rather than
// holding the outer axis's terms in memory.
func (e *Engine) scanTile(
	tl tile,
	outerA bool,
	aCoeffs, bCoeffs [][]int,
	innerFiltered []seriesEntry,
	anGen, bnGen series.Generator,
	initialTerms int,
	prec uint,
) []Match {
	var results []Match

	if outerA {
		for i := tl.Start; i < tl.End; i++ {
			coeffs := aCoeffs[i]
			an := anGen.Generate(coeffs, initialTerms)
			if containsZero(an[1:]) {
				continue
			}
			for _, b := range innerFiltered {
				key := gcf.New(an, b.terms).Key(prec, e.cfg.FingerprintDigits)
				if e.table.Contains(key) {
					results = append(results, Match{LHSKey: key, ANCoeffs: coeffs, BNCoeffs: b.coeffs})
				}
			}
		}
		return results
	}

	for i := tl.Start; i < tl.End; i++ {
		coeffs := bCoeffs[i]
		bn := bnGen.Generate(coeffs, initialTerms)
		if containsZero(bn) {
			continue
		}
		for _, a := range innerFiltered {
			key := gcf.New(a.terms, bn).Key(prec, e.cfg.FingerprintDigits)
			if e.table.Contains(key) {
				results = append(results, Match{LHSKey: key, ANCoeffs: a.coeffs, BNCoeffs: coeffs})
			}
		}
	}
	return results
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
