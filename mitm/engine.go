package mitm

import (
	"context"
	"fmt"

	"github.com/ranamzr/ramanujan-mitm/constant"
	"github.com/ranamzr/ramanujan-mitm/lhs"
)

// Engine is a configured search: a built left-hand-side hash table plus the
// right-hand-side generator choices needed to enumerate and verify
// candidate identities. Grounded on the reference implementation's
// EnumerateOverGCF, which bundles exactly these three phases behind one
// constructor and a find_hits method.
type Engine struct {
	cfg     SearchConfig
	table   *lhs.Table
	symbols []constant.Symbol
}

// New builds (or loads, if cfg.SavedHashPath already exists) the engine's
// LHS hash table and returns a ready-to-run Engine.
func New(cfg SearchConfig) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	full := cfg.withDefaults()

	build := func() (*lhs.Table, error) {
		return lhs.Build(lhs.Config{
			SearchRange: full.LHSRange,
			Constants:   full.Constants,
			Digits:      full.FingerprintDigits,
			Precision:   full.EnumDigits,
		})
	}

	var table *lhs.Table
	var err error
	if full.SavedHashPath != "" {
		table, err = lhs.DefaultRegistry.LoadOrBuild(full.SavedHashPath, build)
	} else {
		table, err = build()
	}
	if err != nil {
		return nil, fmt.Errorf("mitm: building hash table: %w", err)
	}

	return &Engine{
		cfg:     full,
		table:   table,
		symbols: constantSymbols(full.Constants),
	}, nil
}

// Table returns the engine's built left-hand-side hash table, e.g. for
// inspection or explicit persistence via lhs.Table.Save.
func (e *Engine) Table() *lhs.Table { return e.table }

// FindHits runs the first-pass enumeration and returns every coefficient
// pair whose GCF fingerprint collides with a stored LHS expression. These
// are candidates, not yet verified to high precision -- call Verify (or
// Search, which does both) before trusting a Match as a real identity. If a
// slab of the enumeration fails, the matches of the slabs that completed
// are returned together with the error.
func (e *Engine) FindHits(ctx context.Context, progress ProgressFunc) ([]Match, error) {
	return e.firstEnumeration(ctx, progress)
}

// Verify re-checks each Match at twice e.cfg.VerifyDigits decimal digits of
// working precision and returns only the ones that survive. Probabilistic
// under-coverage is possible but over-reporting is not: every returned
// ValidatedIdentity agrees with its LHS value in its first MatchDigits
// significant decimal digits.
func (e *Engine) Verify(ctx context.Context, matches []Match, progress ProgressFunc) ([]ValidatedIdentity, error) {
	return e.verify(ctx, matches, progress)
}

// Search runs FindHits followed by Verify, the full two-phase pipeline.
//
// A genuine identity can still be missed if its fingerprint key happens to
// round to a different integer than the corresponding LHS table entry's
// key (both are truncations of the same real number, computed along
// different arithmetic paths); this is accepted as a probabilistic
// under-coverage, not corrected for, matching the reference
// implementation's behavior.
func (e *Engine) Search(ctx context.Context, progress ProgressFunc) ([]ValidatedIdentity, error) {
	matches, err := e.FindHits(ctx, progress)
	if err != nil {
		return nil, err
	}
	return e.Verify(ctx, matches, progress)
}
