// Package mitm implements the meet-in-the-middle search engine: it builds
// (or loads) a left-hand-side hash table, enumerates right-hand-side
// generalized continued fractions over a coefficient space, and verifies
// the resulting candidate identities to high precision.
package mitm

import (
	"fmt"

	"github.com/ranamzr/ramanujan-mitm/constant"
	"github.com/ranamzr/ramanujan-mitm/series"
)

// SearchConfig collects every control input a search run needs. It is the
// Go-native analogue of the reference implementation's parsed CLI
// namespace, minus the parsing itself -- building one of these from flags,
// a config file, or a test literal is an external collaborator's job.
type SearchConfig struct {
	// Constants are the symbols (besides the implicit 1) an LHS expression
	// may use, e.g. []constant.Constant{constant.E}.
	Constants []constant.Constant
	// LHSRange bounds the LHS coefficient search, as in lhs.Config.SearchRange.
	LHSRange int

	// PolyA, PolyB are the compact-polynomial coefficient specs for the
	// GCF's a_n and b_n sequences.
	PolyA, PolyB series.Spec
	// AnGenerator, BnGenerator choose the sequence family; nil defaults to
	// series.Cartesian{}.
	AnGenerator, BnGenerator series.Generator

	// Workers bounds how many goroutines share the first-pass enumeration;
	// <= 0 defaults to 1.
	Workers int

	// FingerprintDigits is the number of decimal digits kept in an LHS/GCF
	// fingerprint key; <= 0 defaults to 10.
	FingerprintDigits int
	// EnumDigits is the working decimal precision during the first pass;
	// <= 0 defaults to 50.
	EnumDigits int
	// VerifyDigits is the working decimal precision during verification;
	// <= 0 defaults to 2000.
	VerifyDigits int
	// InitialTerms is how many GCF terms the first pass evaluates; <= 0
	// defaults to 32.
	InitialTerms int
	// VerifyTerms is how many GCF terms verification evaluates; <= 0
	// defaults to 1000.
	VerifyTerms int
	// MatchDigits is how many leading decimal digits must agree between the
	// LHS value and the GCF value for verification to accept a match;
	// <= 0 defaults to 100.
	MatchDigits int

	// SavedHashPath, if non-empty, is where the LHS table is loaded from
	// (if present) or persisted to (if built fresh).
	SavedHashPath string
}

func (c *SearchConfig) withDefaults() SearchConfig {
	out := *c
	if out.AnGenerator == nil {
		out.AnGenerator = series.Cartesian{}
	}
	if out.BnGenerator == nil {
		out.BnGenerator = series.Cartesian{}
	}
	if out.Workers <= 0 {
		out.Workers = 1
	}
	if out.FingerprintDigits <= 0 {
		out.FingerprintDigits = 10
	}
	if out.EnumDigits <= 0 {
		out.EnumDigits = 50
	}
	if out.VerifyDigits <= 0 {
		out.VerifyDigits = 2000
	}
	if out.InitialTerms <= 0 {
		out.InitialTerms = 32
	}
	if out.VerifyTerms <= 0 {
		out.VerifyTerms = 1000
	}
	if out.MatchDigits <= 0 {
		out.MatchDigits = 100
	}
	return out
}

func (c *SearchConfig) validate() error {
	if len(c.Constants) == 0 {
		return fmt.Errorf("mitm: SearchConfig needs at least one constant")
	}
	if c.LHSRange <= 0 {
		return fmt.Errorf("mitm: SearchConfig.LHSRange must be positive")
	}
	if c.PolyA.Degree() == 0 || c.PolyB.Degree() == 0 {
		return fmt.Errorf("mitm: SearchConfig.PolyA/PolyB must have at least one coefficient range")
	}
	return nil
}

// Match is an intermediate hit from the first enumeration pass: an LHS key
// paired with the RHS coefficient vectors that produced it.
type Match struct {
	LHSKey   int64
	ANCoeffs []int
	BNCoeffs []int
}

// ValidatedIdentity is a Match that survived high-precision verification.
type ValidatedIdentity struct {
	Match      Match
	Symbolic   string
	DigitsPerTerm float64
}
