// Package constant supplies high-precision numeric values for the named
// mathematical constants used as building blocks of LHS expressions (e,
// pi, zeta(3), Catalan's constant, and products/scalings thereof), together
// with an opaque symbolic handle consumed only by presentation-layer code.
package constant

import "math/big"

// Constant is a pluggable numeric value: EvalAt computes it to the
// requested decimal-digit precision, Symbol returns an opaque handle used
// only for presentation (rendering is out of scope for this module).
type Constant interface {
	EvalAt(digits int) *big.Float
	Symbol() Symbol
}

// Symbol is an opaque presentation handle for a Constant. The core never
// inspects it beyond calling String(); LaTeX/pretty-print rendering is an
// external collaborator's job.
type Symbol interface {
	String() string
}

// name is the simplest Symbol: a literal string, used by every primitive
// constant in this package.
type name string

func (n name) String() string { return string(n) }
