package constant

import (
	"fmt"
	"math/big"

	"github.com/ranamzr/ramanujan-mitm/utils/bignum"
)

// Product is a Constant whose value is the product of two sub-constants,
// e.g. Product(Pi, AcoshOf(2)) for the constant pi*acosh(2).
func Product(a, b Constant) Constant {
	return product{a: a, b: b}
}

type product struct{ a, b Constant }

func (p product) EvalAt(digits int) *big.Float {
	x := p.a.EvalAt(digits)
	y := p.b.EvalAt(digits)
	return new(big.Float).SetPrec(x.Prec()).Mul(x, y)
}

func (p product) Symbol() Symbol {
	return name(fmt.Sprintf("%s\\cdot %s", p.a.Symbol(), p.b.Symbol()))
}

// Scale is a Constant whose value is an integer multiple of a sub-constant.
func Scale(c Constant, k int64) Constant {
	return scale{c: c, k: k}
}

type scale struct {
	c Constant
	k int64
}

func (s scale) EvalAt(digits int) *big.Float {
	x := s.c.EvalAt(digits)
	return new(big.Float).SetPrec(x.Prec()).Mul(x, new(big.Float).SetPrec(x.Prec()).SetInt64(s.k))
}

func (s scale) Symbol() Symbol {
	return name(fmt.Sprintf("%d %s", s.k, s.c.Symbol()))
}

// AcoshOf returns a primitive Constant evaluating to acosh(x) for a fixed
// integer x >= 1.
func AcoshOf(x int64) Constant {
	return primitive{
		sym: fmt.Sprintf("\\operatorname{acosh}(%d)", x),
		fn: func(prec uint) *big.Float {
			return bignum.Acosh(new(big.Float).SetPrec(prec).SetInt64(x))
		},
	}
}
