package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// DivRound sets the target i to round(a/b).
func DivRound(a, b, i *big.Int) {
	_a := new(big.Int).Set(a)
	i.Quo(_a, b)
	r := new(big.Int).Rem(_a, b)
	r2 := new(big.Int).Mul(r, NewInt(2))
	if r2.CmpAbs(b) != -1.0 {
		if _a.Sign() == b.Sign() {
			i.Add(i, NewInt(1))
		} else {
			i.Sub(i, NewInt(1))
		}
	}
}

// GCD returns the greatest common divisor of the given integers.
// GCD of an empty slice is 0; GCD of a single value is its absolute value.
func GCD(values ...*big.Int) *big.Int {
	g := new(big.Int)
	if len(values) == 0 {
		return g
	}
	g.Abs(values[0])
	tmp := new(big.Int)
	for _, v := range values[1:] {
		g.GCD(nil, nil, g, tmp.Abs(v))
		if g.Cmp(oneInt) == 0 {
			return g
		}
	}
	return g
}

var oneInt = big.NewInt(1)

// Key truncates x to an integer fingerprint key: int(x * 10^digits), with
// truncation toward zero -- matching the reference implementation's
// int(val * key_factor) cast, not a floor.
func Key(x *big.Float, digits int) int64 {
	scaled := new(big.Float).SetPrec(x.Prec())
	scaled.SetInt(Pow10(digits))
	scaled.Mul(scaled, x)
	i, _ := scaled.Int(nil)
	if !i.IsInt64() {
		// saturate rather than wrap: a value this large can never collide
		// with a well-formed key and is safe to treat as a non-match bucket.
		if i.Sign() < 0 {
			return int64(-1) << 62
		}
		return int64(1) << 62
	}
	return i.Int64()
}

// Pow10 returns 10^n as a *big.Int, n >= 0.
func Pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
