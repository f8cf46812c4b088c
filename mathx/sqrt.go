package mathx

import (
	decimal "github.com/decimalkit/bigdecimal"
	"github.com/pkg/errors"
)

// Sqrt returns the square root of x rounded HALF_EVEN to precision
// significant digits, using the CPython decimal approach: rescale the
// coefficient by an even power of ten so its integer square root lands
// on precision+1 digits, take that integer square root exactly, detect
// perfect squares and return their exact root without padding zeros
// (rounded only if it has more than precision digits), and nudge an inexact
// result off a multiple of 5 before the final round so HALF_EVEN never
// sees an artificial tie. The integer square root itself (BigUInt.Sqrt)
// already uses a float64-seeded Newton iteration that converges in a
// handful of steps regardless of operand size, so there is no separate
// "large input" code path here.
func Sqrt(x decimal.BigDecimal, precision int64) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, errors.Wrap(decimal.ErrPrecision, "mathx.Sqrt")
	}
	if x.Sign() && !x.IsZero() {
		return decimal.BigDecimal{}, errors.Wrap(ErrDomain, "mathx.Sqrt: negative operand")
	}
	if x.IsZero() {
		return decimal.NewBigDecimal(decimal.Zero(), 0, false), nil
	}

	coeff := x.Coefficient()
	e := x.Scale()
	if e%2 != 0 {
		coeff = coeff.ScaleUpByPowerOfTen(1)
		e--
	}
	// value = coeff * 10^-e, e even.

	baseDigits := int64(coeff.Digits())
	wantDigits := precision + 1
	haveDigits := (baseDigits + 1) / 2
	p := wantDigits - haveDigits
	if p < 0 {
		p = 0
	}
	scaled := coeff
	if p > 0 {
		scaled = coeff.ScaleUpByPowerOfTen(uint64(2 * p))
	}

	n := scaled.Sqrt()
	exact := n.Mul(n).Equal(scaled)
	resultScale := e/2 + p

	if exact {
		// Undo the 10^p rescaling so the exact root carries no padding
		// zeros; only a root longer than precision digits is rounded.
		n = n.ScaleDownByPowerOfTen(uint64(p))
		resultScale -= p
		root := decimal.NewBigDecimal(n, resultScale, false)
		if int64(n.Digits()) > precision {
			return roundSignificant(root, precision, decimal.HalfEven), nil
		}
		return root, nil
	}

	five := decimal.NewBigUIntFromUint64(5)
	if _, rem, _ := n.DivMod(five); rem.IsZero() {
		n = n.Add(decimal.One())
	}
	result := decimal.NewBigDecimal(n, resultScale, false)
	return roundSignificant(result, precision, decimal.HalfEven), nil
}
