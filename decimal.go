package decimal

import "github.com/pkg/errors"

// BigDecimal is a signed arbitrary-precision decimal number, represented
// exactly as
//
//	(-1)^sign · coefficient · 10^(-scale)
//
// Zero is always represented with sign = false; scale may still be
// non-zero to carry trailing-zero information (e.g. "0.000" vs "0").
// Positive scale means fractional digits; negative scale means a
// trailing-zero multiplier. BigDecimal is immutable at the public API:
// every operation returns a freshly constructed value.
type BigDecimal struct {
	coefficient BigUInt
	scale       int64
	sign        bool
}

// NewBigDecimal builds a BigDecimal from a coefficient, scale, and sign,
// normalizing zero to the canonical unsigned form.
func NewBigDecimal(coefficient BigUInt, scale int64, sign bool) BigDecimal {
	if coefficient.IsZero() {
		sign = false
	}
	return BigDecimal{coefficient: coefficient, scale: scale, sign: sign}
}

// NewBigDecimalFromInt64 builds an exact BigDecimal from a machine
// integer at scale 0.
func NewBigDecimalFromInt64(v int64) BigDecimal {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return NewBigDecimal(NewBigUIntFromUint64(u), 0, neg)
}

// ParseBigDecimal parses text into a BigDecimal.
func ParseBigDecimal(text string) (BigDecimal, error) {
	p, err := parseDecimalText(text)
	if err != nil {
		return BigDecimal{}, err
	}
	coeff := digitsToBigUInt(p.digits)
	return NewBigDecimal(coeff, p.scale, p.neg), nil
}

// Coefficient returns x's BigUInt magnitude.
func (x BigDecimal) Coefficient() BigUInt { return x.coefficient }

// Scale returns x's signed scale.
func (x BigDecimal) Scale() int64 { return x.scale }

// Sign returns true if x is negative. Zero is never negative.
func (x BigDecimal) Sign() bool { return x.sign }

// IsZero reports whether x is zero (at any scale).
func (x BigDecimal) IsZero() bool { return x.coefficient.IsZero() }

// Neg returns -x.
func (x BigDecimal) Neg() BigDecimal {
	if x.IsZero() {
		return x
	}
	return BigDecimal{coefficient: x.coefficient, scale: x.scale, sign: !x.sign}
}

// Abs returns |x|.
func (x BigDecimal) Abs() BigDecimal {
	return BigDecimal{coefficient: x.coefficient, scale: x.scale, sign: false}
}

// alignScales returns x and y's coefficients scaled up to a common
// scale, which is also returned.
func alignScales(x, y BigDecimal) (BigUInt, BigUInt, int64) {
	scale := x.scale
	if y.scale > scale {
		scale = y.scale
	}
	xc := x.coefficient.ScaleUpByPowerOfTen(uint64(scale - x.scale))
	yc := y.coefficient.ScaleUpByPowerOfTen(uint64(scale - y.scale))
	return xc, yc, scale
}

// Add returns the exact sum x+y. The result's scale is max(x.scale,
// y.scale).
func (x BigDecimal) Add(y BigDecimal) BigDecimal {
	xc, yc, scale := alignScales(x, y)
	switch {
	case x.sign == y.sign:
		return NewBigDecimal(xc.Add(yc), scale, x.sign)
	case xc.Compare(yc) >= 0:
		diff, _ := xc.Sub(yc)
		return NewBigDecimal(diff, scale, x.sign)
	default:
		diff, _ := yc.Sub(xc)
		return NewBigDecimal(diff, scale, y.sign)
	}
}

// Sub returns the exact difference x-y.
func (x BigDecimal) Sub(y BigDecimal) BigDecimal {
	return x.Add(y.Neg())
}

// Mul returns the exact product x*y. The result's coefficient is
// x.coefficient*y.coefficient, its scale is x.scale+y.scale, and its
// sign is the XOR of the operands' signs; no rounding is performed.
func (x BigDecimal) Mul(y BigDecimal) BigDecimal {
	coeff := x.coefficient.Mul(y.coefficient)
	return NewBigDecimal(coeff, x.scale+y.scale, x.sign != y.sign)
}

// ExtendPrecision multiplies the coefficient by 10^d and increases scale
// by d, representing trailing-zero padding with no change of value.
// d must be >= 0.
func (x BigDecimal) ExtendPrecision(d int64) BigDecimal {
	if d <= 0 {
		return x
	}
	return BigDecimal{
		coefficient: x.coefficient.ScaleUpByPowerOfTen(uint64(d)),
		scale:       x.scale + d,
		sign:        x.sign,
	}
}

// TruncateDivide returns the truncated quotient of x/y: scales are
// aligned by multiplying the smaller-scale operand by 10^|Δscale|, then
// the aligned coefficients are integer-divided. Fails with ErrDivByZero
// if y is zero.
func (x BigDecimal) TruncateDivide(y BigDecimal) (BigDecimal, error) {
	if y.IsZero() {
		return BigDecimal{}, errors.Wrap(ErrDivByZero, "BigDecimal.TruncateDivide")
	}
	xc, yc, _ := alignScales(x, y)
	q, _, err := xc.DivMod(yc)
	if err != nil {
		return BigDecimal{}, err
	}
	return NewBigDecimal(q, 0, x.sign != y.sign), nil
}

// TruncateModulo returns x - TruncateDivide(x, y)*y.
func (x BigDecimal) TruncateModulo(y BigDecimal) (BigDecimal, error) {
	q, err := x.TruncateDivide(y)
	if err != nil {
		return BigDecimal{}, err
	}
	return x.Sub(q.Mul(y)), nil
}

// Cmp returns -1, 0, or 1 as x is less than, equal to, or greater than
// y.
func (x BigDecimal) Cmp(y BigDecimal) int {
	if x.IsZero() && y.IsZero() {
		return 0
	}
	if x.sign != y.sign {
		if x.sign {
			return -1
		}
		return 1
	}
	xc, yc, _ := alignScales(x, y)
	c := xc.Compare(yc)
	if x.sign {
		return -c
	}
	return c
}

// CmpAbs returns -1, 0, or 1 comparing |x| to |y|.
func (x BigDecimal) CmpAbs(y BigDecimal) int {
	xc, yc, _ := alignScales(x, y)
	return xc.Compare(yc)
}

// Equal reports whether x and y represent the same value at the same
// scale (a strict, scale-sensitive equality -- "1.0" != "1").
func (x BigDecimal) Equal(y BigDecimal) bool {
	return x.sign == y.sign && x.scale == y.scale && x.coefficient.Equal(y.coefficient)
}

// Round reshapes v to exactly ndigits fractional digits under mode.
func (v BigDecimal) Round(ndigits int64, mode RoundingMode) BigDecimal {
	mode = resolveSignedMode(mode, v.sign)
	delta := v.scale - ndigits
	switch {
	case delta == 0:
		return v
	case delta < 0:
		return v.ExtendPrecision(-delta)
	}
	if uint64(delta) > v.coefficient.Digits() {
		return NewBigDecimal(Zero(), ndigits, v.sign)
	}
	q, _ := removeTrailingDigitsWithRounding(v.coefficient, uint64(delta), mode, false)
	return NewBigDecimal(q, ndigits, v.sign)
}

// Quantize coerces v to the scale of expTemplate, rounding (if the
// target scale is smaller than v's) or extending precision (if it is
// larger).
func (v BigDecimal) Quantize(expTemplate BigDecimal, mode RoundingMode) BigDecimal {
	delta := v.scale - expTemplate.scale
	if delta < 0 {
		return v.ExtendPrecision(-delta)
	}
	return v.Round(expTemplate.scale, mode)
}
