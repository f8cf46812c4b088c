package decimal

import "github.com/pkg/errors"

// divideGuardDigits is the number of extra guard digits carried through
// the scaled division path: one limb's worth.
const divideGuardDigits = limbDigits

// TrueDivide returns the correctly-rounded quotient x/y at up to
// maxPrec significant digits (except the exact power-of-ten case in
// step 1):
//
//  1. fails ErrDivByZero if y is zero; returns a zero of the expected
//     scale if x is zero; divides exactly by a power of ten by shifting
//     the scale, whatever maxPrec is.
//  2. attempts an exact division when x's coefficient has at least as
//     many limbs as y's; an exact, short-enough result is returned
//     directly.
//  3. otherwise scales x's coefficient up by a guard factor and divides
//     again, stripping trailing zeros from an exact result and
//     rounding HALF_EVEN (with carry trimming) when the quotient still
//     has more than maxPrec digits.
func (x BigDecimal) TrueDivide(y BigDecimal, maxPrec int64) (BigDecimal, error) {
	if maxPrec < 0 {
		return BigDecimal{}, errors.Wrap(ErrPrecision, "BigDecimal.TrueDivide: negative precision")
	}
	if y.IsZero() {
		return BigDecimal{}, errors.Wrap(ErrDivByZero, "BigDecimal.TrueDivide")
	}
	sign := x.sign != y.sign
	if x.IsZero() {
		return NewBigDecimal(Zero(), x.scale-y.scale, false), nil
	}
	if y.coefficient.IsPowerOfTen() {
		shift := int64(y.coefficient.Digits()) - 1
		return NewBigDecimal(x.coefficient, x.scale-y.scale+shift, sign), nil
	}

	prec := uint64(maxPrec)

	if x.coefficient.numLimbs() >= y.coefficient.numLimbs() {
		q, r, err := x.coefficient.DivMod(y.coefficient)
		if err != nil {
			return BigDecimal{}, err
		}
		if r.IsZero() {
			scale := x.scale - y.scale
			if q.Digits() <= prec {
				return NewBigDecimal(q, scale, sign), nil
			}
			return finishExactOverLong(q, scale, sign, prec)
		}
	}

	k := int64(prec) + divideGuardDigits - (int64(x.coefficient.Digits()) - int64(y.coefficient.Digits()))
	if k < 0 {
		k = 0
	}
	scaledX := x.coefficient.ScaleUpByPowerOfTen(uint64(k))
	q, r, err := scaledX.DivMod(y.coefficient)
	if err != nil {
		return BigDecimal{}, err
	}
	resultScale := x.scale - y.scale + k

	if r.IsZero() {
		if tz := q.TrailingZeros(); tz > 0 {
			q = q.ScaleDownByPowerOfTen(tz)
			resultScale -= int64(tz)
		}
	}

	if q.Digits() > prec {
		n := q.Digits() - prec
		rq, carried := removeTrailingDigitsWithRounding(q, n, HalfEven, true)
		resultScale -= int64(n)
		if carried {
			resultScale--
		}
		q = rq
	}

	return NewBigDecimal(q, resultScale, sign), nil
}

// finishExactOverLong rounds an exact quotient that nonetheless exceeds
// the requested precision down to prec significant digits under
// HALF_EVEN.
func finishExactOverLong(q BigUInt, scale int64, sign bool, prec uint64) (BigDecimal, error) {
	n := q.Digits() - prec
	rq, carried := removeTrailingDigitsWithRounding(q, n, HalfEven, true)
	scale -= int64(n)
	if carried {
		scale--
	}
	return NewBigDecimal(rq, scale, sign), nil
}
