package mathx

import (
	"math"

	decimal "github.com/decimalkit/bigdecimal"
)

// Power returns base^exponent rounded HALF_EVEN to precision
// significant digits. An integer exponent of at most nine digits is
// evaluated by binary exponentiation; otherwise the general case
// exp(exponent * ln|base|) is used, with the sign patched in afterward
// for a negative base raised to an odd integer exponent.
func Power(base, exponent decimal.BigDecimal, precision int64, cache *MathCache) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}

	if base.IsZero() && (exponent.IsZero() || exponent.Sign()) {
		return decimal.BigDecimal{}, ErrDomain
	}
	if base.Sign() && !isIntegerValued(exponent) {
		return decimal.BigDecimal{}, ErrDomain
	}
	if base.Cmp(one) == 0 {
		return roundSignificant(one, precision, decimal.HalfEven), nil
	}
	if exponent.Cmp(one) == 0 {
		return roundSignificant(base, precision, decimal.HalfEven), nil
	}

	working := precision + Buffer

	if isIntegerValued(exponent) && intExponentDigits(exponent) <= 9 {
		n, _ := exponentAsInt64(exponent)
		neg := n < 0
		if neg {
			n = -n
		}
		result := integerPower(base, n, working)
		if neg {
			var err error
			result, err = one.TrueDivide(result, working)
			if err != nil {
				return decimal.BigDecimal{}, err
			}
		}
		return roundSignificant(result, precision, decimal.HalfEven), nil
	}

	lnBase, err := Ln(base.Abs(), working, cache)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	product := exponent.Mul(lnBase)
	result, err := Exp(product, working)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	if base.Sign() && isIntegerValued(exponent) && isOddInteger(exponent) {
		result = result.Neg()
	}
	return roundSignificant(result, precision, decimal.HalfEven), nil
}

// integerPower computes base^n for a non-negative integer n via binary
// exponentiation, squaring the accumulator at each step.
func integerPower(base decimal.BigDecimal, n int64, workingPrec int64) decimal.BigDecimal {
	if n == 0 {
		return one
	}
	result := one
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = roundSignificant(result.Mul(b), workingPrec, decimal.HalfEven)
		}
		n >>= 1
		if n > 0 {
			b = roundSignificant(b.Mul(b), workingPrec, decimal.HalfEven)
		}
	}
	return result
}

// isIntegerValued reports whether d's value has no fractional part.
func isIntegerValued(d decimal.BigDecimal) bool {
	if d.Scale() <= 0 {
		return true
	}
	return d.Coefficient().TrailingZeros() >= uint64(d.Scale())
}

// isOddInteger reports whether an integer-valued d is odd.
func isOddInteger(d decimal.BigDecimal) bool {
	n, ok := exponentAsInt64(d)
	if !ok {
		return false
	}
	if n < 0 {
		n = -n
	}
	return n%2 == 1
}

// wholeMagnitude returns coefficient*10^(-scale) as a BigUInt, for an
// integer-valued d of either sign of scale.
func wholeMagnitude(d decimal.BigDecimal) decimal.BigUInt {
	if d.Scale() >= 0 {
		return d.Coefficient().ScaleDownByPowerOfTen(uint64(d.Scale()))
	}
	return d.Coefficient().ScaleUpByPowerOfTen(uint64(-d.Scale()))
}

// intExponentDigits returns the number of decimal digits in an
// integer-valued d's magnitude.
func intExponentDigits(d decimal.BigDecimal) int64 {
	return int64(wholeMagnitude(d).Digits())
}

// exponentAsInt64 converts an integer-valued d to an int64, returning
// false if it doesn't fit.
func exponentAsInt64(d decimal.BigDecimal) (int64, bool) {
	v, ok := bigUIntToUint64(wholeMagnitude(d))
	if !ok {
		return 0, false
	}
	n := int64(v)
	if d.Sign() {
		n = -n
	}
	return n, true
}

// bigUIntToUint64 converts a small BigUInt to uint64 via its decimal
// string, failing for values that don't fit.
func bigUIntToUint64(u decimal.BigUInt) (uint64, bool) {
	if u.Digits() > 19 {
		return 0, false
	}
	var v uint64
	for _, c := range u.String() {
		v = v*10 + uint64(c-'0')
	}
	return v, true
}

// Root returns the n-th root of x rounded HALF_EVEN to precision
// significant digits. n=0 is a domain error; n=2 delegates to Sqrt. A
// negative x requires an odd integer n.
func Root(x decimal.BigDecimal, n int64, precision int64) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}
	if n == 0 {
		return decimal.BigDecimal{}, ErrDomain
	}
	if n == 2 {
		return Sqrt(x, precision)
	}
	if x.Sign() && (n%2 == 0) {
		return decimal.BigDecimal{}, ErrDomain
	}

	working := precision + Buffer
	neg := x.Sign()
	xAbs := x.Abs()

	if n > 1000 {
		lnX, err := Ln(xAbs, working, NewMathCache())
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		exponent, err := lnX.TrueDivide(decimal.NewBigDecimalFromInt64(n), working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		r, err := Exp(exponent, working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		if neg {
			r = r.Neg()
		}
		return roundSignificant(r, precision, decimal.HalfEven), nil
	}

	r := fromFloat64(rootSeed(xAbs, n))
	nDec := decimal.NewBigDecimalFromInt64(n)
	nMinus1 := decimal.NewBigDecimalFromInt64(n - 1)
	prec := int64(17)
	for prec < working*2 {
		prec *= 2
		if prec > working {
			prec = working
		}
		rPow, err := integerPowerExact(r, n-1, prec)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		xOverRPow, err := xAbs.TrueDivide(rPow, prec)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		numerator := nMinus1.Mul(r).Add(xOverRPow)
		r, err = numerator.TrueDivide(nDec, prec)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		if prec >= working {
			break
		}
	}
	if neg {
		r = r.Neg()
	}
	return roundSignificant(r, precision, decimal.HalfEven), nil
}

func integerPowerExact(base decimal.BigDecimal, n int64, workingPrec int64) (decimal.BigDecimal, error) {
	if n <= 0 {
		return one, nil
	}
	return integerPower(base, n, workingPrec), nil
}

func rootSeed(x decimal.BigDecimal, n int64) float64 {
	f := toFloat64Approx(x)
	if f <= 0 {
		return 1
	}
	return math.Pow(f, 1/float64(n))
}
