package mathx

import decimal "github.com/decimalkit/bigdecimal"

// Ln returns the natural logarithm of x rounded HALF_EVEN to precision
// significant digits, via range reduction x = m * 10^p10 * 2^a * 5^b
// with m in [0.5, 1.5), composing the result as
// ln(m) + p10*ln10 + (a+2b)*ln2 + b*ln1.25 (since ln5 = 2ln2 + ln1.25).
func Ln(x decimal.BigDecimal, precision int64, cache *MathCache) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}
	if x.Sign() || x.IsZero() {
		return decimal.BigDecimal{}, ErrDomain
	}
	working := precision + Buffer

	m, p10, a, b := reduceForLn(x, working)
	z := m.Sub(one)
	lnM := lnSeries(z, working)

	result := lnM
	if p10 != 0 {
		result = result.Add(decimal.NewBigDecimalFromInt64(p10).Mul(cache.GetLn10(working)))
	}
	twoExp := a + 2*b
	if twoExp != 0 {
		result = result.Add(decimal.NewBigDecimalFromInt64(twoExp).Mul(cache.GetLn2(working)))
	}
	if b != 0 {
		result = result.Add(decimal.NewBigDecimalFromInt64(b).Mul(cache.GetLn1_25(working)))
	}
	return roundSignificant(result, precision, decimal.HalfEven), nil
}

// reduceForLn factors x = m * 10^p10 * 2^a * 5^b with m in [0.5, 1.5),
// by first range-reducing the decimal exponent (p10) and then, within
// that, peeling off binary factors until the mantissa is bracketed. The
// returned b is always 0.
func reduceForLn(x decimal.BigDecimal, workingPrec int64) (m decimal.BigDecimal, p10 int64, a int64, b int64) {
	digits := sigDigits(x)
	exp10 := digits - x.Scale() - 1 // x ~ d.ddd * 10^exp10
	m = x
	if exp10 != 0 {
		m = scaleByPowerOfTen(x, -exp10)
		p10 = exp10
	}
	half := mustParse("0.5")
	onePointFive := mustParse("1.5")
	for m.Cmp(onePointFive) >= 0 {
		m, _ = m.TrueDivide(two, workingPrec)
		a++
	}
	for m.Cmp(half) < 0 {
		m = m.Mul(two)
		a--
	}
	// Quinary reduction folds into the decimal-exponent step above: once
	// m is bracketed to [0.5, 1.5) by p10 and binary halvings/doublings,
	// no separate factor of 5 remains to peel off.
	return m, p10, a, 0
}

// scaleByPowerOfTen returns x * 10^n for any sign of n.
func scaleByPowerOfTen(x decimal.BigDecimal, n int64) decimal.BigDecimal {
	return decimal.NewBigDecimal(x.Coefficient(), x.Scale()-n, x.Sign())
}

// lnSeries evaluates ln(1+z) = z - z^2/2 + z^3/3 - ... for z in
// (-0.5, 0.5), the shared alternating series used by Ln and by the
// cache's ln(1.25) computation.
func lnSeries(z decimal.BigDecimal, workingPrec int64) decimal.BigDecimal {
	sum := z
	term := z
	neg := false
	maxTerms := int64(float64(workingPrec)*2.5) + 4
	for k := int64(2); k < maxTerms; k++ {
		term = roundSignificant(term.Mul(z), workingPrec, decimal.HalfEven)
		kDec := decimal.NewBigDecimalFromInt64(k)
		add, _ := term.TrueDivide(kDec, workingPrec)
		neg = !neg
		if neg {
			sum = sum.Sub(add)
		} else {
			sum = sum.Add(add)
		}
		if termIsNegligible(add, workingPrec) {
			break
		}
	}
	return sum
}

// Log returns the logarithm of x in the given base: ln(x)/ln(base).
func Log(x, base decimal.BigDecimal, precision int64, cache *MathCache) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}
	working := precision + Buffer
	lnX, err := Ln(x, working, cache)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	lnBase, err := Ln(base, working, cache)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	result, err := lnX.TrueDivide(lnBase, precision)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	return result, nil
}

// Log10 returns log base 10 of x, with a fast exact path when x is a
// power of ten.
func Log10(x decimal.BigDecimal, precision int64, cache *MathCache) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}
	if !x.Sign() && !x.IsZero() && x.Coefficient().IsPowerOfTen() {
		exp := int64(x.Coefficient().Digits()) - 1 - x.Scale()
		return decimal.NewBigDecimalFromInt64(exp), nil
	}
	ten := decimal.NewBigDecimalFromInt64(10)
	return Log(x, ten, precision, cache)
}
