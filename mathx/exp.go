package mathx

import decimal "github.com/decimalkit/bigdecimal"

// Exp returns e^x rounded HALF_EVEN to precision significant digits.
// log10(x) >= 20 is treated as an unrepresentable overflow; very
// negative x underflows to exact zero.
func Exp(x decimal.BigDecimal, precision int64) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}
	if x.IsZero() {
		return roundSignificant(one, precision, decimal.HalfEven), nil
	}
	if !x.Sign() {
		if log10Approx(x) >= 20 {
			return decimal.BigDecimal{}, ErrOverflow
		}
	} else {
		if log10Approx(x.Abs()) >= 20 {
			return decimal.NewBigDecimal(decimal.Zero(), precision, false), nil
		}
		inv, err := Exp(x.Neg(), precision+Buffer)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		result, err := one.TrueDivide(inv, precision)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		return roundSignificant(result, precision, decimal.HalfEven), nil
	}

	working := precision + Buffer

	// Range reduction: find the smallest k with 2^k > x, halving x' =
	// x/2^k into rapid Taylor-series territory, then square the Taylor
	// result back up k times.
	k := smallestPowerOfTwoExceeding(x)
	divisor := decimal.NewBigDecimalFromInt64(1 << uint(k))
	xPrime, err := x.TrueDivide(divisor, working)
	if err != nil {
		return decimal.BigDecimal{}, err
	}

	r := taylorExp(xPrime, working)
	for i := 0; i < k; i++ {
		r = roundSignificant(r.Mul(r), working, decimal.HalfEven)
	}
	return roundSignificant(r, precision, decimal.HalfEven), nil
}

// smallestPowerOfTwoExceeding returns the smallest non-negative k with
// 2^k > x, for a positive x.
func smallestPowerOfTwoExceeding(x decimal.BigDecimal) int {
	k := 0
	cur := one
	for cur.Cmp(x) <= 0 {
		k++
		cur = cur.Mul(two)
	}
	return k
}

// taylorExp evaluates 1 + x + x^2/2! + x^3/3! + ... for an x already
// reduced below 1 in magnitude, terminating when a term's magnitude
// drops below 10^-workingPrecision or the term count exceeds
// 2.5*workingPrecision.
func taylorExp(x decimal.BigDecimal, workingPrec int64) decimal.BigDecimal {
	sum := one.Add(x)
	term := x
	maxTerms := int64(float64(workingPrec)*2.5) + 4
	for k := int64(2); k < maxTerms; k++ {
		term = roundSignificant(term.Mul(x), workingPrec, decimal.HalfEven)
		kDec := decimal.NewBigDecimalFromInt64(k)
		term, _ = term.TrueDivide(kDec, workingPrec)
		sum = sum.Add(term)
		if termIsNegligible(term, workingPrec) {
			break
		}
	}
	return sum
}
