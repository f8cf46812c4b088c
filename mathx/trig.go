package mathx

import decimal "github.com/decimalkit/bigdecimal"

// Arctan returns atan(x) rounded HALF_EVEN to precision significant
// digits, dispatching across three ranges so the underlying Taylor
// series always converges quickly.
func Arctan(x decimal.BigDecimal, precision int64) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}
	working := precision + Buffer
	result, err := arctanWorking(x, working)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	return roundSignificant(result, precision, decimal.HalfEven), nil
}

func arctanWorking(x decimal.BigDecimal, working int64) (decimal.BigDecimal, error) {
	if x.IsZero() {
		return zero, nil
	}
	absX := x.Abs()
	half := mustParse("0.5")
	switch {
	case absX.Cmp(half) <= 0:
		return arctanSeries(x, working), nil
	case absX.Cmp(two) <= 0:
		xSq := x.Mul(x)
		onePlusXSq := one.Add(xSq)
		root, err := Sqrt(onePlusXSq, working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		denom := one.Add(root)
		half2, err := x.TrueDivide(denom, working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		inner, err := arctanWorking(half2, working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		return two.Mul(inner), nil
	default:
		recip, err := one.TrueDivide(x, working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		inner, err := arctanWorking(recip, working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		halfPi, err := halfPiWorking(working)
		if err != nil {
			return decimal.BigDecimal{}, err
		}
		if x.Sign() {
			halfPi = halfPi.Neg()
		}
		return halfPi.Sub(inner), nil
	}
}

// arctanSeries evaluates x - x^3/3 + x^5/5 - ... for |x| <= 0.5.
func arctanSeries(x decimal.BigDecimal, workingPrec int64) decimal.BigDecimal {
	sum := x
	term := x
	xSq := roundSignificant(x.Mul(x), workingPrec, decimal.HalfEven)
	neg := false
	maxTerms := int64(float64(workingPrec)*2.5) + 4
	for k := int64(1); k < maxTerms; k++ {
		term = roundSignificant(term.Mul(xSq), workingPrec, decimal.HalfEven)
		denom := decimal.NewBigDecimalFromInt64(2*k + 1)
		add, _ := term.TrueDivide(denom, workingPrec)
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

func halfPiWorking(working int64) (decimal.BigDecimal, error) {
	p, err := Pi(working)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	return p.TrueDivide(two, working)
}
