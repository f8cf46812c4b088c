package mathx

import decimal "github.com/decimalkit/bigdecimal"

// MathCache memoizes the three logarithmic constants used by Ln, Log,
// and Log10, so repeated calls at a stable precision don't re-expand
// each series from scratch. It is an explicit value passed by
// reference; each call site owns its own cache, and concurrent sharing
// is the caller's responsibility.
type MathCache struct {
	ln2      decimal.BigDecimal
	ln2Prec  int64
	ln125    decimal.BigDecimal
	ln125Prec int64
	ln10     decimal.BigDecimal
	ln10Prec int64
}

// NewMathCache returns an empty cache.
func NewMathCache() *MathCache {
	return &MathCache{}
}

// GetLn2 returns ln(2) truncated DOWN to prec significant digits,
// recomputing and storing a wider value first if the cache doesn't
// already hold enough precision.
func (c *MathCache) GetLn2(prec int64) decimal.BigDecimal {
	if c.ln2Prec < prec {
		c.ln2 = computeLn2(prec + Buffer)
		c.ln2Prec = prec + Buffer
	}
	return truncateDownSignificant(c.ln2, prec)
}

// GetLn1_25 returns ln(1.25) truncated DOWN to prec significant digits.
func (c *MathCache) GetLn1_25(prec int64) decimal.BigDecimal {
	if c.ln125Prec < prec {
		c.ln125 = lnSeries(mustParse("0.25"), prec+Buffer)
		c.ln125Prec = prec + Buffer
	}
	return truncateDownSignificant(c.ln125, prec)
}

// GetLn10 returns ln(10) truncated DOWN to prec significant digits,
// composed as 3*ln2 + ln1.25 (ln 5 = 2 ln 2 + ln 1.25, ln 10 = ln 2 + ln 5)
// so it never triggers an independent ln(10) series expansion.
func (c *MathCache) GetLn10(prec int64) decimal.BigDecimal {
	if c.ln10Prec < prec {
		working := prec + Buffer
		ln2 := c.GetLn2(working)
		ln125 := c.GetLn1_25(working)
		three := decimal.NewBigDecimalFromInt64(3)
		c.ln10 = three.Mul(ln2).Add(ln125)
		c.ln10Prec = working
	}
	return truncateDownSignificant(c.ln10, prec)
}

// ln2Constant90 is a precomputed value of ln(2) to 96 digits, used directly
// whenever a caller's working precision fits within it instead of
// running the arctanh series.
const ln2Constant90 = "0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418"

// computeLn2 returns ln(2) at the requested precision: the embedded
// constant when it's wide enough, otherwise 2*arctanh(1/3).
func computeLn2(prec int64) decimal.BigDecimal {
	if prec <= int64(len(ln2Constant90))-2 {
		return roundSignificant(mustParse(ln2Constant90), prec, decimal.HalfEven)
	}
	// arctanh(1/3) = (1/2) * ln((1+1/3)/(1-1/3)) = (1/2) ln 2, so
	// ln 2 = 2*arctanh(1/3), expanded as the series z + z^3/3 + z^5/5 + ...
	// with z = 1/3, converging quickly since z < 1.
	z, _ := decimal.NewBigDecimalFromInt64(1).TrueDivide(decimal.NewBigDecimalFromInt64(3), prec+Buffer)
	sum := atanhSeries(z, prec+Buffer)
	return roundSignificant(two.Mul(sum), prec, decimal.HalfEven)
}

// atanhSeries evaluates the alternating-free series z + z^3/3 + z^5/5 +
// ... for |z| < 1, terminating when a term's magnitude drops below
// 10^-workingPrecision or the term count exceeds 2.5*workingPrecision.
func atanhSeries(z decimal.BigDecimal, workingPrec int64) decimal.BigDecimal {
	sum := z
	term := z
	zSq := roundSignificant(z.Mul(z), workingPrec, decimal.HalfEven)
	maxTerms := int64(float64(workingPrec)*2.5) + 4
	for k := int64(1); k < maxTerms; k++ {
		term = roundSignificant(term.Mul(zSq), workingPrec, decimal.HalfEven)
		denom := decimal.NewBigDecimalFromInt64(2*k + 1)
		add, _ := term.TrueDivide(denom, workingPrec)
		sum = sum.Add(add)
		if termIsNegligible(add, workingPrec) {
			break
		}
	}
	return sum
}

// termIsNegligible reports whether a series term's magnitude is below
// 10^-workingPrec, used as the standard cutoff across every series in
// this package.
func termIsNegligible(term decimal.BigDecimal, workingPrec int64) bool {
	if term.IsZero() {
		return true
	}
	// value ~ 10^(digits - scale - 1); negligible once that exponent is
	// strictly below -workingPrec.
	exp := sigDigits(term) - term.Scale() - 1
	return exp < -workingPrec
}
