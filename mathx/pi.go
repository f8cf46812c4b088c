package mathx

import decimal "github.com/decimalkit/bigdecimal"

// piConstant100 is the widely published value of pi to 100 decimal
// places, served directly for any precision it can satisfy instead of
// running the series below.
const piConstant100 = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

// digitsPerChudnovskyTerm is the number of correct decimal digits each
// term of the Chudnovsky series contributes (approximately
// log10(640320^3/24) / 2).
const digitsPerChudnovskyTerm = 14

// Pi returns pi rounded HALF_EVEN to precision significant digits. Any
// precision within the embedded 100-digit constant is served directly;
// beyond that it uses the Chudnovsky algorithm with binary splitting,
// falling back to Machin's formula if that path returns an error. A
// precision <= 0 fails with ErrPrecision.
func Pi(precision int64) (decimal.BigDecimal, error) {
	if precision <= 0 {
		return decimal.BigDecimal{}, decimal.ErrPrecision
	}
	if precision <= 100 {
		return roundSignificant(mustParse(piConstant100), precision, decimal.HalfEven), nil
	}
	result, err := piChudnovsky(precision)
	if err != nil {
		return piMachin(precision)
	}
	return result, nil
}

// sbig is a signed arbitrary-precision integer, used internally to
// accumulate the Chudnovsky binary-splitting recursion's exact P, Q, T
// rationals before converting to decimal for the final division.
type sbig struct {
	neg bool
	mag decimal.BigUInt
}

func sbFromInt64(v int64) sbig {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return sbig{neg: neg, mag: decimal.NewBigUIntFromUint64(u)}
}

func sbMul(a, b sbig) sbig {
	return sbig{neg: a.neg != b.neg, mag: a.mag.Mul(b.mag)}
}

func sbAdd(a, b sbig) sbig {
	if a.mag.IsZero() {
		return b
	}
	if b.mag.IsZero() {
		return a
	}
	if a.neg == b.neg {
		return sbig{neg: a.neg, mag: a.mag.Add(b.mag)}
	}
	if a.mag.Compare(b.mag) >= 0 {
		d, _ := a.mag.Sub(b.mag)
		return sbig{neg: a.neg, mag: d}
	}
	d, _ := b.mag.Sub(a.mag)
	return sbig{neg: b.neg, mag: d}
}

func sbNeg(a sbig) sbig {
	if a.mag.IsZero() {
		return a
	}
	return sbig{neg: !a.neg, mag: a.mag}
}

func sbToDecimal(a sbig) decimal.BigDecimal {
	return decimal.NewBigDecimal(a.mag, 0, a.neg)
}

// chudnovskyC3Over24 is 640320^3/24, the constant factor in each term's
// denominator.
const chudnovskyC3Over24 = 10939058860032000

// chudnovskyBS computes the binary-split (P, Q, T) triple for terms
// [a, b) of the Chudnovsky series.
func chudnovskyBS(a, b int64) (P, Q, T sbig) {
	if b-a == 1 {
		if a == 0 {
			P = sbFromInt64(1)
			Q = sbFromInt64(1)
		} else {
			P = sbFromInt64((6*a - 5) * (2*a - 1) * (6*a - 1))
			aCubed := sbMul(sbMul(sbFromInt64(a), sbFromInt64(a)), sbFromInt64(a))
			Q = sbMul(aCubed, sbFromInt64(chudnovskyC3Over24))
		}
		linear := sbFromInt64(13591409 + 545140134*a)
		T = sbMul(P, linear)
		if a%2 == 1 {
			T = sbNeg(T)
		}
		return P, Q, T
	}
	m := (a + b) / 2
	Pam, Qam, Tam := chudnovskyBS(a, m)
	Pmb, Qmb, Tmb := chudnovskyBS(m, b)
	P = sbMul(Pam, Pmb)
	Q = sbMul(Qam, Qmb)
	T = sbAdd(sbMul(Qmb, Tam), sbMul(Pam, Tmb))
	return P, Q, T
}

// piChudnovsky evaluates pi = 426880*sqrt(10005)*Q / T at working
// precision, using binary splitting to build the exact rational Q/T.
func piChudnovsky(precision int64) (decimal.BigDecimal, error) {
	working := precision + Buffer
	terms := working/digitsPerChudnovskyTerm + 2

	_, Q, T := chudnovskyBS(0, terms)
	sqrt10005, err := Sqrt(mustParse("10005"), working)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	numerator := sbToDecimal(Q).Mul(decimal.NewBigDecimalFromInt64(426880)).Mul(sqrt10005)
	result, err := numerator.TrueDivide(sbToDecimal(T), precision)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	return result, nil
}

// piMachin computes pi via pi/4 = 4*arctan(1/5) - arctan(1/239), an
// independent cross-check path for the series-evaluation machinery
// that does not depend on the binary-splitting recursion above.
func piMachin(precision int64) (decimal.BigDecimal, error) {
	working := precision + Buffer
	oneFifth, _ := one.TrueDivide(decimal.NewBigDecimalFromInt64(5), working)
	oneTwoThirtyNine, _ := one.TrueDivide(decimal.NewBigDecimalFromInt64(239), working)
	a1, err := arctanWorking(oneFifth, working)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	a2, err := arctanWorking(oneTwoThirtyNine, working)
	if err != nil {
		return decimal.BigDecimal{}, err
	}
	four := decimal.NewBigDecimalFromInt64(4)
	piOver4 := four.Mul(a1).Sub(a2)
	return roundSignificant(four.Mul(piOver4), precision, decimal.HalfEven), nil
}
