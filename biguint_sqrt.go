package decimal

import (
	"math"
	"strconv"
)

// toUint64 returns x's value as a uint64 and true, or (0, false) if x
// does not fit.
func (x BigUInt) toUint64() (uint64, bool) {
	if x.Digits() > 19 {
		return 0, false
	}
	var v uint64
	for i := len(x.words) - 1; i >= 0; i-- {
		hi := v
		v = v*limbBase + uint64(x.words[i])
		if v < hi && i != len(x.words)-1 {
			return 0, false
		}
	}
	return v, true
}

// bigUIntFromFloat64Approx builds a BigUInt close to f, using f's decimal
// representation rather than a binary one so the leading digits are
// faithful. It is only used to seed Newton iterations, never to produce
// an exact result.
func bigUIntFromFloat64Approx(f float64) BigUInt {
	if f <= 0 {
		return zeroBigUInt
	}
	s := strconv.FormatFloat(f, 'e', 16, 64) // "d.dddddddddddddddde±dd"
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	_ = neg // f > 0 guaranteed by caller
	ePos := indexByte(s, 'e')
	mant := s[:ePos]
	exp := atoiSigned(s[ePos+1:])
	var digits []byte
	for i := 0; i < len(mant); i++ {
		c := mant[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	// digits holds 17 significant digits representing mant * 10^16 with
	// an implicit decimal point after the first digit; value is
	// digits(as integer) * 10^(exp-16).
	intVal := NewBigUIntFromUint64(0)
	for _, c := range digits {
		intVal = intVal.Mul(NewBigUIntFromUint64(10)).Add(NewBigUIntFromUint64(uint64(c - '0')))
	}
	shift := exp - 16
	if shift >= 0 {
		return intVal.ScaleUpByPowerOfTen(uint64(shift))
	}
	return intVal.ScaleDownByPowerOfTen(uint64(-shift))
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func atoiSigned(s string) int {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// sqrtSeed returns an initial guess for isqrt(x), derived from x's upper
// limbs via 64-bit floating point.
func sqrtSeed(x BigUInt) BigUInt {
	d := x.Digits()
	shift := int64(0)
	lead := x
	if d > 18 {
		shift = int64(d) - 18
		lead = x.ScaleDownByPowerOfTen(uint64(shift))
	}
	leadVal, ok := lead.toUint64()
	if !ok {
		leadVal = math.MaxUint64 / 2
	}
	if shift%2 != 0 {
		leadVal *= 10
		shift--
	}
	seedFloat := math.Sqrt(float64(leadVal))
	seed := bigUIntFromFloat64Approx(seedFloat)
	if shift > 0 {
		seed = seed.ScaleUpByPowerOfTen(uint64(shift / 2))
	}
	if seed.IsZero() {
		seed = One()
	}
	return seed
}

// Sqrt returns floor(sqrt(x)): the classical integer Newton iteration,
// seeded from an upper-limb float64 approximation and converging when
// the iterate stops changing or oscillates by exactly 1, in which case
// the lower of the two is returned.
func (x BigUInt) Sqrt() BigUInt {
	if x.IsZero() {
		return zeroBigUInt
	}
	n := sqrtSeed(x)
	if n.IsZero() {
		n = One()
	}
	var prev BigUInt
	havePrev := false
	for {
		// next = floor((n + x/n) / 2)
		q, _, err := x.DivMod(n)
		if err != nil {
			// n happened to be 0 from a degenerate seed; restart from 1.
			n = One()
			continue
		}
		sum := n.Add(q)
		next, _, _ := sum.DivMod(NewBigUIntFromUint64(2))
		if next.Equal(n) {
			return lowerOfSquareCandidates(next, n, x)
		}
		if havePrev && next.Equal(prev) {
			return lowerOfSquareCandidates(next, n, x)
		}
		prev, havePrev = n, true
		n = next
	}
}

// lowerOfSquareCandidates picks whichever of a, b has a square not
// exceeding x, preferring the smaller when both qualify (handles the
// ±1 oscillation case).
func lowerOfSquareCandidates(a, b, x BigUInt) BigUInt {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	if a.Mul(a).Compare(x) <= 0 {
		return a
	}
	return b
}
