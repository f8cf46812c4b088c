package decimal

// RoundingMode selects how the rounding engine resolves the digits
// discarded when truncating a BigUInt or reshaping a BigDecimal.
type RoundingMode int

const (
	// Down truncates toward zero: the discarded digits are simply
	// dropped.
	Down RoundingMode = iota
	// Up rounds away from zero whenever any discarded digit is
	// non-zero.
	Up
	// HalfUp rounds to the nearest value, ties away from zero.
	HalfUp
	// HalfEven rounds to the nearest value, ties to the even last
	// digit (banker's rounding).
	HalfEven
	// Ceiling rounds toward positive infinity. It is translated to Up
	// or Down based on the operand's sign before the rounding engine
	// is entered.
	Ceiling
	// Floor rounds toward negative infinity, translated the same way
	// as Ceiling.
	Floor
)

// resolveSignedMode translates Ceiling/Floor to Up/Down according to
// the sign of the value being rounded. Other modes pass through
// unchanged.
func resolveSignedMode(mode RoundingMode, negative bool) RoundingMode {
	switch mode {
	case Ceiling:
		if negative {
			return Down
		}
		return Up
	case Floor:
		if negative {
			return Up
		}
		return Down
	default:
		return mode
	}
}

// removeTrailingDigitsWithRounding removes the trailing n digits of x
// under mode, returning the resulting quotient and whether a carry digit
// was trimmed. When the rounded quotient grows an extra leading digit (a
// carry out of a string of 9s) and trimCarry is set, the result is
// divided by 10 once more so its width matches floor(x/10^n)'s digit
// count and true is reported; callers that track a base-10 scale must
// bump it by one in that case. With trimCarry unset the grown quotient
// is returned as is and the flag is always false.
func removeTrailingDigitsWithRounding(x BigUInt, n uint64, mode RoundingMode, trimCarry bool) (BigUInt, bool) {
	if n == 0 {
		return x, false
	}
	q := x.ScaleDownByPowerOfTen(n)
	r := x
	if !q.IsZero() || n < x.Digits() {
		// r = x mod 10^n, computed without another full division.
		qUp := q.ScaleUpByPowerOfTen(n)
		r, _ = x.Sub(qUp)
	} else {
		r = x
	}

	if r.IsZero() {
		return q, false
	}

	roundUp := false
	switch mode {
	case Down:
		roundUp = false
	case Up:
		roundUp = true
	case HalfUp:
		roundUp = r.Digit(n-1) >= 5
	case HalfEven:
		lead := r.Digit(n - 1)
		switch {
		case lead > 5:
			roundUp = true
		case lead == 5:
			if hasNonZeroBelow(r, n-1) {
				roundUp = true
			} else {
				// exactly half: round up iff q is odd
				roundUp = q.Digit(0)%2 == 1
			}
		default:
			roundUp = false
		}
	case Ceiling, Floor:
		// Callers must resolve these via resolveSignedMode before
		// reaching the engine.
		roundUp = mode == Up
	}

	qDigitsBefore := q.Digits()
	if roundUp {
		q = q.Add(One())
	}
	carried := false
	if trimCarry && !q.IsZero() && q.Digits() > qDigitsBefore && qDigitsBefore > 0 {
		q = q.ScaleDownByPowerOfTen(1)
		carried = true
	}
	return q, carried
}

// hasNonZeroBelow reports whether any of r's digits strictly below
// position upto (exclusive) are non-zero.
func hasNonZeroBelow(r BigUInt, upto uint64) bool {
	for i := uint64(0); i < upto; i++ {
		if r.Digit(i) != 0 {
			return true
		}
	}
	return false
}
