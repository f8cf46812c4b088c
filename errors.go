package decimal

import "github.com/pkg/errors"

// Sentinel errors for this module's fallible operations: every one of
// them fails with one of these, optionally wrapped with
// errors.Wrap/Wrapf to record which operation was in progress.
var (
	// ErrParse is returned when a string does not match the number
	// grammar: empty input, a duplicate '.', stray characters, or a
	// malformed exponent.
	ErrParse = errors.New("decimal: parse error")

	// ErrDivByZero is returned by any division (BigUInt or BigDecimal)
	// whose divisor is zero.
	ErrDivByZero = errors.New("decimal: division by zero")

	// ErrUnderflow is returned by BigUInt.Sub when the minuend is
	// smaller than the subtrahend. Signed BigDecimal subtraction never
	// returns this error; negative values are representable.
	ErrUnderflow = errors.New("decimal: unsigned subtraction underflow")

	// ErrDomain is returned for inputs outside an operation's domain:
	// sqrt of a negative number, log of a non-positive number, 0**0,
	// 0**(negative), an even root of a negative number, or a negative
	// base raised to a non-integer exponent.
	ErrDomain = errors.New("decimal: domain error")

	// ErrOverflow is returned when a result's magnitude is judged
	// unrepresentable at any finite precision (e.g. exp(x) for very
	// large positive x).
	ErrOverflow = errors.New("decimal: overflow")

	// ErrPrecision is returned when a negative or otherwise invalid
	// precision is requested.
	ErrPrecision = errors.New("decimal: invalid precision")
)
