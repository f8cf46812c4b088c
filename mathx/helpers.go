// Package mathx implements the transcendental kernel layered on top of
// github.com/decimalkit/bigdecimal: Sqrt, Exp, Ln, Log, Log10, Power,
// Root, Arctan, and Pi, plus the MathCache that backs the logarithm
// family. Every function shares one contract: f(x, precision) returns a
// BigDecimal holding precision significant digits, rounded HALF_EVEN on
// the final step. The exact fast paths are the exceptions: Log10 of a
// power of ten returns the integer exponent, and Sqrt of a perfect square
// returns the exact root without padding zeros.
package mathx

import (
	"math"
	"strconv"

	decimal "github.com/decimalkit/bigdecimal"
	"github.com/pkg/errors"
)

// Buffer is the number of extra guard digits carried through internal
// series evaluation and intermediate roundings before the final
// HALF_EVEN round to the caller's requested precision.
const Buffer = 9

// ErrDomain and ErrOverflow mirror the root package's sentinel errors so
// callers can errors.Is against either package without caring which
// layer detected the condition.
var (
	ErrDomain   = decimal.ErrDomain
	ErrOverflow = decimal.ErrOverflow
)

// sigDigits returns the number of significant digits in d's coefficient.
func sigDigits(d decimal.BigDecimal) int64 {
	if d.IsZero() {
		return 1
	}
	return int64(d.Coefficient().Digits())
}

// roundSignificant rounds d to prec significant digits under mode,
// widening with trailing zeros if d already has fewer than prec. A
// rounding that carries out of a run of 9s leaves prec+1 digits.
func roundSignificant(d decimal.BigDecimal, prec int64, mode decimal.RoundingMode) decimal.BigDecimal {
	if prec <= 0 {
		prec = 1
	}
	delta := sigDigits(d) - prec
	newScale := d.Scale() - delta
	return d.Round(newScale, mode)
}

// truncateDownSignificant is the cache's "truncate DOWN to prec digits"
// operation.
func truncateDownSignificant(d decimal.BigDecimal, prec int64) decimal.BigDecimal {
	return roundSignificant(d, prec, decimal.Down)
}

// toFloat64Approx converts d to the nearest float64, for seeding Newton
// iterations and similar approximate bootstraps. Precision loss here is
// expected and corrected by later exact steps.
func toFloat64Approx(d decimal.BigDecimal) float64 {
	digits := d.Coefficient().String()
	if d.IsZero() {
		return 0
	}
	var mantissa float64
	for _, c := range digits {
		mantissa = mantissa*10 + float64(c-'0')
	}
	v := mantissa * math.Pow(10, float64(-d.Scale()))
	if d.Sign() {
		v = -v
	}
	return v
}

// fromFloat64 builds a BigDecimal directly from a float64 via its
// decimal string rendering, good to about 17 significant digits.
func fromFloat64(f float64) decimal.BigDecimal {
	d, err := decimal.ParseBigDecimal(formatFloat(f))
	if err != nil {
		// f came from strconv so it always parses; a failure here
		// indicates a logic error in formatFloat, not bad input.
		panic(errors.Wrap(err, "mathx: fromFloat64"))
	}
	return d
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// log10Approx approximates log10(x) for a positive decimal x, cheaply and
// only as a range-reduction guide (never the final answer).
func log10Approx(d decimal.BigDecimal) float64 {
	if d.IsZero() {
		return math.Inf(-1)
	}
	digits := sigDigits(d)
	return float64(digits-d.Scale()) - 1 + math.Log10(leadingMantissa(d))
}

// leadingMantissa returns a float64 in [1, 10) built from d's leading
// few digits, for use in cheap approximations.
func leadingMantissa(d decimal.BigDecimal) float64 {
	digits := d.Coefficient().String()
	if len(digits) > 17 {
		digits = digits[:17]
	}
	var v float64
	for _, c := range digits {
		v = v*10 + float64(c-'0')
	}
	for v >= 10 {
		v /= 10
	}
	for v != 0 && v < 1 {
		v *= 10
	}
	return v
}

func mustParse(s string) decimal.BigDecimal {
	d, err := decimal.ParseBigDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	zero = decimal.NewBigDecimalFromInt64(0)
	one  = decimal.NewBigDecimalFromInt64(1)
	two  = decimal.NewBigDecimalFromInt64(2)
)
