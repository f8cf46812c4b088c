/*
Package decimal implements arbitrary-precision decimal arithmetic: exact
and correctly-rounded computation over values of unbounded magnitude and
configurable precision, for callers (financial, scientific, systems) for
which binary floating-point rounding is unacceptable and fixed-width
decimals are insufficient.

The package is built on two value types:

  - BigUInt, an arbitrary-precision unsigned integer on a decimal radix
    (base 10^9), providing addition, subtraction, multiplication
    (schoolbook and Karatsuba), truncated division with remainder,
    integer square root, power-of-ten scaling, and digit-level queries.

  - BigDecimal, a signed arbitrary-precision decimal built as
    (sign, coefficient, scale) where the numeric value is
    (-1)^sign · coefficient · 10^(-scale). It supplies exact +, -, *,
    correctly-rounded division, and quantize/round under six rounding
    modes.

Both types are immutable values, not pointers to mutable state: every
operation takes its operands by value and returns a freshly built result,
so aliasing is never a concern and there is no receiver-reuse convention
to learn.

Every operation that can fail -- division by zero, unsigned underflow, a
value outside an operation's domain, an unrepresentable result, an
invalid precision -- returns a Go error from the taxonomy in errors.go
rather than panicking; there is no NaN or Infinity value (that is an
explicit non-goal) and no recovery inside the package. Errors propagate
to the caller, wrapped with github.com/pkg/errors so a stack trace is
available from the point of failure.

Transcendental functions (Sqrt, Exp, Ln, Log, Log10, Power, Root, Arctan,
Pi) and the precision-aware cache that backs them live in the sibling
package github.com/decimalkit/bigdecimal/mathx. An ergonomic
precision/rounding-mode wrapper lives in
github.com/decimalkit/bigdecimal/context.
*/
package decimal
