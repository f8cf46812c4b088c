// Package context provides an ergonomic precision/rounding-mode wrapper
// around github.com/decimalkit/bigdecimal, bundling the two settings
// every call site otherwise has to thread through by hand, and an
// error-collecting helper for chaining several operations before a
// single check at the end.
package context

import (
	decimal "github.com/decimalkit/bigdecimal"
	"github.com/decimalkit/bigdecimal/mathx"
)

// DefaultPrecision is used by New when a caller passes 0.
const DefaultPrecision = 28

// Context bundles a precision and rounding mode for TrueDivide,
// Round, and the mathx transcendentals, and owns a MathCache shared
// across its Ln/Log/Log10/Power calls.
type Context struct {
	prec  int64
	mode  decimal.RoundingMode
	cache *mathx.MathCache
}

// New returns a Context with the given precision and rounding mode. A
// prec of 0 is replaced with DefaultPrecision.
func New(prec int64, mode decimal.RoundingMode) *Context {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	return &Context{prec: prec, mode: mode, cache: mathx.NewMathCache()}
}

// Precision returns c's precision.
func (c *Context) Precision() int64 { return c.prec }

// Mode returns c's rounding mode.
func (c *Context) Mode() decimal.RoundingMode { return c.mode }

// SetPrecision updates c's precision and returns c.
func (c *Context) SetPrecision(prec int64) *Context {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	c.prec = prec
	return c
}

// SetMode updates c's rounding mode and returns c.
func (c *Context) SetMode(mode decimal.RoundingMode) *Context {
	c.mode = mode
	return c
}

// Divide returns x/y correctly rounded to c's precision (exactly, when y
// is a power of ten).
func (c *Context) Divide(x, y decimal.BigDecimal) (decimal.BigDecimal, error) {
	return x.TrueDivide(y, c.prec)
}

// Round rounds x to c's precision significant digits under c's mode.
func (c *Context) Round(x decimal.BigDecimal) decimal.BigDecimal {
	digits := int64(x.Coefficient().Digits())
	if x.IsZero() {
		digits = 1
	}
	delta := digits - c.prec
	return x.Round(x.Scale()-delta, c.mode)
}

// Sqrt, Exp, Ln, Log10, and Pi forward to the mathx package at c's
// precision, sharing c's MathCache across calls that need it.
func (c *Context) Sqrt(x decimal.BigDecimal) (decimal.BigDecimal, error) {
	return mathx.Sqrt(x, c.prec)
}

func (c *Context) Exp(x decimal.BigDecimal) (decimal.BigDecimal, error) {
	return mathx.Exp(x, c.prec)
}

func (c *Context) Ln(x decimal.BigDecimal) (decimal.BigDecimal, error) {
	return mathx.Ln(x, c.prec, c.cache)
}

func (c *Context) Log(x, base decimal.BigDecimal) (decimal.BigDecimal, error) {
	return mathx.Log(x, base, c.prec, c.cache)
}

func (c *Context) Log10(x decimal.BigDecimal) (decimal.BigDecimal, error) {
	return mathx.Log10(x, c.prec, c.cache)
}

func (c *Context) Power(base, exponent decimal.BigDecimal) (decimal.BigDecimal, error) {
	return mathx.Power(base, exponent, c.prec, c.cache)
}

func (c *Context) Root(x decimal.BigDecimal, n int64) (decimal.BigDecimal, error) {
	return mathx.Root(x, n, c.prec)
}

func (c *Context) Arctan(x decimal.BigDecimal) (decimal.BigDecimal, error) {
	return mathx.Arctan(x, c.prec)
}

func (c *Context) Pi() (decimal.BigDecimal, error) {
	return mathx.Pi(c.prec)
}
