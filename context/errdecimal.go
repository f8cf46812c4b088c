package context

import decimal "github.com/decimalkit/bigdecimal"

// ErrDecimal chains a sequence of fallible operations, skipping every
// call once the first error is seen so a caller can check once at the
// end instead of after every step.
type ErrDecimal struct {
	Ctx *Context
	Err error
}

// NewErrDecimal returns an ErrDecimal bound to ctx.
func NewErrDecimal(ctx *Context) *ErrDecimal {
	return &ErrDecimal{Ctx: ctx}
}

// Divide returns x/y at Ctx's precision, or the zero value once Err is
// set.
func (e *ErrDecimal) Divide(x, y decimal.BigDecimal) decimal.BigDecimal {
	if e.Err != nil {
		return decimal.BigDecimal{}
	}
	var r decimal.BigDecimal
	r, e.Err = e.Ctx.Divide(x, y)
	return r
}

// Sqrt returns sqrt(x) at Ctx's precision, or the zero value once Err
// is set.
func (e *ErrDecimal) Sqrt(x decimal.BigDecimal) decimal.BigDecimal {
	if e.Err != nil {
		return decimal.BigDecimal{}
	}
	var r decimal.BigDecimal
	r, e.Err = e.Ctx.Sqrt(x)
	return r
}

// Ln returns ln(x) at Ctx's precision, or the zero value once Err is
// set.
func (e *ErrDecimal) Ln(x decimal.BigDecimal) decimal.BigDecimal {
	if e.Err != nil {
		return decimal.BigDecimal{}
	}
	var r decimal.BigDecimal
	r, e.Err = e.Ctx.Ln(x)
	return r
}

// Power returns base^exponent at Ctx's precision, or the zero value
// once Err is set.
func (e *ErrDecimal) Power(base, exponent decimal.BigDecimal) decimal.BigDecimal {
	if e.Err != nil {
		return decimal.BigDecimal{}
	}
	var r decimal.BigDecimal
	r, e.Err = e.Ctx.Power(base, exponent)
	return r
}
