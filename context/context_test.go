package context

import (
	"testing"

	decimal "github.com/decimalkit/bigdecimal"
)

func mustD(t *testing.T, s string) decimal.BigDecimal {
	t.Helper()
	d, err := decimal.ParseBigDecimal(s)
	if err != nil {
		t.Fatalf("ParseBigDecimal(%q): %v", s, err)
	}
	return d
}

func TestNewDefaultsZeroPrecision(t *testing.T) {
	c := New(0, decimal.HalfEven)
	if c.Precision() != DefaultPrecision {
		t.Errorf("Precision() = %d, want %d", c.Precision(), DefaultPrecision)
	}
}

func TestContextDivide(t *testing.T) {
	c := New(10, decimal.HalfEven)
	got, err := c.Divide(mustD(t, "1"), mustD(t, "3"))
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if got.String() != "0.3333333333" {
		t.Errorf("Divide(1, 3) = %s, want 0.3333333333", got)
	}
}

func TestContextRound(t *testing.T) {
	c := New(3, decimal.HalfEven)
	got := c.Round(mustD(t, "123.456"))
	if got.Cmp(mustD(t, "123")) != 0 {
		t.Errorf("Round(123.456) at prec 3 = %s, want 123", got)
	}
}

func TestContextSqrt(t *testing.T) {
	c := New(10, decimal.HalfEven)
	got, err := c.Sqrt(mustD(t, "4"))
	if err != nil {
		t.Fatalf("Sqrt: %v", err)
	}
	if got.Cmp(mustD(t, "2")) != 0 {
		t.Errorf("Sqrt(4) = %s, want 2", got)
	}
}

func TestErrDecimalShortCircuits(t *testing.T) {
	c := New(10, decimal.HalfEven)
	e := NewErrDecimal(c)
	e.Divide(mustD(t, "1"), mustD(t, "0"))
	if e.Err == nil {
		t.Fatalf("expected division-by-zero error")
	}
	got := e.Sqrt(mustD(t, "4"))
	if !got.IsZero() {
		t.Errorf("ErrDecimal.Sqrt after error should return zero value, got %s", got)
	}
}
