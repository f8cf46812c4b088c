package decimal

import "testing"

func mustDecimal(t *testing.T, s string) BigDecimal {
	t.Helper()
	d, err := ParseBigDecimal(s)
	if err != nil {
		t.Fatalf("ParseBigDecimal(%q): %v", s, err)
	}
	return d
}

func TestParseFormatRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "0.1", "123.456", "-123.456",
		"0.000", "1E+2", "1.23E+4", "100", "1000000000.0000001",
	}
	for _, s := range cases {
		d := mustDecimal(t, s)
		if got := d.String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestAddScenario(t *testing.T) {
	x := mustDecimal(t, "0.1")
	y := mustDecimal(t, "0.2")
	if got := x.Add(y).String(); got != "0.3" {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}
}

func TestMulScenario(t *testing.T) {
	x := mustDecimal(t, "1.23")
	y := mustDecimal(t, "4.56")
	if got := x.Mul(y).String(); got != "5.6088" {
		t.Errorf("1.23 * 4.56 = %s, want 5.6088", got)
	}
}

func TestAddSubIdentity(t *testing.T) {
	x := mustDecimal(t, "123.456")
	y := mustDecimal(t, "78.9")
	got := x.Add(y).Sub(y)
	if got.Cmp(x) != 0 {
		t.Errorf("(x+y)-y = %s, want %s", got, x)
	}
}

func TestSubToZeroCanonicalScale(t *testing.T) {
	x := mustDecimal(t, "1.230")
	y := mustDecimal(t, "1.23")
	got := x.Sub(y)
	if !got.IsZero() {
		t.Fatalf("1.230 - 1.23 = %s, want zero", got)
	}
	if got.Scale() != 3 {
		t.Errorf("zero result scale = %d, want 3 (the larger operand scale)", got.Scale())
	}
}

func TestTruncateDivideModIdentity(t *testing.T) {
	x := mustDecimal(t, "17.5")
	y := mustDecimal(t, "3.2")
	q, err := x.TruncateDivide(y)
	if err != nil {
		t.Fatalf("TruncateDivide: %v", err)
	}
	m, err := x.TruncateModulo(y)
	if err != nil {
		t.Fatalf("TruncateModulo: %v", err)
	}
	got := q.Mul(y).Add(m)
	if got.Cmp(x) != 0 {
		t.Errorf("q*y+m = %s, want %s", got, x)
	}
}

func TestTrueDivideScenarios(t *testing.T) {
	cases := []struct {
		x, y string
		prec int64
		want string
	}{
		{"1", "3", 10, "0.3333333333"},
		{"10", "4", 28, "2.5"},
		{"1", "1", 28, "1"},
	}
	for _, c := range cases {
		x := mustDecimal(t, c.x)
		y := mustDecimal(t, c.y)
		got, err := x.TrueDivide(y, c.prec)
		if err != nil {
			t.Fatalf("TrueDivide(%s, %s, %d): %v", c.x, c.y, c.prec, err)
		}
		if got.String() != c.want {
			t.Errorf("TrueDivide(%s, %s, %d) = %s, want %s", c.x, c.y, c.prec, got, c.want)
		}
	}
}

func TestTrueDivideByZero(t *testing.T) {
	x := mustDecimal(t, "1")
	y := mustDecimal(t, "0")
	if _, err := x.TrueDivide(y, 10); err == nil {
		t.Fatalf("TrueDivide(1, 0) succeeded, want ErrDivByZero")
	}
}

func TestQuantizeScenario(t *testing.T) {
	x := mustDecimal(t, "1.2345")
	tmpl := mustDecimal(t, "0.01")
	got := x.Quantize(tmpl, HalfEven)
	if got.String() != "1.23" {
		t.Errorf("quantize(1.2345, 0.01, HALF_EVEN) = %s, want 1.23", got)
	}
}

func TestRoundNegativeNdigits(t *testing.T) {
	x := mustDecimal(t, "123.456")
	got := x.Round(-2, HalfEven)
	if got.String() != "1E+2" {
		t.Errorf("round(123.456, -2, HALF_EVEN) = %s, want 1E+2", got)
	}
}

func TestRoundWidensWithoutValueChange(t *testing.T) {
	x := mustDecimal(t, "1.2")
	got := x.Round(5, HalfEven)
	if got.Cmp(x) != 0 {
		t.Errorf("widening round changed value: %s vs %s", got, x)
	}
	if got.Scale() != 5 {
		t.Errorf("widening round scale = %d, want 5", got.Scale())
	}
}

func TestHalfEvenTies(t *testing.T) {
	cases := []struct {
		s    string
		n    int64
		want string
	}{
		{"0.5", 0, "0"},
		{"1.5", 0, "2"},
		{"2.5", 0, "2"},
		{"3.5", 0, "4"},
		{"0.125", 2, "0.12"},
		{"0.135", 2, "0.14"},
	}
	for _, c := range cases {
		x := mustDecimal(t, c.s)
		got := x.Round(c.n, HalfEven)
		if got.String() != c.want {
			t.Errorf("round(%s, %d, HALF_EVEN) = %s, want %s", c.s, c.n, got, c.want)
		}
	}
}

func TestDivisionByPowerOfTenIsExact(t *testing.T) {
	x := mustDecimal(t, "123.456")
	y := mustDecimal(t, "100")
	for _, prec := range []int64{1, 5, 28, 50} {
		got, err := x.TrueDivide(y, prec)
		if err != nil {
			t.Fatalf("TrueDivide: %v", err)
		}
		if got.Cmp(mustDecimal(t, "1.23456")) != 0 {
			t.Errorf("123.456/100 at prec %d = %s, want 1.23456", prec, got)
		}
	}
}

func TestNegativeScaleMultiplication(t *testing.T) {
	x := mustDecimal(t, "1E+1") // coeff 1, scale -1
	y := mustDecimal(t, "1E+1")
	got := x.Mul(y)
	if got.Scale() != -2 {
		t.Errorf("1E+1 * 1E+1 scale = %d, want -2", got.Scale())
	}
}
