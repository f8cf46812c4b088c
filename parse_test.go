package decimal

import "testing"

func TestParseDecimalTextBasic(t *testing.T) {
	cases := []struct {
		in         string
		wantDigits string
		wantScale  int64
		wantNeg    bool
	}{
		{"0", "0", 0, false},
		{"123", "123", 0, false},
		{"-123", "123", 0, true},
		{"+123", "123", 0, false},
		{"123.456", "123456", 3, false},
		{".5", "5", 1, false},
		{"-.5", "5", 1, true},
		{"1e2", "1", -2, false},
		{"1E+2", "1", -2, false},
		{"1e-2", "1", 2, false},
		{"1.23e2", "123", 0, false},
		{"1_000", "1000", 0, false},
		{"1,000.50", "100050", 2, false},
		{"-0", "0", 0, false},
		{"00123", "123", 0, false},
	}
	for _, c := range cases {
		p, err := parseDecimalText(c.in)
		if err != nil {
			t.Fatalf("parseDecimalText(%q): %v", c.in, err)
		}
		if string(p.digits) != c.wantDigits {
			t.Errorf("parseDecimalText(%q).digits = %q, want %q", c.in, p.digits, c.wantDigits)
		}
		if p.scale != c.wantScale {
			t.Errorf("parseDecimalText(%q).scale = %d, want %d", c.in, p.scale, c.wantScale)
		}
		if p.neg != c.wantNeg {
			t.Errorf("parseDecimalText(%q).neg = %v, want %v", c.in, p.neg, c.wantNeg)
		}
	}
}

func TestParseDecimalTextErrors(t *testing.T) {
	cases := []string{
		"", "   ", "-", "+", ".", "1.2.3", "1a", "1e", "1e+", "1.2e3x", "--1",
	}
	for _, in := range cases {
		if _, err := parseDecimalText(in); err == nil {
			t.Errorf("parseDecimalText(%q) succeeded, want error", in)
		}
	}
}

func TestParseDecimalTextTrailingDot(t *testing.T) {
	// "1." (digits, dot, no fraction) is accepted by the grammar with
	// zero fractional digits.
	p, err := parseDecimalText("1.")
	if err != nil {
		t.Fatalf("parseDecimalText(%q): %v", "1.", err)
	}
	if string(p.digits) != "1" || p.scale != 0 {
		t.Errorf("parseDecimalText(%q) = digits %q scale %d", "1.", p.digits, p.scale)
	}
}
