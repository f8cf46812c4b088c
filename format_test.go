package decimal

import "testing"

func TestStringFormatsByScale(t *testing.T) {
	cases := []struct {
		coeff string
		scale int64
		neg   bool
		want  string
	}{
		{"123", 0, false, "123"},
		{"123", 0, true, "-123"},
		{"123456", 3, false, "123.456"},
		{"5", 1, false, "0.5"},
		{"5", 3, false, "0.005"},
		{"0", 2, false, "0.00"},
		{"1", -2, false, "1E+2"},
		{"123", -2, false, "1.23E+4"},
	}
	for _, c := range cases {
		coeff := mustBigUInt(c.coeff)
		d := NewBigDecimal(coeff, c.scale, c.neg)
		if got := d.String(); got != c.want {
			t.Errorf("String(coeff=%s scale=%d neg=%v) = %s, want %s", c.coeff, c.scale, c.neg, got, c.want)
		}
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	d := mustDecimal(t, "123.456")
	b, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var got BigDecimal
	if err := got.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if got.Cmp(d) != 0 || got.Scale() != d.Scale() {
		t.Errorf("round trip via text = %s, want %s", got, d)
	}
}

func TestUnmarshalTextInvalid(t *testing.T) {
	var d BigDecimal
	if err := d.UnmarshalText([]byte("not a number")); err == nil {
		t.Fatalf("UnmarshalText accepted invalid input")
	}
}
