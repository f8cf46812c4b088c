package decimal

import (
	"math/rand"
	"testing"
)

func mustBigUInt(s string) BigUInt {
	p, err := parseDecimalText(s)
	if err != nil {
		panic(err)
	}
	return digitsToBigUInt(p.digits)
}

func TestBigUIntAddIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := NewBigUIntFromUint64(r.Uint64())
		if got := x.Add(Zero()); !got.Equal(x) {
			t.Fatalf("%s + 0 = %s, want %s", x, got, x)
		}
	}
}

func TestBigUIntSubSelf(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		x := NewBigUIntFromUint64(r.Uint64())
		got, err := x.Sub(x)
		if err != nil {
			t.Fatalf("Sub(%s, %s): %v", x, x, err)
		}
		if !got.IsZero() {
			t.Fatalf("%s - %s = %s, want 0", x, x, got)
		}
	}
}

func TestBigUIntSubUnderflow(t *testing.T) {
	a := mustBigUInt("100")
	b := mustBigUInt("101")
	if _, err := a.Sub(b); err == nil {
		t.Fatalf("Sub(100, 101) succeeded, want ErrUnderflow")
	}
}

func TestBigUIntDivModIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		a := NewBigUIntFromUint64(r.Uint64())
		b := NewBigUIntFromUint64(r.Uint64()%1_000_000 + 1)
		q, rem, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("DivMod(%s, %s): %v", a, b, err)
		}
		if rem.Compare(b) >= 0 {
			t.Fatalf("remainder %s >= divisor %s", rem, b)
		}
		recon := q.Mul(b).Add(rem)
		if !recon.Equal(a) {
			t.Fatalf("q*b+r = %s, want %s (q=%s r=%s b=%s)", recon, a, q, rem, b)
		}
	}
}

func TestBigUIntDivModMultiLimb(t *testing.T) {
	a := mustBigUInt("123456789012345678901234567890123456789")
	b := mustBigUInt("987654321098765432109876543")
	q, r, err := a.DivMod(b)
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	if recon := q.Mul(b).Add(r); !recon.Equal(a) {
		t.Fatalf("q*b+r = %s, want %s", recon, a)
	}
	if r.Compare(b) >= 0 {
		t.Fatalf("remainder %s >= divisor %s", r, b)
	}
}

func TestBigUIntDivByZero(t *testing.T) {
	a := mustBigUInt("5")
	if _, _, err := a.DivMod(Zero()); err == nil {
		t.Fatalf("DivMod(5, 0) succeeded, want ErrDivByZero")
	}
}

func TestBigUIntMulAgreesWithSchoolbookAndKaratsuba(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, n := range []int{1, 5, 31, 32, 33, 64, 100} {
		words := make([]uint32, n)
		for i := range words {
			words[i] = uint32(r.Int63n(limbBase))
		}
		a := newBigUIntFromWords(words)
		words2 := make([]uint32, n)
		for i := range words2 {
			words2[i] = uint32(r.Int63n(limbBase))
		}
		b := newBigUIntFromWords(words2)

		viaSchoolbook := newBigUIntFromWords(schoolbookMul(a.words, b.words))
		viaMul := a.Mul(b)
		if !viaMul.Equal(viaSchoolbook) {
			t.Fatalf("n=%d: Mul disagrees with schoolbook: %s vs %s", n, viaMul, viaSchoolbook)
		}
	}
}

func TestBigUIntSqrt(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		x := NewBigUIntFromUint64(r.Uint64())
		n := x.Sqrt()
		nSq := n.Mul(n)
		if nSq.Compare(x) > 0 {
			t.Fatalf("sqrt(%s) = %s, but %s^2 > x", x, n, n)
		}
		n1 := n.Add(One())
		n1Sq := n1.Mul(n1)
		if n1Sq.Compare(x) <= 0 {
			t.Fatalf("sqrt(%s) = %s, but (n+1)^2 <= x", x, n)
		}
	}
}

func TestBigUIntSqrtExact(t *testing.T) {
	for _, s := range []string{"0", "1", "4", "9", "100", "123454321", "1000000000000"} {
		x := mustBigUInt(s)
		n := x.Sqrt()
		if got := n.Mul(n); !got.Equal(x) {
			t.Fatalf("sqrt(%s) = %s, %s^2 = %s, want %s", s, n, n, got, s)
		}
	}
}

func TestBigUIntDigitsAndTrailingZeros(t *testing.T) {
	cases := []struct {
		s  string
		nd uint64
		tz uint64
	}{
		{"0", 1, 0},
		{"9", 1, 0},
		{"10", 2, 1},
		{"100", 3, 2},
		{"1000000000", 10, 9},
		{"12300", 5, 2},
	}
	for _, c := range cases {
		x := mustBigUInt(c.s)
		if got := x.Digits(); got != c.nd {
			t.Errorf("Digits(%s) = %d, want %d", c.s, got, c.nd)
		}
		if got := x.TrailingZeros(); got != c.tz {
			t.Errorf("TrailingZeros(%s) = %d, want %d", c.s, got, c.tz)
		}
	}
}

func TestBigUIntIsPowerOfTen(t *testing.T) {
	for _, s := range []string{"1", "10", "100", "1000000000000"} {
		if !mustBigUInt(s).IsPowerOfTen() {
			t.Errorf("IsPowerOfTen(%s) = false, want true", s)
		}
	}
	for _, s := range []string{"0", "2", "11", "101", "1000000001"} {
		if mustBigUInt(s).IsPowerOfTen() {
			t.Errorf("IsPowerOfTen(%s) = true, want false", s)
		}
	}
}

func TestBigUIntScaling(t *testing.T) {
	x := mustBigUInt("123")
	if got := x.ScaleUpByPowerOfTen(4).String(); got != "1230000" {
		t.Errorf("ScaleUpByPowerOfTen(123, 4) = %s, want 1230000", got)
	}
	if got := mustBigUInt("1230000").ScaleDownByPowerOfTen(4).String(); got != "123" {
		t.Errorf("ScaleDownByPowerOfTen(1230000, 4) = %s, want 123", got)
	}
	if got := mustBigUInt("1239").ScaleDownByPowerOfTen(1).String(); got != "123" {
		t.Errorf("floor(1239/10) = %s, want 123", got)
	}
}
