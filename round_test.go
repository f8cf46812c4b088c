package decimal

import "testing"

func TestRemoveTrailingDigitsDown(t *testing.T) {
	x := mustBigUInt("12345")
	q, carried := removeTrailingDigitsWithRounding(x, 2, Down, false)
	if carried {
		t.Fatalf("unexpected carry")
	}
	if got := q.String(); got != "123" {
		t.Errorf("Down(12345, 2) = %s, want 123", got)
	}
}

func TestRemoveTrailingDigitsUp(t *testing.T) {
	x := mustBigUInt("12340")
	q, _ := removeTrailingDigitsWithRounding(x, 2, Up, false)
	if got := q.String(); got != "124" {
		t.Errorf("Up(12340, 2) = %s, want 124", got)
	}
	// exact multiple: Up must not round a zero remainder upward.
	exact := mustBigUInt("12300")
	q2, _ := removeTrailingDigitsWithRounding(exact, 2, Up, false)
	if got := q2.String(); got != "123" {
		t.Errorf("Up(12300, 2) = %s, want 123 (exact remainder)", got)
	}
}

func TestRemoveTrailingDigitsHalfUp(t *testing.T) {
	cases := []struct {
		s    string
		n    uint64
		want string
	}{
		{"125", 1, "13"},  // 12.5 -> 13
		{"124", 1, "12"},  // 12.4 -> 12
		{"1250", 2, "13"}, // 12.50 -> 13
	}
	for _, c := range cases {
		x := mustBigUInt(c.s)
		q, _ := removeTrailingDigitsWithRounding(x, c.n, HalfUp, false)
		if got := q.String(); got != c.want {
			t.Errorf("HalfUp(%s, %d) = %s, want %s", c.s, c.n, got, c.want)
		}
	}
}

func TestRemoveTrailingDigitsHalfEvenCarry(t *testing.T) {
	// 995 rounded to 2 digits: drop the trailing 5, tie, "99" is odd so
	// it rounds up to 100, which carries a digit: with trimCarry the
	// caller gets back a 2-digit quotient and a carry flag.
	x := mustBigUInt("995")
	q, carried := removeTrailingDigitsWithRounding(x, 1, HalfEven, true)
	if !carried {
		t.Fatalf("expected carry when 99 -> 100")
	}
	if got := q.String(); got != "10" {
		t.Errorf("carried quotient = %s, want 10", got)
	}
}

func TestRemoveTrailingDigitsHalfEvenNoCarryWithoutFlag(t *testing.T) {
	x := mustBigUInt("995")
	q, carried := removeTrailingDigitsWithRounding(x, 1, HalfEven, false)
	if carried {
		t.Fatalf("trimCarry=false must never report a carry")
	}
	if got := q.String(); got != "100" {
		t.Errorf("HalfEven(995, 1) = %s, want 100", got)
	}
}

func TestResolveSignedMode(t *testing.T) {
	if resolveSignedMode(Ceiling, false) != Up {
		t.Errorf("Ceiling on positive should resolve to Up")
	}
	if resolveSignedMode(Ceiling, true) != Down {
		t.Errorf("Ceiling on negative should resolve to Down")
	}
	if resolveSignedMode(Floor, false) != Down {
		t.Errorf("Floor on positive should resolve to Down")
	}
	if resolveSignedMode(Floor, true) != Up {
		t.Errorf("Floor on negative should resolve to Up")
	}
	if resolveSignedMode(HalfEven, true) != HalfEven {
		t.Errorf("HalfEven must pass through unchanged")
	}
}

func TestRemoveTrailingDigitsZeroN(t *testing.T) {
	x := mustBigUInt("12345")
	q, carried := removeTrailingDigitsWithRounding(x, 0, HalfEven, true)
	if carried {
		t.Fatalf("n=0 must never carry")
	}
	if !q.Equal(x) {
		t.Errorf("n=0 must return x unchanged, got %s", q)
	}
}
