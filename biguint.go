package decimal

import "github.com/pkg/errors"

// limbBase is the radix of a BigUInt limb: 10^9, fixed regardless of
// machine word size, so that digit-level queries (TrailingZeros, Digit,
// IsPowerOfTen) and decimal scaling never need a base conversion.
const (
	limbBase   = 1_000_000_000 // 10^9
	limbDigits = 9
)

// BigUInt is an arbitrary-precision unsigned integer on a decimal radix.
// The value is
//
//	Σ words[i] · (10^9)^i
//
// with words[0] the least-significant limb. A BigUInt is normalized: the
// most-significant limb is non-zero, except for the unique zero value
// which is the single limb [0]. BigUInt is immutable at the public API;
// every operation returns a freshly built value.
type BigUInt struct {
	words []uint32
}

// zeroBigUInt is the canonical representation of 0.
var zeroBigUInt = BigUInt{words: []uint32{0}}

// Zero returns the BigUInt value 0.
func Zero() BigUInt { return zeroBigUInt }

// One returns the BigUInt value 1.
func One() BigUInt { return BigUInt{words: []uint32{1}} }

// NewBigUIntFromUint64 builds a BigUInt from a machine integer.
func NewBigUIntFromUint64(v uint64) BigUInt {
	if v == 0 {
		return zeroBigUInt
	}
	var words []uint32
	for v > 0 {
		words = append(words, uint32(v%limbBase))
		v /= limbBase
	}
	return BigUInt{words: words}
}

// newBigUIntFromWords normalizes a little-endian limb slice (each limb
// must already be < limbBase) into a BigUInt, trimming leading zero
// limbs and collapsing to the canonical zero when everything cancels.
func newBigUIntFromWords(words []uint32) BigUInt {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	if n == 0 {
		return zeroBigUInt
	}
	return BigUInt{words: words[:n]}
}

// IsZero reports whether x is the value 0.
func (x BigUInt) IsZero() bool {
	return len(x.words) == 0 || (len(x.words) == 1 && x.words[0] == 0)
}

// Words returns a copy of x's little-endian limbs (base 10^9), for
// callers that need to inspect the raw representation (e.g. tests).
func (x BigUInt) Words() []uint32 {
	w := make([]uint32, len(x.words))
	copy(w, x.words)
	return w
}

func (x BigUInt) clone() []uint32 {
	w := make([]uint32, len(x.words))
	copy(w, x.words)
	return w
}

// numLimbs returns the number of limbs of x, treating the empty slice
// the same as the canonical [0] representation.
func (x BigUInt) numLimbs() int {
	if len(x.words) == 0 {
		return 1
	}
	return len(x.words)
}

func (x BigUInt) limb(i int) uint32 {
	if i < 0 || i >= len(x.words) {
		return 0
	}
	return x.words[i]
}

// decimalDigitsOf returns the number of decimal digits in a single limb
// (1 for 0, matching BigUInt.Digits' zero convention).
func decimalDigitsOf(w uint32) uint64 {
	if w == 0 {
		return 1
	}
	n := uint64(0)
	for w > 0 {
		n++
		w /= 10
	}
	return n
}

// Digits returns the number of decimal digits of x. The value 0 has 1
// digit.
func (x BigUInt) Digits() uint64 {
	if x.IsZero() {
		return 1
	}
	top := len(x.words) - 1
	return uint64(top)*limbDigits + decimalDigitsOf(x.words[top])
}

// TrailingZeros returns the largest k such that 10^k divides x. By
// convention TrailingZeros(0) is 0.
func (x BigUInt) TrailingZeros() uint64 {
	if x.IsZero() {
		return 0
	}
	var k uint64
	for _, w := range x.words {
		if w != 0 {
			for w%10 == 0 {
				w /= 10
				k++
			}
			return k
		}
		k += limbDigits
	}
	return k
}

// Digit returns the i-th decimal digit of x, counting from the
// least-significant end starting at 0. Digits beyond the length of x are
// 0.
func (x BigUInt) Digit(i uint64) uint64 {
	limb := i / limbDigits
	pos := i % limbDigits
	if limb >= uint64(len(x.words)) {
		return 0
	}
	w := x.words[limb]
	for p := uint64(0); p < pos; p++ {
		w /= 10
	}
	return uint64(w % 10)
}

// IsPowerOfTen reports whether x = 10^k for some k >= 0.
func (x BigUInt) IsPowerOfTen() bool {
	if x.IsZero() {
		return false
	}
	nz := x.TrailingZeros()
	return nz+1 == x.Digits() && x.Digit(nz) == 1
}

// Compare returns -1, 0, or 1 as x is less than, equal to, or greater
// than y.
func (x BigUInt) Compare(y BigUInt) int {
	nx, ny := len(x.words), len(y.words)
	// strip any accidental leading zero representations for comparison
	for nx > 0 && x.words[nx-1] == 0 {
		nx--
	}
	for ny > 0 && y.words[ny-1] == 0 {
		ny--
	}
	if nx != ny {
		if nx < ny {
			return -1
		}
		return 1
	}
	for i := nx - 1; i >= 0; i-- {
		if x.words[i] != y.words[i] {
			if x.words[i] < y.words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y represent the same value.
func (x BigUInt) Equal(y BigUInt) bool { return x.Compare(y) == 0 }

// Add returns the exact sum x+y.
func (x BigUInt) Add(y BigUInt) BigUInt {
	a, b := x.words, y.words
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := range a {
		s := uint64(a[i]) + carry
		if i < len(b) {
			s += uint64(b[i])
		}
		if s >= limbBase {
			s -= limbBase
			carry = 1
		} else {
			carry = 0
		}
		out[i] = uint32(s)
	}
	out[len(a)] = uint32(carry)
	return newBigUIntFromWords(out)
}

// Sub returns the exact difference x-y. It fails with ErrUnderflow if
// x < y.
func (x BigUInt) Sub(y BigUInt) (BigUInt, error) {
	if x.Compare(y) < 0 {
		return BigUInt{}, errors.Wrapf(ErrUnderflow, "%s - %s", x.String(), y.String())
	}
	a, b := x.words, y.words
	out := make([]uint32, len(a))
	var borrow int64
	for i := range a {
		d := int64(a[i]) - borrow
		if i < len(b) {
			d -= int64(b[i])
		}
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return newBigUIntFromWords(out), nil
}

// ScaleUpByPowerOfTen returns x · 10^n.
func (x BigUInt) ScaleUpByPowerOfTen(n uint64) BigUInt {
	if x.IsZero() || n == 0 {
		return x
	}
	limbShift := int(n / limbDigits)
	digitShift := uint(n % limbDigits)
	src := x.words
	if digitShift == 0 {
		out := make([]uint32, len(src)+limbShift)
		copy(out[limbShift:], src)
		return newBigUIntFromWords(out)
	}
	mul := pow10u32(digitShift)
	out := make([]uint32, len(src)+limbShift+1)
	var carry uint64
	for i, w := range src {
		v := uint64(w)*uint64(mul) + carry
		out[limbShift+i] = uint32(v % limbBase)
		carry = v / limbBase
	}
	out[limbShift+len(src)] = uint32(carry)
	return newBigUIntFromWords(out)
}

// ScaleDownByPowerOfTen returns floor(x / 10^n).
func (x BigUInt) ScaleDownByPowerOfTen(n uint64) BigUInt {
	if x.IsZero() || n == 0 {
		return x
	}
	limbShift := int(n / limbDigits)
	digitShift := uint(n % limbDigits)
	if limbShift >= len(x.words) {
		return zeroBigUInt
	}
	src := x.words[limbShift:]
	if digitShift == 0 {
		out := make([]uint32, len(src))
		copy(out, src)
		return newBigUIntFromWords(out)
	}
	div := pow10u32(digitShift)
	out := make([]uint32, len(src))
	var rem uint64
	for i := len(src) - 1; i >= 0; i-- {
		cur := rem*limbBase + uint64(src[i])
		out[i] = uint32(cur / uint64(div))
		rem = cur % uint64(div)
	}
	return newBigUIntFromWords(out)
}

func pow10u32(n uint) uint32 {
	p := uint32(1)
	for i := uint(0); i < n; i++ {
		p *= 10
	}
	return p
}

// String renders x as plain decimal digits with no sign, scale, or
// grouping -- used for debugging and error messages. Canonical
// BigDecimal formatting lives in format.go.
func (x BigUInt) String() string {
	if x.IsZero() {
		return "0"
	}
	top := len(x.words) - 1
	s := make([]byte, 0, x.Digits())
	s = appendUint(s, uint64(x.words[top]))
	for i := top - 1; i >= 0; i-- {
		s = appendUintPadded(s, uint64(x.words[i]), limbDigits)
	}
	return string(s)
}

func appendUint(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

func appendUintPadded(dst []byte, v uint64, width int) []byte {
	var buf [limbDigits]byte
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:]...)
}
