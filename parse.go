package decimal

import "github.com/pkg/errors"

// parsedNumber is the intermediate result of the string codec's parse
// step: a most-significant-first digit vector, a fractional-digit count
// adjusted by the exponent (negative when the exponent exceeds the
// number of fractional digits, e.g. -2 for "1e2"), and a sign.
type parsedNumber struct {
	digits []byte // most-significant first, '0'..'9', leading zeros stripped
	scale  int64  // number of fractional digits, adjusted by any exponent
	neg    bool
}

// parseDecimalText parses text against the grammar:
//
//	number    = [sign] digits ['.' [digits]] [exponent]
//	          | [sign] '.' digits [exponent]
//	sign      = '+' | '-'
//	exponent  = ('e' | 'E') ['+' | '-'] digits
//
// Underscores and commas between digits are stripped as grouping
// separators. It fails with ErrParse on empty input, a duplicate '.', a
// stray character, or a malformed exponent.
func parseDecimalText(text string) (parsedNumber, error) {
	if len(text) == 0 {
		return parsedNumber{}, errors.Wrap(ErrParse, "empty input")
	}
	i := 0
	neg := false
	switch text[i] {
	case '+':
		i++
	case '-':
		neg = true
		i++
	}

	var intDigits, fracDigits []byte
	sawDot := false
	sawDigit := false
	for i < len(text) {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
			if sawDot {
				fracDigits = append(fracDigits, c)
			} else {
				intDigits = append(intDigits, c)
			}
			i++
		case c == '_' || c == ',':
			i++
		case c == '.':
			if sawDot {
				return parsedNumber{}, errors.Wrapf(ErrParse, "duplicate '.' in %q", text)
			}
			sawDot = true
			i++
		case c == 'e' || c == 'E':
			goto exponent
		default:
			return parsedNumber{}, errors.Wrapf(ErrParse, "unexpected character %q in %q", c, text)
		}
	}
exponent:
	if !sawDigit {
		return parsedNumber{}, errors.Wrapf(ErrParse, "no digits in %q", text)
	}

	var exp int64
	if i < len(text) {
		if text[i] != 'e' && text[i] != 'E' {
			return parsedNumber{}, errors.Wrapf(ErrParse, "unexpected character %q in %q", text[i], text)
		}
		i++
		expNeg := false
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			expNeg = text[i] == '-'
			i++
		}
		start := i
		var e int64
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			e = e*10 + int64(text[i]-'0')
			i++
		}
		if i == start {
			return parsedNumber{}, errors.Wrapf(ErrParse, "malformed exponent in %q", text)
		}
		if i != len(text) {
			return parsedNumber{}, errors.Wrapf(ErrParse, "trailing characters in %q", text)
		}
		if expNeg {
			e = -e
		}
		exp = e
	}

	digits := append(intDigits, fracDigits...)
	scale := int64(len(fracDigits)) - exp

	// strip leading zeros; they are not counted in scale
	start := 0
	for start < len(digits)-1 && digits[start] == '0' {
		start++
	}
	digits = digits[start:]
	if len(digits) == 1 && digits[0] == '0' {
		neg = false
	}

	return parsedNumber{digits: digits, scale: scale, neg: neg}, nil
}

// digitsToBigUInt converts a most-significant-first ASCII digit slice
// into a BigUInt.
func digitsToBigUInt(digits []byte) BigUInt {
	v := Zero()
	ten := NewBigUIntFromUint64(10)
	for _, c := range digits {
		v = v.Mul(ten).Add(NewBigUIntFromUint64(uint64(c - '0')))
	}
	return v
}
