package decimal

import "github.com/pkg/errors"

// DivMod returns (q, r) such that x = q·y + r with 0 <= r < y. It fails
// with ErrDivByZero if y is zero.
func (x BigUInt) DivMod(y BigUInt) (BigUInt, BigUInt, error) {
	if y.IsZero() {
		return BigUInt{}, BigUInt{}, errors.Wrapf(ErrDivByZero, "%s / %s", x.String(), y.String())
	}
	if x.Compare(y) < 0 {
		return zeroBigUInt, x, nil
	}
	if len(y.words) == 1 {
		q, r := divModSingleLimb(x.words, y.words[0])
		return newBigUIntFromWords(q), NewBigUIntFromUint64(uint64(r)), nil
	}
	q, r := divModKnuth(x.words, y.words)
	return newBigUIntFromWords(q), newBigUIntFromWords(r), nil
}

// divModSingleLimb divides the decimal-radix integer u by the single
// limb d via a linear pass with a 64-bit running remainder.
func divModSingleLimb(u []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem*limbBase + uint64(u[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return q, uint32(rem)
}

// divModKnuth divides u by v (len(v) >= 2) using long division with
// Knuth-D-style normalization performed in decimal (not binary): scale
// both operands by a small factor so the divisor's top limb is at least
// limbBase/2, pick a trial quotient digit per iteration from the top two
// remainder limbs divided by the divisor's top limb, correct down by one
// or two when the trial overestimates, and subtract the scaled divisor
// (Knuth Vol.2 4.3.1, Algorithm D, adapted from binary to a decimal radix).
func divModKnuth(uIn, vIn []uint32) ([]uint32, []uint32) {
	n := len(vIn)
	m := len(uIn) - n

	d := uint32(limbBase / (uint64(vIn[n-1]) + 1))
	v := mulSmall(vIn, uint64(d))
	for len(v) < n {
		v = append(v, 0)
	}
	u := mulSmall(uIn, uint64(d))
	for len(u) < len(uIn)+1 {
		u = append(u, 0)
	}

	q := make([]uint32, m+1)

	for j := m; j >= 0; j-- {
		ujn := uint64(0)
		if j+n < len(u) {
			ujn = uint64(u[j+n])
		}
		numerator := ujn*limbBase + uint64(u[j+n-1])
		vTop := uint64(v[n-1])
		qhat := numerator / vTop
		rhat := numerator % vTop
		if qhat >= limbBase {
			qhat = limbBase - 1
			rhat = numerator - qhat*vTop
		}
		if n >= 2 {
			vNext := uint64(v[n-2])
			ujn2 := uint64(0)
			if j+n-2 >= 0 {
				ujn2 = uint64(u[j+n-2])
			}
			for rhat < limbBase && qhat*vNext > rhat*limbBase+ujn2 {
				qhat--
				rhat += vTop
			}
		}

		// Subtract qhat·v from u[j:j+n+1].
		borrow := int64(0)
		carry := uint64(0)
		for i := 0; i < n; i++ {
			p := qhat*uint64(v[i]) + carry
			carry = p / limbBase
			lo := int64(p % limbBase)
			d := int64(u[j+i]) - lo - borrow
			if d < 0 {
				d += limbBase
				borrow = 1
			} else {
				borrow = 0
			}
			u[j+i] = uint32(d)
		}
		if j+n < len(u) {
			d := int64(u[j+n]) - int64(carry) - borrow
			if d < 0 {
				d += limbBase
				borrow = 1
			} else {
				borrow = 0
			}
			u[j+n] = uint32(d)
		} else if carry+uint64(borrow) != 0 {
			borrow = 1
		}

		if borrow != 0 {
			// qhat was one too large: add v back and decrement.
			qhat--
			c := uint64(0)
			for i := 0; i < n; i++ {
				s := uint64(u[j+i]) + uint64(v[i]) + c
				if s >= limbBase {
					s -= limbBase
					c = 1
				} else {
					c = 0
				}
				u[j+i] = uint32(s)
			}
			if j+n < len(u) {
				u[j+n] = uint32((uint64(u[j+n]) + c) % limbBase)
			}
		}

		q[j] = uint32(qhat)
	}

	// Undo normalization: the true remainder is (u[0:n]) / d, exactly.
	rNorm := u[:n]
	r, _ := divModSingleLimb(rNorm, d)
	return q, r
}

// mulSmall returns words*m as a little-endian limb slice (no
// normalization applied).
func mulSmall(words []uint32, m uint64) []uint32 {
	out := make([]uint32, len(words)+1)
	var carry uint64
	for i, w := range words {
		v := uint64(w)*m + carry
		out[i] = uint32(v % limbBase)
		carry = v / limbBase
	}
	out[len(words)] = uint32(carry)
	return out
}
