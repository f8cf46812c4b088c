package decimal

// karatsubaThreshold is the limb-count threshold below which schoolbook
// multiplication is used; at or above it, Karatsuba recursion takes over.
const karatsubaThreshold = 32

// Mul returns the exact product x*y.
func (x BigUInt) Mul(y BigUInt) BigUInt {
	a, b := x.words, y.words
	if x.IsZero() || y.IsZero() {
		return zeroBigUInt
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) < karatsubaThreshold {
		return newBigUIntFromWords(schoolbookMul(a, b))
	}
	return newBigUIntFromWords(karatsubaMul(a, b))
}

// schoolbookMul computes the O(n·m) product of a and b, accumulating
// into a 64-bit running sum per output limb and propagating carries
// modulo 10^9. len(a) >= len(b) is not required but is the common case.
func schoolbookMul(a, b []uint32) []uint32 {
	out := make([]uint64, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			v := out[i+j] + uint64(av)*uint64(bv) + carry
			out[i+j] = v % limbBase
			carry = v / limbBase
		}
		k := i + len(b)
		for carry > 0 {
			v := out[k] + carry
			out[k] = v % limbBase
			carry = v / limbBase
			k++
		}
	}
	result := make([]uint32, len(out))
	for i, v := range out {
		result[i] = uint32(v)
	}
	return result
}

// karatsubaMul computes a*b via Karatsuba's three-sub-product recursion,
// splitting each operand at half the longer operand's length:
//
//	z0 = a_lo·b_lo
//	z2 = a_hi·b_hi
//	z1 = (a_lo+a_hi)·(b_lo+b_hi) - z0 - z2
//	result = z2·B² + z1·B + z0,  B = 10^(limbDigits·k)
//
// len(a) >= len(b) is assumed (enforced by the caller).
func karatsubaMul(a, b []uint32) []uint32 {
	n := len(a)
	if len(b) < karatsubaThreshold || n < 2 {
		return schoolbookMul(a, b)
	}
	k := n / 2
	if k > len(b) {
		k = len(b)
	}

	aLo, aHi := trimLimbs(a[:k]), trimLimbs(a[k:])
	var bLo, bHi []uint32
	if k < len(b) {
		bLo, bHi = trimLimbs(b[:k]), trimLimbs(b[k:])
	} else {
		bLo, bHi = trimLimbs(b), nil
	}

	z0 := karatsubaDispatch(aLo, bLo)
	z2 := karatsubaDispatch(aHi, bHi)

	aSum := limbAdd(aLo, aHi)
	bSum := limbAdd(bLo, bHi)
	zMid := karatsubaDispatch(aSum, bSum)

	// zMid -= z0 + z2
	zMid = limbSubMust(zMid, limbAdd(z0, z2))

	out := make([]uint64, len(a)+len(b)+1)
	addAtOffset(out, z0, 0)
	addAtOffset(out, zMid, k)
	addAtOffset(out, z2, 2*k)

	result := make([]uint32, len(out))
	var carry uint64
	for i, v := range out {
		v += carry
		result[i] = uint32(v % limbBase)
		carry = v / limbBase
	}
	for carry > 0 {
		result = append(result, uint32(carry%limbBase))
		carry /= limbBase
	}
	return result
}

func karatsubaDispatch(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) < karatsubaThreshold {
		return schoolbookMul(a, b)
	}
	return karatsubaMul(a, b)
}

func trimLimbs(w []uint32) []uint32 {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return w[:n]
}

func limbAdd(a, b []uint32) []uint32 {
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
	return trimLimbs(out)
}

// limbSubMust computes a-b assuming a >= b (true by construction in the
// Karatsuba identity: z0+z2 <= (aLo+aHi)(bLo+bHi)).
func limbSubMust(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		// pad a
		padded := make([]uint32, len(b))
		copy(padded, a)
		a = padded
	}
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
	return trimLimbs(out)
}

func addAtOffset(dst []uint64, src []uint32, offset int) {
	for i, v := range src {
		dst[offset+i] += uint64(v)
	}
}
