package integer

import "math/bits"

// Uint128 is an unsigned 128 bit integer made of two words.
type Uint128 struct {
	Hi, Lo uint64
}

// Mul64 returns the full product of a and b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)

	return Uint128{Hi: hi, Lo: lo}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Add returns u+v, wrapping at 128 bits.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)

	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u-v, wrapping at 128 bits.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)

	return Uint128{Hi: hi, Lo: lo}
}

// Lsh returns u<<n. Bits shifted past 128 are lost.
func (u Uint128) Lsh(n int) Uint128 {
	switch {
	case n <= 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << uint(n-64)}
	}

	return Uint128{
		Hi: u.Hi<<uint(n) | u.Lo>>uint(64-n),
		Lo: u.Lo << uint(n),
	}
}

// Rsh returns u>>n.
func (u Uint128) Rsh(n int) Uint128 {
	switch {
	case n <= 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> uint(n-64)}
	}

	return Uint128{
		Hi: u.Hi >> uint(n),
		Lo: u.Lo>>uint(n) | u.Hi<<uint(64-n),
	}
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}

	return 0
}

// BitLen returns the number of bits required to represent u.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}

	return bits.Len64(u.Lo)
}
