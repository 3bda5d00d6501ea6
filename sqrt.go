package fixedpoint

import (
	"github.com/calebcase/fixedpoint/integer"
)

// isqrt returns floor(sqrt(v)) one result bit at a time, from the highest bit
// the root can have down to bit 0. rem holds v - g^2 for the bits of g set so
// far; g + b is accepted when (2g + b) * b still fits in it.
func isqrt(v integer.Uint128) uint64 {
	if v.IsZero() {
		return 0
	}

	var g uint64

	rem := v
	shift := (v.BitLen() - 1) >> 1
	b := uint64(1) << uint(shift)

	for ; shift >= 0; shift-- {
		trial := integer.Uint128{Lo: g}.Lsh(1).Add(integer.Uint128{Lo: b}).Lsh(shift)
		if rem.Cmp(trial) >= 0 {
			g += b
			rem = rem.Sub(trial)
		}

		b >>= 1
	}

	return g
}

// SqrtFast returns the square root of x at half its width and precision, in
// format ((I+1)/2, (F+1)/2). The result is exact to that precision.
func SqrtFast(x Value) (Value, error) {
	if err := x.format.check(); err != nil {
		return Value{}, err
	}

	if x.raw < 0 {
		return Value{}, fail(DomainError.New("square root of negative %s", x))
	}

	out := Format{
		I: (x.format.I + 1) / 2,
		F: (x.format.F + 1) / 2,
	}

	// An odd number of fractional bits is made even so the root scale is
	// exactly half.
	n := integer.Uint128{Lo: uint64(x.raw)}.Lsh(x.format.F & 1)

	return fromMagnitude(out, integer.Uint128{Lo: isqrt(n)}, false, false)
}

// Sqrt returns the square root of x in the format of x. x is realigned to
// twice its fractional bits before the halving root, so no precision is lost.
func Sqrt(x Value) (Value, error) {
	if err := x.format.check(); err != nil {
		return Value{}, err
	}

	if x.raw < 0 {
		return Value{}, fail(DomainError.New("square root of negative %s", x))
	}

	n := integer.Uint128{Lo: uint64(x.raw)}.Lsh(x.format.F)

	return fromMagnitude(x.format, integer.Uint128{Lo: isqrt(n)}, false, false)
}
