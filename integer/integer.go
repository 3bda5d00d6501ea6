package integer

import "math/bits"

// Clz returns the number of leading zero bits of x within width bits. Bits of
// x above width are expected to be clear.
func Clz(x uint64, width int) int {
	return width - bits.Len64(x)
}

// Log2Ceil returns ceil(log2(x)). It is 0 for x <= 1.
func Log2Ceil(x uint64) int {
	if x <= 1 {
		return 0
	}

	return bits.Len64(x - 1)
}

// Abs returns the magnitude of x. It is defined for math.MinInt64.
func Abs(x int64) uint64 {
	if x < 0 {
		return uint64(^x) + 1
	}

	return uint64(x)
}

// SignExtend truncates x to its low nbits and sign extends the result.
func SignExtend(x int64, nbits int) int64 {
	if nbits >= 64 {
		return x
	}

	shift := uint(64 - nbits)

	return x << shift >> shift
}

// FitIn reports whether x is representable as an nbits signed integer.
func FitIn(x int64, nbits int) bool {
	if nbits <= 0 {
		return false
	}

	return SignExtend(x, nbits) == x
}

// AddOverflow reports whether a+b overflows nbits. Both operands must fit
// nbits.
func AddOverflow(a, b int64, nbits int) bool {
	s := SignExtend(int64(uint64(a)+uint64(b)), nbits)

	return (a^s)&(b^s) < 0
}

// SubOverflow reports whether a-b overflows nbits. Both operands must fit
// nbits.
func SubOverflow(a, b int64, nbits int) bool {
	d := SignExtend(int64(uint64(a)-uint64(b)), nbits)

	return (a^b)&(a^d) < 0
}

// MulHU returns the high half of the 2*width bit product of a and b. Both
// operands must fit width bits.
func MulHU(a, b uint64, width int) uint64 {
	return Mul64(a, b).Rsh(width).Lo
}

// MulHUShift returns the full product of a and b shifted right by shift.
func MulHUShift(a, b uint64, shift int) Uint128 {
	return Mul64(a, b).Rsh(shift)
}

// ScaledAdd returns (a+b)>>shift keeping the carry out of a+b. Both operands
// must fit width bits.
func ScaledAdd(a, b uint64, shift, width int) uint64 {
	if width < 64 {
		return (a + b) >> uint(shift)
	}

	lo, carry := bits.Add64(a, b, 0)

	return Uint128{Hi: carry, Lo: lo}.Rsh(shift).Lo
}
