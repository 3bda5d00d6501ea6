package decimal

import "github.com/calebcase/fixedpoint/integer"

// inverse is 10^-exp as mant / 2^(width+shift).
type inverse struct {
	mant  uint64
	shift int
}

// Table holds the decimal constants for one native width.
type Table struct {
	Width     int
	MaxDigits int

	pow10 []uint64
	inv   []inverse
	log10 []int
}

// Table32 serves native widths up to 32 bits.
var Table32 = &Table{
	Width:     32,
	MaxDigits: 9,
	pow10: []uint64{
		1,
		10,
		100,
		1_000,
		10_000,
		100_000,
		1_000_000,
		10_000_000,
		100_000_000,
		1_000_000_000,
	},
	inv: []inverse{
		{0xffffffff, 0}, // 1 is clamped to the largest mantissa.
		{0xcccccccc, 3},
		{0xa3d70a3d, 6},
		{0x83126e97, 9},
		{0xd1b71758, 13},
		{0xa7c5ac47, 16},
		{0x8637bd05, 19},
		{0xd6bf94d5, 23},
		{0xabcc7711, 26},
		{0x89705f41, 29},
		{0xdbe6fece, 33},
	},
	log10: log10Pow2[:32],
}

// Table64 serves 64 bit native widths.
var Table64 = &Table{
	Width:     64,
	MaxDigits: 19,
	pow10: []uint64{
		1,
		10,
		100,
		1_000,
		10_000,
		100_000,
		1_000_000,
		10_000_000,
		100_000_000,
		1_000_000_000,
		10_000_000_000,
		100_000_000_000,
		1_000_000_000_000,
		10_000_000_000_000,
		100_000_000_000_000,
		1_000_000_000_000_000,
		10_000_000_000_000_000,
		100_000_000_000_000_000,
		1_000_000_000_000_000_000,
		10_000_000_000_000_000_000,
	},
	inv: []inverse{
		{0xffffffffffffffff, 0},
		{0xcccccccccccccccc, 3},
		{0xa3d70a3d70a3d70a, 6},
		{0x83126e978d4fdf3b, 9},
		{0xd1b71758e219652b, 13},
		{0xa7c5ac471b478423, 16},
		{0x8637bd05af6c69b5, 19},
		{0xd6bf94d5e57a42bc, 23},
		{0xabcc77118461cefc, 26},
		{0x89705f4136b4a597, 29},
		{0xdbe6fecebdedd5be, 33},
		{0xafebff0bcb24aafe, 36},
		{0x8cbccc096f5088cb, 39},
		{0xe12e13424bb40e13, 43},
		{0xb424dc35095cd80f, 46},
		{0x901d7cf73ab0acd9, 49},
		{0xe69594bec44de15b, 53},
		{0xb877aa3236a4b449, 56},
		{0x9392ee8e921d5d07, 59},
		{0xec1e4a7db69561a5, 63},
		{0xbce5086492111aea, 66},
	},
	log10: log10Pow2[:],
}

// log10Pow2[k] is floor(log10(2^k)).
var log10Pow2 = [64]int{
	0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 3, 4, 4,
	4, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 8, 8, 8, 9, 9,
	9, 9, 10, 10, 10, 11, 11, 11, 12, 12, 12, 12, 13, 13, 13, 14,
	14, 14, 15, 15, 15, 15, 16, 16, 16, 17, 17, 17, 18, 18, 18, 18,
}

// TableFor returns the table for a native width holding frac fractional bits.
// A 32 bit width whose fraction needs all of Table32's digits is served by
// Table64.
func TableFor(k integer.Kind, frac int) *Table {
	if k.Bits() > 32 || Table32.Log10Pow2(frac) >= Table32.MaxDigits {
		return Table64
	}

	return Table32
}

// Pow10 returns 10^exp for 0 <= exp <= MaxDigits.
func (t *Table) Pow10(exp int) uint64 {
	return t.pow10[exp]
}

// Log10Pow2 returns floor(log10(2^exp)) for 0 <= exp < Width.
func (t *Table) Log10Pow2(exp int) int {
	return t.log10[exp]
}

// Prec returns the default number of fractional digits for frac bits:
// floor(log10(2^frac)), plus one when the last digit would still span 8 or
// more units of 2^-frac.
func (t *Table) Prec(frac int) int {
	prec := t.Log10Pow2(frac)
	if prec < t.MaxDigits && uint64(1)<<uint(frac) >= 8*t.Pow10(prec) {
		prec++
	}

	return prec
}

// DivPow10 returns num / 10^exp as a fixed point number with f fractional
// bits, rounded to nearest. It needs 0 <= exp <= MaxDigits+1.
func (t *Table) DivPow10(num uint64, exp, f int) uint64 {
	inv := t.inv[exp]
	p := integer.Mul64(num, inv.mant)

	shift := t.Width + inv.shift - f
	if shift <= 0 {
		return p.Lsh(-shift).Lo
	}

	return p.Add(integer.Uint128{Lo: 1}.Lsh(shift - 1)).Rsh(shift).Lo
}
