// Package integer provides the native integer toolkit used by the fixed point
// kernel.
//
// Values handled here are plain uint64/int64 words together with an explicit
// bit width. A width of n means only the low n bits carry information and
// signed quantities are two's complement at n bits:
//
//  | Width | Signed Range          | Kind          |
//  |-------|-----------------------|---------------|
//  | 8     | -2^7  .. 2^7 - 1      | Int8          |
//  | 16    | -2^15 .. 2^15 - 1     | Int16         |
//  | 32    | -2^31 .. 2^31 - 1     | Int32         |
//  | 64    | -2^63 .. 2^63 - 1     | Int64         |
//  | 128   | (double of Int64)     | Int128        |
//  |-------|-----------------------|---------------|
//
// Int128 is never used for storage. It only names the width of the
// intermediates built from two words with Uint128.
//
// Overflow
//
// Overflow is never detected by relying on wraparound of a narrower type.
// Sums are computed on the full word, truncated to n bits and the sign bit
// trick is applied: adding two numbers of the same sign overflows when the
// result has the opposite sign.
//
//  a + b overflows  <=>  (a ^ s) & (b ^ s) < 0   with s = a + b (at n bits)
//  a - b overflows  <=>  (a ^ b) & (a ^ d) < 0   with d = a - b (at n bits)
//
// Signed Blocks
//
// Block is a signed integer laid out big-endian with a trailing sign bit (aka
// zigzag):
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 1 | -127
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 | +127
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Zero is always one zero byte.
package integer
