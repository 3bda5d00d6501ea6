// Package decimal converts binary fixed point numbers to and from base 10
// text without dividing.
//
// The number handled here is:
//
//  number = ±magnitude * 2 ^ -frac
//
// Tables
//
// Each native width has a table of powers of ten, an inverse table and
// floor(log10(2^k)):
//
//  | Table   | Width | MaxDigits | Inverse                            |
//  |---------|-------|-----------|------------------------------------|
//  | Table32 | 32    | 9         | 10^-i ≈ mant / 2^(32 + shift)      |
//  | Table64 | 64    | 19        | 10^-i ≈ mant / 2^(64 + shift)      |
//  |---------|-------|-----------|------------------------------------|
//
// Inverses run to MaxDigits+1 for the rounding half unit of the last digit.
// Mantissas are normalized so their top bit is set. The entry for 10^0 is
// clamped to the largest mantissa. Native widths of 8 and 32 bits use Table32
// unless the fraction has 30 or more bits.
//
// Formatting
//
// The default precision is floor(log10(2^frac)) digits, one more when the
// last digit would span 8 or more units of 2^-frac (frac = 3, 13, 23, ...).
// Together with the parser this keeps a round trip within 4 units. A rounding
// half unit of 5 * 10^-(prec+1) is added first; when a Limit is set and the
// rounded magnitude passes it, the digits are truncated one place further
// instead. The integer part is written by
// subtracting powers of ten and every fractional digit is read from the top of
// the remainder multiplied by ten:
//
//  remainder * 10 = digit * 2^frac + next remainder
//
// Parsing
//
// Up to MaxDigits fractional digits are accumulated exactly as a decimal
// integer d, and only then scaled to frac bits by one multiply with the
// inverse of 10^digits. The rounded fraction may carry into the integer part.
//
//  | Input      | Result                 |
//  |------------|------------------------|
//  | "123"      | 123                    |
//  | "123."     | 123                    |
//  | " -1.25"   | -1.25                  |
//  | ".5"       | 0.5                    |
//  | "1e3"      | not ok                 |
//  | "-"        | not ok (no digits)     |
//  |------------|------------------------|
package decimal
