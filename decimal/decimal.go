package decimal

import (
	"math/bits"
	"strings"
	"unicode"

	"github.com/calebcase/fixedpoint/integer"
)

// Block is a binary fixed point number: Value / 2^Frac.
type Block struct {
	Value integer.Block
	Frac  int

	// Limit, when not zero, is the largest magnitude the text may show.
	Limit uint64
}

// Format renders the block with prec fractional digits. A negative prec
// selects t.Prec(Frac). Precision is limited to t.MaxDigits digits. The last
// digit is rounded half up unless that would pass Limit, in which case one
// more digit is written and the rest truncated. Trailing zeros are removed
// unless zeroPad is set, but at least one fractional digit is always written.
func (b Block) Format(t *Table, prec int, zeroPad bool) string {
	if prec < 0 {
		prec = t.Prec(b.Frac)
	}
	if prec > t.MaxDigits {
		prec = t.MaxDigits
	}

	mask := uint64(1)<<uint(b.Frac) - 1

	// Round half up at the last digit.
	mag := b.Value.Magnitude + t.DivPow10(5, prec+1, b.Frac)
	if b.Limit != 0 && mag > b.Limit {
		mag = b.Value.Magnitude
		if prec < t.MaxDigits {
			prec++
		}
	}

	sb := strings.Builder{}
	if b.Value.Negative {
		sb.WriteByte('-')
	}

	writeUint(&sb, mag>>uint(b.Frac))
	sb.WriteByte('.')

	frac := make([]byte, 0, prec)
	rem := mag & mask
	for k := 0; k < prec; k++ {
		if !zeroPad && rem == 0 {
			break
		}

		hi, lo := bits.Mul64(rem, 10)
		digit := hi<<uint(64-b.Frac) | lo>>uint(b.Frac)
		rem = lo & mask

		frac = append(frac, byte('0'+digit))
	}

	if !zeroPad {
		for len(frac) > 0 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
	}

	if len(frac) == 0 {
		frac = append(frac, '0')
	}

	sb.Write(frac)

	return sb.String()
}

// writeUint writes x in base 10 by subtracting powers of ten.
func writeUint(sb *strings.Builder, x uint64) {
	started := false

	for exp := Table64.MaxDigits; exp >= 0; exp-- {
		p := Table64.Pow10(exp)

		digit := byte('0')
		for x >= p {
			x -= p
			digit++
		}

		if digit != '0' || started || exp == 0 {
			sb.WriteByte(digit)
			started = true
		}
	}
}

// Parse reads a decimal number into a block with frac fractional bits.
//
// Leading white space is skipped and a single sign is accepted. The first
// t.MaxDigits fractional digits are collected as one decimal integer and
// scaled to frac bits with a single rounding. Later digits are checked but do
// not contribute. Exponents are not supported.
func Parse(s string, frac int, t *Table) (b Block, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	b.Frac = frac

	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		b.Value.Negative = s[0] == '-'
		s = s[1:]
	}

	var carry uint64
	var xi, xf uint64

	digits := 0

	i := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		var hi uint64

		hi, xi = bits.Mul64(xi, 10)
		if hi != 0 {
			return Block{}, false
		}

		xi, carry = bits.Add64(xi, uint64(s[i]-'0'), 0)
		if carry != 0 {
			return Block{}, false
		}

		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++

		// d < 10^n <= 10^MaxDigits always fits a word.
		var d uint64
		n := 0

		for ; i < len(s); i++ {
			if !isDigit(s[i]) {
				return Block{}, false
			}

			digits++

			if n < t.MaxDigits {
				d = d*10 + uint64(s[i]-'0')
				n++
			}
		}

		if d != 0 {
			xf = t.DivPow10(d, n, frac)
		}
	}

	if i != len(s) || digits == 0 {
		return Block{}, false
	}

	if frac > 0 && xi>>uint(64-frac) != 0 {
		return Block{}, false
	}

	// The rounded fraction may carry into the integer part.
	b.Value.Magnitude, carry = bits.Add64(xi<<uint(frac), xf, 0)
	if carry != 0 {
		return Block{}, false
	}

	return b, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
