package fixedpoint

import (
	"math"
	"strconv"
	"strings"

	"github.com/calebcase/fixedpoint/decimal"
	"github.com/calebcase/fixedpoint/integer"
)

// Value is a fixed point number raw / 2^F in a given Format.
//
// Values are immutable. The zero Value has no format and is rejected by every
// operation that needs one. Two values are == when both the raw integer and
// the format match.
type Value struct {
	raw    int64
	format Format
}

// FromInt returns i in format f.
func FromInt(f Format, i int64) (Value, error) {
	if err := f.check(); err != nil {
		return Value{}, err
	}

	if !integer.FitIn(i, f.I) {
		return Value{}, fail(OverflowError.New("%d does not fit %d integer bits", i, f.I))
	}

	return Value{raw: i << uint(f.F), format: f}, nil
}

// FromFloat returns x in format f rounded toward negative infinity.
func FromFloat(f Format, x float64) (Value, error) {
	if err := f.check(); err != nil {
		return Value{}, err
	}

	if math.IsNaN(x) {
		return Value{}, fail(DomainError.New("NaN has no fixed point value"))
	}

	r := math.Floor(math.Ldexp(x, f.F))
	limit := math.Ldexp(1, f.Bits()-1)

	if math.IsInf(r, 0) || r < -limit || r >= limit {
		return Value{}, fail(OverflowError.New("%g does not fit %d integer bits", x, f.I))
	}

	return Value{raw: int64(r), format: f}, nil
}

// FromFloat32 returns x in format f rounded toward negative infinity.
func FromFloat32(f Format, x float32) (Value, error) {
	return FromFloat(f, float64(x))
}

// FromRaw returns the value with the given raw integer.
func FromRaw(f Format, raw int64) (Value, error) {
	if err := f.check(); err != nil {
		return Value{}, err
	}

	if !f.fits(raw) {
		return Value{}, fail(OverflowError.New("raw %d does not fit %s", raw, f))
	}

	return Value{raw: raw, format: f}, nil
}

// fromMagnitude builds the value -q or q. With inexact set the magnitude was
// truncated and negative results are moved down one unit so the result is the
// floor.
func fromMagnitude(f Format, q integer.Uint128, neg, inexact bool) (Value, error) {
	if q.Hi != 0 || q.Lo > 1<<63 {
		return Value{}, fail(OverflowError.New("result does not fit %s", f))
	}

	mag := q.Lo
	if neg && inexact {
		mag++
	}

	raw, err := integer.Block{Magnitude: mag, Negative: neg}.Int64()
	if err != nil || !f.fits(raw) {
		return Value{}, fail(OverflowError.New("result does not fit %s", f))
	}

	return Value{raw: raw, format: f}, nil
}

// Parse reads a decimal string into format f. It reports false for malformed
// input and for numbers outside the range of f.
func Parse(f Format, s string) (v Value, ok bool) {
	if f.check() != nil {
		return Value{}, false
	}

	blk, ok := decimal.Parse(s, f.F, decimal.TableFor(f.Kind(), f.F))
	if !ok {
		return Value{}, false
	}

	raw, err := blk.Value.Int64()
	if err != nil || !f.fits(raw) {
		return Value{}, false
	}

	return Value{raw: raw, format: f}, true
}

// MustParse is Parse that panics on failure.
func MustParse(f Format, s string) Value {
	v, ok := Parse(f, s)
	if !ok {
		panic(Error.New("invalid %s value: %q", f, s))
	}

	return v
}

// Raw returns the scaled integer.
func (v Value) Raw() int64 {
	return v.raw
}

// Format returns the format of v.
func (v Value) Format() Format {
	return v.format
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	switch {
	case v.raw < 0:
		return -1
	case v.raw > 0:
		return 1
	}

	return 0
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v.raw == 0
}

// Equal reports whether v and b have the same format and value.
func (v Value) Equal(b Value) bool {
	return v == b
}

// Cmp compares v and b and returns -1, 0 or +1. Both must have the same
// format; convert one of them first otherwise.
func (v Value) Cmp(b Value) (int, error) {
	if v.format != b.format {
		return 0, Error.New("cannot compare %s with %s", v.format, b.format)
	}

	switch {
	case v.raw < b.raw:
		return -1, nil
	case v.raw > b.raw:
		return 1, nil
	}

	return 0, nil
}

// Floor returns the largest integer not above v. It fits TruncKind.
func (v Value) Floor() int64 {
	return v.raw >> uint(v.format.F)
}

// Ceil returns the smallest integer not below v. Values above the largest
// integer of the format need one bit more than TruncKind.
func (v Value) Ceil() int64 {
	fl := v.raw >> uint(v.format.F)
	if v.raw&int64(v.mask()) != 0 {
		fl++
	}

	return fl
}

func (v Value) mask() uint64 {
	return uint64(1)<<uint(v.format.F) - 1
}

// Float64 returns raw / 2^F.
func (v Value) Float64() float64 {
	return math.Ldexp(float64(v.raw), -v.format.F)
}

// Float32 returns raw / 2^F.
func (v Value) Float32() float32 {
	return float32(math.Ldexp(float64(v.raw), -v.format.F))
}

// Text returns v in decimal with prec fractional digits. A negative prec uses
// the digits F can resolve. Trailing zeros are dropped unless zeroPad is set.
// The text never rounds past the largest value of the format, so it always
// parses back.
func (v Value) Text(prec int, zeroPad bool) string {
	blk := decimal.Block{
		Value: integer.BlockOf(v.raw),
		Frac:  v.format.F,
	}
	if v.raw > 0 {
		blk.Limit = uint64(v.format.maxRaw())
	}

	return blk.Format(decimal.TableFor(v.format.Kind(), v.format.F), prec, zeroPad)
}

func (v Value) String() string {
	return v.Text(-1, false)
}

// Hex returns the two's complement of raw at the native width, for example
// 0xfffe8000 for -1.5 in Q16.16.
func (v Value) Hex() string {
	k := v.format.Kind()
	digits := strconv.FormatUint(uint64(v.raw)&k.Mask(), 16)

	return "0x" + strings.Repeat("0", k.Bits()/4-len(digits)) + digits
}

// BitDistance returns ceil(log2(|a - b|)) in units of the last fractional
// bit. It is 0 for values at most one unit apart.
func BitDistance(a, b Value) (int, error) {
	if a.format != b.format {
		return 0, Error.New("cannot measure %s against %s", a.format, b.format)
	}

	var d uint64
	if a.raw >= b.raw {
		d = uint64(a.raw) - uint64(b.raw)
	} else {
		d = uint64(b.raw) - uint64(a.raw)
	}

	return integer.Log2Ceil(d), nil
}
