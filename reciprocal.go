package fixedpoint

import (
	"math/bits"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixedpoint/integer"
)

// maxCorrections bounds the ±1 steps applied to an estimated quotient.
const maxCorrections = 8

// direct selects the single wide division. It needs the 128/64 bit divide of
// a 64 bit platform.
var direct = divideEnabled && bits.UintSize == 64

// Reciprocal is 1/x waiting for the precision it will be used at.
//
// A Reciprocal is evaluated exactly once, by Mul or by Value. Both return
// floor(b * 2^F / x.raw) scaled to the requested format, so the result does
// not depend on the evaluation strategy and materializing at a higher
// precision then converting down gives the same value as materializing at the
// lower precision.
type Reciprocal struct {
	dividend uint64 // |x.raw| shifted so bit width-1 is set
	shift    int
	width    integer.Kind
	frac     int
	negative bool
	direct   bool
	spent    bool
}

// Recip returns the reciprocal of x. The reciprocal of zero is a DomainError.
func Recip(x Value) (*Reciprocal, error) {
	return newReciprocal(x, direct)
}

func newReciprocal(x Value, direct bool) (*Reciprocal, error) {
	if err := x.format.check(); err != nil {
		return nil, err
	}

	if x.raw == 0 {
		return nil, fail(DomainError.New("reciprocal of zero"))
	}

	a := integer.Abs(x.raw)
	k := x.format.Kind()
	s := integer.Clz(a, k.Bits())

	return &Reciprocal{
		dividend: a << uint(s),
		shift:    s,
		width:    k,
		frac:     x.format.F,
		negative: x.raw < 0,
		direct:   direct,
	}, nil
}

func (r *Reciprocal) consume() error {
	if r.spent {
		return fail(oops.Trace(ErrConsumed))
	}

	r.spent = true

	return nil
}

// Mul returns b/x in the format of b.
func (r *Reciprocal) Mul(b Value) (Value, error) {
	if err := r.consume(); err != nil {
		return Value{}, err
	}

	if err := b.format.check(); err != nil {
		return Value{}, err
	}

	return r.eval(b.format, integer.Abs(b.raw), r.negative != (b.raw < 0))
}

// Value returns 1/x in format f.
func (r *Reciprocal) Value(f Format) (Value, error) {
	if err := r.consume(); err != nil {
		return Value{}, err
	}

	if err := f.check(); err != nil {
		return Value{}, err
	}

	return r.eval(f, 1<<uint(f.F), r.negative)
}

// eval returns floor(±m * 2^frac / divisor) in format f.
func (r *Reciprocal) eval(f Format, m uint64, neg bool) (Value, error) {
	if m == 0 {
		return Value{format: f}, nil
	}

	a := r.dividend >> uint(r.shift)
	n := integer.Uint128{Lo: m}.Lsh(r.frac)

	var q integer.Uint128
	if r.direct {
		if n.Hi >= a {
			return Value{}, fail(OverflowError.New("reciprocal does not fit %s", f))
		}

		lo, _ := bits.Div64(n.Hi, n.Lo, a)
		q = integer.Uint128{Lo: lo}
	} else {
		q = r.estimate(f, m)
	}

	if q.Hi != 0 {
		return Value{}, fail(OverflowError.New("reciprocal does not fit %s", f))
	}

	quo, inexact, exact := correct(q.Lo, a, n)
	if !exact {
		// Estimates are only guaranteed near quotients that fit the target
		// precision.
		return Value{}, fail(OverflowError.New("reciprocal does not fit %s", f))
	}

	return fromMagnitude(f, integer.Uint128{Lo: quo}, neg, inexact)
}

// correct moves q to floor(n/a) in at most maxCorrections steps each way. It
// reports whether the floor was reached and whether the division is inexact.
func correct(q, a uint64, n integer.Uint128) (quo uint64, inexact, exact bool) {
	for i := 0; i < maxCorrections && integer.Mul64(q, a).Cmp(n) > 0; i++ {
		q--
	}

	for i := 0; i < maxCorrections && q != ^uint64(0) && integer.Mul64(q+1, a).Cmp(n) <= 0; i++ {
		q++
	}

	p := integer.Mul64(q, a)
	if p.Cmp(n) > 0 {
		return q, false, false
	}

	rem := n.Sub(p)
	if rem.Cmp(integer.Uint128{Lo: a}) >= 0 {
		return q, false, false
	}

	return q, !rem.IsZero(), true
}

// estimate returns an approximation of m * 2^frac / divisor using only
// multiplies. Mul and Value never pass a multiplier of 2^width or more.
func (r *Reciprocal) estimate(f Format, m uint64) integer.Uint128 {
	k := r.width
	if fk := f.Kind(); fk > k {
		k = fk
	}
	w := k.Bits()

	d := r.dividend << uint(w-r.width.Bits())
	s := r.shift + w - r.width.Bits()

	// Powers of two only shift.
	if d == 1<<uint(w-1) {
		return integer.Uint128{Lo: m}.Lsh(r.frac).Rsh(w - 1 - s)
	}

	y, full := refine(d, w, f.Bits())
	if !full {
		// 1/d = y / 2^(2w-1)
		return integer.MulHUShift(y, m, 2*w-1-r.frac-s)
	}

	// 1/d = (2^w + y) / 2^(2w)
	shift := 2*w - r.frac - s
	hi := integer.MulHU(y, m, w)

	switch {
	case shift > w:
		return integer.Uint128{Lo: integer.ScaledAdd(m, hi, shift-w, w)}
	case shift == w:
		return integer.Uint128{Lo: m}.Add(integer.Uint128{Lo: hi})
	}

	return integer.Uint128{Lo: m}.Lsh(w - shift).Add(integer.Mul64(y, m).Rsh(shift))
}

// refine approximates 2^w / d for a normalized d (bit w-1 set, not a power of
// two) to at least prec bits.
//
// While full is false the result r reads as r / 2^(w-1) ≈ 2^w / d and every
// Newton-Raphson step r' = r(2 - rd) doubles the correct bits: 3, 6, 12, 24,
// 48, 96, 192, limited to w-3. When that is not enough the result switches to
// the implicit leading one form, 2^w / d = 1 + y / 2^w, and y is completed to
// all w bits one bit at a time.
func refine(d uint64, w, prec int) (y uint64, full bool) {
	mask := integer.Kind(w).Mask()
	half := uint64(1) << uint(w-1)

	// 2.9375 - 2d in Q1.(w-1) is within 2^-3 of 2^w / d.
	r := (15<<uint(w-5) - d) & mask
	known := 3

	for known < prec && known < w-3 {
		e := integer.MulHU(r, d, w)
		h := integer.MulHU(r, -e&mask, w)
		if h >= half {
			r = mask
		} else {
			r = h << 1
		}

		known *= 2
		if known > w-3 {
			known = w - 3
		}
	}

	if known >= prec {
		return r, false
	}

	if r >= half {
		y = r << 1 & mask
	}

	// y is exact when y * d <= (2^w - d) * 2^w < (y + 1) * d.
	target := integer.Uint128{Lo: -d & mask}.Lsh(w)

	window := w - known + 3

	lo := uint64(0)
	if y > 1<<uint(window) {
		lo = y - 1<<uint(window)
	}

	for j := window; j >= 0; j-- {
		bit := uint64(1) << uint(j)
		if lo > mask-bit {
			continue
		}

		if integer.Mul64(lo+bit, d).Cmp(target) <= 0 {
			lo += bit
		}
	}

	return lo, true
}
