package fixedpoint

import (
	"github.com/calebcase/fixedpoint/integer"
)

// Convert realigns v to format f. Dropped fractional bits round toward
// negative infinity.
func (v Value) Convert(f Format) (Value, error) {
	if err := v.format.check(); err != nil {
		return Value{}, err
	}
	if err := f.check(); err != nil {
		return Value{}, err
	}

	ip := v.raw >> uint(v.format.F)
	if !integer.FitIn(ip, f.I) {
		return Value{}, fail(OverflowError.New("%s does not fit %s", v, f))
	}

	raw := v.raw
	if f.F >= v.format.F {
		raw <<= uint(f.F - v.format.F)
	} else {
		raw >>= uint(v.format.F - f.F)
	}

	return Value{raw: raw, format: f}, nil
}

// align returns a and b in a common format. The operand with fewer fractional
// bits (or, on a tie, fewer integer bits) is converted to the other's format.
func align(a, b Value) (Value, Value, error) {
	if err := a.format.check(); err != nil {
		return Value{}, Value{}, err
	}
	if err := b.format.check(); err != nil {
		return Value{}, Value{}, err
	}

	if a.format == b.format {
		return a, b, nil
	}

	var err error

	if b.format.F > a.format.F || (b.format.F == a.format.F && b.format.I > a.format.I) {
		a, err = a.Convert(b.format)
	} else {
		b, err = b.Convert(a.format)
	}

	return a, b, err
}

// Add returns v+b. Mixed formats are aligned first.
func (v Value) Add(b Value) (Value, error) {
	v, b, err := align(v, b)
	if err != nil {
		return Value{}, err
	}

	if integer.AddOverflow(v.raw, b.raw, v.format.Bits()) {
		return Value{}, fail(OverflowError.New("%s + %s overflows %s", v, b, v.format))
	}

	return Value{raw: v.raw + b.raw, format: v.format}, nil
}

// Sub returns v-b. Mixed formats are aligned first.
func (v Value) Sub(b Value) (Value, error) {
	v, b, err := align(v, b)
	if err != nil {
		return Value{}, err
	}

	if integer.SubOverflow(v.raw, b.raw, v.format.Bits()) {
		return Value{}, fail(OverflowError.New("%s - %s overflows %s", v, b, v.format))
	}

	return Value{raw: v.raw - b.raw, format: v.format}, nil
}

// Mul returns v scaled by b in the format of v, rounded toward negative
// infinity.
func (v Value) Mul(b Value) (Value, error) {
	if err := v.format.check(); err != nil {
		return Value{}, err
	}
	if err := b.format.check(); err != nil {
		return Value{}, err
	}

	p := integer.Mul64(integer.Abs(v.raw), integer.Abs(b.raw))
	q := p.Rsh(b.format.F)

	inexact := !p.Sub(q.Lsh(b.format.F)).IsZero()

	return fromMagnitude(v.format, q, (v.raw < 0) != (b.raw < 0), inexact)
}

// Div returns v/b computed as the reciprocal of b scaled by v. The result has
// the format of v.
func (v Value) Div(b Value) (Value, error) {
	r, err := Recip(b)
	if err != nil {
		return Value{}, err
	}

	return r.Mul(v)
}

// Neg returns -v.
func (v Value) Neg() (Value, error) {
	if err := v.format.check(); err != nil {
		return Value{}, err
	}

	if v.raw == v.format.minRaw() {
		return Value{}, fail(OverflowError.New("-%s overflows %s", v, v.format))
	}

	return Value{raw: -v.raw, format: v.format}, nil
}

// Abs returns |v|.
func (v Value) Abs() (Value, error) {
	if v.raw < 0 {
		return v.Neg()
	}

	return v, nil
}
