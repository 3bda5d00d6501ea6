package fixedpoint

import (
	"github.com/calebcase/fixedpoint/integer"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The layout is one byte of integer bits, one byte of fractional bits and the
// raw integer as an integer.Block.
func (v Value) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	if err = v.format.check(); err != nil {
		return nil, err
	}

	raw, err := integer.BlockOf(v.raw).MarshalBinary()
	if err != nil {
		return nil, err
	}

	data = make([]byte, 0, 2+len(raw))
	data = append(data, byte(v.format.I), byte(v.format.F))
	data = append(data, raw...)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 3 {
		return Error.New("short value: %d bytes", len(data))
	}

	f := Format{I: int(data[0]), F: int(data[1])}
	if err = f.check(); err != nil {
		return err
	}

	blk := integer.Block{}
	if err = blk.UnmarshalBinary(data[2:]); err != nil {
		return err
	}

	raw, err := blk.Int64()
	if err != nil {
		return err
	}

	if !f.fits(raw) {
		return Error.New("raw %d does not fit %s", raw, f)
	}

	*v = Value{raw: raw, format: f}

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() (text []byte, err error) {
	if err = v.format.check(); err != nil {
		return nil, err
	}

	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is read in the
// format v already has.
func (v *Value) UnmarshalText(text []byte) (err error) {
	if err = v.format.check(); err != nil {
		return Error.New("value has no format")
	}

	p, ok := Parse(v.format, string(text))
	if !ok {
		return Error.New("invalid %s value: %q", v.format, text)
	}

	*v = p

	return nil
}

// Zero returns zero in format f. It is the starting point for UnmarshalText.
func Zero(f Format) (Value, error) {
	return FromRaw(f, 0)
}
