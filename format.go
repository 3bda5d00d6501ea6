package fixedpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/fixedpoint/integer"
)

// Format is the layout of a value: I integer bits (sign included) and F
// fractional bits.
type Format struct {
	I int
	F int
}

// NewFormat returns the format with i integer and f fractional bits.
func NewFormat(i, f int) (Format, error) {
	ft := Format{I: i, F: f}

	return ft, ft.check()
}

func (f Format) check() error {
	if f.I < 1 || f.F < 0 || f.I+f.F > 64 {
		return Error.New("invalid format: %d integer bits, %d fractional bits", f.I, f.F)
	}

	return nil
}

// Valid reports whether f can hold values.
func (f Format) Valid() bool {
	return f.check() == nil
}

// Bits returns I+F.
func (f Format) Bits() int {
	return f.I + f.F
}

// Kind returns the native width used for arithmetic on f. Invalid formats
// report Int64.
func (f Format) Kind() integer.Kind {
	k, err := integer.SelectFastest(f.Bits())
	if err != nil {
		return integer.Int64
	}

	return k
}

// TruncKind returns the narrowest native width holding the integer part.
func (f Format) TruncKind() integer.Kind {
	k, err := integer.SelectSmallest(f.I)
	if err != nil {
		return integer.Int64
	}

	return k
}

func (f Format) minRaw() int64 {
	return -1 << uint(f.Bits()-1)
}

func (f Format) maxRaw() int64 {
	return 1<<uint(f.Bits()-1) - 1
}

// fits reports whether raw satisfies the range of f.
func (f Format) fits(raw int64) bool {
	return integer.FitIn(raw, f.Bits())
}

func (f Format) String() string {
	return fmt.Sprintf("Q%d.%d", f.I, f.F)
}

// ParseFormat reads a format written as "I.F" or "QI.F".
func ParseFormat(s string) (f Format, err error) {
	defer Error.WrapP(&err)

	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "Q"), "q")

	is, fs, ok := strings.Cut(s, ".")
	if !ok {
		return Format{}, Error.New("missing '.' in format %q", s)
	}

	i, err := strconv.Atoi(is)
	if err != nil {
		return Format{}, err
	}

	fr, err := strconv.Atoi(fs)
	if err != nil {
		return Format{}, err
	}

	return NewFormat(i, fr)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() (text []byte, err error) {
	if err = f.check(); err != nil {
		return nil, err
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) (err error) {
	ft, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = ft

	return nil
}
