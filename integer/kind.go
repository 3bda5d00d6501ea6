package integer

import "strconv"

// Kind is a native integer width.
type Kind int

const (
	Int8   Kind = 8
	Int16  Kind = 16
	Int32  Kind = 32
	Int64  Kind = 64
	Int128 Kind = 128
)

var (
	fastest  = []Kind{Int8, Int32, Int64}
	smallest = []Kind{Int8, Int16, Int32, Int64}
)

func selectKind(kinds []Kind, n int) (k Kind, err error) {
	if n < 1 {
		return 0, Error.New("invalid bit width: %d", n)
	}

	for _, k := range kinds {
		if n <= int(k) {
			return k, nil
		}
	}

	return 0, Error.New("no native integer holds %d bits", n)
}

// SelectFastest returns the kind used for arithmetic on n bits. The 16 bit
// width is skipped.
func SelectFastest(n int) (k Kind, err error) {
	return selectKind(fastest, n)
}

// SelectSmallest returns the narrowest kind holding n bits.
func SelectSmallest(n int) (k Kind, err error) {
	return selectKind(smallest, n)
}

// Bits returns the width of the kind.
func (k Kind) Bits() int {
	return int(k)
}

// Double returns the kind twice as wide. Int128 has no double and returns
// itself.
func (k Kind) Double() Kind {
	switch k {
	case Int8:
		return Int16
	case Int16:
		return Int32
	case Int32:
		return Int64
	case Int64:
		return Int128
	}

	return k
}

// Mask returns the low Bits() bits set. Int128 masks the full low word.
func (k Kind) Mask() uint64 {
	if k >= Int64 {
		return ^uint64(0)
	}

	return 1<<uint(k) - 1
}

func (k Kind) String() string {
	return "int" + strconv.Itoa(int(k))
}
