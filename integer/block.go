package integer

import (
	"math/big"
)

// Block is a signed integer held as magnitude and sign.
type Block struct {
	Magnitude uint64
	Negative  bool
}

// BlockOf returns the block holding x.
func BlockOf(x int64) Block {
	return Block{
		Magnitude: Abs(x),
		Negative:  x < 0,
	}
}

// Int64 returns the block as an int64.
func (b Block) Int64() (x int64, err error) {
	switch {
	case b.Negative && b.Magnitude > 1<<63:
		return 0, Error.New("magnitude too large: -%d", b.Magnitude)
	case !b.Negative && b.Magnitude > 1<<63-1:
		return 0, Error.New("magnitude too large: %d", b.Magnitude)
	case b.Negative:
		return int64(^b.Magnitude + 1), nil
	}

	return int64(b.Magnitude), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetUint64(b.Magnitude)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("empty block")
	}

	i := new(big.Int).SetBytes(data)

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	if !i.IsUint64() {
		return Error.New("block too large: %d bytes", len(data))
	}

	b.Magnitude = i.Uint64()
	b.Negative = negative

	return nil
}
