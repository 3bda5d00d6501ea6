package fixedpoint

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixedpoint/integer"
)

func TestFromIntBoundaries(t *testing.T) {
	type TC struct {
		f        Format
		ok       []int64
		overflow []int64
	}

	tcs := []TC{
		{f: q1_7, ok: []int64{0, -1}, overflow: []int64{1, 2, -2}},
		{f: q2_6, ok: []int64{-2, -1, 0, 1}, overflow: []int64{2, -3}},
		{f: q8_0, ok: []int64{127, -128}, overflow: []int64{128, -129}},
		{f: q8_8, ok: []int64{127, -128, 47}, overflow: []int64{128, -129, 141}},
		{f: q16_16, ok: []int64{32767, -32768}, overflow: []int64{32768, -32769}},
		{f: q32_32, ok: []int64{math.MaxInt32, math.MinInt32}, overflow: []int64{math.MaxInt32 + 1, math.MinInt32 - 1}},
		{f: q64_0, ok: []int64{math.MaxInt64, math.MinInt64}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.f), func(t *testing.T) {
			for _, x := range tc.ok {
				v, err := FromInt(tc.f, x)
				require.NoError(t, err, x)
				require.Equal(t, x, v.Floor())
				require.Equal(t, x, v.Ceil())
			}

			for _, x := range tc.overflow {
				err := catch(func() error {
					_, err := FromInt(tc.f, x)
					return err
				})
				require.Error(t, err, x)
				require.True(t, OverflowError.Has(err), x)
			}
		})
	}
}

func TestFromFloat(t *testing.T) {
	type TC struct {
		name  string
		f     Format
		x     float64
		raw   int64
		floor int64
		ceil  int64
		Mark  error
	}

	tcs := []TC{
		{name: "2.75", f: q16_16, x: 2.75, raw: 180224, floor: 2, ceil: 3, Mark: oops.New("unexpected")},
		{name: "-2.75", f: q32_32, x: -2.75, raw: -11811160064, floor: -3, ceil: -2, Mark: oops.New("unexpected")},
		{name: "0.1", f: q16_16, x: 0.1, raw: 6553, floor: 0, ceil: 1, Mark: oops.New("unexpected")},
		{name: "-0.1", f: q16_16, x: -0.1, raw: -6554, floor: -1, ceil: 0, Mark: oops.New("unexpected")},
		{name: "127.5", f: q8_8, x: 127.5, raw: 32640, floor: 127, ceil: 128, Mark: oops.New("unexpected")},
		{name: "-128", f: q8_8, x: -128, raw: -32768, floor: -128, ceil: -128, Mark: oops.New("unexpected")},
		{name: "0.5", f: q1_63, x: 0.5, raw: 1 << 62, floor: 0, ceil: 1, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, err := FromFloat(tc.f, tc.x)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.raw, v.Raw(), tc.Mark)
			require.Equal(t, tc.f, v.Format(), tc.Mark)
			require.Equal(t, tc.floor, v.Floor(), tc.Mark)
			require.Equal(t, tc.ceil, v.Ceil(), tc.Mark)

			v32, err := FromFloat32(tc.f, float32(tc.x))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, v.Floor(), v32.Floor(), tc.Mark)
		})
	}

	t.Run("exact", func(t *testing.T) {
		v := fromFloat(t, q16_16, 2.75)
		require.Equal(t, 2.75, v.Float64())
		require.Equal(t, float32(2.75), v.Float32())
	})

	t.Run("failures", func(t *testing.T) {
		for _, x := range []float64{128, -128.5, 1e20, math.Inf(1), math.Inf(-1)} {
			err := catch(func() error {
				_, err := FromFloat(q8_8, x)
				return err
			})
			require.True(t, OverflowError.Has(err), x)
		}

		err := catch(func() error {
			_, err := FromFloat(q16_16, 1e20)
			return err
		})
		require.True(t, OverflowError.Has(err))

		err = catch(func() error {
			_, err := FromFloat(q16_16, math.NaN())
			return err
		})
		require.True(t, DomainError.Has(err))

		_, err = FromFloat(Format{}, 1)
		require.True(t, Error.Has(err))
	})
}

func TestFromRaw(t *testing.T) {
	v := fromRaw(t, q8_8, 32767)
	require.Equal(t, int64(32767), v.Raw())

	for _, raw := range []int64{32768, -32769} {
		err := catch(func() error {
			_, err := FromRaw(q8_8, raw)
			return err
		})
		require.True(t, OverflowError.Has(err), raw)
	}

	require.Panics(t, func() {
		Must(FromRaw(q1_7, 128))
	})
}

func TestCompare(t *testing.T) {
	a := fromFloat(t, q16_16, 1.5)
	b := fromFloat(t, q16_16, -1.5)

	c, err := a.Cmp(b)
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = b.Cmp(a)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = a.Cmp(a)
	require.NoError(t, err)
	require.Equal(t, 0, c)

	_, err = a.Cmp(fromFloat(t, q32_32, 1.5))
	require.Error(t, err)
	require.True(t, Error.Has(err))

	require.True(t, a.Equal(Must(fromInt(t, q16_16, 1).Add(fromFloat(t, q16_16, 0.5)))))
	require.False(t, a.Equal(fromFloat(t, q32_32, 1.5)))

	require.Equal(t, 1, a.Sign())
	require.Equal(t, -1, b.Sign())
	require.Equal(t, 0, Value{format: q16_16}.Sign())
	require.True(t, Value{format: q16_16}.IsZero())
}

func TestText(t *testing.T) {
	type TC struct {
		v       Value
		prec    int
		zeroPad bool
		text    string
	}

	tcs := []TC{
		{v: Value{raw: 12*65536 + 49152, format: q16_16}, prec: 2, text: "12.75"},
		{v: Value{raw: 12*65536 + 49152, format: q16_16}, prec: 6, zeroPad: true, text: "12.750000"},
		{v: Value{raw: 12*65536 + 49152, format: q16_16}, prec: -1, text: "12.75"},
		{v: Value{raw: -98304, format: q16_16}, prec: -1, text: "-1.5"},
		{v: Value{raw: 100 << 16, format: q16_16}, prec: -1, text: "100.0"},
		{v: Value{raw: 0, format: q32_32}, prec: -1, text: "0.0"},
		{v: Value{raw: math.MinInt64, format: q64_0}, prec: -1, text: "-9223372036854775808.0"},
		{v: Value{raw: 64, format: q1_7}, prec: -1, text: "0.5"},
		{v: Value{raw: q16_16.maxRaw(), format: q16_16}, prec: -1, text: "32767.99998"},
		{v: Value{raw: q16_16.minRaw(), format: q16_16}, prec: -1, text: "-32768.0"},
		{v: Value{raw: q8_8.maxRaw(), format: q8_8}, prec: -1, text: "127.996"},
		{v: Value{raw: q1_7.maxRaw(), format: q1_7}, prec: -1, text: "0.992"},
		{v: Value{raw: q1_63.maxRaw(), format: q1_63}, prec: -1, text: "0.9999999999999999998"},
		{v: Value{raw: q64_0.maxRaw(), format: q64_0}, prec: -1, text: "9223372036854775807.0"},
		{v: Value{raw: Format{I: 2, F: 30}.maxRaw(), format: Format{I: 2, F: 30}}, prec: -1, text: "1.999999999"},
		{v: Value{raw: Format{I: 4, F: 4}.maxRaw(), format: Format{I: 4, F: 4}}, prec: -1, text: "7.93"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.text), func(t *testing.T) {
			require.Equal(t, tc.text, tc.v.Text(tc.prec, tc.zeroPad))
		})
	}

	require.Equal(t, "12.75", Value{raw: 12*65536 + 49152, format: q16_16}.String())
}

func TestHex(t *testing.T) {
	require.Equal(t, "0xfffe8000", fromFloat(t, q16_16, -1.5).Hex())
	require.Equal(t, "0x00018000", fromFloat(t, q16_16, 1.5).Hex())
	require.Equal(t, "0xc0", fromFloat(t, q1_7, -0.5).Hex())
	require.Equal(t, "0x0000000280000000", fromFloat(t, q32_32, 2.5).Hex())
	require.Equal(t, "0x8000000000000000", Value{raw: math.MinInt64, format: q64_0}.Hex())
}

func TestParse(t *testing.T) {
	type TC struct {
		text string
		f    Format
		x    float64
		ok   bool
	}

	tcs := []TC{
		{text: "123.", f: q16_16, x: 123, ok: true},
		{text: "123.", f: q32_32, x: 123, ok: true},
		{text: "123", f: q16_16, x: 123, ok: true},
		{text: "-123.", f: q32_32, x: -123, ok: true},
		{text: "123.0000", f: q16_16, x: 123, ok: true},
		{text: ".0", f: q16_16, x: 0, ok: true},
		{text: "-128", f: q8_8, x: -128, ok: true},
		{text: "127.99609375", f: q8_8, x: 127.99609375, ok: true},
		{text: "128", f: q8_8},
		{text: "-128.5", f: q8_8},
		{text: "1e10", f: q16_16},
		{text: "abc", f: q16_16},
		{text: "", f: q16_16},
		{text: "1", f: Format{}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.text), func(t *testing.T) {
			v, ok := Parse(tc.f, tc.text)
			require.Equal(t, tc.ok, ok)

			if tc.ok {
				require.Equal(t, tc.x, v.Float64())
				require.Equal(t, tc.f, v.Format())
			}
		})
	}

	require.Panics(t, func() {
		MustParse(q16_16, "x")
	})
}

func TestRoundTrip(t *testing.T) {
	xs := []float64{
		123.339981068,
		-123.339981068,
		456.478913289,
		999.000009999,
		100,
		-100,
		.456,
	}

	for _, f := range []Format{q16_16, q32_32, q20_44} {
		for _, x := range xs {
			t.Run(fmt.Sprintf("%s/%g", f, x), func(t *testing.T) {
				v := fromFloat(t, f, x)

				p, ok := Parse(f, v.String())
				require.True(t, ok, v.String())

				d, err := BitDistance(v, p)
				require.NoError(t, err)
				require.Less(t, d, 3, "%s\n%s", v, spew.Sdump(v, p))
			})
		}
	}
}

// roundTrip checks that v survives String and Parse within the bit distance
// bound.
func roundTrip(t *testing.T, v Value) {
	t.Helper()

	text := v.String()

	p, ok := Parse(v.Format(), text)
	require.True(t, ok, "%s raw=%d %q", v.Format(), v.Raw(), text)

	d, err := BitDistance(v, p)
	require.NoError(t, err)
	require.Less(t, d, 3, "%s raw=%d %q\n%s", v.Format(), v.Raw(), text, spew.Sdump(v, p))
}

func TestRoundTripFormats(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 1; i <= 64; i++ {
		for fr := 0; i+fr <= 64; fr++ {
			f := Format{I: i, F: fr}

			t.Run(f.String(), func(t *testing.T) {
				raws := []int64{
					f.minRaw(),
					f.minRaw() + 1,
					f.maxRaw(),
					f.maxRaw() - 1,
					0,
					1,
					-1,
				}

				// Anywhere in range, then near the last fractional bits.
				small := fr + 2
				if small > f.Bits() {
					small = f.Bits()
				}
				for k := 0; k < 100; k++ {
					raws = append(raws,
						integer.SignExtend(int64(rng.Uint64()), f.Bits()),
						integer.SignExtend(int64(rng.Uint64()), small),
					)
				}

				for _, raw := range raws {
					roundTrip(t, fromRaw(t, f, raw))
				}
			})
		}
	}
}

func TestBitDistance(t *testing.T) {
	type TC struct {
		a, b int64
		d    int
	}

	tcs := []TC{
		{a: 0, b: 0, d: 0},
		{a: 0, b: 1, d: 0},
		{a: 2, b: 0, d: 1},
		{a: -3, b: 0, d: 2},
		{a: 0, b: 5, d: 3},
		{a: 1 << 20, b: -(1 << 20), d: 21},
		{a: math.MaxInt64, b: math.MinInt64, d: 64},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			d, err := BitDistance(Value{raw: tc.a, format: q64_0}, Value{raw: tc.b, format: q64_0})
			require.NoError(t, err)
			require.Equal(t, tc.d, d)
		})
	}

	_, err := BitDistance(fromInt(t, q16_16, 1), fromInt(t, q32_32, 1))
	require.True(t, Error.Has(err))
}
