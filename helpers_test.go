package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	q1_7   = Format{I: 1, F: 7}
	q2_6   = Format{I: 2, F: 6}
	q8_0   = Format{I: 8, F: 0}
	q8_8   = Format{I: 8, F: 8}
	q8_24  = Format{I: 8, F: 24}
	q16_16 = Format{I: 16, F: 16}
	q16_32 = Format{I: 16, F: 32}
	q20_44 = Format{I: 20, F: 44}
	q32_32 = Format{I: 32, F: 32}
	q1_63  = Format{I: 1, F: 63}
	q64_0  = Format{I: 64, F: 0}
)

// catch returns the error of fn, including one raised by a panic when the
// package is built with fixedpanic.
func catch(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		err = e
	}()

	return fn()
}

func fromInt(t *testing.T, f Format, i int64) Value {
	t.Helper()

	v, err := FromInt(f, i)
	require.NoError(t, err)

	return v
}

func fromFloat(t *testing.T, f Format, x float64) Value {
	t.Helper()

	v, err := FromFloat(f, x)
	require.NoError(t, err)

	return v
}

func fromRaw(t *testing.T, f Format, raw int64) Value {
	t.Helper()

	v, err := FromRaw(f, raw)
	require.NoError(t, err)

	return v
}
