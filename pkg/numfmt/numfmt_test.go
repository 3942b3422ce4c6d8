package numfmt

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	var tests = []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{
			name:      "zero",
			value:     0,
			precision: 6,
			want:      "0",
		},
		{
			name:      "negative zero",
			value:     math.Copysign(0, -1),
			precision: 6,
			want:      "0",
		},
		{
			name:      "small value in scientific",
			value:     0.00005,
			precision: 3,
			want:      "5e-05",
		},
		{
			name:      "trailing zeros trimmed",
			value:     123.45000,
			precision: 5,
			want:      "123.45",
		},
		{
			name:      "integral value drops decimal point",
			value:     100.0,
			precision: 2,
			want:      "100",
		},
		{
			name:      "negative fixed",
			value:     -0.5,
			precision: 6,
			want:      "-0.5",
		},
		{
			name:      "lower bound is fixed",
			value:     0.001,
			precision: 6,
			want:      "0.001",
		},
		{
			name:      "upper bound is fixed",
			value:     100000,
			precision: 6,
			want:      "100000",
		},
		{
			name:      "above upper bound",
			value:     1234567,
			precision: 6,
			want:      "1.234567e+06",
		},
		{
			name:      "scientific mantissa of only zeros",
			value:     1e6,
			precision: 3,
			want:      "1e+06",
		},
		{
			name:      "scientific rounds mantissa",
			value:     123456.789,
			precision: 2,
			want:      "1.23e+05",
		},
		{
			name:      "negative scientific",
			value:     -1.5e-10,
			precision: 6,
			want:      "-1.5e-10",
		},
		{
			name:      "zero precision fixed",
			value:     2.7,
			precision: 0,
			want:      "3",
		},
		{
			name:      "zero precision scientific",
			value:     7e-9,
			precision: 0,
			want:      "7e-09",
		},
		{
			name:      "fixed rounding",
			value:     0.123456789,
			precision: 4,
			want:      "0.1235",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions
			opts.Precision = tc.precision
			got, err := Format(tc.value, opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_customBounds(t *testing.T) {
	opts := Options{Precision: 3, LowerBound: 0.0001, UpperBound: 10}

	got, err := Format(-0.00042, opts)
	require.NoError(t, err)
	assert.Equal(t, "0", got, "negative value rounded to zero")

	got, err = Format(-0.00004, opts)
	require.NoError(t, err)
	assert.Equal(t, "-4e-05", got)

	got, err = Format(11, opts)
	require.NoError(t, err)
	assert.Equal(t, "1.1e+01", got)
}

func TestFormat_zeroIgnoresBounds(t *testing.T) {
	for _, opts := range []Options{
		{Precision: 0, LowerBound: 1, UpperBound: 1},
		{Precision: 10, LowerBound: 1e-300, UpperBound: 1e300},
		{Precision: 3, LowerBound: 5, UpperBound: 1e6},
	} {
		got, err := Format(0, opts)
		require.NoError(t, err)
		assert.Equal(t, "0", got)
	}
}

func TestFormat_invalidNumber(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatDefault(value)
		assert.ErrorIs(t, err, ErrInvalidNumber)
	}
}

func TestFormat32(t *testing.T) {
	opts := Options{Precision: 10, LowerBound: 0.001, UpperBound: 100000}
	var tests = []struct {
		name  string
		value float32
		want  string
	}{
		{name: "tenth", value: 0.1, want: "0.1"},
		{name: "negative", value: -1.1, want: "-1.1"},
		{name: "scientific", value: 16777216, want: "1.6777216e+07"},
		{name: "small", value: 3e-5, want: "3e-05"},
		{name: "zero", value: 0, want: "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format32(tc.value, opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat32_widenedShowsNoise(t *testing.T) {
	opts := Options{Precision: 10, LowerBound: 0.001, UpperBound: 100000}
	got, err := Format(float64(float32(0.1)), opts)
	require.NoError(t, err)
	assert.Equal(t, "0.1000000015", got)
}

func TestFormat32_invalidNumber(t *testing.T) {
	_, err := Format32(float32(math.NaN()), DefaultOptions)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = Format32(float32(math.Inf(1)), DefaultOptions)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestFormat_invalidOptions(t *testing.T) {
	var tests = []struct {
		name string
		opts Options
	}{
		{
			name: "negative precision",
			opts: Options{Precision: -1, LowerBound: 0.001, UpperBound: 100000},
		},
		{
			name: "zero lower bound",
			opts: Options{Precision: 1, LowerBound: 0, UpperBound: 100000},
		},
		{
			name: "negative upper bound",
			opts: Options{Precision: 1, LowerBound: 0.001, UpperBound: -1},
		},
		{
			name: "NaN bound",
			opts: Options{Precision: 1, LowerBound: math.NaN(), UpperBound: 1},
		},
		{
			name: "swapped bounds",
			opts: Options{Precision: 1, LowerBound: 10, UpperBound: 1},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Format(1, tc.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestFormat_roundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.1, 0.5, 3.14159265358979, -2.718281828,
		0.001, 0.00099999, 1e-7, 4.2e-300, 99999.99, 100000, 100000.5,
		123456789, -9.87654321e20, 1.5e300,
	}
	for _, precision := range []int{0, 1, 3, 6, 12} {
		opts := DefaultOptions
		opts.Precision = precision
		for _, v := range values {
			text, err := Format(v, opts)
			require.NoError(t, err)
			back, err := strconv.ParseFloat(text, 64)
			require.NoError(t, err, "parse %q", text)

			tolerance := math.Pow(10, -float64(precision))
			if opts.UseScientific(v) {
				// precision applies to the mantissa
				tolerance *= math.Pow(10, math.Floor(math.Log10(math.Abs(v))))
			}
			assert.InDelta(t, v, back, tolerance, "value=%v precision=%d text=%q", v, precision, text)
		}
	}
}

func TestFormat_deterministic(t *testing.T) {
	for _, v := range []float64{0, 1.0 / 3, -7e-12, 1e22} {
		a, errA := FormatDefault(v)
		b, errB := FormatDefault(v)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	}
}
