package valconv

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/iver-wharf/wharf-valconv/pkg/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_int(t *testing.T) {
	var tests = []struct {
		name string
		text string
		want int
	}{
		{name: "zero", text: "0", want: 0},
		{name: "positive", text: "42", want: 42},
		{name: "explicit plus", text: "+7", want: 7},
		{name: "negative", text: "-1234", want: -1234},
		{name: "leading zeros", text: "007", want: 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse[int](tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_malformed(t *testing.T) {
	var tests = []struct {
		name  string
		parse func(string) error
		text  string
	}{
		{name: "empty int", parse: parseErr[int], text: ""},
		{name: "letters in int", parse: parseErr[int], text: "12abc"},
		{name: "leading space", parse: parseErr[int], text: " 12"},
		{name: "trailing space", parse: parseErr[int64], text: "12 "},
		{name: "fraction in int", parse: parseErr[int], text: "1.5"},
		{name: "hex is not base 10", parse: parseErr[int], text: "0x1F"},
		{name: "underscores", parse: parseErr[int], text: "1_000"},
		{name: "int32 overflow", parse: parseErr[int32], text: "2147483648"},
		{name: "negative uint", parse: parseErr[uint], text: "-1"},
		{name: "uint32 overflow", parse: parseErr[uint32], text: "4294967296"},
		{name: "uint64 overflow", parse: parseErr[uint64], text: "18446744073709551616"},
		{name: "empty float", parse: parseErr[float64], text: ""},
		{name: "garbage float", parse: parseErr[float64], text: "1.2.3"},
		{name: "NaN", parse: parseErr[float64], text: "NaN"},
		{name: "infinity", parse: parseErr[float64], text: "-Inf"},
		{name: "float64 overflow", parse: parseErr[float64], text: "1e400"},
		{name: "float32 overflow", parse: parseErr[float32], text: "1e39"},
		{name: "hex float", parse: parseErr[float64], text: "0x1p-2"},
		{name: "signed hex float", parse: parseErr[float64], text: "-0X1P-2"},
		{name: "hex float32", parse: parseErr[float32], text: "+0x1.8p1"},
		{name: "hex float underscores", parse: parseErr[float64], text: "0x_1p0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.parse(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedNumber)
		})
	}
}

func parseErr[T Scalar](text string) error {
	_, err := Parse[T](text)
	return err
}

func TestParse_errorDetails(t *testing.T) {
	_, err := Parse[int32]("99999999999")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "99999999999", parseErr.Text)
	assert.Equal(t, "int32", parseErr.Type)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.Equal(t, `malformed numeric text: "99999999999" as int32: value out of range`, err.Error())

	_, err = Parse[float64]("abc")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Equal(t, `malformed numeric text: "abc" as float64: invalid syntax`, err.Error())
}

func TestParse_bounds(t *testing.T) {
	i64, err := Parse[int64]("-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64)

	u64, err := Parse[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u64)

	u32, err := Parse[uint32]("4294967295")
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), u32)
}

func TestParse_float(t *testing.T) {
	var tests = []struct {
		text string
		want float64
	}{
		{text: "0", want: 0},
		{text: "123.45", want: 123.45},
		{text: "-0.5", want: -0.5},
		{text: "5e-05", want: 0.00005},
		{text: "1.234567e+06", want: 1234567},
		{text: ".5", want: 0.5},
		{text: "+3", want: 3},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got, err := Parse[float64](tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	f32, err := Parse[float32]("0.25")
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), f32)
}

func TestParse_stringIsIdentity(t *testing.T) {
	for _, text := range []string{"", "  padded  ", "not a number", "12"} {
		got, err := Parse[string](text)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestRender(t *testing.T) {
	var tests = []struct {
		name   string
		render func() (string, error)
		want   string
	}{
		{name: "int", render: func() (string, error) { return RenderDefault(-42) }, want: "-42"},
		{name: "int32", render: func() (string, error) { return RenderDefault(int32(math.MinInt32)) }, want: "-2147483648"},
		{name: "int64", render: func() (string, error) { return RenderDefault(int64(1) << 40) }, want: "1099511627776"},
		{name: "uint", render: func() (string, error) { return RenderDefault(uint(7)) }, want: "7"},
		{name: "uint32", render: func() (string, error) { return RenderDefault(uint32(math.MaxUint32)) }, want: "4294967295"},
		{name: "uint64", render: func() (string, error) { return RenderDefault(uint64(math.MaxUint64)) }, want: "18446744073709551615"},
		{name: "float64 fixed", render: func() (string, error) { return RenderDefault(123.45) }, want: "123.45"},
		{name: "float64 scientific", render: func() (string, error) { return RenderDefault(0.00005) }, want: "5e-05"},
		{name: "float32", render: func() (string, error) { return RenderDefault(float32(0.1)) }, want: "0.1"},
		{name: "string", render: func() (string, error) { return RenderDefault("  as is ") }, want: "  as is "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.render()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRender_options(t *testing.T) {
	got, err := Render(2.0/3, numfmt.Options{Precision: 2, LowerBound: 0.001, UpperBound: 100000})
	require.NoError(t, err)
	assert.Equal(t, "0.67", got)
}

func TestRender_float32HighPrecision(t *testing.T) {
	opts := numfmt.Options{Precision: 10, LowerBound: 0.001, UpperBound: 100000}
	got, err := Render(float32(0.1), opts)
	require.NoError(t, err)
	assert.Equal(t, "0.1", got)

	got, err = Render(float32(3e-5), opts)
	require.NoError(t, err)
	assert.Equal(t, "3e-05", got)
}

func TestRender_invalidFloat(t *testing.T) {
	_, err := RenderDefault(math.NaN())
	assert.ErrorIs(t, err, numfmt.ErrInvalidNumber)
	_, err = RenderDefault(float32(math.Inf(-1)))
	assert.ErrorIs(t, err, numfmt.ErrInvalidNumber)
}

func TestRenderParse_roundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		text, err := RenderDefault(v)
		require.NoError(t, err)
		back, err := Parse[int64](text)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
	for _, v := range []float64{0, 0.25, -1e-9, 6.02214076e23, 99999.5} {
		text, err := RenderDefault(v)
		require.NoError(t, err)
		back, err := Parse[float64](text)
		require.NoError(t, err)
		assert.InEpsilon(t, v+1, back+1, 1e-6, "text=%q", text)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "uint32", TypeName[uint32]())
	assert.Equal(t, "string", TypeName[string]())
	assert.Equal(t, "float64", TypeName[float64]())
}
