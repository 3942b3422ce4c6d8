// Package numfmt renders floating-point values as short, trimmed text,
// switching between fixed-point and scientific notation depending on the
// magnitude of the value.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Errors returned by Format.
var (
	ErrInvalidNumber  = errors.New("invalid numeric value")
	ErrInvalidOptions = errors.New("invalid format options")
)

// Options controls how a value is formatted.
type Options struct {
	// Precision is the number of digits after the decimal point in fixed
	// notation, or after the leading digit in scientific notation, before
	// trailing zeros are trimmed.
	Precision int
	// LowerBound is the magnitude below which non-zero values are formatted
	// using scientific notation.
	LowerBound float64
	// UpperBound is the magnitude above which values are formatted using
	// scientific notation.
	UpperBound float64
}

// DefaultOptions are the options used by FormatDefault.
var DefaultOptions = Options{
	Precision:  6,
	LowerBound: 0.001,
	UpperBound: 100000,
}

// Validate returns an error if the options cannot be used for formatting.
func (o Options) Validate() error {
	if o.Precision < 0 {
		return fmt.Errorf("%w: precision must not be negative, but was %d",
			ErrInvalidOptions, o.Precision)
	}
	if !isPositive(o.LowerBound) {
		return fmt.Errorf("%w: lower bound must be positive, but was %v",
			ErrInvalidOptions, o.LowerBound)
	}
	if !isPositive(o.UpperBound) {
		return fmt.Errorf("%w: upper bound must be positive, but was %v",
			ErrInvalidOptions, o.UpperBound)
	}
	if o.LowerBound > o.UpperBound {
		return fmt.Errorf("%w: lower bound %v is greater than upper bound %v",
			ErrInvalidOptions, o.LowerBound, o.UpperBound)
	}
	return nil
}

// UseScientific reports whether the value would be formatted using
// scientific notation with these options. Zero never is.
func (o Options) UseScientific(value float64) bool {
	if value == 0 {
		return false
	}
	abs := math.Abs(value)
	return abs < o.LowerBound || abs > o.UpperBound
}

// FormatDefault formats the value using DefaultOptions.
func FormatDefault(value float64) (string, error) {
	return Format(value, DefaultOptions)
}

// Format renders the value as text. Values with a magnitude outside the
// bounds of the options are written in scientific notation, such as "5e-05",
// while all other values, including zero, are written in fixed notation, such
// as "123.45". Trailing zeros of the fraction or mantissa are removed, and so
// is the decimal point if nothing remains after it.
//
// NaN and infinite values are rejected with ErrInvalidNumber.
func Format(value float64, opts Options) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumber, value)
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if value == 0 {
		return "0", nil
	}
	if opts.UseScientific(value) {
		return trimScientific(strconv.FormatFloat(value, 'e', opts.Precision, 64)), nil
	}
	s := trimFraction(strconv.FormatFloat(value, 'f', opts.Precision, 64))
	if s == "-0" {
		// rounded away to nothing
		return "0", nil
	}
	return s, nil
}

// Format32 is like Format, but formats the shortest decimal value that reads
// back as the same float32. Precisions beyond what a float32 can hold then
// show zeros instead of its binary representation error, so float32(0.1) at
// precision 10 is "0.1" and not "0.1000000015".
func Format32(value float32, opts Options) (string, error) {
	wide := float64(value)
	if math.IsNaN(wide) || math.IsInf(wide, 0) {
		return Format(wide, opts)
	}
	shortest, err := strconv.ParseFloat(strconv.FormatFloat(wide, 'g', -1, 32), 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumber, value)
	}
	return Format(shortest, opts)
}

func trimFraction(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func trimScientific(s string) string {
	exp := strings.IndexByte(s, 'e')
	if exp == -1 {
		return trimFraction(s)
	}
	return trimFraction(s[:exp]) + s[exp:]
}

func isPositive(f float64) bool {
	// also false for NaN
	return f > 0
}
