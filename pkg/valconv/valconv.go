// Package valconv converts primitive values to and from their canonical text
// representation, as stored in scalar document nodes.
package valconv

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/iver-wharf/wharf-valconv/pkg/numfmt"
)

// ErrMalformedNumber is returned, wrapped in a *ParseError, when text is not
// a valid representation of the wanted numeric type.
var ErrMalformedNumber = errors.New("malformed numeric text")

// Scalar is the closed set of types that can be parsed and rendered.
type Scalar interface {
	int | int32 | int64 |
		uint | uint32 | uint64 |
		float32 | float64 |
		string
}

// ParseError is the error returned by Parse. It matches ErrMalformedNumber
// using errors.Is, and unwraps to the underlying strconv error, such as
// strconv.ErrRange or strconv.ErrSyntax.
type ParseError struct {
	Text string
	Type string
	Err  error
}

// Error implements the error interface.
func (err *ParseError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("%s: %q as %s", ErrMalformedNumber, err.Text, err.Type)
	}
	reason := err.Err
	var numErr *strconv.NumError
	if errors.As(reason, &numErr) {
		// strconv.NumError repeats the text, which is already in our message
		reason = numErr.Err
	}
	return fmt.Sprintf("%s: %q as %s: %s", ErrMalformedNumber, err.Text, err.Type, reason)
}

// Is implements the interface to support errors.Is.
func (err *ParseError) Is(target error) bool {
	return target == ErrMalformedNumber
}

// Unwrap implements the interface to support errors.Unwrap.
func (err *ParseError) Unwrap() error {
	return err.Err
}

// Parse converts text into a value of type T. No whitespace is trimmed, and
// the whole text must be consumed. Integers are read in base 10, floats in
// decimal or exponent notation. Hexadecimal floats, such as "0x1p-2", are
// rejected. Strings are returned unchanged.
//
// NaN and infinity spellings are rejected for floats, as they cannot be
// written back as text by this package.
func Parse[T Scalar](text string) (T, error) {
	var result T
	var err error
	switch ptr := any(&result).(type) {
	case *string:
		*ptr = text
	case *int:
		*ptr, err = parseInt[int](text, strconv.IntSize)
	case *int32:
		*ptr, err = parseInt[int32](text, 32)
	case *int64:
		*ptr, err = parseInt[int64](text, 64)
	case *uint:
		*ptr, err = parseUint[uint](text, strconv.IntSize)
	case *uint32:
		*ptr, err = parseUint[uint32](text, 32)
	case *uint64:
		*ptr, err = parseUint[uint64](text, 64)
	case *float32:
		*ptr, err = parseFloat[float32](text, 32)
	case *float64:
		*ptr, err = parseFloat[float64](text, 64)
	}
	if err != nil {
		var zero T
		return zero, &ParseError{Text: text, Type: TypeName[T](), Err: err}
	}
	return result, nil
}

// Render converts a value of type T into text. Floats are formatted using
// numfmt.Format, or numfmt.Format32 for float32, with the given options, and
// may fail for NaN or infinite values. All other types always succeed.
func Render[T Scalar](value T, opts numfmt.Options) (string, error) {
	switch v := any(value).(type) {
	case string:
		return v, nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return numfmt.Format32(v, opts)
	case float64:
		return numfmt.Format(v, opts)
	default:
		panic(fmt.Sprintf("valconv: unhandled scalar type %T", value))
	}
}

// RenderDefault converts a value of type T into text, using
// numfmt.DefaultOptions for floats.
func RenderDefault[T Scalar](value T) (string, error) {
	return Render(value, numfmt.DefaultOptions)
}

// TypeName returns the name of T, as used in error messages.
func TypeName[T Scalar]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

type signed interface {
	int | int32 | int64
}

type unsigned interface {
	uint | uint32 | uint64
}

func parseInt[T signed](text string, bitSize int) (T, error) {
	num, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return 0, err
	}
	return T(num), nil
}

func parseUint[T unsigned](text string, bitSize int) (T, error) {
	num, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return 0, err
	}
	return T(num), nil
}

func parseFloat[T float32 | float64](text string, bitSize int) (T, error) {
	if isHexFloat(text) {
		return 0, strconv.ErrSyntax
	}
	num, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, strconv.ErrSyntax
	}
	return T(num), nil
}

func isHexFloat(text string) bool {
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}
