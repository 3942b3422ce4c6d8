// Package enumconv converts enumerated values to and from text labels.
//
// Two shapes of label tables are supported. Labels is an ordered list, where
// the position of a label is the underlying value of the enumerator, and fits
// dense zero-based enums. Table is an explicit list of value and label pairs,
// and fits sparse or non-contiguous enums.
//
// Both shapes support case-sensitive and case-insensitive lookups. Case
// insensitive lookups only fold ASCII letters, as labels are expected to be
// plain identifiers.
//
// A label table should not contain two labels that are equal in the
// comparison mode used for lookups. If it does, converting from text is still
// well-defined, as the first matching label wins, but that is rarely what the
// caller intended. Use Validate to detect this.
package enumconv

import (
	"errors"
	"fmt"
)

// UnknownLabel is the label returned by Table.Label for values that are not
// in the table.
const UnknownLabel = "Unknown"

// Errors related to label tables.
var (
	ErrIndexOutOfRange = errors.New("enum value out of range of labels")
	ErrAmbiguousLabel  = errors.New("label appears more than once")
	ErrDuplicateValue  = errors.New("enum value appears more than once")
)

// Integer is the set of types that can be used with Labels, where the
// underlying value is used as index into the label list.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func labelsEqual(a, b string, fold bool) bool {
	if fold {
		return equalFoldASCII(a, b)
	}
	return a == b
}

// equalFoldASCII compares two strings with only the ASCII letters A-Z folded
// to lower case. All other bytes must match exactly.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func ambiguousLabelError(label string, index, firstIndex int) error {
	return fmt.Errorf("%w: %q at index %d, first seen at index %d",
		ErrAmbiguousLabel, label, index, firstIndex)
}
