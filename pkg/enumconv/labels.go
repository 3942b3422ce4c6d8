package enumconv

import (
	"fmt"

	"github.com/iver-wharf/wharf-valconv/internal/errutil"
)

// Labels is an ordered list of labels, where the label at index i belongs to
// the enumerator with the underlying value i.
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	var colorLabels = enumconv.Labels[Color]{"Red", "Green", "Blue"}
type Labels[E Integer] []string

// Lookup returns the enumerator of the first label that is equal to the text,
// or false if none is.
func (l Labels[E]) Lookup(text string) (E, bool) {
	return l.lookup(text, false)
}

// LookupFold is like Lookup, but compares ASCII letters case-insensitively.
func (l Labels[E]) LookupFold(text string) (E, bool) {
	return l.lookup(text, true)
}

// Parse returns the enumerator of the first label that is equal to the text,
// or the fallback if none is.
func (l Labels[E]) Parse(text string, fallback E) E {
	if value, ok := l.Lookup(text); ok {
		return value
	}
	return fallback
}

// ParseFold is like Parse, but compares ASCII letters case-insensitively.
func (l Labels[E]) ParseFold(text string, fallback E) E {
	if value, ok := l.LookupFold(text); ok {
		return value
	}
	return fallback
}

// Label returns the label at the index of the enumerator's underlying value.
// An ErrIndexOutOfRange error is returned for values that have no label, as
// that means the list and the enum have drifted apart.
func (l Labels[E]) Label(value E) (string, error) {
	// compared as uint64 so negative values wrap around to out of range
	if value < 0 || uint64(value) >= uint64(len(l)) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, value, len(l))
	}
	return l[int(value)], nil
}

// Table converts the list into the mapping shape, keeping the order.
func (l Labels[E]) Table() Table[E] {
	table := make(Table[E], len(l))
	for i, label := range l {
		table[i] = Entry[E]{Value: E(i), Label: label}
	}
	return table
}

// Validate reports labels that are equal to an earlier label, using
// case-insensitive comparison if fold is true.
func (l Labels[E]) Validate(fold bool) errutil.Slice {
	var errs errutil.Slice
	for i, label := range l {
		for j := 0; j < i; j++ {
			if labelsEqual(l[j], label, fold) {
				errs.Add(ambiguousLabelError(label, i, j))
				break
			}
		}
	}
	return errs
}

func (l Labels[E]) lookup(text string, fold bool) (E, bool) {
	for i, label := range l {
		if labelsEqual(label, text, fold) {
			return E(i), true
		}
	}
	return 0, false
}
