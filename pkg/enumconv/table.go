package enumconv

import (
	"fmt"

	"github.com/iver-wharf/wharf-valconv/internal/errutil"
)

// Entry is a single enumerator and label pair in a Table.
type Entry[E comparable] struct {
	Value E
	Label string
}

// Table is an explicit mapping between enumerators and labels. The order of
// the entries matters: when scanning labels the first match wins, and the
// first entry is the implicit default of ParseOrFirst and ParseFoldOrFirst.
//
//	var statusLabels = enumconv.Table[Status]{
//		{StatusOK, "OK"},
//		{StatusNotFound, "NotFound"},
//		{StatusTeapot, "Teapot"},
//	}
type Table[E comparable] []Entry[E]

// Lookup returns the enumerator of the first entry whose label is equal to
// the text, or false if none is.
func (t Table[E]) Lookup(text string) (E, bool) {
	return t.lookup(text, false)
}

// LookupFold is like Lookup, but compares ASCII letters case-insensitively.
func (t Table[E]) LookupFold(text string) (E, bool) {
	return t.lookup(text, true)
}

// Parse returns the enumerator of the first entry whose label is equal to the
// text, or the fallback if none is.
func (t Table[E]) Parse(text string, fallback E) E {
	if value, ok := t.Lookup(text); ok {
		return value
	}
	return fallback
}

// ParseFold is like Parse, but compares ASCII letters case-insensitively.
func (t Table[E]) ParseFold(text string, fallback E) E {
	if value, ok := t.LookupFold(text); ok {
		return value
	}
	return fallback
}

// ParseOrFirst is like Parse, but falls back to the enumerator of the first
// entry in the table, or the zero value if the table is empty.
//
// This is a legacy behavior where an unrecognized label silently turns into
// whatever the table happens to start with. Prefer Parse with an explicit
// fallback, or Lookup, in new code.
func (t Table[E]) ParseOrFirst(text string) E {
	first, _ := t.First()
	return t.Parse(text, first)
}

// ParseFoldOrFirst is like ParseOrFirst, but compares ASCII letters
// case-insensitively.
func (t Table[E]) ParseFoldOrFirst(text string) E {
	first, _ := t.First()
	return t.ParseFold(text, first)
}

// First returns the enumerator of the first entry, or false if the table is
// empty.
func (t Table[E]) First() (E, bool) {
	if len(t) == 0 {
		var zero E
		return zero, false
	}
	return t[0].Value, true
}

// Label returns the label of the first entry with the given enumerator, or
// UnknownLabel if there is no such entry.
func (t Table[E]) Label(value E) string {
	for _, entry := range t {
		if entry.Value == value {
			return entry.Label
		}
	}
	return UnknownLabel
}

// Validate reports enumerators and labels that are equal to an earlier entry,
// comparing labels case-insensitively if fold is true.
func (t Table[E]) Validate(fold bool) errutil.Slice {
	var errs errutil.Slice
	for i, entry := range t {
		for j := 0; j < i; j++ {
			if t[j].Value == entry.Value {
				errs.Add(fmt.Errorf("%w: %v at index %d, first seen at index %d",
					ErrDuplicateValue, entry.Value, i, j))
				break
			}
		}
		for j := 0; j < i; j++ {
			if labelsEqual(t[j].Label, entry.Label, fold) {
				errs.Add(ambiguousLabelError(entry.Label, i, j))
				break
			}
		}
	}
	return errs
}

func (t Table[E]) lookup(text string, fold bool) (E, bool) {
	for _, entry := range t {
		if labelsEqual(entry.Label, text, fold) {
			return entry.Value, true
		}
	}
	var zero E
	return zero, false
}
