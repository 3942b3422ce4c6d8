package flagtypes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iver-wharf/wharf-valconv/pkg/enumconv"
	"github.com/iver-wharf/wharf-valconv/pkg/valconv"
	"github.com/spf13/pflag"
)

var _ pflag.Value = &EnumEntry{}
var _ pflag.Value = &EnumEntryArray{}
var _ pflag.SliceValue = &EnumEntryArray{}

// EnumEntry is a flag that takes an enum value and label in a value=label
// format, such as 404=NotFound.
type EnumEntry enumconv.Entry[int64]

// String returns a "value=label" string representation for this flag.
func (e *EnumEntry) String() string {
	return fmt.Sprintf("%d=%s", e.Value, e.Label)
}

// Set parses a "value=label" string and updates this flag.
func (e *EnumEntry) Set(val string) error {
	valueStr, label, ok := strings.Cut(val, "=")
	if !ok {
		return errors.New("missing delimiter \"=\"")
	}
	value, err := valconv.Parse[int64](valueStr)
	if err != nil {
		return err
	}
	e.Value = value
	e.Label = label
	return nil
}

// Type returns the name of this type.
func (e *EnumEntry) Type() string {
	return "value=label"
}

// EnumEntryArray is a flag that can be specified multiple times, building up
// an enum table in the order the flags were given.
type EnumEntryArray struct {
	Table enumconv.Table[int64]
}

// String returns a "[value=label,value=label]" string representation for this
// flag.
func (a *EnumEntryArray) String() string {
	return fmt.Sprintf("[%s]", strings.Join(a.GetSlice(), ","))
}

// Set parses a "value=label" string and appends it to the table.
func (a *EnumEntryArray) Set(val string) error {
	return a.Append(val)
}

// Type returns the name of this type.
func (a *EnumEntryArray) Type() string {
	return "value=label"
}

// Append parses a "value=label" string and appends it to the table.
func (a *EnumEntryArray) Append(val string) error {
	var e EnumEntry
	if err := e.Set(val); err != nil {
		return err
	}
	a.Table = append(a.Table, enumconv.Entry[int64](e))
	return nil
}

// Replace parses a slice of "value=label" strings and sets those as the new
// table.
func (a *EnumEntryArray) Replace(vals []string) error {
	table := make(enumconv.Table[int64], len(vals))
	for i, val := range vals {
		var e EnumEntry
		if err := e.Set(val); err != nil {
			return err
		}
		table[i] = enumconv.Entry[int64](e)
	}
	a.Table = table
	return nil
}

// GetSlice returns a slice of "value=label" string representations for all
// the entries.
func (a *EnumEntryArray) GetSlice() []string {
	out := make([]string, len(a.Table))
	for i, entry := range a.Table {
		e := EnumEntry(entry)
		out[i] = e.String()
	}
	return out
}
