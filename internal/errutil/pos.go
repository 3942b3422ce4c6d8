package errutil

import (
	"errors"
	"fmt"
	"sort"
)

// Pos is an error that knows where in a document it occurred. The first line
// and column starts at 1, and 0 means unknown.
type Pos struct {
	Err    error
	Line   int
	Column int
}

// NewPos wraps an error with a line and column.
func NewPos(err error, line, column int) error {
	if err == nil {
		return nil
	}
	return Pos{Err: err, Line: line, Column: column}
}

// Error implements the error interface.
func (err Pos) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// Is implements the interface to support errors.Is.
func (err Pos) Is(target error) bool {
	return errors.Is(err.Err, target)
}

// Unwrap implements the interface to support errors.Unwrap.
func (err Pos) Unwrap() error {
	return err.Err
}

// AsPos returns the position of the error, or 0,0 if the error doesn't have a
// position. Only the outermost position is used.
func AsPos(err error) (int, int) {
	var posErr Pos
	if !errors.As(err, &posErr) {
		return 0, 0
	}
	return posErr.Line, posErr.Column
}

// SortByPos sorts a slice of errors by their position. Errors without a
// position come first, keeping their relative order.
func SortByPos(errs Slice) {
	if len(errs) == 0 {
		return
	}
	sort.SliceStable(errs, func(i, j int) bool {
		aLine, aColumn := AsPos(errs[i])
		bLine, bColumn := AsPos(errs[j])
		if aLine == bLine {
			return aColumn < bColumn
		}
		return aLine < bLine
	})
}

// Describe formats an error with its scope and position, if any, such as:
//
//	fields.color (3:10): malformed numeric text
func Describe(err error) string {
	scope := AsScope(err)
	line, column := AsPos(err)
	switch {
	case scope != "" && line > 0:
		return fmt.Sprintf("%s (%d:%d): %s", scope, line, column, err)
	case scope != "":
		return fmt.Sprintf("%s: %s", scope, err)
	case line > 0:
		return fmt.Sprintf("%d:%d: %s", line, column, err)
	default:
		return err.Error()
	}
}
