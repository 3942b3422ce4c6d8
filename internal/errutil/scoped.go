package errutil

import (
	"errors"
	"strings"
)

// ScopeDelimiter separates the segments of a scope, such as "vector.2".
const ScopeDelimiter = "."

// Scope creates a new scoped error. Scoping an already scoped error prepends
// the new paths, so the outermost call names the outermost segment.
func Scope(err error, paths ...string) error {
	if err == nil {
		return nil
	}
	scope := strings.Join(paths, ScopeDelimiter)
	var inner Scoped
	if !errors.As(err, &inner) {
		return Scoped{scope: scope, inner: err}
	}
	return Scoped{scope: scope, next: &inner, inner: inner.inner}
}

// ScopeSlice scopes all errors in the slice.
func ScopeSlice(errs Slice, paths ...string) Slice {
	result := make(Slice, len(errs))
	for i, err := range errs {
		result[i] = Scope(err, paths...)
	}
	return result
}

// AsScope returns the error's full scope, or empty string if the error isn't
// scoped.
func AsScope(err error) string {
	var scoped Scoped
	if errors.As(err, &scoped) {
		return scoped.Scope()
	}
	return ""
}

// Scoped is an error tied to a path inside a document.
type Scoped struct {
	scope string
	next  *Scoped
	inner error
}

// Scope returns the joined scope of this error and all inner scopes.
func (err Scoped) Scope() string {
	var sb strings.Builder
	for s := &err; s != nil; s = s.next {
		if s.scope == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(ScopeDelimiter)
		}
		sb.WriteString(s.scope)
	}
	return sb.String()
}

// Error implements the error interface.
func (err Scoped) Error() string {
	if err.inner == nil {
		return ""
	}
	return err.inner.Error()
}

// Is implements the interface to support errors.Is.
func (err Scoped) Is(target error) bool {
	return errors.Is(err.inner, target)
}

// Unwrap implements the interface to support errors.Unwrap.
func (err Scoped) Unwrap() error {
	return err.inner
}
