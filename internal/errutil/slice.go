package errutil

// Slice is a slice of errors, used where all problems of an input should be
// reported instead of only the first.
type Slice []error

// Add appends errors to this slice. Nil errors are ignored.
func (s *Slice) Add(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		*s = append(*s, err)
	}
}
