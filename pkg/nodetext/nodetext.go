// Package nodetext reads and writes typed values from the scalar text content
// of document nodes.
//
// The document itself is abstracted into the two capabilities TextReader and
// TextWriter, so this package does not depend on any markup library. See the
// yamlnode subpackage for an implementation backed by gopkg.in/yaml.v3.
package nodetext

import (
	"strconv"

	"github.com/iver-wharf/wharf-valconv/internal/errutil"
	"github.com/iver-wharf/wharf-valconv/pkg/enumconv"
	"github.com/iver-wharf/wharf-valconv/pkg/numfmt"
	"github.com/iver-wharf/wharf-valconv/pkg/valconv"
)

// TextReader is a document node that holds scalar text content.
type TextReader interface {
	// ScalarText returns the text content of the node, or an error if the
	// node cannot hold scalar text, such as a map or a sequence.
	ScalarText() (string, error)
}

// TextWriter is a document node that scalar text content can be written to.
type TextWriter interface {
	SetScalarText(text string)
}

// Read parses the text content of the node as a value of type T.
func Read[T valconv.Scalar](node TextReader) (T, error) {
	var zero T
	text, err := node.ScalarText()
	if err != nil {
		return zero, err
	}
	value, err := valconv.Parse[T](text)
	if err != nil {
		return zero, wrapNodeErr(node, err)
	}
	return value, nil
}

// Write renders the value and writes it as the text content of the node.
// The node is left untouched if the value cannot be rendered.
func Write[T valconv.Scalar](node TextWriter, value T, opts numfmt.Options) error {
	text, err := valconv.Render(value, opts)
	if err != nil {
		return err
	}
	node.SetScalarText(text)
	return nil
}

// ReadSlice parses the text content of each node as a value of type T. All
// elements are read, and each error is scoped by the index of its node.
// Elements that fail to parse are left as the zero value.
func ReadSlice[T valconv.Scalar](nodes []TextReader) ([]T, errutil.Slice) {
	var errs errutil.Slice
	values := make([]T, len(nodes))
	for i, node := range nodes {
		value, err := Read[T](node)
		if err != nil {
			errs.Add(errutil.Scope(err, strconv.Itoa(i)))
			continue
		}
		values[i] = value
	}
	return values, errs
}

// WriteSlice renders each value into the node of the same index. Values
// beyond the last node are ignored.
func WriteSlice[T valconv.Scalar](nodes []TextWriter, values []T, opts numfmt.Options) errutil.Slice {
	var errs errutil.Slice
	for i, value := range values {
		if i >= len(nodes) {
			break
		}
		if err := Write(nodes[i], value, opts); err != nil {
			errs.Add(errutil.Scope(err, strconv.Itoa(i)))
		}
	}
	return errs
}

// ReadLabel reads the text content of the node as a label from the ordered
// label list. The fallback is returned if no label matches.
func ReadLabel[E enumconv.Integer](node TextReader, labels enumconv.Labels[E], fallback E, fold bool) (E, error) {
	text, err := node.ScalarText()
	if err != nil {
		return fallback, err
	}
	if fold {
		return labels.ParseFold(text, fallback), nil
	}
	return labels.Parse(text, fallback), nil
}

// WriteLabel writes the label of the value from the ordered label list as the
// text content of the node.
func WriteLabel[E enumconv.Integer](node TextWriter, labels enumconv.Labels[E], value E) error {
	label, err := labels.Label(value)
	if err != nil {
		return err
	}
	node.SetScalarText(label)
	return nil
}

// ReadTableLabel reads the text content of the node as a label from the
// table. The fallback is returned if no label matches.
func ReadTableLabel[E comparable](node TextReader, table enumconv.Table[E], fallback E, fold bool) (E, error) {
	text, err := node.ScalarText()
	if err != nil {
		return fallback, err
	}
	if fold {
		return table.ParseFold(text, fallback), nil
	}
	return table.Parse(text, fallback), nil
}

// WriteTableLabel writes the label of the value from the table as the text
// content of the node, which is enumconv.UnknownLabel for values not in the
// table.
func WriteTableLabel[E comparable](node TextWriter, table enumconv.Table[E], value E) {
	node.SetScalarText(table.Label(value))
}

// Positioner is implemented by nodes that know where in the document they
// were read from. The first line and column starts at 1.
type Positioner interface {
	Pos() (line, column int)
}

func wrapNodeErr(node TextReader, err error) error {
	p, ok := node.(Positioner)
	if !ok {
		return err
	}
	line, column := p.Pos()
	if line == 0 {
		return err
	}
	return errutil.NewPos(err, line, column)
}
