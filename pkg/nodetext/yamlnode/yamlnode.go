// Package yamlnode adapts gopkg.in/yaml.v3 nodes to the nodetext interfaces.
package yamlnode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iver-wharf/wharf-valconv/internal/errutil"
	"github.com/iver-wharf/wharf-valconv/pkg/nodetext"
	"gopkg.in/yaml.v3"
)

// Errors related to reading YAML nodes.
var (
	ErrNotScalar   = errors.New("expected scalar")
	ErrNotMap      = errors.New("expected map")
	ErrNotSequence = errors.New("expected sequence")
	ErrMissingKey  = errors.New("missing map key")
	ErrMissingDoc  = errors.New("empty document")
	ErrTooManyDocs = errors.New("only 1 document is allowed")
)

// YAML short tag names.
const (
	ShortTagString = "!!str"
	ShortTagInt    = "!!int"
	ShortTagFloat  = "!!float"
	ShortTagNull   = "!!null"
	ShortTagMerge  = "!!merge"
)

var (
	_ nodetext.TextReader = Node{}
	_ nodetext.TextWriter = Node{}
	_ nodetext.Positioner = Node{}
)

// Node wraps a YAML node to implement nodetext.TextReader and
// nodetext.TextWriter.
type Node struct {
	*yaml.Node
}

// Wrap returns the node as a Node.
func Wrap(node *yaml.Node) Node {
	return Node{node}
}

// ScalarText returns the value of a scalar node. Any tag is accepted, as it
// is up to the caller to decide how to interpret the text.
func (n Node) ScalarText() (string, error) {
	node := resolveAlias(n.Node)
	if node.Kind != yaml.ScalarNode {
		return "", newPosErr(fmt.Errorf("%w, but was %s", ErrNotScalar, kindName(node.Kind)), node)
	}
	return node.Value, nil
}

// SetScalarText turns the node into a plain scalar with the given text. The
// tag is cleared, so it is resolved from the text when encoded or read.
func (n Node) SetScalarText(text string) {
	n.Kind = yaml.ScalarNode
	n.Tag = ""
	n.Style = 0
	n.Value = text
	n.Content = nil
	n.Alias = nil
}

// Pos returns the line and column the node was decoded from.
func (n Node) Pos() (int, int) {
	return n.Line, n.Column
}

// Field returns the value node of a key in a map node.
func Field(node *yaml.Node, key string) (*yaml.Node, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, newPosErr(fmt.Errorf("%w, but was %s", ErrNotMap, kindName(node.Kind)), node)
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == ShortTagMerge {
			if value, err := Field(node.Content[i+1], key); err == nil {
				return value, nil
			}
			continue
		}
		if keyNode.Value == key {
			return resolveAlias(node.Content[i+1]), nil
		}
	}
	return nil, errutil.Scope(newPosErr(ErrMissingKey, node), key)
}

// Seq returns the items of a sequence node as text readers.
func Seq(node *yaml.Node) ([]nodetext.TextReader, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.SequenceNode {
		return nil, newPosErr(fmt.Errorf("%w, but was %s", ErrNotSequence, kindName(node.Kind)), node)
	}
	items := make([]nodetext.TextReader, len(node.Content))
	for i, child := range node.Content {
		items[i] = Node{child}
	}
	return items, nil
}

// SeqWriters returns the items of a sequence node as text writers.
func SeqWriters(node *yaml.Node) ([]nodetext.TextWriter, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.SequenceNode {
		return nil, newPosErr(fmt.Errorf("%w, but was %s", ErrNotSequence, kindName(node.Kind)), node)
	}
	items := make([]nodetext.TextWriter, len(node.Content))
	for i, child := range node.Content {
		items[i] = Node{child}
	}
	return items, nil
}

// Walk calls fn for each scalar value node inside the node, in document
// order, together with its path of map keys and sequence indices joined by
// dots. Map keys are not visited. If fn returns an error, the walk stops and
// the error is returned.
func Walk(node *yaml.Node, fn func(path string, node Node) error) error {
	return walk(node, nil, fn)
}

func walk(node *yaml.Node, path []string, fn func(string, Node) error) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := walk(child, path, fn); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i < len(node.Content)-1; i += 2 {
			keyPath := append(path[:len(path):len(path)], node.Content[i].Value)
			if err := walk(node.Content[i+1], keyPath, fn); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			itemPath := append(path[:len(path):len(path)], strconv.Itoa(i))
			if err := walk(child, itemPath, fn); err != nil {
				return err
			}
		}
	case yaml.ScalarNode:
		return fn(strings.Join(path, errutil.ScopeDelimiter), Node{node})
	}
	return nil
}

// DecodeFirstRootNode returns the root node of the only document in the
// input. Zero or multiple documents are reported as errors.
func DecodeFirstRootNode(reader io.Reader) (*yaml.Node, error) {
	rootNodes, err := DecodeRootNodes(reader)
	if err != nil {
		return nil, err
	}
	if len(rootNodes) == 0 {
		return nil, ErrMissingDoc
	}
	if len(rootNodes) > 1 {
		return nil, fmt.Errorf("%w: expected 1, found %d", ErrTooManyDocs, len(rootNodes))
	}
	return rootNodes[0], nil
}

// DecodeRootNodes returns the root nodes of all documents in the input, with
// aliases replaced by the nodes they point to.
func DecodeRootNodes(reader io.Reader) ([]*yaml.Node, error) {
	docs, err := DecodeDocuments(reader)
	if err != nil {
		return nil, err
	}
	rootNodes := make([]*yaml.Node, len(docs))
	for i, doc := range docs {
		rootNodes[i] = unwrapAliasRec(doc.Content[0])
	}
	return rootNodes, nil
}

// DecodeDocuments returns the document nodes of all documents in the input,
// as decoded. Anchors, aliases and comments are kept, so the documents can be
// encoded back without other changes than the ones made to them.
func DecodeDocuments(reader io.Reader) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(reader)
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, ErrMissingDoc)
		}
		docs = append(docs, &doc)
	}
	return docs, nil
}

// Encode writes the nodes as YAML documents with two-space indentation.
// Documents after the first are preceded by a "---" separator.
func Encode(w io.Writer, nodes ...*yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, node := range nodes {
		if err := enc.Encode(node); err != nil {
			return err
		}
	}
	return enc.Close()
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func unwrapAliasRec(node *yaml.Node) *yaml.Node {
	for node.Alias != nil {
		node = node.Alias
	}
	for i, child := range node.Content {
		node.Content[i] = unwrapAliasRec(child)
	}
	return node
}

func newPosErr(err error, node *yaml.Node) error {
	return errutil.NewPos(err, node.Line, node.Column)
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("unknown (%d)", kind)
	}
}
