package yamltesting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// NewNode parses the content as a single YAML document and returns its root
// node.
func NewNode(t *testing.T, content string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	err := yaml.Unmarshal([]byte(content), &doc)
	require.NoError(t, err, "parse node")
	require.Equal(t, yaml.DocumentNode, doc.Kind, "document node")
	require.Len(t, doc.Content, 1, "document node count")
	return doc.Content[0]
}

// RequireEncoded fails the test unless the node encodes to the wanted YAML,
// ignoring leading and trailing whitespace.
func RequireEncoded(t *testing.T, want string, node *yaml.Node) {
	t.Helper()
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	require.NoError(t, enc.Encode(node), "encode node")
	require.NoError(t, enc.Close(), "close encoder")
	require.Equal(t, strings.TrimSpace(want), strings.TrimSpace(sb.String()))
}
