package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// mustRecord parses a YAML mapping into a Record for tests.
func mustRecord(t *testing.T, src string) *Record {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content, "empty YAML document")
	node := doc.Content[0]
	require.Equal(t, yaml.MappingNode, node.Kind, "test fixture must be a mapping")
	return &Record{
		Name: scalarString(findValue(node, "name")),
		Node: node,
	}
}

// mustCatalog parses a YAML sequence of mappings into a Catalog.
func mustCatalog(t *testing.T, src string) *Catalog {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content, "empty YAML document")
	root := doc.Content[0]
	require.Equal(t, yaml.SequenceNode, root.Kind, "test fixture must be a sequence")

	c := &Catalog{}
	for _, elem := range root.Content {
		elem = resolveAlias(elem)
		require.Equal(t, yaml.MappingNode, elem.Kind)
		c.Records = append(c.Records, &Record{
			Name: scalarString(findValue(elem, "name")),
			Node: elem,
		})
	}
	return c
}
