package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CleanString normalizes a display name into an identifier fragment:
// spaces become underscores and every character outside [A-Za-z-_] is
// dropped. Digits are intentionally not kept; identifiers double as
// LaTeX input names and filenames.
func CleanString(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == '_' {
			return r
		}
		return -1
	}, s)
}

// AssignIDs derives a lowercase identifier from each record's name and
// injects it into the record, in catalog order. A record without a name
// is treated as named "unknown". Duplicate identifiers are reported but
// still assigned; both records keep the id, so downstream renderers
// will overwrite each other's per-entry files.
func AssignIDs(c *Catalog, rep *Report) {
	seen := make(map[string]bool, len(c.Records))
	for _, rec := range c.Records {
		name := rec.Name
		if name == "" {
			name = "unknown"
		}
		id := strings.ToLower(CleanString(name))
		if seen[id] {
			rep.Add(&Issue{
				Entry:   rec.DisplayName(),
				Line:    rec.Node.Line,
				Message: fmt.Sprintf("duplicate entry id %q", id),
				Hint:    "ensure all entries have unique names",
			})
		}
		seen[id] = true
		rec.ID = id
		setField(rec.Node, "id", id)
	}
}

// setField sets or overwrites a string field on a mapping node.
func setField(node *yaml.Node, key, value string) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content[i+1] = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
			return
		}
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}
