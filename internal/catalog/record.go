// Package catalog loads benchmark catalog entries from YAML files and
// normalizes them for rendering: identity assignment, dot-path
// flattening, required-field validation, and unicode hygiene checks.
package catalog

import (
	"gopkg.in/yaml.v3"
)

// Reserved field names that carry metadata and never become part of the
// flattened table.
const (
	fieldDescription = "description"
	fieldCondition   = "condition"
)

// topLevelMarker is the parent name reported for issues on top-level fields.
const topLevelMarker = "<top level>"

// Record is one benchmark catalog entry: a tree-shaped YAML mapping
// plus the identity assigned at load time.
type Record struct {
	Name string     // Display name from the "name" field ("" if missing)
	ID   string     // Derived identifier, assigned by AssignIDs
	File string     // Source file the record was loaded from
	Node *yaml.Node // The record's mapping node
}

// Field returns the value node for a top-level field, or nil.
func (r *Record) Field(key string) *yaml.Node {
	return findValue(r.Node, key)
}

// DisplayName returns the record's name, or "unknown" when the name
// field is missing or empty.
func (r *Record) DisplayName() string {
	if r.Name == "" {
		return "unknown"
	}
	return r.Name
}

// Catalog is an ordered sequence of records. Load order is preserved;
// records from later files are appended, never merged by identity.
type Catalog struct {
	Records []*Record
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.Records)
}

// ByName returns the first record with the given display name, or nil.
func (c *Catalog) ByName(name string) *Record {
	for _, rec := range c.Records {
		if rec.Name == name {
			return rec
		}
	}
	return nil
}

// ByID returns the first record with the given id, or nil.
func (c *Catalog) ByID(id string) *Record {
	for _, rec := range c.Records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// findValue returns the value node for key in a mapping node, or nil.
func findValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return findValue(node.Content[0], key)
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}
	return nil
}

// resolveAlias follows alias nodes to their anchor.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// isNull reports whether a value node is a YAML null scalar.
func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

// scalarString returns the string value of a scalar node, or "" for
// non-scalars and nulls.
func scalarString(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

// decodeValue converts a node into a plain Go value: scalars become
// string/int/float/bool/nil, sequences []any, mappings map[string]any.
func decodeValue(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value
	}
	return v
}
