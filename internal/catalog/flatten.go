package catalog

import (
	"gopkg.in/yaml.v3"
)

// FlatRow is a flattened record: an insertion-ordered mapping from
// dot-joined path strings to non-container values (or to a verbatim
// sequence, see Flatten). On key collision the later write wins but the
// key keeps its first position, matching document traversal order.
type FlatRow struct {
	keys []string
	vals map[string]any
}

// NewFlatRow returns an empty row.
func NewFlatRow() *FlatRow {
	return &FlatRow{vals: make(map[string]any)}
}

// Set stores a value under key, overwriting any earlier value.
func (r *FlatRow) Set(key string, val any) {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = val
}

// Get returns the value for key and whether it is present.
func (r *FlatRow) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// String returns the value for key as a string, or "" when absent or
// not a string.
func (r *FlatRow) String(key string) string {
	if s, ok := r.vals[key].(string); ok {
		return s
	}
	return ""
}

// Keys returns the row's keys in insertion order.
func (r *FlatRow) Keys() []string {
	return r.keys
}

// Len returns the number of keys in the row.
func (r *FlatRow) Len() int {
	return len(r.keys)
}

// Flatten reduces a record's nested mapping into a single FlatRow:
//
//   - the reserved description and condition fields are skipped at
//     every depth;
//   - a mapping under key k contributes its children under "k."-
//     prefixed paths;
//   - a sequence under key k contributes one flattened output per
//     mapping element; the first non-mapping element instead emits the
//     entire original sequence verbatim under k and ends processing of
//     that sequence (mapping siblings after it are dropped);
//   - scalars are emitted as-is.
//
// Flatten is pure and deterministic, and flattening an already-flat
// record returns it unchanged.
func Flatten(rec *Record) *FlatRow {
	row := NewFlatRow()
	flattenMapping(rec.Node, "", row)
	return row
}

// FlattenAll flattens every record, preserving catalog order.
func FlattenAll(c *Catalog) []*FlatRow {
	rows := make([]*FlatRow, 0, len(c.Records))
	for _, rec := range c.Records {
		rows = append(rows, Flatten(rec))
	}
	return rows
}

func flattenMapping(node *yaml.Node, parent string, row *FlatRow) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == fieldDescription || key == fieldCondition {
			continue
		}
		path := key
		if parent != "" {
			path = parent + "." + key
		}
		val := resolveAlias(node.Content[i+1])
		switch val.Kind {
		case yaml.MappingNode:
			flattenMapping(val, path, row)
		case yaml.SequenceNode:
			for _, elem := range val.Content {
				if resolveAlias(elem).Kind == yaml.MappingNode {
					flattenMapping(resolveAlias(elem), path, row)
					continue
				}
				row.Set(path, decodeValue(val))
				break
			}
		default:
			row.Set(path, decodeValue(val))
		}
	}
}
