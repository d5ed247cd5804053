package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads one or more YAML catalog files, assigns identifiers, and
// returns the catalog. Each file's document root must be a sequence of
// mappings. A file with a syntax error or a mapping root is skipped and
// reported on rep; a missing file aborts the load with an error so the
// orchestration boundary can decide how to fail.
func Load(paths []string, rep *Report) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Append(paths, rep); err != nil {
		return nil, err
	}
	AssignIDs(c, rep)
	return c, nil
}

// Append loads additional files into an existing catalog. New records
// are appended in file order; identifiers are not reassigned, callers
// that append must run AssignIDs afterwards.
func (c *Catalog) Append(paths []string, rep *Report) error {
	for _, path := range paths {
		recs, err := loadFile(path, rep)
		if err != nil {
			return err
		}
		c.Records = append(c.Records, recs...)
	}
	return nil
}

// loadFile parses a single YAML file into records. File-shape problems
// (syntax errors, non-sequence root) skip the file and report an issue.
func loadFile(path string, rep *Report) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	var doc yaml.Node
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil // empty file, no records
		}
		rep.Add(&Issue{
			Entry:   topLevelMarker,
			Message: fmt.Sprintf("YAML syntax error in %q: %v", path, err),
			Hint:    "fix the syntax; the file is skipped",
		})
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		// expected shape
	case yaml.MappingNode:
		rep.Add(&Issue{
			Entry:   topLevelMarker,
			Line:    root.Line,
			Message: fmt.Sprintf("root of %q is a mapping, expected a sequence of entries", path),
			Hint:    "prefix each entry with '-' so the file is a YAML list",
		})
		return nil, nil
	default:
		rep.Add(&Issue{
			Entry:   topLevelMarker,
			Line:    root.Line,
			Message: fmt.Sprintf("unsupported YAML root in %q, expected a sequence of mappings", path),
		})
		return nil, nil
	}

	var recs []*Record
	for i, elem := range root.Content {
		elem = resolveAlias(elem)
		if elem.Kind != yaml.MappingNode {
			rep.Add(&Issue{
				Entry:   topLevelMarker,
				Line:    elem.Line,
				Column:  elem.Column,
				Message: fmt.Sprintf("entry %d in %q is not a mapping, skipped", i+1, path),
			})
			continue
		}
		recs = append(recs, &Record{
			Name: scalarString(findValue(elem, "name")),
			File: path,
			Node: elem,
		})
	}
	return recs, nil
}
