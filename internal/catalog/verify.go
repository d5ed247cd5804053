package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Verify checks a record against its condition annotations and records
// every failure on rep. A sibling field condition controls validation
// of the other fields in its mapping: "required" forces them to be
// non-null, and the requirement is inherited lexically by all nested
// mappings regardless of their own condition value. A condition of the
// form ">=N" requires the annotated mapping's sibling value to be a
// sequence of length N or more.
//
// Non-mapping records are vacuously valid. Validation continues past
// the first failure so one pass surfaces every problem.
func Verify(rec *Record, rep *Report) bool {
	return verifyNode(rec.Node, rec.DisplayName(), topLevelMarker, false, rep)
}

// CheckRequiredFields verifies every record in the catalog and returns
// the logical AND of the results. All failures are reported on rep
// before returning.
func CheckRequiredFields(c *Catalog, rep *Report) bool {
	valid := true
	for i, rec := range c.Records {
		if !Verify(rec, rep) {
			rep.Add(&Issue{
				Entry:   rec.DisplayName(),
				Line:    rec.Node.Line,
				Message: fmt.Sprintf("required field check failed in entry %d", i+1),
			})
			valid = false
		}
	}
	return valid
}

func verifyNode(node *yaml.Node, entry, parentName string, parentRequired bool, rep *Report) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return true
	}

	valid := true
	condition := scalarString(findValue(node, fieldCondition))

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if key == fieldDescription || key == fieldCondition {
			continue
		}
		val := resolveAlias(node.Content[i+1])

		if (condition == "required" || parentRequired) && isNull(val) {
			printedParent := parentName
			if printedParent != topLevelMarker {
				printedParent = fmt.Sprintf("%q", parentName)
			}
			rep.Add(&Issue{
				Entry:   entry,
				Path:    key,
				Line:    node.Content[i].Line,
				Column:  node.Content[i].Column,
				Message: fmt.Sprintf("required field %q in %s not present", key, printedParent),
			})
			valid = false
		} else if strings.HasPrefix(condition, ">=") {
			minLen, err := strconv.Atoi(strings.TrimSpace(condition[2:]))
			if err != nil {
				rep.Add(&Issue{
					Entry:   entry,
					Path:    key,
					Line:    node.Content[i].Line,
					Message: fmt.Sprintf("condition %q is not a number", condition[2:]),
				})
				valid = false
			}
			if val == nil || val.Kind != yaml.SequenceNode || len(val.Content) < minLen {
				rep.Add(&Issue{
					Entry:   entry,
					Path:    key,
					Line:    node.Content[i].Line,
					Message: fmt.Sprintf("field %q must be a list of length %d or more", key, minLen),
				})
				valid = false
			}
		}

		switch val.Kind {
		case yaml.MappingNode:
			if !verifyNode(val, entry, key, condition == "required", rep) {
				valid = false
			}
		case yaml.SequenceNode:
			for _, elem := range val.Content {
				elem = resolveAlias(elem)
				if elem.Kind != yaml.MappingNode {
					continue
				}
				if !verifyNode(elem, entry, key, condition == "required", rep) {
					valid = false
				}
			}
		}
	}
	return valid
}
