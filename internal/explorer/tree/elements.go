package tree

import (
	"fmt"
	"strings"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/resolver"
)

// BuildElements converts submodel elements to display nodes, recursing into
// collections. searchValue, when non-empty, marks nodes whose value text
// contains it (case-insensitive); a match on any child marks the parent
// collection too. language selects the text of multi-language properties.
func BuildElements(elements []model.SubmodelElement, parentID, searchValue, language string) []*Node {
	nodes := make([]*Node, 0, len(elements))
	search := strings.ToLower(searchValue)

	for i, element := range elements {
		idShort := element.GetIdShort()
		name := idShort
		if name == "" {
			name = "Unnamed"
		}

		suffix := idShort
		if suffix == "" {
			suffix = fmt.Sprintf("element_%d", i)
		}
		node := &Node{
			ID:       parentID + "_" + suffix,
			Name:     name,
			Type:     nodeTypeFor(element.GetModelType()),
			Data:     element,
			Children: []*Node{},
		}

		switch e := element.(type) {
		case *model.SubmodelElementCollection:
			node.Children = BuildElements(e.Value, node.ID, searchValue, language)
			for _, child := range node.Children {
				if child.Matched {
					node.Matched = true
					break
				}
			}

		case *model.Property:
			if !e.Value.IsEmpty() {
				node.HasValue = true
				node.Name = idShort + ": " + FormatPropertyValue(e)
				if search != "" && strings.Contains(strings.ToLower(e.Value.String()), search) {
					node.Matched = true
				}
			}

		case *model.MultiLanguageProperty:
			if text := model.PreferredText(e.Value, language); text != "" {
				node.HasValue = true
				node.Name = idShort + ": " + text
				if search != "" && strings.Contains(strings.ToLower(text), search) {
					node.Matched = true
				}
			}

		case *model.File:
			node.Name = idShort
			if search != "" &&
				(strings.Contains(strings.ToLower(e.Value), search) ||
					strings.Contains(strings.ToLower(idShort), search)) {
				node.Matched = true
			}

		case *model.Range:
			if !e.Min.IsEmpty() || !e.Max.IsEmpty() {
				node.HasValue = true
				node.Name = fmt.Sprintf("%s: %s .. %s", idShort, e.Min, e.Max)
			}
		}

		nodes = append(nodes, node)
	}
	return nodes
}

// FormatPropertyValue renders a property value with its inferred unit
// appended, e.g. "380 V". An empty value renders as "".
func FormatPropertyValue(p *model.Property) string {
	if p.Value.IsEmpty() {
		return ""
	}
	unit := resolver.InferUnit(p.SemanticID, p.Unit, p.IdShort)
	if unit != "" {
		return p.Value.String() + " " + unit
	}
	return p.Value.String()
}
