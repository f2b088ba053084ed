package tree

import (
	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/resolver"
)

// AssembleSubmodelResults turns submodels returned by a repository search
// into top-level result nodes. Every result is marked matched; elements are
// expanded eagerly so hits inside them are visible immediately.
func AssembleSubmodelResults(submodels []model.Submodel, searchValue, language string) []*Node {
	nodes := make([]*Node, 0, len(submodels))
	for _, sm := range submodels {
		name := sm.IdShort
		if name == "" {
			name = "Unknown Submodel"
		}
		if qualifier := resolver.FacilityIdentifier(sm); qualifier != "" {
			name = name + " (" + qualifier + ")"
		}

		node := &Node{
			ID:       sm.ID,
			Name:     name,
			Type:     NodeSubmodel,
			Matched:  true,
			Data:     &sm,
			Children: []*Node{},
		}
		if len(sm.SubmodelElements) > 0 {
			node.Children = BuildElements(sm.SubmodelElements, sm.ID, searchValue, language)
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// AssembleConceptResults turns concept descriptions returned by a search
// into leaf result nodes.
func AssembleConceptResults(concepts []model.ConceptDescription, language string) []*Node {
	nodes := make([]*Node, 0, len(concepts))
	for _, concept := range concepts {
		nodes = append(nodes, &Node{
			ID:       concept.ID,
			Name:     resolver.ConceptDisplayName(concept, language),
			Type:     NodeConcept,
			Matched:  true,
			Data:     concept,
			Children: []*Node{},
		})
	}
	return nodes
}
