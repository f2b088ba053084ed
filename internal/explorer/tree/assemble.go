package tree

import (
	"strings"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/resolver"
)

// excludedEquipmentIdShorts are auxiliary shells hidden from search results.
// They stay visible when browsing without a search term.
var excludedEquipmentIdShorts = map[string]bool{
	"component":                true,
	"safetydevice":             true,
	"cutoffmiddleandsmalltype": true,
	"accessories":              true,
}

// excludedEquipmentIDParts hide the same auxiliary shells when only their
// identifier betrays the kind.
var excludedEquipmentIDParts = []string{
	"/component/",
	"/safetydevice/",
	"/cutoffmiddleandsmalltype/",
	"/accessories/",
}

// Assemble builds the equipment tree from shells and the submodel bodies
// fetched alongside them. With a search term the auxiliary shells are
// filtered out, submodel children are expanded eagerly and matching nodes
// are marked; without one every submodel child is a lazy placeholder.
func Assemble(shells []model.AssetAdministrationShell, submodels []model.Submodel, searchValue, language string) []*Node {
	search := strings.ToLower(searchValue)

	nodes := make([]*Node, 0, len(shells))
	for _, shell := range shells {
		if search != "" && isExcludedEquipment(shell) {
			continue
		}
		nodes = append(nodes, assembleEquipment(shell, submodels, search, searchValue, language))
	}
	return nodes
}

func isExcludedEquipment(shell model.AssetAdministrationShell) bool {
	idShort := strings.TrimSpace(strings.ToLower(shell.IdShort))
	if excludedEquipmentIdShorts[idShort] {
		return true
	}
	id := strings.ToLower(shell.ID)
	for _, part := range excludedEquipmentIDParts {
		if strings.Contains(id, part) {
			return true
		}
	}
	return false
}

func assembleEquipment(shell model.AssetAdministrationShell, submodels []model.Submodel, search, searchValue, language string) *Node {
	node := &Node{
		ID:       shell.ID,
		Name:     equipmentDisplayName(shell, submodels),
		Type:     NodeEquipment,
		Data:     shell,
		Children: []*Node{},
	}

	if search != "" {
		haystack := strings.ToLower(shell.IdShort + " " + shell.ID + " " + shell.GlobalAssetID())
		if strings.Contains(haystack, search) {
			node.Matched = true
		}
	}

	for _, ref := range shell.Submodels {
		child := assembleSubmodel(ref, submodels, node.ID, search, searchValue, language)
		node.Children = append(node.Children, child)
		if child.Matched {
			node.Matched = true
		}
	}
	return node
}

// equipmentDisplayName augments the idShort with the model designation from
// the identifier, or failing that the FacilityName of the Identification
// submodel, so identical shells from different lines stay tellable apart.
func equipmentDisplayName(shell model.AssetAdministrationShell, submodels []model.Submodel) string {
	base := shell.IdShort
	if base == "" {
		base = "Unknown AAS"
	}

	if identifier := resolver.ExtractIdentifierFromID(shell.ID); identifier != "" && identifier != shell.IdShort {
		return base + " (" + identifier + ")"
	}
	if facility := resolver.FacilityName(shell, submodels); facility != "" && facility != shell.IdShort {
		return base + " (" + facility + ")"
	}
	return base
}

func assembleSubmodel(ref model.Reference, submodels []model.Submodel, parentID, search, searchValue, language string) *Node {
	submodelID := resolver.SubmodelRefID(ref)
	data := resolver.FindSubmodel(submodels, submodelID)

	node := &Node{
		ID:       submodelID,
		Name:     resolver.SubmodelDisplayName(data, submodelID),
		Type:     NodeSubmodel,
		Parent:   parentID,
		Children: []*Node{},
	}
	if data != nil {
		node.Data = data
	}

	if search != "" && strings.Contains(strings.ToLower(node.Name+" "+node.ID), search) {
		node.Matched = true
	}

	if search != "" && data != nil && len(data.SubmodelElements) > 0 {
		node.Children = BuildElements(data.SubmodelElements, data.ID, searchValue, language)
		for _, child := range node.Children {
			if child.Matched {
				node.Matched = true
				break
			}
		}
	} else {
		node.Children = []*Node{Placeholder(submodelID)}
	}
	return node
}
