package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
)

func testShell(id, idShort string, submodelIDs ...string) model.AssetAdministrationShell {
	shell := model.AssetAdministrationShell{ID: id, IdShort: idShort}
	for _, smID := range submodelIDs {
		shell.Submodels = append(shell.Submodels, model.Reference{
			Keys: []model.Key{{Type: "Submodel", Value: smID}},
		})
	}
	return shell
}

func TestAssembleBrowseModeUsesPlaceholders(t *testing.T) {
	shells := []model.AssetAdministrationShell{
		testShell("https://example.org/ids/aas/CO2Type/180SL7/1/0/", "CO2Type", "sm-tech"),
	}

	nodes := Assemble(shells, nil, "", "en")

	require.Len(t, nodes, 1)
	equipment := nodes[0]
	assert.Equal(t, NodeEquipment, equipment.Type)
	assert.Equal(t, "CO2Type (180SL7)", equipment.Name)
	assert.Equal(t, shells[0], equipment.Data)

	require.Len(t, equipment.Children, 1)
	submodel := equipment.Children[0]
	assert.Equal(t, "sm-tech", submodel.ID)
	assert.Equal(t, equipment.ID, submodel.Parent)
	assert.Nil(t, submodel.Data, "lazy submodel carries no body yet")
	require.Len(t, submodel.Children, 1)
	assert.Equal(t, NodePlaceholder, submodel.Children[0].Type)
	assert.Equal(t, "sm-tech_placeholder", submodel.Children[0].ID)
}

func TestAssembleSearchModeExpandsElementsAndPropagatesMatch(t *testing.T) {
	shells := []model.AssetAdministrationShell{
		testShell("https://example.org/ids/aas/CO2Type/180SL7/1/0/", "CO2Type", "sm-tech"),
	}
	submodels := []model.Submodel{{
		ID:      "sm-tech",
		IdShort: "TechnicalData",
		SubmodelElements: []model.SubmodelElement{
			&model.Property{IdShort: "InputPowerVoltage", ModelType: "Property", Value: "380"},
		},
	}}

	nodes := Assemble(shells, submodels, "380", "en")

	require.Len(t, nodes, 1)
	equipment := nodes[0]
	assert.True(t, equipment.Matched, "match bubbles up from the property")

	submodel := equipment.Children[0]
	assert.Equal(t, "TechnicalData", submodel.Name)
	assert.True(t, submodel.Matched)
	require.Len(t, submodel.Children, 1)
	assert.Equal(t, NodeProperty, submodel.Children[0].Type)

	body, ok := submodel.Data.(*model.Submodel)
	require.True(t, ok, "matched submodel carries its body")
	assert.Equal(t, "TechnicalData", body.IdShort)
}

func TestAssembleSearchModeFiltersAuxiliaryShells(t *testing.T) {
	shells := []model.AssetAdministrationShell{
		testShell("https://example.org/ids/aas/CO2Type/180SL7/1/0/", "CO2Type"),
		testShell("https://example.org/ids/aas/Component/1/0/", "Component"),
		testShell("https://example.org/ids/aas/safetydevice/2/0/", "SafetyDevice"),
		testShell("https://example.org/ids/aas/accessories/3/0/", " Accessories "),
	}

	searched := Assemble(shells, nil, "co2", "en")
	require.Len(t, searched, 1)
	assert.Equal(t, "CO2Type (180SL7)", searched[0].Name)

	// Without a search term nothing is filtered.
	browsed := Assemble(shells, nil, "", "en")
	assert.Len(t, browsed, 4)
}

func TestAssembleEquipmentMatchOnGlobalAssetID(t *testing.T) {
	shell := testShell("https://example.org/ids/aas/CO2Type/180SL7/1/0/", "CO2Type")
	shell.AssetInformation = &model.AssetInformation{GlobalAssetID: "urn:asset:9175"}

	nodes := Assemble([]model.AssetAdministrationShell{shell}, nil, "9175", "en")
	require.Len(t, nodes, 1)
	assert.True(t, nodes[0].Matched)
}

func TestAssembleFacilityNameFallback(t *testing.T) {
	// Identifier carries no designation, so the Identification submodel's
	// FacilityName qualifies the display name.
	shell := testShell("urn:aas:9175", "WeldingMachine", "sm-ident")
	submodels := []model.Submodel{{
		ID:      "sm-ident",
		IdShort: "Identification",
		SubmodelElements: []model.SubmodelElement{
			&model.Property{IdShort: "FacilityName", ModelType: "Property", Value: "Press Shop"},
		},
	}}

	nodes := Assemble([]model.AssetAdministrationShell{shell}, submodels, "", "en")
	require.Len(t, nodes, 1)
	assert.Equal(t, "WeldingMachine (Press Shop)", nodes[0].Name)
}

func TestAssembleSubmodelResults(t *testing.T) {
	submodels := []model.Submodel{{
		ID:      "https://example.org/ids/sm/CO2Type/180SL7/AlarmData/1/0/",
		IdShort: "AlarmData",
		SubmodelElements: []model.SubmodelElement{
			&model.Property{IdShort: "AlarmCode", ModelType: "Property", Value: "E-42"},
		},
	}}

	nodes := AssembleSubmodelResults(submodels, "e-42", "en")

	require.Len(t, nodes, 1)
	assert.Equal(t, "AlarmData (180SL7)", nodes[0].Name)
	assert.True(t, nodes[0].Matched)
	require.Len(t, nodes[0].Children, 1)
	assert.True(t, nodes[0].Children[0].Matched)
}

func TestAssembleConceptResults(t *testing.T) {
	concepts := []model.ConceptDescription{
		{ID: "urn:cd:1", IdShort: "MaxTorque"},
		{ID: "https://example.org/cd/(RatedPower)/0173"},
	}

	nodes := AssembleConceptResults(concepts, "en")

	require.Len(t, nodes, 2)
	assert.Equal(t, "MaxTorque", nodes[0].Name)
	assert.Equal(t, NodeConcept, nodes[0].Type)
	assert.Equal(t, "RatedPower", nodes[1].Name)
}
