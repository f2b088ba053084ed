package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalSubmodelElementProperty(t *testing.T) {
	element := UnmarshalSubmodelElement([]byte(`{
		"modelType": "Property",
		"idShort": "InputPowerVoltage",
		"valueType": "xs:int",
		"value": 380
	}`))

	prop, ok := element.(*Property)
	require.True(t, ok, "expected *Property, got %T", element)
	assert.Equal(t, "InputPowerVoltage", prop.IdShort)
	assert.Equal(t, "380", prop.Value.String())
}

func TestUnmarshalSubmodelElementStringValueKeepsText(t *testing.T) {
	element := UnmarshalSubmodelElement([]byte(`{
		"modelType": "Property",
		"idShort": "DutyCycle",
		"value": "60"
	}`))

	prop, ok := element.(*Property)
	require.True(t, ok)
	assert.Equal(t, "60", prop.Value.String())
	assert.False(t, prop.Value.IsEmpty())
}

func TestUnmarshalSubmodelElementNestedCollection(t *testing.T) {
	element := UnmarshalSubmodelElement([]byte(`{
		"modelType": "SubmodelElementCollection",
		"idShort": "Spindle",
		"value": [
			{"modelType": "Property", "idShort": "MaxTorque", "value": "48"},
			{"modelType": "SubmodelElementCollection", "idShort": "Inner", "value": [
				{"modelType": "Property", "idShort": "Depth", "value": 12}
			]}
		]
	}`))

	collection, ok := element.(*SubmodelElementCollection)
	require.True(t, ok)
	require.Len(t, collection.Value, 2)

	inner, ok := collection.Value[1].(*SubmodelElementCollection)
	require.True(t, ok)
	require.Len(t, inner.Value, 1)
	assert.Equal(t, "Depth", inner.Value[0].GetIdShort())
}

func TestUnmarshalSubmodelElementUnknownModelType(t *testing.T) {
	element := UnmarshalSubmodelElement([]byte(`{
		"modelType": "Operation",
		"idShort": "StartCycle"
	}`))

	generic, ok := element.(*GenericElement)
	require.True(t, ok, "unmodelled kinds must fall back to GenericElement")
	assert.Equal(t, "Operation", generic.ModelType)
	assert.Equal(t, "StartCycle", generic.IdShort)
}

func TestUnmarshalSubmodelElementGarbageNeverNil(t *testing.T) {
	element := UnmarshalSubmodelElement([]byte(`not json at all`))
	require.NotNil(t, element)
	_, ok := element.(*GenericElement)
	assert.True(t, ok)
}

func TestSubmodelUnmarshalTolleratesBrokenElement(t *testing.T) {
	var sm Submodel
	err := sm.UnmarshalJSON([]byte(`{
		"id": "https://example.org/ids/sm/CO2Type/180SL7/TechnicalData/1/0/",
		"idShort": "TechnicalData",
		"submodelElements": [
			{"modelType": "Property", "idShort": "RatedFrequency", "value": 60},
			{"modelType": "MultiLanguageProperty", "idShort": "Manufacturer", "value": [
				{"language": "en", "text": "Kyungnam Welding"}
			]}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, sm.SubmodelElements, 2)

	mlp, ok := sm.SubmodelElements[1].(*MultiLanguageProperty)
	require.True(t, ok)
	assert.Equal(t, "Kyungnam Welding", PreferredText(mlp.Value, "en"))
}

func TestPreferredTextLanguageOrder(t *testing.T) {
	values := []LangStringTextType{
		{Language: "de", Text: "Schweissgerät"},
		{Language: "en", Text: "Welding machine"},
		{Language: "ko", Text: "용접기"},
	}

	assert.Equal(t, "용접기", PreferredText(values, "ko"))
	assert.Equal(t, "Welding machine", PreferredText(values, "fr"), "unknown language falls back to en")
	assert.Equal(t, "Schweissgerät", PreferredText(values[:1], "fr"), "no en entry falls back to first")
	assert.Equal(t, "", PreferredText(nil, "en"))
}
