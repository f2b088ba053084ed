package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePageBareArray(t *testing.T) {
	page := DecodePage[AssetAdministrationShell]([]byte(`[
		{"id": "a", "idShort": "One"},
		{"id": "b", "idShort": "Two"}
	]`))

	require.Len(t, page.Items, 2)
	assert.False(t, page.HasLast)
	assert.False(t, page.HasMore(), "2 rows is below the page-size heuristic")
}

func TestDecodePageBareArrayFullPageAssumesMore(t *testing.T) {
	raw := []byte(`[
		{"id": "1"}, {"id": "2"}, {"id": "3"}, {"id": "4"}, {"id": "5"},
		{"id": "6"}, {"id": "7"}, {"id": "8"}, {"id": "9"}, {"id": "10"}
	]`)
	page := DecodePage[AssetAdministrationShell](raw)

	require.Len(t, page.Items, 10)
	assert.True(t, page.HasMore())
}

func TestDecodePagePagingEnvelope(t *testing.T) {
	page := DecodePage[AssetAdministrationShell]([]byte(`{
		"content": [{"id": "a"}, {"id": "b"}],
		"last": false,
		"totalElements": 24
	}`))

	require.Len(t, page.Items, 2)
	require.True(t, page.HasLast)
	assert.True(t, page.HasMore(), "explicit last=false wins over length heuristic")
	assert.Equal(t, 24, page.TotalElements)
}

func TestDecodePageEnvelopeLastTrue(t *testing.T) {
	page := DecodePage[AssetAdministrationShell]([]byte(`{
		"content": [{"id": "a"}],
		"last": true
	}`))

	assert.False(t, page.HasMore())
	assert.Equal(t, 1, page.TotalElements)
}

func TestDecodePageSingleObject(t *testing.T) {
	page := DecodePage[Submodel]([]byte(`{"id": "sm-1", "idShort": "Nameplate"}`))

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Nameplate", page.Items[0].IdShort)
}

func TestDecodePageNullAndGarbage(t *testing.T) {
	assert.Empty(t, DecodePage[Submodel](nil).Items)
	assert.Empty(t, DecodePage[Submodel]([]byte(`null`)).Items)
	assert.Empty(t, DecodePage[Submodel]([]byte(`"oops"`)).Items)
}

func TestDecodeRepositorySearchDataShape(t *testing.T) {
	result := DecodeRepositorySearch([]byte(`{
		"totalCount": 3,
		"data": [
			{"aas": [{"id": "a"}, {"id": "b"}], "submodels": {"id": "sm-1"}},
			{"aas": [{"id": "b"}, {"id": "c"}]}
		]
	}`))

	require.Len(t, result.Shells, 3, "duplicate shell b must be dropped")
	assert.Equal(t, "a", result.Shells[0].ID)
	require.Len(t, result.Submodels, 1)
	assert.Equal(t, "sm-1", result.Submodels[0].ID)
}

func TestDecodeRepositorySearchLegacyArrayShape(t *testing.T) {
	result := DecodeRepositorySearch([]byte(`[
		{"aas": {"id": "a"}, "submodels": [{"id": "sm-1"}, {"id": "sm-2"}]}
	]`))

	require.Len(t, result.Shells, 1)
	assert.Len(t, result.Submodels, 2)
}

func TestDecodeRepositorySearchPlainShellRows(t *testing.T) {
	result := DecodeRepositorySearch([]byte(`[{"id": "a"}, {"id": "b"}]`))
	assert.Len(t, result.Shells, 2)
}
