package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStringIsURLSafe(t *testing.T) {
	encoded := EncodeString("https://example.org/ids/sm/CO2Type/180SL7/TechnicalData/1/0/")

	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, "=")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := "https://example.org/ids/aas/9175_7013_7091_9168"

	decoded, err := DecodeString(EncodeString(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeStringAcceptsPadding(t *testing.T) {
	// "ab" encodes to "YWI=" with padding and "YWI" without.
	for _, encoded := range []string{"YWI", "YWI="} {
		decoded, err := DecodeString(encoded)
		require.NoError(t, err)
		assert.Equal(t, "ab", decoded)
	}
}

func TestDecodeStringRejectsInvalidInput(t *testing.T) {
	_, err := DecodeString("not base64 !!")
	assert.Error(t, err)
}
