package common

import (
	"encoding/base64"
	"strings"
)

// EncodeString returns the base64 URL-safe encoding of a string without
// padding, as required for identifiers in AAS repository request paths
// (RFC 4648 §5).
func EncodeString(data string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(data))
}

// DecodeString decodes a base64 URL-encoded string. Both padded and
// unpadded input is accepted, since clients are inconsistent about
// keeping the trailing '=' characters.
func DecodeString(encoded string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
