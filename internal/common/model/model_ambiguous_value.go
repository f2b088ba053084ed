/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package model

import (
	"encoding/json"
	"strings"
)

// AmbiguousValue represents a scalar submodel element value whose JSON type
// is not known at compile time. Upstream payloads deliver property values as
// strings, numbers or booleans interchangeably; the textual form is kept so
// that "6.5" stays "6.5" rather than a float round-trip.
//
// Non-scalar JSON (arrays, objects) decodes to the empty string instead of
// failing, so a malformed element never aborts a whole page.
type AmbiguousValue string

// UnmarshalJSON keeps the textual form of any JSON scalar.
func (v *AmbiguousValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "" || trimmed == "null":
		*v = ""
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*v = ""
			return nil
		}
		*v = AmbiguousValue(s)
	case trimmed[0] == '[' || trimmed[0] == '{':
		*v = ""
	default:
		*v = AmbiguousValue(trimmed)
	}
	return nil
}

// MarshalJSON always emits the value as a JSON string.
func (v AmbiguousValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// String returns the textual form.
func (v AmbiguousValue) String() string { return string(v) }

// IsEmpty reports whether the scalar carries no value.
func (v AmbiguousValue) IsEmpty() bool { return v == "" }
