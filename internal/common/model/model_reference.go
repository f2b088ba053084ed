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

// Key is a single entry in a Reference's key chain.
type Key struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
}

// Reference is a polymorphic pointer to another identifiable, as produced by
// the upstream repository. Real-world payloads are loose: some carry a keys
// chain, some a bare id or value. All fields are optional; resolution order
// is the resolver package's concern.
type Reference struct {
	Type  string `json:"type,omitempty"`
	Keys  []Key  `json:"keys,omitempty"`
	ID    string `json:"id,omitempty"`
	Value string `json:"value,omitempty"`
}

// FirstKeyValue returns the value of the first non-empty key, or "".
func (r *Reference) FirstKeyValue() string {
	if r == nil {
		return ""
	}
	for _, k := range r.Keys {
		if k.Value != "" {
			return k.Value
		}
	}
	return ""
}
