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

// LangStringTextType is a language-tagged text entry.
type LangStringTextType struct {
	Language string `json:"language,omitempty"`
	Text     string `json:"text,omitempty"`
}

// PreferredText resolves a multi-language value against a language preference
// order: the caller's language first, then English, then the first entry.
// Returns "" when the list is empty.
func PreferredText(values []LangStringTextType, language string) string {
	if len(values) == 0 {
		return ""
	}
	if language != "" {
		for _, v := range values {
			if v.Language == language {
				return v.Text
			}
		}
	}
	for _, v := range values {
		if v.Language == "en" {
			return v.Text
		}
	}
	return values[0].Text
}
