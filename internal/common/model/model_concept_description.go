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

// DataSpecificationContent holds the IEC 61360 content subset the explorer
// needs for naming concepts.
type DataSpecificationContent struct {
	PreferredName []LangStringTextType `json:"preferredName,omitempty"`
}

// EmbeddedDataSpecification pairs a data specification reference with its
// content.
type EmbeddedDataSpecification struct {
	DataSpecification        *Reference                `json:"dataSpecification,omitempty"`
	DataSpecificationContent *DataSpecificationContent `json:"dataSpecificationContent,omitempty"`
}

// ConceptDescription is a semantic dictionary entry.
type ConceptDescription struct {
	ID                         string                      `json:"id,omitempty"`
	IdShort                    string                      `json:"idShort,omitempty"`
	Description                []LangStringTextType        `json:"description,omitempty"`
	EmbeddedDataSpecifications []EmbeddedDataSpecification `json:"embeddedDataSpecifications,omitempty"`
}

// PreferredName resolves the concept's preferred name from the first embedded
// data specification, preferring the given language. Returns "" when absent.
func (c *ConceptDescription) PreferredName(language string) string {
	if c == nil || len(c.EmbeddedDataSpecifications) == 0 {
		return ""
	}
	content := c.EmbeddedDataSpecifications[0].DataSpecificationContent
	if content == nil {
		return ""
	}
	return PreferredText(content.PreferredName, language)
}
