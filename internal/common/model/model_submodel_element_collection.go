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
	jsoniter "github.com/json-iterator/go"
)

// SubmodelElementCollection owns an ordered sequence of child elements.
// Nesting depth is unbounded.
type SubmodelElementCollection struct {
	IdShort    string           `json:"idShort,omitempty"`
	ModelType  string           `json:"modelType"`
	SemanticID *Reference       `json:"semanticId,omitempty"`
	Value      []SubmodelElement `json:"-"`
}

func (c *SubmodelElementCollection) GetModelType() string      { return c.ModelType }
func (c *SubmodelElementCollection) GetIdShort() string        { return c.IdShort }
func (c *SubmodelElementCollection) GetSemanticID() *Reference { return c.SemanticID }

// UnmarshalJSON decodes the collection's children through the polymorphic
// element decoder. A value that is not an array leaves the collection empty.
func (c *SubmodelElementCollection) UnmarshalJSON(data []byte) error {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var raw struct {
		IdShort    string                `json:"idShort"`
		ModelType  string                `json:"modelType"`
		SemanticID *Reference            `json:"semanticId"`
		Value      []jsoniter.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.IdShort = raw.IdShort
	c.ModelType = raw.ModelType
	c.SemanticID = raw.SemanticID
	c.Value = UnmarshalSubmodelElements(raw.Value)
	return nil
}

// MarshalJSON re-emits the decoded children.
func (c SubmodelElementCollection) MarshalJSON() ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	type alias struct {
		IdShort    string            `json:"idShort,omitempty"`
		ModelType  string            `json:"modelType"`
		SemanticID *Reference        `json:"semanticId,omitempty"`
		Value      []SubmodelElement `json:"value,omitempty"`
	}
	return json.Marshal(alias{
		IdShort:    c.IdShort,
		ModelType:  c.ModelType,
		SemanticID: c.SemanticID,
		Value:      c.Value,
	})
}
