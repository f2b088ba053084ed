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

// Submodel is a named bundle of elements describing one aspect of an asset.
type Submodel struct {
	ID               string            `json:"id,omitempty"`
	IdShort          string            `json:"idShort,omitempty"`
	Kind             string            `json:"kind,omitempty"`
	SemanticID       *Reference        `json:"semanticId,omitempty"`
	SubmodelElements []SubmodelElement `json:"-"`
}

// UnmarshalJSON routes submodelElements through the polymorphic decoder.
func (s *Submodel) UnmarshalJSON(data []byte) error {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var raw struct {
		ID               string                `json:"id"`
		IdShort          string                `json:"idShort"`
		Kind             string                `json:"kind"`
		SemanticID       *Reference            `json:"semanticId"`
		SubmodelElements []jsoniter.RawMessage `json:"submodelElements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.IdShort = raw.IdShort
	s.Kind = raw.Kind
	s.SemanticID = raw.SemanticID
	s.SubmodelElements = UnmarshalSubmodelElements(raw.SubmodelElements)
	return nil
}

// MarshalJSON re-emits the decoded elements.
func (s Submodel) MarshalJSON() ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	type alias struct {
		ID               string            `json:"id,omitempty"`
		IdShort          string            `json:"idShort,omitempty"`
		Kind             string            `json:"kind,omitempty"`
		SemanticID       *Reference        `json:"semanticId,omitempty"`
		SubmodelElements []SubmodelElement `json:"submodelElements,omitempty"`
	}
	return json.Marshal(alias{
		ID:               s.ID,
		IdShort:          s.IdShort,
		Kind:             s.Kind,
		SemanticID:       s.SemanticID,
		SubmodelElements: s.SubmodelElements,
	})
}
