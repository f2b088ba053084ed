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

// SubmodelElement is the closed union over the element kinds the explorer
// renders. Concrete types are Property, SubmodelElementCollection,
// MultiLanguageProperty, File, ReferenceElement, Range, Blob and
// GenericElement (the fallback for every modelType not modelled here).
type SubmodelElement interface {
	GetModelType() string
	GetIdShort() string
	GetSemanticID() *Reference
}

// UnmarshalSubmodelElement creates the appropriate concrete SubmodelElement
// type from JSON. Decoding is defensive: an unknown or missing modelType
// yields a GenericElement, and a payload that cannot be decoded at all yields
// a GenericElement carrying whatever idShort could be recovered. It never
// returns an element-level error to the caller; a page with one broken
// element still renders the other nine.
func UnmarshalSubmodelElement(data []byte) SubmodelElement {
	var raw struct {
		ModelType string `json:"modelType"`
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	if err := json.Unmarshal(data, &raw); err != nil {
		return &GenericElement{}
	}

	switch raw.ModelType {
	case "Property":
		var prop Property
		if err := json.Unmarshal(data, &prop); err != nil {
			return genericFallback(data, raw.ModelType)
		}
		return &prop
	case "SubmodelElementCollection":
		var sec SubmodelElementCollection
		if err := json.Unmarshal(data, &sec); err != nil {
			return genericFallback(data, raw.ModelType)
		}
		return &sec
	case "MultiLanguageProperty":
		var mlp MultiLanguageProperty
		if err := json.Unmarshal(data, &mlp); err != nil {
			return genericFallback(data, raw.ModelType)
		}
		return &mlp
	case "File":
		var f File
		if err := json.Unmarshal(data, &f); err != nil {
			return genericFallback(data, raw.ModelType)
		}
		return &f
	case "ReferenceElement":
		var re ReferenceElement
		if err := json.Unmarshal(data, &re); err != nil {
			return genericFallback(data, raw.ModelType)
		}
		return &re
	case "Range":
		var r Range
		if err := json.Unmarshal(data, &r); err != nil {
			return genericFallback(data, raw.ModelType)
		}
		return &r
	case "Blob":
		var b Blob
		if err := json.Unmarshal(data, &b); err != nil {
			return genericFallback(data, raw.ModelType)
		}
		return &b
	default:
		return genericFallback(data, raw.ModelType)
	}
}

// genericFallback recovers the common fields of an element that is either of
// an unmodelled kind or structurally broken.
func genericFallback(data []byte, modelType string) *GenericElement {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var g GenericElement
	_ = json.Unmarshal(data, &g)
	if g.ModelType == "" {
		g.ModelType = modelType
	}
	return &g
}

// UnmarshalSubmodelElements decodes an ordered element list, keeping input
// order and length. Entries that are not valid JSON objects become
// GenericElements.
func UnmarshalSubmodelElements(raws []jsoniter.RawMessage) []SubmodelElement {
	if len(raws) == 0 {
		return nil
	}
	elements := make([]SubmodelElement, 0, len(raws))
	for _, raw := range raws {
		elements = append(elements, UnmarshalSubmodelElement(raw))
	}
	return elements
}
