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
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// RepositorySearchResult is the flattened outcome of an attribute search on
// the repository endpoints. Shells are deduplicated by id (first seen wins);
// Submodels keeps every submodel body the response delivered alongside them.
type RepositorySearchResult struct {
	Shells    []AssetAdministrationShell
	Submodels []Submodel
}

// DecodeRepositorySearch flattens the attribute-search response. The upstream
// has shipped at least three shapes for this endpoint:
//
//	{code, message: {totalCount, data: [{aas: [...], submodels: {...}}]}}
//	{code, message: [{aas: [...]|{...}, submodels: [...]|{...}}]}
//	{code, message: [shell, shell, ...]}
//
// All are handled; anything unrecognizable yields an empty result.
func DecodeRepositorySearch(raw jsoniter.RawMessage) RepositorySearchResult {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var result RepositorySearchResult
	seen := make(map[string]bool)

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return result
	}

	appendShells := func(shells []AssetAdministrationShell) {
		for _, shell := range shells {
			if shell.ID == "" || seen[shell.ID] {
				continue
			}
			seen[shell.ID] = true
			result.Shells = append(result.Shells, shell)
		}
	}

	if trimmed[0] == '{' {
		var envelope struct {
			TotalCount int                   `json:"totalCount"`
			Data       []jsoniter.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
			for _, item := range envelope.Data {
				shells, submodels := decodeSearchItem(item)
				appendShells(shells)
				result.Submodels = append(result.Submodels, submodels...)
			}
		}
		return result
	}

	var items []jsoniter.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return result
	}
	for _, item := range items {
		shells, submodels := decodeSearchItem(item)
		if len(shells) == 0 && len(submodels) == 0 {
			// Plain shell row.
			var shell AssetAdministrationShell
			if err := json.Unmarshal(item, &shell); err == nil && shell.ID != "" {
				appendShells([]AssetAdministrationShell{shell})
			}
			continue
		}
		appendShells(shells)
		result.Submodels = append(result.Submodels, submodels...)
	}
	return result
}

// decodeSearchItem pulls the aas and submodels members of one result row.
// Both may be a single object or an array.
func decodeSearchItem(raw jsoniter.RawMessage) ([]AssetAdministrationShell, []Submodel) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var row struct {
		AAS       jsoniter.RawMessage `json:"aas"`
		Submodels jsoniter.RawMessage `json:"submodels"`
	}
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, nil
	}
	return decodeOneOrMany[AssetAdministrationShell](row.AAS), decodeOneOrMany[Submodel](row.Submodels)
}

func decodeOneOrMany[T any](raw jsoniter.RawMessage) []T {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil
		}
		return many
	}
	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil
	}
	return []T{one}
}
