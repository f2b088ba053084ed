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

// AssetInformation is the asset-side descriptor of a shell.
type AssetInformation struct {
	AssetKind     string `json:"assetKind,omitempty"`
	GlobalAssetID string `json:"globalAssetId,omitempty"`
}

// AssetAdministrationShell is the top-level digital-twin descriptor the
// explorer lists as equipment. The upstream contract delivers submodel
// references under the singular "submodel" key.
type AssetAdministrationShell struct {
	ID               string               `json:"id,omitempty"`
	IdShort          string               `json:"idShort,omitempty"`
	AssetInformation *AssetInformation    `json:"assetInformation,omitempty"`
	Submodels        []Reference          `json:"submodel,omitempty"`
	Description      []LangStringTextType `json:"description,omitempty"`
}

// GlobalAssetID returns the shell's global asset id, or "".
func (a *AssetAdministrationShell) GlobalAssetID() string {
	if a == nil || a.AssetInformation == nil {
		return ""
	}
	return a.AssetInformation.GlobalAssetID
}

// AssetKind returns the shell's asset kind, or "".
func (a *AssetAdministrationShell) AssetKind() string {
	if a == nil || a.AssetInformation == nil {
		return ""
	}
	return a.AssetInformation.AssetKind
}
