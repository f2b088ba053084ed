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

// Package resolver extracts display identifiers, display names and units
// from AAS identifiers, references and submodel bodies. Repository content
// in the field is frequently incomplete (missing idShorts, references with
// legacy fields instead of keys), so every resolver degrades through a
// chain of fallbacks instead of failing.
package resolver

import (
	"regexp"
	"strings"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// smNamePattern matches identifier paths like
// .../sm/CO2Type/180SL7/TechnicalData/1/0/ and captures the submodel kind.
var smNamePattern = regexp.MustCompile(`/sm/[^/]+/[^/]+/([^/]+)/(\d+/\d+)?/?$`)

// knownSubmodelKinds are path segments recognized as submodel names when an
// identifier has to stand in for a missing idShort.
var knownSubmodelKinds = []string{
	"Identification",
	"Nameplate",
	"TechnicalData",
	"OperationData",
	"Documentation",
	"MachineBreakdown",
	"AlarmData",
	"operationData",
	"documentation",
}

// ExtractIdentifierFromID extracts the model designation from a URL-like
// shell identifier: the second path segment after "aas". Purely numeric
// segments are serial counters, not designations, and yield "".
//
//	https://example.org/ids/aas/CO2Type/180SL7/1/0/  ->  180SL7
func ExtractIdentifierFromID(id string) string {
	if id == "" {
		return ""
	}
	parts := strings.Split(id, "/")
	for i, part := range parts {
		if part != "aas" {
			continue
		}
		if i+2 < len(parts) {
			identifier := parts[i+2]
			if identifier != "" && !digitsOnly.MatchString(identifier) {
				return identifier
			}
		}
		break
	}
	return ""
}

// SemanticIDValue returns the value of the first key of a semanticId
// reference, or "" when the reference carries none.
func SemanticIDValue(ref *model.Reference) string {
	if ref == nil {
		return ""
	}
	return ref.FirstKeyValue()
}

// SubmodelRefID resolves the submodel identifier a reference points at.
// Well-formed references carry the identifier in their key chain; legacy
// payloads put it in id, value or even type.
func SubmodelRefID(ref model.Reference) string {
	for _, key := range ref.Keys {
		if key.Value != "" {
			return key.Value
		}
	}
	if ref.ID != "" {
		return ref.ID
	}
	if ref.Value != "" {
		return ref.Value
	}
	return ref.Type
}

// FindSubmodel looks the identified submodel up in a list of fetched
// bodies. Identity match is tried first; idShort and semanticId matches
// cover repositories that hand out references by name.
func FindSubmodel(submodels []model.Submodel, submodelID string) *model.Submodel {
	if submodelID == "" {
		return nil
	}
	for i := range submodels {
		if submodels[i].ID == submodelID {
			return &submodels[i]
		}
	}
	for i := range submodels {
		if submodels[i].IdShort == submodelID {
			return &submodels[i]
		}
		if SemanticIDValue(submodels[i].SemanticID) == submodelID {
			return &submodels[i]
		}
	}
	return nil
}

// FacilityName returns the FacilityName property of the shell's
// Identification submodel, or "" when the shell has none.
func FacilityName(shell model.AssetAdministrationShell, submodels []model.Submodel) string {
	for _, ref := range shell.Submodels {
		sm := FindSubmodel(submodels, SubmodelRefID(ref))
		if sm == nil || sm.IdShort != "Identification" {
			continue
		}
		if name := facilityNameElement(sm.SubmodelElements); name != "" {
			return name
		}
	}
	return ""
}

func facilityNameElement(elements []model.SubmodelElement) string {
	for _, element := range elements {
		if element.GetIdShort() != "FacilityName" {
			continue
		}
		switch e := element.(type) {
		case *model.Property:
			return e.Value.String()
		case *model.MultiLanguageProperty:
			return model.PreferredText(e.Value, "en")
		}
	}
	return ""
}

// SubmodelDisplayName picks a display name for a submodel node. The body's
// idShort wins; without one the identifier path is mined: first the
// .../sm/<type>/<facility>/<name>/... pattern, then a known submodel kind
// among the segments, then the last non-numeric segment.
func SubmodelDisplayName(sm *model.Submodel, submodelID string) string {
	if sm != nil && sm.IdShort != "" {
		return sm.IdShort
	}
	if submodelID == "" {
		return "Unknown Submodel"
	}

	if m := smNamePattern.FindStringSubmatch(submodelID); m != nil && m[1] != "" {
		return m[1]
	}

	parts := strings.Split(submodelID, "/")
	for _, part := range parts {
		for _, kind := range knownSubmodelKinds {
			if part == kind {
				return part
			}
		}
	}
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !digitsOnly.MatchString(parts[i]) {
			return parts[i]
		}
	}
	return "Unknown Submodel"
}

// FacilityIdentifier returns the parenthetical qualifier for a submodel
// shown in search results: the FacilityName property for Identification
// submodels, otherwise the facility segment of the identifier path
// (sm/<type>/<facility>/...), otherwise any meaningful path segment.
func FacilityIdentifier(sm model.Submodel) string {
	if sm.IdShort == "Identification" {
		if name := facilityNameElement(sm.SubmodelElements); name != "" {
			return name
		}
	}
	if sm.ID == "" {
		return ""
	}

	parts := strings.Split(sm.ID, "/")
	for i, part := range parts {
		if part != "sm" {
			continue
		}
		if i+2 < len(parts) {
			candidate := parts[i+2]
			if candidate != "" && !strings.Contains(candidate, ".") &&
				!strings.Contains(candidate, ":") && candidate != sm.IdShort {
				return candidate
			}
		}
		break
	}

	for _, part := range parts {
		if part == "" || strings.Contains(part, ".") || strings.Contains(part, ":") {
			continue
		}
		if digitsOnly.MatchString(part) {
			continue
		}
		if part == "ids" || part == "sm" || part == "aas" || part == sm.IdShort {
			continue
		}
		if len(part) > 2 {
			return part
		}
	}
	return ""
}

// ConceptDisplayName picks a display name for a concept description:
// preferredName from the embedded data specification, then idShort, then a
// meaningful fragment of the identifier.
func ConceptDisplayName(concept model.ConceptDescription, language string) string {
	name := concept.IdShort
	if preferred := concept.PreferredName(language); preferred != "" {
		name = preferred
	}
	if name != "" && name != "Unknown Concept" {
		return name
	}

	for _, part := range strings.FieldsFunc(concept.ID, func(r rune) bool {
		return r == '/' || r == ':' || r == '(' || r == ')'
	}) {
		if part == "" || strings.Contains(part, ".") || digitsOnly.MatchString(part) {
			continue
		}
		if len(part) > 2 {
			return part
		}
	}
	return "Unknown Concept"
}
