package resolver

import (
	"strings"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
)

type unitPattern struct {
	keyword string
	unit    string
}

// semanticUnitPatterns maps keywords found in semanticId values to display
// units. The first matching keyword wins, e.g. InputPowerVoltage resolves
// to V, not KW.
var semanticUnitPatterns = []unitPattern{
	{"voltage", "V"},
	{"current", "A"},
	{"frequency", "Hz"},
	{"capacity", "KVA"},
	{"power", "KW"},
	{"weight", "kg"},
	{"dimension", "mm"},
	{"width", "mm"},
	{"height", "mm"},
	{"depth", "mm"},
	{"time", "sec"},
	{"temperature", "°C"},
	{"percentage", "%"},
	{"dutycycle", "%"},
}

// InferUnit determines the display unit of a property. Precedence:
// semanticId keywords, then the explicit unit attribute, then idShort
// keywords. Returns "" when nothing applies.
func InferUnit(semanticID *model.Reference, explicitUnit string, idShort string) string {
	if unit := UnitFromSemanticID(semanticID); unit != "" {
		return unit
	}
	if explicitUnit != "" {
		return explicitUnit
	}
	return UnitFromIdShort(idShort)
}

// UnitFromSemanticID infers a unit from keywords in the first key value of
// a semanticId reference.
func UnitFromSemanticID(ref *model.Reference) string {
	value := SemanticIDValue(ref)
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	for _, p := range semanticUnitPatterns {
		if strings.Contains(lower, p.keyword) {
			return p.unit
		}
	}
	return ""
}

// UnitFromIdShort infers a unit from keywords in an element's idShort.
// Capacity properties only get a unit when the idShort names one, since a
// capacity can be apparent (KVA) or real power (KW).
func UnitFromIdShort(idShort string) string {
	if idShort == "" {
		return ""
	}
	lower := strings.ToLower(idShort)
	switch {
	case strings.Contains(lower, "voltage"):
		return "V"
	case strings.Contains(lower, "current"):
		return "A"
	case strings.Contains(lower, "frequency"):
		return "Hz"
	case strings.Contains(lower, "rate"), strings.Contains(lower, "duty"):
		return "%"
	case strings.Contains(lower, "weight"):
		return "kg"
	case strings.Contains(lower, "time"):
		return "sec"
	case strings.Contains(lower, "capacity"):
		if strings.Contains(lower, "kva") {
			return "KVA"
		}
		if strings.Contains(lower, "kw") {
			return "KW"
		}
	}
	return ""
}
