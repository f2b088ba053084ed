package menu

// Menu data is fetched through different upstream endpoints depending on
// how the equipment class is tagged in the repository. The welding, CNC and
// press menus carry a process tag in their globalAssetId and a classify
// value in their idShorts, so they go through the combined search. AMR,
// boring and robot shells only carry recognizable keywords, so they go
// through the plain globalAssetId search. Everything else lists by its
// first classification keyword.

// Strategy selects the upstream endpoint used to load a menu.
type Strategy int

const (
	// StrategyKeyword lists shells by a single repository keyword.
	StrategyKeyword Strategy = iota
	// StrategyGlobalAssetID unions multi-keyword globalAssetId searches.
	StrategyGlobalAssetID
	// StrategyCombined unions multi-keyword combined searches scoped by a
	// globalAssetId process tag.
	StrategyCombined
)

// processTags maps menus to the globalAssetId process tag of their
// equipment class.
var processTags = map[Code]string{
	CO2: "WeldingProcess", TIG: "WeldingProcess", MIG: "WeldingProcess",
	MAG: "WeldingProcess", EBW: "WeldingProcess", FW: "WeldingProcess",
	OAW: "WeldingProcess", PW: "WeldingProcess", RSEW: "WeldingProcess",
	RSW: "WeldingProcess", SAW: "WeldingProcess", SMAW: "WeldingProcess",
	Sold: "WeldingProcess", SW: "WeldingProcess", UW: "WeldingProcess",

	CNC: "ComputerNumericalControlProcess",

	PressCutting: "PressProcess", PressHydr: "PressProcess",
	PressMechanicalType: "PressProcess", PressServo: "PressProcess",

	AMR:    "AMR",
	Boring: "Boring",
	Robot:  "Robot",
}

// searchKeywords are the classify values and aliases actually found in
// repository idShorts, broadest last.
var searchKeywords = map[Code][]string{
	CO2:  {"CO2Type-classify", "CO2Type", "CO2"},
	TIG:  {"TungstenInsertGasType-classify", "TIG", "TungstenInsertGas"},
	MIG:  {"MetalInsertGasType-classify", "MIG", "MetalInsertGas"},
	MAG:  {"MetalActiveGasType-classify", "MAG", "MetalActiveGas"},
	EBW:  {"ElectronBeamWeldingType-classify", "EBW", "ElectronBeam"},
	FW:   {"FlasfButtType", "FrictionWeldingType-classify", "FW", "Friction"},
	OAW:  {"OxyAcetyleneWeldingType-classify", "OAW", "OxyAcetylene"},
	PW:   {"ProjectionWeldingType-classify", "PW", "Projection"},
	RSEW: {"ResistanceSeamWeldingType-classify", "RSEW", "ResistanceSeam"},
	RSW:  {"ResistanceSpotWeldingType-classify", "RSW", "ResistanceSpot"},
	SAW:  {"SubmergedArcWeldingType-classify", "SAW", "SubmergedArc"},
	SMAW: {"ShieldedMetalArcType-classify", "SMAW", "ShieldedMetal"},
	Sold: {"SolderingType-classify", "Sold", "Soldering"},
	SW:   {"StudWeldingType-classify", "SW", "Stud"},
	UW:   {"UltrasonicWeldingType-classify", "UW", "Ultrasonic"},

	CNC: {"CNCMechanics", "CNC", "ComputerNumericalControl"},

	PressCutting:        {"Shearing", "PressMachineShearing", "Cutting", "CuttingType", "Cutoff"},
	PressHydr:           {"Hydr", "HydraulicType", "Hydraulic"},
	PressMechanicalType: {"MechanicalType", "Mechanical"},
	PressServo:          {"Servo", "ServoType"},

	AMR:    {"AMR", "HD1500", "LD90", "MD650"},
	Boring: {"Boring", "DBC130", "BoringMachine"},
	Robot:  {"Robot", "HH4", "IndustrialRobot"},
}

// combinedMenus use the combined endpoint; the remaining tagged menus use
// the plain globalAssetId endpoint.
var combinedMenus = map[Code]bool{
	CO2: true, TIG: true, MIG: true, MAG: true, EBW: true, FW: true,
	OAW: true, PW: true, RSEW: true, RSW: true, SAW: true, SMAW: true,
	Sold: true, SW: true, UW: true,
	CNC:          true,
	PressCutting: true, PressHydr: true, PressMechanicalType: true, PressServo: true,
}

// Plan describes how a menu's shells are fetched.
type Plan struct {
	Strategy Strategy
	// Keywords to union over for the global/combined strategies, or the
	// single listing keyword for StrategyKeyword.
	Keywords []string
	// GlobalAssetID scopes a combined search to the process tag.
	GlobalAssetID string
}

// SearchPlan resolves the fetch plan of a menu. ok is false for menus
// without an upstream source, such as ALL.
func SearchPlan(code Code) (Plan, bool) {
	tag, tagged := processTags[code]
	if tagged {
		keywords := searchKeywords[code]
		if len(keywords) == 0 {
			// No idShort aliases known: one plain search on the tag.
			return Plan{Strategy: StrategyGlobalAssetID, Keywords: []string{tag}}, true
		}
		if combinedMenus[code] {
			return Plan{Strategy: StrategyCombined, Keywords: keywords, GlobalAssetID: tag}, true
		}
		return Plan{Strategy: StrategyGlobalAssetID, Keywords: keywords}, true
	}

	if keywords := classifyKeywords[code]; len(keywords) > 0 {
		return Plan{Strategy: StrategyKeyword, Keywords: keywords[:1]}, true
	}
	return Plan{}, false
}
