package menu

// FilterOption is one selectable attribute filter of a menu.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var weldingFilterOptions = []FilterOption{
	{Value: "welding/search/inputpowervoltage", Label: "Input Power Voltage"},
	{Value: "welding/search/ratedoutputcurrent", Label: "Rated Output Current"},
	{Value: "welding/search/dutycycle", Label: "Duty Cycle"},
	{Value: "welding/search/inputcapacity/kw", Label: "Input Capacity (kW)"},
	{Value: "welding/search/ratedfrequency", Label: "Rated Frequency"},
	{Value: "welding/search/numberofphases", Label: "Number of Phases"},
}

var cncFilterOptions = []FilterOption{
	{Value: "cnc/search/spindle/max-speedofrotation", Label: "Max Speed of Rotation"},
	{Value: "cnc/search/spindle/maxtorque", Label: "Max Torque"},
	{Value: "cnc/search/spindle/maxoutputpower", Label: "Max Output Power"},
	{Value: "cnc/search/n-postrapidtransferspeed", Label: "Rapid Transfer Speed"},
	{Value: "cnc/search/allowablevolume/min-allowableload", Label: "Min Allowable Load"},
	{Value: "cnc/search/allowablevolume/max-allowablematerialdiameter", Label: "Max Material Diameter"},
	{Value: "cnc/search/automatictoolchanger/numberoftool", Label: "ATC Number of Tools"},
}

var pressCuttingFilterOptions = []FilterOption{
	{Value: "press/search/cuttinglength", Label: "Cutting Length"},
	{Value: "press/search/cuttingthickness", Label: "Cutting Thickness"},
	{Value: "press/search/pressurecapacity", Label: "Pressure Capacity"},
	{Value: "press/search/strokesperminute", Label: "Strokes Per Minute"},
	{Value: "press/search/slideopening", Label: "Slide Opening"},
	{Value: "press/search/bolsteropening", Label: "Bolster Opening"},
}

var pressFilterOptions = []FilterOption{
	{Value: "press/search/pressurecapacity", Label: "Pressure Capacity"},
	{Value: "press/search/stroke", Label: "Stroke"},
	{Value: "press/search/dieheight", Label: "Die Height"},
	{Value: "press/search/slideadjustment", Label: "Slide Adjustment"},
	{Value: "press/search/slideopening", Label: "Slide Opening"},
	{Value: "press/search/bolsteropening", Label: "Bolster Opening"},
	{Value: "press/search/strokesperminute", Label: "Strokes Per Minute"},
}

var perMenuFilterOptions = map[Code][]FilterOption{
	AMR: {
		{Value: "modelname", Label: "Model Name"},
		{Value: "loadcapacity", Label: "Load Capacity"},
		{Value: "speed", Label: "Speed"},
		{Value: "batterytype", Label: "Battery Type"},
		{Value: "navigationtype", Label: "Navigation Type"},
		{Value: "status", Label: "Status"},
	},
	Boring: {
		{Value: "boringdiameter", Label: "Boring Diameter"},
		{Value: "spindlespeed", Label: "Spindle Speed"},
		{Value: "feedrate", Label: "Feed Rate"},
		{Value: "accuracy", Label: "Accuracy"},
		{Value: "tooltype", Label: "Tool Type"},
		{Value: "coolanttype", Label: "Coolant Type"},
	},
	Robot: {
		{Value: "robottype", Label: "Robot Type"},
		{Value: "payload", Label: "Payload"},
		{Value: "reach", Label: "Reach"},
		{Value: "repeatability", Label: "Repeatability"},
		{Value: "axes", Label: "Number of Axes"},
		{Value: "controller", Label: "Controller Type"},
	},
}

var materialFilterOptions = []FilterOption{
	{Value: "materialgrade", Label: "Material Grade"},
	{Value: "thickness", Label: "Thickness"},
	{Value: "hardness", Label: "Hardness"},
	{Value: "supplier", Label: "Supplier"},
	{Value: "batchnumber", Label: "Batch Number"},
	{Value: "certificate", Label: "Certificate"},
}

var processFilterOptions = []FilterOption{
	{Value: "processtime", Label: "Process Time"},
	{Value: "temperature", Label: "Temperature"},
	{Value: "pressure", Label: "Pressure"},
	{Value: "tolerance", Label: "Tolerance"},
	{Value: "processid", Label: "Process ID"},
	{Value: "operator", Label: "Operator"},
}

var operationFilterOptions = []FilterOption{
	{Value: "equipmentid", Label: "Equipment ID"},
	{Value: "operationstatus", Label: "Operation Status"},
	{Value: "shift", Label: "Shift"},
	{Value: "efficiencyrate", Label: "Efficiency Rate"},
	{Value: "alarmtype", Label: "Alarm Type"},
	{Value: "maintenancetype", Label: "Maintenance Type"},
}

var qualityFilterOptions = []FilterOption{
	{Value: "inspectiontype", Label: "Inspection Type"},
	{Value: "passfail", Label: "Pass/Fail"},
	{Value: "defectcode", Label: "Defect Code"},
	{Value: "measurementvalue", Label: "Measurement Value"},
	{Value: "inspectorname", Label: "Inspector Name"},
	{Value: "standard", Label: "Standard"},
}

var productionFilterOptions = []FilterOption{
	{Value: "ordernumber", Label: "Order Number"},
	{Value: "productcode", Label: "Product Code"},
	{Value: "productiondate", Label: "Production Date"},
	{Value: "quantity", Label: "Quantity"},
	{Value: "linenumber", Label: "Line Number"},
	{Value: "customer", Label: "Customer"},
}

var defaultFilterOptions = []FilterOption{
	{Value: "id", Label: "ID"},
	{Value: "name", Label: "Name"},
	{Value: "type", Label: "Type"},
	{Value: "status", Label: "Status"},
}

// FilterOptions returns the attribute filters offered on a menu. The ALL
// menu offers entity-kind filters instead of attributes.
func FilterOptions(code Code) []FilterOption {
	if code == All {
		return []FilterOption{
			{Value: "aas", Label: "AAS"},
			{Value: "submodel", Label: "Submodel"},
			{Value: "conceptdescription", Label: "Concept Description"},
		}
	}

	switch code {
	case CO2, TIG, MIG, MAG, EBW, FW, OAW, PW, RSEW, RSW, SAW, SMAW, Sold, SW, UW:
		return weldingFilterOptions
	case CNC:
		return cncFilterOptions
	case PressCutting:
		return pressCuttingFilterOptions
	case PressHydr, PressMechanicalType, PressServo:
		return pressFilterOptions
	case Steel, Aluminum, StainlessSteel:
		return materialFilterOptions
	case Welding, Cutting, Brazing:
		return processFilterOptions
	case OperationPlanning, OperationMonitoring, OperationControl:
		return operationFilterOptions
	case QualityInspection, QualityControl, QualityAssurance:
		return qualityFilterOptions
	case ProductionPlanning, ProductionTracking, ProductionAnalysis:
		return productionFilterOptions
	}
	if options, ok := perMenuFilterOptions[code]; ok {
		return options
	}
	return defaultFilterOptions
}

// filterPlaceholders holds example input per attribute filter.
var filterPlaceholders = map[string]string{
	"welding/search/numberofphases":     "e.g., Single, Three",
	"welding/search/inputpowervoltage":  "e.g., 380, 220",
	"welding/search/ratedfrequency":     "e.g., 50, 60",
	"welding/search/ratedoutputcurrent": "e.g., 500, 350",
	"welding/search/inputcapacity/kw":   "e.g., 6.5, 10",
	"welding/search/dutycycle":          "e.g., 60, 100",

	"cnc/search/spindle/max-speedofrotation":                    "e.g., 8000, 24000",
	"cnc/search/spindle/maxtorque":                              "e.g., 48, 100",
	"cnc/search/spindle/maxoutputpower":                         "e.g., 3.7, 5.5",
	"cnc/search/n-postrapidtransferspeed":                       "e.g., 60, 100",
	"cnc/search/allowablevolume/min-allowableload":              "e.g., 8000, 10000",
	"cnc/search/allowablevolume/max-allowablematerialdiameter":  "e.g., 500, 800",
	"cnc/search/automatictoolchanger/numberoftool":              "No value needed",

	"press/search/pressurecapacity": "e.g., 100, 170",
	"press/search/stroke":           "e.g., 300, 500",
	"press/search/dieheight":        "e.g., 180, 200",
	"press/search/slideadjustment":  "e.g., 25, 40",
	"press/search/slideopening":     "e.g., 500, 800",
	"press/search/bolsteropening":   "e.g., 600, 900",
	"press/search/strokesperminute": "e.g., 50, 100",
	"press/search/cuttinglength":    "e.g., 1800, 2000",
	"press/search/cuttingthickness": "e.g., 175, 200",
}

// allMenuPlaceholders holds example input per ALL-menu entity filter.
var allMenuPlaceholders = map[string]string{
	"aas":                "Enter AAS ID (e.g., CO2) or leave empty for all",
	"submodel":           "Enter Submodel ID (e.g., 180SL7) - Required",
	"conceptdescription": "Enter Concept ID (e.g., homepage) - Required",
}

// Placeholder returns the input hint for a filter on a menu.
func Placeholder(code Code, filterType string) string {
	if code == All {
		if filterType == "" {
			return "Select a filter type first"
		}
		if hint, ok := allMenuPlaceholders[filterType]; ok {
			return hint
		}
		return "Enter ID to search"
	}
	if hint, ok := filterPlaceholders[filterType]; ok {
		return hint
	}
	return "Input a value"
}
