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

// Package menu defines the catalog of equipment menus the explorer offers
// and classifies shells into them by keyword matching over their
// identifying attributes.
package menu

import (
	"strings"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
)

// Code identifies one menu.
type Code string

// Equipment menus. Welding processes, CNC, presses, mobile robots.
const (
	CO2                 Code = "CO2"
	TIG                 Code = "TIG"
	MIG                 Code = "MIG"
	MAG                 Code = "MAG"
	EBW                 Code = "EBW"
	FW                  Code = "FW"
	OAW                 Code = "OAW"
	PW                  Code = "PW"
	RSEW                Code = "RSEW"
	RSW                 Code = "RSW"
	SAW                 Code = "SAW"
	SMAW                Code = "SMAW"
	Sold                Code = "Sold"
	SW                  Code = "SW"
	UW                  Code = "UW"
	CNC                 Code = "CNC"
	PressCutting        Code = "Press_Cutting"
	PressHydr           Code = "Press_Hydr"
	PressMechanicalType Code = "Press_Mechanical_Type"
	PressServo          Code = "Press_Servo"
	AMR                 Code = "AMR"
	Boring              Code = "Boring"
	Robot               Code = "Robot"
)

// Material, process, operation, quality and production menus.
const (
	Steel          Code = "Steel"
	Aluminum       Code = "Aluminum"
	StainlessSteel Code = "Stainless Steel"

	Welding Code = "Welding"
	Cutting Code = "Cutting"
	Brazing Code = "Brazing"

	OperationPlanning   Code = "Operation_Planning"
	OperationMonitoring Code = "Operation_Monitoring"
	OperationControl    Code = "Operation_Control"

	QualityInspection Code = "Quality_Inspection"
	QualityControl    Code = "Quality_Control"
	QualityAssurance  Code = "Quality_Assurance"

	ProductionPlanning Code = "Production_Planning"
	ProductionTracking Code = "Production_Tracking"
	ProductionAnalysis Code = "Production_Analysis"
)

// Special menus.
const (
	All  Code = "ALL"
	AASX Code = "AASX"
)

// EquipmentMenus lists the equipment category in display order.
var EquipmentMenus = []Code{
	CO2, TIG, MIG, MAG, EBW, FW, OAW, PW, RSEW, RSW, SAW, SMAW, Sold, SW, UW,
	CNC,
	PressCutting, PressHydr, PressMechanicalType, PressServo,
	AMR, Boring, Robot,
}

var MaterialMenus = []Code{Steel, Aluminum, StainlessSteel}
var ProcessMenus = []Code{Welding, Cutting, Brazing}
var OperationMenus = []Code{OperationPlanning, OperationMonitoring, OperationControl}
var QualityMenus = []Code{QualityInspection, QualityControl, QualityAssurance}
var ProductionMenus = []Code{ProductionPlanning, ProductionTracking, ProductionAnalysis}

// Codes returns every classifiable menu in category order. The special
// menus are not included: ALL is synthetic and AASX is an upload surface,
// neither is keyword-matched.
func Codes() []Code {
	var all []Code
	all = append(all, EquipmentMenus...)
	all = append(all, MaterialMenus...)
	all = append(all, ProcessMenus...)
	all = append(all, OperationMenus...)
	all = append(all, QualityMenus...)
	all = append(all, ProductionMenus...)
	return all
}

// classifyKeywords match against the concatenated identifying attributes of
// a shell. Menus with an empty list are served by repository search only
// and never match during classification.
var classifyKeywords = map[Code][]string{
	CO2:  {"CO2Type"},
	TIG:  {"TungstenInsertGasType"},
	MIG:  {"MetalInsertGasType"},
	MAG:  {"MetalActiveGasType"},
	EBW:  {"ElectronBeamWeldingType"},
	FW:   {"FrictionWeldingType"},
	OAW:  {"OxyAcetyleneWeldingType"},
	PW:   {"ProjectionWeldingType"},
	RSEW: {"ResistanceSeamWeldingType"},
	RSW:  {"ResistanceSpotWeldingType"},
	SAW:  {"SubmergedArcWeldingType"},
	SMAW: {"ShieldedMetalArcWeldingType"},
	Sold: {"SolderingType"},
	SW:   {"StudWeldingType"},
	UW:   {"UltrasonicWeldingType"},

	CNC: {},

	PressCutting:        {"Shearing", "PressMachineShearing", "PressProcess/Shearing"},
	PressHydr:           {},
	PressMechanicalType: {},
	PressServo:          {},

	AMR:    {"HD1500", "LD90", "MD650", "AMR"},
	Boring: {"DBC130", "Boring"},
	Robot:  {"HH4", "Robot"},

	Steel:          {"Steel"},
	Aluminum:       {"Aluminum"},
	StainlessSteel: {"Stainless Steel"},

	Welding: {"Welding"},
	Cutting: {"Cutting"},
	Brazing: {"Brazing"},

	OperationPlanning:   {"Operation_Planning"},
	OperationMonitoring: {"Operation_Monitoring"},
	OperationControl:    {"Operation_Control"},

	QualityInspection: {"Quality_Inspection"},
	QualityControl:    {"Quality_Control"},
	QualityAssurance:  {"Quality_Assurance"},

	ProductionPlanning: {"Production_Planning"},
	ProductionTracking: {"Production_Tracking"},
	ProductionAnalysis: {"Production_Analysis"},
}

// excludedIdShorts are shells hidden from every menu. Note this list is
// shorter than the search-time filter in the tree package: cutoff machines
// do appear in menu listings.
var excludedIdShorts = map[string]bool{
	"component":    true,
	"safetydevice": true,
	"accessories":  true,
}

// IsExcluded reports whether a shell is an auxiliary entry hidden from
// menu listings and counts.
func IsExcluded(shell model.AssetAdministrationShell) bool {
	return excludedIdShorts[strings.TrimSpace(strings.ToLower(shell.IdShort))]
}

// searchText concatenates the attributes keyword matching runs over.
func searchText(shell model.AssetAdministrationShell) string {
	fields := []string{shell.ID, shell.IdShort, shell.GlobalAssetID(), shell.AssetKind()}
	for _, d := range shell.Description {
		fields = append(fields, d.Text)
	}
	nonEmpty := fields[:0]
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}

func matches(shell model.AssetAdministrationShell, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	text := searchText(shell)
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// Categories returns every menu the shell belongs to, in category order. A
// shell can belong to several menus: a steel-cutting press shows up under
// both its equipment menu and the material menu.
func Categories(shell model.AssetAdministrationShell) []Code {
	var categories []Code
	for _, code := range Codes() {
		if matches(shell, classifyKeywords[code]) {
			categories = append(categories, code)
		}
	}
	return categories
}

// Classification groups shells per menu and counts them. The ALL entry
// carries every non-excluded shell.
type Classification struct {
	Lists  map[Code][]model.AssetAdministrationShell
	Counts map[Code]int
}

// Classify partitions the shells over all menus in a single pass.
func Classify(shells []model.AssetAdministrationShell) Classification {
	c := Classification{
		Lists:  make(map[Code][]model.AssetAdministrationShell),
		Counts: make(map[Code]int),
	}
	for _, code := range Codes() {
		c.Lists[code] = []model.AssetAdministrationShell{}
		c.Counts[code] = 0
	}

	kept := make([]model.AssetAdministrationShell, 0, len(shells))
	for _, shell := range shells {
		if IsExcluded(shell) {
			continue
		}
		kept = append(kept, shell)
		for _, code := range Categories(shell) {
			c.Lists[code] = append(c.Lists[code], shell)
			c.Counts[code]++
		}
	}

	c.Lists[All] = kept
	c.Counts[All] = len(kept)
	return c
}

// FilterByMenu returns the shells belonging to one menu.
func FilterByMenu(shells []model.AssetAdministrationShell, code Code) []model.AssetAdministrationShell {
	return Classify(shells).Lists[code]
}

// displayNames maps codes to human-readable menu labels.
var displayNames = map[Code]string{
	CO2:  "CO2 Welding",
	TIG:  "TIG Welding",
	MIG:  "MIG Welding",
	MAG:  "MAG Welding",
	EBW:  "EBW Welding",
	FW:   "FW Welding",
	OAW:  "OAW Welding",
	PW:   "PW Welding",
	RSEW: "RSEW Welding",
	RSW:  "RSW Welding",
	SAW:  "SAW Welding",
	SMAW: "SMAW Welding",
	Sold: "Soldering",
	SW:   "SW Welding",
	UW:   "UW Welding",

	CNC: "CNC",

	PressCutting:        "Press Cutting",
	PressHydr:           "Press Hydr",
	PressMechanicalType: "Press Mechanical Type",
	PressServo:          "Press Servo",

	AMR:    "AMR",
	Boring: "Boring",
	Robot:  "Robot",

	Steel:          "Steel",
	Aluminum:       "Aluminum",
	StainlessSteel: "Stainless Steel",

	Welding: "Welding",
	Cutting: "Cutting",
	Brazing: "Brazing",

	OperationPlanning:   "Operation Planning",
	OperationMonitoring: "Operation Monitoring",
	OperationControl:    "Operation Control",

	QualityInspection: "Quality Inspection",
	QualityControl:    "Quality Control",
	QualityAssurance:  "Quality Assurance",

	ProductionPlanning: "Production Planning",
	ProductionTracking: "Production Tracking",
	ProductionAnalysis: "Production Analysis",

	All:  "All AAS Data",
	AASX: "AASX File Upload",
}

// DisplayName returns the label of a menu; unknown codes display as-is.
func DisplayName(code Code) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return string(code)
}
