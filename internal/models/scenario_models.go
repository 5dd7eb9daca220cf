package models

// SSPScenario identifies one of the four Shared Socioeconomic Pathways
// used as the scenario axis throughout the service.
type SSPScenario string

const (
	SSP126 SSPScenario = "SSP1-2.6"
	SSP245 SSPScenario = "SSP2-4.5"
	SSP370 SSPScenario = "SSP3-7.0"
	SSP585 SSPScenario = "SSP5-8.5"
)

// AllScenarios lists the four SSPs in display order. The set is closed:
// it is never extended at runtime.
var AllScenarios = []SSPScenario{SSP126, SSP245, SSP370, SSP585}

// Region identifies one of the four African macro-regions covered by the
// agricultural scenarios.
type Region string

const (
	WestAfrica     Region = "West Africa"
	EastAfrica     Region = "East Africa"
	SouthernAfrica Region = "Southern Africa"
	CentralAfrica  Region = "Central Africa"
)

// AllRegions lists the covered regions in the order scenarios are built.
var AllRegions = []Region{WestAfrica, EastAfrica, SouthernAfrica, CentralAfrica}

// ScenarioDefinition describes one SSP for display purposes.
type ScenarioDefinition struct {
	ID          SSPScenario `json:"id"`
	Name        string      `json:"name"`
	Forcing     float64     `json:"forcing"` // radiative forcing, W/m²
	Description string      `json:"description"`
	Color       string      `json:"color"` // hex color for charts
}

// AgriculturalAssumption holds the per-SSP agronomic development
// assumptions. Only TechGrowth enters the yield computation; the ordinal
// indicators are carried for narrative display.
type AgriculturalAssumption struct {
	TechGrowth      float64 `json:"tech_growth"` // annual yield improvement, fractional
	WaterManagement string  `json:"water_management"`
	FertilizerUse   string  `json:"fertilizer_use"`
	Mechanization   string  `json:"mechanization"`
	TradeOpenness   string  `json:"trade_openness"`
	ConflictRisk    string  `json:"conflict_risk"`
}

// RegionModifier adjusts the continental climate series for a region.
// Both factors multiply absolute values, never anomalies.
type RegionModifier struct {
	TempModifier   float64 `json:"temp_modifier"`
	PrecipModifier float64 `json:"precip_modifier"`
}

// ScenarioRecord is one (scenario, region, year) row of an agricultural
// scenario: the regional climate plus the computed crop yield.
type ScenarioRecord struct {
	ClimateRecord
	Region   Region  `json:"region"`
	CropType string  `json:"crop_type"`
	Yield    float64 `json:"yield"` // tons/ha, clamped to [0.5, 6.0]
}
