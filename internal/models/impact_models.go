package models

// ImpactRecord pairs one non-baseline scenario row with the baseline row
// sharing the same (year, region) and carries the derived deltas.
type ImpactRecord struct {
	Year             int         `json:"year"`
	Region           Region      `json:"region"`
	Scenario         SSPScenario `json:"scenario"`
	CropType         string      `json:"crop_type"`
	Yield            float64     `json:"yield"`          // tons/ha under the scenario
	BaselineYield    float64     `json:"baseline_yield"` // tons/ha under the baseline scenario
	YieldImpact      float64     `json:"yield_impact"`   // tons/ha, signed
	YieldImpactPct   float64     `json:"yield_impact_pct"`
	TempChange       float64     `json:"temp_change"`   // °C vs baseline scenario
	PrecipChange     float64     `json:"precip_change"` // mm/year vs baseline scenario
	BaselineScenario SSPScenario `json:"baseline_scenario"`
}

// VulnerabilityLevel is the ordinal classification of a region-scenario's
// mean relative yield impact.
type VulnerabilityLevel string

const (
	VulnerabilityExtreme    VulnerabilityLevel = "Extreme"
	VulnerabilityHigh       VulnerabilityLevel = "High"
	VulnerabilityMedium     VulnerabilityLevel = "Medium"
	VulnerabilityLow        VulnerabilityLevel = "Low"
	VulnerabilityBeneficial VulnerabilityLevel = "Beneficial"
)

// VulnerabilitySummary aggregates impacts for one (region, scenario)
// group over the assessment window.
type VulnerabilitySummary struct {
	Region             Region             `json:"region"`
	Scenario           SSPScenario        `json:"scenario"`
	MeanYieldImpactPct float64            `json:"mean_yield_impact_pct"`
	MeanTempChange     float64            `json:"mean_temp_change"`   // °C
	MeanPrecipChange   float64            `json:"mean_precip_change"` // mm/year
	VulnerabilityLevel VulnerabilityLevel `json:"vulnerability_level"`
}

// PolicyInsight is the narrative guidance attached to one SSP: the
// agricultural implications of the pathway and the adaptation strategies
// recommended under it.
type PolicyInsight struct {
	Scenario             SSPScenario            `json:"scenario"`
	Definition           ScenarioDefinition     `json:"definition"`
	Assumption           AgriculturalAssumption `json:"assumption"`
	Implications         []string               `json:"implications"`
	AdaptationStrategies []string               `json:"adaptation_strategies"`
}
