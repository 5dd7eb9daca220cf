package models

// ClimateRecord is one (scenario, year) observation of the synthetic
// climate trajectory. TempAnomaly and PrecipAnomaly are zero until the
// record passes through anomaly computation.
type ClimateRecord struct {
	Year          int         `json:"year"`
	Temperature   float64     `json:"temperature"`   // °C
	Precipitation float64     `json:"precipitation"` // mm/year, never below 200
	Scenario      SSPScenario `json:"scenario"`
	Forcing       float64     `json:"forcing"`        // W/m², copied from the catalog
	TempAnomaly   float64     `json:"temp_anomaly"`   // °C relative to baseline mean
	PrecipAnomaly float64     `json:"precip_anomaly"` // % relative to baseline mean
}

// ClimateProjectionRequest is the query contract for the climate
// projection endpoint. The baseline window is required: anomalies are
// undefined without it and the service never guesses one.
type ClimateProjectionRequest struct {
	SSP           string `form:"ssp" binding:"required"`
	StartYear     int    `form:"start_year" binding:"required,min=2020,max=2100"`
	EndYear       int    `form:"end_year" binding:"required,min=2020,max=2100"`
	BaselineStart int    `form:"baseline_start" binding:"required,min=1850,max=2100"`
	BaselineEnd   int    `form:"baseline_end" binding:"required,min=1850,max=2100"`
}

// AgriculturalScenarioRequest is the query contract for yield
// projections. SSPs is a comma-separated list; an empty selection is not
// an error and produces an empty result.
type AgriculturalScenarioRequest struct {
	SSPs          string `form:"ssps"`
	Crop          string `form:"crop"`
	StartYear     int    `form:"start_year" binding:"required,min=2020,max=2100"`
	EndYear       int    `form:"end_year" binding:"required,min=2020,max=2100"`
	BaselineStart int    `form:"baseline_start" binding:"required,min=1850,max=2100"`
	BaselineEnd   int    `form:"baseline_end" binding:"required,min=1850,max=2100"`
}

// ImpactAssessmentRequest extends the scenario request with the baseline
// scenario every other SSP is compared against.
type ImpactAssessmentRequest struct {
	AgriculturalScenarioRequest
	BaselineScenario string `form:"baseline_scenario"`
}