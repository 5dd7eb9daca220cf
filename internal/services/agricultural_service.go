package services

import (
	"fmt"
	"log/slog"
	"math"

	"climate-service/internal/models"
)

const (
	baseYield    = 2.5 // tons/ha, average maize yield in Africa
	minYield     = 0.5 // tons/ha
	maxYield     = 6.0 // tons/ha
	techBaseYear = 2020
)

// agAssumptions holds the per-SSP agricultural development assumptions.
// TechGrowth compounds annually in the yield model; the rest is
// narrative context for the presentation layer.
var agAssumptions = map[models.SSPScenario]models.AgriculturalAssumption{
	models.SSP126: {
		TechGrowth:      0.02, // 2% annual yield improvement from technology
		WaterManagement: "efficient",
		FertilizerUse:   "moderate",
		Mechanization:   "medium",
		TradeOpenness:   "high",
		ConflictRisk:    "low",
	},
	models.SSP245: {
		TechGrowth:      0.015,
		WaterManagement: "moderate",
		FertilizerUse:   "high",
		Mechanization:   "medium",
		TradeOpenness:   "medium",
		ConflictRisk:    "medium",
	},
	models.SSP370: {
		TechGrowth:      0.008,
		WaterManagement: "poor",
		FertilizerUse:   "low",
		Mechanization:   "low",
		TradeOpenness:   "low",
		ConflictRisk:    "high",
	},
	models.SSP585: {
		TechGrowth:      0.025,
		WaterManagement: "high_tech",
		FertilizerUse:   "very_high",
		Mechanization:   "high",
		TradeOpenness:   "medium",
		ConflictRisk:    "medium",
	},
}

// regionModifiers scales the continental series to regional conditions.
var regionModifiers = map[models.Region]models.RegionModifier{
	models.WestAfrica:     {TempModifier: 1.0, PrecipModifier: 0.9},
	models.EastAfrica:     {TempModifier: 0.8, PrecipModifier: 0.7},
	models.SouthernAfrica: {TempModifier: 1.2, PrecipModifier: 0.6},
	models.CentralAfrica:  {TempModifier: 0.9, PrecipModifier: 1.1},
}

type AgriculturalService struct {
	climate IClimateService
}

type IAgriculturalService interface {
	BuildScenario(ssp models.SSPScenario, crop string, startYear, endYear, baselineStart, baselineEnd int) ([]models.ScenarioRecord, error)
	Assumption(ssp models.SSPScenario) (models.AgriculturalAssumption, error)
}

func NewAgriculturalService(climate IClimateService) IAgriculturalService {
	return &AgriculturalService{climate: climate}
}

// Assumption returns the agronomic assumption set for one SSP.
func (s *AgriculturalService) Assumption(ssp models.SSPScenario) (models.AgriculturalAssumption, error) {
	assumption, ok := agAssumptions[ssp]
	if !ok {
		return models.AgriculturalAssumption{}, fmt.Errorf("%w: %q", ErrUnknownScenario, ssp)
	}
	return assumption, nil
}

// BuildScenario produces the yield trajectory of one SSP for every
// region. The climate series is generated once with anomalies; region
// modifiers then scale the absolute temperature and precipitation (the
// anomalies stay continental) before the crop response is evaluated.
// Output is ordered region-major, year-minor, and inherits the
// generator's determinism.
func (s *AgriculturalService) BuildScenario(ssp models.SSPScenario, crop string, startYear, endYear, baselineStart, baselineEnd int) ([]models.ScenarioRecord, error) {
	assumption, err := s.Assumption(ssp)
	if err != nil {
		return nil, err
	}

	climate, err := s.climate.GenerateClimate(ssp, startYear, endYear)
	if err != nil {
		return nil, err
	}
	climate, err = s.climate.WithAnomalies(climate, baselineStart, baselineEnd)
	if err != nil {
		return nil, err
	}

	records := make([]models.ScenarioRecord, 0, len(climate)*len(models.AllRegions))
	for _, region := range models.AllRegions {
		mod := regionModifiers[region]
		for _, c := range climate {
			regional := c
			regional.Temperature *= mod.TempModifier
			regional.Precipitation *= mod.PrecipModifier
			records = append(records, models.ScenarioRecord{
				ClimateRecord: regional,
				Region:        region,
				CropType:      crop,
				Yield:         cropYield(regional.Temperature, regional.Precipitation, regional.Year, assumption.TechGrowth),
			})
		}
	}

	slog.Info("Built agricultural scenario",
		"scenario", ssp,
		"crop", crop,
		"regions", len(models.AllRegions),
		"records", len(records))

	return records, nil
}

// tempResponse is a downward parabola with its optimum at 25°C; above
// 30°C an extra linear heat penalty applies on top of the parabola
// term, giving a convexity kink at exactly 30°C.
func tempResponse(temperature float64) float64 {
	effect := 1.0 - 0.05*(temperature-25.0)*(temperature-25.0)
	if temperature > 30.0 {
		effect -= 0.1 * (temperature - 30.0)
	}
	return effect
}

// precipResponse is flat at 1.0 inside the 400-800 mm band and decays
// linearly with distance from 600 mm outside it. The curve jumps at the
// band edges (1.0 inside vs 0.8 just below 400); the jump is inherited
// from the calibrated response surface and kept as is.
func precipResponse(precipitation float64) float64 {
	if precipitation >= 400.0 && precipitation <= 800.0 {
		return 1.0
	}
	return 1.0 - 0.001*math.Abs(precipitation-600.0)
}

// cropYield combines the climate responses multiplicatively with
// compounding technological improvement and clamps the result to the
// realistic yield range.
func cropYield(temperature, precipitation float64, year int, techGrowth float64) float64 {
	techImprovement := math.Pow(1.0+techGrowth, float64(year-techBaseYear))

	y := baseYield * tempResponse(temperature) * precipResponse(precipitation) * techImprovement
	return math.Min(maxYield, math.Max(minYield, y))
}
