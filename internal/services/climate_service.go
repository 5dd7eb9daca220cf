package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"climate-service/internal/models"
)

// ErrEmptyBaseline is returned when no record falls inside the requested
// baseline window, leaving the anomaly reference undefined.
var ErrEmptyBaseline = errors.New("no records in baseline window")

const (
	// climateSeed makes every generation call reproducible. The generator
	// is constructed fresh per call, never shared, so concurrent or
	// repeated invocations cannot perturb each other's stream.
	climateSeed = 42

	baseTemperature   = 25.0  // °C, continental base for Africa
	basePrecipitation = 800.0 // mm/year
	minPrecipitation  = 200.0 // mm/year floor
	tempNoiseStdDev   = 0.5   // °C interannual variability
	precipNoiseStdDev = 50.0  // mm/year interannual variability
)

// warmingRates and precipTrends are the per-SSP trajectory parameters.
// They are deliberately separate from the display catalog: the forcing
// value there is descriptive, these drive the synthesis.
var warmingRates = map[models.SSPScenario]float64{ // °C/year
	models.SSP126: 0.01,
	models.SSP245: 0.02,
	models.SSP370: 0.03,
	models.SSP585: 0.04,
}

var precipTrends = map[models.SSPScenario]float64{ // mm/year
	models.SSP126: -0.5,
	models.SSP245: -1.0,
	models.SSP370: -2.0,
	models.SSP585: -3.0,
}

type ClimateService struct {
	catalog ICatalogService
}

type IClimateService interface {
	GenerateClimate(ssp models.SSPScenario, startYear, endYear int) ([]models.ClimateRecord, error)
	WithAnomalies(records []models.ClimateRecord, baselineStart, baselineEnd int) ([]models.ClimateRecord, error)
}

func NewClimateService(catalog ICatalogService) IClimateService {
	return &ClimateService{catalog: catalog}
}

// GenerateClimate synthesizes the yearly temperature and precipitation
// trajectory for one SSP. The synthetic series stands in for CMIP6
// ensemble data; downstream stages only depend on this contract, so a
// real data source can replace it without touching them.
func (s *ClimateService) GenerateClimate(ssp models.SSPScenario, startYear, endYear int) ([]models.ClimateRecord, error) {
	def, err := s.catalog.Definition(ssp)
	if err != nil {
		return nil, err
	}
	if endYear < startYear {
		return []models.ClimateRecord{}, nil
	}

	warmingRate := warmingRates[ssp]
	precipTrend := precipTrends[ssp]

	rng := rand.New(rand.NewSource(climateSeed))
	n := endYear - startYear + 1

	// Noise is drawn in two passes, temperature first, so the stream
	// consumed from the fixed seed is independent of how records are
	// assembled below.
	tempNoise := make([]float64, n)
	for i := range tempNoise {
		tempNoise[i] = rng.NormFloat64() * tempNoiseStdDev
	}
	precipNoise := make([]float64, n)
	for i := range precipNoise {
		precipNoise[i] = rng.NormFloat64() * precipNoiseStdDev
	}

	records := make([]models.ClimateRecord, 0, n)
	for i := 0; i < n; i++ {
		year := startYear + i
		temperature := baseTemperature + warmingRate*float64(i) + tempNoise[i]
		precipitation := math.Max(minPrecipitation, basePrecipitation+precipTrend*float64(i)+precipNoise[i])
		records = append(records, models.ClimateRecord{
			Year:          year,
			Temperature:   temperature,
			Precipitation: precipitation,
			Scenario:      ssp,
			Forcing:       def.Forcing,
		})
	}

	slog.Info("Generated climate series",
		"scenario", ssp,
		"start_year", startYear,
		"end_year", endYear,
		"records", len(records))

	return records, nil
}

// WithAnomalies fills the anomaly fields relative to the mean climate of
// the given baseline window. The window is an explicit parameter: if it
// does not overlap the supplied records the reference mean is undefined
// and the call fails rather than falling back silently.
func (s *ClimateService) WithAnomalies(records []models.ClimateRecord, baselineStart, baselineEnd int) ([]models.ClimateRecord, error) {
	var tempSum, precipSum float64
	baselineCount := 0
	for _, r := range records {
		if r.Year >= baselineStart && r.Year <= baselineEnd {
			tempSum += r.Temperature
			precipSum += r.Precipitation
			baselineCount++
		}
	}
	if baselineCount == 0 {
		return nil, fmt.Errorf("%w: %d-%d", ErrEmptyBaseline, baselineStart, baselineEnd)
	}

	baselineTemp := tempSum / float64(baselineCount)
	baselinePrecip := precipSum / float64(baselineCount)

	out := make([]models.ClimateRecord, len(records))
	for i, r := range records {
		r.TempAnomaly = r.Temperature - baselineTemp
		r.PrecipAnomaly = (r.Precipitation - baselinePrecip) / baselinePrecip * 100
		out[i] = r
	}

	slog.Info("Calculated climate anomalies",
		"baseline_start", baselineStart,
		"baseline_end", baselineEnd,
		"baseline_records", baselineCount,
		"baseline_temp", baselineTemp,
		"baseline_precip", baselinePrecip)

	return out, nil
}
