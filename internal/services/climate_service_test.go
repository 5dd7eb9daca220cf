package services

import (
	"testing"

	"climate-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClimateService() IClimateService {
	return NewClimateService(NewCatalogService())
}

// ============================================================================
// GENERATION
// ============================================================================

func TestGenerateClimate_Deterministic(t *testing.T) {
	service := newTestClimateService()

	for _, ssp := range models.AllScenarios {
		first, err := service.GenerateClimate(ssp, 2020, 2100)
		require.NoError(t, err)
		second, err := service.GenerateClimate(ssp, 2020, 2100)
		require.NoError(t, err)

		assert.Equal(t, first, second, "identical inputs must reproduce the series bit-for-bit")
	}
}

func TestGenerateClimate_SeparateScenarioStreams(t *testing.T) {
	service := newTestClimateService()

	// Generating another scenario in between must not perturb the stream.
	first, err := service.GenerateClimate(models.SSP126, 2020, 2100)
	require.NoError(t, err)
	_, err = service.GenerateClimate(models.SSP585, 2020, 2100)
	require.NoError(t, err)
	second, err := service.GenerateClimate(models.SSP126, 2020, 2100)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateClimate_RecordFields(t *testing.T) {
	service := newTestClimateService()

	records, err := service.GenerateClimate(models.SSP245, 2020, 2100)
	require.NoError(t, err)

	require.Len(t, records, 81)
	for i, r := range records {
		assert.Equal(t, 2020+i, r.Year, "records must be ordered by year")
		assert.Equal(t, models.SSP245, r.Scenario)
		assert.Equal(t, 4.5, r.Forcing, "forcing is copied from the catalog")
		assert.Zero(t, r.TempAnomaly, "anomalies are filled by a separate pass")
		assert.Zero(t, r.PrecipAnomaly)
	}
}

func TestGenerateClimate_PrecipitationFloor(t *testing.T) {
	service := newTestClimateService()

	for _, ssp := range models.AllScenarios {
		records, err := service.GenerateClimate(ssp, 2020, 2100)
		require.NoError(t, err)

		for _, r := range records {
			assert.GreaterOrEqual(t, r.Precipitation, 200.0,
				"precipitation is floored at 200 mm/year")
		}
	}
}

func TestGenerateClimate_WarmingTrend(t *testing.T) {
	service := newTestClimateService()

	records, err := service.GenerateClimate(models.SSP585, 2020, 2100)
	require.NoError(t, err)

	var early, late float64
	for _, r := range records[:10] {
		early += r.Temperature
	}
	for _, r := range records[len(records)-10:] {
		late += r.Temperature
	}

	// 0.04 °C/year over 80 years dwarfs the 0.5 °C noise.
	assert.Greater(t, late/10, early/10+1.0,
		"high-emission pathway must warm substantially by 2100")
}

func TestGenerateClimate_UnknownScenario(t *testing.T) {
	service := newTestClimateService()

	_, err := service.GenerateClimate("RCP8.5", 2020, 2100)

	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestGenerateClimate_EmptyRange(t *testing.T) {
	service := newTestClimateService()

	records, err := service.GenerateClimate(models.SSP126, 2050, 2040)

	assert.NoError(t, err)
	assert.Empty(t, records, "an inverted range degrades to an empty series")
}

// ============================================================================
// ANOMALIES
// ============================================================================

func TestWithAnomalies_AgainstCustomBaseline(t *testing.T) {
	service := newTestClimateService()

	records, err := service.GenerateClimate(models.SSP585, 2020, 2030)
	require.NoError(t, err)

	withAnomalies, err := service.WithAnomalies(records, 2020, 2025)
	require.NoError(t, err)
	require.Len(t, withAnomalies, len(records))

	var tempSum, precipSum float64
	for _, r := range records[:6] { // 2020..2025 inclusive
		tempSum += r.Temperature
		precipSum += r.Precipitation
	}
	baselineTemp := tempSum / 6
	baselinePrecip := precipSum / 6

	assert.InDelta(t, records[0].Temperature-baselineTemp, withAnomalies[0].TempAnomaly, 1e-9)
	assert.InDelta(t, (records[0].Precipitation-baselinePrecip)/baselinePrecip*100,
		withAnomalies[0].PrecipAnomaly, 1e-9)
}

func TestWithAnomalies_PreservesObservations(t *testing.T) {
	service := newTestClimateService()

	records, err := service.GenerateClimate(models.SSP245, 2020, 2040)
	require.NoError(t, err)

	withAnomalies, err := service.WithAnomalies(records, 2020, 2030)
	require.NoError(t, err)

	for i := range records {
		assert.Equal(t, records[i].Temperature, withAnomalies[i].Temperature)
		assert.Equal(t, records[i].Precipitation, withAnomalies[i].Precipitation)
		// Input records stay untouched.
		assert.Zero(t, records[i].TempAnomaly)
	}
}

func TestWithAnomalies_SingleYearOverlap(t *testing.T) {
	service := newTestClimateService()

	records, err := service.GenerateClimate(models.SSP245, 2020, 2100)
	require.NoError(t, err)

	// The conventional 1991-2020 reference window overlaps the generated
	// range in exactly one year; that year alone defines the baseline.
	withAnomalies, err := service.WithAnomalies(records, 1991, 2020)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, withAnomalies[0].TempAnomaly, 1e-9,
		"2020 is its own baseline, so its anomaly is zero")
	assert.InDelta(t, 0.0, withAnomalies[0].PrecipAnomaly, 1e-9)
}

func TestWithAnomalies_EmptyBaseline(t *testing.T) {
	service := newTestClimateService()

	records, err := service.GenerateClimate(models.SSP126, 2030, 2050)
	require.NoError(t, err)

	_, err = service.WithAnomalies(records, 1991, 2020)

	assert.ErrorIs(t, err, ErrEmptyBaseline,
		"a baseline window with no records must fail, never fall back silently")
}
