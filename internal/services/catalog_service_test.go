package services

import (
	"testing"

	"climate-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDefinition_KnownScenarios(t *testing.T) {
	service := NewCatalogService()

	for _, ssp := range models.AllScenarios {
		def, err := service.Definition(ssp)

		assert.NoError(t, err)
		assert.Equal(t, ssp, def.ID)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.NotEmpty(t, def.Color)
		assert.Greater(t, def.Forcing, 0.0, "radiative forcing must be positive")
	}
}

func TestDefinition_ForcingValues(t *testing.T) {
	service := NewCatalogService()

	expected := map[models.SSPScenario]float64{
		models.SSP126: 2.6,
		models.SSP245: 4.5,
		models.SSP370: 7.0,
		models.SSP585: 8.5,
	}

	for ssp, forcing := range expected {
		def, err := service.Definition(ssp)
		assert.NoError(t, err)
		assert.Equal(t, forcing, def.Forcing)
	}
}

func TestDefinition_UnknownScenario(t *testing.T) {
	service := NewCatalogService()

	_, err := service.Definition("SSP4-6.0")

	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestListScenarios_CompleteAndOrdered(t *testing.T) {
	service := NewCatalogService()

	definitions := service.ListScenarios()

	assert.Len(t, definitions, 4, "the SSP catalog is a closed set of four")
	for i, def := range definitions {
		assert.Equal(t, models.AllScenarios[i], def.ID, "catalog must keep display order")
	}
}
