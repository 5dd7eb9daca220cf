package services

import (
	"errors"
	"fmt"

	"climate-service/internal/models"
)

// ErrUnknownScenario is returned when an SSP identifier is not one of the
// four catalogued pathways.
var ErrUnknownScenario = errors.New("unknown SSP scenario")

// sspDefinitions is the static scenario catalog. The four entries are the
// complete set; nothing is registered at runtime.
var sspDefinitions = map[models.SSPScenario]models.ScenarioDefinition{
	models.SSP126: {
		ID:          models.SSP126,
		Name:        "Sustainability",
		Forcing:     2.6,
		Description: "Green growth, low challenges",
		Color:       "#2E8B57", // SeaGreen
	},
	models.SSP245: {
		ID:          models.SSP245,
		Name:        "Middle Road",
		Forcing:     4.5,
		Description: "Historical patterns continue",
		Color:       "#FFA500", // Orange
	},
	models.SSP370: {
		ID:          models.SSP370,
		Name:        "Regional Rivalry",
		Forcing:     7.0,
		Description: "High challenges, fragmentation",
		Color:       "#DC143C", // Crimson
	},
	models.SSP585: {
		ID:          models.SSP585,
		Name:        "Fossil-fueled Development",
		Forcing:     8.5,
		Description: "Rapid growth, high emissions",
		Color:       "#8B0000", // DarkRed
	},
}

type CatalogService struct{}

type ICatalogService interface {
	Definition(ssp models.SSPScenario) (models.ScenarioDefinition, error)
	ListScenarios() []models.ScenarioDefinition
}

func NewCatalogService() ICatalogService {
	return &CatalogService{}
}

// Definition looks up one SSP definition.
func (s *CatalogService) Definition(ssp models.SSPScenario) (models.ScenarioDefinition, error) {
	def, ok := sspDefinitions[ssp]
	if !ok {
		return models.ScenarioDefinition{}, fmt.Errorf("%w: %q", ErrUnknownScenario, ssp)
	}
	return def, nil
}

// ListScenarios returns all four definitions in display order.
func (s *CatalogService) ListScenarios() []models.ScenarioDefinition {
	definitions := make([]models.ScenarioDefinition, 0, len(models.AllScenarios))
	for _, id := range models.AllScenarios {
		definitions = append(definitions, sspDefinitions[id])
	}
	return definitions
}
