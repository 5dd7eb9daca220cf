package services

import (
	"climate-service/internal/models"
)

// agriculturalImplications is the narrative summary of what each pathway
// means for African farming systems.
var agriculturalImplications = map[models.SSPScenario][]string{
	models.SSP126: {
		"Sustainable intensification",
		"Organic farming growth",
		"Reduced food waste",
		"Plant-based diets",
	},
	models.SSP245: {
		"Moderate technological progress",
		"Mixed farming systems",
		"Gradual yield improvements",
	},
	models.SSP370: {
		"Low investment in agriculture",
		"Food insecurity risks",
		"Trade barriers",
		"Conflict impacts",
	},
	models.SSP585: {
		"High-input agriculture",
		"Technological solutions",
		"Energy-intensive systems",
		"Land use change",
	},
}

// adaptationStrategies lists the recommended adaptation priorities under
// each pathway.
var adaptationStrategies = map[models.SSPScenario][]string{
	models.SSP126: {
		"Invest in sustainable intensification",
		"Promote agroecological practices",
		"Develop climate-resilient crop varieties",
		"Enhance soil carbon sequestration",
		"Support smallholder innovation",
	},
	models.SSP245: {
		"Mixed adaptation portfolio",
		"Moderate irrigation expansion",
		"Improved fertilizer management",
		"Climate information services",
		"Risk transfer mechanisms",
	},
	models.SSP370: {
		"Focus on food security safety nets",
		"Emergency response capacity",
		"Conflict-sensitive adaptation",
		"Local seed systems preservation",
		"Community-based resilience",
	},
	models.SSP585: {
		"High-tech irrigation systems",
		"Precision agriculture technologies",
		"Genetic engineering investments",
		"Large-scale infrastructure",
		"Private sector engagement",
	},
}

// investmentPriorities are scenario-independent: they pay off under every
// pathway.
var investmentPriorities = []string{
	"Climate information services - early warning systems",
	"Drought-resistant varieties - genetic improvement programs",
	"Water management - efficient irrigation and rainwater harvesting",
	"Soil health - conservation agriculture and organic matter",
	"Market access - reduced post-harvest losses and better prices",
}

type InsightService struct {
	catalog      ICatalogService
	agricultural IAgriculturalService
}

type IInsightService interface {
	Insight(ssp models.SSPScenario) (models.PolicyInsight, error)
	InvestmentPriorities() []string
}

func NewInsightService(catalog ICatalogService, agricultural IAgriculturalService) IInsightService {
	return &InsightService{catalog: catalog, agricultural: agricultural}
}

// Insight assembles the narrative package for one SSP: its catalog
// definition, agronomic assumptions, implications and adaptation
// strategies.
func (s *InsightService) Insight(ssp models.SSPScenario) (models.PolicyInsight, error) {
	def, err := s.catalog.Definition(ssp)
	if err != nil {
		return models.PolicyInsight{}, err
	}
	assumption, err := s.agricultural.Assumption(ssp)
	if err != nil {
		return models.PolicyInsight{}, err
	}
	return models.PolicyInsight{
		Scenario:             ssp,
		Definition:           def,
		Assumption:           assumption,
		Implications:         agriculturalImplications[ssp],
		AdaptationStrategies: adaptationStrategies[ssp],
	}, nil
}

// InvestmentPriorities returns the cross-scenario investment areas.
func (s *InsightService) InvestmentPriorities() []string {
	return investmentPriorities
}
