package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"climate-service/internal/models"
)

// ErrNoBaselineData is returned when the requested baseline scenario has
// no rows in the impact input.
var ErrNoBaselineData = errors.New("baseline scenario not present in input")

type ImpactService struct{}

type IImpactService interface {
	ComputeImpacts(records []models.ScenarioRecord, baselineID models.SSPScenario) ([]models.ImpactRecord, error)
	AssessVulnerability(impacts []models.ImpactRecord, windowStart, windowEnd int) []models.VulnerabilitySummary
}

func NewImpactService() IImpactService {
	return &ImpactService{}
}

type joinKey struct {
	Year   int
	Region models.Region
}

// ComputeImpacts compares every non-baseline scenario against the
// baseline scenario, inner-joined on (year, region). Rows without a
// baseline counterpart are dropped, not reported: a partial baseline
// simply narrows the comparison. The baseline scenario itself never
// appears in the output.
func (s *ImpactService) ComputeImpacts(records []models.ScenarioRecord, baselineID models.SSPScenario) ([]models.ImpactRecord, error) {
	if len(records) == 0 {
		return []models.ImpactRecord{}, nil
	}

	baseline := make(map[joinKey]models.ScenarioRecord)
	var scenarioOrder []models.SSPScenario
	seen := make(map[models.SSPScenario]bool)
	for _, r := range records {
		if r.Scenario == baselineID {
			baseline[joinKey{r.Year, r.Region}] = r
			continue
		}
		if !seen[r.Scenario] {
			seen[r.Scenario] = true
			scenarioOrder = append(scenarioOrder, r.Scenario)
		}
	}
	if len(baseline) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoBaselineData, baselineID)
	}

	impacts := make([]models.ImpactRecord, 0, len(records))
	dropped := 0
	for _, ssp := range scenarioOrder {
		for _, r := range records {
			if r.Scenario != ssp {
				continue
			}
			b, ok := baseline[joinKey{r.Year, r.Region}]
			if !ok {
				dropped++
				continue
			}
			yieldImpact := r.Yield - b.Yield
			impacts = append(impacts, models.ImpactRecord{
				Year:             r.Year,
				Region:           r.Region,
				Scenario:         r.Scenario,
				CropType:         r.CropType,
				Yield:            r.Yield,
				BaselineYield:    b.Yield,
				YieldImpact:      yieldImpact,
				YieldImpactPct:   yieldImpact / b.Yield * 100,
				TempChange:       r.Temperature - b.Temperature,
				PrecipChange:     r.Precipitation - b.Precipitation,
				BaselineScenario: baselineID,
			})
		}
	}

	slog.Info("Computed scenario impacts",
		"baseline", baselineID,
		"scenarios", len(scenarioOrder),
		"impacts", len(impacts),
		"dropped_unmatched", dropped)

	return impacts, nil
}

type vulnerabilityAccumulator struct {
	yieldImpactPctSum float64
	tempChangeSum     float64
	precipChangeSum   float64
	count             int
}

// AssessVulnerability aggregates impacts over the assessment window
// (inclusive on both ends), grouped by (region, scenario), and classifies
// each group's mean relative yield impact into an ordinal tier.
func (s *ImpactService) AssessVulnerability(impacts []models.ImpactRecord, windowStart, windowEnd int) []models.VulnerabilitySummary {
	type groupKey struct {
		Region   models.Region
		Scenario models.SSPScenario
	}

	groups := make(map[groupKey]*vulnerabilityAccumulator)
	for _, imp := range impacts {
		if imp.Year < windowStart || imp.Year > windowEnd {
			continue
		}
		key := groupKey{imp.Region, imp.Scenario}
		acc, ok := groups[key]
		if !ok {
			acc = &vulnerabilityAccumulator{}
			groups[key] = acc
		}
		acc.yieldImpactPctSum += imp.YieldImpactPct
		acc.tempChangeSum += imp.TempChange
		acc.precipChangeSum += imp.PrecipChange
		acc.count++
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Region != keys[j].Region {
			return keys[i].Region < keys[j].Region
		}
		return keys[i].Scenario < keys[j].Scenario
	})

	summaries := make([]models.VulnerabilitySummary, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		n := float64(acc.count)
		meanImpactPct := acc.yieldImpactPctSum / n
		summaries = append(summaries, models.VulnerabilitySummary{
			Region:             key.Region,
			Scenario:           key.Scenario,
			MeanYieldImpactPct: meanImpactPct,
			MeanTempChange:     acc.tempChangeSum / n,
			MeanPrecipChange:   acc.precipChangeSum / n,
			VulnerabilityLevel: classifyVulnerability(meanImpactPct),
		})
	}

	slog.Info("Assessed regional vulnerability",
		"window_start", windowStart,
		"window_end", windowEnd,
		"groups", len(summaries))

	return summaries
}

// classifyVulnerability bins a mean yield impact percentage into the
// ordinal tiers using left-open/right-closed intervals:
// (-100,-20] Extreme, (-20,-10] High, (-10,-5] Medium, (-5,5] Low,
// (5,100] Beneficial. A value on a boundary lands in the more severe
// tier. Values beyond ±100 clamp to the nearest tier rather than fail,
// so a degenerate baseline yield cannot take down a whole assessment.
func classifyVulnerability(meanYieldImpactPct float64) models.VulnerabilityLevel {
	switch {
	case meanYieldImpactPct <= -20:
		return models.VulnerabilityExtreme
	case meanYieldImpactPct <= -10:
		return models.VulnerabilityHigh
	case meanYieldImpactPct <= -5:
		return models.VulnerabilityMedium
	case meanYieldImpactPct <= 5:
		return models.VulnerabilityLow
	default:
		return models.VulnerabilityBeneficial
	}
}
