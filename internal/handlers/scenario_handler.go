package handlers

import (
	"errors"
	"net/http"

	"climate-service/internal/config"
	"climate-service/internal/models"
	"climate-service/internal/services"
	"climate-service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultWindowStart = 2050
	defaultWindowEnd   = 2070
)

type ScenarioHandler struct {
	cfg                 *config.ClimateServiceConfig
	catalogService      services.ICatalogService
	climateService      services.IClimateService
	agriculturalService services.IAgriculturalService
	impactService       services.IImpactService
	insightService      services.IInsightService
}

func NewScenarioHandler(
	cfg *config.ClimateServiceConfig,
	catalogService services.ICatalogService,
	climateService services.IClimateService,
	agriculturalService services.IAgriculturalService,
	impactService services.IImpactService,
	insightService services.IInsightService,
) *ScenarioHandler {
	return &ScenarioHandler{
		cfg:                 cfg,
		catalogService:      catalogService,
		climateService:      climateService,
		agriculturalService: agriculturalService,
		impactService:       impactService,
		insightService:      insightService,
	}
}

func (h *ScenarioHandler) RegisterRoutes(router *gin.Engine) {
	climateGroupPublic := router.Group("/climate/public/api/v1")
	climateGroupPublic.GET("/scenarios", h.ListScenarios)
	climateGroupPublic.GET("/projections", h.GetClimateProjections)
	climateGroupPublic.GET("/yields", h.GetYieldProjections)
	climateGroupPublic.GET("/impacts", h.GetImpacts)
	climateGroupPublic.GET("/vulnerability", h.GetVulnerability)
	climateGroupPublic.GET("/insights", h.ListPolicyInsights)
	climateGroupPublic.GET("/insights/:ssp", h.GetPolicyInsight)
}

// ListScenarios returns the SSP catalog for building selection UIs.
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	definitions := h.catalogService.ListScenarios()
	c.JSON(http.StatusOK, utils.CreateRecordsResponse(definitions, len(definitions)))
}

// GetClimateProjections returns the climate series of one SSP with
// anomalies against the requested baseline window.
func (h *ScenarioHandler) GetClimateProjections(c *gin.Context) {
	var req models.ClimateProjectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}
	if err := utils.ValidateWindow(req.StartYear, req.EndYear, "analysis"); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}
	if err := utils.ValidateWindow(req.BaselineStart, req.BaselineEnd, "baseline"); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}

	records, err := h.climateService.GenerateClimate(models.SSPScenario(req.SSP), req.StartYear, req.EndYear)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	records, err = h.climateService.WithAnomalies(records, req.BaselineStart, req.BaselineEnd)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateRecordsResponse(records, len(records)))
}

// GetYieldProjections returns agricultural scenario records for each
// selected SSP across all regions. An empty selection returns empty
// data, not an error.
func (h *ScenarioHandler) GetYieldProjections(c *gin.Context) {
	var req models.AgriculturalScenarioRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}

	records, err := h.buildScenarios(req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateRecordsResponse(records, len(records)))
}

// GetImpacts runs the pipeline through impact computation against the
// baseline scenario.
func (h *ScenarioHandler) GetImpacts(c *gin.Context) {
	var req models.ImpactAssessmentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}

	impacts, err := h.computeImpacts(req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateRecordsResponse(impacts, len(impacts)))
}

// GetVulnerability runs the full pipeline down to the vulnerability
// summaries over the assessment window.
func (h *ScenarioHandler) GetVulnerability(c *gin.Context) {
	var req models.ImpactAssessmentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}

	windowStart, err := utils.GetQueryParamAsInt(c, "window_start", defaultWindowStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}
	windowEnd, err := utils.GetQueryParamAsInt(c, "window_end", defaultWindowEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}
	if err := utils.ValidateWindow(windowStart, windowEnd, "assessment"); err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
		return
	}

	impacts, err := h.computeImpacts(req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	summaries := h.impactService.AssessVulnerability(impacts, windowStart, windowEnd)

	analysisID := uuid.New().String()
	c.JSON(http.StatusOK, utils.CreateAnalysisResponse(summaries, len(summaries), analysisID))
}

// ListPolicyInsights returns the narrative package of every SSP plus the
// scenario-independent investment priorities.
func (h *ScenarioHandler) ListPolicyInsights(c *gin.Context) {
	insights := make([]models.PolicyInsight, 0, len(models.AllScenarios))
	for _, ssp := range models.AllScenarios {
		insight, err := h.insightService.Insight(ssp)
		if err != nil {
			h.respondServiceError(c, err)
			return
		}
		insights = append(insights, insight)
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"scenarios":             insights,
		"investment_priorities": h.insightService.InvestmentPriorities(),
	}))
}

// GetPolicyInsight returns the narrative package of one SSP.
func (h *ScenarioHandler) GetPolicyInsight(c *gin.Context) {
	insight, err := h.insightService.Insight(models.SSPScenario(c.Param("ssp")))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(insight))
}

func (h *ScenarioHandler) buildScenarios(req models.AgriculturalScenarioRequest) ([]models.ScenarioRecord, error) {
	if err := utils.ValidateWindow(req.StartYear, req.EndYear, "analysis"); err != nil {
		return nil, err
	}
	if err := utils.ValidateWindow(req.BaselineStart, req.BaselineEnd, "baseline"); err != nil {
		return nil, err
	}

	crop := req.Crop
	if crop == "" {
		crop = h.cfg.DefaultCrop
	}

	records := []models.ScenarioRecord{}
	for _, ssp := range utils.SplitCSVParam(req.SSPs) {
		scenarioRecords, err := h.agriculturalService.BuildScenario(
			models.SSPScenario(ssp), crop, req.StartYear, req.EndYear, req.BaselineStart, req.BaselineEnd)
		if err != nil {
			return nil, err
		}
		records = append(records, scenarioRecords...)
	}
	return records, nil
}

func (h *ScenarioHandler) computeImpacts(req models.ImpactAssessmentRequest) ([]models.ImpactRecord, error) {
	records, err := h.buildScenarios(req.AgriculturalScenarioRequest)
	if err != nil {
		return nil, err
	}

	baseline := req.BaselineScenario
	if baseline == "" {
		baseline = h.cfg.BaselineScenario
	}

	return h.impactService.ComputeImpacts(records, models.SSPScenario(baseline))
}

func (h *ScenarioHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownScenario):
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("Unknown scenario", err.Error()))
	case errors.Is(err, services.ErrEmptyBaseline):
		c.JSON(http.StatusUnprocessableEntity, utils.CreateErrorResponse("Empty baseline", err.Error()))
	case errors.Is(err, services.ErrNoBaselineData):
		c.JSON(http.StatusUnprocessableEntity, utils.CreateErrorResponse("No baseline data", err.Error()))
	default:
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("Bad Request", err.Error()))
	}
}
