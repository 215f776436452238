package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmap/internal/models/request_models"
	"tripmap/internal/services"
	"tripmap/pkg/utils"
)

const probeTimeout = 10 * time.Second

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlanHandler godoc
// @Summary Generate a travel itinerary
// @Description Produce a day-by-day travel plan for the given trip parameters
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.TravelRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse{data=response_models.TravelPlan}
// @Failure 400 {object} utils.APIResponse
// @Router /plans/generate [post]
func (p *PlanController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: days must be 1-30 and start_location is required")
		return
	}

	plan := p.planService.GeneratePlan(c.Request.Context(), req)

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

// HealthHandler reports service status plus the outcome of a connectivity
// probe against the chat endpoint. Always 200; the probe never gates anything.
func (p *PlanController) HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	llmStatus := "ok"
	if !p.planService.Probe(ctx) {
		llmStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "TripMap API",
		"llm":     llmStatus,
	})
}
