package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmap/internal/models/response_models"
	"tripmap/internal/services"
	"tripmap/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportPlanHandler godoc
// @Summary Export an itinerary as PDF
// @Description Render a travel plan into a downloadable PDF document
// @Tags Plan
// @Accept json
// @Produce application/pdf
// @Param request body response_models.TravelPlan true "Travel plan to render"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Router /plans/export [post]
func (e *ExportController) ExportPlanHandler(c *gin.Context) {
	var plan response_models.TravelPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel plan format")
		return
	}

	pdfBytes, err := e.exportService.RenderPDF(plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
