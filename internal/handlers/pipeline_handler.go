package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "folio/internal/errors"
	"folio/internal/models"
	"folio/internal/services"
)

// PipelineHandler accepts projection rows from an external forecasting job.
type PipelineHandler struct {
	projectionService services.ProjectionServicer
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(projectionService services.ProjectionServicer) *PipelineHandler {
	return &PipelineHandler{projectionService: projectionService}
}

// IngestProjectionsRequest represents the request payload for bulk projection ingestion.
type IngestProjectionsRequest struct {
	Projections []ProjectionEntry `json:"projections" binding:"required,min=1,dive"`
}

// ProjectionEntry represents a single projection row in a bulk request.
type ProjectionEntry struct {
	InvestmentID    string  `json:"investment_id" binding:"required"`
	Year            int     `json:"year" binding:"required,min=2020,max=2100"`
	PrincipalAmount float64 `json:"principal_amount" binding:"gte=0,lte=1000000000000000"`
	YieldAmount     float64 `json:"yield_amount" binding:"gte=0,lte=1000000000000000"`
	TotalValue      float64 `json:"total_value" binding:"gte=0,lte=1000000000000000"`
}

// IngestProjections handles bulk upsert of projection rows.
// @Summary     Ingest projections
// @Description Upsert projection rows on (investment_id, year) (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body IngestProjectionsRequest true "Projection rows"
// @Success     200 {object} map[string]int "Rows written"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     422 {object} ErrorResponse "Schema validation failed"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /pipeline/projections [post]
func (h *PipelineHandler) IngestProjections(c *gin.Context) {
	var req IngestProjectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rows := make([]models.PerformanceProjection, len(req.Projections))
	for i, p := range req.Projections {
		rows[i] = models.PerformanceProjection{
			InvestmentID:    p.InvestmentID,
			Year:            p.Year,
			PrincipalAmount: p.PrincipalAmount,
			YieldAmount:     p.YieldAmount,
			TotalValue:      p.TotalValue,
		}
	}

	written, err := h.projectionService.IngestProjections(c.Request.Context(), rows)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"written": written})
}
