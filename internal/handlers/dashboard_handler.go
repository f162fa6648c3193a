package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "folio/internal/errors"
	"folio/internal/pagination"
	"folio/internal/services"
)

// ProjectionWindow is the default year range of the yearly projection chart.
type ProjectionWindow struct {
	From int
	To   int
}

// DashboardHandler serves the read side of the dashboard.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	window           ProjectionWindow
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer, window ProjectionWindow) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, window: window}
}

// GetDashboard handles retrieving the caller's dashboard snapshot.
// @Summary     Get dashboard
// @Description Enriched investments visible to the caller plus summary statistics. Breakdowns are sorted by total, largest first.
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Snapshot "Dashboard snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Investment references a missing product"
// @Failure     502 {object} ErrorResponse "Record store failure"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// GetYearlyProjection handles the yearly projection chart.
// @Summary     Get yearly projection
// @Description Sum of projected principal, yield and total value per year across the caller's visible investments
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       from query int false "First year (default 2025)"
// @Param       to   query int false "Last year (default 2029)"
// @Success     200 {array}  portfolio.YearlyTotal "Yearly totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/projections [get]
func (h *DashboardHandler) GetYearlyProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, err := queryInt(c, "from", h.window.From)
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := queryInt(c, "to", h.window.To)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.dashboardService.GetYearlyProjection(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "years": rows})
}

// ListInvestments handles listing the caller's enriched investments.
// @Summary     List investments
// @Description Paginated enriched investments visible to the caller
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[portfolio.EnrichedInvestment] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investments [get]
func (h *DashboardHandler) ListInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.dashboardService.ListInvestments(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProjections handles the full projection history of one investment.
// @Summary     Get investment projections
// @Description Every projection row of an investment, ascending by year
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {array}  models.PerformanceProjection "Projection history"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id}/projections [get]
func (h *DashboardHandler) GetProjections(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.dashboardService.GetProjections(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projections": rows})
}
