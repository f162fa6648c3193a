package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "folio/internal/errors"
	"folio/internal/models"
	"folio/internal/schema"
	"folio/internal/services"
)

// InvestmentHandler handles investment mutations. Only super users get past
// the service's authorization check.
type InvestmentHandler struct {
	dashboardService services.DashboardServicer
	auditService     services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(dashboardService services.DashboardServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{dashboardService: dashboardService, auditService: auditService}
}

// CreateInvestmentRequest represents the request payload for creating an investment.
type CreateInvestmentRequest struct {
	UserID              string                  `json:"user_id" binding:"required"`
	ProductID           string                  `json:"product_id" binding:"required"`
	AmountInvested      float64                 `json:"amount_invested" binding:"required,gt=0,lte=1000000000000000"`
	Currency            string                  `json:"currency" binding:"required,iso4217"`
	USDEquivalent       float64                 `json:"usd_equivalent" binding:"omitempty,gt=0,lte=1000000000000000"`
	DetailsOfInvestment string                  `json:"details_of_investment" binding:"max=2000"`
	ExpectedYield       string                  `json:"expected_yield" binding:"max=500"`
	InvestmentType      string                  `json:"investment_type" binding:"max=100"`
	InvestmentDate      string                  `json:"investment_date" binding:"required,iso_date"`
	MaturityDate        *string                 `json:"maturity_date" binding:"omitempty,iso_date"`
	Status              models.InvestmentStatus `json:"status" binding:"omitempty,investment_status"`
	ContractPDF         string                  `json:"contract_pdf" binding:"required,url"`
}

func (r CreateInvestmentRequest) toModel() models.Investment {
	return models.Investment{
		UserID:              r.UserID,
		ProductID:           r.ProductID,
		AmountInvested:      r.AmountInvested,
		Currency:            r.Currency,
		USDEquivalent:       r.USDEquivalent,
		DetailsOfInvestment: r.DetailsOfInvestment,
		ExpectedYield:       r.ExpectedYield,
		InvestmentType:      r.InvestmentType,
		InvestmentDate:      r.InvestmentDate,
		MaturityDate:        r.MaturityDate,
		Status:              r.Status,
		ContractPDF:         r.ContractPDF,
	}
}

// UpdateInvestmentRequest represents a partial update. Absent fields are
// left unchanged; clear_maturity_date removes the maturity date.
type UpdateInvestmentRequest struct {
	UserID              *string                  `json:"user_id" binding:"omitempty,min=1"`
	ProductID           *string                  `json:"product_id" binding:"omitempty,min=1"`
	AmountInvested      *float64                 `json:"amount_invested" binding:"omitempty,gt=0,lte=1000000000000000"`
	Currency            *string                  `json:"currency" binding:"omitempty,iso4217"`
	USDEquivalent       *float64                 `json:"usd_equivalent" binding:"omitempty,gt=0,lte=1000000000000000"`
	DetailsOfInvestment *string                  `json:"details_of_investment" binding:"omitempty,max=2000"`
	ExpectedYield       *string                  `json:"expected_yield" binding:"omitempty,max=500"`
	InvestmentType      *string                  `json:"investment_type" binding:"omitempty,max=100"`
	InvestmentDate      *string                  `json:"investment_date" binding:"omitempty,iso_date"`
	MaturityDate        *string                  `json:"maturity_date" binding:"omitempty,iso_date"`
	ClearMaturityDate   bool                     `json:"clear_maturity_date"`
	Status              *models.InvestmentStatus `json:"status" binding:"omitempty,investment_status"`
	ContractPDF         *string                  `json:"contract_pdf" binding:"omitempty,url"`
}

func (r UpdateInvestmentRequest) toPatch() schema.InvestmentPatch {
	return schema.InvestmentPatch{
		UserID:              r.UserID,
		ProductID:           r.ProductID,
		AmountInvested:      r.AmountInvested,
		Currency:            r.Currency,
		USDEquivalent:       r.USDEquivalent,
		DetailsOfInvestment: r.DetailsOfInvestment,
		ExpectedYield:       r.ExpectedYield,
		InvestmentType:      r.InvestmentType,
		InvestmentDate:      r.InvestmentDate,
		MaturityDate:        r.MaturityDate,
		ClearMaturityDate:   r.ClearMaturityDate,
		Status:              r.Status,
		ContractPDF:         r.ContractPDF,
	}
}

// CreateInvestment handles creating an investment.
// @Summary     Create investment
// @Description Create an investment for any user. usd_equivalent is derived from the amount when omitted.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a super user"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Product not found"
// @Failure     422 {object} ErrorResponse "Schema validation failed"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.dashboardService.CreateInvestment(c.Request.Context(), userID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{"owner_id": investment.UserID, "product_id": investment.ProductID, "amount_invested": investment.AmountInvested})

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// UpdateInvestment handles a partial update of an investment.
// @Summary     Update investment
// @Description Update the supplied fields of an investment
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Fields to change"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a super user"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     422 {object} ErrorResponse "Schema validation failed"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investmentID := c.Param("id")
	investment, err := h.dashboardService.UpdateInvestment(c.Request.Context(), userID, investmentID, req.toPatch())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INVESTMENT", "investment", investmentID, c.ClientIP(), changedFields(req))

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// DeleteInvestment handles removing an investment and its projections.
// @Summary     Delete investment
// @Description Delete an investment together with its projection history
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} map[string]string "Investment deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a super user"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID := c.Param("id")
	if err := h.dashboardService.DeleteInvestment(c.Request.Context(), userID, investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INVESTMENT", "investment", investmentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}

// changedFields lists the keys an update touched, for the audit trail.
func changedFields(req UpdateInvestmentRequest) map[string]interface{} {
	out := map[string]interface{}{}
	set := func(key string, present bool) {
		if present {
			out[key] = true
		}
	}
	set("user_id", req.UserID != nil)
	set("product_id", req.ProductID != nil)
	set("amount_invested", req.AmountInvested != nil)
	set("currency", req.Currency != nil)
	set("usd_equivalent", req.USDEquivalent != nil)
	set("details_of_investment", req.DetailsOfInvestment != nil)
	set("expected_yield", req.ExpectedYield != nil)
	set("investment_type", req.InvestmentType != nil)
	set("investment_date", req.InvestmentDate != nil)
	set("maturity_date", req.MaturityDate != nil || req.ClearMaturityDate)
	set("status", req.Status != nil)
	set("contract_pdf", req.ContractPDF != nil)
	return out
}
