package services

import (
	"context"

	"folio/internal/models"
	"folio/internal/pagination"
	"folio/internal/portfolio"
	"folio/internal/schema"
)

// UserServicer defines the contract for user lookups.
type UserServicer interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, actorID string) ([]models.User, error)
}

// ProductServicer defines the contract for product reference data.
type ProductServicer interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// DashboardServicer defines the contract for the per-user dashboard. Every
// method resolves userID to a user and works on that user's session.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, userID string) (*Snapshot, error)
	ListInvestments(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[portfolio.EnrichedInvestment], error)
	GetProjections(ctx context.Context, userID, investmentID string) ([]models.PerformanceProjection, error)
	GetYearlyProjection(ctx context.Context, userID string, from, to int) ([]portfolio.YearlyTotal, error)
	CreateInvestment(ctx context.Context, userID string, inv models.Investment) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, userID, investmentID string, patch schema.InvestmentPatch) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, userID, investmentID string) error
	InvalidateAll()
}

// ProjectionServicer defines the contract for external projection ingestion.
type ProjectionServicer interface {
	IngestProjections(ctx context.Context, rows []models.PerformanceProjection) (int, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
