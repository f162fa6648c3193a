package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"folio/internal/logger"
	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/pagination"
	"folio/internal/portfolio"
	"folio/internal/schema"
	"folio/internal/services"
	"folio/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// --- mock dashboard service ---

type mockDashboardService struct {
	getDashboardFn        func(ctx context.Context, userID string) (*services.Snapshot, error)
	listInvestmentsFn     func(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[portfolio.EnrichedInvestment], error)
	getProjectionsFn      func(ctx context.Context, userID, investmentID string) ([]models.PerformanceProjection, error)
	getYearlyProjectionFn func(ctx context.Context, userID string, from, to int) ([]portfolio.YearlyTotal, error)
	createInvestmentFn    func(ctx context.Context, userID string, inv models.Investment) (*models.Investment, error)
	updateInvestmentFn    func(ctx context.Context, userID, investmentID string, patch schema.InvestmentPatch) (*models.Investment, error)
	deleteInvestmentFn    func(ctx context.Context, userID, investmentID string) error
}

func (m *mockDashboardService) GetDashboard(ctx context.Context, userID string) (*services.Snapshot, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(ctx, userID)
	}
	return &services.Snapshot{}, nil
}

func (m *mockDashboardService) ListInvestments(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[portfolio.EnrichedInvestment], error) {
	if m.listInvestmentsFn != nil {
		return m.listInvestmentsFn(ctx, userID, page)
	}
	resp := pagination.NewPageResponse([]portfolio.EnrichedInvestment{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockDashboardService) GetProjections(ctx context.Context, userID, investmentID string) ([]models.PerformanceProjection, error) {
	if m.getProjectionsFn != nil {
		return m.getProjectionsFn(ctx, userID, investmentID)
	}
	return []models.PerformanceProjection{}, nil
}

func (m *mockDashboardService) GetYearlyProjection(ctx context.Context, userID string, from, to int) ([]portfolio.YearlyTotal, error) {
	if m.getYearlyProjectionFn != nil {
		return m.getYearlyProjectionFn(ctx, userID, from, to)
	}
	return []portfolio.YearlyTotal{}, nil
}

func (m *mockDashboardService) CreateInvestment(ctx context.Context, userID string, inv models.Investment) (*models.Investment, error) {
	if m.createInvestmentFn != nil {
		return m.createInvestmentFn(ctx, userID, inv)
	}
	return &inv, nil
}

func (m *mockDashboardService) UpdateInvestment(ctx context.Context, userID, investmentID string, patch schema.InvestmentPatch) (*models.Investment, error) {
	if m.updateInvestmentFn != nil {
		return m.updateInvestmentFn(ctx, userID, investmentID, patch)
	}
	return &models.Investment{Base: models.Base{ID: investmentID}}, nil
}

func (m *mockDashboardService) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	if m.deleteInvestmentFn != nil {
		return m.deleteInvestmentFn(ctx, userID, investmentID)
	}
	return nil
}

func (m *mockDashboardService) InvalidateAll() {}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

// --- mock user service ---

type mockUserService struct {
	getUserByIDFn    func(ctx context.Context, id string) (*models.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (*models.User, error)
	listUsersFn      func(ctx context.Context, actorID string) ([]models.User, error)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(ctx, email)
	}
	return &models.User{Email: email}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context, actorID string) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx, actorID)
	}
	return []models.User{}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- mock product service ---

type mockProductService struct {
	listProductsFn func(ctx context.Context) ([]models.Product, error)
}

func (m *mockProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx)
	}
	return []models.Product{}, nil
}

// --- mock projection service ---

type mockProjectionService struct {
	ingestFn func(ctx context.Context, rows []models.PerformanceProjection) (int, error)
}

func (m *mockProjectionService) IngestProjections(ctx context.Context, rows []models.PerformanceProjection) (int, error) {
	if m.ingestFn != nil {
		return m.ingestFn(ctx, rows)
	}
	return len(rows), nil
}

// --- mock audit service ---

type auditEntry struct {
	userID, action, resourceID string
	changes                    map[string]interface{}
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (m *mockAuditService) Log(userID, action, _, resourceID, _ string, changes map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{userID: userID, action: action, resourceID: resourceID, changes: changes})
}

// --- helpers ---

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
