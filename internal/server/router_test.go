package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"folio/internal/fx"
	"folio/internal/handlers"
	"folio/internal/logger"
	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/seed"
	"folio/internal/services"
	"folio/internal/store"
	"folio/internal/testutil"
	"folio/internal/validator"
)

const (
	testSecret = "router-test-secret"
	testAPIKey = "router-test-key"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// testApp holds the full application stack for router tests.
type testApp struct {
	Router *gin.Engine
	Repo   *store.Repository
}

func setupApp(t *testing.T, s store.Store) *testApp {
	t.Helper()
	repo := store.NewRepository(s)
	if _, err := seed.Load(context.Background(), repo, seed.Demo()); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	deps := NewDependencies(repo, nil, services.SessionConfig{ReferenceYear: 2026, Converter: fx.NewFixedMultiplier(1.2)})
	deps.JWTSecret = testSecret
	deps.PipelineAPIKey = testAPIKey
	deps.Window = handlers.ProjectionWindow{From: 2025, To: 2029}
	deps.EnableSwagger = true
	return &testApp{Router: NewRouter(deps), Repo: repo}
}

func (a *testApp) token(t *testing.T, userID string) string {
	t.Helper()
	u, err := a.Repo.GetUser(context.Background(), userID)
	if err != nil || u == nil {
		t.Fatalf("user %s not found: %v", userID, err)
	}
	tok, err := middleware.GenerateAccessToken(u, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return tok
}

func (a *testApp) do(t *testing.T, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)

	var result map[string]interface{}
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse response: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec.Code, result
}

func (a *testApp) pipeline(t *testing.T, key, body string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/projections", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec.Code
}

func stats(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	s, ok := body["stats"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected stats in %v", body)
	}
	return s
}

func TestHealth(t *testing.T) {
	app := setupApp(t, store.NewMemory())
	code, body := app.do(t, "GET", "/api/health", "", "")
	if code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("unexpected health %d %v", code, body)
	}

	deps := RouterDependencies{Health: func(context.Context) error { return errors.New("down") }}
	r := NewRouter(deps)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", http.NoBody))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 when probe fails, got %d", rec.Code)
	}
}

func TestSwaggerDoc(t *testing.T) {
	app := setupApp(t, store.NewMemory())
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/swagger/doc.json", http.NoBody))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/dashboard/projections") {
		t.Error("expected dashboard routes in swagger doc")
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t, store.NewMemory())
	for _, path := range []string{"/api/v1/dashboard", "/api/v1/investments", "/api/v1/products", "/api/v1/profile"} {
		code, _ := app.do(t, "GET", path, "", "")
		if code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, code)
		}
	}
}

func TestNormalUserDashboard(t *testing.T) {
	app := setupApp(t, store.NewMemory())
	tok := app.token(t, "user-1")

	code, body := app.do(t, "GET", "/api/v1/dashboard", tok, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", code, body)
	}
	s := stats(t, body)
	testutil.AssertAmount(t, "total invested", s["total_invested_usd"].(float64), 241260)
	testutil.AssertAmount(t, "expected yield", s["total_expected_yield"].(float64), 21420)
	if len(body["investments"].([]interface{})) != 8 {
		t.Errorf("expected 8 investments")
	}
	first := s["category_breakdown"].([]interface{})[0].(map[string]interface{})
	if first["key"] != "Loan Notes" {
		t.Errorf("expected Loan Notes first, got %v", first["key"])
	}

	code, body = app.do(t, "GET", "/api/v1/investments/inv-9/projections", tok, "")
	if code != http.StatusNotFound {
		t.Errorf("expected other user's investment hidden, got %d %v", code, body)
	}

	code, _ = app.do(t, "GET", "/api/v1/users", tok, "")
	if code != http.StatusForbidden {
		t.Errorf("expected 403 listing users, got %d", code)
	}

	code, body = app.do(t, "POST", "/api/v1/investments", tok, `{"user_id":"user-1","product_id":"prod-1","amount_invested":100,"currency":"USD","investment_date":"2025-01-01","contract_pdf":"https://example.com/c.pdf"}`)
	if code != http.StatusForbidden {
		t.Errorf("expected 403 creating investment, got %d %v", code, body)
	}
}

func TestYearlyProjectionWindow(t *testing.T) {
	app := setupApp(t, store.NewMemory())
	tok := app.token(t, "user-2")

	code, body := app.do(t, "GET", "/api/v1/dashboard/projections", tok, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", code, body)
	}
	years := body["years"].([]interface{})
	want := map[float64]float64{2025: 4300, 2026: 94600, 2027: 57500}
	if len(years) != len(want) {
		t.Fatalf("expected %d years, got %v", len(want), years)
	}
	for _, y := range years {
		row := y.(map[string]interface{})
		testutil.AssertAmount(t, "year total", row["total_value"].(float64), want[row["year"].(float64)])
	}

	code, _ = app.do(t, "GET", "/api/v1/dashboard/projections?from=2029&to=2025", tok, "")
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for inverted range, got %d", code)
	}
}

func TestSuperUserLifecycle(t *testing.T) {
	app := setupApp(t, store.NewMemory())
	admin := app.token(t, "super-1")
	owner := app.token(t, "user-2")

	// Prime the owner's session so the mutation has something to invalidate.
	_, body := app.do(t, "GET", "/api/v1/dashboard", owner, "")
	if n := stats(t, body)["investment_count"]; n != float64(2) {
		t.Fatalf("expected 2 investments, got %v", n)
	}

	code, body := app.do(t, "POST", "/api/v1/investments", admin, `{
		"user_id": "user-2",
		"product_id": "prod-5",
		"amount_invested": 10000,
		"currency": "GBP",
		"investment_date": "2025-09-01",
		"investment_type": "Buy and Hold",
		"contract_pdf": "https://example.com/contracts/new.pdf"
	}`)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", code, body)
	}
	created := body["investment"].(map[string]interface{})
	testutil.AssertAmount(t, "usd equivalent", created["usd_equivalent"].(float64), 12000)
	if created["status"] != string(models.InvestmentStatusActive) {
		t.Errorf("expected default status active, got %v", created["status"])
	}
	newID := created["id"].(string)

	_, body = app.do(t, "GET", "/api/v1/dashboard", owner, "")
	if n := stats(t, body)["investment_count"]; n != float64(3) {
		t.Errorf("expected owner to see 3 investments, got %v", n)
	}

	code, body = app.do(t, "PUT", "/api/v1/investments/"+newID, admin, `{"status":"matured"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", code, body)
	}
	if body["investment"].(map[string]interface{})["status"] != "matured" {
		t.Errorf("expected matured, got %v", body["investment"])
	}

	code, _ = app.do(t, "PUT", "/api/v1/investments/"+newID, admin, `{}`)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty patch, got %d", code)
	}

	code, _ = app.do(t, "DELETE", "/api/v1/investments/"+newID, admin, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	code, _ = app.do(t, "DELETE", "/api/v1/investments/"+newID, admin, "")
	if code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", code)
	}

	_, body = app.do(t, "GET", "/api/v1/dashboard", owner, "")
	if n := stats(t, body)["investment_count"]; n != float64(2) {
		t.Errorf("expected owner back to 2 investments, got %v", n)
	}

	code, body = app.do(t, "GET", "/api/v1/users", admin, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if users := body["users"].([]interface{}); len(users) != 3 {
		t.Errorf("expected 3 users, got %d", len(users))
	}
}

func TestPipelineIngestion(t *testing.T) {
	app := setupApp(t, store.NewMemory())
	owner := app.token(t, "user-2")

	_, body := app.do(t, "GET", "/api/v1/dashboard", owner, "")
	testutil.AssertAmount(t, "yield before", stats(t, body)["total_expected_yield"].(float64), 5000)

	row := `{"projections":[{"investment_id":"inv-9","year":2026,"principal_amount":50000,"yield_amount":7000,"total_value":57000}]}`
	if code := app.pipeline(t, "", row); code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", code)
	}
	if code := app.pipeline(t, testAPIKey, row); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	_, body = app.do(t, "GET", "/api/v1/dashboard", owner, "")
	testutil.AssertAmount(t, "yield after", stats(t, body)["total_expected_yield"].(float64), 7000)

	bad := `{"projections":[{"investment_id":"inv-9","year":2026,"principal_amount":50000,"yield_amount":7000,"total_value":1}]}`
	if code := app.pipeline(t, testAPIKey, bad); code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for inconsistent total, got %d", code)
	}
	unknown := `{"projections":[{"investment_id":"inv-404","year":2026,"principal_amount":1,"yield_amount":1,"total_value":2}]}`
	if code := app.pipeline(t, testAPIKey, unknown); code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown investment, got %d", code)
	}
}

func TestGormBackedRouter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	repo := store.NewRepository(store.NewGormStore(db))
	if _, err := seed.Load(context.Background(), repo, seed.Demo()); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	deps := NewDependencies(repo, db, services.SessionConfig{ReferenceYear: 2026, Converter: fx.NewStaticRates(fx.DefaultRates)})
	deps.JWTSecret = testSecret
	deps.Health = GormHealth(db)
	app := &testApp{Router: NewRouter(deps), Repo: repo}

	code, _ := app.do(t, "GET", "/api/health", "", "")
	if code != http.StatusOK {
		t.Fatalf("expected healthy sqlite, got %d", code)
	}

	admin := app.token(t, "super-1")
	code, body := app.do(t, "GET", "/api/v1/dashboard", admin, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", code, body)
	}
	testutil.AssertAmount(t, "total invested", stats(t, body)["total_invested_usd"].(float64), 330860)

	code, body = app.do(t, "DELETE", "/api/v1/investments/inv-1", admin, "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", code, body)
	}

	var audits []models.AuditLog
	if err := db.Find(&audits).Error; err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}
	if len(audits) != 1 || audits[0].Action != "DELETE_INVESTMENT" || audits[0].ResourceID != "inv-1" {
		t.Errorf("unexpected audit rows %+v", audits)
	}

	var remaining int64
	db.Model(&models.PerformanceProjection{}).Where("investment_id = ?", "inv-1").Count(&remaining)
	if remaining != 0 {
		t.Errorf("expected projections of inv-1 removed, %d left", remaining)
	}
}
