package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"folio/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with the given role and a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		Base:  models.Base{ID: uuid.NewString()},
		Email: fmt.Sprintf("user%d@test.com", n),
		Name:  fmt.Sprintf("Test User %d", n),
		Role:  role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProduct creates a product in the given category.
func CreateTestProduct(t *testing.T, db *gorm.DB, category string) *models.Product {
	t.Helper()

	product := &models.Product{
		Base:              models.Base{ID: uuid.NewString()},
		Category:          category,
		InvestmentCompany: fmt.Sprintf("Test Company %d", nextID()),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// NewTestInvestment returns an unsaved active USD investment.
func NewTestInvestment(userID, productID string, usd float64) models.Investment {
	maturity := "2027-01-01"
	return models.Investment{
		UserID:              userID,
		ProductID:           productID,
		AmountInvested:      usd,
		Currency:            "USD",
		USDEquivalent:       usd,
		DetailsOfInvestment: "Test investment",
		ExpectedYield:       "8% per annum",
		InvestmentType:      models.InvestmentTypeLumpsum,
		InvestmentDate:      "2025-01-01",
		MaturityDate:        &maturity,
		Status:              models.InvestmentStatusActive,
		ContractPDF:         fmt.Sprintf("https://example.com/contracts/test-%d.pdf", nextID()),
	}
}

// CreateTestInvestment creates an active USD investment.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID, productID string, usd float64) *models.Investment {
	t.Helper()

	inv := NewTestInvestment(userID, productID, usd)
	inv.ID = uuid.NewString()
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return &inv
}

// CreateTestProjection creates a projection row; total is principal + yield.
func CreateTestProjection(t *testing.T, db *gorm.DB, investmentID string, year int, principal, yield float64) *models.PerformanceProjection {
	t.Helper()

	p := &models.PerformanceProjection{
		Base:            models.Base{ID: uuid.NewString()},
		InvestmentID:    investmentID,
		Year:            year,
		PrincipalAmount: principal,
		YieldAmount:     yield,
		TotalValue:      principal + yield,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test projection: %v", err)
	}
	return p
}
