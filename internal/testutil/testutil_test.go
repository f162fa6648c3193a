package testutil_test

import (
	"testing"

	"folio/internal/errors"
	"folio/internal/models"
	"folio/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "products", "investments", "performance_projections", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db, models.RoleNormalUser)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	product := testutil.CreateTestProduct(t, db, "Gold")
	if product.Category != "Gold" {
		t.Errorf("expected category Gold, got %s", product.Category)
	}

	inv := testutil.CreateTestInvestment(t, db, user.ID, product.ID, 1000)
	if inv.USDEquivalent != 1000 {
		t.Errorf("expected usd 1000, got %f", inv.USDEquivalent)
	}

	p := testutil.CreateTestProjection(t, db, inv.ID, 2026, 1000, 80)
	if p.TotalValue != 1080 {
		t.Errorf("expected total 1080, got %f", p.TotalValue)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrInvestmentNotFound, "custom message")
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertAmount(t *testing.T) {
	testutil.AssertAmount(t, "sum", 0.1+0.2, 0.3)
}
