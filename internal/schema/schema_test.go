package schema

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "folio/internal/errors"
	"folio/internal/models"
)

func investmentRecord() Record {
	return Record{
		"id":                    "inv-1",
		"user_id":               "user-1",
		"product_id":            "prod-1",
		"amount_invested":       40000,
		"currency":              "USD",
		"usd_equivalent":        "40000.00",
		"details_of_investment": "Maturity May 2027 (2 years)",
		"expected_yield":        "10% per annum / paid quarterly",
		"investment_type":       "Lumpsum/Regular",
		"investment_date":       "2025-05-01",
		"maturity_date":         "2027-05-01",
		"status":                "active",
		"contract_pdf":          "https://example.com/contracts/woodville.pdf",
		"created_at":            time.Now(),
	}
}

func projectionRecord() Record {
	return Record{
		"id":               "proj-1",
		"investment_id":    "inv-1",
		"year":             int64(2026),
		"principal_amount": 40000.0,
		"yield_amount":     []byte("4000"),
		"total_value":      decimal.NewFromInt(44000),
	}
}

func assertValidation(t *testing.T, err error, field, constraint string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error on %s, got nil", field)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrValidation.Code {
		t.Fatalf("expected %s AppError, got %v", apperrors.ErrValidation.Code, err)
	}
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError in chain, got %T", appErr.Internal)
	}
	if verr.Field != field {
		t.Errorf("expected field %q, got %q", field, verr.Field)
	}
	if constraint != "" && verr.Constraint != constraint {
		t.Errorf("expected constraint %q, got %q", constraint, verr.Constraint)
	}
}

func TestDecodeInvestment(t *testing.T) {
	t.Run("valid record with mixed numeric types", func(t *testing.T) {
		inv, err := DecodeInvestment(investmentRecord())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv-1" || inv.UserID != "user-1" || inv.ProductID != "prod-1" {
			t.Errorf("unexpected ids: %+v", inv)
		}
		if inv.AmountInvested != 40000 || inv.USDEquivalent != 40000 {
			t.Errorf("expected amounts 40000, got %v / %v", inv.AmountInvested, inv.USDEquivalent)
		}
		if inv.MaturityDate == nil || *inv.MaturityDate != "2027-05-01" {
			t.Errorf("expected maturity 2027-05-01, got %v", inv.MaturityDate)
		}
		if !inv.IsActive() {
			t.Error("expected active investment")
		}
	})

	t.Run("null maturity date", func(t *testing.T) {
		rec := investmentRecord()
		rec["maturity_date"] = nil
		inv, err := DecodeInvestment(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.MaturityDate != nil {
			t.Errorf("expected nil maturity, got %q", *inv.MaturityDate)
		}
	})

	t.Run("date columns as time values", func(t *testing.T) {
		rec := investmentRecord()
		rec["investment_date"] = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		inv, err := DecodeInvestment(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.InvestmentDate != "2024-02-01" {
			t.Errorf("expected 2024-02-01, got %q", inv.InvestmentDate)
		}
	})

	t.Run("unknown investment type passes", func(t *testing.T) {
		rec := investmentRecord()
		rec["investment_type"] = "Drip Feed"
		if _, err := DecodeInvestment(rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name       string
			mutate     func(Record)
			field      string
			constraint string
		}{
			{"missing user", func(r Record) { delete(r, "user_id") }, "user_id", "required"},
			{"zero amount", func(r Record) { r["amount_invested"] = 0 }, "amount_invested", "gt"},
			{"negative usd", func(r Record) { r["usd_equivalent"] = -1.5 }, "usd_equivalent", "gt"},
			{"long currency", func(r Record) { r["currency"] = "USDT" }, "currency", "len"},
			{"bad status", func(r Record) { r["status"] = "paused" }, "status", "oneof"},
			{"bad contract url", func(r Record) { r["contract_pdf"] = "not a url" }, "contract_pdf", "url"},
			{"non numeric amount", func(r Record) { r["amount_invested"] = "lots" }, "amount_invested", "number"},
			{"amount of wrong type", func(r Record) { r["amount_invested"] = true }, "amount_invested", "number"},
			{"missing id", func(r Record) { r["id"] = "" }, "id", "required"},
			{"nan amount", func(r Record) { r["amount_invested"] = math.NaN() }, "amount_invested", "number"},
			{"infinite usd", func(r Record) { r["usd_equivalent"] = math.Inf(1) }, "usd_equivalent", "number"},
			{"float32 infinity", func(r Record) { r["usd_equivalent"] = float32(math.Inf(-1)) }, "usd_equivalent", "number"},
			{"amount above bound", func(r Record) { r["amount_invested"] = 1.5e308 }, "amount_invested", "lte"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := investmentRecord()
				tc.mutate(rec)
				_, err := DecodeInvestment(rec)
				assertValidation(t, err, tc.field, tc.constraint)
			})
		}
	})
}

func TestDecodeProjection(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := DecodeProjection(projectionRecord())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Year != 2026 || p.TotalValue != 44000 || p.YieldAmount != 4000 {
			t.Errorf("unexpected projection: %+v", p)
		}
	})

	t.Run("total within tolerance", func(t *testing.T) {
		rec := projectionRecord()
		rec["total_value"] = 44000.004
		if _, err := DecodeProjection(rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("total mismatch", func(t *testing.T) {
		rec := projectionRecord()
		rec["total_value"] = 45000
		_, err := DecodeProjection(rec)
		assertValidation(t, err, "total_value", "eq_principal_plus_yield")
	})

	t.Run("year out of range", func(t *testing.T) {
		rec := projectionRecord()
		rec["year"] = 2019
		_, err := DecodeProjection(rec)
		assertValidation(t, err, "year", "min")
	})

	t.Run("fractional year", func(t *testing.T) {
		rec := projectionRecord()
		rec["year"] = 2026.5
		_, err := DecodeProjection(rec)
		assertValidation(t, err, "year", "int")
	})

	t.Run("negative yield", func(t *testing.T) {
		rec := projectionRecord()
		rec["yield_amount"] = -1
		rec["total_value"] = 39999
		_, err := DecodeProjection(rec)
		assertValidation(t, err, "yield_amount", "gte")
	})

	t.Run("nan principal", func(t *testing.T) {
		rec := projectionRecord()
		rec["principal_amount"] = math.NaN()
		_, err := DecodeProjection(rec)
		assertValidation(t, err, "principal_amount", "number")
	})
}

func TestDecodeUserAndProduct(t *testing.T) {
	u, err := DecodeUser(Record{"id": "user-1", "email": "john.doe@example.com", "name": "John Doe", "role": "normal_user"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.IsSuperUser() {
		t.Error("expected normal user")
	}

	_, err = DecodeUser(Record{"id": "user-2", "email": "nope", "name": "X", "role": "normal_user"})
	assertValidation(t, err, "email", "email")

	_, err = DecodeUser(Record{"id": "user-3", "email": "a@b.co", "name": "X", "role": "admin"})
	assertValidation(t, err, "role", "oneof")

	p, err := DecodeProduct(Record{"id": "prod-1", "category": "Loan Notes", "investment_company": "Woodville"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Category != "Loan Notes" {
		t.Errorf("expected Loan Notes, got %q", p.Category)
	}

	_, err = DecodeProduct(Record{"id": "prod-2", "category": "", "investment_company": "EIGHT Cloud"})
	assertValidation(t, err, "category", "required")
}

func TestEncodeInvestment(t *testing.T) {
	inv, err := DecodeInvestment(investmentRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("maps to column names", func(t *testing.T) {
		rec, err := EncodeInvestment(inv)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec["usd_equivalent"] != 40000.0 || rec["contract_pdf"] != inv.ContractPDF {
			t.Errorf("unexpected record: %v", rec)
		}
		if rec["id"] != "inv-1" {
			t.Errorf("expected id inv-1, got %v", rec["id"])
		}
		if rec["maturity_date"] != "2027-05-01" {
			t.Errorf("expected maturity 2027-05-01, got %v", rec["maturity_date"])
		}
	})

	t.Run("empty id omitted", func(t *testing.T) {
		fresh := inv
		fresh.ID = ""
		fresh.MaturityDate = nil
		rec, err := EncodeInvestment(fresh)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := rec["id"]; ok {
			t.Error("expected no id key")
		}
		if v, ok := rec["maturity_date"]; !ok || v != nil {
			t.Errorf("expected explicit nil maturity, got %v", v)
		}
	})

	t.Run("round trips through decode", func(t *testing.T) {
		rec, err := EncodeInvestment(inv)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		back, err := DecodeInvestment(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if back.ContractPDF != inv.ContractPDF || *back.MaturityDate != *inv.MaturityDate {
			t.Errorf("round trip mismatch: %+v vs %+v", back, inv)
		}
	})

	t.Run("invalid rejected", func(t *testing.T) {
		bad := inv
		bad.Currency = "US"
		_, err := EncodeInvestment(bad)
		assertValidation(t, err, "currency", "len")
	})
}

func TestEncodeInvestmentPatch(t *testing.T) {
	t.Run("only provided fields", func(t *testing.T) {
		amount := 41000.0
		status := models.InvestmentStatusMatured
		rec, err := EncodeInvestmentPatch(InvestmentPatch{AmountInvested: &amount, Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec) != 2 {
			t.Fatalf("expected 2 fields, got %v", rec)
		}
		if rec["amount_invested"] != 41000.0 || rec["status"] != "matured" {
			t.Errorf("unexpected record: %v", rec)
		}
	})

	t.Run("invalid provided field", func(t *testing.T) {
		amount := 0.0
		_, err := EncodeInvestmentPatch(InvestmentPatch{AmountInvested: &amount})
		assertValidation(t, err, "amount_invested", "gt")
	})

	t.Run("clear maturity", func(t *testing.T) {
		date := "2030-01-01"
		rec, err := EncodeInvestmentPatch(InvestmentPatch{MaturityDate: &date, ClearMaturityDate: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, ok := rec["maturity_date"]; !ok || v != nil {
			t.Errorf("expected nil maturity, got %v", v)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		p := InvestmentPatch{}
		if !p.IsEmpty() {
			t.Error("expected empty patch")
		}
		rec, err := EncodeInvestmentPatch(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec) != 0 {
			t.Errorf("expected empty record, got %v", rec)
		}
	})
}

func TestEncodeProjection(t *testing.T) {
	p := models.PerformanceProjection{InvestmentID: "inv-1", Year: 2027, PrincipalAmount: 40000, YieldAmount: 6000, TotalValue: 46000}
	rec, err := EncodeProjection(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec["year"] != 2027 || rec["total_value"] != 46000.0 {
		t.Errorf("unexpected record: %v", rec)
	}

	p.TotalValue = 1
	_, err = EncodeProjection(p)
	assertValidation(t, err, "total_value", "eq_principal_plus_yield")

	p.PrincipalAmount, p.YieldAmount, p.TotalValue = math.Inf(1), 0, math.Inf(1)
	_, err = EncodeProjection(p)
	assertValidation(t, err, "principal_amount", "lte")
}

func TestEncodeInvestmentAmountBounds(t *testing.T) {
	base := models.Investment{
		Base:           models.Base{ID: "inv-1"},
		UserID:         "user-1",
		ProductID:      "prod-1",
		AmountInvested: 40000,
		Currency:       "USD",
		USDEquivalent:  40000,
		InvestmentDate: "2025-05-01",
		Status:         models.InvestmentStatusActive,
		ContractPDF:    "https://example.com/contracts/woodville.pdf",
	}

	t.Run("at the bound", func(t *testing.T) {
		inv := base
		inv.AmountInvested, inv.USDEquivalent = models.MaxAmount, models.MaxAmount
		if _, err := EncodeInvestment(inv); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name  string
		usd   float64
		field string
	}{
		{"positive infinity", math.Inf(1), "usd_equivalent"},
		{"nan", math.NaN(), "usd_equivalent"},
		{"above bound", models.MaxAmount * 2, "usd_equivalent"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := base
			inv.USDEquivalent = tc.usd
			_, err := EncodeInvestment(inv)
			assertValidation(t, err, tc.field, "")
		})
	}

	t.Run("patch", func(t *testing.T) {
		inf := math.Inf(1)
		_, err := EncodeInvestmentPatch(InvestmentPatch{AmountInvested: &inf})
		assertValidation(t, err, "amount_invested", "lte")
	})
}
