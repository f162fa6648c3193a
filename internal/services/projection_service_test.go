package services

import (
	"context"
	"testing"

	"folio/internal/models"
	"folio/internal/testutil"
)

func TestIngestProjections(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts and invalidates sessions", func(t *testing.T) {
		_, repo := setupDemo(t)
		dash := NewDashboardService(repo, demoConfig())
		svc := NewProjectionService(repo, dash)

		before, err := dash.GetDashboard(ctx, "user-2")
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "yield before", before.Stats.TotalExpectedYield, 5000)

		n, err := svc.IngestProjections(ctx, []models.PerformanceProjection{
			{InvestmentID: "inv-9", Year: 2026, PrincipalAmount: 50000, YieldAmount: 6000, TotalValue: 56000},
			{InvestmentID: "inv-10", Year: 2026, PrincipalAmount: 39600, YieldAmount: 1000, TotalValue: 40600},
		})
		testutil.AssertNoError(t, err)
		if n != 2 {
			t.Errorf("expected 2 rows written, got %d", n)
		}

		after, err := dash.GetDashboard(ctx, "user-2")
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "yield after", after.Stats.TotalExpectedYield, 7000)

		rows, err := repo.ListProjections(ctx, "inv-9")
		testutil.AssertNoError(t, err)
		if len(rows) != 3 {
			t.Errorf("expected upsert to keep 3 rows, got %d", len(rows))
		}
	})

	t.Run("unknown investment writes nothing", func(t *testing.T) {
		_, repo := setupDemo(t)
		svc := NewProjectionService(repo, nil)
		_, err := svc.IngestProjections(ctx, []models.PerformanceProjection{
			{InvestmentID: "inv-1", Year: 2030, PrincipalAmount: 1, YieldAmount: 1, TotalValue: 2},
			{InvestmentID: "inv-404", Year: 2030, PrincipalAmount: 1, YieldAmount: 1, TotalValue: 2},
		})
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
		rows, _ := repo.ListProjections(ctx, "inv-1")
		if len(rows) != 3 {
			t.Errorf("expected no new rows, got %d", len(rows))
		}
	})

	t.Run("invalid row", func(t *testing.T) {
		_, repo := setupDemo(t)
		svc := NewProjectionService(repo, nil)
		_, err := svc.IngestProjections(ctx, []models.PerformanceProjection{
			{InvestmentID: "inv-1", Year: 2030, PrincipalAmount: 1, YieldAmount: 1, TotalValue: 5},
		})
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
	})

	t.Run("invalid row after valid ones writes nothing", func(t *testing.T) {
		_, repo := setupDemo(t)
		svc := NewProjectionService(repo, nil)
		n, err := svc.IngestProjections(ctx, []models.PerformanceProjection{
			{InvestmentID: "inv-1", Year: 2030, PrincipalAmount: 1, YieldAmount: 1, TotalValue: 2},
			{InvestmentID: "inv-1", Year: 2031, PrincipalAmount: 1, YieldAmount: 1, TotalValue: 2},
			{InvestmentID: "inv-1", Year: 2032, PrincipalAmount: 1, YieldAmount: 1, TotalValue: 9},
		})
		testutil.AssertAppError(t, err, "VALIDATION_FAILED")
		if n != 0 {
			t.Errorf("expected 0 rows written, got %d", n)
		}
		rows, _ := repo.ListProjections(ctx, "inv-1")
		if len(rows) != 3 {
			t.Errorf("expected no new rows, got %d", len(rows))
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		_, repo := setupDemo(t)
		_, err := NewProjectionService(repo, nil).IngestProjections(ctx, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
