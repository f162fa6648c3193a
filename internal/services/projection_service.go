package services

import (
	"context"
	"fmt"

	apperrors "folio/internal/errors"
	"folio/internal/logger"
	"folio/internal/models"
	"folio/internal/schema"
	"folio/internal/store"
)

// projectionService ingests projection rows pushed by an external pipeline.
type projectionService struct {
	repo      *store.Repository
	dashboard DashboardServicer
}

// NewProjectionService creates a new ProjectionServicer. dashboard may be
// nil; when set, every session is invalidated after a successful batch.
func NewProjectionService(repo *store.Repository, dashboard DashboardServicer) ProjectionServicer {
	return &projectionService{repo: repo, dashboard: dashboard}
}

// IngestProjections upserts rows on (investment_id, year). Every row is
// validated and checked against its investment first, and nothing is
// written if one fails. Writes are not transactional: a store failure
// mid-batch leaves the rows before it in place.
func (s *projectionService) IngestProjections(ctx context.Context, rows []models.PerformanceProjection) (int, error) {
	if len(rows) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "No projections supplied")
	}

	for i, p := range rows {
		if _, err := schema.EncodeProjection(p); err != nil {
			logger.Get().Warnw("projection batch rejected", "row", i, "error", err)
			return 0, err
		}
	}

	known := map[string]bool{}
	for i, p := range rows {
		if known[p.InvestmentID] {
			continue
		}
		inv, err := s.repo.GetInvestment(ctx, p.InvestmentID)
		if err != nil {
			return 0, err
		}
		if inv == nil {
			return 0, apperrors.WithMessage(apperrors.ErrInvestmentNotFound,
				fmt.Sprintf("Row %d references unknown investment %s", i, p.InvestmentID))
		}
		known[p.InvestmentID] = true
	}

	written := 0
	for _, p := range rows {
		p.ID = ""
		if _, err := s.repo.UpsertProjection(ctx, p); err != nil {
			logger.Get().Errorw("projection ingestion stopped", "written", written, "error", err)
			return written, err
		}
		written++
	}

	if s.dashboard != nil {
		s.dashboard.InvalidateAll()
	}
	logger.Get().Infow("projections ingested", "rows", written)
	return written, nil
}
