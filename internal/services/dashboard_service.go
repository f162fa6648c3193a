package services

import (
	"context"
	"sync"

	apperrors "folio/internal/errors"
	"folio/internal/models"
	"folio/internal/pagination"
	"folio/internal/portfolio"
	"folio/internal/schema"
	"folio/internal/store"
)

// dashboardService owns one Session per user id.
type dashboardService struct {
	repo *store.Repository
	cfg  SessionConfig

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(repo *store.Repository, cfg SessionConfig) DashboardServicer {
	return newDashboardService(repo, cfg)
}

func newDashboardService(repo *store.Repository, cfg SessionConfig) *dashboardService {
	return &dashboardService{repo: repo, cfg: cfg, sessions: map[string]*Session{}}
}

// sessionFor returns the session of userID, creating it on first use. A
// changed role (or any other user field) switches the session to the
// fresh user record.
func (s *dashboardService) sessionFor(ctx context.Context, userID string) (*Session, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.SessionFor(ctx, *user)
}

// SessionFor returns the session of user.
func (s *dashboardService) SessionFor(ctx context.Context, user models.User) (*Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[user.ID]
	if !ok {
		sess = NewSession(s.repo, user, s.cfg)
		s.sessions[user.ID] = sess
	}
	s.mu.Unlock()

	if current := sess.User(); !sameUser(current, user) {
		if _, err := sess.SwitchUser(ctx, user); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// InvalidateAll marks every session for reload on next read.
func (s *dashboardService) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		sess.Invalidate()
	}
}

// invalidateOthers marks every session except keep for reload, so other
// users see a mutation on their next read.
func (s *dashboardService) invalidateOthers(keep *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess != keep {
			sess.Invalidate()
		}
	}
}

// GetDashboard returns the user's snapshot with display-ordered breakdowns.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*Snapshot, error) {
	sess, err := s.sessionFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, err := sess.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	out := *snap
	out.Stats.CategoryBreakdown = portfolio.SortByTotalDesc(snap.Stats.CategoryBreakdown)
	out.Stats.CurrencyBreakdown = portfolio.SortByTotalDesc(snap.Stats.CurrencyBreakdown)
	return &out, nil
}

// ListInvestments pages over the enriched investments of the snapshot.
func (s *dashboardService) ListInvestments(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[portfolio.EnrichedInvestment], error) {
	sess, err := s.sessionFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, err := sess.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	resp := pagination.Slice(snap.Investments, page)
	return &resp, nil
}

func (s *dashboardService) GetProjections(ctx context.Context, userID, investmentID string) ([]models.PerformanceProjection, error) {
	sess, err := s.sessionFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sess.Projections(ctx, investmentID)
}

func (s *dashboardService) GetYearlyProjection(ctx context.Context, userID string, from, to int) ([]portfolio.YearlyTotal, error) {
	if from > to {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}
	sess, err := s.sessionFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sess.YearlyProjection(ctx, from, to)
}

func (s *dashboardService) CreateInvestment(ctx context.Context, userID string, inv models.Investment) (*models.Investment, error) {
	sess, err := s.sessionFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	created, err := sess.AddInvestment(ctx, inv)
	if err != nil {
		return nil, err
	}
	s.invalidateOthers(sess)
	return created, nil
}

func (s *dashboardService) UpdateInvestment(ctx context.Context, userID, investmentID string, patch schema.InvestmentPatch) (*models.Investment, error) {
	sess, err := s.sessionFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated, err := sess.UpdateInvestment(ctx, investmentID, patch)
	if err != nil {
		return nil, err
	}
	s.invalidateOthers(sess)
	return updated, nil
}

func (s *dashboardService) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	sess, err := s.sessionFor(ctx, userID)
	if err != nil {
		return err
	}
	if err := sess.DeleteInvestment(ctx, investmentID); err != nil {
		return err
	}
	s.invalidateOthers(sess)
	return nil
}

func sameUser(a, b models.User) bool {
	return a.ID == b.ID && a.Email == b.Email && a.Name == b.Name && a.Role == b.Role
}
