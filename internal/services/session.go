package services

import (
	"context"
	"sync"
	"time"

	"folio/internal/access"
	apperrors "folio/internal/errors"
	"folio/internal/fx"
	"folio/internal/logger"
	"folio/internal/models"
	"folio/internal/portfolio"
	"folio/internal/schema"
	"folio/internal/store"
)

// SessionState is where a Session is in its load cycle.
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateLoading
	StateReady
	StateError
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Snapshot is one complete load of a user's dashboard.
type Snapshot struct {
	Investments []portfolio.EnrichedInvestment `json:"investments"`
	Stats       portfolio.PortfolioStats       `json:"stats"`
	LoadedAt    time.Time                      `json:"loaded_at"`
	// Stale is set when the snapshot is served after a failed reload.
	Stale bool `json:"stale"`
}

// SessionConfig holds the knobs shared by all sessions.
type SessionConfig struct {
	// ReferenceYear caps the projection history attached on refresh.
	ReferenceYear int
	// Converter fills usd_equivalent on create when the caller left it empty.
	Converter fx.Converter
}

// Session holds one user's dashboard state. Every mutation re-fetches the
// whole snapshot from the store instead of patching it locally; the data
// set is small enough that a full reload is simpler than reconciling.
//
// The mutex only guards publication. Overlapping refreshes are not
// ordered, so the last one to finish wins.
type Session struct {
	repo *store.Repository
	cfg  SessionConfig

	mu       sync.RWMutex
	user     models.User
	state    SessionState
	snapshot *Snapshot
	lastErr  error
}

// NewSession creates an uninitialized session for user.
func NewSession(repo *store.Repository, user models.User, cfg SessionConfig) *Session {
	return &Session{repo: repo, cfg: cfg, user: user}
}

// User returns the session's current user.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// State returns the current state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error that put the session into StateError, if any.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Snapshot returns the last successfully loaded snapshot, which stays
// readable while the session is loading or in error.
func (s *Session) Snapshot() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot != nil
}

// Invalidate marks a ready session as needing a reload. The current
// snapshot stays readable.
func (s *Session) Invalidate() {
	s.mu.Lock()
	if s.state == StateReady {
		s.state = StateUninitialized
	}
	s.mu.Unlock()
}

// Refresh reloads the snapshot for the session's user.
func (s *Session) Refresh(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	user := s.user
	s.state = StateLoading
	s.mu.Unlock()

	snap, err := s.load(ctx, user)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.ID != user.ID || s.user.Role != user.Role {
		// The user was switched while loading; drop this result.
		return snap, err
	}
	if err != nil {
		s.state = StateError
		s.lastErr = err
		logger.Get().Errorw("dashboard refresh failed", "user_id", user.ID, "error", err)
		return nil, err
	}
	s.state = StateReady
	s.lastErr = nil
	s.snapshot = snap
	return snap, nil
}

// SwitchUser replaces the session's user, discards the old snapshot and
// reloads.
func (s *Session) SwitchUser(ctx context.Context, user models.User) (*Snapshot, error) {
	s.mu.Lock()
	s.user = user
	s.state = StateLoading
	s.snapshot = nil
	s.lastErr = nil
	s.mu.Unlock()
	return s.Refresh(ctx)
}

func (s *Session) load(ctx context.Context, user models.User) (*Snapshot, error) {
	var (
		invs []models.Investment
		err  error
	)
	if access.CanViewAllUsers(user) {
		invs, err = s.repo.ListInvestments(ctx)
	} else {
		invs, err = s.repo.ListInvestmentsByUser(ctx, user.ID)
	}
	if err != nil {
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	histories := make(map[string][]models.PerformanceProjection, len(invs))
	for _, inv := range invs {
		rows, err := s.repo.ListProjectionsUpToYear(ctx, inv.ID, s.cfg.ReferenceYear)
		if err != nil {
			return nil, err
		}
		histories[inv.ID] = rows
	}

	enriched, err := portfolio.EnrichAll(invs, portfolio.NewProductIndex(products), func(id string) []models.PerformanceProjection {
		return histories[id]
	})
	if err != nil {
		return nil, err
	}

	visible := access.VisibleInvestments(enriched, user)
	return &Snapshot{
		Investments: visible,
		Stats:       portfolio.ComputeStats(visible),
		LoadedAt:    time.Now().UTC(),
	}, nil
}

// ensureLoaded returns a snapshot, refreshing when the session has never
// loaded or was invalidated. A failed reload falls back to the
// last-known-good snapshot marked stale.
func (s *Session) ensureLoaded(ctx context.Context) (*Snapshot, error) {
	if s.State() == StateReady {
		if snap, ok := s.Snapshot(); ok {
			return snap, nil
		}
	}
	snap, err := s.Refresh(ctx)
	if err == nil {
		return snap, nil
	}
	if last, ok := s.Snapshot(); ok {
		stale := *last
		stale.Stale = true
		return &stale, nil
	}
	return nil, err
}

// fail records a failed store call without touching the snapshot.
func (s *Session) fail(err error) {
	s.mu.Lock()
	s.state = StateError
	s.lastErr = err
	s.mu.Unlock()
}

// afterMutation reloads once a write has succeeded. A failed reload is
// recorded on the session but not returned: the write itself happened and
// must not look failed to a caller that might retry it.
func (s *Session) afterMutation(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		logger.Get().Warnw("reload after mutation failed", "user_id", s.User().ID, "error", err)
	}
}

// AddInvestment creates an investment. When USDEquivalent is zero it is
// filled by the configured converter.
func (s *Session) AddInvestment(ctx context.Context, inv models.Investment) (*models.Investment, error) {
	if err := access.Authorize(s.User()); err != nil {
		return nil, err
	}
	if inv.Status == "" {
		inv.Status = models.InvestmentStatusActive
	}
	if inv.USDEquivalent == 0 && s.cfg.Converter != nil {
		usd, err := s.cfg.Converter.ToUSD(ctx, inv.AmountInvested, inv.Currency)
		if err != nil {
			return nil, err
		}
		inv.USDEquivalent = usd
	}
	if err := s.checkReferences(ctx, inv.UserID, inv.ID, inv.ProductID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateInvestment(ctx, inv)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.afterMutation(ctx)
	return created, nil
}

// UpdateInvestment applies patch to an existing investment.
func (s *Session) UpdateInvestment(ctx context.Context, id string, patch schema.InvestmentPatch) (*models.Investment, error) {
	if err := access.Authorize(s.User()); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No fields to update")
	}
	if patch.UserID != nil || patch.ProductID != nil {
		userID, productID := "", ""
		if patch.UserID != nil {
			userID = *patch.UserID
		}
		if patch.ProductID != nil {
			productID = *patch.ProductID
		}
		if err := s.checkReferences(ctx, userID, id, productID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.UpdateInvestment(ctx, id, patch)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.afterMutation(ctx)
	return updated, nil
}

// DeleteInvestment removes an investment and its projections.
func (s *Session) DeleteInvestment(ctx context.Context, id string) error {
	if err := access.Authorize(s.User()); err != nil {
		return err
	}
	if err := s.repo.DeleteInvestment(ctx, id); err != nil {
		s.fail(err)
		return err
	}
	s.afterMutation(ctx)
	return nil
}

// checkReferences verifies that non-empty user and product ids exist.
func (s *Session) checkReferences(ctx context.Context, userID, investmentID, productID string) error {
	if userID != "" {
		u, err := s.repo.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return apperrors.ErrUserNotFound
		}
	}
	if productID != "" {
		p, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperrors.MissingReference(investmentID, productID)
		}
	}
	return nil
}

// Projections returns the full, unfiltered history of one investment the
// user can see.
func (s *Session) Projections(ctx context.Context, investmentID string) ([]models.PerformanceProjection, error) {
	inv, err := s.repo.GetInvestment(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if inv == nil || !access.CanSee(*inv, s.User()) {
		return nil, apperrors.ErrInvestmentNotFound
	}
	rows, err := s.repo.ListProjections(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	return portfolio.FullHistory().Apply(rows), nil
}

// YearlyProjection sums the full histories of the visible investments per
// year and keeps from <= year <= to.
func (s *Session) YearlyProjection(ctx context.Context, from, to int) ([]portfolio.YearlyTotal, error) {
	snap, err := s.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	histories := make(map[string][]models.PerformanceProjection, len(snap.Investments))
	for _, e := range snap.Investments {
		rows, err := s.repo.ListProjections(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		histories[e.ID] = rows
	}
	rows := portfolio.YearlyProjection(snap.Investments, func(id string) []models.PerformanceProjection {
		return histories[id]
	})
	return portfolio.Window(rows, from, to), nil
}
