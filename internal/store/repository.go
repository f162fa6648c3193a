package store

import (
	"context"

	apperrors "folio/internal/errors"
	"folio/internal/models"
	"folio/internal/schema"
)

// Repository decodes and encodes records around a Store. A row that fails
// schema validation aborts the whole call with an ErrValidation AppError.
type Repository struct {
	store Store
}

// NewRepository wraps s.
func NewRepository(s Store) *Repository {
	return &Repository{store: s}
}

func decodeAll[T any](recs []schema.Record, decode func(schema.Record) (T, error)) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeOne[T any](rec schema.Record, err error, decode func(schema.Record) (T, error)) (*T, error) {
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	v, err := decode(rec)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListUsers returns all users, newest first.
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	recs, err := r.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs, schema.DecodeUser)
}

// GetUser returns the user or nil when absent.
func (r *Repository) GetUser(ctx context.Context, id string) (*models.User, error) {
	rec, err := r.store.GetUser(ctx, id)
	return decodeOne(rec, err, schema.DecodeUser)
}

// GetUserByEmail returns the user or nil when absent.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	rec, err := r.store.GetUserByEmail(ctx, email)
	return decodeOne(rec, err, schema.DecodeUser)
}

func (r *Repository) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	rec, err := schema.EncodeUser(u)
	if err != nil {
		return nil, err
	}
	out, err := r.store.CreateUser(ctx, rec)
	return decodeOne(out, err, schema.DecodeUser)
}

func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	recs, err := r.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs, schema.DecodeProduct)
}

func (r *Repository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	rec, err := r.store.GetProduct(ctx, id)
	return decodeOne(rec, err, schema.DecodeProduct)
}

func (r *Repository) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	rec, err := schema.EncodeProduct(p)
	if err != nil {
		return nil, err
	}
	out, err := r.store.CreateProduct(ctx, rec)
	return decodeOne(out, err, schema.DecodeProduct)
}

// ListInvestments returns every investment regardless of owner.
func (r *Repository) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	recs, err := r.store.ListInvestments(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs, schema.DecodeInvestment)
}

func (r *Repository) ListInvestmentsByUser(ctx context.Context, userID string) ([]models.Investment, error) {
	recs, err := r.store.ListInvestmentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs, schema.DecodeInvestment)
}

func (r *Repository) GetInvestment(ctx context.Context, id string) (*models.Investment, error) {
	rec, err := r.store.GetInvestment(ctx, id)
	return decodeOne(rec, err, schema.DecodeInvestment)
}

// CreateInvestment validates inv, writes it and returns the stored row.
func (r *Repository) CreateInvestment(ctx context.Context, inv models.Investment) (*models.Investment, error) {
	rec, err := schema.EncodeInvestment(inv)
	if err != nil {
		return nil, err
	}
	out, err := r.store.CreateInvestment(ctx, rec)
	return decodeOne(out, err, schema.DecodeInvestment)
}

// UpdateInvestment applies a validated partial update.
func (r *Repository) UpdateInvestment(ctx context.Context, id string, patch schema.InvestmentPatch) (*models.Investment, error) {
	rec, err := schema.EncodeInvestmentPatch(patch)
	if err != nil {
		return nil, err
	}
	out, err := r.store.UpdateInvestment(ctx, id, rec)
	inv, err := decodeOne(out, err, schema.DecodeInvestment)
	if err == nil && inv == nil {
		return nil, apperrors.ErrInvestmentNotFound
	}
	return inv, err
}

func (r *Repository) DeleteInvestment(ctx context.Context, id string) error {
	return r.store.DeleteInvestment(ctx, id)
}

// ListProjections returns the full history of an investment, ascending by year.
func (r *Repository) ListProjections(ctx context.Context, investmentID string) ([]models.PerformanceProjection, error) {
	recs, err := r.store.ListProjections(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs, schema.DecodeProjection)
}

// ListProjectionsUpToYear returns rows with year <= year, ascending.
func (r *Repository) ListProjectionsUpToYear(ctx context.Context, investmentID string, year int) ([]models.PerformanceProjection, error) {
	recs, err := r.store.ListProjectionsUpToYear(ctx, investmentID, year)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs, schema.DecodeProjection)
}

// UpsertProjection writes p, replacing any row for the same investment and year.
func (r *Repository) UpsertProjection(ctx context.Context, p models.PerformanceProjection) (*models.PerformanceProjection, error) {
	rec, err := schema.EncodeProjection(p)
	if err != nil {
		return nil, err
	}
	out, err := r.store.UpsertProjection(ctx, rec)
	return decodeOne(out, err, schema.DecodeProjection)
}
