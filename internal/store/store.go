// Package store is the boundary to the hosted record store.
//
// A Store speaks raw schema.Records keyed by column names. Point lookups
// return (nil, nil) when the row does not exist; every other failure is an
// ErrStore AppError. Repository layers schema decoding on top so that the
// rest of the service only ever sees typed models.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"folio/internal/schema"
)

// Table names.
const (
	TableUsers       = "users"
	TableProducts    = "products"
	TableInvestments = "investments"
	TableProjections = "performance_projections"
)

// Store is the raw record store contract.
type Store interface {
	ListUsers(ctx context.Context) ([]schema.Record, error)
	GetUser(ctx context.Context, id string) (schema.Record, error)
	GetUserByEmail(ctx context.Context, email string) (schema.Record, error)
	CreateUser(ctx context.Context, rec schema.Record) (schema.Record, error)

	ListProducts(ctx context.Context) ([]schema.Record, error)
	GetProduct(ctx context.Context, id string) (schema.Record, error)
	CreateProduct(ctx context.Context, rec schema.Record) (schema.Record, error)

	ListInvestments(ctx context.Context) ([]schema.Record, error)
	ListInvestmentsByUser(ctx context.Context, userID string) ([]schema.Record, error)
	GetInvestment(ctx context.Context, id string) (schema.Record, error)
	CreateInvestment(ctx context.Context, rec schema.Record) (schema.Record, error)
	UpdateInvestment(ctx context.Context, id string, rec schema.Record) (schema.Record, error)
	DeleteInvestment(ctx context.Context, id string) error

	ListProjections(ctx context.Context, investmentID string) ([]schema.Record, error)
	ListProjectionsUpToYear(ctx context.Context, investmentID string, year int) ([]schema.Record, error)
	UpsertProjection(ctx context.Context, rec schema.Record) (schema.Record, error)
}

// newID returns a time-ordered UUIDv7 string.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// stamp fills id and timestamps on a record about to be inserted.
func stamp(rec schema.Record, now time.Time) (schema.Record, error) {
	out := make(schema.Record, len(rec)+3)
	for k, v := range rec {
		out[k] = v
	}
	if id, _ := out["id"].(string); id == "" {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		out["id"] = id
	}
	out["created_at"] = now
	out["updated_at"] = now
	return out, nil
}
