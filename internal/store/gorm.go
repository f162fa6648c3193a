package store

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "folio/internal/errors"
	"folio/internal/schema"
)

// gormStore implements Store on top of a gorm connection. Rows are read
// into plain maps so that schema validation sees exactly what the driver
// returned.
type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore creates a Store backed by db.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *gormStore) table(ctx context.Context, name string) *gorm.DB {
	return s.db.WithContext(ctx).Table(name)
}

func (s *gormStore) list(q *gorm.DB) ([]schema.Record, error) {
	var rows []map[string]interface{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	out := make([]schema.Record, len(rows))
	for i, r := range rows {
		out[i] = schema.Record(r)
	}
	return out, nil
}

func (s *gormStore) first(q *gorm.DB) (schema.Record, error) {
	var rows []map[string]interface{}
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return schema.Record(rows[0]), nil
}

func (s *gormStore) insert(ctx context.Context, name string, rec schema.Record) (schema.Record, error) {
	row, err := stamp(rec, s.now())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if err := s.table(ctx, name).Create(map[string]interface{}(row)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return s.first(s.table(ctx, name).Where("id = ?", row["id"]))
}

func (s *gormStore) ListUsers(ctx context.Context) ([]schema.Record, error) {
	return s.list(s.table(ctx, TableUsers).Order("created_at DESC").Order("id"))
}

func (s *gormStore) GetUser(ctx context.Context, id string) (schema.Record, error) {
	return s.first(s.table(ctx, TableUsers).Where("id = ?", id))
}

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (schema.Record, error) {
	return s.first(s.table(ctx, TableUsers).Where("email = ?", email))
}

func (s *gormStore) CreateUser(ctx context.Context, rec schema.Record) (schema.Record, error) {
	return s.insert(ctx, TableUsers, rec)
}

func (s *gormStore) ListProducts(ctx context.Context) ([]schema.Record, error) {
	return s.list(s.table(ctx, TableProducts).Order("id"))
}

func (s *gormStore) GetProduct(ctx context.Context, id string) (schema.Record, error) {
	return s.first(s.table(ctx, TableProducts).Where("id = ?", id))
}

func (s *gormStore) CreateProduct(ctx context.Context, rec schema.Record) (schema.Record, error) {
	return s.insert(ctx, TableProducts, rec)
}

func (s *gormStore) ListInvestments(ctx context.Context) ([]schema.Record, error) {
	return s.list(s.table(ctx, TableInvestments).Order("created_at").Order("id"))
}

func (s *gormStore) ListInvestmentsByUser(ctx context.Context, userID string) ([]schema.Record, error) {
	return s.list(s.table(ctx, TableInvestments).Where("user_id = ?", userID).Order("created_at").Order("id"))
}

func (s *gormStore) GetInvestment(ctx context.Context, id string) (schema.Record, error) {
	return s.first(s.table(ctx, TableInvestments).Where("id = ?", id))
}

func (s *gormStore) CreateInvestment(ctx context.Context, rec schema.Record) (schema.Record, error) {
	return s.insert(ctx, TableInvestments, rec)
}

// UpdateInvestment applies rec to the row with the given id. Keys with nil
// values are written as NULL.
func (s *gormStore) UpdateInvestment(ctx context.Context, id string, rec schema.Record) (schema.Record, error) {
	changes := make(map[string]interface{}, len(rec)+1)
	for k, v := range rec {
		if k == "id" || k == "created_at" {
			continue
		}
		changes[k] = v
	}
	changes["updated_at"] = s.now()

	res := s.table(ctx, TableInvestments).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrInvestmentNotFound
	}
	return s.GetInvestment(ctx, id)
}

// DeleteInvestment removes the investment and its projections.
func (s *gormStore) DeleteInvestment(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+TableProjections+" WHERE investment_id = ?", id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStore, err)
		}
		res := tx.Exec("DELETE FROM "+TableInvestments+" WHERE id = ?", id)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrStore, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInvestmentNotFound
		}
		return nil
	})
}

func (s *gormStore) ListProjections(ctx context.Context, investmentID string) ([]schema.Record, error) {
	return s.list(s.table(ctx, TableProjections).Where("investment_id = ?", investmentID).Order("year").Order("id"))
}

func (s *gormStore) ListProjectionsUpToYear(ctx context.Context, investmentID string, year int) ([]schema.Record, error) {
	return s.list(s.table(ctx, TableProjections).
		Where("investment_id = ? AND year <= ?", investmentID, year).
		Order("year").Order("id"))
}

// UpsertProjection inserts rec or overwrites the amounts of the existing
// row with the same (investment_id, year).
func (s *gormStore) UpsertProjection(ctx context.Context, rec schema.Record) (schema.Record, error) {
	row, err := stamp(rec, s.now())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	err = s.table(ctx, TableProjections).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "investment_id"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"principal_amount", "yield_amount", "total_value", "updated_at"}),
		}).
		Create(map[string]interface{}(row)).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return s.first(s.table(ctx, TableProjections).
		Where("investment_id = ? AND year = ?", row["investment_id"], row["year"]))
}
