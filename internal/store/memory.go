package store

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "folio/internal/errors"
	"folio/internal/schema"
)

// Memory is an in-process Store used by tests and the demo mode of the
// API. It keeps insertion order and mirrors the unique (investment_id,
// year) constraint of the SQL schema.
type Memory struct {
	mu     sync.RWMutex
	tables map[string][]schema.Record
	now    func() time.Time
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		tables: map[string][]schema.Record{},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ Store = (*Memory)(nil)

func clone(rec schema.Record) schema.Record {
	if rec == nil {
		return nil
	}
	out := make(schema.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func (m *Memory) filter(table string, keep func(schema.Record) bool) []schema.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []schema.Record{}
	for _, r := range m.tables[table] {
		if keep == nil || keep(r) {
			out = append(out, clone(r))
		}
	}
	return out
}

func (m *Memory) find(table string, keep func(schema.Record) bool) schema.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.tables[table] {
		if keep(r) {
			return clone(r)
		}
	}
	return nil
}

func (m *Memory) insert(table string, rec schema.Record) (schema.Record, error) {
	row, err := stamp(rec, m.now())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.tables[table] {
		if r["id"] == row["id"] {
			return nil, apperrors.WithMessage(apperrors.ErrStore, "Duplicate id "+row["id"].(string))
		}
	}
	m.tables[table] = append(m.tables[table], row)
	return clone(row), nil
}

func byField(field string, value any) func(schema.Record) bool {
	return func(r schema.Record) bool { return r[field] == value }
}

func (m *Memory) ListUsers(_ context.Context) ([]schema.Record, error) {
	rows := m.filter(TableUsers, nil)
	// Newest first.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

func (m *Memory) GetUser(_ context.Context, id string) (schema.Record, error) {
	return m.find(TableUsers, byField("id", id)), nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (schema.Record, error) {
	return m.find(TableUsers, byField("email", email)), nil
}

func (m *Memory) CreateUser(_ context.Context, rec schema.Record) (schema.Record, error) {
	return m.insert(TableUsers, rec)
}

func (m *Memory) ListProducts(_ context.Context) ([]schema.Record, error) {
	return m.filter(TableProducts, nil), nil
}

func (m *Memory) GetProduct(_ context.Context, id string) (schema.Record, error) {
	return m.find(TableProducts, byField("id", id)), nil
}

func (m *Memory) CreateProduct(_ context.Context, rec schema.Record) (schema.Record, error) {
	return m.insert(TableProducts, rec)
}

func (m *Memory) ListInvestments(_ context.Context) ([]schema.Record, error) {
	return m.filter(TableInvestments, nil), nil
}

func (m *Memory) ListInvestmentsByUser(_ context.Context, userID string) ([]schema.Record, error) {
	return m.filter(TableInvestments, byField("user_id", userID)), nil
}

func (m *Memory) GetInvestment(_ context.Context, id string) (schema.Record, error) {
	return m.find(TableInvestments, byField("id", id)), nil
}

func (m *Memory) CreateInvestment(_ context.Context, rec schema.Record) (schema.Record, error) {
	return m.insert(TableInvestments, rec)
}

func (m *Memory) UpdateInvestment(_ context.Context, id string, rec schema.Record) (schema.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.tables[TableInvestments] {
		if r["id"] != id {
			continue
		}
		for k, v := range rec {
			if k == "id" || k == "created_at" {
				continue
			}
			r[k] = v
		}
		r["updated_at"] = m.now()
		return clone(r), nil
	}
	return nil, apperrors.ErrInvestmentNotFound
}

func (m *Memory) DeleteInvestment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	invs := m.tables[TableInvestments]
	for i, r := range invs {
		if r["id"] != id {
			continue
		}
		m.tables[TableInvestments] = append(invs[:i:i], invs[i+1:]...)
		kept := m.tables[TableProjections][:0:0]
		for _, p := range m.tables[TableProjections] {
			if p["investment_id"] != id {
				kept = append(kept, p)
			}
		}
		m.tables[TableProjections] = kept
		return nil
	}
	return apperrors.ErrInvestmentNotFound
}

func (m *Memory) ListProjections(_ context.Context, investmentID string) ([]schema.Record, error) {
	rows := m.filter(TableProjections, byField("investment_id", investmentID))
	sortByYear(rows)
	return rows, nil
}

func (m *Memory) ListProjectionsUpToYear(_ context.Context, investmentID string, year int) ([]schema.Record, error) {
	rows := m.filter(TableProjections, func(r schema.Record) bool {
		y, ok := r["year"].(int)
		return r["investment_id"] == investmentID && ok && y <= year
	})
	sortByYear(rows)
	return rows, nil
}

func (m *Memory) UpsertProjection(_ context.Context, rec schema.Record) (schema.Record, error) {
	row, err := stamp(rec, m.now())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.tables[TableProjections] {
		if r["investment_id"] == row["investment_id"] && r["year"] == row["year"] {
			for _, k := range []string{"principal_amount", "yield_amount", "total_value", "updated_at"} {
				r[k] = row[k]
			}
			return clone(r), nil
		}
	}
	m.tables[TableProjections] = append(m.tables[TableProjections], row)
	return clone(row), nil
}

func sortByYear(rows []schema.Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		yi, _ := rows[i]["year"].(int)
		yj, _ := rows[j]["year"].(int)
		return yi < yj
	})
}
