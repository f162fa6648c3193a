// Package portfolio joins investments to their products and projections and
// reduces the result into dashboard statistics. Everything here is pure.
package portfolio

import (
	"sort"

	apperrors "folio/internal/errors"
	"folio/internal/models"
)

// EnrichedInvestment is an investment joined with its product and,
// optionally, its projection history (ascending by year). A nil history
// means it was not requested; an empty one means none was found.
type EnrichedInvestment struct {
	models.Investment
	Product            models.Product                 `json:"product"`
	PerformanceHistory []models.PerformanceProjection `json:"performance_history"`
}

// ProductLookup resolves product ids.
type ProductLookup interface {
	Product(id string) (models.Product, bool)
}

// ProductIndex is a ProductLookup over an in-memory map.
type ProductIndex map[string]models.Product

// NewProductIndex indexes products by id.
func NewProductIndex(products []models.Product) ProductIndex {
	idx := make(ProductIndex, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

func (idx ProductIndex) Product(id string) (models.Product, bool) {
	p, ok := idx[id]
	return p, ok
}

// HistoryFilter selects the part of a projection history to attach.
type HistoryFilter struct {
	// UpToYear keeps rows with Year <= *UpToYear; nil keeps everything.
	UpToYear *int
}

// UpTo returns a filter capped at year.
func UpTo(year int) HistoryFilter {
	return HistoryFilter{UpToYear: &year}
}

// FullHistory returns a filter that keeps every row.
func FullHistory() HistoryFilter {
	return HistoryFilter{}
}

// Apply returns the matching rows sorted by year, ties broken by id. The
// input slice is not modified.
func (f HistoryFilter) Apply(rows []models.PerformanceProjection) []models.PerformanceProjection {
	out := make([]models.PerformanceProjection, 0, len(rows))
	for _, r := range rows {
		if f.UpToYear == nil || r.Year <= *f.UpToYear {
			out = append(out, r)
		}
	}
	SortHistory(out)
	return out
}

// SortHistory sorts rows ascending by (year, id) in place.
func SortHistory(rows []models.PerformanceProjection) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].ID < rows[j].ID
	})
}

// Enrich joins inv with its product and the given history. history may be
// nil to mean "not requested"; otherwise it is copied and sorted.
func Enrich(inv models.Investment, lookup ProductLookup, history []models.PerformanceProjection) (EnrichedInvestment, error) {
	product, ok := lookup.Product(inv.ProductID)
	if !ok {
		return EnrichedInvestment{}, apperrors.MissingReference(inv.ID, inv.ProductID)
	}
	e := EnrichedInvestment{Investment: inv, Product: product}
	if history != nil {
		e.PerformanceHistory = FullHistory().Apply(history)
	}
	return e, nil
}

// EnrichAll enriches every investment in order. historyFor may be nil, in
// which case no history is attached. The first unresolved product aborts
// the whole batch.
func EnrichAll(invs []models.Investment, lookup ProductLookup, historyFor func(investmentID string) []models.PerformanceProjection) ([]EnrichedInvestment, error) {
	out := make([]EnrichedInvestment, 0, len(invs))
	for _, inv := range invs {
		var history []models.PerformanceProjection
		if historyFor != nil {
			history = historyFor(inv.ID)
			if history == nil {
				history = []models.PerformanceProjection{}
			}
		}
		e, err := Enrich(inv, lookup, history)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
