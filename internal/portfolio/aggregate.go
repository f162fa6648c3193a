package portfolio

import (
	"sort"

	"github.com/shopspring/decimal"

	"folio/internal/models"
)

// GroupTotal is the USD total and count of investments sharing a key
// (a product category or a currency).
type GroupTotal struct {
	Key      string  `json:"key"`
	TotalUSD float64 `json:"total_usd"`
	Count    int     `json:"count"`
}

// YearlyTotal sums every projection row of one year.
type YearlyTotal struct {
	Year       int     `json:"year"`
	TotalValue float64 `json:"total_value"`
	Principal  float64 `json:"principal"`
	Yield      float64 `json:"yield"`
}

// PortfolioStats is the dashboard summary of a list of investments.
type PortfolioStats struct {
	TotalInvestedUSD   float64      `json:"total_invested_usd"`
	TotalExpectedYield float64      `json:"total_expected_yield"`
	InvestmentCount    int          `json:"investment_count"`
	ActiveCount        int          `json:"active_count"`
	CategoryBreakdown  []GroupTotal `json:"category_breakdown"`
	CurrencyBreakdown  []GroupTotal `json:"currency_breakdown"`
}

// TotalInvestedUSD sums USDEquivalent over all investments, whatever their status.
func TotalInvestedUSD(list []EnrichedInvestment) float64 {
	sum := decimal.Zero
	for _, e := range list {
		sum = sum.Add(decimal.NewFromFloat(e.USDEquivalent))
	}
	return sum.InexactFloat64()
}

// groupBy accumulates USD totals per key in first-occurrence order.
func groupBy(list []EnrichedInvestment, key func(EnrichedInvestment) string) []GroupTotal {
	type acc struct {
		sum   decimal.Decimal
		count int
	}
	var order []string
	groups := map[string]*acc{}
	for _, e := range list {
		k := key(e)
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
			order = append(order, k)
		}
		g.sum = g.sum.Add(decimal.NewFromFloat(e.USDEquivalent))
		g.count++
	}
	out := make([]GroupTotal, 0, len(order))
	for _, k := range order {
		out = append(out, GroupTotal{Key: k, TotalUSD: groups[k].sum.InexactFloat64(), Count: groups[k].count})
	}
	return out
}

// CategoryBreakdown groups by product category.
func CategoryBreakdown(list []EnrichedInvestment) []GroupTotal {
	return groupBy(list, func(e EnrichedInvestment) string { return e.Product.Category })
}

// CurrencyBreakdown groups by the currency the investment was made in.
func CurrencyBreakdown(list []EnrichedInvestment) []GroupTotal {
	return groupBy(list, func(e EnrichedInvestment) string { return e.Currency })
}

// SortByTotalDesc returns a copy ordered by TotalUSD descending. Equal
// totals keep their relative order.
func SortByTotalDesc(groups []GroupTotal) []GroupTotal {
	out := append([]GroupTotal(nil), groups...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalUSD > out[j].TotalUSD })
	return out
}

// YearlyProjection sums the projection rows of every investment per year,
// ascending by year. historyFor supplies the rows for an investment; when
// nil, the attached PerformanceHistory is used. Duplicate rows for the same
// investment and year are all summed.
func YearlyProjection(list []EnrichedInvestment, historyFor func(investmentID string) []models.PerformanceProjection) []YearlyTotal {
	type acc struct{ total, principal, yield decimal.Decimal }
	years := map[int]*acc{}
	for _, e := range list {
		rows := e.PerformanceHistory
		if historyFor != nil {
			rows = historyFor(e.ID)
		}
		for _, p := range rows {
			a, ok := years[p.Year]
			if !ok {
				a = &acc{}
				years[p.Year] = a
			}
			a.total = a.total.Add(decimal.NewFromFloat(p.TotalValue))
			a.principal = a.principal.Add(decimal.NewFromFloat(p.PrincipalAmount))
			a.yield = a.yield.Add(decimal.NewFromFloat(p.YieldAmount))
		}
	}
	out := make([]YearlyTotal, 0, len(years))
	for y, a := range years {
		out = append(out, YearlyTotal{
			Year:       y,
			TotalValue: a.total.InexactFloat64(),
			Principal:  a.principal.InexactFloat64(),
			Yield:      a.yield.InexactFloat64(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Window keeps rows with from <= Year <= to.
func Window(rows []YearlyTotal, from, to int) []YearlyTotal {
	out := make([]YearlyTotal, 0, len(rows))
	for _, r := range rows {
		if r.Year >= from && r.Year <= to {
			out = append(out, r)
		}
	}
	return out
}

// TotalExpectedYield sums, per investment, the yield of the latest year in
// its attached history. Earlier years are ignored, so this is only an
// approximation of lifetime yield. Investments without history add nothing.
func TotalExpectedYield(list []EnrichedInvestment) float64 {
	sum := decimal.Zero
	for _, e := range list {
		if len(e.PerformanceHistory) == 0 {
			continue
		}
		rows := append([]models.PerformanceProjection(nil), e.PerformanceHistory...)
		SortHistory(rows)
		sum = sum.Add(decimal.NewFromFloat(rows[len(rows)-1].YieldAmount))
	}
	return sum.InexactFloat64()
}

// ActiveCount counts investments with status active.
func ActiveCount(list []EnrichedInvestment) int {
	n := 0
	for i := range list {
		if list[i].IsActive() {
			n++
		}
	}
	return n
}

// ComputeStats builds the dashboard summary. Breakdowns keep first-occurrence
// order; callers sort them for display.
func ComputeStats(list []EnrichedInvestment) PortfolioStats {
	return PortfolioStats{
		TotalInvestedUSD:   TotalInvestedUSD(list),
		TotalExpectedYield: TotalExpectedYield(list),
		InvestmentCount:    len(list),
		ActiveCount:        ActiveCount(list),
		CategoryBreakdown:  CategoryBreakdown(list),
		CurrencyBreakdown:  CurrencyBreakdown(list),
	}
}
