// Package report renders dashboard data as plain text for terminals.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"folio/internal/portfolio"
)

// Money formats amount in currency with the currency's symbol, grouping
// and minor-unit precision. Unknown currency codes fall back to a plain
// two-decimal rendering followed by the code.
func Money(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", decimal.NewFromFloat(amount).StringFixed(2), currency)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// USD formats amount as US dollars.
func USD(amount float64) string {
	return Money(amount, "USD")
}

// Summary writes the headline numbers, the breakdowns and the yearly
// projection of one dashboard.
func Summary(w io.Writer, title string, stats portfolio.PortfolioStats, yearly []portfolio.YearlyTotal) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n\n", title)
	fmt.Fprintf(tw, "Total invested\t%s\n", USD(stats.TotalInvestedUSD))
	fmt.Fprintf(tw, "Expected yield\t%s\n", USD(stats.TotalExpectedYield))
	fmt.Fprintf(tw, "Investments\t%d (%d active)\n", stats.InvestmentCount, stats.ActiveCount)

	writeGroups(tw, "By category", stats.CategoryBreakdown)
	writeGroups(tw, "By currency", stats.CurrencyBreakdown)

	if len(yearly) > 0 {
		fmt.Fprintf(tw, "\nProjection\tPrincipal\tYield\tTotal\n")
		for _, y := range yearly {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", y.Year, USD(y.Principal), USD(y.Yield), USD(y.TotalValue))
		}
	}

	return tw.Flush()
}

func writeGroups(w io.Writer, heading string, groups []portfolio.GroupTotal) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\tUSD\tCount\n", heading)
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%s\t%d\n", g.Key, USD(g.TotalUSD), g.Count)
	}
}
