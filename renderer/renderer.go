// Package renderer turns the engine's tabular records into markdown.
//
// The engine itself never formats anything; the CLI feeds these markdown
// documents through a terminal renderer.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nvidal/folio"
)

// Holdings renders the holdings rows as a markdown table.
func Holdings(name string, rows []folio.HoldingRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio %s\n\n", name)
	fmt.Fprintln(&b, "| Ticker | Quantity | Avg Cost | Price | Market Value | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			r.Ticker,
			r.Quantity,
			r.AvgCost,
			r.Price,
			r.MarketValue,
			r.Return.SignedString(),
		)
	}
	return b.String()
}

// Comparison renders a portfolio/index comparison.
func Comparison(c *folio.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s vs %s (%s)\n\n", c.PortfolioName, c.IndexTicker, c.IndexName)
	fmt.Fprintf(&b, "Since first purchase on %s:\n\n", c.Since)
	fmt.Fprintln(&b, "| | Return |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Portfolio | %s |\n", folio.Percent(c.PortfolioReturn*100).SignedString())
	fmt.Fprintf(&b, "| %s | %s |\n", c.IndexTicker, folio.Percent(c.IndexReturn*100).SignedString())
	fmt.Fprintf(&b, "| Excess | %s |\n", folio.Percent(c.Excess()*100).SignedString())
	if len(c.PerAsset) > 0 {
		fmt.Fprintln(&b, "\n## Per asset")
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "| Ticker | Return |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, ticker := range sortedKeys(c.PerAsset) {
			fmt.Fprintf(&b, "| %s | %s |\n", ticker, folio.Percent(c.PerAsset[ticker]*100).SignedString())
		}
	}
	return b.String()
}

// Asset renders the descriptive fields and derived statistics of a snapshot.
func Asset(a *folio.AssetSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s — %s\n\n", a.Ticker(), a.CompanyName())
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Sector | %s |\n", a.Sector())
	fmt.Fprintf(&b, "| Industry | %s |\n", a.Industry())
	fmt.Fprintf(&b, "| Price | %.2f |\n", a.PriceToday())
	fmt.Fprintf(&b, "| Day change | %+.2f (%s) |\n", a.DayChange(), a.DayChangePct().SignedString())
	fmt.Fprintf(&b, "| Volume | %d |\n", a.Volume())
	fmt.Fprintf(&b, "| Market cap | %.0f |\n", a.MarketCap())
	fmt.Fprintf(&b, "| 52w high | %.2f |\n", a.Week52High())
	fmt.Fprintf(&b, "| 52w low | %.2f |\n", a.Week52Low())
	fmt.Fprintf(&b, "| Volatility | %.4f |\n", a.HistoricalVolatility())
	fmt.Fprintf(&b, "| Max drawdown (52w range) | %s |\n", folio.Percent(a.MaxDrawdown52w()*100))
	return b.String()
}

// Index renders the derived statistics of an index series.
func Index(x *folio.IndexSeries, riskFree float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s — %s\n\n", x.Ticker(), x.Name())
	fmt.Fprintf(&b, "Period: %d days\n\n", x.Len())
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Day change | %+.2f (%s) |\n", x.DayChange(), x.DayChangePct().SignedString())
	fmt.Fprintf(&b, "| Cumulative return | %s |\n", folio.Percent(x.CumulativeReturn()*100).SignedString())
	fmt.Fprintf(&b, "| Volatility | %.4f |\n", x.HistoricalVolatility())
	fmt.Fprintf(&b, "| Sharpe ratio | %.4f |\n", x.SharpeRatio(riskFree))
	fmt.Fprintf(&b, "| Max drawdown | %s |\n", folio.Percent(x.RunningMaxDrawdown()*100))
	return b.String()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
