package folio

import (
	"fmt"
	"sort"
)

// DefaultIndexRiskFree is the risk-free rate assumed when reporting
// index-level Sharpe ratios.
const DefaultIndexRiskFree = 0.01

// IndexSeries is an immutable one-year view of a reference index: closing
// prices with their dates, and the simple returns derived from them.
//
// Unlike AssetSnapshot it carries a date per price, so it supports
// return-since-date queries and the path-dependent drawdown.
type IndexSeries struct {
	ticker string
	name   string

	dates   []Date    // chronological, aligned 1:1 with prices
	prices  []float64 // chronological closes
	returns []float64 // len(prices)-1, derived once at construction
}

// NewIndexSeries builds an index series from aligned dates and closes.
// The two slices must have the same length.
func NewIndexSeries(ticker, name string, dates []Date, closes []float64) (*IndexSeries, error) {
	if len(dates) != len(closes) {
		return nil, fmt.Errorf("index %s: %d dates for %d prices", ticker, len(dates), len(closes))
	}
	ds := make([]Date, len(dates))
	copy(ds, dates)
	ps := make([]float64, len(closes))
	copy(ps, closes)
	return &IndexSeries{
		ticker:  NormalizeTicker(ticker),
		name:    name,
		dates:   ds,
		prices:  ps,
		returns: returnsFromPrices(ps),
	}, nil
}

func (x *IndexSeries) Ticker() string { return x.ticker }
func (x *IndexSeries) Name() string   { return x.name }

// Len returns the number of observations in the series.
func (x *IndexSeries) Len() int { return len(x.prices) }

// Dates returns a copy of the observation dates.
func (x *IndexSeries) Dates() []Date {
	out := make([]Date, len(x.dates))
	copy(out, x.dates)
	return out
}

// Prices returns a copy of the closing prices.
func (x *IndexSeries) Prices() []float64 {
	out := make([]float64, len(x.prices))
	copy(out, x.prices)
	return out
}

// DayChange returns the last close minus the previous one, 0 when the
// series is shorter than two observations.
func (x *IndexSeries) DayChange() float64 {
	if len(x.prices) < 2 {
		return 0
	}
	return x.prices[len(x.prices)-1] - x.prices[len(x.prices)-2]
}

// DayChangePct returns the day change as a percentage of the previous
// close, 0 on short series or a zero previous close.
func (x *IndexSeries) DayChangePct() Percent {
	if len(x.prices) < 2 || x.prices[len(x.prices)-2] == 0 {
		return 0
	}
	return Percent(x.DayChange() / x.prices[len(x.prices)-2] * 100)
}

// HistoricalVolatility is the sample standard deviation of the daily
// returns, 0 when there are fewer than two returns.
func (x *IndexSeries) HistoricalVolatility() float64 {
	return sampleStdDev(x.returns)
}

// CumulativeReturn is last/first - 1 over the whole series, 0 when empty.
func (x *IndexSeries) CumulativeReturn() float64 {
	if len(x.prices) == 0 || x.prices[0] == 0 {
		return 0
	}
	return x.prices[len(x.prices)-1]/x.prices[0] - 1
}

// SharpeRatio is the annualized Sharpe ratio of the daily returns against
// the given risk-free rate. It returns 0 on zero volatility or no returns.
func (x *IndexSeries) SharpeRatio(riskFree float64) float64 {
	return sharpeFromDaily(x.returns, riskFree)
}

// RunningMaxDrawdown is the path-dependent maximum drawdown: the absolute
// value of the deepest peak-to-trough decline observed in the series.
func (x *IndexSeries) RunningMaxDrawdown() float64 {
	return runningMaxDrawdown(x.prices)
}

// ReturnSince returns last/first - 1 where first is the close on the first
// date on or after start. It fails with ErrNotFound when the series is
// empty, when no date qualifies, or when the located close is 0.
func (x *IndexSeries) ReturnSince(start Date) (float64, error) {
	if len(x.prices) == 0 {
		return 0, fmt.Errorf("index %s has no history: %w", x.ticker, ErrNotFound)
	}
	// dates are sorted ascending, so the first qualifying one is found by
	// binary search.
	i := sort.Search(len(x.dates), func(i int) bool {
		return !x.dates[i].Before(start)
	})
	if i == len(x.dates) {
		return 0, fmt.Errorf("index %s has no data on or after %s: %w", x.ticker, start, ErrNotFound)
	}
	first := x.prices[i]
	if first == 0 {
		return 0, fmt.Errorf("index %s price on %s is zero: %w", x.ticker, x.dates[i], ErrNotFound)
	}
	return x.prices[len(x.prices)-1]/first - 1, nil
}
