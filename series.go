package folio

import (
	"fmt"
	"math"
	"sort"
)

// ValueSeries is the total value of a portfolio over time, one point per
// date, chronological.
type ValueSeries struct {
	Dates  []Date
	Values []float64
}

// DailyReturns returns the simple period-over-period percentage change of
// the series.
func (s *ValueSeries) DailyReturns() []float64 {
	return returnsFromPrices(s.Values)
}

// SharpeRatio computes the annualized Sharpe ratio of the series' daily
// returns: excess = r - riskFree/days per period, then
// mean(excess)/stddev(excess)*sqrt(days). ok is false on degenerate input
// (fewer than two returns, or zero variance).
func (s *ValueSeries) SharpeRatio(riskFree float64, days int) (ratio float64, ok bool) {
	returns := s.DailyReturns()
	if len(returns) < 2 {
		return 0, false
	}
	perPeriod := riskFree / float64(days)
	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - perPeriod
	}
	vol := sampleStdDev(excess)
	if vol == 0 {
		return 0, false
	}
	return mean(excess) / vol * math.Sqrt(float64(days)), true
}

// ReconstructValueSeries rebuilds the daily total value of the portfolio
// from per-ticker price histories: each ticker's aligned series is scaled by
// its held quantity, the per-ticker series are outer-joined on the union of
// all dates, gaps are forward- then backward-filled (a ticker bought later
// has no earlier price; filling approximates a flat pre-history value rather
// than leaving holes), and the per-date values are summed.
//
// It fails with ErrEmptyPortfolio when nothing is held or when no history is
// available for a held ticker.
func (p *Portfolio) ReconstructValueSeries(historyOf HistoryLookup) (*ValueSeries, error) {
	if p.IsEmpty() {
		return nil, fmt.Errorf("portfolio %q: %w", p.name, ErrEmptyPortfolio)
	}

	type tickerSeries struct {
		byDate map[Date]float64
	}
	series := make(map[string]tickerSeries, len(p.holdings))
	dateSet := make(map[Date]struct{})

	for _, ticker := range p.Tickers() {
		history, err := historyOf(ticker)
		if err != nil {
			return nil, err
		}
		if len(history) == 0 {
			return nil, fmt.Errorf("no price history for held ticker %s: %w", ticker, ErrEmptyPortfolio)
		}
		byDate := make(map[Date]float64, len(history))
		for _, pt := range history {
			byDate[pt.Date] = pt.Close
			dateSet[pt.Date] = struct{}{}
		}
		series[ticker] = tickerSeries{byDate: byDate}
	}

	// Union of all observation dates, chronological.
	dates := make([]Date, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	totals := make([]float64, len(dates))
	for _, ticker := range p.Tickers() {
		aligned := fillAligned(dates, series[ticker].byDate)
		qty := float64(p.holdings[ticker])
		for i, price := range aligned {
			totals[i] += price * qty
		}
	}
	return &ValueSeries{Dates: dates, Values: totals}, nil
}

// fillAligned projects a sparse date->price map onto the full date axis,
// forward-filling gaps and then backward-filling the leading ones.
func fillAligned(dates []Date, byDate map[Date]float64) []float64 {
	aligned := make([]float64, len(dates))
	known := make([]bool, len(dates))
	for i, d := range dates {
		if v, ok := byDate[d]; ok {
			aligned[i] = v
			known[i] = true
		}
	}
	// Forward fill.
	last, haveLast := 0.0, false
	for i := range aligned {
		if known[i] {
			last, haveLast = aligned[i], true
		} else if haveLast {
			aligned[i] = last
			known[i] = true
		}
	}
	// Backward fill the leading gap.
	next, haveNext := 0.0, false
	for i := len(aligned) - 1; i >= 0; i-- {
		if known[i] {
			next, haveNext = aligned[i], true
		} else if haveNext {
			aligned[i] = next
		}
	}
	return aligned
}
