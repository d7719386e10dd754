package folio

// DefaultAssetRiskFree is the risk-free rate assumed when reporting
// asset-level statistics.
const DefaultAssetRiskFree = 0.02

// AssetSnapshot is an immutable view of one ticker at refresh time: its
// descriptive fields, the trailing closing prices, and the simple returns
// derived from them.
//
// A refresh produces a whole new snapshot; the price history of an existing
// snapshot is never mutated, and the returns slice is always recomputed in
// full from the prices it was built with.
type AssetSnapshot struct {
	ticker   string
	name     string
	sector   string
	industry string

	prices  []float64 // chronological closes
	returns []float64 // len(prices)-1, derived once at construction

	week52High float64
	week52Low  float64
	volume     int64
	marketCap  float64
}

// NewAssetSnapshot builds a snapshot from descriptive fields and a trailing
// window of chronological closing prices.
func NewAssetSnapshot(ticker string, info SecurityInfo, closes []float64) *AssetSnapshot {
	prices := make([]float64, len(closes))
	copy(prices, closes)
	return &AssetSnapshot{
		ticker:     NormalizeTicker(ticker),
		name:       info.Name,
		sector:     info.Sector,
		industry:   info.Industry,
		prices:     prices,
		returns:    returnsFromPrices(prices),
		week52High: info.Week52High,
		week52Low:  info.Week52Low,
		volume:     info.Volume,
		marketCap:  info.MarketCap,
	}
}

func (a *AssetSnapshot) Ticker() string      { return a.ticker }
func (a *AssetSnapshot) CompanyName() string { return a.name }
func (a *AssetSnapshot) Sector() string      { return a.sector }
func (a *AssetSnapshot) Industry() string    { return a.industry }
func (a *AssetSnapshot) Volume() int64       { return a.volume }
func (a *AssetSnapshot) MarketCap() float64  { return a.marketCap }
func (a *AssetSnapshot) Week52High() float64 { return a.week52High }
func (a *AssetSnapshot) Week52Low() float64  { return a.week52Low }

// Prices returns a copy of the trailing closing prices.
func (a *AssetSnapshot) Prices() []float64 {
	out := make([]float64, len(a.prices))
	copy(out, a.prices)
	return out
}

// Returns returns a copy of the derived simple returns.
func (a *AssetSnapshot) Returns() []float64 {
	out := make([]float64, len(a.returns))
	copy(out, a.returns)
	return out
}

// PriceToday returns the last close of the window, 0 when the history is empty.
func (a *AssetSnapshot) PriceToday() float64 {
	if len(a.prices) == 0 {
		return 0
	}
	return a.prices[len(a.prices)-1]
}

// PriceYesterday returns the next-to-last close, 0 when the history is shorter.
func (a *AssetSnapshot) PriceYesterday() float64 {
	if len(a.prices) < 2 {
		return 0
	}
	return a.prices[len(a.prices)-2]
}

// DayChange returns today's close minus yesterday's.
func (a *AssetSnapshot) DayChange() float64 {
	return a.PriceToday() - a.PriceYesterday()
}

// DayChangePct returns the day change as a percentage of yesterday's close,
// 0 when yesterday's close is 0.
func (a *AssetSnapshot) DayChangePct() Percent {
	yesterday := a.PriceYesterday()
	if yesterday == 0 {
		return 0
	}
	return Percent(a.DayChange() / yesterday * 100)
}

// HistoricalVolatility is the sample standard deviation of the daily
// returns, 0 when there are fewer than two returns.
func (a *AssetSnapshot) HistoricalVolatility() float64 {
	return sampleStdDev(a.returns)
}

// MaxDrawdown52w is the high/low drawdown proxy (high-low)/high over the
// 52-week range, 0 when the high is 0.
//
// It is a point-in-time proxy, not the path-dependent drawdown; see
// IndexSeries.RunningMaxDrawdown for the path-dependent computation.
func (a *AssetSnapshot) MaxDrawdown52w() float64 {
	if a.week52High == 0 {
		return 0
	}
	return (a.week52High - a.week52Low) / a.week52High
}
