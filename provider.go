package folio

import "strings"

// Period selects the length of the trailing price window a provider returns.
type Period int

const (
	// Days5 is the short window used for asset snapshots.
	Days5 Period = iota
	// Year1 is the long window used for index series.
	Year1
)

func (p Period) String() string {
	switch p {
	case Days5:
		return "5d"
	case Year1:
		return "1y"
	default:
		return "unknown"
	}
}

// days returns the approximate calendar length of the period.
func (p Period) days() int {
	switch p {
	case Days5:
		return 7 // 5 trading days need a week of calendar
	case Year1:
		return 365
	default:
		return 0
	}
}

// PricePoint is one closing price on one day.
type PricePoint struct {
	Date  Date
	Close float64
}

// SecurityInfo holds the descriptive, point-in-time fields of a security.
type SecurityInfo struct {
	Name       string
	Sector     string
	Industry   string
	Volume     int64
	MarketCap  float64
	Week52High float64
	Week52Low  float64
}

// PriceProvider supplies market data to the engine. Each call is a
// potentially slow, failable synchronous lookup: the engine does no caching
// and no retrying on its own.
//
// Implementations must return an error wrapping ErrTickerNotFound for an
// unknown symbol, and ErrProviderUnavailable for transport or server
// failures, so callers can tell the two apart.
type PriceProvider interface {
	// RecentHistory returns the closing prices of the trailing period,
	// in chronological order.
	RecentHistory(ticker string, period Period) ([]PricePoint, error)
	// Descriptive returns the descriptive fields of the security.
	Descriptive(ticker string) (SecurityInfo, error)
}

// NormalizeTicker uppercases a ticker the way providers expect it.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// FetchAssetSnapshot builds an immutable snapshot of a single asset from a
// provider. This is the only constructor that touches the provider; the
// snapshot itself never does I/O again.
func FetchAssetSnapshot(p PriceProvider, ticker string) (*AssetSnapshot, error) {
	ticker = NormalizeTicker(ticker)
	info, err := p.Descriptive(ticker)
	if err != nil {
		return nil, err
	}
	history, err := p.RecentHistory(ticker, Days5)
	if err != nil {
		return nil, err
	}
	closes := make([]float64, len(history))
	for i, pt := range history {
		closes[i] = pt.Close
	}
	return NewAssetSnapshot(ticker, info, closes), nil
}

// FetchIndexSeries builds a one-year index series from a provider.
func FetchIndexSeries(p PriceProvider, ticker string) (*IndexSeries, error) {
	ticker = NormalizeTicker(ticker)
	info, err := p.Descriptive(ticker)
	if err != nil {
		return nil, err
	}
	history, err := p.RecentHistory(ticker, Year1)
	if err != nil {
		return nil, err
	}
	dates := make([]Date, len(history))
	closes := make([]float64, len(history))
	for i, pt := range history {
		dates[i] = pt.Date
		closes[i] = pt.Close
	}
	return NewIndexSeries(ticker, info.Name, dates, closes)
}
