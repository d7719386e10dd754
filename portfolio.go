package folio

import (
	"fmt"
	"sort"
)

// PriceLookup resolves the current price of a held ticker. It is supplied by
// the caller, typically closing over fresh AssetSnapshots.
type PriceLookup func(ticker string) (Money, error)

// HistoryLookup resolves the trailing (date, close) history of a held ticker.
type HistoryLookup func(ticker string) ([]PricePoint, error)

// Portfolio aggregates the current holdings of one named portfolio: quantity
// and weighted-average unit cost per ticker, plus the date of the earliest
// purchase ever recorded.
//
// A portfolio has two states: Empty (no holdings) and Active. AddPosition is
// the only way in; removing the last holding is the only way back. Every
// analytic operation fails with ErrEmptyPortfolio while Empty.
//
// All mutations are written ahead to the Store: if the store write fails,
// the in-memory state is left untouched.
type Portfolio struct {
	name  string
	store Store
	book  *LotBook

	holdings map[string]Quantity
	avgCost  map[string]Money // defined exactly for tickers with holdings > 0

	firstPurchase Date
	reference     *IndexSeries
}

// NewPortfolio creates a portfolio and registers its name in the store.
// It fails with ErrDuplicatePortfolio when the name is already taken.
func NewPortfolio(store Store, name string) (*Portfolio, error) {
	if err := store.AddPortfolio(name); err != nil {
		return nil, err
	}
	return &Portfolio{
		name:     name,
		store:    store,
		book:     NewLotBook(),
		holdings: make(map[string]Quantity),
		avgCost:  make(map[string]Money),
	}, nil
}

// LoadPortfolio rebuilds a portfolio from the lots remaining in the store.
// The weighted-average cost of each ticker is recomputed over its remaining
// lots, and the first purchase date is the earliest stored trade date.
func LoadPortfolio(store Store, name string) (*Portfolio, error) {
	ok, err := store.HasPortfolio(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("portfolio %q: %w", name, ErrNotFound)
	}
	lots, err := store.ListLots(name)
	if err != nil {
		return nil, err
	}
	p := &Portfolio{
		name:     name,
		store:    store,
		book:     NewLotBook(lots...),
		holdings: make(map[string]Quantity),
		avgCost:  make(map[string]Money),
	}
	for _, ticker := range p.book.Tickers() {
		qty := p.book.Holdings(ticker)
		if qty.IsZero() {
			continue
		}
		avg, _ := p.book.WeightedAverageCost(ticker)
		p.holdings[ticker] = qty
		p.avgCost[ticker] = avg
	}
	for _, l := range lots {
		if p.firstPurchase.IsZero() || l.TradeDate.Before(p.firstPurchase) {
			p.firstPurchase = l.TradeDate
		}
	}
	return p, nil
}

// Name returns the portfolio name, its unique key in the store.
func (p *Portfolio) Name() string { return p.name }

// IsEmpty reports whether the portfolio holds nothing.
func (p *Portfolio) IsEmpty() bool { return len(p.holdings) == 0 }

// FirstPurchaseDate is the earliest trade date across all lots ever added.
// It only moves backwards as earlier lots are added; removals never change it.
func (p *Portfolio) FirstPurchaseDate() Date { return p.firstPurchase }

// Quantity returns the held quantity of ticker, 0 when not held.
func (p *Portfolio) Quantity(ticker string) Quantity {
	return p.holdings[NormalizeTicker(ticker)]
}

// AvgCost returns the weighted-average unit cost of ticker.
// ok is false when the ticker is not held.
func (p *Portfolio) AvgCost(ticker string) (avg Money, ok bool) {
	avg, ok = p.avgCost[NormalizeTicker(ticker)]
	return avg, ok
}

// Tickers returns the held tickers, sorted.
func (p *Portfolio) Tickers() []string {
	out := make([]string, 0, len(p.holdings))
	for ticker := range p.holdings {
		out = append(out, ticker)
	}
	sort.Strings(out)
	return out
}

// AddPosition records a purchase: the lot is appended to the store first
// (write-ahead), then the in-memory aggregates are updated. When the ticker
// is already held the unit cost becomes the weighted average
// (oldAvg*oldQty + price*qty) / (oldQty + qty), computed in exact decimals.
func (p *Portfolio) AddPosition(ticker string, quantity Quantity, unitPrice Money, tradeDate Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("add %d %s: %w", quantity, ticker, ErrInvalidQuantity)
	}
	ticker = NormalizeTicker(ticker)
	lot := Lot{Ticker: ticker, Quantity: quantity, UnitPrice: unitPrice, TradeDate: tradeDate}

	if err := p.store.AppendLot(p.name, lot); err != nil {
		return err
	}
	// The ledger write committed; mirror it in memory.
	if err := p.book.RecordPurchase(ticker, quantity, unitPrice, tradeDate); err != nil {
		return err
	}

	oldQty := p.holdings[ticker]
	if oldQty.IsZero() {
		p.avgCost[ticker] = unitPrice
	} else {
		oldAvg := p.avgCost[ticker]
		blended := oldAvg.Mul(oldQty).Add(unitPrice.Mul(quantity)).Div(oldQty.Add(quantity))
		p.avgCost[ticker] = blended
	}
	p.holdings[ticker] = oldQty.Add(quantity)

	if p.firstPurchase.IsZero() || tradeDate.Before(p.firstPurchase) {
		p.firstPurchase = tradeDate
	}
	return nil
}

// RemovePosition disposes of quantity units of ticker. The store rows are
// reduced first (oldest lot first), then the in-memory aggregates. When the
// holding reaches zero the ticker disappears from both holdings and
// average-cost maps.
func (p *Portfolio) RemovePosition(ticker string, quantity Quantity) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("remove %d %s: %w", quantity, ticker, ErrInvalidQuantity)
	}
	ticker = NormalizeTicker(ticker)
	held, ok := p.holdings[ticker]
	if !ok {
		return fmt.Errorf("remove %s: %w", ticker, ErrUnknownTicker)
	}
	if held.LessThan(quantity) {
		return fmt.Errorf("remove %d %s but only %d held: %w", quantity, ticker, held, ErrInsufficientQuantity)
	}

	if err := p.store.ReduceLot(p.name, ticker, quantity); err != nil {
		return err
	}
	if err := p.book.RecordDisposal(ticker, quantity, Today()); err != nil {
		return err
	}

	remaining := held.Sub(quantity)
	if remaining.IsZero() {
		delete(p.holdings, ticker)
		delete(p.avgCost, ticker)
		return nil
	}
	p.holdings[ticker] = remaining
	return nil
}

// PerformanceSinceFirstPurchase returns (current value - cost basis) / cost
// basis across all holdings. It fails with ErrEmptyPortfolio when nothing is
// held or the cost basis is zero.
func (p *Portfolio) PerformanceSinceFirstPurchase(priceOf PriceLookup) (float64, error) {
	if p.IsEmpty() {
		return 0, fmt.Errorf("portfolio %q: %w", p.name, ErrEmptyPortfolio)
	}
	var value, cost Money
	for _, ticker := range p.Tickers() {
		qty := p.holdings[ticker]
		price, err := priceOf(ticker)
		if err != nil {
			return 0, err
		}
		value = value.Add(price.Mul(qty))
		cost = cost.Add(p.avgCost[ticker].Mul(qty))
	}
	if cost.IsZero() {
		return 0, fmt.Errorf("portfolio %q has zero cost basis: %w", p.name, ErrEmptyPortfolio)
	}
	return value.Sub(cost).Ratio(cost), nil
}

// PerAssetReturn returns ticker -> (current price - avg cost) / avg cost for
// every held ticker, 0 for a non-positive average cost.
func (p *Portfolio) PerAssetReturn(priceOf PriceLookup) (map[string]float64, error) {
	if p.IsEmpty() {
		return nil, fmt.Errorf("portfolio %q: %w", p.name, ErrEmptyPortfolio)
	}
	out := make(map[string]float64, len(p.holdings))
	for _, ticker := range p.Tickers() {
		price, err := priceOf(ticker)
		if err != nil {
			return nil, err
		}
		avg := p.avgCost[ticker]
		if !avg.IsPositive() {
			out[ticker] = 0
			continue
		}
		out[ticker] = price.Sub(avg).Ratio(avg)
	}
	return out, nil
}

// SharpeRatio computes the annualized Sharpe ratio of the reconstructed
// daily portfolio value series. ok is false on degenerate input (empty
// return series or zero variance); err reports reconstruction failures.
func (p *Portfolio) SharpeRatio(historyOf HistoryLookup, riskFree float64) (ratio float64, ok bool, err error) {
	series, err := p.ReconstructValueSeries(historyOf)
	if err != nil {
		return 0, false, err
	}
	ratio, ok = series.SharpeRatio(riskFree, tradingDays)
	return ratio, ok, nil
}

// SetReference binds the reference index used by CompareToReference.
func (p *Portfolio) SetReference(index *IndexSeries) { p.reference = index }

// Reference returns the bound reference index, nil when none is bound.
func (p *Portfolio) Reference() *IndexSeries { return p.reference }
