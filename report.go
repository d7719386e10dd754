package folio

import "fmt"

// HoldingRow is one line of the tabular holdings report. The engine exposes
// plain records; turning them into tables or charts is the presentation
// layer's job.
type HoldingRow struct {
	Ticker      string
	Quantity    Quantity
	AvgCost     Money
	Price       Money
	MarketValue Money
	Return      Percent
}

// HoldingRows returns one row per held ticker, sorted by ticker.
// It fails with ErrEmptyPortfolio when nothing is held.
func (p *Portfolio) HoldingRows(priceOf PriceLookup) ([]HoldingRow, error) {
	if p.IsEmpty() {
		return nil, fmt.Errorf("portfolio %q: %w", p.name, ErrEmptyPortfolio)
	}
	rows := make([]HoldingRow, 0, len(p.holdings))
	for _, ticker := range p.Tickers() {
		qty := p.holdings[ticker]
		avg := p.avgCost[ticker]
		price, err := priceOf(ticker)
		if err != nil {
			return nil, err
		}
		var ret Percent
		if avg.IsPositive() {
			ret = Percent(price.Sub(avg).Ratio(avg) * 100)
		}
		rows = append(rows, HoldingRow{
			Ticker:      ticker,
			Quantity:    qty,
			AvgCost:     avg,
			Price:       price,
			MarketValue: price.Mul(qty),
			Return:      ret,
		})
	}
	return rows, nil
}

// Comparison joins the portfolio performance since its first purchase with
// the reference index return over the same span.
type Comparison struct {
	PortfolioName   string
	Since           Date
	PortfolioReturn float64
	IndexTicker     string
	IndexName       string
	IndexReturn     float64
	PerAsset        map[string]float64
}

// Excess is the portfolio return minus the index return.
func (c *Comparison) Excess() float64 { return c.PortfolioReturn - c.IndexReturn }

// CompareToReference joins the portfolio performance with the bound
// reference index's return since the first purchase date. It fails with
// ErrNoReference when no index is bound, and with ErrEmptyPortfolio while
// the portfolio is empty.
func (p *Portfolio) CompareToReference(priceOf PriceLookup) (*Comparison, error) {
	if p.reference == nil {
		return nil, fmt.Errorf("portfolio %q: %w", p.name, ErrNoReference)
	}
	perf, err := p.PerformanceSinceFirstPurchase(priceOf)
	if err != nil {
		return nil, err
	}
	perAsset, err := p.PerAssetReturn(priceOf)
	if err != nil {
		return nil, err
	}
	indexReturn, err := p.reference.ReturnSince(p.firstPurchase)
	if err != nil {
		return nil, err
	}
	return &Comparison{
		PortfolioName:   p.name,
		Since:           p.firstPurchase,
		PortfolioReturn: perf,
		IndexTicker:     p.reference.Ticker(),
		IndexName:       p.reference.Name(),
		IndexReturn:     indexReturn,
		PerAsset:        perAsset,
	}, nil
}
