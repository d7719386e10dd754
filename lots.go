package folio

import (
	"fmt"
	"sort"
)

// Lot is a single purchase of a security: the basis for cost accounting and
// for reconstructing holdings. A lot is immutable once recorded; disposals
// shrink the book, never the lot values themselves.
type Lot struct {
	Ticker    string
	Quantity  Quantity
	UnitPrice Money
	TradeDate Date
}

// Cost returns the total cost of the lot (quantity times unit price).
func (l Lot) Cost() Money { return l.UnitPrice.Mul(l.Quantity) }

// LotBook is the per-portfolio book of open purchase lots.
//
// Purchases append; disposals consume quantity from the oldest trade date
// first, deleting lots that reach zero. The removal order is FIFO even
// though the cost basis exposed to the portfolio is a single weighted
// average, not a per-lot FIFO cost.
type LotBook struct {
	lots []Lot
}

// NewLotBook creates a book from existing lots, typically loaded from a
// store. Lots are kept sorted by trade date; the sort is stable so lots
// recorded on the same day keep their original relative order.
func NewLotBook(lots ...Lot) *LotBook {
	b := &LotBook{lots: make([]Lot, 0, len(lots))}
	for _, l := range lots {
		l.Ticker = NormalizeTicker(l.Ticker)
		b.lots = append(b.lots, l)
	}
	b.stableSort()
	return b
}

func (b *LotBook) stableSort() {
	sort.SliceStable(b.lots, func(i, j int) bool {
		return b.lots[i].TradeDate.Before(b.lots[j].TradeDate)
	})
}

// RecordPurchase appends a lot to the book.
// The quantity must be a positive whole number.
func (b *LotBook) RecordPurchase(ticker string, quantity Quantity, unitPrice Money, tradeDate Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("purchase of %d %s: %w", quantity, ticker, ErrInvalidQuantity)
	}
	b.lots = append(b.lots, Lot{
		Ticker:    NormalizeTicker(ticker),
		Quantity:  quantity,
		UnitPrice: unitPrice,
		TradeDate: tradeDate,
	})
	b.stableSort()
	return nil
}

// RecordDisposal removes quantity units of ticker from the book, oldest
// trade date first, partially consuming a lot when it is larger than the
// remainder needed. It fails with ErrInsufficientQuantity when the book
// holds less than requested, and the book is left untouched in that case.
func (b *LotBook) RecordDisposal(ticker string, quantity Quantity, tradeDate Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("disposal of %d %s: %w", quantity, ticker, ErrInvalidQuantity)
	}
	ticker = NormalizeTicker(ticker)
	// Check the total first so a failure never leaves a half-consumed book.
	if held := b.Holdings(ticker); held.LessThan(quantity) {
		return fmt.Errorf("disposal of %d %s but only %d held: %w", quantity, ticker, held, ErrInsufficientQuantity)
	}

	remaining := quantity
	kept := b.lots[:0]
	for _, l := range b.lots {
		if l.Ticker != ticker || remaining.IsZero() {
			kept = append(kept, l)
			continue
		}
		if remaining.LessThan(l.Quantity) {
			// Partial consumption of this lot.
			l.Quantity = l.Quantity.Sub(remaining)
			remaining = 0
			kept = append(kept, l)
			continue
		}
		// Full consumption: the lot disappears from the book.
		remaining = remaining.Sub(l.Quantity)
	}
	b.lots = kept
	return nil
}

// Holdings returns the total quantity of ticker across remaining lots.
func (b *LotBook) Holdings(ticker string) Quantity {
	ticker = NormalizeTicker(ticker)
	var total Quantity
	for _, l := range b.lots {
		if l.Ticker == ticker {
			total = total.Add(l.Quantity)
		}
	}
	return total
}

// Lots returns a copy of the remaining lots for ticker, oldest first.
func (b *LotBook) Lots(ticker string) []Lot {
	ticker = NormalizeTicker(ticker)
	var out []Lot
	for _, l := range b.lots {
		if l.Ticker == ticker {
			out = append(out, l)
		}
	}
	return out
}

// Tickers returns the set of tickers with a non-zero holding, sorted.
func (b *LotBook) Tickers() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range b.lots {
		if _, ok := seen[l.Ticker]; !ok {
			seen[l.Ticker] = struct{}{}
			out = append(out, l.Ticker)
		}
	}
	sort.Strings(out)
	return out
}

// WeightedAverageCost returns the blended unit cost of the remaining lots
// of ticker: sum(quantity*price)/sum(quantity) computed in exact decimals.
// ok is false when no lot remains.
func (b *LotBook) WeightedAverageCost(ticker string) (avg Money, ok bool) {
	var total Quantity
	var cost Money
	for _, l := range b.Lots(ticker) {
		total = total.Add(l.Quantity)
		cost = cost.Add(l.Cost())
	}
	if total.IsZero() {
		return Money{}, false
	}
	return cost.Div(total), true
}
