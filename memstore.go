package folio

import (
	"fmt"
	"sort"
)

// MemoryStore is a Store kept entirely in memory. It backs tests and
// short-lived sessions that do not need a database.
type MemoryStore struct {
	lots       map[string][]Lot // portfolio name -> lots, oldest first
	portfolios map[string]struct{}
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lots:       make(map[string][]Lot),
		portfolios: make(map[string]struct{}),
	}
}

func (s *MemoryStore) AddPortfolio(name string) error {
	if _, ok := s.portfolios[name]; ok {
		return fmt.Errorf("add portfolio %q: %w", name, ErrDuplicatePortfolio)
	}
	s.portfolios[name] = struct{}{}
	return nil
}

func (s *MemoryStore) HasPortfolio(name string) (bool, error) {
	_, ok := s.portfolios[name]
	return ok, nil
}

func (s *MemoryStore) ListPortfolios() ([]string, error) {
	names := make([]string, 0, len(s.portfolios))
	for name := range s.portfolios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) AppendLot(portfolio string, lot Lot) error {
	lot.Ticker = NormalizeTicker(lot.Ticker)
	lots := append(s.lots[portfolio], lot)
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].TradeDate.Before(lots[j].TradeDate)
	})
	s.lots[portfolio] = lots
	s.portfolios[portfolio] = struct{}{}
	return nil
}

func (s *MemoryStore) ReduceLot(portfolio, ticker string, quantity Quantity) error {
	ticker = NormalizeTicker(ticker)
	var held Quantity
	for _, l := range s.lots[portfolio] {
		if l.Ticker == ticker {
			held = held.Add(l.Quantity)
		}
	}
	if held.LessThan(quantity) {
		return fmt.Errorf("reduce %d %s in %q but only %d stored: %w",
			quantity, ticker, portfolio, held, ErrInsufficientQuantity)
	}

	remaining := quantity
	kept := make([]Lot, 0, len(s.lots[portfolio]))
	for _, l := range s.lots[portfolio] {
		if l.Ticker != ticker || remaining.IsZero() {
			kept = append(kept, l)
			continue
		}
		if remaining.LessThan(l.Quantity) {
			l.Quantity = l.Quantity.Sub(remaining)
			remaining = 0
			kept = append(kept, l)
			continue
		}
		remaining = remaining.Sub(l.Quantity)
	}
	s.lots[portfolio] = kept
	return nil
}

func (s *MemoryStore) ListLots(portfolio string) ([]Lot, error) {
	out := make([]Lot, len(s.lots[portfolio]))
	copy(out, s.lots[portfolio])
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
