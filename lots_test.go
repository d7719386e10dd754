package folio

import (
	"errors"
	"testing"
)

func TestLotBook_RecordPurchase(t *testing.T) {
	b := NewLotBook()
	if err := b.RecordPurchase("aapl", 10, USD(150), d("2024-01-05")); err != nil {
		t.Fatalf("RecordPurchase() unexpected error: %v", err)
	}
	if got := b.Holdings("AAPL"); got != 10 {
		t.Errorf("Holdings(AAPL) = %d, want 10", got)
	}

	if err := b.RecordPurchase("AAPL", 0, USD(150), d("2024-01-05")); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("RecordPurchase(qty=0) error = %v, want ErrInvalidQuantity", err)
	}
	if err := b.RecordPurchase("AAPL", -3, USD(150), d("2024-01-05")); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("RecordPurchase(qty<0) error = %v, want ErrInvalidQuantity", err)
	}
}

func TestLotBook_DisposalIsFIFO(t *testing.T) {
	b := NewLotBook()
	// Recorded out of order on purpose: disposal must still consume by
	// oldest trade date.
	mustPurchase(t, b, "AAPL", 10, USD(200), d("2024-02-01"))
	mustPurchase(t, b, "AAPL", 10, USD(100), d("2024-01-01"))

	if err := b.RecordDisposal("AAPL", 15, d("2024-03-01")); err != nil {
		t.Fatalf("RecordDisposal() unexpected error: %v", err)
	}

	lots := b.Lots("AAPL")
	if len(lots) != 1 {
		t.Fatalf("Lots() len = %d, want 1", len(lots))
	}
	// The oldest lot is gone, the newer one partially consumed.
	if lots[0].Quantity != 5 || lots[0].TradeDate != d("2024-02-01") {
		t.Errorf("remaining lot = %d @ %s, want 5 @ 2024-02-01", lots[0].Quantity, lots[0].TradeDate)
	}
	if got := b.Holdings("AAPL"); got != 5 {
		t.Errorf("Holdings(AAPL) = %d, want 5", got)
	}
}

func TestLotBook_DisposalInsufficientLeavesBookUntouched(t *testing.T) {
	b := NewLotBook()
	mustPurchase(t, b, "AAPL", 10, USD(100), d("2024-01-01"))
	mustPurchase(t, b, "AAPL", 5, USD(120), d("2024-02-01"))

	err := b.RecordDisposal("AAPL", 16, d("2024-03-01"))
	if !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("RecordDisposal() error = %v, want ErrInsufficientQuantity", err)
	}
	if got := b.Holdings("AAPL"); got != 15 {
		t.Errorf("Holdings(AAPL) after failed disposal = %d, want 15", got)
	}
	if got := len(b.Lots("AAPL")); got != 2 {
		t.Errorf("Lots(AAPL) after failed disposal = %d lots, want 2", got)
	}
}

func TestLotBook_DisposalUnknownTicker(t *testing.T) {
	b := NewLotBook()
	mustPurchase(t, b, "AAPL", 10, USD(100), d("2024-01-01"))
	if err := b.RecordDisposal("MSFT", 1, d("2024-02-01")); !errors.Is(err, ErrInsufficientQuantity) {
		t.Errorf("RecordDisposal(unheld) error = %v, want ErrInsufficientQuantity", err)
	}
}

func TestLotBook_WeightedAverageCost(t *testing.T) {
	b := NewLotBook()
	mustPurchase(t, b, "AAPL", 10, USD(100), d("2024-01-01"))
	mustPurchase(t, b, "AAPL", 10, USD(200), d("2024-02-01"))

	avg, ok := b.WeightedAverageCost("AAPL")
	if !ok {
		t.Fatal("WeightedAverageCost() ok = false, want true")
	}
	if !avg.Equal(USD(150)) {
		t.Errorf("WeightedAverageCost() = %v, want $150.00", avg)
	}

	if _, ok := b.WeightedAverageCost("MSFT"); ok {
		t.Error("WeightedAverageCost(unheld) ok = true, want false")
	}
}

func TestLotBook_WeightedAverageCostAfterDisposal(t *testing.T) {
	b := NewLotBook()
	mustPurchase(t, b, "AAPL", 10, USD(100), d("2024-01-01"))
	mustPurchase(t, b, "AAPL", 10, USD(200), d("2024-02-01"))

	// FIFO disposal consumes the cheap lot; the remaining average reflects
	// only what is left in the book.
	if err := b.RecordDisposal("AAPL", 10, d("2024-03-01")); err != nil {
		t.Fatalf("RecordDisposal() unexpected error: %v", err)
	}
	avg, ok := b.WeightedAverageCost("AAPL")
	if !ok || !avg.Equal(USD(200)) {
		t.Errorf("WeightedAverageCost() after disposal = %v (ok=%v), want $200.00", avg, ok)
	}
}

func TestLotBook_Tickers(t *testing.T) {
	b := NewLotBook(
		Lot{Ticker: "msft", Quantity: 1, UnitPrice: USD(400), TradeDate: d("2024-01-02")},
		Lot{Ticker: "AAPL", Quantity: 2, UnitPrice: USD(150), TradeDate: d("2024-01-03")},
	)
	got := b.Tickers()
	if len(got) != 2 || got[0] != "AAPL" || got[1] != "MSFT" {
		t.Errorf("Tickers() = %v, want [AAPL MSFT]", got)
	}
}

func mustPurchase(t *testing.T, b *LotBook, ticker string, qty Quantity, price Money, day Date) {
	t.Helper()
	if err := b.RecordPurchase(ticker, qty, price, day); err != nil {
		t.Fatalf("RecordPurchase(%s) unexpected error: %v", ticker, err)
	}
}
