package folio

import (
	"errors"
	"math"
	"testing"
)

func fixedHistories(histories map[string][]PricePoint) HistoryLookup {
	return func(ticker string) ([]PricePoint, error) {
		return histories[ticker], nil
	}
}

func TestReconstructValueSeries_OuterJoin(t *testing.T) {
	p := newTestPortfolio(t)
	mustAdd(t, p, "AAPL", 2, USD(100), d("2024-01-02"))
	mustAdd(t, p, "MSFT", 1, USD(400), d("2024-01-02"))

	// AAPL has no 01-03 close and MSFT has no 01-02 close: the join must
	// forward-fill AAPL and backward-fill MSFT's leading gap.
	histories := fixedHistories(map[string][]PricePoint{
		"AAPL": {
			{Date: d("2024-01-02"), Close: 100},
			{Date: d("2024-01-04"), Close: 110},
		},
		"MSFT": {
			{Date: d("2024-01-03"), Close: 400},
			{Date: d("2024-01-04"), Close: 410},
		},
	})

	series, err := p.ReconstructValueSeries(histories)
	if err != nil {
		t.Fatalf("ReconstructValueSeries() unexpected error: %v", err)
	}

	wantDates := []Date{d("2024-01-02"), d("2024-01-03"), d("2024-01-04")}
	wantValues := []float64{
		2*100 + 1*400, // MSFT backfilled from 01-03
		2*100 + 1*400, // AAPL carried forward from 01-02
		2*110 + 1*410,
	}
	if len(series.Dates) != len(wantDates) {
		t.Fatalf("Dates len = %d, want %d", len(series.Dates), len(wantDates))
	}
	for i := range wantDates {
		if series.Dates[i] != wantDates[i] {
			t.Errorf("Dates[%d] = %s, want %s", i, series.Dates[i], wantDates[i])
		}
		if !almostEqual(series.Values[i], wantValues[i]) {
			t.Errorf("Values[%d] = %v, want %v", i, series.Values[i], wantValues[i])
		}
	}
}

func TestReconstructValueSeries_NoHistory(t *testing.T) {
	p := newTestPortfolio(t)
	mustAdd(t, p, "AAPL", 1, USD(100), d("2024-01-02"))

	_, err := p.ReconstructValueSeries(fixedHistories(nil))
	if !errors.Is(err, ErrEmptyPortfolio) {
		t.Errorf("ReconstructValueSeries() with no history error = %v, want ErrEmptyPortfolio", err)
	}
}

func TestValueSeries_SharpeRatio(t *testing.T) {
	flat := &ValueSeries{Values: []float64{100, 100, 100, 100}}
	if _, ok := flat.SharpeRatio(0.02, tradingDays); ok {
		t.Error("SharpeRatio() on flat series ok = true, want false")
	}

	short := &ValueSeries{Values: []float64{100, 110}}
	if _, ok := short.SharpeRatio(0.02, tradingDays); ok {
		t.Error("SharpeRatio() with one return ok = true, want false")
	}

	s := &ValueSeries{Values: []float64{100, 101, 100.5, 102, 103}}
	ratio, ok := s.SharpeRatio(0, tradingDays)
	if !ok {
		t.Fatal("SharpeRatio() ok = false, want true")
	}
	returns := s.DailyReturns()
	want := mean(returns) / sampleStdDev(returns) * math.Sqrt(tradingDays)
	if !almostEqual(ratio, want) {
		t.Errorf("SharpeRatio() = %v, want %v", ratio, want)
	}
}

func TestPortfolio_SharpeRatio(t *testing.T) {
	p := newTestPortfolio(t)
	mustAdd(t, p, "AAPL", 1, USD(100), d("2024-01-02"))

	histories := fixedHistories(map[string][]PricePoint{
		"AAPL": {
			{Date: d("2024-01-02"), Close: 100},
			{Date: d("2024-01-03"), Close: 102},
			{Date: d("2024-01-04"), Close: 101},
			{Date: d("2024-01-05"), Close: 104},
		},
	})
	ratio, ok, err := p.SharpeRatio(histories, 0.02)
	if err != nil {
		t.Fatalf("SharpeRatio() unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("SharpeRatio() ok = false, want true")
	}
	if ratio == 0 {
		t.Error("SharpeRatio() = 0, want a non-zero ratio for a moving series")
	}
}
