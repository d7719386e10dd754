package folio

import (
	"errors"
	"testing"
)

func newTestIndex(t *testing.T, dates []Date, closes []float64) *IndexSeries {
	t.Helper()
	x, err := NewIndexSeries("gspc.indx", "S&P 500", dates, closes)
	if err != nil {
		t.Fatalf("NewIndexSeries() unexpected error: %v", err)
	}
	return x
}

func TestNewIndexSeries_AlignmentInvariant(t *testing.T) {
	_, err := NewIndexSeries("X", "", []Date{d("2024-01-02")}, []float64{10, 11})
	if err == nil {
		t.Fatal("NewIndexSeries() with misaligned dates must fail")
	}
}

func TestIndexSeries_CumulativeReturn(t *testing.T) {
	testCases := []struct {
		name   string
		closes []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"flat", []float64{50, 50}, 0},
		{"doubled", []float64{50, 80, 100}, 1},
		{"down", []float64{100, 80}, -0.2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dates := make([]Date, len(tc.closes))
			for i := range dates {
				dates[i] = d("2024-01-02").Add(i)
			}
			x := newTestIndex(t, dates, tc.closes)
			if got := x.CumulativeReturn(); !almostEqual(got, tc.want) {
				t.Errorf("CumulativeReturn() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIndexSeries_RunningMaxDrawdown(t *testing.T) {
	dates := []Date{d("2024-01-02"), d("2024-01-03"), d("2024-01-04"), d("2024-01-05"), d("2024-01-08")}
	x := newTestIndex(t, dates, []float64{10, 20, 15, 30, 10})
	if got, want := x.RunningMaxDrawdown(), 2.0/3.0; !almostEqual(got, want) {
		t.Errorf("RunningMaxDrawdown() = %v, want %v", got, want)
	}
}

func TestIndexSeries_SharpeRatio(t *testing.T) {
	// constant prices mean zero volatility: the ratio must degrade to 0,
	// never to a division error
	dates := []Date{d("2024-01-02"), d("2024-01-03"), d("2024-01-04")}
	x := newTestIndex(t, dates, []float64{100, 100, 100})
	if got := x.SharpeRatio(DefaultIndexRiskFree); got != 0 {
		t.Errorf("SharpeRatio() on flat series = %v, want 0", got)
	}
}

func TestIndexSeries_ReturnSince(t *testing.T) {
	dates := []Date{d("2024-01-02"), d("2024-01-05"), d("2024-01-09"), d("2024-01-12")}
	closes := []float64{100, 110, 120, 150}
	x := newTestIndex(t, dates, closes)

	testCases := []struct {
		name    string
		start   string
		want    float64
		wantErr bool
	}{
		{
			name:  "exact first date",
			start: "2024-01-02",
			want:  0.5,
		},
		{
			name:  "before the series starts",
			start: "2023-12-25",
			want:  0.5,
		},
		{
			// 2024-01-06 is between observations; the next one (01-09) is used
			name:  "between observations",
			start: "2024-01-06",
			want:  0.25,
		},
		{
			name:  "last date",
			start: "2024-01-12",
			want:  0,
		},
		{
			name:    "after the series ends",
			start:   "2024-02-01",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := x.ReturnSince(d(tc.start))
			if tc.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("ReturnSince(%s) error = %v, want ErrNotFound", tc.start, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReturnSince(%s) unexpected error: %v", tc.start, err)
			}
			if !almostEqual(got, tc.want) {
				t.Errorf("ReturnSince(%s) = %v, want %v", tc.start, got, tc.want)
			}
		})
	}
}

func TestIndexSeries_ReturnSince_Degenerate(t *testing.T) {
	empty := newTestIndex(t, nil, nil)
	if _, err := empty.ReturnSince(d("2024-01-02")); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReturnSince on empty series error = %v, want ErrNotFound", err)
	}

	zero := newTestIndex(t, []Date{d("2024-01-02")}, []float64{0})
	if _, err := zero.ReturnSince(d("2024-01-01")); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReturnSince on zero price error = %v, want ErrNotFound", err)
	}
}
