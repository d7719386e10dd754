package renderer

import (
	"strings"
	"testing"

	"github.com/nvidal/folio"
)

func TestHoldings(t *testing.T) {
	rows := []folio.HoldingRow{
		{
			Ticker:      "AAPL",
			Quantity:    10,
			AvgCost:     folio.M(100, "USD"),
			Price:       folio.M(110, "USD"),
			MarketValue: folio.M(1100, "USD"),
			Return:      10,
		},
	}
	md := Holdings("main", rows)

	for _, want := range []string{"# Portfolio main", "| AAPL | 10 |", "+10.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("Holdings() missing %q in:\n%s", want, md)
		}
	}
}

func TestComparison(t *testing.T) {
	c := &folio.Comparison{
		PortfolioName:   "main",
		Since:           folio.MustParseDate("2024-01-05"),
		PortfolioReturn: 0.2,
		IndexTicker:     "GSPC.INDX",
		IndexName:       "S&P 500",
		IndexReturn:     0.1,
		PerAsset:        map[string]float64{"MSFT": -0.05, "AAPL": 0.25},
	}
	md := Comparison(c)

	for _, want := range []string{
		"# main vs GSPC.INDX (S&P 500)",
		"2024-01-05",
		"| Portfolio | +20.00% |",
		"| Excess | +10.00% |",
		"## Per asset",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Comparison() missing %q in:\n%s", want, md)
		}
	}
	// per-asset rows come out sorted by ticker
	if strings.Index(md, "AAPL") > strings.Index(md, "MSFT") {
		t.Error("Comparison() per-asset rows not sorted by ticker")
	}
}

func TestAsset(t *testing.T) {
	a := folio.NewAssetSnapshot("AAPL", folio.SecurityInfo{
		Name:       "Apple Inc",
		Sector:     "Technology",
		Week52High: 200,
		Week52Low:  150,
	}, []float64{100, 110})
	md := Asset(a)

	for _, want := range []string{"AAPL", "Apple Inc", "| Sector | Technology |", "52w high"} {
		if !strings.Contains(md, want) {
			t.Errorf("Asset() missing %q in:\n%s", want, md)
		}
	}
}
