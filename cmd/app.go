// Package cmd implements the CLI application to manage portfolios.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/nvidal/folio"
	"github.com/nvidal/folio/sqlite"
)

// Commands lists every subcommand of the application, in display order.
var Commands = []subcommands.Command{
	&createCmd{},
	&listCmd{},
	&buyCmd{},
	&sellCmd{},
	&holdingCmd{},
	&perfCmd{},
	&sharpeCmd{},
	&compareCmd{},
	&assetCmd{},
	&indexCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "folio.db", "Path to the SQLite database holding portfolio lots")

// openStore opens the application database.
func openStore() (*sqlite.Store, error) {
	return sqlite.Open(*dbFile)
}

// loadPortfolio opens the store and loads one portfolio from it.
func loadPortfolio(name string) (*folio.Portfolio, *sqlite.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	p, err := folio.LoadPortfolio(store, name)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return p, store, nil
}

// provider returns the market data provider configured by flags/environment.
func provider() folio.PriceProvider {
	return folio.NewEODHDProvider("")
}

// snapshotPrices returns a PriceLookup backed by fresh asset snapshots.
func snapshotPrices(p folio.PriceProvider) folio.PriceLookup {
	return func(ticker string) (folio.Money, error) {
		snap, err := folio.FetchAssetSnapshot(p, ticker)
		if err != nil {
			return folio.Money{}, err
		}
		return folio.M(snap.PriceToday(), ""), nil
	}
}

// histories returns a HistoryLookup fetching one-year windows.
func histories(p folio.PriceProvider) folio.HistoryLookup {
	return func(ticker string) ([]folio.PricePoint, error) {
		return p.RecentHistory(ticker, folio.Year1)
	}
}

// render writes a markdown document to stdout through the terminal
// renderer, falling back to the raw markdown when rendering fails.
func render(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// fail prints an error and returns the CLI failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
