package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nvidal/folio"
)

// buyCmd records a purchase in a portfolio.
type buyCmd struct {
	portfolio string
	quantity  int64
	price     float64
	date      string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of a security" }
func (*buyCmd) Usage() string {
	return `pft buy -p <portfolio> -q <quantity> [-c <unit price>] [-d <date>] <ticker>

  Records a purchase lot. Without -c the closing price on the trade date is
  fetched from the market data provider.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.Int64Var(&c.quantity, "q", 0, "number of units bought")
	f.Float64Var(&c.price, "c", 0, "unit price; 0 fetches the close on the trade date")
	f.StringVar(&c.date, "d", folio.Today().String(), "trade date")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.portfolio == "" {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	ticker := folio.NormalizeTicker(f.Arg(0))
	on, err := folio.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}

	price := folio.M(c.price, "")
	if c.price == 0 {
		looked, err := closeOn(provider(), ticker, on)
		if err != nil {
			return fail(err)
		}
		price = looked
	}

	p, store, err := loadPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := p.AddPosition(ticker, folio.Quantity(c.quantity), price, on); err != nil {
		return fail(err)
	}
	fmt.Printf("Bought %d %s at %s on %s\n", c.quantity, ticker, price, on)
	return subcommands.ExitSuccess
}

// closeOn finds the close of ticker on the first trading day at or after on.
func closeOn(p folio.PriceProvider, ticker string, on folio.Date) (folio.Money, error) {
	history, err := p.RecentHistory(ticker, folio.Year1)
	if err != nil {
		return folio.Money{}, err
	}
	for _, pt := range history {
		if !pt.Date.Before(on) {
			return folio.M(pt.Close, ""), nil
		}
	}
	return folio.Money{}, fmt.Errorf("no close for %s on or after %s: %w", ticker, on, folio.ErrNotFound)
}

// sellCmd records a disposal from a portfolio.
type sellCmd struct {
	portfolio string
	quantity  int64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "remove units of a security from a portfolio" }
func (*sellCmd) Usage() string {
	return `pft sell -p <portfolio> -q <quantity> <ticker>

  Removes units, consuming the oldest purchase lots first.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.Int64Var(&c.quantity, "q", 0, "number of units sold")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.portfolio == "" {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	ticker := folio.NormalizeTicker(f.Arg(0))

	p, store, err := loadPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := p.RemovePosition(ticker, folio.Quantity(c.quantity)); err != nil {
		return fail(err)
	}
	fmt.Printf("Sold %d %s\n", c.quantity, ticker)
	return subcommands.ExitSuccess
}
