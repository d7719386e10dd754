package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nvidal/folio"
	"github.com/nvidal/folio/renderer"
)

// holdingCmd displays the holdings of a portfolio.
type holdingCmd struct {
	portfolio string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the holdings of a portfolio" }
func (*holdingCmd) Usage() string {
	return `pft holding -p <portfolio>

  Displays quantity, average cost, current price and return per holding.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	p, store, err := loadPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	rows, err := p.HoldingRows(snapshotPrices(provider()))
	if err != nil {
		return fail(err)
	}
	render(renderer.Holdings(p.Name(), rows))
	return subcommands.ExitSuccess
}

// perfCmd displays the performance since the first purchase.
type perfCmd struct {
	portfolio string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display performance since the first purchase" }
func (*perfCmd) Usage() string {
	return `pft perf -p <portfolio>
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	p, store, err := loadPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	perf, err := p.PerformanceSinceFirstPurchase(snapshotPrices(provider()))
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Performance since %s: %s\n", p.FirstPurchaseDate(), folio.Percent(perf*100).SignedString())
	return subcommands.ExitSuccess
}

// sharpeCmd displays the Sharpe ratio of the reconstructed value series.
type sharpeCmd struct {
	portfolio string
	riskFree  float64
}

func (*sharpeCmd) Name() string     { return "sharpe" }
func (*sharpeCmd) Synopsis() string { return "display the portfolio Sharpe ratio" }
func (*sharpeCmd) Usage() string {
	return `pft sharpe -p <portfolio> [-r <risk free rate>]
`
}

func (c *sharpeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.Float64Var(&c.riskFree, "r", folio.DefaultIndexRiskFree, "annual risk-free rate")
}

func (c *sharpeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	p, store, err := loadPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	ratio, ok, err := p.SharpeRatio(histories(provider()), c.riskFree)
	if err != nil {
		return fail(err)
	}
	if !ok {
		fmt.Println("Sharpe ratio is undefined for this portfolio (not enough return history)")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Sharpe ratio: %.4f\n", ratio)
	return subcommands.ExitSuccess
}

// compareCmd compares a portfolio to a reference index.
type compareCmd struct {
	portfolio string
	index     string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare a portfolio to a reference index" }
func (*compareCmd) Usage() string {
	return `pft compare -p <portfolio> -i <index ticker>

  Joins the portfolio performance since its first purchase with the index
  return over the same span.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.StringVar(&c.index, "i", "GSPC.INDX", "reference index ticker")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == "" {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	p, store, err := loadPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	prov := provider()
	index, err := folio.FetchIndexSeries(prov, c.index)
	if err != nil {
		return fail(err)
	}
	p.SetReference(index)

	comparison, err := p.CompareToReference(snapshotPrices(prov))
	if err != nil {
		return fail(err)
	}
	render(renderer.Comparison(comparison))
	return subcommands.ExitSuccess
}
