package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nvidal/folio"
	"github.com/nvidal/folio/renderer"
)

// assetCmd displays a refreshed snapshot of a single asset.
type assetCmd struct{}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "display a snapshot of a single asset" }
func (*assetCmd) Usage() string {
	return `pft asset <ticker>

  Fetches a fresh snapshot and displays price, day change, volatility and
  the 52-week drawdown proxy.
`
}
func (*assetCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	snap, err := folio.FetchAssetSnapshot(provider(), f.Arg(0))
	if err != nil {
		return fail(err)
	}
	render(renderer.Asset(snap))
	return subcommands.ExitSuccess
}

// indexCmd displays the one-year statistics of an index.
type indexCmd struct {
	riskFree float64
}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "display one-year statistics of an index" }
func (*indexCmd) Usage() string {
	return `pft index [-r <risk free rate>] <ticker>

  Fetches a one-year series and displays cumulative return, volatility,
  Sharpe ratio and maximum drawdown.
`
}

func (c *indexCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.riskFree, "r", folio.DefaultIndexRiskFree, "annual risk-free rate")
}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	series, err := folio.FetchIndexSeries(provider(), f.Arg(0))
	if err != nil {
		return fail(err)
	}
	render(renderer.Index(series, c.riskFree))
	return subcommands.ExitSuccess
}
