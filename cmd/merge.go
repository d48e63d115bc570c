package cmd

import (
	"cmp"
	"context"
	"flag"
	"os"

	"github.com/etnz/balancesheet"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// mergeSuffix is the suffix of merged balance sheets.
const mergeSuffix = "_merged.csv"

// mergeCmd holds the flags for the 'merge' subcommand.
type mergeCmd struct {
	mergeOptions
}

type mergeOptions struct {
	wallet   string
	output   string
	paths    []string
	markdown bool
}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "merge balance sheets of the same years" }
func (*mergeCmd) Usage() string {
	return `balances merge [-w <wallet>] [-o <name>] [-markdown] <sheet.csv> <sheet.csv>...

  Sums balance sheets previously written by 'parse', token by token. All the
  sheets must cover the same years.

  The result is written to <export-dir>/<name>_merged.csv where name defaults to
  the wallet, and is printed.
`
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.wallet, "w", "", "Address of the wallet the sheets belong to")
	f.StringVar(&c.output, "o", "", "Name of the merged file, without suffix (defaults to the wallet)")
	f.BoolVar(&c.markdown, "markdown", false, "Display the balance sheet as rendered markdown")
}

func (c *mergeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		return fail(subcommands.ExitUsageError, "merge requires at least two balance sheets, got %d", f.NArg())
	}
	s, err := loadSettings()
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}
	defer s.log.Sync()

	o := c.mergeOptions
	o.paths = f.Args()
	if err := runMerge(ctx, s, newPrompter(os.Stdin, os.Stdout), o); err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	return subcommands.ExitSuccess
}

// runMerge merges, saves and displays balance sheets.
func runMerge(ctx context.Context, s *settings, p *prompter, o mergeOptions) error {
	wallet, err := p.wallet(o.wallet)
	if err != nil {
		return err
	}
	s.log.Debug("loading balance sheets", zap.Strings("files", o.paths))
	reports, err := balancesheet.LoadReports(ctx, o.paths...)
	if err != nil {
		return err
	}
	merged, err := balancesheet.Merge(reports...)
	if err != nil {
		return err
	}

	name := cmp.Or(o.output, wallet.String()) + mergeSuffix
	out, err := balancesheet.SaveReport(s.exportDir, name, merged)
	if err != nil {
		return err
	}
	s.log.Info("merged balance sheet saved",
		zap.String("output", out),
		zap.Int("sheets", len(reports)),
		zap.Int("tokens", len(merged.Lines())),
	)
	return display(p.out, name, merged, o.markdown)
}
