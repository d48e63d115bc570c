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

// parseCmd holds the flags for the 'parse' subcommand.
type parseCmd struct {
	parseOptions
}

// parseOptions are the inputs of a parse run. Empty values are asked for.
type parseOptions struct {
	file     string
	wallet   string
	symbol   string
	output   string
	markdown bool
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "build the balance sheet of an explorer export" }
func (*parseCmd) Usage() string {
	return `balances parse [-f <export.csv>] [-w <wallet>] [-s <symbol>] [-o <name>] [-markdown]

  Reads an Etherscan export (normal transactions, internal transactions, token
  transfers, or the transfers of a single token), computes for every token and
  every year the inflow, outflow and net flow of the wallet, and the balance.

  The balance sheet is written to <export-dir>/<name><suffix> where name
  defaults to the wallet and suffix depends on the export kind, and is printed.

  Missing inputs are asked for: the export is picked from the import folder.
`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the export file. Picked from the import folder by default.")
	f.StringVar(&c.wallet, "w", "", "Address of the wallet to focus on")
	f.StringVar(&c.symbol, "s", "", "Token symbol, for single token exports")
	f.StringVar(&c.output, "o", "", "Name of the balance sheet file, without suffix (defaults to the wallet)")
	f.BoolVar(&c.markdown, "markdown", false, "Display the balance sheet as rendered markdown")
}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}
	defer s.log.Sync()

	if err := runParse(s, newPrompter(os.Stdin, os.Stdout), c.parseOptions); err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	return subcommands.ExitSuccess
}

// runParse builds, saves and displays the balance sheet of an export.
func runParse(s *settings, p *prompter, o parseOptions) error {
	if err := balancesheet.Setup(s.importDir, s.exportDir); err != nil {
		return err
	}

	path := o.file
	if path == "" {
		var err error
		if path, err = p.selectFile(s.importDir, "Select file to parse:"); err != nil {
			return err
		}
	}
	wallet, err := p.wallet(o.wallet)
	if err != nil {
		return err
	}

	export, err := balancesheet.OpenExport(path)
	if err != nil {
		return err
	}
	opts := []balancesheet.Option{balancesheet.WithWrappedNative(s.wrapped)}
	if export.Mode == balancesheet.TokenSpecific {
		symbol := o.symbol
		if symbol == "" {
			if symbol, err = p.ask("Token symbol:"); err != nil {
				return err
			}
		}
		opts = append(opts, balancesheet.WithSymbol(symbol))
	}

	s.log.Info("parsing export",
		zap.String("file", path),
		zap.Stringer("mode", export.Mode),
		zap.Stringer("wallet", wallet),
	)
	sheet, err := export.BalanceSheet(wallet, opts...)
	if err != nil {
		return err
	}

	name := cmp.Or(o.output, wallet.String()) + sheet.Suffix
	out, err := balancesheet.SaveReport(s.exportDir, name, sheet.Report)
	if err != nil {
		return err
	}
	s.log.Info("balance sheet saved",
		zap.String("output", out),
		zap.Int("rows", sheet.Rows),
		zap.Int("tokens", len(sheet.Report.Lines())),
		zap.Ints("years", sheet.Report.Years()),
	)
	return display(p.out, name, sheet.Report, o.markdown)
}
