package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// shellCmd runs the interactive menu.
type shellCmd struct {
	markdown bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "parse and merge balance sheets interactively" }
func (*shellCmd) Usage() string {
	return `balances shell [-markdown]

  Offers to parse explorer exports from the import folder or to merge balance
  sheets from the export folder, until you quit.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "markdown", false, "Display balance sheets as rendered markdown")
}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		return fail(subcommands.ExitUsageError, "%v", err)
	}
	defer s.log.Sync()

	if err := runShell(ctx, s, newPrompter(os.Stdin, os.Stdout), c.markdown); err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	return subcommands.ExitSuccess
}

// runShell loops on the menu until the user quits or the input is closed.
// Errors of a parse or a merge are printed and the menu is offered again.
func runShell(ctx context.Context, s *settings, p *prompter, markdown bool) error {
	for {
		action, err := p.ask("\n[P]arse etherscan files | [M]erge parsed files | [Q]uit")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "q":
			return nil
		case "p":
			err = runParse(s, p, parseOptions{markdown: markdown})
		case "m":
			err = shellMerge(ctx, s, p, markdown)
		default:
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.log.Debug("action failed", zap.String("action", action), zap.Error(err))
			fmt.Fprintf(p.out, "Error: %v\n", err)
		}
	}
}

// shellMerge asks for the wallet, then for balance sheets until the user
// starts the merge.
func shellMerge(ctx context.Context, s *settings, p *prompter, markdown bool) error {
	wallet, err := p.wallet("")
	if err != nil {
		return err
	}
	var paths []string
	for {
		fmt.Fprintf(p.out, "\nSelected files to merge: %q\n", paths)
		path, err := p.selectFile(s.exportDir, "Select file to merge:")
		if err != nil {
			return err
		}
		paths = append(paths, path)
		if len(paths) < 2 {
			continue
		}
		answer, err := p.ask("Press M to begin merging or any other key to add another file.")
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, "m") {
			break
		}
	}
	return runMerge(ctx, s, p, mergeOptions{wallet: wallet.String(), paths: paths, markdown: markdown})
}
