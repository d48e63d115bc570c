// Package cmd implements the CLI application that builds balance sheets from
// explorer exports.
package cmd

import (
	"cmp"
	"fmt"
	"os"

	"github.com/etnz/balancesheet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&parseCmd{}, "balance sheets")
	c.Register(&mergeCmd{}, "balance sheets")
	c.Register(&shellCmd{}, "balance sheets")
	c.Register(&topicCmd{}, "help")
}

// Environment variables overriding the configuration file.
const (
	EnvImportDir = "BALANCES_IMPORT_DIR"
	EnvExportDir = "BALANCES_EXPORT_DIR"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flagString("config", "balances.yml", "Path to the optional YAML configuration file")
	importDir  = flagString("import-dir", "", "Folder containing the explorer exports (default \"import\")")
	exportDir  = flagString("export-dir", "", "Folder receiving the balance sheets (default \"export\")")
	Verbose    = flagBool("v", false, "Enable debug logs")
)

// settings is the resolved configuration of a run.
type settings struct {
	importDir string
	exportDir string
	wrapped   common.Address
	log       *zap.Logger
}

// loadSettings resolves the configuration: flags first, then environment,
// then configuration file, then defaults.
func loadSettings() (*settings, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel, *Verbose)
	if err != nil {
		return nil, err
	}
	s := &settings{
		importDir: cmp.Or(*importDir, os.Getenv(EnvImportDir), cfg.ImportDir, DefaultImportDir),
		exportDir: cmp.Or(*exportDir, os.Getenv(EnvExportDir), cfg.ExportDir, DefaultExportDir),
		wrapped:   balancesheet.WrappedNative,
		log:       log,
	}
	if cfg.WrappedNative != "" {
		s.wrapped = common.HexToAddress(cfg.WrappedNative)
	}
	log.Debug("settings loaded",
		zap.String("config", *configFile),
		zap.String("import_dir", s.importDir),
		zap.String("export_dir", s.exportDir),
		zap.String("wrapped_native", s.wrapped.Hex()),
	)
	return s, nil
}

// fail prints err the way every subcommand reports errors, and returns status.
func fail(status subcommands.ExitStatus, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return status
}
