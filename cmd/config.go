package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// Default folders, relative to the working directory.
const (
	DefaultImportDir = "import"
	DefaultExportDir = "export"
)

// Config is the content of the optional YAML configuration file.
type Config struct {
	ImportDir     string `yaml:"import_dir"`
	ExportDir     string `yaml:"export_dir"`
	LogLevel      string `yaml:"log_level"`      // debug, info, warn or error
	WrappedNative string `yaml:"wrapped_native"` // contract whose "Deposit" calls are wraps
}

// LoadConfig reads the YAML configuration file at path.
//
// A missing file is not an error: an empty Config is returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}
	if cfg.WrappedNative != "" && !common.IsHexAddress(cfg.WrappedNative) {
		return nil, fmt.Errorf("invalid wrapped_native address %q in %s", cfg.WrappedNative, path)
	}
	return &cfg, nil
}
