package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// config carries the defaults a TOML file can override. Flags given on
// the command line always win over the file.
type config struct {
	Prime     int64 `toml:"prime"`
	Precision int   `toml:"precision"`
	MaxDepth  int   `toml:"max_depth"`
	HeightCap int64 `toml:"height_cap"`
	MaxNodes  int   `toml:"max_nodes"`
	BeamWidth int   `toml:"beam_width"`
}

func defaultConfig() config {
	return config{
		Prime:     5,
		Precision: 8,
		MaxDepth:  50,
		HeightCap: 10000,
		MaxNodes:  100000,
		BeamWidth: 5000,
	}
}

// loadConfig resolves the effective config for a command: the built-in
// defaults, overlaid by the --config file if one was given.
func loadConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
