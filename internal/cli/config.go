package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/partition"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// configFile is the default config file name, looked up in the working
// directory.
const configFile = "kintree.toml"

// Config carries CLI defaults that would otherwise be repeated as flags on
// every invocation. Every field has a working zero-value default; the file
// only overrides what it names.
type Config struct {
	// NodeWidth, NodeHeight, and Gap are the layout box dimensions.
	NodeWidth  float64 `toml:"node_width"`
	NodeHeight float64 `toml:"node_height"`
	Gap        float64 `toml:"gap"`

	// SizeThreshold is the tree size above which the faster hierarchical
	// layout strategy is substituted.
	SizeThreshold int `toml:"size_threshold"`

	// GenerationSpan is the window size for generation-range partitioning.
	GenerationSpan int `toml:"generation_span"`

	// Direction is the generation numbering direction: "up" or "down".
	Direction string `toml:"direction"`

	// Strategy is the default layout strategy name. Empty picks by size.
	Strategy string `toml:"strategy"`
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigOrDefaults loads path (or ./kintree.toml when empty) and falls
// back to the zero config when the file is missing or malformed. CLI
// startup must not fail on config problems; flags still work.
func LoadConfigOrDefaults(path string) Config {
	if path == "" {
		path = configFile
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}
	}
	return cfg
}

// layoutOptions converts the config to layout options; zero fields keep the
// package defaults.
func (cfg Config) layoutOptions() layout.Options {
	opts := layout.Options{
		NodeWidth:     cfg.NodeWidth,
		NodeHeight:    cfg.NodeHeight,
		Gap:           cfg.Gap,
		SizeThreshold: cfg.SizeThreshold,
	}
	opts.Direction = parseDirection(cfg.Direction)
	opts.SetDefaults()
	return opts
}

// parseDirection parses a direction string leniently: anything
// unrecognized, including empty, falls back to Up.
func parseDirection(s string) traverse.Direction {
	if d, ok := traverse.ParseDirection(s); ok {
		return d
	}
	return traverse.Up
}

// generationSpan returns the configured span, or the partition default.
func (cfg Config) generationSpan() int {
	if cfg.GenerationSpan > 0 {
		return cfg.GenerationSpan
	}
	return partition.DefaultSpan
}
