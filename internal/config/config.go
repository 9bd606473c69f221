// Package config loads the optional YAML configuration consumed by the
// ifcgen CLI. Flags override file values; the zero Config is usable.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stratumcad/ifcgen/core/errors"
)

// Injectable functions for testing
var (
	osReadFileConfig = os.ReadFile
)

// Config is the on-disk configuration.
type Config struct {
	// Project names the IFCPROJECT and the output header.
	Project string `yaml:"project"`

	// Author and Organization fill the STEP FILE_NAME header fields.
	Author       string `yaml:"author"`
	Organization string `yaml:"organization"`

	// WallHeight overrides the default wall extrusion height (mm).
	WallHeight float64 `yaml:"wallHeight"`

	// PileLength overrides the default pile extrusion length (mm).
	PileLength float64 `yaml:"pileLength"`

	// Compression selects the output encoding: "none" or "xz".
	Compression string `yaml:"compression"`

	// Log configures the CLI logger.
	Log LogConfig `yaml:"log"`
}

// LogConfig selects the logger level and format.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads a YAML config file. A missing file is not an error; the
// zero Config is returned so flags and defaults apply.
func Load(path string) (*Config, error) {
	data, err := osReadFileConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.NewIO("read", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewParse("YAML", path, err.Error())
	}
	return &cfg, nil
}
