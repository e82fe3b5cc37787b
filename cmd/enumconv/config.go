package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// config is the content of the file given by -config. Flags set on the command
// line override it.
//
//	tags = "integration"
//	tests = true
//	output = "enumconv_gen.go"
//	color = "never"
//	verbosity = 1
//	package = "numbers"
//
//	[env]
//	Base = 10
type config struct {
	Tags      string           `toml:"tags"`
	Tests     bool             `toml:"tests"`
	Output    string           `toml:"output"`
	Color     string           `toml:"color"`
	Verbosity int              `toml:"verbosity"`
	Package   string           `toml:"package"`
	Env       map[string]int64 `toml:"env"`
}

func loadConfig(path string) (*config, error) {
	cfg := &config{
		Tags:      *bFlag,
		Tests:     *tFlag,
		Output:    *oFlag,
		Color:     *cFlag,
		Verbosity: *vFlag,
		Package:   *pkgFlag,
	}
	if path == "" {
		return cfg, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file config
	if err := toml.Unmarshal(buf, &file); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.merge(&file)
	return cfg, nil
}

// merge overrides cfg with the values set in other.
func (cfg *config) merge(other *config) {
	if other.Tags != "" {
		cfg.Tags = other.Tags
	}
	if other.Tests {
		cfg.Tests = true
	}
	if other.Output != "" {
		cfg.Output = other.Output
	}
	if other.Color != "" {
		cfg.Color = other.Color
	}
	if other.Verbosity != 0 {
		cfg.Verbosity = other.Verbosity
	}
	if other.Package != "" {
		cfg.Package = other.Package
	}
	if other.Env != nil {
		cfg.Env = other.Env
	}
}

// applyFlags overrides the config with the flags set explicitly.
func (cfg *config) applyFlags() {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b":
			cfg.Tags = *bFlag
		case "t":
			cfg.Tests = *tFlag
		case "o":
			cfg.Output = *oFlag
		case "c":
			cfg.Color = *cFlag
		case "v":
			cfg.Verbosity = *vFlag
		case "pkg":
			cfg.Package = *pkgFlag
		}
	})
}
