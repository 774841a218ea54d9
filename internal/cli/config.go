// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dstoeckel/ball/vf2"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

// ErrBadConfig indicates an invalid configuration value.
var ErrBadConfig = errors.New("cli: bad configuration")

// Config holds the defaults a defaults file may set. Every field has a flag
// of the same name.
type Config struct {
	Mode    string        `toml:"mode"`
	Sort    bool          `toml:"sort"`
	Induced bool          `toml:"induced"`
	All     bool          `toml:"all"`
	Limit   int           `toml:"limit"`
	Timeout time.Duration `toml:"timeout"`
	Workers int           `toml:"workers"`
	Format  string        `toml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Mode:    vf2.KindSub.String(),
		Sort:    true,
		Workers: 4,
		Format:  formatText,
	}
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := vf2.ParseKind(c.Mode); err != nil {
		return fmt.Errorf("mode %q: %w", c.Mode, ErrBadConfig)
	}
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("format %q: %w", c.Format, ErrBadConfig)
	}
	if c.Limit < 0 || c.Workers < 1 || c.Timeout < 0 {
		return fmt.Errorf("limit=%d workers=%d timeout=%s: %w", c.Limit, c.Workers, c.Timeout, ErrBadConfig)
	}

	return nil
}

// defaultConfigPath is $XDG_CONFIG_HOME/vf2match/config.toml, or "" if the
// user config directory is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, appName, "config.toml")
}

// LoadConfig overlays the file at path on DefaultConfig. An empty path uses
// the default location, where a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("LoadConfig(%q): %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("LoadConfig(%q): unknown key %q: %w", path, undec[0].String(), ErrBadConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig(%q): %w", path, err)
	}

	return cfg, nil
}

// searchFlags binds the search flags of a command.
type searchFlags struct {
	cfg Config
}

func (f *searchFlags) register(cmd *cobra.Command, withWorkers bool) {
	d := DefaultConfig()
	fl := cmd.Flags()
	fl.StringVarP(&f.cfg.Mode, "mode", "m", d.Mode, "match kind: iso, sub, mcs")
	fl.BoolVar(&f.cfg.Sort, "sort", d.Sort, "order query atoms by degree-profile rarity")
	fl.BoolVar(&f.cfg.Induced, "induced", d.Induced, "sub: target bonds among matched atoms must exist in the query")
	fl.BoolVarP(&f.cfg.All, "all", "a", d.All, "iso/sub: enumerate every match")
	fl.IntVarP(&f.cfg.Limit, "limit", "n", d.Limit, "with --all: stop after N matches (0 = no limit)")
	fl.DurationVar(&f.cfg.Timeout, "timeout", d.Timeout, "abandon a search after this long (0 = never)")
	fl.StringVarP(&f.cfg.Format, "format", "f", d.Format, "output format: text, json, yaml")
	if withWorkers {
		fl.IntVarP(&f.cfg.Workers, "workers", "w", d.Workers, "parallel searches")
	}
}

// resolve returns base overridden by every flag the user set.
func (f *searchFlags) resolve(cmd *cobra.Command, base Config) (Config, error) {
	out := base
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("mode", func() { out.Mode = f.cfg.Mode })
	set("sort", func() { out.Sort = f.cfg.Sort })
	set("induced", func() { out.Induced = f.cfg.Induced })
	set("all", func() { out.All = f.cfg.All })
	set("limit", func() { out.Limit = f.cfg.Limit })
	set("timeout", func() { out.Timeout = f.cfg.Timeout })
	set("format", func() { out.Format = f.cfg.Format })
	set("workers", func() { out.Workers = f.cfg.Workers })

	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}
