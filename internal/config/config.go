// Package config resolves session options from the config file and the
// command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	statepkg "github.com/kk-code-lab/chooser/internal/state"
)

const appName = "chooser"

// ErrInvalidValue marks an option whose value is not one of the accepted ones.
var ErrInvalidValue = errors.New("invalid value")

// Config holds every user-settable option. File keys and flags share names.
type Config struct {
	OneColumn  bool `toml:"onecolumn"`
	Checkbox   bool `toml:"checkbox"`
	Numbers    bool `toml:"numbers"`
	Underline  bool `toml:"underline"`
	Color      bool `toml:"color"`
	Radiobox   bool `toml:"radiobox"`
	Initial    bool `toml:"initial"`
	WhiteLines bool `toml:"whitelines"`
	FullAttr   bool `toml:"fullattr"`

	Foreground string `toml:"foreground"`
	Background string `toml:"background"`

	// SingleColumnStatus is "offset" or "position".
	SingleColumnStatus string `toml:"single_column_status"`
	LogFile            string `toml:"log_file"`

	// Files are the positional arguments, read in order after stdin.
	Files []string `toml:"-"`
	// Source is the config file that was applied, if any.
	Source string `toml:"-"`

	ShowHelp    bool `toml:"-"`
	ShowVersion bool `toml:"-"`
}

// Default returns the built-in options: every toggle off, terminal colors.
func Default() Config {
	return Config{SingleColumnStatus: "offset"}
}

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(string) string

// SearchPaths lists candidate config files, most specific first: the user
// config dir, then each system config dir.
func SearchPaths(getenv Getenv) []string {
	var dirs []string
	if home := getenv("XDG_CONFIG_HOME"); home != "" {
		dirs = append(dirs, home)
	} else if home := getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}

	system := getenv("XDG_CONFIG_DIRS")
	if system == "" {
		system = "/etc/xdg"
	}
	for _, dir := range filepath.SplitList(system) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, filepath.Join(dir, appName, "config.toml"))
	}
	return paths
}

// FindFile returns the first existing config file from SearchPaths.
func FindFile(getenv Getenv) (string, bool) {
	for _, path := range SearchPaths(getenv) {
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			return path, true
		}
	}
	return "", false
}

// LoadFile decodes path over cfg. Keys absent from the file keep their
// current values.
func LoadFile(path string, cfg *Config) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("config %s: is a directory", path)
	}

	next := *cfg
	meta, err := toml.DecodeFile(path, &next)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	*cfg = next
	cfg.Source = path
	return nil
}

// Validate checks values that flags and the file accept as free text.
func (c Config) Validate() error {
	switch strings.ToLower(c.SingleColumnStatus) {
	case "", "offset", "position":
	default:
		return fmt.Errorf("single_column_status %q: %w (want offset or position)", c.SingleColumnStatus, ErrInvalidValue)
	}
	return nil
}

// StateOptions converts the resolved options for the session state.
func (c Config) StateOptions() statepkg.Options {
	status := statepkg.StatusOffset
	if strings.EqualFold(c.SingleColumnStatus, "position") {
		status = statepkg.StatusPosition
	}
	return statepkg.Options{
		OneColumn:          c.OneColumn,
		Checkbox:           c.Checkbox,
		Numbers:            c.Numbers,
		Underline:          c.Underline,
		Color:              c.Color,
		Radiobox:           c.Radiobox,
		Initial:            c.Initial,
		WhiteLines:         c.WhiteLines,
		FullAttr:           c.FullAttr,
		SingleColumnStatus: status,
	}
}
