package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	statepkg "github.com/kk-code-lab/chooser/internal/state"
)

func envMap(m map[string]string) Getenv {
	return func(key string) string { return m[key] }
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "chooser", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchPathsOrder(t *testing.T) {
	paths := SearchPaths(envMap(map[string]string{
		"XDG_CONFIG_HOME": "/home/u/.cfg",
		"XDG_CONFIG_DIRS": "/etc/a" + string(os.PathListSeparator) + "/etc/b",
	}))
	require.Equal(t, []string{
		filepath.Join("/home/u/.cfg", "chooser", "config.toml"),
		filepath.Join("/etc/a", "chooser", "config.toml"),
		filepath.Join("/etc/b", "chooser", "config.toml"),
	}, paths)

	paths = SearchPaths(envMap(map[string]string{"HOME": "/home/u"}))
	require.Equal(t, []string{
		filepath.Join("/home/u", ".config", "chooser", "config.toml"),
		filepath.Join("/etc/xdg", "chooser", "config.toml"),
	}, paths)
}

func TestLoadAppliesFileThenFlags(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, `
onecolumn = true
numbers = true
foreground = "red"
single_column_status = "position"
`)

	var warnings []error
	cfg, err := Load([]string{"-N", "-x", "a.txt", "b.txt"}, envMap(map[string]string{
		"XDG_CONFIG_HOME": home,
		"XDG_CONFIG_DIRS": t.TempDir(),
	}), func(err error) { warnings = append(warnings, err) })

	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, path, cfg.Source)
	require.True(t, cfg.OneColumn)
	require.False(t, cfg.Numbers, "-N should override the file")
	require.True(t, cfg.Checkbox)
	require.Equal(t, "red", cfg.Foreground)
	require.Equal(t, []string{"a.txt", "b.txt"}, cfg.Files)
	require.Equal(t, statepkg.StatusPosition, cfg.StateOptions().SingleColumnStatus)
}

func TestLoadFallsBackToSystemDirs(t *testing.T) {
	system := t.TempDir()
	path := writeConfig(t, system, "checkbox = true\n")

	cfg, err := Load(nil, envMap(map[string]string{
		"XDG_CONFIG_HOME": t.TempDir(),
		"XDG_CONFIG_DIRS": system,
	}), nil)

	require.NoError(t, err)
	require.Equal(t, path, cfg.Source)
	require.True(t, cfg.Checkbox)
}

func TestLoadUserConfigWins(t *testing.T) {
	home := t.TempDir()
	system := t.TempDir()
	writeConfig(t, home, "numbers = true\n")
	writeConfig(t, system, "checkbox = true\n")

	cfg, err := Load(nil, envMap(map[string]string{
		"XDG_CONFIG_HOME": home,
		"XDG_CONFIG_DIRS": system,
	}), nil)

	require.NoError(t, err)
	require.True(t, cfg.Numbers)
	require.False(t, cfg.Checkbox, "only the first file found applies")
}

func TestLoadWarnsOnMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "onecolumn = = true\n", "config"},
		{"wrong type", "onecolumn = \"yes\"\n", "config"},
		{"unknown key", "colour = true\n", "unknown keys colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tt.content)

			var warnings []error
			cfg, err := Load(nil, envMap(map[string]string{
				"XDG_CONFIG_HOME": home,
				"XDG_CONFIG_DIRS": t.TempDir(),
			}), func(err error) { warnings = append(warnings, err) })

			require.NoError(t, err)
			require.Len(t, warnings, 1)
			require.Contains(t, warnings[0].Error(), tt.want)
			require.Equal(t, Default().StateOptions(), cfg.StateOptions())
			require.Empty(t, cfg.Source)
		})
	}
}

func TestNegatedFlagsLastOneWins(t *testing.T) {
	env := envMap(map[string]string{"XDG_CONFIG_HOME": t.TempDir(), "XDG_CONFIG_DIRS": t.TempDir()})

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--radiobox"}, true},
		{[]string{"--radiobox", "--not-radiobox"}, false},
		{[]string{"-R", "-r"}, true},
		{[]string{"-rR"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cfg, err := Load(tt.args, env, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Radiobox)
		})
	}
}

func TestLoadRejectsBadArguments(t *testing.T) {
	env := envMap(map[string]string{"XDG_CONFIG_HOME": t.TempDir(), "XDG_CONFIG_DIRS": t.TempDir()})

	_, err := Load([]string{"--bogus"}, env, nil)
	require.Error(t, err)

	_, err = Load([]string{"--single-column-status", "sideways"}, env, nil)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoadLogFileFromEnvironment(t *testing.T) {
	env := envMap(map[string]string{
		"XDG_CONFIG_HOME": t.TempDir(),
		"XDG_CONFIG_DIRS": t.TempDir(),
		"CHOOSER_LOG":     "/tmp/chooser.log",
	})

	cfg, err := Load(nil, env, nil)
	require.NoError(t, err)
	require.Equal(t, "/tmp/chooser.log", cfg.LogFile)

	cfg, err = Load([]string{"--log-file", "other.log"}, env, nil)
	require.NoError(t, err)
	require.Equal(t, "other.log", cfg.LogFile)
}

func TestHelpAndVersionFlags(t *testing.T) {
	env := envMap(map[string]string{"XDG_CONFIG_HOME": t.TempDir(), "XDG_CONFIG_DIRS": t.TempDir()})

	cfg, err := Load([]string{"-h"}, env, nil)
	require.NoError(t, err)
	require.True(t, cfg.ShowHelp)

	cfg, err = Load([]string{"--version"}, env, nil)
	require.NoError(t, err)
	require.True(t, cfg.ShowVersion)

	var b strings.Builder
	PrintUsage(&b)
	require.Contains(t, b.String(), "--not-onecolumn")
	require.Contains(t, b.String(), "--foreground")
}
