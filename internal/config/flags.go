package config

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

// negatedBool stores the inverse of what it is set to, so that --not-x and
// --x write the same option and the last one on the command line wins.
type negatedBool struct {
	target *bool
}

func (b negatedBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b.target = !v
	return nil
}

func (b negatedBool) String() string {
	if b.target == nil {
		return "false"
	}
	return strconv.FormatBool(!*b.target)
}

func (b negatedBool) Type() string {
	return "bool"
}

type toggle struct {
	name  string
	short string
	usage string
	value func(*Config) *bool
}

var toggles = []toggle{
	{"onecolumn", "o", "output in one column", func(c *Config) *bool { return &c.OneColumn }},
	{"checkbox", "x", "show checkbox", func(c *Config) *bool { return &c.Checkbox }},
	{"numbers", "n", "show numbers of lines", func(c *Config) *bool { return &c.Numbers }},
	{"underline", "u", "underline checked lines", func(c *Config) *bool { return &c.Underline }},
	{"color", "c", "highlight checked lines with color", func(c *Config) *bool { return &c.Color }},
	{"radiobox", "r", "only one line can be checked", func(c *Config) *bool { return &c.Radiobox }},
	{"initial", "i", "check all lines initially", func(c *Config) *bool { return &c.Initial }},
	{"whitelines", "w", "do not skip white lines", func(c *Config) *bool { return &c.WhiteLines }},
	{"fullattr", "l", "draw attributes till the end of line", func(c *Config) *bool { return &c.FullAttr }},
}

// newFlagSet binds every command-line option to cfg. Values already in cfg
// act as defaults, so flags override the config file.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	for _, t := range toggles {
		target := t.value(cfg)
		fs.BoolVarP(target, t.name, t.short, *target, t.usage)
	}
	for _, t := range toggles {
		flag := fs.VarPF(negatedBool{target: t.value(cfg)}, "not-"+t.name, toUpper(t.short), "not --"+t.name)
		flag.NoOptDefVal = "true"
		flag.DefValue = "false"
	}

	fs.StringVarP(&cfg.Foreground, "foreground", "f", cfg.Foreground, "foreground color to use to highlight")
	fs.StringVarP(&cfg.Background, "background", "b", cfg.Background, "background color to use to highlight")
	fs.StringVar(&cfg.SingleColumnStatus, "single-column-status", cfg.SingleColumnStatus, "status in one column mode: offset or position")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write debug log to this file")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "show this help message and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	return fs
}

func toUpper(short string) string {
	if short == "" {
		return ""
	}
	return string(short[0] - 'a' + 'A')
}

// Load resolves options: defaults, then the first config file found, then
// the command line. A config file that cannot be read is reported through
// warn and otherwise ignored. Command-line errors are returned.
func Load(args []string, getenv Getenv, warn func(error)) (Config, error) {
	cfg := Default()
	if path := getenv("CHOOSER_LOG"); path != "" {
		cfg.LogFile = path
	}

	if path, ok := FindFile(getenv); ok {
		if err := LoadFile(path, &cfg); err != nil && warn != nil {
			warn(err)
		}
	}

	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Files = fs.Args()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// PrintUsage writes the help text.
func PrintUsage(w io.Writer) {
	cfg := Default()
	fs := newFlagSet(&cfg)
	fmt.Fprintf(w, `%s - pick lines from the input interactively

USAGE:
    %s [OPTIONS] [FILES]

Lines are read from stdin when it is not a terminal, then from each FILE.
Checked lines are printed on Enter.

OPTIONS:
%s`, appName, appName, fs.FlagUsages())
}
