package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/chooser/internal/app"
	"github.com/kk-code-lab/chooser/internal/config"
	"github.com/kk-code-lab/chooser/internal/lines"
	statepkg "github.com/kk-code-lab/chooser/internal/state"
)

var version = "dev"

const (
	exitOK      = 0
	exitError   = 1
	exitUsage   = 2
	exitAborted = 130
)

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	warn := func(err error) {
		fmt.Fprintf(stderr, "chooser: warning: %v\n", err)
	}

	cfg, err := config.Load(args, os.Getenv, warn)
	if err != nil {
		fmt.Fprintf(stderr, "chooser: %v\n", err)
		fmt.Fprintln(stderr, "Try 'chooser --help' for more information.")
		return exitUsage
	}
	if cfg.ShowHelp {
		config.PrintUsage(stdout)
		return exitOK
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "chooser %s\n", version)
		return exitOK
	}

	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		warn(err)
	}
	defer closeLog()

	logger.Debug("options resolved",
		"config", cfg.Source,
		"files", len(cfg.Files),
		"onecolumn", cfg.OneColumn,
		"checkbox", cfg.Checkbox,
		"radiobox", cfg.Radiobox,
		"initial", cfg.Initial,
		"whitelines", cfg.WhiteLines,
	)

	store, err := lines.LoadInputs(stdin, cfg.Files, lines.Options{
		KeepBlank: cfg.WhiteLines,
		Initial:   cfg.Initial,
	})
	if err != nil {
		fmt.Fprintf(stderr, "chooser: %v\n", err)
		return exitError
	}
	for _, src := range store.Sources {
		logger.Info("input read",
			"name", src.Name,
			"encoding", src.Encoding.String(),
			"lines", src.Lines,
			"skipped", src.Skipped,
			"binary", src.Binary,
		)
	}

	switch {
	case store.Len() == 0:
		return exitOK
	case store.Len() == 1 && cfg.Initial:
		return writeResult(stdout, stderr, store.Lines)
	}

	app, err := apppkg.NewApplication(store, apppkg.Options{
		State:      cfg.StateOptions(),
		Foreground: cfg.Foreground,
		Background: cfg.Background,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "chooser: %v\n", err)
		return exitError
	}

	switch app.Run() {
	case statepkg.OutcomeAborted:
		return exitAborted
	case statepkg.OutcomeConfirmed:
		return writeResult(stdout, stderr, app.Checked())
	default:
		return exitOK
	}
}

func writeResult(stdout, stderr io.Writer, ls []lines.Line) int {
	if _, err := lines.WriteChecked(stdout, ls); err != nil {
		fmt.Fprintf(stderr, "chooser: %v\n", err)
		return exitError
	}
	return exitOK
}

// openLogger returns a debug logger writing to path, or a discarding logger
// when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if path == "" {
		return discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discard, func() {}, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
