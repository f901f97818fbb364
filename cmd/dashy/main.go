// dashy is a personal start page for the terminal: a surface of
// draggable widgets, a launcher dock, and a notification center fed by
// configurable sources.
//
// Usage:
//
//	dashy [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/dashy/config.yaml)
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dashy/dashy/internal/app"
	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/store"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("dashy %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *configPath == "" {
		*configPath = model.DefaultConfigPath()
	}

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the dashboard, so logs go to a file.
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logFile, err := os.OpenFile(
		filepath.Join(cfg.DataDir, "dashy.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	s, err := store.NewSQLiteStore(filepath.Join(cfg.DataDir, "dashy.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open state store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	logger.Info("starting dashy", "version", version, "config", *configPath)

	p := tea.NewProgram(
		app.New(cfg, s, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("dashboard error", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
