package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rb-plan/TermClock/internal/app"
	"github.com/rb-plan/TermClock/internal/config"
	"github.com/rb-plan/TermClock/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A .env file is a development convenience; absence is fine and real
	// environment variables win.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "config file path (optional)")
	refreshSeconds := flag.Int("refresh", 0, "temperature refresh interval in seconds (overrides config)")
	flag.Usage = usage
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("TERMCLOCK_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termclock: %v\n", err)
		return 1
	}
	if *refreshSeconds > 0 {
		cfg.TempRefreshInterval = *refreshSeconds
	}

	logger, logCloser, err := logging.Open(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termclock: %v\n", err)
		return 1
	}
	defer func() { _ = logCloser.Close() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{Settings: cfg, Log: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "termclock: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: termclock [flags]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintln(out, "  TERMCLOCK_CONFIG        config file path (default ~/.config/termclock/config.yaml)")
	fmt.Fprintln(out, "  TERMCLOCK_API_BASE_URL  habitat API base URL; empty uses the fallback sources")
	fmt.Fprintln(out, "  TERMCLOCK_DEVICE_CODE   temperature sensor device code")
	fmt.Fprintln(out, "  TERMCLOCK_TODOS_FILE    local todos file for the no-API setup")
	fmt.Fprintln(out, "  TERMCLOCK_LOG_FILE      diagnostic log destination; empty disables logging")
	fmt.Fprintln(out, "  LOG_LEVEL               debug, info, warn, or error (default info)")
}
