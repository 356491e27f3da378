package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/amirasaad/ledgerdesk/infra/initializer"
	"github.com/amirasaad/ledgerdesk/pkg/app"
	"github.com/amirasaad/ledgerdesk/pkg/config"
	"github.com/amirasaad/ledgerdesk/pkg/desk"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	script := flag.Bool("script", false, "read commands from stdin even when it is a terminal")
	envFile := flag.String("env", ".env", "environment file to load")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-script] [-env file] [< script]\n\n", os.Args[0]) //nolint:errcheck
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "\n"+desk.Usage()) //nolint:errcheck
	}
	flag.Parse()

	// Keep the desk output readable: startup chatter is only shown on request.
	slog.SetLogLoggerLevel(slog.LevelWarn)
	cfg, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	if _, set := os.LookupEnv("LOG_OUTPUT"); !set {
		cfg.Log.Output = "stderr"
	}
	if _, set := os.LookupEnv("LOG_LEVEL"); !set {
		cfg.Log.Level = int(log.WarnLevel)
	}
	cfg.Metrics.Enabled = false

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(deps, cfg)
	d := desk.New(a.AccountService, os.Stdout, desk.WithTimeLayout(cfg.Ledger.TimeFormat))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *script || !term.IsTerminal(int(os.Stdin.Fd())) {
		return d.Run(ctx, os.Stdin)
	}
	return d.Interactive(ctx)
}
