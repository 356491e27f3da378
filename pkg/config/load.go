package config

import (
	"log/slog"

	currencyfixtures "github.com/amirasaad/ledgerdesk/internal/fixtures/currency"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the configuration from the environment. Each path is searched for
// in the working directory and its parents; the first one found is loaded
// into the environment before processing.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	// The currency table must be registered before the ledger currency is resolved.
	if registered, err := currencyfixtures.RegisterActive(cfg.Ledger.CurrencyFile); err != nil {
		slog.Default().Warn("Failed to load currency metadata", "path", cfg.Ledger.CurrencyFile, "error", err)
	} else {
		slog.Default().Debug("Loaded currency metadata", "registered_count", registered)
	}
	if _, err := cfg.Ledger.ResolveCurrency(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"addr", cfg.Server.Addr(),
		"log_format", cfg.Log.Format,
		"ledger_currency", cfg.Ledger.Currency,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"metrics_enabled", cfg.Metrics.Enabled,
		"metrics_namespace", cfg.Metrics.Namespace,
	)
	return &cfg, nil
}
