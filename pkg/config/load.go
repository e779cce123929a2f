package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads environment variables, optionally from the given .env files, and
// returns the processed application config. Paths are tried in order; the first
// one found wins. With no paths the default .env in the working directory is used.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		foundPath, err := findEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Info("Environment loaded from file", "path", foundPath)
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger := slog.Default()
	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"auth_url", cfg.Auth.Url,
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"bank_transfer_url", cfg.BankTransfer.Url,
		"bank_transfer_timeout", cfg.BankTransfer.RequestTimeout,
		"payment_url", cfg.Payment.Url,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

// findEnvFile walks up from the working directory looking for filename.
// Lets tests load the repo root .env.test regardless of the package under test.
func findEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	curr, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			break
		}
		curr = parent
	}
	return "", os.ErrNotExist
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
