package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/kobopay/accountsvc/infra/initializer"
	"github.com/kobopay/accountsvc/pkg/config"
	"github.com/kobopay/accountsvc/webapi"
)

// @title Banking Account Service API
// @version 1.0.0
// @description Customer onboarding, payments and inter-bank transfers.
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := initializer.SetupLogger(cfg.Log)

	deps, err := initializer.InitializeDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.New(cfg, deps.AccountService, deps.TransferService)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return app.Listen(addr)
}
