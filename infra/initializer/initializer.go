package initializer

import (
	"fmt"
	"log/slog"

	"github.com/kobopay/accountsvc/infra"
	infraaccount "github.com/kobopay/accountsvc/infra/repository/account"
	infracustomer "github.com/kobopay/accountsvc/infra/repository/customer"
	infrarepository "github.com/kobopay/accountsvc/infra/repository"
	"github.com/kobopay/accountsvc/infra/provider/authclient"
	"github.com/kobopay/accountsvc/infra/provider/paymentclient"
	"github.com/kobopay/accountsvc/infra/provider/transfergateway"
	"github.com/kobopay/accountsvc/pkg/config"
	accountsvc "github.com/kobopay/accountsvc/pkg/service/account"
	transfersvc "github.com/kobopay/accountsvc/pkg/service/transfer"
)

// Deps holds the wired application services.
type Deps struct {
	AccountService  *accountsvc.Service
	TransferService *transfersvc.Service
	Logger          *slog.Logger
}

// InitializeDependencies connects the database, migrates the ledger schema and
// wires repositories, providers and services.
func InitializeDependencies(cfg *config.App, logger *slog.Logger) (*Deps, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&infracustomer.Customer{}, &infraaccount.Account{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	uow := infrarepository.NewUoW(db)
	accounts := infraaccount.New(db)
	customers := infracustomer.New(db)

	gateway := transfergateway.New(cfg.BankTransfer, logger)
	payments := paymentclient.New(cfg.Payment, logger)
	auth := authclient.New(cfg.Auth, logger)

	return &Deps{
		AccountService:  accountsvc.New(uow, payments, auth, logger),
		TransferService: transfersvc.New(accounts, customers, gateway, logger),
		Logger:          logger,
	}, nil
}
