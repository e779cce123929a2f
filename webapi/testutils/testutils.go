// Package testutils provides shared helpers for webapi tests: a fully wired
// Fiber app backed by mocks, request helpers and a Postgres-backed e2e suite
// using Testcontainers.
package testutils

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	infraaccount "github.com/kobopay/accountsvc/infra/repository/account"
	infracustomer "github.com/kobopay/accountsvc/infra/repository/customer"
	"github.com/kobopay/accountsvc/internal/fixtures/mocks"
	"github.com/kobopay/accountsvc/pkg/config"
	accountsvc "github.com/kobopay/accountsvc/pkg/service/account"
	transfersvc "github.com/kobopay/accountsvc/pkg/service/transfer"
	"github.com/kobopay/accountsvc/webapi"
)

// TestJwtSecret signs the tokens used by protected-route tests.
const TestJwtSecret = "test-secret"

// TestConfig returns an App config suitable for in-process handler tests.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Host: "localhost", Port: 3000},
		Auth: &config.Auth{
			Jwt: &config.Jwt{Secret: TestJwtSecret, Expiry: time.Hour},
		},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
}

// AppMocks bundles the mock collaborators behind a test app.
type AppMocks struct {
	Uow       *mocks.MockUnitOfWork
	Accounts  *mocks.MockAccountRepository
	Customers *mocks.MockCustomerRepository
	Gateway   *mocks.MockTransferGateway
	Payments  *mocks.MockPaymentClient
	Auth      *mocks.MockAuthClient
}

// SetupTestApp builds the full Fiber app with services wired to fresh mocks.
func SetupTestApp(t *testing.T) (*fiber.App, *AppMocks) {
	t.Helper()
	m := &AppMocks{
		Uow:       mocks.NewMockUnitOfWork(t),
		Accounts:  mocks.NewMockAccountRepository(t),
		Customers: mocks.NewMockCustomerRepository(t),
		Gateway:   mocks.NewMockTransferGateway(t),
		Payments:  mocks.NewMockPaymentClient(t),
		Auth:      mocks.NewMockAuthClient(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	accountSvc := accountsvc.New(m.Uow, m.Payments, m.Auth, logger)
	transferSvc := transfersvc.New(m.Accounts, m.Customers, m.Gateway, logger)

	app := webapi.New(TestConfig(), accountSvc, transferSvc)
	return app, m
}

// Token signs a short-lived HS256 token accepted by the test app.
func Token(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "test-user",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(TestJwtSecret))
	require.NoError(t, err)
	return signed
}

// MakeRequest performs an in-process request against the app. An empty token
// leaves the Authorization header unset.
func MakeRequest(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// E2ETestSuite runs repository-level tests against a real Postgres instance
// provisioned with Testcontainers. Suites embedding it get a migrated schema
// and real repositories; skip with -short when Docker is unavailable.
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
}

func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping e2e suite in short mode")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("accountsvc_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&infracustomer.Customer{}, &infraaccount.Account{}))
	s.DB = db
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		s.Require().NoError(s.pgContainer.Terminate(context.Background()))
	}
}
