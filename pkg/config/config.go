package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
	// Url is the external auth service endpoint used for login pass-through.
	Url string `envconfig:"URL" default:"https://auth-service/login"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// BankTransfer configures the remote bank-transfer gateway boundary.
type BankTransfer struct {
	Url            string        `envconfig:"URL" default:"https://bank-service/bank-transfer"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

// Payment configures the external payment service collaborator.
type Payment struct {
	Url            string        `envconfig:"URL" default:"https://payment-service/process"`
	HistoryUrl     string        `envconfig:"HISTORY_URL" default:"https://payment-service/history"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[accountsvc]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env          string        `envconfig:"APP_ENV" default:"development"`
	Server       *Server       `envconfig:"SERVER"`
	Log          *Log          `envconfig:"LOG"`
	DB           *DB           `envconfig:"DATABASE"`
	Auth         *Auth         `envconfig:"AUTH"`
	BankTransfer *BankTransfer `envconfig:"BANK_TRANSFER"`
	Payment      *Payment      `envconfig:"PAYMENT"`
	RateLimit    *RateLimit    `envconfig:"RATE_LIMIT"`
}
