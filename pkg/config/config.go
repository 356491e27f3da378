package config

import (
	"fmt"
	"time"

	"github.com/amirasaad/ledgerdesk/pkg/money"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledgerdesk]"`
	Output     string `envconfig:"OUTPUT" default:"stdout"` // stdout, stderr or discard
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
	// ProxyHeader names the header carrying the client IP, e.g. X-Forwarded-For.
	// It is only honoured for requests arriving from TrustedProxies.
	ProxyHeader    string   `envconfig:"PROXY_HEADER"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Ledger configures how money is read and shown at the desk.
type Ledger struct {
	Currency   string `envconfig:"CURRENCY" default:"INR"`
	Symbol     string `envconfig:"SYMBOL"` // overrides the currency's own symbol when set
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	// CurrencyFile is a currency table CSV; the built-in table is used when empty.
	CurrencyFile string `envconfig:"CURRENCY_FILE"`
}

// ResolveCurrency returns the configured currency with any symbol override applied.
func (l *Ledger) ResolveCurrency() (money.Currency, error) {
	c, err := money.Lookup(l.Currency)
	if err != nil {
		return money.Currency{}, fmt.Errorf("ledger currency %q: %w", l.Currency, err)
	}
	if l.Symbol != "" {
		c = c.WithSymbol(l.Symbol)
	}
	return c, nil
}

type Metrics struct {
	Enabled   bool   `envconfig:"ENABLED" default:"true"`
	Namespace string `envconfig:"NAMESPACE" default:"ledgerdesk"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Ledger    *Ledger    `envconfig:"LEDGER"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Metrics   *Metrics   `envconfig:"METRICS"`
}
