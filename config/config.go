package config

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AppName      = "storefront"
	TopicProduct = "storefront-product"
	NsqChannel   = "storefront"
)

var (
	Version = "0.1.0"
	Commit  = "-"
	Build   = "-"
	Now     = time.Now()
)

type (
	Config struct {
		Env                   string        `env:"ENV" envDefault:"development"`
		Port                  uint16        `env:"PORT" envDefault:"8080"`
		LogLevel              string        `env:"LOG_LEVEL" envDefault:"info"`
		TimeZone              string        `env:"TIME_ZONE,required"`
		JwtIssuer             string        `env:"JWT_ISSUER,required"`
		JwtAudience           string        `env:"JWT_AUDIENCE"`
		NsqAddress            string        `env:"NSQ_ADDRESS,required"`
		SessionTTL            time.Duration `env:"SESSION_TTL" envDefault:"30m"`
		ShippingFee           int64         `env:"SHIPPING_FEE" envDefault:"534"`
		LandingRoute          string        `env:"LANDING_ROUTE" envDefault:"/"`
		SentryEnabled         bool          `env:"SENTRY_ENABLED"`
		SentryDSN             string        `env:"SENTRY_DSN"`
		BasicAuthUsername     string        `env:"BASIC_AUTH_USERNAME"`
		BasicAuthPasswordHash string        `env:"BASIC_AUTH_PASSWORD_HASH"`
		Database              Database      `envPrefix:"DB_"`
	}

	Database struct {
		MaxConnections int       `env:"MAX_CONNECTIONS,required"`
		Read           DataStore `envPrefix:"READ_"`
		Write          DataStore `envPrefix:"WRITE_"`
	}

	DataStore struct {
		Host     string `env:"HOST"`
		Username string `env:"USERNAME"`
		Password string `env:"PASSWORD"`
		Name     string `env:"NAME"`
		Param    string `env:"PARAM"`
	}
)

var (
	// Load parses the environment once; .env must already be loaded.
	Load = sync.OnceValues(func() (*Config, error) {
		cfg, err := env.ParseAs[Config]()
		if err != nil {
			return nil, err
		}
		if err = cfg.Validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	})
)

func (q *Config) Validate() error {
	if _, err := time.LoadLocation(q.TimeZone); err != nil {
		return err
	}
	if q.SessionTTL <= 0 {
		return errors.New("env SESSION_TTL requires a positive duration")
	}
	if q.ShippingFee < 0 {
		return errors.New("env SHIPPING_FEE requires a non-negative integer")
	}
	if q.Database.MaxConnections < 1 {
		return errors.New("db: env DB_MAX_CONNECTIONS requires a positive integer")
	}
	if q.LandingRoute == "" {
		q.LandingRoute = "/"
	}
	return nil
}

func (q *Config) IsDevelopment() bool {
	return q.Env == "development"
}
