package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "adornets"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Session  SessionConfig
	WhatsApp WhatsAppConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.WhatsApp.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ADORNETS_APP_ENV" default:"dev"`
	Port         string `envconfig:"ADORNETS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ADORNETS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ADORNETS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"ADORNETS_SESSION_IDLE_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"ADORNETS_SESSION_SWEEP_INTERVAL" default:"5m"`
	CookieName    string        `envconfig:"ADORNETS_SESSION_COOKIE" default:"adornets_session"`
}

// WhatsAppConfig addresses the order hand-off channel. The defaults are the
// production storefront destination and M-Pesa pay-bill details.
type WhatsAppConfig struct {
	Phone              string        `envconfig:"ADORNETS_WHATSAPP_PHONE" default:"254700060496"`
	PayBillNumber      string        `envconfig:"ADORNETS_MPESA_PAYBILL" default:"247247"`
	PayBillAccount     string        `envconfig:"ADORNETS_MPESA_ACCOUNT" default:"0700060496"`
	PayBillAccountName string        `envconfig:"ADORNETS_MPESA_ACCOUNT_NAME" default:"Lynn Adornets"`
	ProbeTimeout       time.Duration `envconfig:"ADORNETS_WHATSAPP_PROBE_TIMEOUT" default:"5s"`
}

func (w WhatsAppConfig) validate() error {
	phone := strings.TrimSpace(w.Phone)
	if phone == "" {
		return fmt.Errorf("ADORNETS_WHATSAPP_PHONE is required")
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("ADORNETS_WHATSAPP_PHONE must be digits only, got %q", w.Phone)
		}
	}
	return nil
}
