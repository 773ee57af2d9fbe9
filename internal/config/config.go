// Package config loads and resolves the bot's configuration.
//
// Values are read from a dotenv file (optional) and the process environment,
// decoded with envconfig under the BLOCKTRANSFER prefix and validated with the
// shared validator. Variables already present in the environment take
// precedence over the file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/blocktransfer/internal/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "BLOCKTRANSFER"

var (
	// ErrConfig is returned when configuration is missing, malformed or invalid.
	ErrConfig = errors.New("invalid configuration")

	// ErrAddressParse is returned when the recipient address is not a valid account address.
	ErrAddressParse = errors.New("invalid recipient address")
)

// Redis configures the optional transfer report sink. An empty Addr disables it.
type Redis struct {
	Addr         string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username     string `envconfig:"USERNAME"`
	Password     string `envconfig:"PASSWORD"`
	DB           int    `envconfig:"DB" validate:"gte=0"`
	ReportKey    string `envconfig:"REPORT_KEY" default:"blocktransfer:transfers" validate:"required"`
	ReportMaxLen int64  `envconfig:"REPORT_MAX_LEN" default:"10000" validate:"gt=0"`
}

// Enabled reports whether a report sink is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Config is the process configuration. It is immutable once loaded.
type Config struct {
	StreamEndpoint   string `envconfig:"STREAM_ENDPOINT" validate:"required,url,startswith=wss://"`
	StreamAuthToken  string `envconfig:"STREAM_AUTH_TOKEN" validate:"required"`
	StreamAuthHeader string `envconfig:"STREAM_AUTH_HEADER" default:"x-token" validate:"required"`

	RPCEndpoint string        `envconfig:"RPC_ENDPOINT" validate:"required,http_url"`
	RPCTimeout  time.Duration `envconfig:"RPC_TIMEOUT" default:"10s" validate:"gt=0"`

	SigningKeyPath   string `envconfig:"SIGNING_KEY_PATH" validate:"required"`
	RecipientAddress string `envconfig:"RECIPIENT_ADDRESS" validate:"required"`
	TransferAmount   string `envconfig:"TRANSFER_AMOUNT" validate:"required"`

	Commitment          string        `envconfig:"COMMITMENT" default:"confirmed" validate:"oneof=processed confirmed finalized"`
	ConfirmTimeout      time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"60s" validate:"gt=0"`
	ConfirmPollInterval time.Duration `envconfig:"CONFIRM_POLL_INTERVAL" default:"500ms" validate:"gt=0,ltfield=ConfirmTimeout"`

	Redis Redis `envconfig:"REDIS"`
}

// Load reads the configuration. When path is not empty the dotenv file at path
// is loaded into the environment first; keys already set are not overridden.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}
