// Package config loads the process configuration from the environment.
//
// The configuration is read once at startup with envconfig, completed with the
// network endpoint presets and validated before any component is built. The
// resulting Config is passed down explicitly; nothing reads the environment
// after Load returns.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/lakewatch/internal/pkg/types"
	"github.com/gabapcia/lakewatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Network names selected by the TEST variable.
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// endpoints pairs the archival block data endpoint with the JSON-RPC endpoint of a network.
type endpoints struct {
	lake string
	rpc  string
}

// presets holds the default endpoints of each network.
var presets = map[string]endpoints{
	NetworkMainnet: {
		lake: "https://mainnet.neardata.xyz",
		rpc:  "https://rpc.mainnet.near.org",
	},
	NetworkTestnet: {
		lake: "https://testnet.neardata.xyz",
		rpc:  "https://rpc.testnet.near.org",
	},
}

// AccountList is a comma-separated list of account ids. Entries are trimmed
// and empty entries are dropped while decoding.
type AccountList []string

// Decode implements envconfig.Decoder.
func (a *AccountList) Decode(value string) error {
	accounts := make(AccountList, 0)
	for _, account := range strings.Split(value, ",") {
		if account = strings.TrimSpace(account); account != "" {
			accounts = append(accounts, account)
		}
	}

	*a = accounts
	return nil
}

// Set returns the accounts as a lookup set.
func (a AccountList) Set() types.Set[string] {
	return types.NewSet(a...)
}

// Config is the full process configuration.
type Config struct {
	StartFromCheckpoint bool        `envconfig:"START_BLOCK_HEIGHT_FROM_CACHE" required:"true"`
	StartHeight         uint64      `envconfig:"START_BLOCK_HEIGHT" required:"true"`
	RedisURL            string      `envconfig:"REDIS_URL" required:"true" validate:"required"`
	PubList             string      `envconfig:"PUB_LIST" required:"true" validate:"required"`
	Accounts            AccountList `envconfig:"ACCOUNTS" required:"true" validate:"required,min=1,dive,near_account"`
	ParseTxHash         bool        `envconfig:"PARSE_TX_HASH" default:"false"`
	Testnet             bool        `envconfig:"TEST" default:"true"`

	LogFile  string `envconfig:"LOG_FILE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`

	LakeEndpoint       string        `envconfig:"LAKE_ENDPOINT" validate:"required,url"`
	RPCEndpoint        string        `envconfig:"RPC_ENDPOINT" validate:"required,url"`
	PollInterval       time.Duration `envconfig:"POLL_INTERVAL" default:"1s" validate:"gt=0"`
	StoreRetryAttempts uint          `envconfig:"STORE_RETRY_ATTEMPTS" default:"0"`

	OtelEnabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OtelServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"lakewatch" validate:"required"`
}

// Network returns the name of the network selected by the TEST flag.
func (c Config) Network() string {
	if c.Testnet {
		return NetworkTestnet
	}

	return NetworkMainnet
}

// Load reads the configuration from the process environment, fills the
// endpoints left unset with the presets of the selected network and
// validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	preset := presets[cfg.Network()]
	if cfg.LakeEndpoint == "" {
		cfg.LakeEndpoint = preset.lake
	}
	if cfg.RPCEndpoint == "" {
		cfg.RPCEndpoint = preset.rpc
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
