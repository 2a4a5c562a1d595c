// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds ledger identity, integrity, and operation timing settings.
	App App `envPrefix:"APP_"`
	// Adapter holds the addresses and timeouts of the remote collaborators.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Storage holds the snapshot cache settings.
	Storage Storage `envPrefix:"STORAGE_"`
	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`
	// Metrics holds the optional Prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// ContractAddress is the address of the family-record contract.
	// Env: APP_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`
	// SessionToken is the signer session token issued by the wallet bridge.
	// When empty the client starts disconnected.
	// Env: APP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`
	// HashKey is the HMAC key for the HashSHA256 integrity header attached to
	// signer requests.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
	// OperationTimeout bounds a single user-initiated operation.
	// Env: APP_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
	// SuccessGrace is how long a success status stays visible.
	// Env: APP_SUCCESS_GRACE
	SuccessGrace time.Duration `env:"SUCCESS_GRACE"`
	// ErrorGrace is how long an error status stays visible.
	// Env: APP_ERROR_GRACE
	ErrorGrace time.Duration `env:"ERROR_GRACE"`
}

// Adapter holds settings for the outbound HTTP adapters.
type Adapter struct {
	// LedgerAddress is the base URL of the ledger gateway.
	// Env: ADAPTER_LEDGER_ADDRESS
	LedgerAddress string `env:"LEDGER_ADDRESS"`
	// RelayerAddress is the base URL of the FHE relayer.
	// Env: ADAPTER_RELAYER_ADDRESS
	RelayerAddress string `env:"RELAYER_ADDRESS"`
	// RequestTimeout is the per-request HTTP timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// ConfirmationPollInterval is the delay between transaction receipt polls.
	// Env: ADAPTER_CONFIRMATION_POLL_INTERVAL
	ConfirmationPollInterval time.Duration `env:"CONFIRMATION_POLL_INTERVAL"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the SQLite snapshot cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite snapshot cache.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the record store is refreshed in the
	// background.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Metrics holds settings for the Prometheus endpoint.
type Metrics struct {
	// Address is the host:port of the /metrics listener. Empty disables it.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources using the process arguments for flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// defaultConfig holds the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OperationTimeout: 2 * time.Minute,
			SuccessGrace:     2 * time.Second,
			ErrorGrace:       3 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout:           30 * time.Second,
			ConfirmationPollInterval: 2 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: "genetree.db"}},
		Workers: Workers{RefreshInterval: time.Minute},
	}
}
