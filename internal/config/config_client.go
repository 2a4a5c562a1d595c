// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package config

import (
	"fmt"
	"time"

	"github.com/jsdr97/GeneTree-Z/models"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// ContractAddress is the validated family-record contract address.
	ContractAddress models.Address
	// SessionToken is the optional signer session token.
	SessionToken string
	// HashKey is the HMAC key used for request integrity headers.
	HashKey string
	// OperationTimeout bounds a single user-initiated operation.
	OperationTimeout time.Duration
	// SuccessGrace and ErrorGrace control status expiry.
	SuccessGrace time.Duration
	ErrorGrace   time.Duration
}

// ClientAdapter holds network settings used by the outbound adapters.
type ClientAdapter struct {
	LedgerAddress            string
	RelayerAddress           string
	RequestTimeout           time.Duration
	ConfirmationPollInterval time.Duration
}

// ClientDB contains snapshot cache connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientMetrics contains the metrics endpoint settings.
type ClientMetrics struct {
	// Address is empty when the endpoint is disabled.
	Address string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Metrics ClientMetrics
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	contract, err := models.ParseAddress(cfg.App.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: contract address: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ContractAddress:  contract,
			SessionToken:     cfg.App.SessionToken,
			HashKey:          cfg.App.HashKey,
			OperationTimeout: cfg.App.OperationTimeout,
			SuccessGrace:     cfg.App.SuccessGrace,
			ErrorGrace:       cfg.App.ErrorGrace,
		},
		Adapter: ClientAdapter{
			LedgerAddress:            cfg.Adapter.LedgerAddress,
			RelayerAddress:           cfg.Adapter.RelayerAddress,
			RequestTimeout:           cfg.Adapter.RequestTimeout,
			ConfirmationPollInterval: cfg.Adapter.ConfirmationPollInterval,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Metrics: ClientMetrics{Address: cfg.Metrics.Address},
	}

	return clientCfg, clientCfg.validate()
}
