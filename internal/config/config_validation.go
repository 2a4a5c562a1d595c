// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package config

import "strings"

// validate checks that the merged [StructuredConfig] is usable. Field-level
// rules live in [ClientConfig.validate]; this only rejects negative durations.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.OperationTimeout < 0 || cfg.App.SuccessGrace < 0 || cfg.App.ErrorGrace < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.ConfirmationPollInterval < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Adapter.LedgerAddress == "" || cfg.Adapter.RelayerAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout == 0 || cfg.Adapter.ConfirmationPollInterval == 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.App.HashKey == "" || cfg.App.ContractAddress.IsZero() || cfg.App.OperationTimeout == 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}
