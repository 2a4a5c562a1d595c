// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration.
type StructuredJSONConfig struct {
	App struct {
		ContractAddress  string   `json:"contract_address"`
		SessionToken     string   `json:"session_token"`
		HashKey          string   `json:"hash_key"`
		OperationTimeout Duration `json:"operation_timeout"`
		SuccessGrace     Duration `json:"success_grace"`
		ErrorGrace       Duration `json:"error_grace"`
	} `json:"app,omitempty"`

	Adapter struct {
		LedgerAddress            string   `json:"ledger_address"`
		RelayerAddress           string   `json:"relayer_address"`
		RequestTimeout           Duration `json:"request_timeout"`
		ConfirmationPollInterval Duration `json:"confirmation_poll_interval"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ContractAddress:  jsonCfg.App.ContractAddress,
			SessionToken:     jsonCfg.App.SessionToken,
			HashKey:          jsonCfg.App.HashKey,
			OperationTimeout: time.Duration(jsonCfg.App.OperationTimeout),
			SuccessGrace:     time.Duration(jsonCfg.App.SuccessGrace),
			ErrorGrace:       time.Duration(jsonCfg.App.ErrorGrace),
		},
		Adapter: Adapter{
			LedgerAddress:            jsonCfg.Adapter.LedgerAddress,
			RelayerAddress:           jsonCfg.Adapter.RelayerAddress,
			RequestTimeout:           time.Duration(jsonCfg.Adapter.RequestTimeout),
			ConfirmationPollInterval: time.Duration(jsonCfg.Adapter.ConfirmationPollInterval),
		},
		Storage: Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Workers: Workers{RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval)},
		Metrics: Metrics{Address: jsonCfg.Metrics.Address},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
