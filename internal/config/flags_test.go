// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 9100}, expected: "localhost:9100"},
		{name: "only port no host", addr: NetAddress{Port: 9100}, expected: ":9100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:9100", expectedAddr: NetAddress{Host: "localhost", Port: 9100}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":9100", expectedAddr: NetAddress{Port: 9100}},
		{name: "missing colon", input: "localhost9100", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "non numeric port", input: "localhost:abc", expectError: true},
		{name: "bad ip", input: "999.1.1.1:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-ledger", "http://ledger",
		"-relayer", "http://relayer",
		"-contract", "0x00000000000000000000000000000000000000aa",
		"-session", "tok",
		"-hash-key", "hk",
		"-d", "cache.db",
		"-config", "cfg.json",
		"-request-timeout", "15s",
		"-operation-timeout", "1m",
		"-poll-interval", "250ms",
		"-refresh-interval", "30s",
		"-metrics", "localhost:9100",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://ledger", cfg.Adapter.LedgerAddress)
	assert.Equal(t, "http://relayer", cfg.Adapter.RelayerAddress)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", cfg.App.ContractAddress)
	assert.Equal(t, "tok", cfg.App.SessionToken)
	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.App.OperationTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Adapter.ConfirmationPollInterval)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "localhost:9100", cfg.Metrics.Address)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidMetricsAddress(t *testing.T) {
	_, err := parseFlags([]string{"-metrics", "nope"})
	assert.Error(t, err)
}
