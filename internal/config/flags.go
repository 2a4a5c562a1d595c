// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-ledger ledger gateway base URL
//	-relayer FHE relayer base URL
//	-contract contract address
//	-session signer session token
//	-hash-key integrity hash key
//	-d snapshot cache DSN
//	-c/-config json file path with configs
//	-request-timeout per-request timeout (e.g., "30s")
//	-operation-timeout per-operation timeout (e.g., "2m")
//	-poll-interval confirmation poll interval (e.g., "2s")
//	-refresh-interval background refresh interval (e.g., "1m")
//	-metrics metrics listener address in format [host]:[port]
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("genetree", flag.ContinueOnError)

	var metricsAddress NetAddress
	var ledgerAddress, relayerAddress string
	var contractAddress, sessionToken, hashKey string
	var databaseDSN, jsonConfigPath string
	var requestTimeout, operationTimeout, pollInterval, refreshInterval time.Duration

	fs.StringVar(&ledgerAddress, "ledger", "", "Ledger gateway base URL")
	fs.StringVar(&relayerAddress, "relayer", "", "FHE relayer base URL")
	fs.StringVar(&contractAddress, "contract", "", "Contract address")
	fs.StringVar(&sessionToken, "session", "", "Signer session token")
	fs.StringVar(&hashKey, "hash-key", "", "Integrity hash key")
	fs.StringVar(&databaseDSN, "d", "", "Snapshot cache DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&operationTimeout, "operation-timeout", 0, "Operation timeout (e.g., 2m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Confirmation poll interval (e.g., 2s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 1m)")
	fs.Var(&metricsAddress, "metrics", "Metrics listener host:port")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ContractAddress:  contractAddress,
			SessionToken:     sessionToken,
			HashKey:          hashKey,
			OperationTimeout: operationTimeout,
		},
		Adapter: Adapter{
			LedgerAddress:            ledgerAddress,
			RelayerAddress:           relayerAddress,
			RequestTimeout:           requestTimeout,
			ConfirmationPollInterval: pollInterval,
		},
		Storage:      Storage{DB: DB{DSN: databaseDSN}},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Metrics:      Metrics{Address: metricsAddress.String()},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
