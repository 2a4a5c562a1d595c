// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/utils"
	"github.com/jsdr97/GeneTree-Z/models"
)

const defaultPollInterval = 2 * time.Second

type ledgerAdapter struct {
	client       *utils.HTTPClient
	hasher       *utils.Hasher
	pollInterval time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

type recordKeysResponse struct {
	Keys []models.RecordKey `json:"business_keys"`
}

type ciphertextResponse struct {
	Handle models.CiphertextHandle `json:"handle"`
}

type submitResponse struct {
	TxHash string `json:"tx_hash"`
}

// NewLedgerAdapter constructs an HTTP/REST implementation of [LedgerGateway].
// It normalises and validates the base URL from adapterCfg.LedgerAddress and
// keys the integrity hasher with appCfg.HashKey. The session token from
// appCfg, if any, is bound immediately.
//
// Returns an error if adapterCfg.LedgerAddress is empty or cannot be parsed as
// a valid URL.
func NewLedgerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (LedgerGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.LedgerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger address: %w", err)
	}

	pollInterval := adapterCfg.ConfirmationPollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	l := &ledgerAdapter{
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher:       utils.NewHasher(appCfg.HashKey),
		pollInterval: pollInterval,
		logger:       logger,
	}
	l.SetSessionToken(appCfg.SessionToken)

	return l, nil
}

// SetSessionToken implements [LedgerSigner].
func (l *ledgerAdapter) SetSessionToken(token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.token = strings.TrimSpace(token)
}

func (l *ledgerAdapter) sessionToken() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.token
}

// ListRecordKeys implements [LedgerReader] via GET /api/records.
func (l *ledgerAdapter) ListRecordKeys(ctx context.Context) ([]models.RecordKey, error) {
	var result recordKeysResponse

	resp, err := l.client.JSON(ctx).
		SetResult(&result).
		Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Keys, nil
}

// GetRecord implements [LedgerReader] via GET /api/records/{key}. The record
// ID is derived from its key.
func (l *ledgerAdapter) GetRecord(ctx context.Context, key models.RecordKey) (models.Record, error) {
	var record models.Record

	resp, err := l.client.JSON(ctx).
		SetResult(&record).
		Get("/api/records/" + url.PathEscape(key.String()))
	if err != nil {
		return models.Record{}, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}
	if record.Key == "" {
		record.Key = key
	}

	record.ID = record.DeriveID()
	return record, nil
}

// GetCiphertextHandle implements [LedgerReader] via
// GET /api/records/{key}/ciphertext.
func (l *ledgerAdapter) GetCiphertextHandle(ctx context.Context, key models.RecordKey) (models.CiphertextHandle, error) {
	var result ciphertextResponse

	resp, err := l.client.JSON(ctx).
		SetResult(&result).
		Get("/api/records/" + url.PathEscape(key.String()) + "/ciphertext")
	if err != nil {
		return "", fmt.Errorf("get ciphertext request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.Handle == "" {
		return "", fmt.Errorf("%w: empty ciphertext handle", ErrMalformedResponse)
	}

	return result.Handle, nil
}

// CreateRecord implements [LedgerSigner] via POST /api/records.
func (l *ledgerAdapter) CreateRecord(ctx context.Context, tx models.CreateRecordTx) (Transaction, error) {
	return l.submit(ctx, "/api/records", tx)
}

// SubmitVerification implements [LedgerSigner] via
// POST /api/records/{key}/verification.
func (l *ledgerAdapter) SubmitVerification(ctx context.Context, key models.RecordKey, encodedClearValues, proof models.HexBytes) (Transaction, error) {
	body := models.VerificationTx{
		Key:                key,
		EncodedClearValues: encodedClearValues,
		DecryptionProof:    proof,
	}
	return l.submit(ctx, "/api/records/"+url.PathEscape(key.String())+"/verification", body)
}

func (l *ledgerAdapter) submit(ctx context.Context, path string, body any) (Transaction, error) {
	req, err := l.signedRequest(ctx, body)
	if err != nil {
		return nil, err
	}

	var result submitResponse
	resp, err := req.SetResult(&result).Post(path)
	if err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		l.logger.Err(err).Str("func", "*ledgerAdapter.submit").Str("path", path).Msg("ledger rejected submission")
		return nil, err
	}
	if result.TxHash == "" {
		return nil, fmt.Errorf("%w: empty transaction hash", ErrMalformedResponse)
	}

	return &ledgerTx{hash: result.TxHash, ledger: l}, nil
}

// signedRequest builds a request carrying the session bearer token and an
// HMAC-SHA256 digest of the exact JSON body.
func (l *ledgerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	token := l.sessionToken()
	if token == "" {
		return nil, ErrNoSession
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	return l.client.JSON(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("HashSHA256", l.hasher.SumHex(payload)).
		SetBody(payload), nil
}

func (l *ledgerAdapter) receipt(ctx context.Context, hash string) (models.Receipt, error) {
	var receipt models.Receipt

	resp, err := l.client.JSON(ctx).
		SetResult(&receipt).
		Get("/api/tx/" + url.PathEscape(hash))
	if err != nil {
		return models.Receipt{}, fmt.Errorf("get receipt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Receipt{}, err
	}
	if receipt.TxHash == "" {
		receipt.TxHash = hash
	}

	return receipt, nil
}

// ledgerTx polls the gateway until the transaction leaves the pending state.
type ledgerTx struct {
	hash   string
	ledger *ledgerAdapter
}

// Hash implements [Transaction].
func (t *ledgerTx) Hash() string {
	return t.hash
}

// Wait implements [Transaction]. A receipt that is not found yet is treated
// as pending.
func (t *ledgerTx) Wait(ctx context.Context) (models.Receipt, error) {
	ticker := time.NewTicker(t.ledger.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := t.ledger.receipt(ctx, t.hash)
		switch {
		case err != nil && !isNotFound(err):
			return models.Receipt{}, fmt.Errorf("wait for %s: %w", t.hash, err)
		case err == nil && receipt.Status == models.TxConfirmed:
			return receipt, nil
		case err == nil && receipt.Status == models.TxReverted:
			return receipt, revertedError(receipt.RevertReason)
		}

		t.ledger.logger.Debug().Str("func", "*ledgerTx.Wait").Str("tx", t.hash).Msg("transaction pending")

		select {
		case <-ctx.Done():
			return models.Receipt{}, fmt.Errorf("wait for %s: %w", t.hash, ctx.Err())
		case <-ticker.C:
		}
	}
}
