// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/utils"
	"github.com/jsdr97/GeneTree-Z/models"
)

// keyMaterial describes where the relayer publishes the FHE public key and
// CRS. Only the key id travels with encryption requests.
type keyMaterial struct {
	PublicKeyID  string `json:"public_key_id"`
	PublicKeyURL string `json:"public_key_url"`
	CRSURL       string `json:"crs_url"`
}

type inputProofRequest struct {
	ContractAddress models.Address `json:"contract_address"`
	UserAddress     models.Address `json:"user_address"`
	Values          []int64        `json:"values"`
	KeyID           string         `json:"key_id"`
}

type inputProofResponse struct {
	Handles    []models.HexBytes `json:"handles"`
	InputProof models.HexBytes   `json:"input_proof"`
}

type publicDecryptRequest struct {
	Handles         []models.CiphertextHandle `json:"handles"`
	ContractAddress models.Address            `json:"contract_address"`
}

type publicDecryptResponse struct {
	ClearValues           map[string]int64 `json:"clear_values"`
	ABIEncodedClearValues models.HexBytes  `json:"abi_encoded_clear_values"`
	DecryptionProof       models.HexBytes  `json:"decryption_proof"`
}

type relayerAdapter struct {
	client *utils.HTTPClient

	mu  sync.RWMutex
	key *keyMaterial

	logger *logger.Logger
}

// RelayerAdapter is both halves of the FHE relayer: encryption and
// verifiable public decryption.
type RelayerAdapter interface {
	EncryptionClient
	DecryptionVerifier
}

// NewRelayerAdapter constructs an HTTP/REST implementation of
// [EncryptionClient] and [DecryptionVerifier] for the relayer at
// adapterCfg.RelayerAddress.
func NewRelayerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RelayerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.RelayerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid relayer address: %w", err)
	}

	return &relayerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// Init implements [EncryptionClient] via GET /v1/keyurl. Repeated calls
// refresh the key material.
func (r *relayerAdapter) Init(ctx context.Context) error {
	var km keyMaterial

	resp, err := r.client.JSON(ctx).
		SetResult(&km).
		Get("/v1/keyurl")
	if err != nil {
		return fmt.Errorf("key url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if km.PublicKeyID == "" {
		return fmt.Errorf("%w: empty public key id", ErrMalformedResponse)
	}

	r.mu.Lock()
	r.key = &km
	r.mu.Unlock()

	r.logger.Info().Str("func", "*relayerAdapter.Init").Str("key_id", km.PublicKeyID).Msg("FHE key material loaded")
	return nil
}

func (r *relayerAdapter) keyID() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.key == nil {
		return "", false
	}
	return r.key.PublicKeyID, true
}

// Encrypt implements [EncryptionClient] via POST /v1/input-proof.
func (r *relayerAdapter) Encrypt(ctx context.Context, contract, user models.Address, value int64) (models.EncryptedInput, error) {
	keyID, ok := r.keyID()
	if !ok {
		return models.EncryptedInput{}, ErrNotInitialized
	}

	var result inputProofResponse
	resp, err := r.client.JSON(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(inputProofRequest{
			ContractAddress: contract,
			UserAddress:     user,
			Values:          []int64{value},
			KeyID:           keyID,
		}).
		SetResult(&result).
		Post("/v1/input-proof")
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("input proof request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedInput{}, err
	}
	if len(result.Handles) == 0 || len(result.InputProof) == 0 {
		return models.EncryptedInput{}, fmt.Errorf("%w: missing handle or input proof", ErrMalformedResponse)
	}

	return models.EncryptedInput{Handle: result.Handles[0], Proof: result.InputProof}, nil
}

// RequestAndVerify implements [DecryptionVerifier] via POST /v1/public-decrypt.
// The returned clear values are keyed by the requested handles; handles the
// relayer did not answer for are absent from the map.
func (r *relayerAdapter) RequestAndVerify(ctx context.Context, handles []models.CiphertextHandle, contract models.Address, submit ProofSubmitter) (models.DecryptionResult, error) {
	var result publicDecryptResponse

	resp, err := r.client.JSON(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(publicDecryptRequest{Handles: handles, ContractAddress: contract}).
		SetResult(&result).
		Post("/v1/public-decrypt")
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("public decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DecryptionResult{}, err
	}
	if len(result.DecryptionProof) == 0 {
		return models.DecryptionResult{}, fmt.Errorf("%w: missing decryption proof", ErrMalformedResponse)
	}

	values := make(map[models.CiphertextHandle]int64, len(handles))
	for _, h := range handles {
		for got, v := range result.ClearValues {
			if strings.EqualFold(got, string(h)) {
				values[h] = v
				break
			}
		}
	}

	if _, err = submit.SubmitProof(ctx, result.ABIEncodedClearValues, result.DecryptionProof); err != nil {
		return models.DecryptionResult{}, fmt.Errorf("submit decryption proof: %w", err)
	}

	return models.DecryptionResult{
		ClearValues:        values,
		EncodedClearValues: result.ABIEncodedClearValues,
		DecryptionProof:    result.DecryptionProof,
	}, nil
}
