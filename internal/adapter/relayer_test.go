// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/models"
)

var (
	testContract = models.Address("0x00000000000000000000000000000000000000aa")
	testUser     = models.Address("0x00000000000000000000000000000000000000bb")
)

func newTestRelayer(t *testing.T, serverURL string) *relayerAdapter {
	t.Helper()
	r, err := NewRelayerAdapter(config.ClientAdapter{RelayerAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return r.(*relayerAdapter)
}

type recordingSubmitter struct {
	encoded models.HexBytes
	proof   models.HexBytes
	err     error
	calls   int
}

func (s *recordingSubmitter) SubmitProof(_ context.Context, encoded, proof models.HexBytes) (Transaction, error) {
	s.calls++
	s.encoded, s.proof = encoded, proof
	if s.err != nil {
		return nil, s.err
	}
	return &ledgerTx{hash: "0xverify"}, nil
}

// ── Init / Encrypt ──────────────────────────────────────────────────────────

func TestRelayer_EncryptRequiresInit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newTestRelayer(t, srv.URL).Encrypt(context.Background(), testContract, testUser, 7)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Zero(t, calls.Load())
}

func TestRelayer_InitThenEncrypt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/keyurl":
			_, _ = w.Write([]byte(`{"public_key_id":"pk-1","public_key_url":"https://keys/pk","crs_url":"https://keys/crs"}`))
		case "/v1/input-proof":
			var req inputProofRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, testContract, req.ContractAddress)
			assert.Equal(t, testUser, req.UserAddress)
			assert.Equal(t, []int64{7}, req.Values)
			assert.Equal(t, "pk-1", req.KeyID)
			_, _ = w.Write([]byte(`{"handles":["0xaabb"],"input_proof":"0xccdd"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL)
	require.NoError(t, r.Init(context.Background()))

	enc, err := r.Encrypt(context.Background(), testContract, testUser, 7)
	require.NoError(t, err)
	assert.Equal(t, models.HexBytes{0xaa, 0xbb}, enc.Handle)
	assert.Equal(t, models.HexBytes{0xcc, 0xdd}, enc.Proof)
}

func TestRelayer_InitEmptyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := newTestRelayer(t, srv.URL).Init(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRelayer_EncryptServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/keyurl" {
			_, _ = w.Write([]byte(`{"public_key_id":"pk-1"}`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := newTestRelayer(t, srv.URL)
	require.NoError(t, r.Init(context.Background()))

	_, err := r.Encrypt(context.Background(), testContract, testUser, 7)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── RequestAndVerify ────────────────────────────────────────────────────────

func TestRelayer_RequestAndVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/public-decrypt", r.URL.Path)
		var req publicDecryptRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []models.CiphertextHandle{"0xABCD"}, req.Handles)
		_, _ = w.Write([]byte(`{"clear_values":{"0xabcd":7},"abi_encoded_clear_values":"0x07","decryption_proof":"0x99"}`))
	}))
	defer srv.Close()

	sub := &recordingSubmitter{}
	res, err := newTestRelayer(t, srv.URL).RequestAndVerify(context.Background(), []models.CiphertextHandle{"0xABCD"}, testContract, sub)

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ClearValues["0xABCD"])
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, models.HexBytes{0x07}, sub.encoded)
	assert.Equal(t, models.HexBytes{0x99}, sub.proof)
}

func TestRelayer_RequestAndVerify_SubmitError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clear_values":{"0x01":1},"abi_encoded_clear_values":"0x01","decryption_proof":"0x02"}`))
	}))
	defer srv.Close()

	submitErr := errors.New("Data already verified")
	_, err := newTestRelayer(t, srv.URL).RequestAndVerify(context.Background(), []models.CiphertextHandle{"0x01"}, testContract, &recordingSubmitter{err: submitErr})

	assert.ErrorIs(t, err, submitErr)
}

func TestRelayer_RequestAndVerify_MissingProof(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clear_values":{}}`))
	}))
	defer srv.Close()

	sub := &recordingSubmitter{}
	_, err := newTestRelayer(t, srv.URL).RequestAndVerify(context.Background(), []models.CiphertextHandle{"0x01"}, testContract, sub)

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Zero(t, sub.calls)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusForbidden, body: "denied", wantErr: ErrForbidden},
		{status: http.StatusForbidden, body: "user rejected the request", wantErr: ErrUserRejected},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusConflict, wantErr: ErrConflict},
		{status: http.StatusUnprocessableEntity, wantErr: ErrReverted},
		{status: http.StatusUnprocessableEntity, body: "Data already verified", wantErr: ErrAlreadyVerified},
		{status: http.StatusBadRequest, body: "execution reverted: Data Already Verified", wantErr: ErrReverted},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status)+tt.body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestRelayer(t, srv.URL).Init(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
