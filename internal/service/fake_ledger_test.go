// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsdr97/GeneTree-Z/internal/adapter"
	"github.com/jsdr97/GeneTree-Z/models"
)

var errFakeAlreadyVerified = errors.New("execution reverted: Data already verified")

// fakeLedger is an in-memory ledger, encryption client and decryption
// verifier in one. It keeps records in creation order and enforces the
// one-way sealed to disclosed transition like the real contract.
type fakeLedger struct {
	mu        sync.Mutex
	order     []models.RecordKey
	records   map[models.RecordKey]*models.Record
	handles   map[models.RecordKey]models.CiphertextHandle
	plaintext map[models.CiphertextHandle]int64
	nextCT    int
	token     string

	decryptCalls      atomic.Int64
	verificationsOK   atomic.Int64
	verificationsFail atomic.Int64
	remoteCalls       atomic.Int64

	// decryptBarrier, when set, holds every RequestAndVerify call until all
	// expected callers reached it.
	decryptBarrier *sync.WaitGroup
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		records:   make(map[models.RecordKey]*models.Record),
		handles:   make(map[models.RecordKey]models.CiphertextHandle),
		plaintext: make(map[models.CiphertextHandle]int64),
	}
}

type fakeTx struct {
	hash string
}

func (t fakeTx) Hash() string { return t.hash }

func (t fakeTx) Wait(context.Context) (models.Receipt, error) {
	return models.Receipt{TxHash: t.hash, Status: models.TxConfirmed, BlockNumber: 1}, nil
}

// ── LedgerReader ─────────────────────────────────────────────────────────────

func (f *fakeLedger) ListRecordKeys(context.Context) ([]models.RecordKey, error) {
	f.remoteCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.RecordKey(nil), f.order...), nil
}

func (f *fakeLedger) GetRecord(_ context.Context, key models.RecordKey) (models.Record, error) {
	f.remoteCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[key]
	if !ok {
		return models.Record{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, key)
	}
	return *r, nil
}

func (f *fakeLedger) GetCiphertextHandle(_ context.Context, key models.RecordKey) (models.CiphertextHandle, error) {
	f.remoteCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.handles[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", adapter.ErrNotFound, key)
	}
	return h, nil
}

// ── LedgerSigner ─────────────────────────────────────────────────────────────

func (f *fakeLedger) SetSessionToken(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

func (f *fakeLedger) CreateRecord(_ context.Context, tx models.CreateRecordTx) (adapter.Transaction, error) {
	f.remoteCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()

	handle := models.CiphertextHandle(tx.EncryptedValue.String())
	if _, ok := f.plaintext[handle]; !ok {
		return nil, fmt.Errorf("%w: unknown ciphertext", adapter.ErrBadRequest)
	}

	f.order = append(f.order, tx.Key)
	f.records[tx.Key] = &models.Record{
		Key:                tx.Key,
		DisplayName:        tx.Name,
		PublicRelationship: tx.PublicRelationship,
		PublicValue2:       tx.PublicValue2,
		Description:        tx.Description,
		CreatedAt:          time.Now(),
	}
	f.handles[tx.Key] = handle

	return fakeTx{hash: "0xcreate-" + tx.Key.String()}, nil
}

func (f *fakeLedger) SubmitVerification(_ context.Context, key models.RecordKey, encodedClearValues, _ models.HexBytes) (adapter.Transaction, error) {
	f.remoteCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", adapter.ErrNotFound, key)
	}
	if r.IsVerified {
		f.verificationsFail.Add(1)
		return nil, fmt.Errorf("%w: %w", adapter.ErrReverted, errFakeAlreadyVerified)
	}

	r.IsVerified = true
	r.DisclosedValue = int64(binary.BigEndian.Uint64(encodedClearValues))
	f.verificationsOK.Add(1)

	return fakeTx{hash: "0xverify-" + key.String()}, nil
}

// ── EncryptionClient ─────────────────────────────────────────────────────────

func (f *fakeLedger) Init(context.Context) error {
	f.remoteCalls.Add(1)
	return nil
}

func (f *fakeLedger) Encrypt(_ context.Context, _, _ models.Address, value int64) (models.EncryptedInput, error) {
	f.remoteCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextCT++
	ct := make(models.HexBytes, 32)
	binary.BigEndian.PutUint64(ct[24:], uint64(f.nextCT))
	f.plaintext[models.CiphertextHandle(ct.String())] = value

	return models.EncryptedInput{Handle: ct, Proof: models.HexBytes{0x01}}, nil
}

// ── DecryptionVerifier ───────────────────────────────────────────────────────

func (f *fakeLedger) RequestAndVerify(ctx context.Context, handles []models.CiphertextHandle, _ models.Address, submit adapter.ProofSubmitter) (models.DecryptionResult, error) {
	f.remoteCalls.Add(1)
	f.decryptCalls.Add(1)

	f.mu.Lock()
	values := make(map[models.CiphertextHandle]int64, len(handles))
	for _, h := range handles {
		v, ok := f.plaintext[h]
		if !ok {
			f.mu.Unlock()
			return models.DecryptionResult{}, fmt.Errorf("%w: unknown handle", adapter.ErrNotFound)
		}
		values[h] = v
	}
	f.mu.Unlock()

	if f.decryptBarrier != nil {
		f.decryptBarrier.Done()
		f.decryptBarrier.Wait()
	}

	encoded := make(models.HexBytes, 8)
	binary.BigEndian.PutUint64(encoded, uint64(values[handles[0]]))

	if _, err := submit.SubmitProof(ctx, encoded, models.HexBytes{0xde, 0xad}); err != nil {
		return models.DecryptionResult{}, fmt.Errorf("submit decryption proof: %w", err)
	}

	return models.DecryptionResult{ClearValues: values, EncodedClearValues: encoded, DecryptionProof: models.HexBytes{0xde, 0xad}}, nil
}

// staticIdentity is an IdentityProvider with a fixed answer.
type staticIdentity struct {
	address models.Address
	ok      bool
}

func (s staticIdentity) Identity() (models.Address, bool) {
	return s.address, s.ok
}
