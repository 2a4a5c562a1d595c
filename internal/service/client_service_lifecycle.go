// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsdr97/GeneTree-Z/internal/adapter"
	"github.com/jsdr97/GeneTree-Z/internal/app"
	"github.com/jsdr97/GeneTree-Z/internal/config"
	"github.com/jsdr97/GeneTree-Z/internal/logger"
	"github.com/jsdr97/GeneTree-Z/internal/metrics"
	"github.com/jsdr97/GeneTree-Z/internal/utils"
	"github.com/jsdr97/GeneTree-Z/internal/validators"
	"github.com/jsdr97/GeneTree-Z/models"
)

var (
	errNoVerificationTx = errors.New("verification transaction was not submitted")
	errMissingClearText = errors.New("no clear value returned for handle")
)

type clientLifecycleService struct {
	ledger     adapter.LedgerGateway
	encryption adapter.EncryptionClient
	verifier   adapter.DecryptionVerifier
	records    ClientRecordService
	identity   IdentityProvider
	status     *StatusBoard
	metrics    *metrics.Metrics
	logger     *logger.Logger

	contract  models.Address
	validator validators.Validator
	keys      KeyGenerator
	now       func() time.Time
}

// NewClientLifecycleService creates a ClientLifecycleService acting on the
// contract configured in cfg.
func NewClientLifecycleService(
	ledger adapter.LedgerGateway,
	encryption adapter.EncryptionClient,
	verifier adapter.DecryptionVerifier,
	records ClientRecordService,
	identity IdentityProvider,
	status *StatusBoard,
	cfg config.ClientApp,
	m *metrics.Metrics,
	logger *logger.Logger,
) ClientLifecycleService {
	return &clientLifecycleService{
		ledger:     ledger,
		encryption: encryption,
		verifier:   verifier,
		records:    records,
		identity:   identity,
		status:     status,
		metrics:    m,
		logger:     logger,
		contract:   cfg.ContractAddress,
		validator:  validators.NewRecordValidator(),
		keys:       utils.NewRecordKeyGenerator(),
		now:        time.Now,
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func (s *clientLifecycleService) Create(ctx context.Context, input models.CreateInput) (models.RecordKey, error) {
	ctx, span := tracer.Start(ctx, "lifecycle.create", trace.WithAttributes(
		attribute.Int64("record.relationship", input.Relationship),
	))
	defer span.End()

	user, ok := s.identity.Identity()
	if !ok {
		s.status.Fail(models.StageNone, app.MsgConnectWallet)
		s.metrics.IncCreated(metrics.OutcomeFailed)
		spanFail(span, ErrNotConnected, "not connected")
		return "", ErrNotConnected
	}

	if err := s.validator.Validate(ctx, input); err != nil {
		return "", s.failCreate(span, fmt.Errorf("%w: %w", ErrInvalidInput, err), err)
	}

	s.status.Pending(models.StageEncrypting, app.MsgCreating)
	encrypted, err := s.encryption.Encrypt(ctx, s.contract, user, input.HealthScore)
	if err != nil {
		return "", s.failCreate(span, fmt.Errorf("%w: %w", ErrEncryptionFailed, err), err)
	}

	key := s.keys.Generate()
	span.SetAttributes(attribute.String("record.key", key.String()))

	s.status.Pending(models.StageSubmitting, app.MsgCreating)
	tx, err := s.ledger.CreateRecord(ctx, models.CreateRecordTx{
		Key:                key,
		Name:               strings.TrimSpace(input.Name),
		EncryptedValue:     encrypted.Handle,
		InputProof:         encrypted.Proof,
		PublicRelationship: input.Relationship,
		PublicValue2:       0,
		Description:        app.RecordDescription,
	})
	if err != nil {
		return "", s.failCreate(span, mapAdapterError(err, ErrSubmissionFailed), err)
	}

	s.status.Pending(models.StageConfirming, app.MsgAwaitingConfirmation)
	if err := s.awaitConfirmation(ctx, tx); err != nil {
		return "", s.failCreate(span, fmt.Errorf("%w: %w", ErrConfirmationFailed, err), err)
	}

	if _, err := s.records.Refresh(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientLifecycleService.Create").Msg("refresh after create failed")
	}

	s.status.Succeed(models.StageNone, app.MsgCreated)
	s.metrics.IncCreated(metrics.OutcomeSuccess)
	s.logger.Info().Str("func", "clientLifecycleService.Create").Str("key", key.String()).Str("tx", tx.Hash()).Msg("record created")

	return key, nil
}

// failCreate publishes the error status for a failed creation and returns
// wrapped. cause is the collaborator error shown to the owner.
func (s *clientLifecycleService) failCreate(span trace.Span, wrapped, cause error) error {
	outcome := metrics.OutcomeFailed
	msg := app.MsgSubmissionFailedPrefix + causeText(cause)
	if errors.Is(wrapped, ErrSubmissionRejected) {
		outcome = metrics.OutcomeRejected
		msg = app.MsgTransactionCancelled
	}

	s.status.Fail(models.StageNone, msg)
	s.metrics.IncCreated(outcome)
	spanFail(span, wrapped, "create failed")
	s.logger.Err(wrapped).Str("func", "clientLifecycleService.Create").Msg("record creation failed")

	return wrapped
}

// ── Disclose ─────────────────────────────────────────────────────────────────

func (s *clientLifecycleService) Disclose(ctx context.Context, key models.RecordKey) (models.DisclosureResult, error) {
	ctx, span := tracer.Start(ctx, "lifecycle.disclose", trace.WithAttributes(
		attribute.String("record.key", key.String()),
	))
	defer span.End()

	if _, ok := s.identity.Identity(); !ok {
		s.status.Fail(models.StageNone, app.MsgConnectWallet)
		s.metrics.IncDisclosure(metrics.OutcomeFailed)
		spanFail(span, ErrNotConnected, "not connected")
		return models.DisclosureResult{}, ErrNotConnected
	}

	if err := s.validator.Validate(ctx, key); err != nil {
		return models.DisclosureResult{}, s.failDisclose(span, fmt.Errorf("%w: %w", ErrInvalidInput, err), err)
	}

	s.status.Pending(models.StageChecking, app.MsgVerifying)
	record, err := s.ledger.GetRecord(ctx, key)
	if err != nil {
		return models.DisclosureResult{}, s.failDisclose(span, disclosureError(err), err)
	}

	if value, ok := record.LedgerValue(); ok {
		s.status.Succeed(models.StageNone, app.MsgAlreadyVerified)
		s.metrics.IncDisclosure(metrics.OutcomeLedger)
		span.SetAttributes(attribute.String("disclosure.source", "ledger"))
		return models.LedgerDisclosure(key, value), nil
	}

	handle, err := s.ledger.GetCiphertextHandle(ctx, key)
	if err != nil {
		return models.DisclosureResult{}, s.failDisclose(span, disclosureError(err), err)
	}

	s.status.Pending(models.StageDecrypting, app.MsgVerifying)
	submitter := newVerificationSubmitter(key, s.ledger)
	result, err := s.verifier.RequestAndVerify(ctx, []models.CiphertextHandle{handle}, s.contract, submitter)
	if err != nil {
		if isAlreadyVerified(err) {
			return s.raced(ctx, span, key), nil
		}
		return models.DisclosureResult{}, s.failDisclose(span, disclosureError(err), err)
	}

	tx := submitter.Transaction()
	if tx == nil {
		return models.DisclosureResult{}, s.failDisclose(span, fmt.Errorf("%w: %w", ErrDecryptionFailed, errNoVerificationTx), errNoVerificationTx)
	}

	s.status.Pending(models.StageVerifying, app.MsgVerifying)
	if err := s.awaitConfirmation(ctx, tx); err != nil {
		if isAlreadyVerified(err) {
			return s.raced(ctx, span, key), nil
		}
		return models.DisclosureResult{}, s.failDisclose(span, fmt.Errorf("%w: %w: %w", ErrDecryptionFailed, ErrConfirmationFailed, err), err)
	}

	value, ok := clearValueFor(result, handle)
	if !ok {
		return models.DisclosureResult{}, s.failDisclose(span, fmt.Errorf("%w: %w", ErrDecryptionFailed, errMissingClearText), errMissingClearText)
	}

	if _, err := s.records.Refresh(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientLifecycleService.Disclose").Msg("refresh after disclosure failed")
	}

	s.status.Succeed(models.StageNone, app.MsgDecrypted)
	s.metrics.IncDisclosure(metrics.OutcomeDecrypted)
	span.SetAttributes(attribute.String("disclosure.source", "decryption"))

	return models.DecryptedDisclosure(models.ProvisionalValue{
		Key:        key,
		Handle:     handle,
		Value:      value,
		ObtainedAt: s.now(),
	}), nil
}

// raced resolves a disclosure that lost to a concurrent one.
func (s *clientLifecycleService) raced(ctx context.Context, span trace.Span, key models.RecordKey) models.DisclosureResult {
	s.logger.Info().Str("func", "clientLifecycleService.Disclose").Str("key", key.String()).Msg("record verified concurrently")

	if _, err := s.records.Refresh(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientLifecycleService.Disclose").Msg("refresh after raced disclosure failed")
	}

	s.status.Succeed(models.StageNone, app.MsgAlreadyVerified)
	s.metrics.IncDisclosure(metrics.OutcomeRace)
	span.SetAttributes(attribute.String("disclosure.source", "race"))

	return models.RacedDisclosure(key)
}

func (s *clientLifecycleService) failDisclose(span trace.Span, wrapped, cause error) error {
	s.status.Fail(models.StageNone, app.MsgDecryptionFailedPrefix+causeText(cause))
	s.metrics.IncDisclosure(metrics.OutcomeFailed)
	spanFail(span, wrapped, "disclose failed")
	s.logger.Err(wrapped).Str("func", "clientLifecycleService.Disclose").Msg("record disclosure failed")

	return wrapped
}

// disclosureError maps err and makes sure ErrDecryptionFailed is in its chain.
func disclosureError(err error) error {
	mapped := mapAdapterError(err, ErrDecryptionFailed)
	if errors.Is(mapped, ErrDecryptionFailed) {
		return mapped
	}
	return fmt.Errorf("%w: %w", ErrDecryptionFailed, mapped)
}

// ── shared ───────────────────────────────────────────────────────────────────

// awaitConfirmation waits for tx and records how long it took.
func (s *clientLifecycleService) awaitConfirmation(ctx context.Context, tx adapter.Transaction) error {
	start := time.Now()
	receipt, err := tx.Wait(ctx)
	s.metrics.ObserveConfirmation(start)
	if err != nil {
		return err
	}
	if receipt.Status == models.TxReverted {
		return fmt.Errorf("%w: %s", adapter.ErrReverted, receipt.RevertReason)
	}
	return nil
}

func clearValueFor(result models.DecryptionResult, handle models.CiphertextHandle) (int64, bool) {
	if v, ok := result.ClearValues[handle]; ok {
		return v, true
	}
	for h, v := range result.ClearValues {
		if strings.EqualFold(string(h), string(handle)) {
			return v, true
		}
	}
	return 0, false
}

// verificationSubmitter publishes a decryption proof for one record through
// the signer and keeps the resulting transaction.
type verificationSubmitter struct {
	key    models.RecordKey
	signer adapter.LedgerSigner

	mu sync.Mutex
	tx adapter.Transaction
}

func newVerificationSubmitter(key models.RecordKey, signer adapter.LedgerSigner) *verificationSubmitter {
	return &verificationSubmitter{key: key, signer: signer}
}

func (v *verificationSubmitter) SubmitProof(ctx context.Context, encodedClearValues, proof models.HexBytes) (adapter.Transaction, error) {
	tx, err := v.signer.SubmitVerification(ctx, v.key, encodedClearValues, proof)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	v.tx = tx
	v.mu.Unlock()

	return tx, nil
}

// Transaction returns the submitted verification transaction, or nil.
func (v *verificationSubmitter) Transaction() adapter.Transaction {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tx
}
