package service

import (
	"context"
	"sync"

	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. It is the only writer
// of the WalletRecord; everyone else reads snapshots.
type WalletServiceImpl struct {
	backend ports.BackendClient
	log     zerolog.Logger

	mu       sync.RWMutex
	record   domain.WalletRecord
	creating bool
}

// NewWalletService creates a WalletServiceImpl starting in LOADING.
func NewWalletService(backend ports.BackendClient, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		backend: backend,
		log:     log,
		record:  domain.WalletRecord{Status: domain.WalletStatusLoading},
	}
}

var _ ports.WalletService = (*WalletServiceImpl)(nil)

// Record implements ports.WalletService.
func (s *WalletServiceImpl) Record() domain.WalletRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Refresh implements ports.WalletService. A missing wallet resolves to
// NOT_EXISTS; a transport failure leaves the current status untouched so
// a flaky network cannot flip an existing wallet back to NOT_EXISTS.
func (s *WalletServiceImpl) Refresh(ctx context.Context, identity string) (domain.WalletRecord, error) {
	address, bytecode, err := s.backend.GetWallet(ctx, identity)
	if err != nil {
		s.log.Warn().Err(err).Str("identity", identity).Msg("wallet lookup failed")
		return s.Record(), err
	}

	record := domain.WalletRecord{Status: domain.WalletStatusNotExists}
	if address != "" {
		record = domain.WalletRecord{
			Address:  address,
			Bytecode: bytecode,
			Status:   domain.WalletStatusExists,
		}
	}

	s.mu.Lock()
	s.record = record
	s.mu.Unlock()

	s.log.Debug().Str("identity", identity).Str("status", string(record.Status)).Msg("wallet refreshed")
	return record, nil
}

// Create implements ports.WalletService. Creation is not idempotent on
// the backend, so overlapping calls for the same identity are refused.
func (s *WalletServiceImpl) Create(ctx context.Context, identity string) (domain.WalletRecord, error) {
	s.mu.Lock()
	if s.creating {
		s.mu.Unlock()
		return s.Record(), apperror.ErrWalletCreating()
	}
	if s.record.Status != domain.WalletStatusNotExists {
		status := s.record.Status
		s.mu.Unlock()
		if status == domain.WalletStatusExists {
			return s.Record(), apperror.ErrWalletAlreadyExists()
		}
		return s.Record(), apperror.ErrWalletRequired()
	}
	s.creating = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.creating = false
		s.mu.Unlock()
	}()

	address, bytecode, err := s.backend.CreateWallet(ctx, identity)
	if err != nil {
		s.log.Warn().Err(err).Str("identity", identity).Msg("wallet creation failed")
		return s.Record(), err
	}

	record := domain.WalletRecord{
		Address:  address,
		Bytecode: bytecode,
		Status:   domain.WalletStatusExists,
	}
	s.mu.Lock()
	s.record = record
	s.mu.Unlock()

	s.log.Info().Str("identity", identity).Str("wallet", address).Msg("AA wallet created")
	return record, nil
}

// Reset implements ports.WalletService.
func (s *WalletServiceImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = domain.WalletRecord{Status: domain.WalletStatusLoading}
}
