package service

import (
	"context"
	"sync"

	"agent-wallet-console/internal/core/ports"

	"github.com/rs/zerolog"
)

// CreditServiceImpl implements ports.CreditService. The balance is a
// cached copy of the backend ledger; it is never adjusted locally.
type CreditServiceImpl struct {
	backend ports.BackendClient
	log     zerolog.Logger

	mu      sync.RWMutex
	balance int
}

// NewCreditService creates a CreditServiceImpl with a zero balance.
func NewCreditService(backend ports.BackendClient, log zerolog.Logger) *CreditServiceImpl {
	return &CreditServiceImpl{backend: backend, log: log}
}

var _ ports.CreditService = (*CreditServiceImpl)(nil)

// Balance implements ports.CreditService.
func (s *CreditServiceImpl) Balance() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

// Refresh implements ports.CreditService. On failure the cached value is
// kept, stale beats invented.
func (s *CreditServiceImpl) Refresh(ctx context.Context, identity string) (int, error) {
	credits, err := s.backend.Credits(ctx, identity)
	if err != nil {
		s.log.Warn().Err(err).Str("identity", identity).Msg("credit refresh failed")
		return s.Balance(), err
	}

	s.mu.Lock()
	s.balance = credits
	s.mu.Unlock()

	s.log.Debug().Str("identity", identity).Int("credits", credits).Msg("credits refreshed")
	return credits, nil
}

// Reset implements ports.CreditService.
func (s *CreditServiceImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = 0
}
