package service

import (
	"context"
	"sync"

	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService. It holds at most
// one session and walks it CREATED -> CONFIRMING -> SETTLED or FAILED.
// Credits are only ever granted by the backend settlement call; the
// processor confirmation alone moves no money into the ledger.
type PaymentServiceImpl struct {
	backend   ports.BackendClient
	processor ports.PaymentProcessor
	credits   ports.CreditService
	log       zerolog.Logger

	mu      sync.Mutex
	session *domain.PaymentSession
}

// NewPaymentService creates a PaymentServiceImpl with no session.
func NewPaymentService(backend ports.BackendClient, processor ports.PaymentProcessor, credits ports.CreditService, log zerolog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		backend:   backend,
		processor: processor,
		credits:   credits,
		log:       log,
	}
}

var _ ports.PaymentService = (*PaymentServiceImpl)(nil)

// Begin implements ports.PaymentService.
func (s *PaymentServiceImpl) Begin(ctx context.Context, identity string, creditAmount int) (domain.PaymentSession, error) {
	if creditAmount <= 0 {
		return domain.PaymentSession{}, apperror.ErrInvalidCreditAmount()
	}

	s.mu.Lock()
	if s.session != nil && s.session.Active() {
		s.mu.Unlock()
		return domain.PaymentSession{}, apperror.ErrPaymentSessionActive()
	}
	s.mu.Unlock()

	intent, err := s.backend.BuyCredits(ctx, identity, creditAmount)
	if err != nil {
		s.log.Warn().Err(err).Str("identity", identity).Int("amount", creditAmount).Msg("buy_credits failed")
		return domain.PaymentSession{}, err
	}

	session := domain.PaymentSession{
		CreditAmount:    creditAmount,
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.PaymentIntentID,
		CreditsToAdd:    intent.CreditsToAdd,
		Phase:           domain.PaymentPhaseCreated,
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()

	s.log.Info().
		Str("identity", identity).
		Str("payment_intent", intent.PaymentIntentID).
		Int("credits_to_add", intent.CreditsToAdd).
		Msg("payment session created")
	return session, nil
}

// Confirm implements ports.PaymentService. The session is settled and
// destroyed on success; any failure parks it in FAILED with the reason,
// and a retry needs a fresh Begin with a fresh client_secret.
func (s *PaymentServiceImpl) Confirm(ctx context.Context, identity string, method ports.PaymentMethod) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return apperror.ErrPaymentWrongPhase("absent")
	}
	if s.session.Phase != domain.PaymentPhaseCreated {
		phase := string(s.session.Phase)
		s.mu.Unlock()
		return apperror.ErrPaymentWrongPhase(phase)
	}
	s.session.Phase = domain.PaymentPhaseConfirming
	clientSecret := s.session.ClientSecret
	paymentIntentID := s.session.PaymentIntentID
	creditsToAdd := s.session.CreditsToAdd
	s.mu.Unlock()

	if err := s.processor.ConfirmPayment(ctx, clientSecret, method); err != nil {
		s.fail(err)
		return err
	}

	if err := s.backend.ConfirmBuyCredits(ctx, identity, paymentIntentID, creditsToAdd); err != nil {
		s.log.Error().Err(err).
			Str("identity", identity).
			Str("payment_intent", paymentIntentID).
			Msg("card charged but settlement failed")
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.log.Info().
		Str("identity", identity).
		Str("payment_intent", paymentIntentID).
		Int("credits_added", creditsToAdd).
		Msg("credit purchase settled")

	// Best effort: the purchase already settled, a stale balance fixes
	// itself on the next refresh.
	if _, err := s.credits.Refresh(ctx, identity); err != nil {
		s.log.Warn().Err(err).Str("identity", identity).Msg("post-settlement credit refresh failed")
	}
	return nil
}

func (s *PaymentServiceImpl) fail(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return
	}
	s.session.Phase = domain.PaymentPhaseFailed
	s.session.FailureReason = apperror.Display(cause)
}

// Cancel implements ports.PaymentService.
func (s *PaymentServiceImpl) Cancel(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return
	}
	s.log.Info().
		Str("identity", identity).
		Str("payment_intent", s.session.PaymentIntentID).
		Msg("payment session cancelled")
	s.session = nil
}

// Session implements ports.PaymentService.
func (s *PaymentServiceImpl) Session() *domain.PaymentSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	snapshot := *s.session
	return &snapshot
}
