package service

import (
	"context"
	"fmt"
	"sync"

	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/internal/transcript"
	"agent-wallet-console/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionServiceImpl binds one connected identity to the per-identity
// state: wallet record, credit balance, payment session and transcript.
// Connecting a different identity tears all of it down before any state
// for the new identity is loaded.
//
// Each connection gets a fresh epoch token. A command that was in flight
// when the identity changed compares its token on completion and discards
// its result instead of writing into the new identity's transcript.
type SessionServiceImpl struct {
	dispatcher ports.Dispatcher
	wallets    ports.WalletService
	credits    ports.CreditService
	payments   ports.PaymentService
	transcript *transcript.Log
	log        zerolog.Logger

	mu       sync.Mutex
	identity string
	epoch    string
	inflight bool
}

// NewSessionService creates a disconnected SessionServiceImpl.
func NewSessionService(dispatcher ports.Dispatcher, wallets ports.WalletService, credits ports.CreditService, payments ports.PaymentService, log *transcript.Log, logger zerolog.Logger) *SessionServiceImpl {
	return &SessionServiceImpl{
		dispatcher: dispatcher,
		wallets:    wallets,
		credits:    credits,
		payments:   payments,
		transcript: log,
		log:        logger,
	}
}

// Identity returns the connected identity, or empty when disconnected.
func (s *SessionServiceImpl) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Connect binds identity to the session. A changed identity resets the
// wallet record, credit balance, payment session and transcript, then
// loads the new identity's wallet and credits. Reconnecting the same
// identity only refreshes.
func (s *SessionServiceImpl) Connect(ctx context.Context, identity string) error {
	if identity == "" {
		return apperror.ErrNoIdentity()
	}

	s.mu.Lock()
	if s.identity != identity {
		previous := s.identity
		s.identity = identity
		s.epoch = uuid.NewString()
		s.inflight = false
		s.wallets.Reset()
		s.credits.Reset()
		s.payments.Cancel(previous)
		s.transcript.Reset()
		s.log.Info().Str("identity", identity).Msg("identity connected")
	}
	s.mu.Unlock()

	// Best effort: a failed load leaves LOADING / zero and the next
	// refresh retries.
	if _, err := s.wallets.Refresh(ctx, identity); err != nil {
		return err
	}
	_, err := s.credits.Refresh(ctx, identity)
	return err
}

// Disconnect clears the identity and all per-identity state.
func (s *SessionServiceImpl) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == "" {
		return
	}
	s.log.Info().Str("identity", s.identity).Msg("identity disconnected")
	s.payments.Cancel(s.identity)
	s.identity = ""
	s.epoch = uuid.NewString()
	s.inflight = false
	s.wallets.Reset()
	s.credits.Reset()
	s.transcript.Reset()
}

// begin reserves a transcript slot for one command. It fails fast when
// no identity is connected or another command is still running.
func (s *SessionServiceImpl) begin() (identity, epoch string, seq uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == "" {
		return "", "", 0, apperror.ErrNoIdentity()
	}
	if s.inflight {
		return "", "", 0, apperror.ErrCommandInFlight()
	}
	s.inflight = true
	return s.identity, s.epoch, s.transcript.Reserve(), nil
}

// finish releases the in-flight slot and reports whether the command's
// epoch is still current. A stale epoch means the identity changed while
// the command ran; its transcript slot died with the old transcript.
func (s *SessionServiceImpl) finish(epoch string) (current bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		s.inflight = false
		return true
	}
	return false
}

// Submit runs one command line end to end: echo, parse, dispatch, append
// the outcome, refresh credits when the command consumed any. The
// returned error covers only pre-dispatch refusals (no identity, command
// in flight); execution failures land in the transcript instead.
func (s *SessionServiceImpl) Submit(ctx context.Context, raw string) error {
	identity, epoch, seq, err := s.begin()
	if err != nil {
		return err
	}

	intent, parseErr := domain.ParseCommand(raw)
	if parseErr != nil {
		if !s.finish(epoch) {
			return nil
		}
		s.transcript.Append(seq, "> "+raw, "Error: "+apperror.Display(parseErr))
		return nil
	}

	outcome := s.dispatcher.Dispatch(ctx, identity, intent)

	if !s.finish(epoch) {
		s.log.Debug().Str("identity", identity).Msg("discarding result for stale identity")
		return nil
	}

	lines := append([]string{"> " + intent.Raw}, outcome.DisplayLines...)
	s.transcript.Append(seq, lines...)

	if outcome.RefreshCredits {
		if _, err := s.credits.Refresh(ctx, identity); err != nil {
			s.log.Warn().Err(err).Str("identity", identity).Msg("credit refresh after command failed")
		}
	}
	return nil
}

// CreateWallet provisions the AA wallet for the connected identity and
// records the address and a bytecode preview in the transcript.
func (s *SessionServiceImpl) CreateWallet(ctx context.Context) error {
	identity, epoch, seq, err := s.begin()
	if err != nil {
		return err
	}

	record, createErr := s.wallets.Create(ctx, identity)

	if !s.finish(epoch) {
		return nil
	}
	if createErr != nil {
		s.transcript.Append(seq, "Error: "+apperror.Display(createErr))
		return createErr
	}

	s.transcript.Append(seq,
		fmt.Sprintf("AA Wallet created at: %s", record.Address),
		fmt.Sprintf("Bytecode: %s", record.BytecodePreview()),
	)
	return nil
}

// BuyCredits runs the whole purchase: open the session against the
// backend, confirm the card with the processor, settle. Success appends
// the confirmation line; any failure appends the reason and leaves the
// payment session inspectable via PaymentSession.
func (s *SessionServiceImpl) BuyCredits(ctx context.Context, creditAmount int, method ports.PaymentMethod) error {
	identity, epoch, seq, err := s.begin()
	if err != nil {
		return err
	}

	buyErr := s.buy(ctx, identity, creditAmount, method)

	if !s.finish(epoch) {
		return nil
	}
	if buyErr != nil {
		s.transcript.Append(seq, "Error: "+apperror.Display(buyErr))
		return buyErr
	}

	s.transcript.Append(seq, fmt.Sprintf("Bought %d credits successfully!", creditAmount))
	return nil
}

func (s *SessionServiceImpl) buy(ctx context.Context, identity string, creditAmount int, method ports.PaymentMethod) error {
	if _, err := s.payments.Begin(ctx, identity, creditAmount); err != nil {
		return err
	}
	return s.payments.Confirm(ctx, identity, method)
}

// CancelPayment drops the current payment session, if any.
func (s *SessionServiceImpl) CancelPayment() {
	s.mu.Lock()
	identity := s.identity
	s.mu.Unlock()
	if identity == "" {
		return
	}
	s.payments.Cancel(identity)
}

// Wallet returns the current wallet record snapshot.
func (s *SessionServiceImpl) Wallet() domain.WalletRecord {
	return s.wallets.Record()
}

// Credits returns the cached credit balance.
func (s *SessionServiceImpl) Credits() int {
	return s.credits.Balance()
}

// PaymentSession returns the current payment session snapshot, or nil.
func (s *SessionServiceImpl) PaymentSession() *domain.PaymentSession {
	return s.payments.Session()
}
