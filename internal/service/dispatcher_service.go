package service

import (
	"context"
	"fmt"

	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// DispatcherServiceImpl implements ports.Dispatcher: one intent, at most
// one backend call, one Outcome. Wallet-gated intents are refused locally
// before any network traffic.
type DispatcherServiceImpl struct {
	backend      ports.BackendClient
	wallets      ports.WalletService
	defaultModel string
	log          zerolog.Logger
}

// NewDispatcherService creates a DispatcherServiceImpl. defaultModel is
// applied to ask intents that omit the provider token.
func NewDispatcherService(backend ports.BackendClient, wallets ports.WalletService, defaultModel string, log zerolog.Logger) *DispatcherServiceImpl {
	return &DispatcherServiceImpl{
		backend:      backend,
		wallets:      wallets,
		defaultModel: defaultModel,
		log:          log,
	}
}

var _ ports.Dispatcher = (*DispatcherServiceImpl)(nil)

// Dispatch implements ports.Dispatcher.
func (s *DispatcherServiceImpl) Dispatch(ctx context.Context, identity string, intent domain.Intent) domain.Outcome {
	if intent.RequiresWallet() && !s.wallets.Record().Exists() {
		return domain.ErrorOutcome(apperror.Display(apperror.ErrWalletRequired()))
	}

	s.log.Debug().Str("identity", identity).Str("intent", string(intent.Kind)).Msg("dispatching")

	switch intent.Kind {
	case domain.IntentAsk:
		return s.ask(ctx, identity, intent)
	case domain.IntentSwap:
		return s.txIntent(ctx, intent, func() (string, error) {
			return s.backend.Swap(ctx, identity, intent.Amount)
		}, "swap Tx Hash: %s")
	case domain.IntentSupply:
		return s.txIntent(ctx, intent, func() (string, error) {
			return s.backend.Supply(ctx, identity, intent.Amount)
		}, "supply Tx Hash: %s")
	case domain.IntentFund:
		return s.txIntent(ctx, intent, func() (string, error) {
			return s.backend.FundWallet(ctx, identity, intent.Amount)
		}, "Funded AI Wallet Tx Hash: %s")
	case domain.IntentTransfer:
		return s.txIntent(ctx, intent, func() (string, error) {
			return s.backend.TransferUSDC(ctx, identity, intent.Amount, intent.Recipient)
		}, "Transfer USDC Tx Hash: %s")
	case domain.IntentWithdraw:
		return s.txIntent(ctx, intent, func() (string, error) {
			return s.backend.WithdrawUSDC(ctx, identity, intent.Amount, intent.Recipient)
		}, "Withdraw USDC Tx Hash: %s")
	case domain.IntentCheckProfits:
		return s.checkProfits(ctx, identity)
	default:
		// Unknown commands get the usage hint, not an error line.
		return domain.Outcome{Success: true, DisplayLines: []string{domain.UsageHint}}
	}
}

func (s *DispatcherServiceImpl) ask(ctx context.Context, identity string, intent domain.Intent) domain.Outcome {
	model := intent.Model
	if model == "" {
		model = s.defaultModel
	}
	answer, err := s.backend.Ask(ctx, identity, intent.Question, model)
	if err != nil {
		return domain.ErrorOutcome(apperror.Display(err))
	}
	// Every answered question consumed a credit, pick up the new balance.
	return domain.Outcome{
		Success:        true,
		DisplayLines:   []string{answer},
		RefreshCredits: true,
	}
}

func (s *DispatcherServiceImpl) txIntent(ctx context.Context, intent domain.Intent, call func() (string, error), format string) domain.Outcome {
	hash, err := call()
	if err != nil {
		return domain.ErrorOutcome(apperror.Display(err))
	}
	s.log.Info().Str("intent", string(intent.Kind)).Str("tx_hash", hash).Msg("transaction submitted")
	return domain.Outcome{
		Success:      true,
		DisplayLines: []string{fmt.Sprintf(format, hash)},
	}
}

func (s *DispatcherServiceImpl) checkProfits(ctx context.Context, identity string) domain.Outcome {
	report, err := s.backend.CheckProfits(ctx, identity)
	if err != nil {
		return domain.ErrorOutcome(apperror.Display(err))
	}
	return domain.Outcome{Success: true, DisplayLines: report.DisplayLines()}
}
