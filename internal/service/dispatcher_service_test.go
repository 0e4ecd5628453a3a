package service

import (
	"context"
	"testing"

	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports/mocks"
	"agent-wallet-console/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherDeps struct {
	backend *mocks.MockBackendClient
	wallets *mocks.MockWalletService
	service *DispatcherServiceImpl
}

func setupDispatcher(t *testing.T) dispatcherDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendClient(ctrl)
	wallets := mocks.NewMockWalletService(ctrl)
	return dispatcherDeps{
		backend: backend,
		wallets: wallets,
		service: NewDispatcherService(backend, wallets, "anthropic", zerolog.Nop()),
	}
}

func walletExists() domain.WalletRecord {
	return domain.WalletRecord{Address: "0xWallet", Status: domain.WalletStatusExists}
}

func mustParse(t *testing.T, raw string) domain.Intent {
	t.Helper()
	intent, err := domain.ParseCommand(raw)
	require.NoError(t, err)
	return intent
}

func TestDispatch_AskUsesDefaultModel(t *testing.T) {
	deps := setupDispatcher(t)
	deps.backend.EXPECT().
		Ask(gomock.Any(), "0xABC", "What is DeFi?", "anthropic").
		Return("DeFi is...", nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", domain.Intent{
		Kind:     domain.IntentAsk,
		Question: "What is DeFi?",
	})
	assert.True(t, outcome.Success)
	assert.Equal(t, []string{"DeFi is..."}, outcome.DisplayLines)
	assert.True(t, outcome.RefreshCredits)
}

func TestDispatch_AskExplicitModelWins(t *testing.T) {
	deps := setupDispatcher(t)
	deps.backend.EXPECT().
		Ask(gomock.Any(), "0xABC", "hi", "openai").
		Return("hello", nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "ask openai hi"))
	assert.True(t, outcome.Success)
}

func TestDispatch_AskDoesNotRequireWallet(t *testing.T) {
	deps := setupDispatcher(t)
	// No Record() expectation: the gate must not even be consulted.
	deps.backend.EXPECT().
		Ask(gomock.Any(), "0xABC", "q", "anthropic").
		Return("a", nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "ask anthropic q"))
	assert.True(t, outcome.Success)
}

func TestDispatch_AskBackendDetailBecomesErrorLine(t *testing.T) {
	deps := setupDispatcher(t)
	deps.backend.EXPECT().
		Ask(gomock.Any(), "0xABC", "q", "anthropic").
		Return("", apperror.ErrBackend("Insufficient credits"))

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "ask anthropic q"))
	assert.False(t, outcome.Success)
	assert.Equal(t, []string{"Error: Insufficient credits"}, outcome.DisplayLines)
	assert.False(t, outcome.RefreshCredits)
}

func TestDispatch_WalletGateBlocksWithoutBackendCall(t *testing.T) {
	deps := setupDispatcher(t)

	gated := []string{
		"swap 10",
		"supply 10",
		"fund 0.5",
		"transfer 10 0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		"withdraw 10 0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
	}
	for _, raw := range gated {
		deps.wallets.EXPECT().
			Record().
			Return(domain.WalletRecord{Status: domain.WalletStatusNotExists})

		outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, raw))
		assert.False(t, outcome.Success, raw)
		assert.Equal(t, []string{"Error: AA wallet does not exist yet"}, outcome.DisplayLines, raw)
	}
}

func TestDispatch_WalletGateBlocksWhileLoading(t *testing.T) {
	deps := setupDispatcher(t)
	deps.wallets.EXPECT().
		Record().
		Return(domain.WalletRecord{Status: domain.WalletStatusLoading})

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "swap 10"))
	assert.False(t, outcome.Success)
}

func TestDispatch_SwapFormatsTxHash(t *testing.T) {
	deps := setupDispatcher(t)
	deps.wallets.EXPECT().Record().Return(walletExists())
	deps.backend.EXPECT().
		Swap(gomock.Any(), "0xABC", 10.0).
		Return("0xdead", nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "swap 10"))
	assert.True(t, outcome.Success)
	assert.Equal(t, []string{"swap Tx Hash: 0xdead"}, outcome.DisplayLines)
}

func TestDispatch_SupplyFormatsTxHash(t *testing.T) {
	deps := setupDispatcher(t)
	deps.wallets.EXPECT().Record().Return(walletExists())
	deps.backend.EXPECT().
		Supply(gomock.Any(), "0xABC", 10.0).
		Return("0xbeef", nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "supply 10"))
	assert.Equal(t, []string{"supply Tx Hash: 0xbeef"}, outcome.DisplayLines)
}

func TestDispatch_FundFormatsTxHash(t *testing.T) {
	deps := setupDispatcher(t)
	deps.wallets.EXPECT().Record().Return(walletExists())
	deps.backend.EXPECT().
		FundWallet(gomock.Any(), "0xABC", 0.5).
		Return("0xf00d", nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "fund 0.5"))
	assert.Equal(t, []string{"Funded AI Wallet Tx Hash: 0xf00d"}, outcome.DisplayLines)
}

func TestDispatch_TransferAndWithdrawFormatTxHash(t *testing.T) {
	deps := setupDispatcher(t)
	recipient := "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"

	deps.wallets.EXPECT().Record().Return(walletExists())
	deps.backend.EXPECT().
		TransferUSDC(gomock.Any(), "0xABC", 10.0, recipient).
		Return("0x1111", nil)
	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "transfer 10 "+recipient))
	assert.Equal(t, []string{"Transfer USDC Tx Hash: 0x1111"}, outcome.DisplayLines)

	deps.wallets.EXPECT().Record().Return(walletExists())
	deps.backend.EXPECT().
		WithdrawUSDC(gomock.Any(), "0xABC", 10.0, recipient).
		Return("0x2222", nil)
	outcome = deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "withdraw 10 "+recipient))
	assert.Equal(t, []string{"Withdraw USDC Tx Hash: 0x2222"}, outcome.DisplayLines)
}

func TestDispatch_CheckProfitsUngated(t *testing.T) {
	deps := setupDispatcher(t)
	action := "No action needed"
	deps.backend.EXPECT().
		CheckProfits(gomock.Any(), "0xABC").
		Return(domain.ProfitReport{
			Status: "checked",
			Positions: []domain.Position{{
				PositionID:      1,
				Platform:        "aave",
				InitialValueUSD: 100,
				CurrentValueUSD: 105.456789,
				ProfitRatio:     1.054567,
				ActionTaken:     &action,
			}},
		}, nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "check_profits"))
	assert.True(t, outcome.Success)
	require.Len(t, outcome.DisplayLines, 1)
	assert.Contains(t, outcome.DisplayLines[0], "Position 1 (aave)")
}

func TestDispatch_CheckProfitsNoPositions(t *testing.T) {
	deps := setupDispatcher(t)
	deps.backend.EXPECT().
		CheckProfits(gomock.Any(), "0xABC").
		Return(domain.ProfitReport{Status: domain.ProfitStatusNoActivePositions}, nil)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "check_profits"))
	assert.Equal(t, []string{"No active positions found."}, outcome.DisplayLines)
}

func TestDispatch_UnknownCommandShowsUsage(t *testing.T) {
	deps := setupDispatcher(t)

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "dance"))
	assert.True(t, outcome.Success)
	assert.Equal(t, []string{domain.UsageHint}, outcome.DisplayLines)
}

func TestDispatch_TransportFailureIsGenericLine(t *testing.T) {
	deps := setupDispatcher(t)
	deps.wallets.EXPECT().Record().Return(walletExists())
	deps.backend.EXPECT().
		Swap(gomock.Any(), "0xABC", 10.0).
		Return("", apperror.ErrTransport(assert.AnError))

	outcome := deps.service.Dispatch(context.Background(), "0xABC", mustParse(t, "swap 10"))
	assert.False(t, outcome.Success)
	assert.Equal(t, []string{"Error: Backend request failed"}, outcome.DisplayLines)
}
