package service

import (
	"context"
	"errors"
	"testing"

	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/internal/core/ports/mocks"
	"agent-wallet-console/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMethod = ports.PaymentMethod{
	CardNumber: "4242424242424242",
	ExpMonth:   12,
	ExpYear:    2030,
	CVC:        "314",
}

type paymentDeps struct {
	backend   *mocks.MockBackendClient
	processor *mocks.MockPaymentProcessor
	credits   *mocks.MockCreditService
	service   *PaymentServiceImpl
}

func setupPaymentService(t *testing.T) paymentDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendClient(ctrl)
	processor := mocks.NewMockPaymentProcessor(ctrl)
	credits := mocks.NewMockCreditService(ctrl)
	return paymentDeps{
		backend:   backend,
		processor: processor,
		credits:   credits,
		service:   NewPaymentService(backend, processor, credits, zerolog.Nop()),
	}
}

func beginSession(t *testing.T, deps paymentDeps) domain.PaymentSession {
	t.Helper()
	deps.backend.EXPECT().
		BuyCredits(gomock.Any(), "0xABC", 5).
		Return(ports.PaymentIntent{
			ClientSecret:    "pi_1_secret_x",
			PaymentIntentID: "pi_1",
			CreditsToAdd:    5,
		}, nil)
	session, err := deps.service.Begin(context.Background(), "0xABC", 5)
	require.NoError(t, err)
	return session
}

func TestPaymentService_BeginCreatesSession(t *testing.T) {
	deps := setupPaymentService(t)

	session := beginSession(t, deps)
	assert.Equal(t, domain.PaymentPhaseCreated, session.Phase)
	assert.Equal(t, 5, session.CreditsToAdd)
	assert.Equal(t, "pi_1", session.PaymentIntentID)

	current := deps.service.Session()
	require.NotNil(t, current)
	assert.True(t, current.Active())
}

func TestPaymentService_BeginRejectsNonPositiveAmount(t *testing.T) {
	deps := setupPaymentService(t)

	for _, amount := range []int{0, -3} {
		_, err := deps.service.Begin(context.Background(), "0xABC", amount)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidCreditAmount()))
	}
	assert.Nil(t, deps.service.Session())
}

func TestPaymentService_BeginRejectsWhileActive(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	_, err := deps.service.Begin(context.Background(), "0xABC", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrPaymentSessionActive()))
}

func TestPaymentService_BeginBackendFailureLeavesNoSession(t *testing.T) {
	deps := setupPaymentService(t)
	deps.backend.EXPECT().
		BuyCredits(gomock.Any(), "0xABC", 5).
		Return(ports.PaymentIntent{}, apperror.ErrBackend("amount too large"))

	_, err := deps.service.Begin(context.Background(), "0xABC", 5)
	require.Error(t, err)
	assert.Nil(t, deps.service.Session())
}

func TestPaymentService_ConfirmSettlesAndDestroysSession(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.processor.EXPECT().
		ConfirmPayment(gomock.Any(), "pi_1_secret_x", testMethod).
		Return(nil)
	deps.backend.EXPECT().
		ConfirmBuyCredits(gomock.Any(), "0xABC", "pi_1", 5).
		Return(nil)
	deps.credits.EXPECT().Refresh(gomock.Any(), "0xABC").Return(47, nil)

	err := deps.service.Confirm(context.Background(), "0xABC", testMethod)
	require.NoError(t, err)
	assert.Nil(t, deps.service.Session())
}

func TestPaymentService_NoDoubleSettlement(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.processor.EXPECT().
		ConfirmPayment(gomock.Any(), "pi_1_secret_x", testMethod).
		Return(nil)
	deps.backend.EXPECT().
		ConfirmBuyCredits(gomock.Any(), "0xABC", "pi_1", 5).
		Return(nil)
	deps.credits.EXPECT().Refresh(gomock.Any(), "0xABC").Return(47, nil)

	require.NoError(t, deps.service.Confirm(context.Background(), "0xABC", testMethod))

	// The settled session is gone; a second confirm must not replay the
	// old payment_intent_id against the backend.
	err := deps.service.Confirm(context.Background(), "0xABC", testMethod)
	require.Error(t, err)
	assert.Equal(t, apperror.KindState, apperror.KindOf(err))
}

func TestPaymentService_ConfirmWithoutSession(t *testing.T) {
	deps := setupPaymentService(t)

	err := deps.service.Confirm(context.Background(), "0xABC", testMethod)
	require.Error(t, err)
	assert.Equal(t, apperror.KindState, apperror.KindOf(err))
}

func TestPaymentService_ProcessorDeclineParksSessionFailed(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.processor.EXPECT().
		ConfirmPayment(gomock.Any(), "pi_1_secret_x", testMethod).
		Return(apperror.ErrProcessor("Your card was declined.", nil))

	err := deps.service.Confirm(context.Background(), "0xABC", testMethod)
	require.Error(t, err)

	session := deps.service.Session()
	require.NotNil(t, session)
	assert.Equal(t, domain.PaymentPhaseFailed, session.Phase)
	assert.Equal(t, "Your card was declined.", session.FailureReason)
	assert.False(t, session.Active())
}

func TestPaymentService_SettlementFailureParksSessionFailed(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.processor.EXPECT().
		ConfirmPayment(gomock.Any(), "pi_1_secret_x", testMethod).
		Return(nil)
	deps.backend.EXPECT().
		ConfirmBuyCredits(gomock.Any(), "0xABC", "pi_1", 5).
		Return(apperror.ErrBackend("Payment verification failed"))

	err := deps.service.Confirm(context.Background(), "0xABC", testMethod)
	require.Error(t, err)

	session := deps.service.Session()
	require.NotNil(t, session)
	assert.Equal(t, domain.PaymentPhaseFailed, session.Phase)
	assert.Equal(t, "Payment verification failed", session.FailureReason)
}

func TestPaymentService_ConfirmRejectedAfterFailure(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.processor.EXPECT().
		ConfirmPayment(gomock.Any(), "pi_1_secret_x", testMethod).
		Return(apperror.ErrProcessor("Your card was declined.", nil))

	require.Error(t, deps.service.Confirm(context.Background(), "0xABC", testMethod))

	// The stale client_secret must not be reused.
	err := deps.service.Confirm(context.Background(), "0xABC", testMethod)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrPaymentWrongPhase("FAILED")))
}

func TestPaymentService_FreshBeginReplacesFailedSession(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.processor.EXPECT().
		ConfirmPayment(gomock.Any(), "pi_1_secret_x", testMethod).
		Return(apperror.ErrProcessor("Your card was declined.", nil))
	require.Error(t, deps.service.Confirm(context.Background(), "0xABC", testMethod))

	deps.backend.EXPECT().
		BuyCredits(gomock.Any(), "0xABC", 7).
		Return(ports.PaymentIntent{
			ClientSecret:    "pi_2_secret_y",
			PaymentIntentID: "pi_2",
			CreditsToAdd:    7,
		}, nil)

	session, err := deps.service.Begin(context.Background(), "0xABC", 7)
	require.NoError(t, err)
	assert.Equal(t, "pi_2", session.PaymentIntentID)
	assert.Equal(t, domain.PaymentPhaseCreated, session.Phase)
}

func TestPaymentService_SettlementSurvivesRefreshFailure(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.processor.EXPECT().
		ConfirmPayment(gomock.Any(), "pi_1_secret_x", testMethod).
		Return(nil)
	deps.backend.EXPECT().
		ConfirmBuyCredits(gomock.Any(), "0xABC", "pi_1", 5).
		Return(nil)
	deps.credits.EXPECT().
		Refresh(gomock.Any(), "0xABC").
		Return(0, apperror.ErrTransport(errors.New("timeout")))

	err := deps.service.Confirm(context.Background(), "0xABC", testMethod)
	require.NoError(t, err)
	assert.Nil(t, deps.service.Session())
}

func TestPaymentService_Cancel(t *testing.T) {
	deps := setupPaymentService(t)
	beginSession(t, deps)

	deps.service.Cancel("0xABC")
	assert.Nil(t, deps.service.Session())

	// Cancel with no session is a no-op.
	deps.service.Cancel("0xABC")
}
