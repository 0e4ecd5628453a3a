package ports

import (
	"context"

	"agent-wallet-console/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// WalletService owns the WalletRecord. All writes happen here; everyone
// else takes snapshot reads via Record.
type WalletService interface {
	// Record returns a snapshot of the latest published wallet state.
	Record() domain.WalletRecord

	// Refresh queries the backend for an existing wallet. "Not found" is a
	// normal negative result (status NOT_EXISTS, nil error); a transport
	// failure leaves the status unchanged and returns the error.
	Refresh(ctx context.Context, identity string) (domain.WalletRecord, error)

	// Create provisions the wallet. Only legal from NOT_EXISTS and never
	// concurrently with itself; on failure the status stays NOT_EXISTS.
	Create(ctx context.Context, identity string) (domain.WalletRecord, error)

	// Reset returns the record to LOADING, for identity changes.
	Reset()
}

// CreditService owns the credit balance. The value is only ever
// overwritten with the backend's count, never computed locally.
type CreditService interface {
	// Balance returns the last fetched count.
	Balance() int

	// Refresh overwrites the balance with the backend's authoritative count.
	Refresh(ctx context.Context, identity string) (int, error)

	// Reset zeroes the balance, for identity changes.
	Reset()
}

// PaymentService drives the two-phase buy-credits protocol. One session
// per identity; settled and cancelled sessions are destroyed, failed ones
// stay visible until replaced.
type PaymentService interface {
	// Begin opens a new session in phase CREATED via buy_credits. Rejected
	// while another session is active.
	Begin(ctx context.Context, identity string, creditAmount int) (domain.PaymentSession, error)

	// Confirm runs processor confirmation and backend settlement for the
	// CREATED session. On success the session settles and the credit
	// balance is refreshed; on failure it moves to FAILED with the reason.
	Confirm(ctx context.Context, identity string, method PaymentMethod) error

	// Cancel destroys the current session, whatever its phase.
	Cancel(identity string)

	// Session returns a snapshot of the current session, or nil.
	Session() *domain.PaymentSession
}

// Dispatcher maps one intent to at most one backend call and normalizes
// the result. It never returns an error: failures become Outcomes with a
// single display line.
type Dispatcher interface {
	Dispatch(ctx context.Context, identity string, intent domain.Intent) domain.Outcome
}
