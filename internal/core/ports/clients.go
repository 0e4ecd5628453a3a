package ports

import (
	"context"

	"agent-wallet-console/internal/core/domain"
)

//go:generate mockgen -source=clients.go -destination=mocks/clients_mock.go -package=mocks

// BackendClient wraps the single-endpoint action API of the AI credit
// backend. One method per action; every call carries the identity as
// user_id. Errors come back as apperror values: backend detail messages
// with KindBackend, anything else with KindTransport.
type BackendClient interface {
	// Credits returns the server-side authoritative credit count.
	Credits(ctx context.Context, userID string) (int, error)

	// GetWallet looks up the AA wallet. A missing wallet is a normal
	// negative result: empty address, nil error.
	GetWallet(ctx context.Context, userID string) (address string, bytecode string, err error)

	// CreateWallet provisions the AA wallet and returns its address and
	// deployed bytecode.
	CreateWallet(ctx context.Context, userID string) (address string, bytecode string, err error)

	// BuyCredits opens a payment intent for the requested credit amount.
	BuyCredits(ctx context.Context, userID string, amount int) (PaymentIntent, error)

	// ConfirmBuyCredits settles a confirmed payment so the backend applies
	// the credits.
	ConfirmBuyCredits(ctx context.Context, userID string, paymentIntentID string, creditsToAdd int) error

	// Ask submits a natural-language query; the backend deducts credits.
	Ask(ctx context.Context, userID string, question string, model string) (string, error)

	// Swap swaps USDC to ETH through the AA wallet.
	Swap(ctx context.Context, userID string, amountIn float64) (txHash string, err error)

	// Supply supplies USDC to the lending platform.
	Supply(ctx context.Context, userID string, amount float64) (txHash string, err error)

	// FundWallet moves ETH from the user's EOA into the AA wallet.
	FundWallet(ctx context.Context, userID string, amountETH float64) (txHash string, err error)

	// TransferUSDC sends USDC from the AA wallet to a recipient.
	TransferUSDC(ctx context.Context, userID string, amount float64, recipient string) (txHash string, err error)

	// WithdrawUSDC withdraws supplied USDC back to a recipient.
	WithdrawUSDC(ctx context.Context, userID string, amount float64, recipient string) (txHash string, err error)

	// CheckProfits fetches the open positions report.
	CheckProfits(ctx context.Context, userID string) (domain.ProfitReport, error)
}

// PaymentIntent is the buy_credits response: the material needed to drive
// the processor confirmation and the later settlement call.
type PaymentIntent struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	CreditsToAdd    int    `json:"credits_to_add"`
}

// PaymentMethod holds the card details handed to the processor. The
// backend never sees these.
type PaymentMethod struct {
	CardNumber string
	ExpMonth   int
	ExpYear    int
	CVC        string
}

// PaymentProcessor is the injected capability that tokenizes card details
// and confirms a payment against the server-issued client secret. A nil
// error is an opaque acknowledgement; failures carry the processor's
// reason (KindProcessor).
type PaymentProcessor interface {
	ConfirmPayment(ctx context.Context, clientSecret string, method PaymentMethod) error
}
