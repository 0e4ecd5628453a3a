// Package backend implements ports.BackendClient against the AI credit
// endpoint: a single URL taking JSON bodies discriminated by an "action"
// field.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// DefaultTimeout applies when the caller passes a zero timeout.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP implementation of ports.BackendClient.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a backend client for the given endpoint URL.
func NewClient(endpoint string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

var _ ports.BackendClient = (*Client)(nil)

// detailResponse is the backend's structured error body (non-2xx).
type detailResponse struct {
	Detail string `json:"detail"`
}

// post sends one action request and decodes the response into out.
// Non-2xx responses with a parseable detail string become KindBackend
// errors carrying the detail verbatim; everything else is KindTransport.
func (c *Client) post(ctx context.Context, action string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperror.ErrTransport(fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return apperror.ErrTransport(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("action", action).Msg("backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("action", action).Msg("backend unreachable")
		return apperror.ErrTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, readErr := io.ReadAll(resp.Body)
		if readErr == nil && len(data) > 0 {
			var detail detailResponse
			if json.Unmarshal(data, &detail) == nil && detail.Detail != "" {
				c.log.Debug().Str("action", action).Int("status", resp.StatusCode).Str("detail", detail.Detail).Msg("backend error")
				return apperror.ErrBackend(detail.Detail)
			}
		}
		return apperror.ErrTransport(fmt.Errorf("backend returned status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.ErrTransport(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Credits implements ports.BackendClient.
func (c *Client) Credits(ctx context.Context, userID string) (int, error) {
	req := struct {
		UserID string `json:"user_id"`
		Action string `json:"action"`
	}{userID, "credits"}
	var resp struct {
		CreditsRemaining int `json:"credits_remaining"`
	}
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return 0, err
	}
	return resp.CreditsRemaining, nil
}

// GetWallet implements ports.BackendClient. A missing wallet is the
// empty-address, nil-error case.
func (c *Client) GetWallet(ctx context.Context, userID string) (string, string, error) {
	req := struct {
		UserID string `json:"user_id"`
		Action string `json:"action"`
	}{userID, "get_aa_wallet"}
	var resp struct {
		WalletAddress string `json:"wallet_address"`
		Bytecode      string `json:"bytecode"`
	}
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", "", err
	}
	return resp.WalletAddress, resp.Bytecode, nil
}

// CreateWallet implements ports.BackendClient.
func (c *Client) CreateWallet(ctx context.Context, userID string) (string, string, error) {
	req := struct {
		UserID string `json:"user_id"`
		Action string `json:"action"`
	}{userID, "create_aa_wallet"}
	var resp struct {
		WalletAddress string `json:"wallet_address"`
		Bytecode      string `json:"bytecode"`
	}
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", "", err
	}
	return resp.WalletAddress, resp.Bytecode, nil
}

// BuyCredits implements ports.BackendClient.
func (c *Client) BuyCredits(ctx context.Context, userID string, amount int) (ports.PaymentIntent, error) {
	req := struct {
		UserID string `json:"user_id"`
		Amount int    `json:"amount"`
		Action string `json:"action"`
	}{userID, amount, "buy_credits"}
	var resp ports.PaymentIntent
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return ports.PaymentIntent{}, err
	}
	return resp, nil
}

// ConfirmBuyCredits implements ports.BackendClient.
func (c *Client) ConfirmBuyCredits(ctx context.Context, userID string, paymentIntentID string, creditsToAdd int) error {
	req := struct {
		UserID          string `json:"user_id"`
		PaymentIntentID string `json:"payment_intent_id"`
		CreditsToAdd    int    `json:"credits_to_add"`
		Action          string `json:"action"`
	}{userID, paymentIntentID, creditsToAdd, "confirm_buy_credits"}
	return c.post(ctx, req.Action, req, nil)
}

// Ask implements ports.BackendClient.
func (c *Client) Ask(ctx context.Context, userID string, question string, model string) (string, error) {
	req := struct {
		UserID   string `json:"user_id"`
		Question string `json:"question"`
		Model    string `json:"model"`
		Action   string `json:"action"`
	}{userID, question, model, "ask"}
	var resp struct {
		Response string `json:"response"`
	}
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

type txHashResponse struct {
	TxHash string `json:"tx_hash"`
}

// Swap implements ports.BackendClient.
func (c *Client) Swap(ctx context.Context, userID string, amountIn float64) (string, error) {
	req := struct {
		UserID   string  `json:"user_id"`
		AmountIn float64 `json:"amount_in"`
		Action   string  `json:"action"`
	}{userID, amountIn, "swap"}
	var resp txHashResponse
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", err
	}
	return resp.TxHash, nil
}

// Supply implements ports.BackendClient.
func (c *Client) Supply(ctx context.Context, userID string, amount float64) (string, error) {
	req := struct {
		UserID string  `json:"user_id"`
		Amount float64 `json:"amount"`
		Action string  `json:"action"`
	}{userID, amount, "supply"}
	var resp txHashResponse
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", err
	}
	return resp.TxHash, nil
}

// FundWallet implements ports.BackendClient.
func (c *Client) FundWallet(ctx context.Context, userID string, amountETH float64) (string, error) {
	req := struct {
		UserID    string  `json:"user_id"`
		AmountETH float64 `json:"amount_eth"`
		Action    string  `json:"action"`
	}{userID, amountETH, "fund_ai_wallet"}
	var resp txHashResponse
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", err
	}
	return resp.TxHash, nil
}

// TransferUSDC implements ports.BackendClient.
func (c *Client) TransferUSDC(ctx context.Context, userID string, amount float64, recipient string) (string, error) {
	req := struct {
		UserID    string  `json:"user_id"`
		Amount    float64 `json:"amount"`
		Recipient string  `json:"recipient"`
		Action    string  `json:"action"`
	}{userID, amount, recipient, "transfer_usdc"}
	var resp txHashResponse
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", err
	}
	return resp.TxHash, nil
}

// WithdrawUSDC implements ports.BackendClient.
func (c *Client) WithdrawUSDC(ctx context.Context, userID string, amount float64, recipient string) (string, error) {
	req := struct {
		UserID    string  `json:"user_id"`
		Amount    float64 `json:"amount"`
		Recipient string  `json:"recipient"`
		Action    string  `json:"action"`
	}{userID, amount, recipient, "withdraw_usdc"}
	var resp txHashResponse
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return "", err
	}
	return resp.TxHash, nil
}

// CheckProfits implements ports.BackendClient.
func (c *Client) CheckProfits(ctx context.Context, userID string) (domain.ProfitReport, error) {
	req := struct {
		UserID string `json:"user_id"`
		Action string `json:"action"`
	}{userID, "check_profits"}
	var resp domain.ProfitReport
	if err := c.post(ctx, req.Action, req, &resp); err != nil {
		return domain.ProfitReport{}, err
	}
	return resp, nil
}
