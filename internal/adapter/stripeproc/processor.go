// Package stripeproc confirms card payments against a Stripe-style REST
// API using the server-issued client secret. The backend never sees the
// card details; only the settlement notification goes back to it.
package stripeproc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient abstracts http.Client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Processor implements ports.PaymentProcessor.
type Processor struct {
	baseURL    string
	key        string // publishable key
	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a processor client. baseURL is the API root, e.g.
// https://api.stripe.com.
func New(baseURL string, publishableKey string, timeout time.Duration, log zerolog.Logger) *Processor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Processor{
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        publishableKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

var _ ports.PaymentProcessor = (*Processor)(nil)

// errorEnvelope is the processor's error body.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ConfirmPayment implements ports.PaymentProcessor. The intent id is
// recoverable from the client secret ("pi_123_secret_456" -> "pi_123"),
// so callers only hand over the secret.
func (p *Processor) ConfirmPayment(ctx context.Context, clientSecret string, method ports.PaymentMethod) error {
	intentID, ok := intentIDFromSecret(clientSecret)
	if !ok {
		return apperror.ErrProcessor("Malformed client secret", nil)
	}

	form := url.Values{}
	form.Set("key", p.key)
	form.Set("client_secret", clientSecret)
	form.Set("payment_method_data[type]", "card")
	form.Set("payment_method_data[card][number]", method.CardNumber)
	form.Set("payment_method_data[card][exp_month]", strconv.Itoa(method.ExpMonth))
	form.Set("payment_method_data[card][exp_year]", strconv.Itoa(method.ExpYear))
	form.Set("payment_method_data[card][cvc]", method.CVC)

	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", p.baseURL, intentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return apperror.ErrProcessor("Payment confirmation failed", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.Warn().Err(err).Str("payment_intent", intentID).Msg("processor unreachable")
		return apperror.ErrProcessor("Payment confirmation failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		var envelope errorEnvelope
		if json.Unmarshal(data, &envelope) == nil && envelope.Error.Message != "" {
			return apperror.ErrProcessor(envelope.Error.Message, nil)
		}
		return apperror.ErrProcessor("Payment confirmation failed", fmt.Errorf("processor returned status %d", resp.StatusCode))
	}

	var confirmed struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&confirmed); err != nil {
		return apperror.ErrProcessor("Payment confirmation failed", err)
	}
	if confirmed.Status != "succeeded" {
		return apperror.ErrProcessor(fmt.Sprintf("Payment not completed (status: %s)", confirmed.Status), nil)
	}

	p.log.Info().Str("payment_intent", intentID).Msg("payment confirmed")
	return nil
}

// intentIDFromSecret recovers the payment intent id embedded in a client
// secret of the form "<id>_secret_<nonce>".
func intentIDFromSecret(clientSecret string) (string, bool) {
	id, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || id == "" {
		return "", false
	}
	return id, true
}
