package domain

// PaymentPhase tracks one credit purchase through the two-phase protocol.
type PaymentPhase string

const (
	PaymentPhaseCreated    PaymentPhase = "CREATED"    // backend issued client_secret / payment_intent_id
	PaymentPhaseConfirming PaymentPhase = "CONFIRMING" // processor confirmation in flight
	PaymentPhaseSettled    PaymentPhase = "SETTLED"    // backend applied the credits
	PaymentPhaseFailed     PaymentPhase = "FAILED"     // terminal; retry requires a fresh session
)

// PaymentSession is the bounded state of one credit purchase attempt.
// Exactly one may be active per identity; a stale client_secret /
// payment_intent_id pair is never reused.
type PaymentSession struct {
	CreditAmount    int          `json:"credit_amount"`
	ClientSecret    string       `json:"-"` // never logged or displayed
	PaymentIntentID string       `json:"payment_intent_id"`
	CreditsToAdd    int          `json:"credits_to_add"`
	Phase           PaymentPhase `json:"phase"`
	FailureReason   string       `json:"failure_reason,omitempty"`
}

// Active reports whether the session still occupies the per-identity slot.
func (s PaymentSession) Active() bool {
	return s.Phase == PaymentPhaseCreated || s.Phase == PaymentPhaseConfirming
}
