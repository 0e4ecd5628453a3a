package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies where an error came from and how the console recovers.
// Every kind is recoverable: one transcript line, one notification, prior
// state untouched.
type Kind string

const (
	KindParse      Kind = "parse"      // malformed command, never reaches the network
	KindValidation Kind = "validation" // bad arguments caught pre-dispatch
	KindState      Kind = "state"      // wallet missing, payment session in wrong phase
	KindTransport  Kind = "transport"  // backend unreachable or non-2xx without detail
	KindBackend    Kind = "backend"    // non-2xx with a structured detail message
	KindProcessor  Kind = "processor"  // payment processor rejected the confirmation
)

// AppError is the structured error carried through every dispatch path.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error // wrapped cause, not shown to the user
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on code so errors.Is works against constructor values.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(kind Kind, code string, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// Wrap wraps a cause with an AppError.
func Wrap(kind Kind, code string, message string, err error) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// ---- Command parsing (CMD) ----

func ErrInvalidAmount(command string) *AppError {
	return New(KindParse, "CMD_001", fmt.Sprintf("Invalid amount for %q", command))
}

func ErrInvalidRecipient(command string) *AppError {
	return New(KindParse, "CMD_002", fmt.Sprintf("Invalid recipient address for %q", command))
}

func ErrMissingArgument(command string, argument string) *AppError {
	return New(KindParse, "CMD_003", fmt.Sprintf("Missing %s for %q", argument, command))
}

func ErrEmptyCommand() *AppError {
	return New(KindValidation, "CMD_004", "Empty command")
}

// ---- Session state (STATE) ----

func ErrNoIdentity() *AppError {
	return New(KindState, "STATE_001", "No connected address")
}

func ErrWalletRequired() *AppError {
	return New(KindState, "STATE_002", "AA wallet does not exist yet")
}

func ErrWalletAlreadyExists() *AppError {
	return New(KindState, "STATE_003", "AA wallet already exists")
}

func ErrWalletCreating() *AppError {
	return New(KindState, "STATE_004", "AA wallet creation already in progress")
}

func ErrCommandInFlight() *AppError {
	return New(KindState, "STATE_005", "Another command is still running")
}

// ---- Payment orchestration (PAY) ----

func ErrPaymentSessionActive() *AppError {
	return New(KindState, "PAY_001", "A credit purchase is already in progress")
}

func ErrPaymentWrongPhase(phase string) *AppError {
	return New(KindState, "PAY_002", fmt.Sprintf("Payment session is %s, start a new purchase", phase))
}

func ErrInvalidCreditAmount() *AppError {
	return New(KindValidation, "PAY_003", "Credit amount must be a positive integer")
}

func ErrProcessor(reason string, err error) *AppError {
	return Wrap(KindProcessor, "PAY_004", reason, err)
}

// ---- Backend & transport (NET) ----

// ErrBackend surfaces the backend's structured detail verbatim.
func ErrBackend(detail string) *AppError {
	return New(KindBackend, "NET_001", detail)
}

func ErrTransport(err error) *AppError {
	return Wrap(KindTransport, "NET_002", "Backend request failed", err)
}

// genericDisplay is shown when an error carries no usable message.
const genericDisplay = "Command execution failed"

// Display returns the one-line, user-facing message for any error.
// AppError messages are surfaced verbatim; anything else degrades to a
// generic line so internals never leak into the transcript.
func Display(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return genericDisplay
}

// KindOf reports the Kind of err, or empty for non-AppError values.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
