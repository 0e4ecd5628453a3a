package domain

import (
	"math"
	"strconv"
	"strings"

	"agent-wallet-console/pkg/apperror"
)

// IntentKind discriminates the parsed command variants.
type IntentKind string

const (
	IntentAsk          IntentKind = "ask"
	IntentSwap         IntentKind = "swap"
	IntentSupply       IntentKind = "supply"
	IntentFund         IntentKind = "fund"
	IntentTransfer     IntentKind = "transfer"
	IntentWithdraw     IntentKind = "withdraw"
	IntentCheckProfits IntentKind = "check_profits"
	IntentUnknown      IntentKind = "unknown"
)

// Intent is the typed, immutable representation of one submitted command line.
type Intent struct {
	Kind      IntentKind
	Raw       string // trimmed command line as typed
	Model     string // ask: provider token, empty when omitted
	Question  string // ask: remainder of the line, verbatim
	Amount    float64
	Recipient string
}

// RequiresWallet reports whether the intent moves funds through the AA
// wallet and is therefore blocked until the wallet exists.
func (i Intent) RequiresWallet() bool {
	switch i.Kind {
	case IntentSwap, IntentSupply, IntentFund, IntentTransfer, IntentWithdraw:
		return true
	}
	return false
}

// UsageHint is shown for unrecognised commands instead of an error.
const UsageHint = "Invalid command. Use: ask <model> <question>, swap <amount>, supply <amount>, fund <amount>, transfer <amount> <recipient>, withdraw <amount> <recipient>, check_profits"

// ParseCommand turns a raw command line into an Intent. It is pure and
// total: malformed input comes back as an apperror with KindParse, never a
// panic. Only the command token is lower-cased; the question text and
// recipient addresses keep the case the user typed (EIP-55 checksums are
// case-sensitive).
func ParseCommand(raw string) (Intent, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Intent{}, apperror.ErrEmptyCommand()
	}

	fields := strings.Fields(trimmed)
	command := strings.ToLower(fields[0])
	intent := Intent{Raw: trimmed}

	switch command {
	case "ask":
		intent.Kind = IntentAsk
		if len(fields) >= 2 {
			intent.Model = strings.ToLower(fields[1])
		}
		intent.Question = restAfterFields(trimmed, 2)

	case "swap", "supply", "fund":
		switch command {
		case "swap":
			intent.Kind = IntentSwap
		case "supply":
			intent.Kind = IntentSupply
		default:
			intent.Kind = IntentFund
		}
		amount, err := parseAmount(command, fields, 1)
		if err != nil {
			return Intent{}, err
		}
		intent.Amount = amount

	case "transfer", "withdraw":
		if command == "transfer" {
			intent.Kind = IntentTransfer
		} else {
			intent.Kind = IntentWithdraw
		}
		amount, err := parseAmount(command, fields, 1)
		if err != nil {
			return Intent{}, err
		}
		intent.Amount = amount
		if len(fields) < 3 {
			return Intent{}, apperror.ErrMissingArgument(command, "recipient")
		}
		recipient := fields[2]
		if !ValidRecipient(recipient) {
			return Intent{}, apperror.ErrInvalidRecipient(command)
		}
		intent.Recipient = recipient

	case "check_profits":
		intent.Kind = IntentCheckProfits

	default:
		intent.Kind = IntentUnknown
	}

	return intent, nil
}

func parseAmount(command string, fields []string, idx int) (float64, error) {
	if len(fields) <= idx {
		return 0, apperror.ErrMissingArgument(command, "amount")
	}
	amount, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, apperror.ErrInvalidAmount(command)
	}
	return amount, nil
}

// restAfterFields returns the remainder of s after skipping n
// whitespace-separated fields, preserving the remainder byte-for-byte
// apart from surrounding whitespace.
func restAfterFields(s string, n int) string {
	rest := s
	for i := 0; i < n; i++ {
		rest = strings.TrimLeft(rest, " \t")
		cut := strings.IndexAny(rest, " \t")
		if cut < 0 {
			return ""
		}
		rest = rest[cut:]
	}
	return strings.TrimSpace(rest)
}
