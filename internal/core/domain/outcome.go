package domain

// Outcome is the normalized result of dispatching one intent. DisplayLines
// are appended to the transcript after the command echo; RefreshCredits
// signals that the backend may have consumed credits (only `ask` does).
type Outcome struct {
	Success        bool
	DisplayLines   []string
	RefreshCredits bool
}

// ErrorOutcome builds the failure Outcome carrying a single error line.
func ErrorOutcome(message string) Outcome {
	return Outcome{Success: false, DisplayLines: []string{"Error: " + message}}
}
