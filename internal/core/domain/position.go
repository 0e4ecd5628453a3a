package domain

import (
	"fmt"
	"strconv"
)

// ProfitStatusNoActivePositions is the backend sentinel for an empty report.
const ProfitStatusNoActivePositions = "no_active_positions"

// Position is a server-owned open DeFi position, read-only on this side.
type Position struct {
	PositionID      int64   `json:"position_id"`
	Platform        string  `json:"platform"`
	InitialValueUSD float64 `json:"initial_value_usd"`
	CurrentValueUSD float64 `json:"current_value_usd"`
	ProfitRatio     float64 `json:"profit_ratio"`
	ActionTaken     *string `json:"action_taken,omitempty"`
}

// DisplayLine formats the position for the transcript. Profit is the ratio
// expressed as a percentage gain, rounded to two decimals.
func (p Position) DisplayLine() string {
	action := "None"
	if p.ActionTaken != nil && *p.ActionTaken != "" {
		action = *p.ActionTaken
	}
	return fmt.Sprintf("Position %d (%s): Initial: %s USD, Current: %.2f USD, Profit: %.2f%%, Action: %s",
		p.PositionID,
		p.Platform,
		strconv.FormatFloat(p.InitialValueUSD, 'f', -1, 64),
		p.CurrentValueUSD,
		p.ProfitRatio*100-100,
		action,
	)
}

// ProfitReport is the check_profits response.
type ProfitReport struct {
	Status    string     `json:"status"`
	Positions []Position `json:"positions,omitempty"`
}

// DisplayLines renders the report, one line per position.
func (r ProfitReport) DisplayLines() []string {
	if r.Status == ProfitStatusNoActivePositions || len(r.Positions) == 0 {
		return []string{"No active positions found."}
	}
	lines := make([]string, 0, len(r.Positions))
	for _, p := range r.Positions {
		lines = append(lines, p.DisplayLine())
	}
	return lines
}
