package components

import "github.com/oakwoods/fighter/config"

// MatchData tracks the match phase, the countdown clock and the outcome.
// The match controller owns it; everything else reads it.
type MatchData struct {
	State config.MatchStateID

	// CountdownRemaining is the match clock in whole seconds. TickCounter
	// accumulates ticks toward the next one-second decrement.
	CountdownRemaining int
	TickCounter        int

	// WinnerIndex is 0 or 1 once the match is finished, -1 for a draw.
	WinnerIndex int

	// Scores are career win tallies, loaded from and saved to disk.
	Scores [config.PlayerCount]int
}
