package systems

import (
	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

// UpdateMatch drives the countdown clock and watches the outbox for the
// two terminal conditions: a fighter's health reaching zero or the clock
// running out. Runs after UpdateCombat so health events are observed in
// the tick they are emitted.
func UpdateMatch(w *components.World) {
	m := &w.Match
	if m.State == cfg.MatchStateFinished {
		return
	}

	updateCountdown(w)

	gameOver := w.Outbox.CountdownComplete
	for _, hu := range w.Outbox.Health {
		if hu.Health == 0 {
			gameOver = true
		}
	}
	if !gameOver {
		return
	}

	m.State = cfg.MatchStateFinished
	m.WinnerIndex = determineWinner(w)
	if m.WinnerIndex >= 0 {
		m.Scores[m.WinnerIndex]++
	}
}

// updateCountdown decrements the clock once per second of ticks and emits
// the completion event exactly once, when the clock reaches zero.
func updateCountdown(w *components.World) {
	m := &w.Match
	m.TickCounter++
	if m.TickCounter < cfg.Match.TicksPerSecond {
		return
	}
	m.TickCounter = 0

	if m.CountdownRemaining == 0 {
		return
	}
	m.CountdownRemaining--
	if m.CountdownRemaining == 0 {
		w.Outbox.CountdownComplete = true
	}
}

// determineWinner compares final healths: higher wins, equal is a draw.
func determineWinner(w *components.World) int {
	one := w.Fighters[cfg.PlayerOne].Health
	two := w.Fighters[cfg.PlayerTwo].Health
	switch {
	case one > two:
		return int(cfg.PlayerOne)
	case two > one:
		return int(cfg.PlayerTwo)
	default:
		return -1
	}
}
