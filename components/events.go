package components

import "github.com/oakwoods/fighter/config"

// HealthUpdate reports a fighter's health after a hit was applied.
type HealthUpdate struct {
	Player config.PlayerID
	Health int
}

// SoundID identifies a fire-and-forget sound effect.
type SoundID int

const (
	SoundSwing SoundID = iota
)

// SoundEvent asks the audio boundary to play one effect.
type SoundEvent struct {
	Player config.PlayerID
	Sound  SoundID
}

// Outbox collects the events produced during one tick. Producers append,
// consumers read later in the same tick, and the scene resets it before
// the next update, so nothing accumulates across ticks.
type Outbox struct {
	Health            []HealthUpdate
	CountdownComplete bool
	Sounds            []SoundEvent
}

// Reset clears the outbox for the next tick, keeping the backing arrays.
func (o *Outbox) Reset() {
	o.Health = o.Health[:0]
	o.CountdownComplete = false
	o.Sounds = o.Sounds[:0]
}
