package config

// PlayerID selects one of the two fighter slots.
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
	PlayerCount // Must be last - used for array sizing
)

// Opponent returns the other fighter slot.
func (p PlayerID) Opponent() PlayerID {
	return PlayerCount - 1 - p
}

func (p PlayerID) String() string {
	if p == PlayerOne {
		return "player-one"
	}
	return "player-two"
}

// StateID identifies a fighter combat state.
type StateID int

const (
	Idling StateID = iota
	Running
	Jumping
	Falling
	Attacking
	TakingHit
	Dying
	StateCount // Must be last - used for array sizing
)

func (s StateID) String() string {
	switch s {
	case Idling:
		return "idling"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	case Attacking:
		return "attacking"
	case TakingHit:
		return "taking-hit"
	case Dying:
		return "dying"
	}
	return "unknown"
}

// Locked reports whether a state ignores input until its animation
// completes. Dying additionally never exits at all.
func (s StateID) Locked() bool {
	return s == Attacking || s == TakingHit || s == Dying
}

// MatchStateID identifies the phase of the overall match.
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStateFinished
)
