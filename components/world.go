package components

import (
	"github.com/solarlune/resolv"

	"github.com/oakwoods/fighter/config"
	"github.com/oakwoods/fighter/tags"
)

// World owns all mutable match state: exactly two fighters, the input
// buffers, the match record and the per-tick event outbox. Systems are free
// functions that receive the world and run in a fixed order each tick;
// there is no entity graph to query.
type World struct {
	Fighters [config.PlayerCount]FighterData
	Input    [config.PlayerCount]InputData
	Match    MatchData
	Outbox   Outbox

	// Space indexes the fighters' boxes for collision checks.
	Space *resolv.Space
}

// NewWorld builds a match-start world: both fighters at their spawn points
// with full health, the countdown at its starting value.
func NewWorld() *World {
	w := &World{
		Space: resolv.NewSpace(config.C.Width, config.C.Height, 16, 16),
		Match: MatchData{
			State:              config.MatchStatePlaying,
			CountdownRemaining: config.Match.CountdownSeconds,
			WinnerIndex:        -1,
		},
	}
	for i := range w.Fighters {
		w.spawnFighter(config.PlayerID(i))
	}
	return w
}

func (w *World) spawnFighter(number config.PlayerID) {
	cfg := config.Fighters[number]
	scale := config.C.PlayerScale

	pos := Vector{
		X: float64(config.C.Width)/2 + cfg.SpawnX,
		Y: config.C.FloorY + cfg.FootOffset*scale,
	}

	f := &w.Fighters[number]
	*f = FighterData{
		Number:        number,
		Position:      pos,
		GroundY:       pos.Y,
		CurrentState:  config.Idling,
		PreviousState: config.Idling,
		Frame:         config.FighterAnimations[number][config.Idling].First,
		FrameTimer:    config.FrameInterval,
		Health:        config.MaxHealth,
		Hurtbox: resolv.NewObject(0, 0,
			cfg.Hurtbox.W*scale, cfg.Hurtbox.H*scale, tags.HurtboxFor(number)),
		Attackbox: resolv.NewObject(0, 0,
			cfg.Attackbox.W*scale, cfg.Attackbox.H*scale, tags.Attackbox),
	}

	w.Space.Add(f.Hurtbox, f.Attackbox)
	f.SyncBoxes()
	f.HurtboxGroundY = f.Hurtbox.Y
	f.AttackboxGroundY = f.Attackbox.Y
}
