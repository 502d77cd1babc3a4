package systems

import (
	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

// UpdatePlayers applies the polled input to each fighter: horizontal run
// velocity, jump initiation and attack requests. Gameplay input is ignored
// once the match has finished so death and victory poses play out
// undisturbed.
func UpdatePlayers(w *components.World) {
	if w.Match.State == cfg.MatchStateFinished {
		return
	}
	for i := range w.Fighters {
		f := &w.Fighters[i]
		if f.CurrentState == cfg.Dying {
			continue
		}
		in := &w.Input[i]
		handleMovementInput(f, in)
		handleJumpInput(f, in)
		handleAttackInput(f, in)
	}
}

// handleMovementInput drives horizontal velocity from the held direction
// keys. Only releasing the key that currently drives the movement stops
// it; releasing the opposite key is a no-op.
func handleMovementInput(f *components.FighterData, in *components.InputData) {
	left := in.Action(cfg.ActionMoveLeft)
	right := in.Action(cfg.ActionMoveRight)

	if left.Pressed {
		f.Velocity.X = -cfg.C.HorizVelocity
	} else if left.JustReleased && f.Velocity.X < 0 {
		f.Velocity.X = 0
	}

	if right.Pressed {
		f.Velocity.X = cfg.C.HorizVelocity
	} else if right.JustReleased && f.Velocity.X > 0 {
		f.Velocity.X = 0
	}
}

// handleJumpInput starts a jump only when the fighter is exactly on its
// ground line, so there is no double-jump: one tick after takeoff the
// fighter is above GroundY and the check fails until landing snaps it back.
func handleJumpInput(f *components.FighterData, in *components.InputData) {
	if in.Action(cfg.ActionJump).Pressed && f.Position.Y == f.GroundY {
		f.Velocity.Y = cfg.C.JumpVelocity
	}
}

// handleAttackInput switches the fighter into Attacking unless it is
// already locked in an attack or hit reaction. The interrupted state is
// saved so the sequencer can resume it when the swing completes.
func handleAttackInput(f *components.FighterData, in *components.InputData) {
	if !in.Action(cfg.ActionAttack).Pressed {
		return
	}
	if f.CurrentState == cfg.Attacking || f.CurrentState == cfg.TakingHit {
		return
	}
	f.PreviousState = f.CurrentState
	f.CurrentState = cfg.Attacking
}
