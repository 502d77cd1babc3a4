package systems

import (
	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

// UpdatePhysics advances each fighter by its velocity, applies gravity,
// snaps landings to the ground line and keeps fighters inside the arena.
// The hurtbox and attackbox are translated by the same displacement so
// they stay attached. Runs after UpdatePlayers, before UpdateCombat.
func UpdatePhysics(w *components.World) {
	for i := range w.Fighters {
		stepFighter(&w.Fighters[i])
	}
}

func stepFighter(f *components.FighterData) {
	prevX, prevY := f.Position.X, f.Position.Y

	// The horizontal step only lands inside the arena; at a wall the
	// fighter stays clamped while its velocity is left untouched, so
	// movement resumes as soon as the step is back in bounds.
	newX := f.Position.X + f.Velocity.X
	if newX >= cfg.C.ArenaMinX && newX <= cfg.C.ArenaMaxX {
		f.Position.X = newX
	}

	f.Position.Y += f.Velocity.Y

	if f.Position.Y > f.GroundY {
		// Airborne: vertical velocity decreases monotonically.
		f.Velocity.Y -= cfg.C.Gravity
	} else {
		// Landing.
		f.Position.Y = f.GroundY
		f.Velocity.Y = 0
	}

	// Locked states finish on their own schedule; everything else is
	// re-derived from where the fighter actually is.
	if !f.CurrentState.Locked() {
		f.CurrentState = MovementState(f)
	}

	moveBoxes(f, f.Position.X-prevX, f.Position.Y-prevY)
}

// MovementState derives the state implied by a fighter's position and
// velocity: airborne fighters are jumping or falling, grounded ones run
// or idle.
func MovementState(f *components.FighterData) cfg.StateID {
	if f.Position.Y > f.GroundY {
		if f.Velocity.Y > 0 {
			return cfg.Jumping
		}
		return cfg.Falling
	}
	if f.Velocity.X != 0 {
		return cfg.Running
	}
	return cfg.Idling
}

// moveBoxes translates both boxes by the fighter's actual displacement for
// the tick and re-registers them with the resolv space. Each box keeps its
// own ground clamp so it never sinks below its spawn line.
func moveBoxes(f *components.FighterData, dx, dy float64) {
	f.Hurtbox.X += dx
	f.Hurtbox.Y += dy
	if f.Hurtbox.Y < f.HurtboxGroundY {
		f.Hurtbox.Y = f.HurtboxGroundY
	}
	f.Hurtbox.Update()

	f.Attackbox.X += dx
	f.Attackbox.Y += dy
	if f.Attackbox.Y < f.AttackboxGroundY {
		f.Attackbox.Y = f.AttackboxGroundY
	}
	f.Attackbox.Update()
}
