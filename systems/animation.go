package systems

import (
	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

// UpdateAnimations advances each fighter's animation on its fixed cadence
// and completes the locked states whose animations just wrapped. Frames
// only ever change here, when a fighter's timer fires.
func UpdateAnimations(w *components.World) {
	for i := range w.Fighters {
		f := &w.Fighters[i]

		f.FrameTimer--
		if f.FrameTimer > 0 {
			continue
		}
		f.FrameTimer = cfg.FrameInterval

		frame, looped := NextFrame(f.Number, f.CurrentState, f.Frame)
		f.Frame = frame

		switch f.CurrentState {
		case cfg.Attacking:
			if frame == cfg.Fighters[f.Number].SwingFrame {
				w.Outbox.Sounds = append(w.Outbox.Sounds, components.SoundEvent{
					Player: f.Number,
					Sound:  components.SoundSwing,
				})
			}
			if looped {
				finishAttack(f)
			}
		case cfg.TakingHit:
			if looped {
				finishHitstun(f)
			}
		}
	}
}

// NextFrame maps (fighter, state, current frame) to the next sprite-sheet
// frame. The bool reports whether the animation wrapped past its last
// frame. Dying never wraps: it freezes on its final frame.
func NextFrame(number cfg.PlayerID, state cfg.StateID, frame int) (int, bool) {
	r := cfg.FighterAnimations[number][state]
	if frame < r.First || frame > r.Last {
		// The state just changed; start the new range.
		return r.First, false
	}
	frame++
	if frame > r.Last {
		if state == cfg.Dying {
			return r.Last, false
		}
		return r.First, true
	}
	return frame, false
}

// finishAttack returns the fighter to a movement state. The saved previous
// state is not restored blindly: the fighter may have left the ground or
// stopped during the swing, so the state is re-derived from where it
// actually is.
func finishAttack(f *components.FighterData) {
	setState(f, MovementState(f))
}

// finishHitstun resumes the state the hit interrupted. An interrupted
// attack does not resume through a stun; in that case the state is
// re-derived instead.
func finishHitstun(f *components.FighterData) {
	next := f.PreviousState
	if next == cfg.Attacking {
		next = MovementState(f)
	}
	setState(f, next)
}

func setState(f *components.FighterData, state cfg.StateID) {
	f.CurrentState = state
	f.Frame = cfg.FighterAnimations[f.Number][state].First
}
