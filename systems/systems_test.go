package systems

import (
	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

// tick runs one full simulation tick without polling the keyboard; tests
// drive the input buffers directly through setInput.
func tick(w *components.World) {
	w.Outbox.Reset()
	UpdatePlayers(w)
	UpdatePhysics(w)
	UpdateCombat(w)
	UpdateAnimations(w)
	UpdateMatch(w)
}

// setInput advances a fighter's input buffers one tick with the given
// actions held, mirroring what UpdateInput does with the real keyboard.
func setInput(w *components.World, p cfg.PlayerID, actions ...cfg.ActionID) {
	in := &w.Input[p]
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}

// releaseInput clears a fighter's held actions for the next tick.
func releaseInput(w *components.World, p cfg.PlayerID) {
	setInput(w, p)
}

// placeFighter moves a fighter to a new x and re-derives its boxes, the
// same way spawning does.
func placeFighter(w *components.World, p cfg.PlayerID, x float64) {
	f := &w.Fighters[p]
	f.Position.X = x
	f.SyncBoxes()
}

// startAttack puts a fighter directly into Attacking at a chosen frame,
// with the timer about to fire.
func startAttack(w *components.World, p cfg.PlayerID, frame int) {
	f := &w.Fighters[p]
	f.PreviousState = f.CurrentState
	f.CurrentState = cfg.Attacking
	f.Frame = frame
	f.FrameTimer = cfg.FrameInterval
}
