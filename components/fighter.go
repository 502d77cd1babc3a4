package components

import (
	"github.com/solarlune/resolv"

	"github.com/oakwoods/fighter/config"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// FighterData is the full per-player aggregate: position, velocity, combat
// state, animation frame, health and collision boxes. Both fighters live in
// a fixed two-slot array on the World; nothing else owns their state.
type FighterData struct {
	Number config.PlayerID

	Position Vector // world coordinates, y up
	Velocity Vector // world units per tick

	// GroundY is the fixed y this fighter rests on, derived at spawn from
	// the sprite's foot padding. Position.Y never goes below it.
	GroundY float64

	CurrentState config.StateID
	// PreviousState holds the state interrupted by the most recent
	// Attacking or TakingHit entry so it can be resumed.
	PreviousState config.StateID

	// Frame is the sprite-sheet frame index for the active state's range.
	Frame int
	// FrameTimer counts down ticks until the next frame advance.
	FrameTimer int

	Health int

	// Hurtbox and Attackbox live in the world's resolv space and follow
	// the fighter's displacement each tick. Their Y is the box's bottom
	// edge in world coordinates.
	Hurtbox   *resolv.Object
	Attackbox *resolv.Object

	// Ground clamps for the boxes, captured at spawn.
	HurtboxGroundY   float64
	AttackboxGroundY float64
}

// SyncBoxes repositions both boxes from the fighter's current position
// using the static box geometry. Called at spawn; afterwards the physics
// stepper keeps boxes attached by translating them instead.
func (f *FighterData) SyncBoxes() {
	cfg := config.Fighters[f.Number]
	placeBox(f.Hurtbox, f.Position, cfg.Hurtbox)
	placeBox(f.Attackbox, f.Position, cfg.Attackbox)
}

func placeBox(obj *resolv.Object, pos Vector, def config.BoxDef) {
	scale := config.C.PlayerScale
	centerX := pos.X + def.OffsetX*scale
	centerY := pos.Y + def.OffsetY*scale
	obj.X = centerX - obj.W/2
	obj.Y = centerY - obj.H/2
	obj.Update()
}
