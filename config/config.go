package config

// GameConfig contains window and arena-wide tuning values. World
// coordinates grow rightward from the arena's left edge and upward from the
// bottom of the window; only the renderer flips to screen coordinates.
type GameConfig struct {
	Width  int
	Height int

	// PlayerScale is applied to all sprite-unit geometry at spawn.
	PlayerScale float64

	// FloorY is the world y of the arena floor. Each fighter's ground
	// line is derived from it plus the sprite's foot padding.
	FloorY float64

	// Horizontal bounds the movement stepper enforces.
	ArenaMinX float64
	ArenaMaxX float64

	// Physics constants, in world units per tick. Ebitengine updates at a
	// fixed 60 TPS, so per-tick values are frame-rate independent.
	Gravity       float64
	JumpVelocity  float64
	HorizVelocity float64
}

// C is the global game configuration.
var C = GameConfig{
	Width:  1024,
	Height: 576,

	PlayerScale: 2.75,
	FloorY:      76.8,

	ArenaMinX: 60,
	ArenaMaxX: 964,

	Gravity:       0.7,
	JumpVelocity:  20,
	HorizVelocity: 5,
}

// MaxHealth is the health every fighter spawns with.
const MaxHealth = 100

// BoxDef describes a hurtbox or attackbox in unscaled sprite units. The
// offset locates the box center relative to the fighter origin and is
// multiplied by PlayerScale at spawn, as are the dimensions.
type BoxDef struct {
	OffsetX float64
	OffsetY float64
	W       float64
	H       float64
}

// FighterConfig holds the static per-player tuning values. The two sprite
// sheets differ, which is what makes the fighters asymmetric: reach, hit
// timing and damage all come from here.
type FighterConfig struct {
	// SpawnX is the spawn offset from the arena's horizontal center.
	SpawnX float64

	// FootOffset is the sprite's vertical padding below the feet, in
	// unscaled sprite units. The fighter's ground line is
	// FloorY + FootOffset*PlayerScale.
	FootOffset float64

	Hurtbox   BoxDef
	Attackbox BoxDef

	// Damage dealt when an attack connects.
	Damage int

	// ConnectFrame is the single Attacking frame at which the attack can
	// land. SwingFrame triggers the whoosh sound effect.
	ConnectFrame int
	SwingFrame   int
}

// Fighters holds both players' static tables. Player one swings a slow,
// heavy sword facing right; player two a quicker, lighter one facing left.
var Fighters = [PlayerCount]FighterConfig{
	PlayerOne: {
		SpawnX:       -300,
		FootOffset:   22,
		Hurtbox:      BoxDef{OffsetX: 0, OffsetY: 28, W: 30, H: 55},
		Attackbox:    BoxDef{OffsetX: 37, OffsetY: 50, W: 105, H: 25},
		Damage:       10,
		ConnectFrame: 4,
		SwingFrame:   2,
	},
	PlayerTwo: {
		SpawnX:       300,
		FootOffset:   28,
		Hurtbox:      BoxDef{OffsetX: -3, OffsetY: 29, W: 25, H: 58},
		Attackbox:    BoxDef{OffsetX: -37, OffsetY: 40, W: 95, H: 35},
		Damage:       8,
		ConnectFrame: 2,
		SwingFrame:   1,
	},
}

// MatchConfig contains match-clock tuning.
type MatchConfig struct {
	CountdownSeconds int
	TicksPerSecond   int
}

// Match is the global match configuration.
var Match = MatchConfig{
	CountdownSeconds: 30,
	TicksPerSecond:   60,
}

// DebugConfig toggles development aids.
type DebugConfig struct {
	// SkipMenu jumps straight into a fight at startup.
	SkipMenu bool
	// DrawBoxes overlays hurtbox/attackbox outlines.
	DrawBoxes bool
}

// Debug is the global debug configuration.
var Debug = DebugConfig{}
