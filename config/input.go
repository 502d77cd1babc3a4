package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical per-fighter game action.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds the key bindings for both fighters. Bindings are fixed
// for the match: player one fights on WASD, player two on the arrow keys.
type InputConfig struct {
	Bindings [PlayerCount][ActionCount][]ebiten.Key
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input.Bindings[PlayerOne] = [ActionCount][]ebiten.Key{
		ActionMoveLeft:  {ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyD},
		ActionJump:      {ebiten.KeyW},
		ActionAttack:    {ebiten.KeyS},
	}
	Input.Bindings[PlayerTwo] = [ActionCount][]ebiten.Key{
		ActionMoveLeft:  {ebiten.KeyArrowLeft},
		ActionMoveRight: {ebiten.KeyArrowRight},
		ActionJump:      {ebiten.KeyArrowUp},
		ActionAttack:    {ebiten.KeyArrowDown},
	}
}
