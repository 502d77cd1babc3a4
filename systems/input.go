package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

// UpdateInput polls the keyboard into both fighters' action buffers.
// Must run before UpdatePlayers in the tick order.
func UpdateInput(w *components.World) {
	for i := range w.Input {
		in := &w.Input[i]

		// Swap buffers: current becomes previous, then re-poll.
		in.Previous = in.Current
		in.Current = [cfg.ActionCount]bool{}

		for action, keys := range cfg.Input.Bindings[i] {
			for _, key := range keys {
				if ebiten.IsKeyPressed(key) {
					in.Current[action] = true
				}
			}
		}
	}
}
