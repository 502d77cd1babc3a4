package components

import "github.com/oakwoods/fighter/config"

// ActionState describes one logical action's status for the current tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData double-buffers the polled action state for one fighter. The
// input system copies Current into Previous before each poll, which is
// what makes the edge queries work.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// Action returns the full per-tick status of an action, including the
// press and release edges.
func (in *InputData) Action(id config.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}
