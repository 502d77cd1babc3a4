package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakwoods/fighter/config"
)

func TestActionEdges(t *testing.T) {
	var in InputData

	// Key goes down.
	in.Current[config.ActionJump] = true
	a := in.Action(config.ActionJump)
	assert.True(t, a.Pressed)
	assert.True(t, a.JustPressed)
	assert.False(t, a.JustReleased)

	// Held across the buffer swap.
	in.Previous = in.Current
	a = in.Action(config.ActionJump)
	assert.True(t, a.Pressed)
	assert.False(t, a.JustPressed)
	assert.False(t, a.JustReleased)

	// Key goes up.
	in.Previous = in.Current
	in.Current[config.ActionJump] = false
	a = in.Action(config.ActionJump)
	assert.False(t, a.Pressed)
	assert.False(t, a.JustPressed)
	assert.True(t, a.JustReleased)

	// Idle again.
	in.Previous = in.Current
	a = in.Action(config.ActionJump)
	assert.Equal(t, ActionState{}, a)
}
