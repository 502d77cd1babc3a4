package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

func TestHUDRevealEasesDownToHealth(t *testing.T) {
	w := components.NewWorld()
	h := NewHUD()

	w.Outbox.Health = append(w.Outbox.Health, components.HealthUpdate{Player: cfg.PlayerOne, Health: 60})
	h.Update(w)
	w.Outbox.Reset()

	prev := h.bars[cfg.PlayerOne].reveal
	assert.Less(t, prev, float32(cfg.MaxHealth), "reveal starts dropping on the hit tick")

	// 0.6 s of ticks runs the tween to completion.
	for i := 0; i < cfg.Match.TicksPerSecond; i++ {
		h.Update(w)
		r := h.bars[cfg.PlayerOne].reveal
		assert.LessOrEqual(t, r, prev, "reveal never bounces back up")
		prev = r
	}

	assert.Equal(t, float32(60), h.bars[cfg.PlayerOne].reveal)
	assert.Nil(t, h.bars[cfg.PlayerOne].tween, "finished tween is dropped")
	assert.Equal(t, float32(cfg.MaxHealth), h.bars[cfg.PlayerTwo].reveal, "the other bar is untouched")
}

func TestHUDSecondHitRestartsFromCurrentReveal(t *testing.T) {
	w := components.NewWorld()
	h := NewHUD()

	w.Outbox.Health = append(w.Outbox.Health, components.HealthUpdate{Player: cfg.PlayerTwo, Health: 90})
	h.Update(w)
	w.Outbox.Reset()

	for i := 0; i < 6; i++ {
		h.Update(w)
	}
	mid := h.bars[cfg.PlayerTwo].reveal
	assert.Greater(t, mid, float32(90))

	w.Outbox.Health = append(w.Outbox.Health, components.HealthUpdate{Player: cfg.PlayerTwo, Health: 80})
	h.Update(w)
	w.Outbox.Reset()

	assert.LessOrEqual(t, h.bars[cfg.PlayerTwo].reveal, mid, "the new tween picks up where the old one was")
	for i := 0; i < cfg.Match.TicksPerSecond; i++ {
		h.Update(w)
	}
	assert.Equal(t, float32(80), h.bars[cfg.PlayerTwo].reveal)
}
