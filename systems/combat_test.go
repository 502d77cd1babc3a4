package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
)

// closeWorld spawns a world with player two walked into player one's face,
// close enough that both fighters' attackboxes reach the other's hurtbox.
func closeWorld() *components.World {
	w := components.NewWorld()
	placeFighter(w, cfg.PlayerTwo, 300)
	return w
}

func TestConnectFrameHitAppliesDamage(t *testing.T) {
	w := closeWorld()
	target := &w.Fighters[cfg.PlayerOne]
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame)

	UpdateCombat(w)

	assert.Equal(t, cfg.MaxHealth-cfg.Fighters[cfg.PlayerTwo].Damage, target.Health)
	assert.Equal(t, cfg.TakingHit, target.CurrentState)
	assert.Equal(t, cfg.Idling, target.PreviousState)
	require.Len(t, w.Outbox.Health, 1)
	assert.Equal(t, components.HealthUpdate{Player: cfg.PlayerOne, Health: 92}, w.Outbox.Health[0])
}

func TestPlayerOneHitsHarder(t *testing.T) {
	w := closeWorld()
	target := &w.Fighters[cfg.PlayerTwo]
	startAttack(w, cfg.PlayerOne, cfg.Fighters[cfg.PlayerOne].ConnectFrame)

	UpdateCombat(w)

	assert.Equal(t, cfg.MaxHealth-cfg.Fighters[cfg.PlayerOne].Damage, target.Health)
	assert.Equal(t, cfg.TakingHit, target.CurrentState)
}

func TestNoHitOffConnectFrame(t *testing.T) {
	w := closeWorld()
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame-1)

	UpdateCombat(w)

	assert.Equal(t, cfg.MaxHealth, w.Fighters[cfg.PlayerOne].Health)
	assert.Empty(t, w.Outbox.Health)
}

func TestNoHitOutOfReach(t *testing.T) {
	// Spawn distance; the boxes do not overlap.
	w := components.NewWorld()
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame)

	UpdateCombat(w)

	assert.Equal(t, cfg.MaxHealth, w.Fighters[cfg.PlayerOne].Health)
	assert.Equal(t, cfg.Idling, w.Fighters[cfg.PlayerOne].CurrentState)
}

// While the attacker's frame counter sits on the connect frame for several
// ticks, the stunned target must not be charged again.
func TestHitDoesNotApplyTwice(t *testing.T) {
	w := closeWorld()
	target := &w.Fighters[cfg.PlayerOne]
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame)

	UpdateCombat(w)
	UpdateCombat(w)
	UpdateCombat(w)

	assert.Equal(t, 92, target.Health)
	assert.Len(t, w.Outbox.Health, 1)
}

func TestDamageClampsAtZeroAndKills(t *testing.T) {
	w := closeWorld()
	target := &w.Fighters[cfg.PlayerOne]
	target.Health = 5
	target.Velocity.X = cfg.C.HorizVelocity
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame)

	UpdateCombat(w)

	assert.Equal(t, 0, target.Health, "health clamps at zero, never negative")
	assert.Equal(t, cfg.Dying, target.CurrentState, "death overrides the hit reaction")
	assert.Zero(t, target.Velocity.X)
	require.Len(t, w.Outbox.Health, 1)
	assert.Equal(t, 0, w.Outbox.Health[0].Health)
}

// When both connect frames line up on the same tick, both hits land; the
// resolution order must not make one fighter's swing evaporate.
func TestSimultaneousTradeHitsBoth(t *testing.T) {
	w := closeWorld()
	startAttack(w, cfg.PlayerOne, cfg.Fighters[cfg.PlayerOne].ConnectFrame)
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame)

	UpdateCombat(w)

	one := &w.Fighters[cfg.PlayerOne]
	two := &w.Fighters[cfg.PlayerTwo]

	assert.Equal(t, cfg.MaxHealth-cfg.Fighters[cfg.PlayerTwo].Damage, one.Health)
	assert.Equal(t, cfg.MaxHealth-cfg.Fighters[cfg.PlayerOne].Damage, two.Health)
	assert.Equal(t, cfg.TakingHit, one.CurrentState)
	assert.Equal(t, cfg.TakingHit, two.CurrentState)
	assert.Equal(t, cfg.Attacking, one.PreviousState)
	assert.Equal(t, cfg.Attacking, two.PreviousState)
	assert.Len(t, w.Outbox.Health, 2)
}

// A trade that kills both fighters on the same tick ends the match in a
// draw through the regular pipeline, no hand-fed events.
func TestSimultaneousKillIsDraw(t *testing.T) {
	w := closeWorld()
	w.Fighters[cfg.PlayerOne].Health = cfg.Fighters[cfg.PlayerTwo].Damage
	w.Fighters[cfg.PlayerTwo].Health = cfg.Fighters[cfg.PlayerOne].Damage
	startAttack(w, cfg.PlayerOne, cfg.Fighters[cfg.PlayerOne].ConnectFrame)
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame)

	UpdateCombat(w)
	UpdateMatch(w)

	assert.Equal(t, cfg.Dying, w.Fighters[cfg.PlayerOne].CurrentState)
	assert.Equal(t, cfg.Dying, w.Fighters[cfg.PlayerTwo].CurrentState)
	assert.Equal(t, cfg.MatchStateFinished, w.Match.State)
	assert.Equal(t, -1, w.Match.WinnerIndex)
	assert.Equal(t, [cfg.PlayerCount]int{0, 0}, w.Match.Scores)
}

func TestDyingFighterCannotBeHit(t *testing.T) {
	w := closeWorld()
	target := &w.Fighters[cfg.PlayerOne]
	target.CurrentState = cfg.Dying
	target.Health = 0
	startAttack(w, cfg.PlayerTwo, cfg.Fighters[cfg.PlayerTwo].ConnectFrame)

	UpdateCombat(w)

	assert.Equal(t, 0, target.Health)
	assert.Empty(t, w.Outbox.Health)
}
