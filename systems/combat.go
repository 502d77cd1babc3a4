package systems

import (
	"github.com/solarlune/resolv"

	"github.com/oakwoods/fighter/components"
	cfg "github.com/oakwoods/fighter/config"
	"github.com/oakwoods/fighter/tags"
)

// UpdateCombat is the collision/damage resolver. Each fighter is tested
// against the opponent's attackbox, but only on the single frame the
// opponent's attack connects, so one swing can land at most once. Both
// checks are decided before either hit is applied, so a simultaneous trade
// damages both fighters instead of only the one resolved first. Runs after
// UpdatePhysics, when the boxes are at their final position for the tick.
func UpdateCombat(w *components.World) {
	var hits [cfg.PlayerCount]bool
	for i := range w.Fighters {
		hits[i] = incomingHit(w, cfg.PlayerID(i))
	}
	for i := range w.Fighters {
		if !hits[i] {
			continue
		}
		target := cfg.PlayerID(i)
		applyHit(w, &w.Fighters[target], &w.Fighters[target.Opponent()])
	}
}

// incomingHit decides whether the opponent's attack lands on the target
// this tick. It only reads fighter state, never mutates it.
func incomingHit(w *components.World, target cfg.PlayerID) bool {
	f := &w.Fighters[target]

	// A fighter already reeling or dying cannot be re-hit. This also
	// keeps a connect frame from applying twice while the attacker's
	// frame counter holds still.
	if f.CurrentState == cfg.TakingHit || f.CurrentState == cfg.Dying {
		return false
	}

	opp := &w.Fighters[target.Opponent()]
	if opp.CurrentState != cfg.Attacking {
		return false
	}
	if opp.Frame != cfg.Fighters[opp.Number].ConnectFrame {
		return false
	}

	// Broad phase through the resolv space, then the exact extent test:
	// two boxes intersect iff they overlap on both axes.
	check := opp.Attackbox.Check(0, 0, tags.HurtboxFor(target))
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if obj == f.Hurtbox && boxesOverlap(opp.Attackbox, f.Hurtbox) {
			return true
		}
	}
	return false
}

func applyHit(w *components.World, f, opp *components.FighterData) {
	f.PreviousState = f.CurrentState
	f.CurrentState = cfg.TakingHit

	f.Health -= cfg.Fighters[opp.Number].Damage
	if f.Health < 0 {
		f.Health = 0
	}

	w.Outbox.Health = append(w.Outbox.Health, components.HealthUpdate{
		Player: f.Number,
		Health: f.Health,
	})

	if f.Health == 0 {
		// Death overrides the hit reaction and everything after it.
		f.CurrentState = cfg.Dying
		f.Velocity.X = 0
	}
}

func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
