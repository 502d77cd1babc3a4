package tags

import "github.com/oakwoods/fighter/config"

// Resolv space tags used to filter collision checks.
const (
	HurtboxOne = "hurtbox-one"
	HurtboxTwo = "hurtbox-two"
	Attackbox  = "attackbox"
)

// HurtboxFor returns the resolv tag carried by a fighter's hurtbox.
func HurtboxFor(p config.PlayerID) string {
	if p == config.PlayerOne {
		return HurtboxOne
	}
	return HurtboxTwo
}
