package agent

import (
	"duel/game"
	"duel/rng"
)

// RandomAgent picks uniformly among its legal actions each turn and
// never learns.
type RandomAgent struct {
	rules game.Rules
	src   *rng.RNG
}

// NewRandomAgent constructs a RandomAgent bound to rules, seeded with
// seed.
func NewRandomAgent(rules game.Rules, seed int) *RandomAgent {
	return &RandomAgent{rules: rules, src: rng.New(seed)}
}

func (a *RandomAgent) Rules() game.Rules { return a.rules }

func (a *RandomAgent) NextAction(my, _ game.PlayerState) game.Action {
	return my.RandomAllowedAction(a.rules, a.src)
}

func (a *RandomAgent) LearnFromGame(_ *game.Recording) {}
