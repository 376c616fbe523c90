package agent

import (
	"duel/game"
	"duel/rng"
)

// BiasedRandomAgent picks among its legal actions each turn with fixed
// weights, most useful for biasing toward or away from Shoot. Weights
// are clamped to at least 1 at construction so no action can be
// configured into permanent silence.
type BiasedRandomAgent struct {
	rules                    game.Rules
	src                      *rng.RNG
	wReload, wShield, wShoot float64
}

// NewBiasedRandomAgent constructs a BiasedRandomAgent bound to rules,
// seeded with seed, weighting Reload/Shield/Shoot by wReload/wShield/wShoot.
func NewBiasedRandomAgent(rules game.Rules, seed int, wReload, wShield, wShoot float64) *BiasedRandomAgent {
	return &BiasedRandomAgent{
		rules:   rules,
		src:     rng.New(seed),
		wReload: clampMin1(wReload),
		wShield: clampMin1(wShield),
		wShoot:  clampMin1(wShoot),
	}
}

func clampMin1(w float64) float64 {
	if w < 1 {
		return 1
	}
	return w
}

func (a *BiasedRandomAgent) Rules() game.Rules { return a.rules }

func (a *BiasedRandomAgent) NextAction(my, _ game.PlayerState) game.Action {
	return my.RandomAllowedActionBiased(a.rules, a.wReload, a.wShield, a.wShoot, a.src)
}

func (a *BiasedRandomAgent) LearnFromGame(_ *game.Recording) {}
