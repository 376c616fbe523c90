package game

import (
	"fmt"

	"duel/rng"
)

// PlayerState is one side's resources at a point in the duel: lives
// remaining, bullets in the chamber, and shields currently banked. A
// PlayerState with Lives == 0 is dead and takes no further actions.
type PlayerState struct {
	Lives   int
	Bullets int
	Shields int
}

// NewPlayerState returns the starting PlayerState for a duel governed
// by r: full lives, an empty chamber, shields topped up.
func NewPlayerState(r Rules) PlayerState {
	return PlayerState{Lives: r.StartLives, Shields: r.MaxShields}
}

// Dead reports whether this side has been eliminated.
func (p PlayerState) Dead() bool {
	return p.Lives <= 0
}

// IsLegal reports whether a is a legal choice for p under r.
func (p PlayerState) IsLegal(a Action, r Rules) bool {
	switch a {
	case Reload:
		return p.Bullets < r.MaxBullets
	case Shield:
		return p.Shields > 0
	case Shoot:
		return p.Bullets > 0
	default:
		return false
	}
}

func (p PlayerState) legalActions(r Rules) []Action {
	actions := make([]Action, 0, 3)
	for _, a := range [3]Action{Reload, Shield, Shoot} {
		if p.IsLegal(a, r) {
			actions = append(actions, a)
		}
	}
	return actions
}

// RandomAllowedAction uniformly samples one of p's legal actions under
// r using src. At least one legal action always exists for any
// reachable PlayerState: Reload is legal unless the chamber is full,
// in which case Shoot is legal since bullets > 0.
func (p PlayerState) RandomAllowedAction(r Rules, src *rng.RNG) Action {
	legal := p.legalActions(r)
	return legal[src.Pick(len(legal))]
}

// RandomAllowedActionBiased samples among p's legal actions, zeroing
// the weight of any illegal action and delegating to pick_weighted
// over the remainder. wReload, wShield, wShoot must not all be zero
// across the legal subset.
func (p PlayerState) RandomAllowedActionBiased(r Rules, wReload, wShield, wShoot float64, src *rng.RNG) Action {
	var w [3]float64
	if p.IsLegal(Reload, r) {
		w[Reload] = wReload
	}
	if p.IsLegal(Shield, r) {
		w[Shield] = wShield
	}
	if p.IsLegal(Shoot, r) {
		w[Shoot] = wShoot
	}
	return Action(src.PickWeighted(w[Reload], w[Shield], w[Shoot]))
}

// ApplyOwn returns p's resources after p itself performs a, assuming a
// is legal for p. Reload and Shoot both refill shields to the cap;
// Shield spends one banked shield. This asymmetry — only Shield
// itself fails to refill — is what makes shields a turn-use resource
// rather than a stockpile.
func (p PlayerState) ApplyOwn(a Action, r Rules) PlayerState {
	switch a {
	case Reload:
		p.Bullets++
		p.Shields = r.MaxShields
	case Shield:
		p.Shields--
	case Shoot:
		p.Bullets--
		p.Shields = r.MaxShields
	}
	return p
}

// ApplyOpponent returns p's resources after the exchange, given p's
// own action myAction and the opponent's action oppAction (both from
// before the turn's resolution). p takes one life of damage iff the
// opponent shot and p did not choose Shield this same turn.
func (p PlayerState) ApplyOpponent(myAction, oppAction Action) PlayerState {
	if oppAction == Shoot && myAction != Shield {
		if p.Lives > 0 {
			p.Lives--
		}
	}
	return p
}

// Die eliminates p outright: the engine's penalty for choosing an
// illegal action.
func (p PlayerState) Die() PlayerState {
	p.Lives = 0
	return p
}

// RemainingShields returns the number of shields p currently has
// banked. It exists alongside the Shields field so external callers
// mapping spec.md's capi-style accessor names have a named method to
// reach for.
func (p PlayerState) RemainingShields() int {
	return p.Shields
}

// NewPlayerStateFrom constructs a PlayerState from explicit field
// values, validating each against r's limits. This is the entry point
// an external caller (or a test building a specific scenario) uses
// instead of NewPlayerState, which always returns the starting state.
func NewPlayerStateFrom(lives, bullets, shields int, r Rules) (PlayerState, error) {
	p := PlayerState{Lives: lives, Bullets: bullets, Shields: shields}
	if lives < 0 || lives > r.StartLives {
		return PlayerState{}, fmt.Errorf("game: lives %d out of [0,%d]", lives, r.StartLives)
	}
	if bullets < 0 || bullets > r.MaxBullets {
		return PlayerState{}, fmt.Errorf("game: bullets %d out of [0,%d]", bullets, r.MaxBullets)
	}
	if shields < 0 || shields > r.MaxShields {
		return PlayerState{}, fmt.Errorf("game: shields %d out of [0,%d]", shields, r.MaxShields)
	}
	return p, nil
}
