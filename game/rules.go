package game

import "fmt"

// Rules is an immutable parameter block shared by both sides of a
// duel. The 5-cap on each resource isn't taste: GameGraph (see the
// graph package) depends on the joint state space fitting in
// 6*6*6*6*6*6 = 46656 slots, the same bound the Q-learning index
// relies on.
type Rules struct {
	StartLives int
	MaxBullets int
	MaxShields int
	MaxTurns   int
}

// NewRules validates and constructs a Rules value. A Rules built
// directly as a struct literal is not validated.
func NewRules(startLives, maxBullets, maxShields, maxTurns int) (Rules, error) {
	r := Rules{
		StartLives: startLives,
		MaxBullets: maxBullets,
		MaxShields: maxShields,
		MaxTurns:   maxTurns,
	}
	if err := r.validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// DefaultRules is the (5,5,5,1000) configuration used throughout
// spec.md's end-to-end scenarios and as the sensible out-of-the-box
// default for the CLI and training harness.
func DefaultRules() Rules {
	r, _ := NewRules(5, 5, 5, 1000)
	return r
}

func (r Rules) validate() error {
	if r.StartLives < 1 || r.StartLives > 5 {
		return fmt.Errorf("game: startLives must be in [1,5], got %d", r.StartLives)
	}
	if r.MaxBullets < 1 || r.MaxBullets > 5 {
		return fmt.Errorf("game: maxBullets must be in [1,5], got %d", r.MaxBullets)
	}
	if r.MaxShields < 1 || r.MaxShields > 5 {
		return fmt.Errorf("game: maxShields must be in [1,5], got %d", r.MaxShields)
	}
	if r.MaxTurns < 1 {
		return fmt.Errorf("game: maxTurns must be >= 1, got %d", r.MaxTurns)
	}
	return nil
}

// ExceedsTableCap reports whether any resource exceeds the hard 5-cap
// that the Q-learning and Shapley tables depend on. Rules constructed
// via NewRules already satisfy this, but callers that build a Rules
// directly from untrusted hyperparameters (config files, fuzz tests)
// should check it before handing the Rules to qlearn.TryNew or
// shapley.TryNew.
func (r Rules) ExceedsTableCap() bool {
	max := r.StartLives
	if r.MaxBullets > max {
		max = r.MaxBullets
	}
	if r.MaxShields > max {
		max = r.MaxShields
	}
	return max > 5
}

// Equal reports whether two Rules carry identical parameters.
func (r Rules) Equal(o Rules) bool {
	return r == o
}
