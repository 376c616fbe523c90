// Package agent defines the uniform contract every duel participant
// implements, plus the two reference implementations (Random and
// BiasedRandom) that exercise no more than PlayerState's own action
// sampling.
package agent

import "duel/game"

// Agent is implemented by every kind of duel participant: the simple
// random players in this package, and the Q-learning and Shapley
// agents in their own packages.
type Agent interface {
	// Rules returns the immutable Rules this agent was constructed
	// with.
	Rules() game.Rules

	// NextAction chooses an action given my own resources and the
	// opponent's. It is not required to return a legal action — the
	// engine kills the caller's side on the next resolve if it
	// doesn't.
	NextAction(my, opp game.PlayerState) game.Action

	// LearnFromGame is called once after a game ends with the full
	// recording of the game just played. Implementations that don't
	// learn make this a no-op.
	LearnFromGame(rec *game.Recording)
}
