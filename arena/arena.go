// Package arena drives a single duel between two agents, turn by
// turn, optionally recording it for later replay and learning.
package arena

import (
	"errors"

	"duel/agent"
	"duel/game"
)

// ErrRulesMismatch is returned when the two agents passed to Play were
// constructed with different Rules.
var ErrRulesMismatch = errors.New("arena: agents were constructed with different rules")

// Play runs one game between a (as side A) and b (as side B) to
// completion — either a side dies or rules.MaxTurns turns elapse —
// and returns the winning side. If recording is non-nil it is cleared
// first, then populated with every turn played and the final winner.
func Play(a, b agent.Agent, recording *game.Recording) (game.Side, error) {
	if a.Rules() != b.Rules() {
		return game.SideNone, ErrRulesMismatch
	}
	rules := a.Rules()
	rec := recording
	if rec == nil {
		rec = game.NewRecording(rules)
	} else {
		rec.Clear()
	}

	state := game.NewGameState(rules)
	for turn := 0; turn < rules.MaxTurns; turn++ {
		actionA := a.NextAction(state.A, state.B)
		actionB := b.NextAction(state.B, state.A)
		rec.Record(actionA, actionB)
		state = state.Resolve(actionA, actionB, rules)
		if state.GameOver() {
			break
		}
	}

	winner := state.Winner()
	rec.RecordWinner(winner)

	a.LearnFromGame(rec)
	b.LearnFromGame(rec.Swapped())

	return winner, nil
}
