// Package qlearn implements the tabular Q-learning agent: a joint
// (me, opponent) state index, confidence-gated exploration, and a
// post-game backup driven by replaying the just-played recording.
package qlearn

import (
	"duel/game"
	"duel/rng"
)

const (
	tableSize = 216 * 216

	learningRate = 0.1
	discount     = 0.1

	confidenceThreshold = 5
	scoreMargin         = 1.0

	rewardWin  = 10.0
	rewardDraw = -1.0
	rewardLoss = -10.0
)

// cell is one (action, state) Q-table entry.
type cell struct {
	score      float64
	confidence int
}

// Agent is a tabular Q-learner over the joint (me, opponent) state
// space. Its tables are sized for any Rules within the 5-cap, but are
// only ever indexed with states reachable under the Rules it was
// constructed with.
type Agent struct {
	rules game.Rules
	src   *rng.RNG
	table [3][tableSize]cell
}

// TryNew constructs a zero-initialized Q-learning agent for rules,
// seeded with seed. It returns (nil, false) if rules exceed the
// 5-cap the joint index depends on.
func TryNew(rules game.Rules, seed int) (*Agent, bool) {
	if rules.ExceedsTableCap() {
		return nil, false
	}
	return &Agent{rules: rules, src: rng.New(seed)}, true
}

func (a *Agent) Rules() game.Rules { return a.rules }

// stateIndex encodes a single PlayerState into [0,216).
func stateIndex(p game.PlayerState) int {
	return p.Lives + 6*p.Bullets + 36*p.Shields
}

// jointIndex encodes a (me, opponent) pair into [0,46656).
func jointIndex(my, opp game.PlayerState) int {
	return stateIndex(my) + 216*stateIndex(opp)
}

// NextAction applies the confidence-gated exploration rule: if either
// the best or worst-scoring action is under-sampled, or the two
// scores are too close to trust, fall back to uniform random play
// among legal actions. Otherwise play the best action if it happens
// to be legal, else fall back the same way.
func (a *Agent) NextAction(my, opp game.PlayerState) game.Action {
	idx := jointIndex(my, opp)
	var cells [3]cell
	for act := 0; act < 3; act++ {
		cells[act] = a.table[act][idx]
	}

	best, worst := 0, 0
	for act := 1; act < 3; act++ {
		if cells[act].score > cells[best].score {
			best = act
		}
		if cells[act].score < cells[worst].score {
			worst = act
		}
	}

	if cells[best].confidence < confidenceThreshold ||
		cells[worst].confidence < confidenceThreshold ||
		cells[best].score-cells[worst].score < scoreMargin {
		return my.RandomAllowedAction(a.rules, a.src)
	}

	bestAction := game.Action(best)
	if my.IsLegal(bestAction, a.rules) {
		return bestAction
	}
	return my.RandomAllowedAction(a.rules, a.src)
}

// LearnFromGame updates the Q-table from the just-finished game. rec
// is always viewed from this agent's own perspective: its actions are
// the recording's A-sequence regardless of which physical side it
// played (see game.Recording.Swapped).
func (a *Agent) LearnFromGame(rec *game.Recording) {
	reward := rewardForWinner(rec.Winner)

	rec.Replay(func(step game.ReplayStep) {
		beforeIdx := jointIndex(step.Before.A, step.Before.B)
		afterIdx := jointIndex(step.After.A, step.After.B)

		est := a.table[0][afterIdx].score
		for act := 1; act < 3; act++ {
			if a.table[act][afterIdx].score > est {
				est = a.table[act][afterIdx].score
			}
		}

		act := int(step.ActionA)
		c := &a.table[act][beforeIdx]
		c.score += learningRate * (reward + discount*est - c.score)
		c.confidence++
	})
}

func rewardForWinner(w game.Side) float64 {
	switch w {
	case game.SideA:
		return rewardWin
	case game.SideB:
		return rewardLoss
	default:
		return rewardDraw
	}
}

// Confidence returns the percentage of table entries, across all
// three actions, whose confidence has reached confidenceThreshold.
func (a *Agent) Confidence() float64 {
	hits := 0
	for act := 0; act < 3; act++ {
		for i := 0; i < tableSize; i++ {
			if a.table[act][i].confidence >= confidenceThreshold {
				hits++
			}
		}
	}
	return 100 * float64(hits) / float64(3*tableSize)
}
