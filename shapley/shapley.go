// Package shapley implements the mean-payoff stochastic-game agent:
// value iteration over the full reachable state graph, each Bellman
// step solved as a 3x3 matrix game.
package shapley

import (
	"math"

	"duel/game"
	"duel/graph"
	"duel/matrix"
	"duel/rng"
)

// MaxIterations is the number of value-iteration sweeps run
// at construction. v_k grows roughly linearly in k for an ergodic
// mean-payoff game, so dividing the final sweep's bootstrap values by
// MaxIterations approximates the game's per-turn mean-payoff value.
const MaxIterations = 200

// Big substitutes for the ±infinite terminal cost sentinels so every
// matrix entry stays in ordinary float64 range during value iteration.
const Big = 500

// Agent plays by sampling each state's converged mixed strategy.
type Agent struct {
	rules game.Rules
	src   *rng.RNG
	g     *graph.Graph
	value []float64
	strat [][3]float64
}

// TryNew builds the full reachable-state graph for rules and runs
// MaxIterations sweeps of value iteration; it does not test for
// convergence. It returns (nil, false) if rules
// exceed the 5-cap the graph's joint state encoding depends on.
func TryNew(rules game.Rules, seed int) (*Agent, bool) {
	g, ok := graph.Build(rules)
	if !ok {
		return nil, false
	}

	n := len(g.States)
	bootstrap := make([]float64, n)
	strat := make([][3]float64, n)

	for iter := 0; iter < MaxIterations; iter++ {
		nextBootstrap := make([]float64, n)
		for i := range g.States {
			m := buildMatrix(g, i, bootstrap)
			sp := matrix.Solve(m)
			nextBootstrap[i] = sp.Value
			strat[i] = sp.P
		}
		bootstrap = nextBootstrap
	}

	value := bootstrap
	for i := range value {
		value[i] /= MaxIterations
	}

	return &Agent{
		rules: rules,
		src:   rng.New(seed),
		g:     g,
		value: value,
		strat: strat,
	}, true
}

// buildMatrix forms the per-iteration 3x3 matrix for state i: the
// precomputed step cost (with ±Inf substituted by ±Big), plus the
// bootstrapped value of the destination state (or the corresponding
// ±Big/zero sentinel contribution for a terminal transition).
func buildMatrix(g *graph.Graph, i int, value []float64) [3][3]float64 {
	var m [3][3]float64
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			c := g.Cost[i][a][b]
			switch {
			case math.IsInf(c, -1):
				m[a][b] = -Big
			case math.IsInf(c, 1):
				m[a][b] = Big
			default:
				m[a][b] = c
			}

			switch j := g.Next[i][a][b]; {
			case j >= 0:
				m[a][b] += value[j]
			case j == graph.AWIN:
				m[a][b] += -Big
			case j == graph.BWIN:
				m[a][b] += Big
			}
		}
	}
	return m
}

func (s *Agent) Rules() game.Rules { return s.rules }

// NextAction looks up (my, opp) in the reachable-state index and
// samples an action from its converged mixed strategy. If the pair
// is absent from the index (can't happen during ordinary self-play
// but may for hand-constructed states in tests), or the sampled
// action turns out illegal, it falls back to a uniformly random legal
// action.
func (s *Agent) NextAction(my, opp game.PlayerState) game.Action {
	idx, ok := s.g.Index(game.GameState{A: my, B: opp})
	if !ok {
		return my.RandomAllowedAction(s.rules, s.src)
	}
	p := s.strat[idx]
	a := game.Action(s.src.PickWeighted(p[game.Reload], p[game.Shield], p[game.Shoot]))
	if my.IsLegal(a, s.rules) {
		return a
	}
	return my.RandomAllowedAction(s.rules, s.src)
}

// LearnFromGame is a no-op: the Shapley agent's strategy is fixed at
// construction from the full state graph, not refined from play.
func (s *Agent) LearnFromGame(_ *game.Recording) {}

// Value returns the converged mean-payoff value at the given
// (my, opp) state, and whether that pair is in the reachable index.
func (s *Agent) Value(my, opp game.PlayerState) (float64, bool) {
	idx, ok := s.g.Index(game.GameState{A: my, B: opp})
	if !ok {
		return 0, false
	}
	return s.value[idx], true
}
