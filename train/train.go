// Package train drives self-play: the sequential training round
// capi's create_player(QLEARNER, ...) runs before returning, plus a
// genuinely concurrent worker/estimator rollout generator grounded on
// the teacher's alphaMonteCarloVanillaTrain, for batch pre-training or
// tournament-scale experience generation.
package train

import (
	"context"

	channerics "github.com/niceyeti/channerics/channels"

	"duel/agent"
	"duel/arena"
	"duel/game"
)

// ProgressFunc is invoked once per completed training episode. It is
// synchronous and should return quickly; ctx lets the caller cancel
// training without it blocking.
type ProgressFunc func(ctx context.Context, episode int)

// SelfPlay runs rounds games between ag and a fresh RandomAgent
// seeded with seed, calling ag.LearnFromGame after every game (via
// arena.Play). This is the literal behavior capi's create_player
// documents for QLEARNER construction: ag owns its own mutable state
// and is touched by exactly one goroutine throughout, so no
// synchronization is required.
func SelfPlay(ctx context.Context, ag agent.Agent, seed, rounds int, progressFn ProgressFunc) error {
	opponent := agent.NewRandomAgent(ag.Rules(), seed)
	rec := game.NewRecording(ag.Rules())

	for i := 0; i < rounds; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := arena.Play(ag, opponent, rec); err != nil {
			return err
		}
		if progressFn != nil {
			progressFn(ctx, i+1)
		}
	}
	return nil
}

// Generate fans nworkers independent rollout goroutines, each playing
// a throwaway RandomAgent against another throwaway RandomAgent
// seeded deterministically from seed and the worker index, into one
// merged channel of completed recordings via channerics.Merge. No
// shared Agent is ever touched by more than one goroutine: the
// concurrency here is in experience generation, not in updating any
// single agent's table, exactly the division of labor the teacher's
// agent_worker/estimator split enforces between episode generation
// and state-value updates.
func Generate(ctx context.Context, rules game.Rules, seed, nworkers int) <-chan *game.Recording {
	workers := make([]<-chan *game.Recording, 0, nworkers)
	for w := 0; w < nworkers; w++ {
		workers = append(workers, rollout(ctx, rules, seed+2*w, seed+2*w+1))
	}
	return channerics.Merge(ctx.Done(), workers...)
}

func rollout(ctx context.Context, rules game.Rules, seedA, seedB int) <-chan *game.Recording {
	out := make(chan *game.Recording)
	go func() {
		defer close(out)
		a := agent.NewRandomAgent(rules, seedA)
		b := agent.NewRandomAgent(rules, seedB)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			rec := game.NewRecording(rules)
			if _, err := arena.Play(a, b, rec); err != nil {
				return
			}
			select {
			case out <- rec:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Estimate serially drains recordings, calling ag.LearnFromGame for
// each one from both perspectives (the game is symmetric, and
// off-policy Q-learning can learn from either side's replay), and
// reports progress through progressFn. It returns once recordings is
// closed or ctx is cancelled.
func Estimate(ctx context.Context, ag agent.Agent, recordings <-chan *game.Recording, progressFn ProgressFunc) {
	count := 0
	for rec := range recordings {
		select {
		case <-ctx.Done():
			return
		default:
		}
		ag.LearnFromGame(rec)
		ag.LearnFromGame(rec.Swapped())
		count++
		if progressFn != nil {
			progressFn(ctx, count)
		}
	}
}
