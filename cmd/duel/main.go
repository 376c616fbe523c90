/*
duel runs a Johnny Bang-bang tournament between two configurable
agents (random, biased-random, tabular Q-learning, or Shapley value
iteration), streams the live resource/action state of each round to a
websocket visualization, and exposes a prometheus /metrics endpoint.
The RL methods here are not optimized for anything beyond
demonstrating each one operating correctly against the same kernel.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"duel/agent"
	"duel/arena"
	"duel/config"
	"duel/game"
	"duel/qlearn"
	"duel/server"
	"duel/server/duelview"
	"duel/shapley"
	"duel/stat"
	"duel/train"
)

var (
	configPath *string
	debug      *bool
	nworkers   *int
	host       *string
	port       *string
)

func init() {
	configPath = flag.String("config", "./config.yaml", "path to the duel config YAML file")
	debug = flag.Bool("debug", false, "enable debug-level logging")
	nworkers = flag.Int("nworkers", runtime.NumCPU(), "number of concurrent tournament rounds in flight")
	host = flag.String("host", "", "the host ip")
	port = flag.String("port", "", "the visualization server port; overrides config.server.addr when set")
	flag.Parse()
}

func loadConfig() *config.TrainingConfig {
	cfg, err := config.FromYaml(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("falling back to built-in defaults")
		return config.Default()
	}
	return cfg
}

// buildAgent constructs the agent named by kind, running whatever
// construction-time work that kind requires (Q-learning's self-play
// rounds, Shapley's graph build + value iteration) before returning.
func buildAgent(ctx context.Context, kind string, rules game.Rules, seed int, cfg *config.TrainingConfig) (agent.Agent, error) {
	switch kind {
	case "random":
		return agent.NewRandomAgent(rules, seed), nil
	case "biased":
		wReload := cfg.GetHyperParamOrDefault("biasReload", 1.0)
		wShield := cfg.GetHyperParamOrDefault("biasShield", 1.0)
		wShoot := cfg.GetHyperParamOrDefault("biasShoot", 1.0)
		return agent.NewBiasedRandomAgent(rules, seed, wReload, wShield, wShoot), nil
	case "qlearn":
		ag, ok := qlearn.TryNew(rules, seed)
		if !ok {
			return nil, fmt.Errorf("qlearn: rules %+v exceed the table cap", rules)
		}
		rounds := cfg.TrainingRounds
		if rounds <= 0 {
			rounds = 100000
		}
		if err := train.SelfPlay(ctx, ag, seed+1, rounds, nil); err != nil {
			return nil, fmt.Errorf("qlearn self-play: %w", err)
		}
		return ag, nil
	case "shapley":
		ag, ok := shapley.TryNew(rules, seed)
		if !ok {
			return nil, fmt.Errorf("shapley: rules %+v exceed the table cap", rules)
		}
		return ag, nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

func rulesFromConfig(cfg *config.TrainingConfig) (game.Rules, error) {
	return game.NewRules(
		cfg.Rules.StartLives,
		cfg.Rules.MaxBullets,
		cfg.Rules.MaxShields,
		cfg.Rules.MaxTurns,
	)
}

// runTournament plays games rounds between a and b, up to nworkers
// rounds in flight at a time, tallying outcomes and streaming each
// round's per-turn snapshots to snapshots for visualization. Every
// round shares a and b, so the games themselves are played one at a
// time under a mutex; only the snapshot streaming overlaps. It
// rate-limits rounds so a fast tournament doesn't flood the
// visualization websocket.
func runTournament(
	ctx context.Context,
	a, b agent.Agent,
	games, nworkers int,
	tally *stat.Tally,
	snapshots chan<- duelview.Snapshot,
	logger zerolog.Logger,
) error {
	limiter := rate.NewLimiter(rate.Every(20*time.Millisecond), 1)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(nworkers)
	var playMu sync.Mutex

	for i := 0; i < games; i++ {
		group.Go(func() error {
			if err := limiter.Wait(groupCtx); err != nil {
				return err
			}

			roundID := uuid.New()
			rec := game.NewRecording(a.Rules())
			playMu.Lock()
			winner, err := arena.Play(a, b, rec)
			playMu.Unlock()
			if err != nil {
				return err
			}
			tally.Record(winner)
			logger.Debug().Str("round", roundID.String()).Str("winner", winnerName(winner)).Msg("round complete")

			turn := 0
			rec.Replay(func(step game.ReplayStep) {
				turn++
				snap := duelview.Snapshot{
					Rules:   a.Rules(),
					Turn:    turn,
					Before:  step.Before,
					After:   step.After,
					ActionA: step.ActionA,
					ActionB: step.ActionB,
				}
				select {
				case snapshots <- snap:
				case <-groupCtx.Done():
				}
			})
			return nil
		})
	}

	return group.Wait()
}

func winnerName(side game.Side) string {
	switch side {
	case game.SideA:
		return "A"
	case game.SideB:
		return "B"
	default:
		return "tie"
	}
}

func runApp() error {
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := loadConfig()

	rules, err := rulesFromConfig(cfg)
	if err != nil {
		return err
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	log.Info().Str("agentA", cfg.AgentA).Str("agentB", cfg.AgentB).Msg("constructing agents")
	agentA, err := buildAgent(appCtx, cfg.AgentA, rules, cfg.Seeds.AgentA, cfg)
	if err != nil {
		return fmt.Errorf("building agent A: %w", err)
	}
	agentB, err := buildAgent(appCtx, cfg.AgentB, rules, cfg.Seeds.AgentB, cfg)
	if err != nil {
		return fmt.Errorf("building agent B: %w", err)
	}

	tally := stat.NewTally()
	snapshots := make(chan duelview.Snapshot, 64)

	addr := cfg.Server.Addr
	if *host != "" || *port != "" {
		addr = *host + ":" + *port
	}

	srv, err := server.NewServer(appCtx, addr, snapshots, tally)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	games := cfg.TournamentGames
	if games <= 0 {
		games = 1000
	}

	go func() {
		if err := runTournament(appCtx, agentA, agentB, games, *nworkers, tally, snapshots, log.Logger); err != nil {
			log.Error().Err(err).Msg("tournament ended with an error")
		}
	}()

	return srv.Serve()
}

func main() {
	if err := runApp(); err != nil {
		log.Fatal().Err(err).Msg("duel exited")
	}
}
