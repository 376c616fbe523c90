// Package config loads duel training/tournament parameters from a
// YAML document, the same two-stage viper-then-yaml.v3 decode the
// teacher's reinforcement package uses: viper resolves file discovery
// (and, if wired later, environment overlays), then a strict
// yaml.Unmarshal decodes the typed struct.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// OuterConfig is the document envelope every config file carries:
// `{kind: "duel", def: {...}}`. Only Def is inspected here; Kind is a
// human-facing discriminator in case this file is ever shared with an
// unrelated config consumer in the same directory.
type OuterConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// RulesConfig mirrors game.Rules for YAML decoding.
type RulesConfig struct {
	StartLives int `yaml:"startlives"`
	MaxBullets int `yaml:"maxbullets"`
	MaxShields int `yaml:"maxshields"`
	MaxTurns   int `yaml:"maxturns"`
}

// SeedsConfig carries the RNG seeds for each side's agent.
type SeedsConfig struct {
	AgentA int `yaml:"agenta"`
	AgentB int `yaml:"agentb"`
}

// ServerConfig carries the visualization HTTP server's bind address.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// HyperParameter is a single named floating-point hyperparameter, the
// same key/val shape the teacher's config carries.
type HyperParameter struct {
	Key string  `yaml:"key"`
	Val float64 `yaml:"val"`
}

// TrainingConfig is the full decoded duel configuration: which agent
// kind plays each side, the duel Rules, RNG seeds, hyperparameter
// overrides, the visualization server's address, and how many rounds
// a tournament runs. The yaml tags are lowercase because viper
// lowercases every key it reads before the yaml stage of FromYaml sees
// them; the camelCase keys in config files still match.
type TrainingConfig struct {
	AgentA          string           `yaml:"agenta"`
	AgentB          string           `yaml:"agentb"`
	Rules           RulesConfig      `yaml:"rules"`
	Seeds           SeedsConfig      `yaml:"seeds"`
	Server          ServerConfig     `yaml:"server"`
	TrainingRounds  int              `yaml:"trainingrounds"`
	TournamentGames int              `yaml:"tournamentgames"`
	HyperParams     []HyperParameter `yaml:"hyperparams"`
}

// GetHyperParamOrDefault looks up a named hyperparameter override, or
// returns defaultVal if cfg carries none by that name. Q-learning's
// learning rate/discount/confidenceThreshold/scoreMargin and Shapley's
// MaxIterations are fixed constants in their own packages, not read
// through here; only the BiasedRandomAgent's reload/shield/shoot
// weights (see cmd/duel/main.go's buildAgent) are overridable this way.
func (cfg *TrainingConfig) GetHyperParamOrDefault(param string, defaultVal float64) float64 {
	for _, kvp := range cfg.HyperParams {
		if kvp.Key == param {
			return kvp.Val
		}
	}
	return defaultVal
}

// FromYaml loads a TrainingConfig from the envelope document at path.
func FromYaml(path string) (*TrainingConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	outer := &OuterConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return nil, err
	}

	spec, err := yaml.Marshal(outer.Def)
	if err != nil {
		return nil, err
	}

	inner := &TrainingConfig{}
	if err := yaml.Unmarshal(spec, inner); err != nil {
		return nil, err
	}
	return inner, nil
}

// Default returns a TrainingConfig with the repository's sensible
// out-of-the-box defaults: default Rules, a Random vs. Shapley duel,
// and the visualization server on :8080.
func Default() *TrainingConfig {
	return &TrainingConfig{
		AgentA: "random",
		AgentB: "shapley",
		Rules: RulesConfig{
			StartLives: 5,
			MaxBullets: 5,
			MaxShields: 5,
			MaxTurns:   1000,
		},
		Seeds:           SeedsConfig{AgentA: 1, AgentB: 2},
		Server:          ServerConfig{Addr: ":8080"},
		TrainingRounds:  100000,
		TournamentGames: 1000,
	}
}
