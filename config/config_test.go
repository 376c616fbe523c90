package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const testYaml = `
kind: duel
def:
  agentA: random
  agentB: qlearn
  rules:
    startLives: 5
    maxBullets: 5
    maxShields: 5
    maxTurns: 1000
  seeds:
    agentA: 1
    agentB: 2
  server:
    addr: ":9090"
  trainingRounds: 50000
  tournamentGames: 500
  hyperParams:
    - key: alpha
      val: 0.2
`

func TestFromYaml(t *testing.T) {
	Convey("Given a duel config document on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "duel.yaml")
		So(os.WriteFile(path, []byte(testYaml), 0o644), ShouldBeNil)

		cfg, err := FromYaml(path)

		Convey("it decodes without error", func() {
			So(err, ShouldBeNil)
		})
		Convey("the agent selectors and rules are decoded correctly", func() {
			So(cfg.AgentA, ShouldEqual, "random")
			So(cfg.AgentB, ShouldEqual, "qlearn")
			So(cfg.Rules.StartLives, ShouldEqual, 5)
			So(cfg.Rules.MaxTurns, ShouldEqual, 1000)
			So(cfg.Server.Addr, ShouldEqual, ":9090")
			So(cfg.TrainingRounds, ShouldEqual, 50000)
		})
		Convey("GetHyperParamOrDefault returns the override when present", func() {
			So(cfg.GetHyperParamOrDefault("alpha", 0.1), ShouldEqual, 0.2)
		})
		Convey("GetHyperParamOrDefault falls back for an absent key", func() {
			So(cfg.GetHyperParamOrDefault("gamma", 0.1), ShouldEqual, 0.1)
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Default returns a usable out-of-the-box configuration", t, func() {
		cfg := Default()
		So(cfg.Rules.StartLives, ShouldEqual, 5)
		So(cfg.Server.Addr, ShouldEqual, ":8080")
		So(cfg.TrainingRounds, ShouldBeGreaterThan, 0)
	})
}
