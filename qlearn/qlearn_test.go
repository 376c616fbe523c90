package qlearn

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"duel/agent"
	"duel/arena"
	"duel/game"
)

func TestTryNewRefusesRulesExceedingCap(t *testing.T) {
	Convey("Rules exceeding the 5-cap refuse construction", t, func() {
		r := game.Rules{StartLives: 6, MaxBullets: 5, MaxShields: 5, MaxTurns: 100}
		_, ok := TryNew(r, 1)
		So(ok, ShouldBeFalse)
	})
}

func TestConfidenceMonotoneAcrossTraining(t *testing.T) {
	Convey("Given a Q-learner training against a RandomAgent", t, func() {
		r, _ := game.NewRules(5, 5, 5, 1000)
		q, ok := TryNew(r, 1)
		So(ok, ShouldBeTrue)
		rnd := agent.NewRandomAgent(r, 2)

		Convey("confidence is monotone non-decreasing across games", func() {
			prev := q.Confidence()
			for i := 0; i < 500; i++ {
				_, err := arena.Play(q, rnd, nil)
				So(err, ShouldBeNil)
				cur := q.Confidence()
				So(cur, ShouldBeGreaterThanOrEqualTo, prev)
				prev = cur
			}
		})
	})
}

func TestConfidenceAfterLongTraining(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100000-game training run in -short mode")
	}
	Convey("After 100000 training games against RandomAgent on default rules", t, func() {
		r, _ := game.NewRules(5, 5, 5, 1000)
		q, ok := TryNew(r, 9)
		So(ok, ShouldBeTrue)
		rnd := agent.NewRandomAgent(r, 10)

		for i := 0; i < 100000; i++ {
			_, err := arena.Play(q, rnd, nil)
			So(err, ShouldBeNil)
		}

		Convey("at least 10% of table cells reach high confidence", func() {
			So(q.Confidence(), ShouldBeGreaterThanOrEqualTo, 10)
		})
	})
}

func TestQLearnAlwaysActsLegally(t *testing.T) {
	Convey("A Q-learner's fallback path never chooses an illegal action", t, func() {
		r, _ := game.NewRules(3, 3, 3, 200)
		q, _ := TryNew(r, 4)
		my := game.PlayerState{Lives: 2, Bullets: 0, Shields: 0}
		opp := game.NewPlayerState(r)
		for i := 0; i < 100; i++ {
			act := q.NextAction(my, opp)
			So(my.IsLegal(act, r), ShouldBeTrue)
		}
	})
}
