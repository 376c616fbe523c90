package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"duel/agent"
	"duel/arena"
	"duel/game"
)

func TestPlayRecordsOneAppendPerTurn(t *testing.T) {
	Convey("Given two random agents on short-fused rules", t, func() {
		r, err := game.NewRules(1, 1, 1, 50)
		So(err, ShouldBeNil)

		a := agent.NewRandomAgent(r, 1)
		b := agent.NewRandomAgent(r, 2)
		rec := game.NewRecording(r)

		winner, err := arena.Play(a, b, rec)

		Convey("no rules mismatch error occurs", func() {
			So(err, ShouldBeNil)
		})
		Convey("the recording has at most MaxTurns turns, at least one", func() {
			So(len(rec.Turns), ShouldBeGreaterThan, 0)
			So(len(rec.Turns), ShouldBeLessThanOrEqualTo, r.MaxTurns)
		})
		Convey("a winner was recorded (possibly SideNone)", func() {
			So(rec.HasResult(), ShouldBeTrue)
			_ = winner
		})
	})
}

func TestPlayRejectsRulesMismatch(t *testing.T) {
	Convey("Given two agents built with different rules", t, func() {
		rA, _ := game.NewRules(5, 5, 5, 100)
		rB, _ := game.NewRules(3, 3, 3, 100)
		a := agent.NewRandomAgent(rA, 1)
		b := agent.NewRandomAgent(rB, 2)

		_, err := arena.Play(a, b, nil)

		Convey("Play fails with ErrRulesMismatch", func() {
			So(err, ShouldEqual, arena.ErrRulesMismatch)
		})
	})
}

func TestPlayWithoutRecordingStillReturnsWinner(t *testing.T) {
	Convey("Given no recording slot", t, func() {
		r, _ := game.NewRules(2, 2, 2, 100)
		a := agent.NewRandomAgent(r, 5)
		b := agent.NewRandomAgent(r, 6)

		winner, err := arena.Play(a, b, nil)

		So(err, ShouldBeNil)
		So(winner, ShouldBeIn, []game.Side{game.SideA, game.SideB, game.SideNone})
	})
}
