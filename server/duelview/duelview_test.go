package duelview

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"duel/game"
)

func testSnapshot(turn int) Snapshot {
	rules := game.DefaultRules()
	state := game.NewGameState(rules)
	state.A.Lives = 3
	state.A.Bullets = 1
	state.A.Shields = 2
	state.B.Lives = 5
	state.B.Bullets = 0
	state.B.Shields = 5
	return Snapshot{
		Rules:   rules,
		Turn:    turn,
		Before:  game.NewGameState(rules),
		After:   state,
		ActionA: game.Shoot,
		ActionB: game.Reload,
	}
}

func TestConvert(t *testing.T) {
	Convey("Given a turn snapshot", t, func() {
		snap := testSnapshot(3)

		Convey("Convert computes each side's resource percentages", func() {
			vm := Convert(snap)
			So(vm.Turn, ShouldEqual, 3)
			So(vm.A.Lives, ShouldEqual, 3)
			So(vm.A.LivesPct, ShouldEqual, 60)
			So(vm.A.BulletsPct, ShouldEqual, 20)
			So(vm.A.ShieldsPct, ShouldEqual, 40)
			So(vm.B.LivesPct, ShouldEqual, 100)
			So(vm.B.BulletsPct, ShouldEqual, 0)
			So(vm.B.ShieldsPct, ShouldEqual, 100)
		})

		Convey("Convert produces a readable log line naming both actions", func() {
			vm := Convert(snap)
			So(vm.LogLine, ShouldContainSubstring, "A=Shoot")
			So(vm.LogLine, ShouldContainSubstring, "B=Reload")
		})
	})
}

func TestResourceBarsPublishesWidthUpdates(t *testing.T) {
	Convey("Given a model channel feeding ResourceBars", t, func() {
		model := make(chan DuelViewModel)
		done := make(chan struct{})
		defer close(done)
		view := NewResourceBars(done, model)

		Convey("each update yields six bar ops", func() {
			go func() { model <- Convert(testSnapshot(1)) }()
			ops := <-view.Updates()
			So(len(ops), ShouldEqual, 6)
			ids := map[string]bool{}
			for _, op := range ops {
				ids[op.EleId] = true
			}
			So(ids["a-lives"], ShouldBeTrue)
			So(ids["b-shields"], ShouldBeTrue)
		})
	})
}

func TestActionLogKeepsRecentWindow(t *testing.T) {
	Convey("Given more turns than the log capacity", t, func() {
		model := make(chan DuelViewModel)
		done := make(chan struct{})
		defer close(done)
		view := NewActionLog(done, model)

		Convey("the published content never exceeds the capacity in lines", func() {
			var last []byte
			go func() {
				for i := 0; i < actionLogCapacity+5; i++ {
					model <- Convert(testSnapshot(i))
				}
			}()
			for i := 0; i < actionLogCapacity+5; i++ {
				ops := <-view.Updates()
				last = []byte(ops[0].Ops[0].Value)
			}
			lineCount := 1
			for _, b := range last {
				if b == '\n' {
					lineCount++
				}
			}
			So(lineCount, ShouldEqual, actionLogCapacity)
		})
	})
}
