package stat

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"duel/game"
)

func TestTallyRecordConcurrently(t *testing.T) {
	Convey("Given many goroutines recording game outcomes concurrently", t, func() {
		tally := NewTally()
		var wg sync.WaitGroup
		outcomes := []game.Side{game.SideA, game.SideB, game.SideNone}
		gamesPerOutcome := 500

		for _, o := range outcomes {
			o := o
			for i := 0; i < gamesPerOutcome; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					tally.Record(o)
				}()
			}
		}
		wg.Wait()

		Convey("each counter reflects exactly the games recorded for it", func() {
			So(tally.WinsA.AtomicRead(), ShouldEqual, float64(gamesPerOutcome))
			So(tally.WinsB.AtomicRead(), ShouldEqual, float64(gamesPerOutcome))
			So(tally.Ties.AtomicRead(), ShouldEqual, float64(gamesPerOutcome))
			So(tally.Total(), ShouldEqual, float64(3*gamesPerOutcome))
		})

		Convey("WinRateA is A's share of total games", func() {
			So(tally.WinRateA(), ShouldAlmostEqual, 1.0/3.0, 1e-9)
		})
	})
}

func TestWinRateAWithNoGames(t *testing.T) {
	Convey("An empty Tally reports a zero win rate", t, func() {
		tally := NewTally()
		So(tally.WinRateA(), ShouldEqual, 0)
	})
}
