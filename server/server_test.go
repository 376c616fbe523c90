package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"duel/game"
	"duel/server/duelview"
	"duel/stat"
)

func TestNewServerBuildsRootView(t *testing.T) {
	Convey("Given a snapshot channel and a tally", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		snapshots := make(chan duelview.Snapshot)

		Convey("NewServer succeeds and serves a non-empty index page", func() {
			srv, err := NewServer(ctx, ":0", snapshots, stat.NewTally())
			So(err, ShouldBeNil)
			So(srv, ShouldNotBeNil)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			srv.serveIndex(rec, req)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.Len(), ShouldBeGreaterThan, 0)
			So(rec.Body.String(), ShouldContainSubstring, "resourcebars")
			So(rec.Body.String(), ShouldContainSubstring, "actionlog-content")
		})
	})
}

func TestServeMetricsRoute(t *testing.T) {
	Convey("Given a running tally", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		tally := stat.NewTally()
		tally.Record(game.SideA)

		srv, err := NewServer(ctx, ":0", make(chan duelview.Snapshot), tally)
		So(err, ShouldBeNil)

		Convey("the registry exposes duel_games_total", func() {
			mfs, err := srv.registry.Gather()
			So(err, ShouldBeNil)
			found := false
			for _, mf := range mfs {
				if mf.GetName() == "duel_games_total" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}
