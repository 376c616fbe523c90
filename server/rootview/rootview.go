// Package rootview builds the single page that hosts every duelview
// component, wiring their channels together and throttling the
// combined ele-update stream, exactly the composition
// server/root_view used for the teacher's racetrack views.
package rootview

import (
	"context"
	"html/template"
	"time"

	"duel/server/duelview"
	"duel/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

// RootView is the main page's index.html, the container for every
// view component and the wiring between their channels.
type RootView struct {
	views   []fastview.ViewComponent
	updates <-chan []fastview.EleUpdate
}

// NewRootView builds the duel's resource-bar and action-log views,
// sourced from snapshots, and fans their updates into one channel.
func NewRootView(
	ctx context.Context,
	snapshots <-chan duelview.Snapshot,
) (*RootView, error) {
	views, err := fastview.NewViewBuilder[duelview.Snapshot, duelview.DuelViewModel]().
		WithContext(ctx).
		WithModel(snapshots, duelview.Convert).
		WithView(func(done <-chan struct{}, model <-chan duelview.DuelViewModel) fastview.ViewComponent {
			return duelview.NewResourceBars(done, model)
		}).
		WithView(func(done <-chan struct{}, model <-chan duelview.DuelViewModel) fastview.ViewComponent {
			return duelview.NewActionLog(done, model)
		}).
		Build()
	if err != nil {
		return nil, err
	}

	return &RootView{
		views:   views,
		updates: fanIn(ctx.Done(), views),
	}, nil
}

// Updates returns the main ele-update channel for all the views.
func (rv *RootView) Updates() <-chan []fastview.EleUpdate {
	return rv.updates
}

// Parse builds the main page's template, with websocket bootstrap
// code, and returns its name.
func (rv *RootView) Parse(parent *template.Template) (name string, err error) {
	viewTemplates := make([]string, 0, len(rv.views))
	for _, vc := range rv.views {
		tname, parseErr := vc.Parse(parent)
		if parseErr != nil {
			return "", parseErr
		}
		viewTemplates = append(viewTemplates, tname)
	}

	var bodySpec string
	for _, tname := range viewTemplates {
		bodySpec += `{{ template "` + tname + `" . }}`
	}

	name = "mainpage"
	indexTemplate := `
	{{ define "` + name + `" }}
	<!DOCTYPE html>
	<html>
		<head>
			<link rel="icon" href="data:,">
			<script>
				const ws = new WebSocket("ws://" + location.host + "/ws");
				ws.onopen = function (event) {
					console.log("duel socket opened")
				};
				ws.onerror = function (event) {
					console.log('duel socket error: ', event);
				};
				ws.onmessage = function (event) {
					const items = JSON.parse(event.data)
					for (const update of items) {
						const ele = document.getElementById(update.EleId)
						if (!ele) { continue }
						for (const op of update.Ops) {
							if (op.Key === "textContent") {
								ele.textContent = op.Value;
							} else {
								ele.setAttribute(op.Key, op.Value)
							}
						}
					}
				}
			</script>
		</head>
		<body>
		` + bodySpec + `
		</body></html>
	{{ end }}
	`

	_, err = parent.Parse(indexTemplate)
	return
}

// fanIn aggregates the views' ele-update channels into a single
// channel and throttles its output.
func fanIn(done <-chan struct{}, views []fastview.ViewComponent) <-chan []fastview.EleUpdate {
	inputs := make([]<-chan []fastview.EleUpdate, len(views))
	for i, view := range views {
		inputs[i] = view.Updates()
	}
	return batchify(done, channerics.Merge(done, inputs...), time.Millisecond*20)
}

// batchify batches within rate before sending, overwriting
// previously received values for the same ele-id so only the latest
// value per element is forwarded.
func batchify(
	done <-chan struct{},
	source <-chan []fastview.EleUpdate,
	rate time.Duration,
) <-chan []fastview.EleUpdate {
	output := make(chan []fastview.EleUpdate)

	go func() {
		defer close(output)

		data := map[string]fastview.EleUpdate{}
		last := time.Now()
		for updates := range channerics.OrDone(done, source) {
			for _, update := range updates {
				data[update.EleId] = update
			}

			if time.Since(last) > rate && len(updates) > 0 {
				select {
				case output <- slicedVals(data):
					data = map[string]fastview.EleUpdate{}
					last = time.Now()
				case <-done:
					return
				}
			}
		}
	}()

	return output
}

func slicedVals[T1 comparable, T2 any](mp map[T1]T2) (sliced []T2) {
	for _, v := range mp {
		sliced = append(sliced, v)
	}
	return
}
