package duelview

import (
	"html/template"
	"strings"

	"duel/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

const actionLogCapacity = 20

// ActionLog keeps the most recent turns' actions and republishes the
// whole window as a single textContent update, so a dropped
// intermediate update never loses a line.
type ActionLog struct {
	id      string
	updates <-chan []fastview.EleUpdate
}

// NewActionLog returns the ActionLog view, subscribed to model.
func NewActionLog(
	done <-chan struct{},
	model <-chan DuelViewModel,
) fastview.ViewComponent {
	al := &ActionLog{id: "actionlog"}
	lines := make([]string, 0, actionLogCapacity)
	al.updates = channerics.Convert(done, model, func(vm DuelViewModel) []fastview.EleUpdate {
		lines = append(lines, vm.LogLine)
		if len(lines) > actionLogCapacity {
			lines = lines[len(lines)-actionLogCapacity:]
		}
		return []fastview.EleUpdate{
			{
				EleId: "actionlog-content",
				Ops: []fastview.Op{
					{Key: "textContent", Value: strings.Join(lines, "\n")},
				},
			},
		}
	})
	return al
}

func (al *ActionLog) Updates() <-chan []fastview.EleUpdate {
	return al.updates
}

// Parse defines the actionlog template: a scrolling preformatted block.
func (al *ActionLog) Parse(t *template.Template) (name string, err error) {
	name = al.id
	_, err = t.Parse(`{{ define "` + name + `" }}
	<pre id="actionlog-content" style="height:200px; width:400px; overflow-y:scroll; border:1px solid gray; font-family:monospace;"></pre>
	{{ end }}`)
	return
}
