package duelview

import (
	"fmt"
	"html/template"
	"strings"

	"duel/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

// ResourceBars renders each side's lives/bullets/shields as three
// horizontal svg bars, updated in place via width attribute ops.
type ResourceBars struct {
	id      string
	updates <-chan []fastview.EleUpdate
}

// NewResourceBars returns the ResourceBars view, subscribed to model.
func NewResourceBars(
	done <-chan struct{},
	model <-chan DuelViewModel,
) fastview.ViewComponent {
	rb := &ResourceBars{id: "resourcebars"}
	rb.updates = channerics.Convert(done, model, rb.onUpdate)
	return rb
}

func (rb *ResourceBars) Updates() <-chan []fastview.EleUpdate {
	return rb.updates
}

const barWidth = 200

func (rb *ResourceBars) onUpdate(vm DuelViewModel) (ops []fastview.EleUpdate) {
	ops = append(ops, barOps("a-lives", vm.A.LivesPct)...)
	ops = append(ops, barOps("a-bullets", vm.A.BulletsPct)...)
	ops = append(ops, barOps("a-shields", vm.A.ShieldsPct)...)
	ops = append(ops, barOps("b-lives", vm.B.LivesPct)...)
	ops = append(ops, barOps("b-bullets", vm.B.BulletsPct)...)
	ops = append(ops, barOps("b-shields", vm.B.ShieldsPct)...)
	return
}

func barOps(eleID string, pct int) []fastview.EleUpdate {
	return []fastview.EleUpdate{
		{
			EleId: eleID,
			Ops: []fastview.Op{
				{Key: "width", Value: fmt.Sprintf("%d", barWidth*pct/100)},
			},
		},
	}
}

// Parse defines the resourcebars template: two columns of three bars
// each, one per side.
func (rb *ResourceBars) Parse(t *template.Template) (name string, err error) {
	name = rb.id
	var columns strings.Builder
	for _, side := range []string{"a", "b"} {
		columns.WriteString(`<div>`)
		for _, stat := range []string{"lives", "bullets", "shields"} {
			columns.WriteString(fmt.Sprintf(
				`<div>%s-%s: <svg height="14" width="%d"><rect id="%s-%s" height="14" width="0" fill="steelblue"/></svg></div>`,
				side, stat, barWidth, side, stat))
		}
		columns.WriteString(`</div>`)
	}

	_, err = t.Parse(`{{ define "` + name + `" }}
	<div id="resourcebars" style="display:flex; gap:40px; font-family:monospace;">
	` + columns.String() + `
	</div>
	{{ end }}`)
	return
}
