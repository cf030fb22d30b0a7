package renderers

import "github.com/plotgd/plotgd"

// walkPage drives a renderer over a page in the shared emission order:
// activate the page-covering first clip, then visit draw calls in
// recorded order, activating the matching clip at every id change.
// Calls with equal ids form contiguous runs, so one activation per run
// suffices.
func walkPage(page plotgd.Page, activate func(plotgd.Clip), visit func(plotgd.DrawCall)) {
	current := page.Clips[0]
	activate(current)
	for _, dc := range page.DrawCalls {
		if id := dc.Clip(); id != current.ID {
			current = findClip(page.Clips, id)
			activate(current)
		}
		visit(dc)
	}
}

// findClip returns the clip with the given id, or a zero-rect clip when
// the page does not contain it. Recorded calls always reference an
// existing clip, so the fallback is never hit on a well-formed page.
func findClip(clips []plotgd.Clip, id int32) plotgd.Clip {
	for _, c := range clips {
		if c.ID == id {
			return c
		}
	}
	return plotgd.Clip{ID: id}
}
