// Package device is the page-management layer between a host graphics
// environment and the plot stores.
//
// A Device owns the live [plotgd.PageBuilder], the history store, the
// renderer registry and the consumer side of the task bridge. The host
// starts a plot with [Device.NewPage], appends primitives through
// [Device.Builder], and clients render any stored plot by id through
// [Device.Render].
//
// A Device is confined to the goroutine that runs [Device.Run]; other
// goroutines reach it through [Device.Submit]. Apart from Submit, no
// method is safe for concurrent use.
package device

import (
	"context"
	"maps"

	"github.com/plotgd/plotgd"
	"github.com/plotgd/plotgd/bridge"
	"github.com/plotgd/plotgd/fonts"
	"github.com/plotgd/plotgd/history"
	"github.com/plotgd/plotgd/renderers"
)

// PlotID identifies one plot for the lifetime of a device. Ids are
// opaque, unique and monotonically increasing; they stay valid while
// slot numbers around them empty out.
type PlotID int64

// State is the bulk device state clients poll for changes.
type State struct {
	// HSize is the number of stored plots.
	HSize int

	// Upid increases whenever the plot list changes.
	Upid int

	// Active reports whether the device is still open for drawing.
	Active bool
}

// Device owns the live page and its stores.
type Device struct {
	params   Params
	library  *fonts.Library
	registry *renderers.Registry
	store    *history.Store
	queue    *bridge.Queue

	builder *plotgd.PageBuilder
	ids     []PlotID // slot i+1 holds ids[i]
	live    int      // slot of the page under construction, 0 when none
	nextID  PlotID
	upid    int
	closed  bool
}

// New returns a device configured with opts. The renderer registry is
// wired to a font library carrying the device's alias table.
func New(opts ...Option) *Device {
	params := defaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	library := fonts.NewLibrary()
	if len(params.Aliases) > 0 {
		library.SetAliases(params.Aliases)
	}

	d := &Device{
		params:   params,
		library:  library,
		registry: renderers.NewRegistry(renderers.WithFontLibrary(library)),
		queue:    bridge.NewQueue(),
		nextID:   1,
	}
	d.store = history.New(history.Hooks{
		Snapshot: d.snapshot,
		Replay:   d.replay,
	})
	return d
}

// Params returns the device parameters. The alias table is copied.
func (d *Device) Params() Params {
	p := d.params
	p.Aliases = maps.Clone(p.Aliases)
	return p
}

// Builder returns the builder of the page under construction, nil
// before the first NewPage and after Close.
func (d *Device) Builder() *plotgd.PageBuilder {
	return d.builder
}

// History returns the device's plot store.
func (d *Device) History() *history.Store {
	return d.store
}

// Renderers returns the device's renderer registry.
func (d *Device) Renderers() *renderers.Registry {
	return d.registry
}

// RendererInfos lists the available output formats.
func (d *Device) RendererInfos() []renderers.Info {
	return d.registry.List()
}

// Fonts returns the font library renderers resolve text through.
func (d *Device) Fonts() *fonts.Library {
	return d.library
}

// NewPage finishes the current page and starts the next one, returning
// its plot id. An untouched current page is reused instead of
// stacking up blank plots, keeping its id.
func (d *Device) NewPage() PlotID {
	if d.closed {
		return 0
	}
	if d.live != 0 && d.builder != nil && d.builder.Empty() {
		id := d.ids[d.live-1]
		d.builder = plotgd.NewPageBuilder(int32(id), d.params.Width, d.params.Height, d.params.Background)
		d.store.Put(d.live, d.builder.Finish())
		return id
	}

	d.sync()
	id := d.nextID
	d.nextID++
	d.ids = append(d.ids, id)
	d.live = len(d.ids)
	d.builder = plotgd.NewPageBuilder(int32(id), d.params.Width, d.params.Height, d.params.Background)
	d.store.Put(d.live, d.builder.Finish())
	d.upid++
	return id
}

// Close finishes the current page and stops accepting drawing. Stored
// plots remain renderable; the task bridge is shut down.
func (d *Device) Close() {
	if d.closed {
		return
	}
	d.sync()
	d.live = 0
	d.builder = nil
	d.closed = true
	d.queue.Close()
}

// State returns the bulk device state.
func (d *Device) State() State {
	return State{HSize: d.store.Len(), Upid: d.upid, Active: !d.closed}
}

// PlotIndex returns the history slot of a plot id.
func (d *Device) PlotIndex(plot PlotID) (int, error) {
	slot := d.slotOf(plot)
	if slot == 0 {
		return 0, ErrPlotNotFound
	}
	return slot, nil
}

// Query returns up to max(limit, 0) plot ids, newest first, skipping
// the offset newest ones, together with the current state.
func (d *Device) Query(offset, limit int) ([]PlotID, State) {
	if limit < 0 {
		limit = 0
	}
	var ids []PlotID
	for slot := len(d.ids); slot >= 1 && len(ids) < limit; slot-- {
		if _, err := d.store.Get(slot); err != nil {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		ids = append(ids, d.ids[slot-1])
	}
	return ids, d.State()
}

// Render serializes the stored plot through the renderer registered
// under rendererID. The output scale is zoom; a negative width or
// height resets zoom to 1, mirroring the host's "keep device size"
// convention. The recorded page geometry is authoritative: without the
// host's drawing callback no re-layout to a new logical size is
// possible, so width and height beyond the zoom clamp are ignored.
func (d *Device) Render(rendererID string, plot PlotID, width, height, zoom float64) ([]byte, error) {
	if width < 0 || height < 0 {
		zoom = 1
	}
	if zoom <= 0 {
		zoom = 1
	}
	info, err := d.registry.Find(rendererID)
	if err != nil {
		return nil, err
	}
	slot := d.slotOf(plot)
	if slot == 0 {
		return nil, ErrPlotNotFound
	}
	d.sync()
	page, err := d.store.Get(slot)
	if err != nil {
		return nil, ErrPlotNotFound
	}
	return info.New().Render(page, zoom)
}

// RemoveIndex empties the given history slot. It reports whether the
// slot held a plot.
func (d *Device) RemoveIndex(slot int) bool {
	if !d.store.Remove(slot) {
		return false
	}
	if slot == d.live {
		d.live = 0
		d.builder = nil
	}
	d.upid++
	return true
}

// RemoveID removes the plot with the given id.
func (d *Device) RemoveID(plot PlotID) error {
	slot := d.slotOf(plot)
	if slot == 0 {
		return ErrPlotNotFound
	}
	d.RemoveIndex(slot)
	return nil
}

// Clear removes every stored plot and restarts the slot numbering.
// Plot ids are never reused. It reports whether anything was removed.
func (d *Device) Clear() bool {
	had := d.store.Len() > 0
	d.store.Clear()
	d.ids = nil
	d.live = 0
	d.builder = nil
	if had {
		d.upid++
	}
	return had
}

// Run executes tasks submitted through Submit on the calling
// goroutine until ctx is canceled or the device is closed.
func (d *Device) Run(ctx context.Context) {
	d.queue.Run(ctx)
}

// Submit hands a task to the device goroutine from anywhere.
func (d *Device) Submit(task bridge.Task) *bridge.Result {
	return d.queue.Submit(task)
}

// sync writes the page under construction into its history slot.
// Builder snapshots stay valid while drawing continues, so syncing is
// cheap and repeatable.
func (d *Device) sync() {
	if d.live == 0 || d.builder == nil {
		return
	}
	d.store.Put(d.live, d.builder.Finish())
}

// slotOf maps a plot id to its occupied slot, 0 when the id is unknown
// or its page was removed.
func (d *Device) slotOf(plot PlotID) int {
	for i, id := range d.ids {
		if id != plot {
			continue
		}
		if _, err := d.store.Get(i + 1); err != nil {
			return 0
		}
		return i + 1
	}
	return 0
}

// snapshot captures the page under construction for the history hooks.
func (d *Device) snapshot() (plotgd.Page, bool) {
	if d.live == 0 || d.builder == nil || d.builder.Empty() {
		return plotgd.Page{}, false
	}
	return d.builder.Finish(), true
}

// replay re-appends a stored page's calls onto the live builder. The
// builder keeps its own size, so replaying onto a resized page leaves
// the full-page clip covering the new bounds.
func (d *Device) replay(p plotgd.Page) {
	if d.builder == nil {
		return
	}
	b := d.builder
	b.Clear()
	b.SetFill(p.Fill)
	current := int32(0)
	for _, dc := range p.DrawCalls {
		if id := dc.Clip(); id != current {
			current = id
			for _, cp := range p.Clips {
				if cp.ID == id {
					b.SetClip(cp.Rect)
					break
				}
			}
		}
		appendCall(b, dc)
	}
}

// appendCall re-records one draw call. The draw-call set is closed, so
// the switch is exhaustive.
func appendCall(b *plotgd.PageBuilder, dc plotgd.DrawCall) {
	switch t := dc.(type) {
	case *plotgd.TextCall:
		b.Text(t.Col, t.Pos, t.Str, t.Rot, t.Hadj, t.Font)
	case *plotgd.CircleCall:
		b.Circle(t.Line, t.Fill, t.Center, t.Radius)
	case *plotgd.LineCall:
		b.Line(t.Line, t.From, t.To)
	case *plotgd.RectCall:
		b.Rect(t.Line, t.Fill, t.Rect)
	case *plotgd.PolylineCall:
		b.Polyline(t.Line, t.Points)
	case *plotgd.PolygonCall:
		b.Polygon(t.Line, t.Fill, t.Points)
	case *plotgd.PathCall:
		b.Path(t.Line, t.Fill, t.Points, t.NPer, t.Rule)
	case *plotgd.RasterCall:
		b.Raster(t.Raster, t.Rect, t.Rot, t.Interpolate)
	}
}
