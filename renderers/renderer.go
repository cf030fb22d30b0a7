package renderers

import (
	"fmt"
	"sync"

	"github.com/plotgd/plotgd"
)

// Renderer serializes one finalized page into an output document.
// Renderers may keep per-render state; [Info.New] returns a fresh
// instance for every render.
type Renderer interface {
	// Render serializes page with the document dimensions multiplied
	// by scale. The page itself is not modified.
	Render(page plotgd.Page, scale float64) ([]byte, error)
}

// Info describes one renderer: its registry id, the output metadata a
// host needs to serve the format, and the instance factory.
type Info struct {
	ID     string // unique registry key, e.g. "svg"
	Mime   string // MIME type of the output
	Ext    string // file extension including the dot
	Name   string // human-readable format name
	Type   string // category, "plot" or "data"
	Binary bool   // false when the output is text
	Descr  string // one-line description
	New    func() Renderer
}

// Registry maps renderer ids to their [Info]. The zero value is not
// usable; use NewRegistry. A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	infos map[string]Info
	order []string
}

// NewRegistry returns a registry preloaded with every built-in
// renderer, configured with opts.
func NewRegistry(opts ...Option) *Registry {
	cfg := applyOptions(opts)
	r := &Registry{infos: make(map[string]Info)}
	for _, info := range builtins(cfg) {
		r.infos[info.ID] = info
		r.order = append(r.order, info.ID)
	}
	return r
}

// Register adds a renderer under info.ID.
func (r *Registry) Register(info Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.infos[info.ID]; ok {
		return fmt.Errorf("renderers: register %q: %w", info.ID, ErrDuplicateRenderer)
	}
	r.infos[info.ID] = info
	r.order = append(r.order, info.ID)
	return nil
}

// Find returns the renderer registered under id.
func (r *Registry) Find(id string) (Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.infos[id]
	if !ok {
		return Info{}, fmt.Errorf("renderers: %q: %w", id, ErrRendererNotFound)
	}
	return info, nil
}

// List returns all registered renderers in registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		infos = append(infos, r.infos[id])
	}
	return infos
}

// builtins returns the built-in renderer set in presentation order.
func builtins(cfg config) []Info {
	return []Info{
		{
			ID:    "svg",
			Mime:  "image/svg+xml",
			Ext:   ".svg",
			Name:  "SVG",
			Type:  "plot",
			Descr: "Scalable Vector Graphics (SVG).",
			New:   func() Renderer { return newSVG(cfg) },
		},
		{
			ID:    "svgp",
			Mime:  "image/svg+xml",
			Ext:   ".svg",
			Name:  "Portable SVG",
			Type:  "plot",
			Descr: "SVG with document-unique ids, safe for HTML inlining.",
			New:   func() Renderer { return newSVGPortable(cfg) },
		},
		{
			ID:     "svgz",
			Mime:   "image/svg+xml",
			Ext:    ".svgz",
			Name:   "SVGZ",
			Type:   "plot",
			Binary: true,
			Descr:  "Compressed Scalable Vector Graphics (SVGZ).",
			New:    func() Renderer { return newSVGZ(cfg) },
		},
		{
			ID:     "svgzp",
			Mime:   "image/svg+xml",
			Ext:    ".svgz",
			Name:   "Portable SVGZ",
			Type:   "plot",
			Binary: true,
			Descr:  "Compressed portable SVG.",
			New:    func() Renderer { return newSVGZPortable(cfg) },
		},
		{
			ID:     "png",
			Mime:   "image/png",
			Ext:    ".png",
			Name:   "PNG",
			Type:   "plot",
			Binary: true,
			Descr:  "Portable Network Graphics (PNG).",
			New:    func() Renderer { return newPNG(cfg) },
		},
		{
			ID:    "png-base64",
			Mime:  "image/png;base64",
			Ext:   ".txt",
			Name:  "Base64 PNG",
			Type:  "plot",
			Descr: "PNG wrapped as a base64 data URI.",
			New:   func() Renderer { return newPNGBase64(cfg) },
		},
		{
			ID:     "pdf",
			Mime:   "application/pdf",
			Ext:    ".pdf",
			Name:   "PDF",
			Type:   "plot",
			Binary: true,
			Descr:  "Adobe Portable Document Format (PDF).",
			New:    func() Renderer { return newPDF(cfg) },
		},
		{
			ID:    "ps",
			Mime:  "application/postscript",
			Ext:   ".ps",
			Name:  "PS",
			Type:  "plot",
			Descr: "PostScript (PS).",
			New:   func() Renderer { return newPS(cfg) },
		},
		{
			ID:    "eps",
			Mime:  "application/postscript",
			Ext:   ".eps",
			Name:  "EPS",
			Type:  "plot",
			Descr: "Encapsulated PostScript (EPS).",
			New:   func() Renderer { return newEPS(cfg) },
		},
		{
			ID:     "tiff",
			Mime:   "image/tiff",
			Ext:    ".tiff",
			Name:   "TIFF",
			Type:   "plot",
			Binary: true,
			Descr:  "Tagged Image File Format (TIFF).",
			New:    func() Renderer { return newTIFF(cfg) },
		},
		{
			ID:    "json",
			Mime:  "application/json",
			Ext:   ".json",
			Name:  "JSON",
			Type:  "data",
			Descr: "Plot data serialized to JSON.",
			New:   func() Renderer { return newJSON(cfg) },
		},
	}
}
