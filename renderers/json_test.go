package renderers

import (
	"encoding/json"
	"testing"

	"github.com/plotgd/plotgd"
)

func TestJSONDocument(t *testing.T) {
	got, err := newJSON(config{}).Render(rectPage(), 1)
	if err != nil {
		t.Fatalf("json render error: %v", err)
	}
	want := `{
 "id": "1", "w": 200.00, "h": 150.00, "scale": 1.00, "fill": "#FFFFFF",
 "clips": [
  { "id": 0, "x": 0.00, "y": 0.00, "w": 200.00, "h": 150.00 }
 ],
 "draw_calls": [
  { "type": "rect", "clip_id": 0, "x": 10.00, "y": 20.00, "w": 50.00, "h": 30.00, "line": { "col": "#000000", "lwd": 1.00, "lty": 0, "lend": 1, "ljoin": 1, "lmitre": 10 } }
 ]
}`
	if string(got) != want {
		t.Errorf("json document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSONParses(t *testing.T) {
	page := samplerPage()
	out, err := newJSON(config{}).Render(page, 2)
	if err != nil {
		t.Fatalf("json render error: %v", err)
	}

	var doc struct {
		ID    string  `json:"id"`
		Scale float64 `json:"scale"`
		Clips []struct {
			ID int `json:"id"`
		} `json:"clips"`
		DrawCalls []struct {
			Type   string `json:"type"`
			ClipID int    `json:"clip_id"`
		} `json:"draw_calls"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if doc.ID != "2" {
		t.Errorf("id = %q, want %q", doc.ID, "2")
	}
	if doc.Scale != 2 {
		t.Errorf("scale = %v, want 2", doc.Scale)
	}
	if len(doc.Clips) != len(page.Clips) {
		t.Errorf("clips = %d, want %d", len(doc.Clips), len(page.Clips))
	}
	if len(doc.DrawCalls) != len(page.DrawCalls) {
		t.Errorf("draw_calls = %d, want %d", len(doc.DrawCalls), len(page.DrawCalls))
	}

	// The path and text calls fall after the clip change.
	types := make(map[string]int)
	for _, dc := range doc.DrawCalls {
		types[dc.Type]++
		if dc.Type == "path" && dc.ClipID != 1 {
			t.Errorf("path clip_id = %d, want 1", dc.ClipID)
		}
	}
	for _, typ := range []string{"rect", "line", "circle", "polyline", "polygon", "path", "text", "raster"} {
		if types[typ] == 0 {
			t.Errorf("no %q draw call in output", typ)
		}
	}
}

func TestJSONEmptyPage(t *testing.T) {
	page := plotgd.NewPageBuilder(3, 100, 80, plotgd.White).Finish()
	out, err := newJSON(config{}).Render(page, 1)
	if err != nil {
		t.Fatalf("json render error: %v", err)
	}
	var doc struct {
		DrawCalls []any `json:"draw_calls"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(doc.DrawCalls) != 0 {
		t.Errorf("draw_calls = %d, want 0", len(doc.DrawCalls))
	}
}
