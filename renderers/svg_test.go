package renderers

import (
	"strings"
	"testing"

	"github.com/plotgd/plotgd"
)

func renderSVG(t *testing.T, page plotgd.Page, opts ...Option) string {
	t.Helper()
	out, err := newSVG(applyOptions(opts)).Render(page, 1)
	if err != nil {
		t.Fatalf("svg render error: %v", err)
	}
	return string(out)
}

func TestSVGDocument(t *testing.T) {
	got := renderSVG(t, rectPage())
	want := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" class="plotgd" width="200.00" height="150.00" viewBox="0 0 200.00 150.00">
<defs>
  <style type='text/css'><![CDATA[
    .plotgd line, .plotgd polyline, .plotgd polygon, .plotgd path, .plotgd rect, .plotgd circle {
      fill: none;
      stroke: #000000;
      stroke-linecap: round;
      stroke-linejoin: round;
      stroke-miterlimit: 10.00;
    }
  ]]></style>
<clipPath id="c0"><rect x="0.00" y="0.00" width="200.00" height="150.00"/></clipPath>
</defs>
<rect width="100%" height="100%" style="stroke: none;fill: #FFFFFF;"/>
<g clip-path="url(#c0)">
<rect x="10.00" y="20.00" width="50.00" height="30.00" style="stroke-width: 0.75;fill: #FF0000;"/>
</g>
</svg>`
	if got != want {
		t.Errorf("svg document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSVGScaleChangesOnlyDimensions(t *testing.T) {
	out, err := newSVG(config{}).Render(rectPage(), 2)
	if err != nil {
		t.Fatalf("svg render error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, `width="400.00" height="300.00" viewBox="0 0 200.00 150.00"`) {
		t.Errorf("scaled header missing, got:\n%s", got[:200])
	}
	// Geometry stays in page units.
	if !strings.Contains(got, `<rect x="10.00" y="20.00" width="50.00" height="30.00"`) {
		t.Error("rectangle geometry was scaled")
	}
}

func TestSVGDeterministic(t *testing.T) {
	a := renderSVG(t, samplerPage())
	b := renderSVG(t, samplerPage())
	if a != b {
		t.Error("two renders of the same page differ")
	}
}

func TestSVGExtraCSS(t *testing.T) {
	css := ".plotgd text { font-family: serif; }"
	got := renderSVG(t, rectPage(), WithExtraCSS(css))
	if !strings.Contains(got, css+"\n  ]]></style>") {
		t.Errorf("extra css not in style block:\n%s", got)
	}
}

func TestSVGClipGroups(t *testing.T) {
	page := samplerPage()
	got := renderSVG(t, page)

	if n := strings.Count(got, "<clipPath id="); n != len(page.Clips) {
		t.Errorf("clipPath count = %d, want %d", n, len(page.Clips))
	}
	if n := strings.Count(got, "<g clip-path="); n != 2 {
		t.Errorf("clip group count = %d, want 2", n)
	}
	// Groups close and reopen on the transition, in clip id order.
	if !strings.Contains(got, "</g><g clip-path=\"url(#c1)\">") {
		t.Error("missing transition to second clip group")
	}
	first := strings.Index(got, `<g clip-path="url(#c0)">`)
	second := strings.Index(got, `<g clip-path="url(#c1)">`)
	if first < 0 || second < 0 || second < first {
		t.Errorf("groups out of order: c0 at %d, c1 at %d", first, second)
	}
	// Calls recorded after the clip switch land in the second group.
	path := strings.Index(got, "<path ")
	if path < second {
		t.Errorf("path element at %d belongs in group starting at %d", path, second)
	}
}

func TestSVGDashArray(t *testing.T) {
	dashed := plotgd.DefaultLine()
	dashed.Width = 2
	dashed.Type = plotgd.LineType(4 + 2<<4)

	b := plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
	b.Line(dashed, plotgd.Point{X: 0, Y: 0}, plotgd.Point{X: 100, Y: 100})
	got := renderSVG(t, b.Finish())

	// Nibbles scale with the line width: (4, 2) at width 2.
	if !strings.Contains(got, ` stroke-dasharray: 8.00, 4.00;`) {
		t.Errorf("dash array missing:\n%s", got)
	}

	b = plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
	b.Line(plotgd.DefaultLine(), plotgd.Point{X: 0, Y: 0}, plotgd.Point{X: 100, Y: 100})
	if got := renderSVG(t, b.Finish()); strings.Contains(got, "stroke-dasharray") {
		t.Error("solid line carries a dash array")
	}
}

// The markup dialects emit blank line types as-is: no dash array, so
// the stroke renders solid. Only the surface canvases suppress blank
// outlines.
func TestSVGBlankLineType(t *testing.T) {
	blank := plotgd.DefaultLine()
	blank.Type = plotgd.LineBlank

	b := plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
	b.Line(blank, plotgd.Point{X: 0, Y: 0}, plotgd.Point{X: 100, Y: 100})
	b.Rect(blank, plotgd.RGBA(0, 0, 255, 255), plotgd.Rect{X: 10, Y: 10, Width: 20, Height: 20})
	got := renderSVG(t, b.Finish())

	if !strings.Contains(got, "<line ") {
		t.Error("blank standalone line was dropped")
	}
	if strings.Contains(got, "stroke-dasharray") {
		t.Error("blank line type produced a dash array")
	}
	if !strings.Contains(got, `style="stroke-width: 0.75;fill: #0000FF;"`) {
		t.Errorf("rect style not emitted verbatim:\n%s", got)
	}
}

func TestSVGAlpha(t *testing.T) {
	cases := []struct {
		name string
		fill plotgd.Color
		want string
		omit string
	}{
		{"opaque", plotgd.RGBA(0, 0, 255, 255), "fill: #0000FF;", "fill-opacity"},
		{"half", plotgd.RGBA(0, 0, 255, 128), "fill: #0000FF;fill-opacity: 0.50;", ""},
		{"transparent", plotgd.RGBA(0, 0, 255, 0), "", "fill:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := plotgd.NewPageBuilder(0, 100, 100, plotgd.Transparent)
			b.Circle(plotgd.DefaultLine(), tc.fill, plotgd.Point{X: 50, Y: 50}, 10)
			got := renderSVG(t, b.Finish())

			circle := got[strings.Index(got, "<circle"):]
			circle = circle[:strings.Index(circle, "/>")]
			if tc.want != "" && !strings.Contains(circle, tc.want) {
				t.Errorf("circle style missing %q:\n%s", tc.want, circle)
			}
			if tc.omit != "" && strings.Contains(circle, tc.omit) {
				t.Errorf("circle style should omit %q:\n%s", tc.omit, circle)
			}
		})
	}
}

func TestSVGStrokeAlpha(t *testing.T) {
	half := plotgd.DefaultLine()
	half.Col = plotgd.RGBA(255, 0, 0, 128)

	b := plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
	b.Line(half, plotgd.Point{X: 0, Y: 0}, plotgd.Point{X: 100, Y: 100})
	got := renderSVG(t, b.Finish())

	if !strings.Contains(got, "stroke: #FF0000;stroke-opacity: 0.50;") {
		t.Errorf("stroke opacity missing:\n%s", got)
	}
}

func TestSVGTextElement(t *testing.T) {
	b := plotgd.NewPageBuilder(0, 200, 100, plotgd.White)
	b.Text(plotgd.Black, plotgd.Point{X: 100, Y: 50}, "a<b&c", 90, 1,
		plotgd.TextInfo{Weight: 700, Italic: true, Family: "serif", Size: 12, WidthPx: 40})
	got := renderSVG(t, b.Finish())

	for _, want := range []string{
		`transform="translate(100.00,50.00) rotate(-90.00)"`,
		`text-anchor="end"`,
		"font-family: serif;font-size: 12.00px;",
		"font-weight: bold;",
		"font-style: italic;",
		`textLength="40.00px" lengthAdjust="spacingAndGlyphs"`,
		">a&lt;b&amp;c</text>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text element missing %q:\n%s", want, got)
		}
	}
}

func TestSVGPathFillRule(t *testing.T) {
	points := []plotgd.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	for _, tc := range []struct {
		rule plotgd.FillRule
		want string
	}{
		{plotgd.FillNonZero, "fill-rule: nonzero;"},
		{plotgd.FillEvenOdd, "fill-rule: evenodd;"},
	} {
		b := plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
		b.Path(plotgd.DefaultLine(), plotgd.Black, points, []int{3}, tc.rule)
		if got := renderSVG(t, b.Finish()); !strings.Contains(got, tc.want) {
			t.Errorf("rule %v: missing %q", tc.rule, tc.want)
		}
	}
}

func TestSVGPathData(t *testing.T) {
	b := plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
	b.Path(plotgd.DefaultLine(), plotgd.Black,
		[]plotgd.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}, {X: 9, Y: 10}},
		[]int{3, 2}, plotgd.FillNonZero)
	got := renderSVG(t, b.Finish())

	want := `d="M1.00 2.00L3.00 4.00L5.00 6.00ZM7.00 8.00L9.00 10.00Z"`
	if !strings.Contains(got, want) {
		t.Errorf("path data mismatch, want %s in:\n%s", want, got)
	}
}
