package renderers

import (
	"regexp"
	"strings"
	"testing"

	"github.com/plotgd/plotgd"
)

func fixedToken(tok string) Option {
	return WithTokenSource(func() string { return tok })
}

func renderPortable(t *testing.T, page plotgd.Page, opts ...Option) string {
	t.Helper()
	out, err := newSVGPortable(applyOptions(opts)).Render(page, 1)
	if err != nil {
		t.Fatalf("portable svg render error: %v", err)
	}
	return string(out)
}

func TestPortableDocument(t *testing.T) {
	got := renderPortable(t, rectPage(), fixedToken("tok"))
	want := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" class="plotgd" width="200.00" height="150.00" viewBox="0 0 200.00 150.00">
<defs>
<clipPath id="c0-tok"><rect x="0.00" y="0.00" width="200.00" height="150.00"/></clipPath>
</defs>
<rect width="100%" height="100%" stroke="none" fill="#FFFFFF"/>
<g clip-path="url(#c0-tok)">
<rect x="10.00" y="20.00" width="50.00" height="30.00" stroke-width="0.75" stroke="#000000" stroke-linecap="round" stroke-linejoin="round" fill="#FF0000"/>
</g>
</svg>`
	if got != want {
		t.Errorf("portable document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPortableFixedTokenDeterministic(t *testing.T) {
	a := renderPortable(t, samplerPage(), fixedToken("t0"))
	b := renderPortable(t, samplerPage(), fixedToken("t0"))
	if a != b {
		t.Error("renders with a fixed token differ")
	}
}

var tokenPattern = regexp.MustCompile(`c\d+-([0-9a-f]{16})`)

// With the default token source two renders differ, but only in the
// token itself.
func TestPortableRandomTokenSaltsIds(t *testing.T) {
	a := renderPortable(t, samplerPage())
	b := renderPortable(t, samplerPage())
	if a == b {
		t.Fatal("two renders share a token")
	}

	ta := tokenPattern.FindStringSubmatch(a)
	tb := tokenPattern.FindStringSubmatch(b)
	if ta == nil || tb == nil {
		t.Fatalf("token not found in output")
	}
	na := strings.ReplaceAll(a, ta[1], "X")
	nb := strings.ReplaceAll(b, tb[1], "X")
	if na != nb {
		t.Error("renders differ beyond the token")
	}
}

// The portable background always names a concrete color so the
// document composes predictably when inlined; the inline dialect keeps
// a transparent background transparent.
func TestPortableBackgroundConcrete(t *testing.T) {
	b := plotgd.NewPageBuilder(0, 100, 100, plotgd.Transparent)
	b.Line(plotgd.DefaultLine(), plotgd.Point{X: 0, Y: 0}, plotgd.Point{X: 100, Y: 100})
	page := b.Finish()

	portable := renderPortable(t, page, fixedToken("t"))
	if !strings.Contains(portable, `<rect width="100%" height="100%" stroke="none" fill="#FFFFFF"/>`) {
		t.Errorf("portable background not concrete:\n%s", portable)
	}

	inline := renderSVG(t, page)
	if !strings.Contains(inline, `style="stroke: none;fill: none;"`) {
		t.Errorf("inline background not transparent:\n%s", inline)
	}
}

func TestPortableUsesNoStyleAttributes(t *testing.T) {
	got := renderPortable(t, samplerPage(), fixedToken("t"))
	if strings.Contains(got, `style="`) {
		t.Errorf("portable output carries style attributes:\n%s", got)
	}
}

func TestPortableMiterLimit(t *testing.T) {
	line := plotgd.DefaultLine()
	line.Join = plotgd.JoinMiter

	// Limit 10 deviates from the attribute default of 4.
	b := plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
	b.Line(line, plotgd.Point{X: 0, Y: 0}, plotgd.Point{X: 100, Y: 100})
	got := renderPortable(t, b.Finish(), fixedToken("t"))
	if !strings.Contains(got, ` stroke-miterlimit="10.00"`) {
		t.Errorf("deviating miter limit omitted:\n%s", got)
	}

	line.MiterLimit = 4
	b = plotgd.NewPageBuilder(0, 100, 100, plotgd.White)
	b.Line(line, plotgd.Point{X: 0, Y: 0}, plotgd.Point{X: 100, Y: 100})
	got = renderPortable(t, b.Finish(), fixedToken("t"))
	if strings.Contains(got, "stroke-miterlimit") {
		t.Errorf("default miter limit written:\n%s", got)
	}
}
