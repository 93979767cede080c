package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/surface"
)

func newScene(t *testing.T) *surface.Scene {
	t.Helper()
	s := surface.NewScene(100, 50)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}

	must(s.Create("bar-0", geom.KindRect))
	for name, v := range map[string]float64{surface.AttrX: 10, surface.AttrY: 10, surface.AttrWidth: 40, surface.AttrHeight: 20} {
		must(s.SetAttr("bar-0", name, v))
	}
	must(s.SetStyle("bar-0", surface.StyleFill, "#ff0000"))
	must(s.SetStyle("bar-0", surface.StyleClass, "mark"))
	must(s.SetStyle("bar-0", surface.StyleTitle, "Jan: 30"))

	must(s.Create("slice-0", geom.KindArc))
	for name, v := range map[string]float64{surface.AttrCX: 75, surface.AttrCY: 25, surface.AttrOuterRadius: 10, surface.AttrEndAngle: 1} {
		must(s.SetAttr("slice-0", name, v))
	}
	must(s.SetStyle("slice-0", surface.StyleFill, "navy"))

	must(s.Create("label-0", geom.KindText))
	must(s.SetAttr("label-0", surface.AttrX, 30))
	must(s.SetAttr("label-0", surface.AttrY, 8))
	must(s.SetAttr("label-0", surface.AttrOpacity, 0.5))
	must(s.SetStyle("label-0", surface.StyleText, "a<b"))
	must(s.SetStyle("label-0", surface.StyleAnchor, "middle"))
	return s
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(newScene(t)))

	for _, want := range []string{
		`viewBox="0 0 100 50"`,
		`<rect id="bar-0" x="10" y="10" width="40" height="20" class="mark" fill="#ff0000"><title>Jan: 30</title></rect>`,
		`<path id="slice-0" d="M75,15A10,10`,
		`text-anchor="middle" opacity="0.5">a&lt;b</text>`,
		`<script`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q:\n%s", want, svg)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("svg not closed")
	}
}

func TestRenderSVGStatic(t *testing.T) {
	svg := string(RenderSVG(newScene(t), WithStatic()))
	if strings.Contains(svg, "<script") || strings.Contains(svg, "<style") {
		t.Errorf("static svg contains interaction code")
	}
}

func TestRenderSVGTooltip(t *testing.T) {
	s := surface.NewScene(100, 50)
	_ = s.Create("tooltip", surface.KindTooltip)
	_ = s.SetAttr("tooltip", surface.AttrX, 5)
	_ = s.SetAttr("tooltip", surface.AttrY, 6)
	_ = s.SetAttr("tooltip", surface.AttrWidth, 50)
	_ = s.SetAttr("tooltip", surface.AttrHeight, 22)
	_ = s.SetStyle("tooltip", surface.StyleText, "Feb: 45")

	svg := string(RenderSVG(s))
	if !strings.Contains(svg, `<g id="tooltip" class="tooltip" pointer-events="none" opacity="1">`) {
		t.Errorf("tooltip group missing:\n%s", svg)
	}
	if !strings.Contains(svg, ">Feb: 45</text>") {
		t.Errorf("tooltip text missing:\n%s", svg)
	}
}

func TestImage(t *testing.T) {
	img := Image(newScene(t), WithScale(1))
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("bounds = %v, want 100x50", b)
	}
	r, g, b, _ := img.At(30, 20).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("bar pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(5, 45).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("background pixel = %d,%d,%d, want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(newScene(t))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want 200x100 at default scale", b)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(newScene(t))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Width != 100 || out.Height != 50 {
		t.Errorf("size = %vx%v, want 100x50", out.Width, out.Height)
	}
	if len(out.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(out.Nodes))
	}
	if out.Nodes[0].Attrs[surface.AttrWidth] != 40 {
		t.Errorf("bar width = %v, want 40", out.Nodes[0].Attrs[surface.AttrWidth])
	}
	if !strings.HasPrefix(out.Nodes[1].Path, "M75,15") {
		t.Errorf("arc path = %q", out.Nodes[1].Path)
	}
}

func TestRenderTerminal(t *testing.T) {
	out := RenderTerminal(newScene(t), 20)
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("lines = %d, want 5", got+1)
	}
	if got := strings.Count(out, halfBlock); got != 100 {
		t.Errorf("cells = %d, want 100", got)
	}
	if RenderTerminal(newScene(t), 0) != "" {
		t.Errorf("zero columns rendered output")
	}
}

func TestFormats(t *testing.T) {
	s := newScene(t)
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, got, err)
		}
		data, err := Render(f, s)
		if err != nil || len(data) == 0 {
			t.Errorf("Render(%s) = %d bytes, %v", f, len(data), err)
		}
	}
	if _, err := ParseFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(pdf) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
	if FormatPNG.Ext() != ".png" {
		t.Errorf("Ext = %q, want .png", FormatPNG.Ext())
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{2.5, "2.5"},
		{1.23456, "1.23"},
		{-0.001, "0"},
		{-12.5, "-12.5"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDash(t *testing.T) {
	got, ok := parseDash("12.5,12.5")
	if !ok || len(got) != 2 || got[0] != 12.5 {
		t.Errorf("parseDash = %v, %v", got, ok)
	}
	for _, in := range []string{"", "a,b", "-1"} {
		if _, ok := parseDash(in); ok {
			t.Errorf("parseDash(%q) ok, want failure", in)
		}
	}
}
