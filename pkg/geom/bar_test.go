package geom

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/errors"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBarsHeightsFollowValues(t *testing.T) {
	ds := dataset.New("sales",
		dataset.Record{Key: "Jan", Value: 30},
		dataset.Record{Key: "Feb", Value: 45},
	)
	l := Bars(ds, Frame{Width: 400, Height: 200})

	bars := l.ByKind(KindRect)
	if len(bars) != 2 {
		t.Fatalf("got %d rects, want 2", len(bars))
	}
	jan, feb := bars[0].Rect, bars[1].Rect
	if feb.H <= jan.H {
		t.Errorf("Feb height %v not greater than Jan height %v", feb.H, jan.H)
	}
	if jan.W != feb.W {
		t.Errorf("widths differ: %v vs %v", jan.W, feb.W)
	}
	if !approx(jan.H, 30.0/45*200) {
		t.Errorf("Jan height = %v, want %v", jan.H, 30.0/45*200)
	}
	// Both bars stand on the bottom edge.
	if !approx(jan.Bottom(), 200) || !approx(feb.Bottom(), 200) {
		t.Errorf("bottoms = %v, %v, want 200", jan.Bottom(), feb.Bottom())
	}
}

func TestBarsOriginalValues(t *testing.T) {
	ds := dataset.FromValues("original", 10, 20, 39, 21, 50)
	l := Bars(ds, Frame{Width: 400, Height: 200}, WithoutLabels())

	step := 400 / 5.1
	for i, p := range l.Primitives {
		if p.Kind != KindRect {
			t.Fatalf("primitive %d kind = %s, want rect", i, p.Kind)
		}
		if p.Style.Fill != DefaultFill {
			t.Errorf("fill = %s, want %s", p.Style.Fill, DefaultFill)
		}
		if !approx(p.Rect.W, step*0.9) {
			t.Errorf("bar %d width = %v, want %v", i, p.Rect.W, step*0.9)
		}
		want := p.Datum.Value / 50 * 200
		if !approx(p.Rect.H, want) {
			t.Errorf("bar %d height = %v, want %v", i, p.Rect.H, want)
		}
		if !approx(p.Rect.Y, 200-want) {
			t.Errorf("bar %d y = %v, want %v", i, p.Rect.Y, 200-want)
		}
	}
}

func TestBarsMixedSign(t *testing.T) {
	ds := dataset.New("delta",
		dataset.Record{Key: "a", Value: -10},
		dataset.Record{Key: "b", Value: 20},
	)
	l := Bars(ds, Frame{Width: 300, Height: 300})

	base := 300 - 10.0/30*300
	neg, _ := l.Find("bar-0")
	pos, _ := l.Find("bar-1")

	if !approx(neg.Rect.Y, base) || !approx(neg.Rect.H, 100) {
		t.Errorf("negative bar = %+v, want y=%v h=100", neg.Rect, base)
	}
	if !approx(pos.Rect.Bottom(), base) || !approx(pos.Rect.H, 200) {
		t.Errorf("positive bar = %+v, want bottom=%v h=200", pos.Rect, base)
	}

	negLabel, _ := l.Find("bar-label-0")
	if negLabel.Text.Y <= neg.Rect.Bottom() {
		t.Errorf("negative label y = %v, want below bar end %v", negLabel.Text.Y, neg.Rect.Bottom())
	}
}

func TestBarsMargins(t *testing.T) {
	ds := dataset.FromValues("m", 1, 2)
	f := Frame{Width: 200, Height: 100, Margin: Margin{Top: 10, Right: 20, Bottom: 30, Left: 40}}
	l := Bars(ds, f, WithoutLabels(), WithPadding(0))

	inner := f.Inner()
	for _, p := range l.Primitives {
		if p.Rect.X < inner.X-1e-9 || p.Rect.Right() > inner.Right()+1e-9 {
			t.Errorf("%s x-extent [%v, %v] outside inner [%v, %v]", p.ID, p.Rect.X, p.Rect.Right(), inner.X, inner.Right())
		}
		if !approx(p.Rect.Bottom(), inner.Bottom()) {
			t.Errorf("%s bottom = %v, want %v", p.ID, p.Rect.Bottom(), inner.Bottom())
		}
	}
}

func TestBarsEmpty(t *testing.T) {
	l := Bars(dataset.Dataset{Name: "empty"}, Frame{Width: 400, Height: 200})
	if len(l.Primitives) != 0 {
		t.Errorf("got %d primitives, want 0", len(l.Primitives))
	}
	if l.Scales.Band.Bandwidth() != 0 {
		t.Errorf("Bandwidth() = %v, want 0", l.Scales.Band.Bandwidth())
	}
}

func TestBarsSkipsBadDatums(t *testing.T) {
	ds := dataset.New("bad",
		dataset.Record{Key: "a", Value: 1},
		dataset.Record{Key: "b", Value: math.NaN()},
		dataset.Record{Key: "a", Value: 3},
		dataset.Record{Key: "c", Value: 4},
	)
	l := Bars(ds, Frame{Width: 400, Height: 200}, WithoutLabels())

	if got := len(l.ByKind(KindRect)); got != 2 {
		t.Errorf("got %d bars, want 2", got)
	}
	if len(l.Skipped) != 2 {
		t.Fatalf("got %d skipped, want 2: %+v", len(l.Skipped), l.Skipped)
	}
	if l.Skipped[0].Index != 1 || !errors.Is(l.Skipped[0].Err, errors.ErrCodeInvalidInput) {
		t.Errorf("first skip = %+v, want NaN record at index 1", l.Skipped[0])
	}
	if l.Skipped[1].Index != 2 || !errors.Is(l.Skipped[1].Err, errors.ErrCodeInvalidDataset) {
		t.Errorf("second skip = %+v, want duplicate at index 2", l.Skipped[1])
	}
}

func TestBarsFixedKeysSkipUnknown(t *testing.T) {
	ds := dataset.New("s",
		dataset.Record{Key: "Jan", Value: 1},
		dataset.Record{Key: "Jul", Value: 2},
	)
	l := Bars(ds, Frame{Width: 400, Height: 200}, WithKeys("Jan", "Feb"), WithoutLabels())

	if got := len(l.Primitives); got != 1 {
		t.Errorf("got %d primitives, want 1", got)
	}
	if len(l.Skipped) != 1 || !errors.IsDomain(l.Skipped[0].Err) {
		t.Errorf("Skipped = %+v, want one domain error", l.Skipped)
	}
}

func TestBarsNice(t *testing.T) {
	ds := dataset.FromValues("n", 3, 47)
	l := Bars(ds, Frame{Width: 400, Height: 200}, WithNice(5))
	lo, hi := l.Scales.Value.Domain()
	if lo != 0 || hi < 47 {
		t.Errorf("Domain() = [%v, %v], want [0, >=47]", lo, hi)
	}
}

func TestBuildersIdempotent(t *testing.T) {
	ds := dataset.Sample().Datasets()[0]
	f := Frame{Width: 640, Height: 360, Margin: Margin{Top: 20, Right: 20, Bottom: 30, Left: 40}}

	builders := map[string]func(dataset.Dataset, Frame, ...Option) Layout{
		"bar":  Bars,
		"line": Lines,
		"pie":  Pie,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			a := build(ds, f, WithNice(5))
			b := build(ds, f, WithNice(5))
			if !reflect.DeepEqual(a, b) {
				t.Errorf("%s layout differs between identical calls", name)
			}
		})
	}
}
