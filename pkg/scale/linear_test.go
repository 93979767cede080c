package scale

import (
	"math"
	"testing"
)

func TestLinearMap(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		rng    Range
		in     float64
		want   float64
	}{
		{"lower bound", 0, 70, NewRange(300, 0), 0, 300},
		{"upper bound", 0, 70, NewRange(300, 0), 70, 0},
		{"midpoint", 0, 100, NewRange(0, 200), 50, 100},
		{"extrapolates", 0, 10, NewRange(0, 100), 20, 200},
		{"swapped bounds", 10, 0, NewRange(0, 100), 10, 100},
		{"degenerate zero", 0, 0, NewRange(300, 0), 0, 300},
		{"degenerate nonzero", 5, 5, NewRange(300, 0), 42, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLinear(tt.lo, tt.hi, tt.rng)
			if got := l.Map(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinearNaN(t *testing.T) {
	l := NewLinear(0, 10, NewRange(0, 100))
	if got := l.Map(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Map(NaN) = %v, want NaN", got)
	}

	l = NewLinear(math.NaN(), 10, NewRange(0, 100))
	if lo, _ := l.Domain(); lo != 0 {
		t.Errorf("NaN lower bound became %v, want 0", lo)
	}
}

func TestLinearClamp(t *testing.T) {
	l := NewLinear(0, 10, NewRange(0, 100), Clamp())
	if !l.Clamped() {
		t.Fatal("Clamped() = false, want true")
	}
	if got := l.Map(20); got != 100 {
		t.Errorf("Map(20) = %v, want 100", got)
	}
	if got := l.Map(-5); got != 0 {
		t.Errorf("Map(-5) = %v, want 0", got)
	}
	if got := l.Invert(500); got != 10 {
		t.Errorf("Invert(500) = %v, want 10", got)
	}
}

func TestLinearInvert(t *testing.T) {
	l := NewLinear(0, 70, NewRange(300, 0))
	for _, v := range []float64{0, 12.5, 35, 70} {
		if got := l.Invert(l.Map(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("Invert(Map(%v)) = %v", v, got)
		}
	}
}

func TestLinearNice(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		count  int
	}{
		{"sales", 0, 70, 5},
		{"odd max", 0, 47, 5},
		{"revenue", 0, 175, 10},
		{"negative", -13, 42, 5},
		{"fractional", 0.12, 0.97, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLinear(tt.lo, tt.hi, NewRange(0, 100), Nice(tt.count))
			lo, hi := l.Domain()
			if lo > tt.lo || hi < tt.hi {
				t.Errorf("Domain() = [%v, %v], does not contain [%v, %v]", lo, hi, tt.lo, tt.hi)
			}
			if tt.lo == 0 && lo != 0 {
				t.Errorf("zero lower bound moved to %v", lo)
			}
			ticks := l.Ticks(tt.count)
			if len(ticks) == 0 {
				t.Fatal("Ticks() returned nothing")
			}
			for _, v := range ticks {
				if v < lo || v > hi {
					t.Errorf("tick %v outside niced domain [%v, %v]", v, lo, hi)
				}
			}
		})
	}
}

func TestLinearTicks(t *testing.T) {
	l := NewLinear(0, 70, NewRange(300, 0))
	for _, count := range []int{2, 5, 10} {
		ticks := l.Ticks(count)
		if len(ticks) == 0 || len(ticks) > count {
			t.Errorf("Ticks(%d) returned %d ticks", count, len(ticks))
			continue
		}
		for i, v := range ticks {
			if v < 0 || v > 70 {
				t.Errorf("Ticks(%d)[%d] = %v outside domain", count, i, v)
			}
			if i > 0 && v <= ticks[i-1] {
				t.Errorf("Ticks(%d) not increasing at %d: %v", count, i, ticks)
			}
		}
	}
}

func TestLinearTicksDegenerate(t *testing.T) {
	l := NewLinear(0, 0, NewRange(300, 0))
	ticks := l.Ticks(0)
	if len(ticks) != 1 || ticks[0] != 0 {
		t.Errorf("Ticks() = %v, want [0]", ticks)
	}
}

func TestLinearNiceKeepsTightDomain(t *testing.T) {
	tests := []struct {
		lo, hi float64
		count  int
		wantHi float64
		ticks  int
	}{
		{0, 70, DefaultTickCount, 70, 8},
		{0, 7, DefaultTickCount, 7, 8},
	}
	for _, tt := range tests {
		l := NewLinear(tt.lo, tt.hi, NewRange(300, 0), Nice(tt.count))
		if lo, hi := l.Domain(); lo != tt.lo || hi != tt.wantHi {
			t.Errorf("Nice(%d) on [%v, %v] = [%v, %v], want [%v, %v]", tt.count, tt.lo, tt.hi, lo, hi, tt.lo, tt.wantHi)
		}
		if got := len(l.Ticks(tt.count)); got != tt.ticks {
			t.Errorf("[%v, %v] Ticks(%d) = %d ticks, want %d", tt.lo, tt.hi, tt.count, got, tt.ticks)
		}
	}
}
