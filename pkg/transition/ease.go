package transition

import (
	"maps"
	"slices"

	"github.com/tanema/gween/ease"
)

// Easing maps normalized time in [0, 1] to normalized progress.
type Easing func(t float64) float64

// fromTween adapts a gween tween function to normalized time.
func fromTween(f ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(f(float32(t), 0, 1, 1))
	}
}

var (
	Linear     = fromTween(ease.Linear)
	QuadInOut  = fromTween(ease.InOutQuad)
	CubicIn    = fromTween(ease.InCubic)
	CubicOut   = fromTween(ease.OutCubic)
	CubicInOut = fromTween(ease.InOutCubic)
	SineInOut  = fromTween(ease.InOutSine)
	ElasticOut = fromTween(ease.OutElastic)
	BounceOut  = fromTween(ease.OutBounce)
)

var easings = map[string]Easing{
	"linear":       Linear,
	"quad-in-out":  QuadInOut,
	"cubic-in":     CubicIn,
	"cubic-out":    CubicOut,
	"cubic-in-out": CubicInOut,
	"sine-in-out":  SineInOut,
	"elastic-out":  ElasticOut,
	"bounce-out":   BounceOut,
}

// EaseByName returns the easing registered under name. The empty name is
// linear.
func EaseByName(name string) (Easing, bool) {
	if name == "" {
		return Linear, true
	}
	e, ok := easings[name]
	return e, ok
}

// EaseNames returns the registered easing names, sorted.
func EaseNames() []string {
	return slices.Sorted(maps.Keys(easings))
}
