package chart

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/scale"
	"github.com/matzehuels/stackchart/pkg/transition"
)

// Duration is a time.Duration that reads and writes as text ("750ms").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Options configures layout and animation of a chart.
type Options struct {
	Width  float64     `toml:"width" json:"width"`
	Height float64     `toml:"height" json:"height"`
	Margin geom.Margin `toml:"margin" json:"margin"`

	Padding   float64  `toml:"padding" json:"padding"`
	Curve     string   `toml:"curve" json:"curve"`
	Fill      string   `toml:"fill" json:"fill"`
	Palette   []string `toml:"palette" json:"palette,omitempty"`
	Gradient  []string `toml:"gradient" json:"gradient,omitempty"`
	Ticks     int      `toml:"ticks" json:"ticks"`
	Nice      bool     `toml:"nice" json:"nice"`
	Labels    bool     `toml:"labels" json:"labels"`
	PieMargin float64  `toml:"pie_margin" json:"pie_margin"`

	Easing      string   `toml:"easing" json:"easing"`
	Duration    Duration `toml:"duration" json:"duration"`
	Stagger     Duration `toml:"stagger" json:"stagger"`
	LabelDelay  Duration `toml:"label_delay" json:"label_delay"`
	TooltipFade Duration `toml:"tooltip_fade" json:"tooltip_fade"`
	Darken      float64  `toml:"darken" json:"darken"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Width:       640,
		Height:      360,
		Margin:      geom.Margin{Top: 20, Right: 20, Bottom: 30, Left: 40},
		Padding:     geom.DefaultPadding,
		Curve:       "monotone-x",
		Fill:        geom.DefaultFill,
		Ticks:       scale.DefaultTickCount,
		Nice:        true,
		Labels:      true,
		PieMargin:   geom.DefaultPieMargin,
		Easing:      "cubic-out",
		Duration:    Duration{750 * time.Millisecond},
		Stagger:     Duration{60 * time.Millisecond},
		LabelDelay:  Duration{400 * time.Millisecond},
		TooltipFade: Duration{200 * time.Millisecond},
		Darken:      0.25,
	}
}

// LoadOptions reads options from a TOML file. Keys absent from the file
// keep their default values.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return DecodeOptions(bytes.NewReader(data))
}

// DecodeOptions reads TOML options from r on top of [DefaultOptions].
func DecodeOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.NewDecoder(r).Decode(&opts); err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Encode writes the options as TOML.
func (o Options) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(o)
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "size %vx%v must be positive", o.Width, o.Height)
	case o.Padding < 0 || o.Padding > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "padding %v outside [0, 1]", o.Padding)
	case o.Darken < 0 || o.Darken > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "darken %v outside [0, 1]", o.Darken)
	case o.Ticks < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "ticks %d must not be negative", o.Ticks)
	case o.Duration.Duration < 0 || o.Stagger.Duration < 0 || o.LabelDelay.Duration < 0 || o.TooltipFade.Duration < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "durations must not be negative")
	}
	if _, ok := geom.CurveByName(o.Curve); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown curve %q", o.Curve)
	}
	if _, ok := transition.EaseByName(o.Easing); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown easing %q", o.Easing)
	}
	if _, err := scale.ParseColor(o.Fill); err != nil {
		return err
	}
	if _, err := scale.ParsePalette(o.Palette); err != nil {
		return err
	}
	if len(o.Gradient) > 0 {
		if _, err := scale.Gradient(o.Gradient...); err != nil {
			return err
		}
	}
	return nil
}

// geomOptions translates the options into geometry builder options.
func (o Options) geomOptions() []geom.Option {
	curve, _ := geom.CurveByName(o.Curve)
	opts := []geom.Option{
		geom.WithPadding(o.Padding),
		geom.WithCurve(curve),
		geom.WithFill(o.Fill),
		geom.WithPieMargin(o.PieMargin),
	}
	if pal, err := scale.ParsePalette(o.Palette); err == nil && len(pal) > 0 {
		opts = append(opts, geom.WithPalette(pal))
	}
	if len(o.Gradient) > 0 {
		if g, err := scale.Gradient(o.Gradient...); err == nil {
			opts = append(opts, geom.WithGradient(g))
		}
	}
	if o.Nice {
		opts = append(opts, geom.WithNice(o.tickCount()))
	}
	if !o.Labels {
		opts = append(opts, geom.WithoutLabels())
	}
	return opts
}

func (o Options) tickCount() int {
	if o.Ticks > 0 {
		return o.Ticks
	}
	return scale.DefaultTickCount
}

func (o Options) easing() transition.Easing {
	e, _ := transition.EaseByName(o.Easing)
	return e
}
