package transition

import "time"

// DefaultDuration is the duration of a transition scheduled without
// [Duration].
const DefaultDuration = 250 * time.Millisecond

// Option configures a call to [Scheduler.Animate].
type Option func(*options)

type options struct {
	duration time.Duration
	delay    time.Duration
	ease     Easing
	onEnd    func()
}

func newOptions(opts []Option) options {
	o := options{duration: DefaultDuration, ease: Linear}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Duration sets how long the interpolation runs. Negative values count as 0.
func Duration(d time.Duration) Option {
	return func(o *options) { o.duration = max(0, d) }
}

// Delay postpones the start of the interpolation. Negative values count as 0.
func Delay(d time.Duration) Option {
	return func(o *options) { o.delay = max(0, d) }
}

// Ease sets the easing function. A nil easing keeps linear.
func Ease(e Easing) Option {
	return func(o *options) {
		if e != nil {
			o.ease = e
		}
	}
}

// OnEnd sets a callback that runs once when every attribute of the group
// has completed.
func OnEnd(fn func()) Option { return func(o *options) { o.onEnd = fn } }
