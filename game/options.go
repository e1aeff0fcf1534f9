package game

// Option tweaks how Step and Traverse commit a move.
type Option func(*options)

type options struct {
	noTurn      bool
	capture     bool
	dryRun      bool
	withoutPath bool
}

// NoTurn applies the move without counting it as a turn: no turn advance,
// no observers, no game-over signal.
func NoTurn() Option {
	return func(o *options) {
		o.noTurn = true
	}
}

// Capturing lets Step land on an opposing pebble. Traverse uses it for the
// final step of an attack.
func Capturing() Option {
	return func(o *options) {
		o.capture = true
	}
}

// DryRun makes Traverse compute the attack without performing it.
func DryRun() Option {
	return func(o *options) {
		o.dryRun = true
	}
}

// WithoutPath makes a dry-run Traverse only decide feasibility; the
// returned Path has no steps.
func WithoutPath() Option {
	return func(o *options) {
		o.withoutPath = true
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
