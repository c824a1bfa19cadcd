package vmcat

type options struct {
	fallback bool
}

// Option configures a Scanner.
type Option func(*options)

// WithFallback controls whether lines in an unrecognised format still match
// when they contain a cataloged literal as a whole word. Unified log lines
// tagged with something other than safepoint never match this way.
// Default: false.
func WithFallback(enabled bool) Option {
	return func(o *options) {
		o.fallback = enabled
	}
}

func defaultOptions() options {
	return options{}
}
