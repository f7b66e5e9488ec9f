package conn

import "time"

// Options configures a Dial call: timeouts, debug tracing, and the
// client-information preferences sent in Configuration. The compression
// threshold is not configurable here; only the server's SetCompression sets it.
type Options struct {
	// ConnectTimeout bounds the initial TCP handshake. Zero uses DefaultConnectTimeout.
	ConnectTimeout time.Duration
	// ReadTimeout bounds every blocking read once connected. Zero uses DefaultReadTimeout.
	ReadTimeout time.Duration
	// Debug enables packet tracing at mclog.LevelDebug.
	Debug bool
	// Preferences overrides the client-information defaults sent in Configuration.
	Preferences Preferences
}

const (
	// DefaultConnectTimeout is the dial timeout applied when Options.ConnectTimeout is zero.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultReadTimeout is the per-read deadline applied when Options.ReadTimeout is zero.
	DefaultReadTimeout = 15 * time.Second
)

// DefaultOptions returns the Options a vanilla client would use.
func DefaultOptions() Options {
	return Options{
		ConnectTimeout: DefaultConnectTimeout,
		ReadTimeout:    DefaultReadTimeout,
		Preferences:    DefaultPreferences(),
	}
}

func (o Options) withDefaults() Options {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = DefaultReadTimeout
	}
	if o.Preferences == (Preferences{}) {
		o.Preferences = DefaultPreferences()
	}
	return o
}
