package streamnet

import "github.com/terrane-gis/streamnet/emit"

// Config holds Run's call-time parameters (spec §6). Build one with
// DefaultConfig and the WithX functional options below.
type Config struct {
	// SnapDistance is the node-formation snap radius, in world units
	// (spec §4.2/§4.3). Must be > 0.
	SnapDistance float64
	// UseLakes enables lake-polygon attachment during node formation
	// (spec §3, §4.3). Ignored if Run is called without a LakeReader.
	UseLakes bool
	// MaxVertices caps the total vertex count Run will accept before
	// returning ErrOutOfMemory. Zero disables the check.
	MaxVertices int
	// Reporter receives progress, feedback, and emitted records, and is
	// polled for cancellation (spec §9). Defaults to emit.NoopReporter.
	Reporter emit.Reporter
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns a Config with sensible defaults: SnapDistance=0
// is deliberately invalid and must be set with WithSnapDistance before
// Run — there is no sane default snap radius for an unknown dataset.
func DefaultConfig() Config {
	return Config{
		Reporter: emit.NoopReporter{},
	}
}

// WithSnapDistance sets the node-formation snap radius. Panics if d is
// not positive — invalid functional-option arguments panic at
// construction time rather than surfacing as a runtime error kind,
// matching dijkstra.WithMaxDistance's convention.
func WithSnapDistance(d float64) Option {
	return func(c *Config) {
		if d <= 0 {
			panic("streamnet: WithSnapDistance requires d > 0")
		}
		c.SnapDistance = d
	}
}

// WithLakes enables lake-polygon attachment (spec §3).
func WithLakes() Option {
	return func(c *Config) {
		c.UseLakes = true
	}
}

// WithMaxVertices caps the total vertex count Run accepts, triggering
// ErrOutOfMemory beyond it. Panics if n is negative.
func WithMaxVertices(n int) Option {
	return func(c *Config) {
		if n < 0 {
			panic("streamnet: WithMaxVertices requires n >= 0")
		}
		c.MaxVertices = n
	}
}

// WithReporter installs the Reporter that receives progress, feedback,
// emitted records, and cancellation polls.
func WithReporter(r emit.Reporter) Option {
	return func(c *Config) {
		if r == nil {
			r = emit.NoopReporter{}
		}
		c.Reporter = r
	}
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
