// File: options.go
// Functional configuration for Tree, mirroring the project-wide pattern:
// an internal Options struct, documented defaults, WithX constructors, and
// a gatherOptions helper applied left-to-right at construction time.
package medianbvh

// AabbUpdatePolicy selects how Tree.Update propagates a changed AABB.
type AabbUpdatePolicy uint8

const (
	// PolicyExtendAabb propagates the updated AABB upward along the heap
	// path immediately, OR-ing masks and unioning AABBs with Epsilon
	// slack. Node AABBs only ever grow under this policy; a periodic
	// Rebuild is the documented remedy for long-lived drift (spec §9
	// Open Question i — no automatic threshold is imposed here).
	PolicyExtendAabb AabbUpdatePolicy = iota
	// PolicyFullRebuildOnNextRead defers all propagation and marks the
	// tree dirty; the next Rebuild (or any query, which rebuilds lazily
	// if dirty) picks up the change.
	PolicyFullRebuildOnNextRead
)

// Default tunables (spec §6).
const (
	DefaultSkipLowLayers = 0
	DefaultEpsilon       = 0.02
	DefaultUpdatePolicy  = PolicyExtendAabb
)

// Options holds Tree's construction-time tunables. Unexported: callers
// configure a Tree exclusively through Option values.
type Options struct {
	skipLowLayers int
	epsilon       float64
	updatePolicy  AabbUpdatePolicy
}

// DefaultOptions returns the default tunable set (spec §6).
func DefaultOptions() Options {
	return Options{
		skipLowLayers: DefaultSkipLowLayers,
		epsilon:       DefaultEpsilon,
		updatePolicy:  DefaultUpdatePolicy,
	}
}

// Option mutates an Options value during construction.
type Option func(*Options)

// WithSkipLowLayers sets K, collapsing the bottom K heap levels into
// linear-scan leaf groups of 2^(K+1) entities. Valid range is 0-2; values
// outside that range panic, since they indicate a programmer error rather
// than a runtime condition.
func WithSkipLowLayers(k int) Option {
	return func(o *Options) {
		if k < 0 || k > 2 {
			panic("medianbvh: SkipLowLayers must be in [0, 2]")
		}
		o.skipLowLayers = k
	}
}

// WithEpsilon sets the slack margin added to union AABBs during rebuild
// and extend-aabb updates.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic("medianbvh: Epsilon must be non-negative")
		}
		o.epsilon = eps
	}
}

// WithUpdatePolicy sets the AABB update propagation policy.
func WithUpdatePolicy(p AabbUpdatePolicy) Option {
	return func(o *Options) { o.updatePolicy = p }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
