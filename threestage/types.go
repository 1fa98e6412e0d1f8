package threestage

import (
	"sync/atomic"

	"github.com/katalvlaran/spatialpart/query"
	"github.com/katalvlaran/spatialpart/spatial"
)

// State reports which phase of the rebuild cycle Index currently sits in.
type State uint8

const (
	// Steady: no background rebuild is in flight.
	Steady State = iota
	// Rebuilding: a shadow copy exists and the external scheduler has been
	// handed its finished flag, but that flag has not yet been set.
	Rebuilding
	// Integrating: retained only for Stats readability immediately after a
	// swap; Index itself transitions straight back to Steady once
	// TryIntegrateOptimised finishes, since integration is synchronous.
	Integrating
)

func (s State) String() string {
	switch s {
	case Steady:
		return "Steady"
	case Rebuilding:
		return "Rebuilding"
	case Integrating:
		return "Integrating"
	default:
		return "Unknown"
	}
}

// Scheduler runs a shadow rebuild. The implementation owns *how* and *when*
// the work actually executes (inline, goroutine, worker pool); it must
// eventually populate shadow and set *finished to true.
type Scheduler func(finished *atomic.Bool, shadow query.Index, userData any)

// NewShadow constructs a fresh, empty query.Index to serve as the next
// rebuild's shadow copy.
type NewShadow func() query.Index

// Stats is a point-in-time snapshot of Index's internal bookkeeping,
// exposed for observability in place of log lines (spec §1 ambient stack).
type Stats struct {
	State                 State
	ElementsInOptimised   int
	ElementsInDynamic     int
	MutationsSinceRebuild int
	RebuildInFlight       bool
	PendingRemovals       int
	PendingMaskUpdates    int
}

// Index composes an optimised primary, a churn-absorbing dynamic shard, and
// an optional in-flight rebuild shadow (spec §4.7).
type Index struct {
	opts Options

	optimised query.Index
	dynamic   query.Index
	rebuild   query.Index // nil when no rebuild is in flight

	newShadow NewShadow
	scheduler Scheduler
	userData  any

	finished atomic.Bool
	state    State

	mutationsSinceRebuild int

	// pendingRemovals holds entities moved off optimised (via Update or
	// Remove) while a rebuild is in flight; the snapshot taken at
	// TryScheduleRebuild time still contains them, so they must be
	// re-removed from the new primary once the shadow swaps in.
	pendingRemovals map[spatial.EntityHandle]struct{}
	// pendingMasks holds SetMask calls against optimised entities made
	// while a rebuild is in flight, replayed against the new primary after
	// swap.
	pendingMasks map[spatial.EntityHandle]spatial.Mask
}

// New constructs an Index from an already-built optimised shard and an
// empty dynamic shard. newShadow builds a fresh empty index of whatever
// concrete type the caller wants rebuilds to produce; scheduler decides how
// a shadow actually gets populated and when.
func New(optimised, dynamic query.Index, newShadow NewShadow, scheduler Scheduler, userData any, opts ...Option) *Index {
	return &Index{
		opts:            gatherOptions(opts...),
		optimised:       optimised,
		dynamic:         dynamic,
		newShadow:       newShadow,
		scheduler:       scheduler,
		userData:        userData,
		pendingRemovals: make(map[spatial.EntityHandle]struct{}),
		pendingMasks:    make(map[spatial.EntityHandle]spatial.Mask),
	}
}
