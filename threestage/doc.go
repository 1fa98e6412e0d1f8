// Package threestage composes three query.Index shards into one eventually-
// consistent broadphase (spec §4.7): a small churn-absorbing "dynamic"
// index receives every Add and every updated entity, a large "optimised" index serves
// most queries cheaply, and an optional "rebuild" shadow is built
// off-thread from a snapshot of both, then swapped in once ready.
//
// The shadow's construction is handed to an external scheduler so the
// caller decides how (goroutine, worker pool, whatever) and when it runs;
// Index only decides *when to start* one (TryScheduleRebuild, triggered by
// a mutation-count threshold or an explicit Rebuild call) and *when to
// adopt it* (TryIntegrateOptimised, polled at the top of every mutation,
// lookup, query, Rebuild and RestartIterator by checking the scheduler's
// finished flag; Clear, ShrinkToFit, GetMemoryUsage and the fast-adding
// hints do not poll).
package threestage
