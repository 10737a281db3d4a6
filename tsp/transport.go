// Transport (spec §4.5): the two-phase distributed reduction a Coordinator
// uses once every worker has a local optimum — first a global-minimum
// reduction, then a gather of the winning path, with lowest-rank tiebreak
// when two workers report equal cost. Modeled as an interface so the same
// Coordinator logic drives both an in-process run (LocalTransport, used by
// every correctness test and by world_size==1 runs) and a genuinely
// multi-process run (RedisTransport, transport_redis.go).
package tsp

import "context"

// Result is one worker's contribution to the reduction: its local optimum
// and the rank that found it. Cost == sentinelCost means "no tour found"
// and must never win a reduction against any worker that did find one,
// matching BestCell's sentinel convention.
type Result struct {
	Rank int
	Cost int64
	Path []int
}

// Transport is the coordination surface a Coordinator needs beyond each
// worker's own local search: verifying every worker agrees on the problem
// instance, then reducing N local Results down to the single global winner.
type Transport interface {
	// VerifyInstance confirms every worker is solving the same DistanceModel,
	// returning ErrTransportMismatch if any worker disagrees.
	VerifyInstance(ctx context.Context, identity WorkerIdentity, dm *DistanceModel) error

	// Reduce performs the two-phase global-minimum-then-gather reduction of
	// spec §4.5 and returns the winning Result, identical on every caller.
	Reduce(ctx context.Context, identity WorkerIdentity, local Result) (Result, error)
}

// betterResult reports whether candidate should replace current as the
// reduction's running winner: strictly lower cost wins outright; on an
// exact tie, the lower rank wins (spec §4.5's tiebreak).
func betterResult(current, candidate Result) bool {
	if candidate.Cost != current.Cost {
		return candidate.Cost < current.Cost
	}

	return candidate.Rank < current.Rank
}
