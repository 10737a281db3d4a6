package tsp

import (
	"context"
	"sync"
)

// LocalTransport implements Transport for an in-process run: all
// world_size workers are goroutines in this one process sharing no DFS
// state (each Coordinator.Run call owns its own BestCell) but
// rendezvousing through this shared, mutex-guarded struct to simulate the
// message passing a real distributed run would do over the network. Every
// worker in a run must share the same *LocalTransport instance.
type LocalTransport struct {
	worldSize int

	mu       sync.Mutex
	cond     *sync.Cond
	hash     uint64
	hashSeen int
	mismatch bool

	waiting int
	winner  Result
}

// NewLocalTransport returns a LocalTransport for a run of the given
// world_size.
func NewLocalTransport(worldSize int) *LocalTransport {
	lt := &LocalTransport{worldSize: worldSize}
	lt.cond = sync.NewCond(&lt.mu)

	return lt
}

// VerifyInstance has every worker report a structural hash of its
// DistanceModel and blocks until all world_size workers have reported,
// succeeding only if every hash matches (spec §4.5 "before dividing up
// seed tasks, workers MUST agree they are solving the same instance").
func (lt *LocalTransport) VerifyInstance(ctx context.Context, identity WorkerIdentity, dm *DistanceModel) error {
	h := distanceModelHash(dm)

	lt.mu.Lock()
	defer lt.mu.Unlock()

	if lt.hashSeen == 0 {
		lt.hash = h
	} else if h != lt.hash {
		lt.mismatch = true
	}
	lt.hashSeen++
	lt.cond.Broadcast()

	for lt.hashSeen < lt.worldSize {
		lt.cond.Wait()
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	if lt.mismatch {
		return ErrTransportMismatch
	}

	return nil
}

// Reduce blocks until every worker has submitted its local Result, then
// returns the same winning Result to every caller (spec §4.5's two-phase
// global-minimum-then-gather, collapsed here since in-process workers
// already hold the winning path in memory, so no separate gather
// round-trip is needed).
func (lt *LocalTransport) Reduce(ctx context.Context, identity WorkerIdentity, local Result) (Result, error) {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	if lt.waiting == 0 {
		lt.winner = Result{Cost: sentinelCost, Rank: -1}
	}
	if betterResult(lt.winner, local) {
		lt.winner = local
	}
	lt.waiting++
	lt.cond.Broadcast()

	for lt.waiting < lt.worldSize {
		lt.cond.Wait()
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
	}

	return lt.winner, nil
}
