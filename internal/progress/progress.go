// Package progress defines the shared, read-only progress snapshot that
// cmd/tspbb's optional observability shell (the Chi debug server and the
// Bubble Tea TUI) subscribes to. Neither subscriber sits on the path from
// seed task to result: both only ever read a Feed, never influence the
// search (spec.md's core algorithm is unaware this package exists).
package progress

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time view of one run's progress.
type Snapshot struct {
	RunID     string    `json:"run_id"`
	WorldSize int       `json:"world_size"`
	Threads   int       `json:"threads"`
	Started   time.Time `json:"started"`
	BestCost  int64     `json:"best_cost,omitempty"`
	BestFound bool      `json:"best_found"`
	// NodesExplored is the sum of NodesByRank, kept alongside it so readers
	// that only want a headline throughput number don't have to sum the map
	// themselves.
	NodesExplored int64 `json:"nodes_explored"`
	// NodesByRank is each reporting worker's own running node count, the
	// per-worker breakdown a distributed run's progress view needs on top
	// of the aggregate.
	NodesByRank map[int]int64 `json:"nodes_by_rank"`
	Done        bool          `json:"done"`
}

// Feed is a mutex-guarded Snapshot that a Coordinator run publishes into
// and any number of readers (debug server, TUI) poll from. Deliberately
// simple — no channels or fan-out — since readers only ever want "the
// latest state", not a change stream.
type Feed struct {
	mu          sync.RWMutex
	snap        Snapshot
	nodesByRank map[int]int64
}

// NewFeed returns a Feed seeded with the run's static identity fields.
func NewFeed(runID string, worldSize, threads int) *Feed {
	return &Feed{
		snap: Snapshot{
			RunID:     runID,
			WorldSize: worldSize,
			Threads:   threads,
			Started:   time.Now(),
		},
		nodesByRank: make(map[int]int64, worldSize),
	}
}

// Observe records one rank's live progress: its worker-local best cost (if
// any tour has been found yet) and its running node-exploration count.
// Called from a tsp.ProgressFunc while the search is still in flight, so
// unlike Update this never sets Done — a run in local mode calls this
// concurrently from every simulated rank's goroutine, hence the lock.
// NodesExplored in the resulting Snapshot is the sum across every rank
// that has reported so far, mirroring how the eventual result is itself a
// reduction over all ranks.
func (f *Feed) Observe(rank int, bestCost int64, bestFound bool, nodesExplored int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nodesByRank[rank] = nodesExplored
	var total int64
	for _, n := range f.nodesByRank {
		total += n
	}
	f.snap.NodesExplored = total

	if bestFound && (!f.snap.BestFound || bestCost < f.snap.BestCost) {
		f.snap.BestCost = bestCost
		f.snap.BestFound = true
	}
}

// nodesByRankCopy returns a defensive copy of f.nodesByRank for embedding in
// a returned Snapshot, so callers mutating the map they receive can never
// corrupt the Feed's own state. Must be called with f.mu held.
func (f *Feed) nodesByRankCopy() map[int]int64 {
	out := make(map[int]int64, len(f.nodesByRank))
	for k, v := range f.nodesByRank {
		out[k] = v
	}

	return out
}

// Update sets the run's final, agreed-upon outcome and marks it done.
func (f *Feed) Update(bestCost int64, bestFound, done bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.snap.BestCost = bestCost
	f.snap.BestFound = bestFound
	f.snap.Done = done
}

// Snapshot returns a copy of the current state, including a defensive copy
// of the per-rank node counts.
func (f *Feed) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	snap := f.snap
	snap.NodesByRank = f.nodesByRankCopy()

	return snap
}
