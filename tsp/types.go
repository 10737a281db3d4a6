package tsp

import (
	"sync"
	"sync/atomic"
)

// sentinelCost represents "infinity" for BestCell.cost: no tour found yet.
const sentinelCost = int64(1) << 62

// Node is a partial tour on the DFS stack (spec §3's Task/Node tuple).
type Node struct {
	Depth    int    // number of cities on the prefix, >= 2 for seeded tasks
	Cost     int64  // sum of edge costs along path[0..depth)
	Last     int    // path[depth-1]
	Mask     uint32 // bit i set iff city i is in path
	Path     []int  // path[0..depth), path[0] == 0
	ParentLB int64  // lower bound attached when the node was built; read by the DFS only under Scheme B
}

// clone returns a deep copy of n, safe to push as an independent stack entry.
func (n Node) clone() Node {
	p := make([]int, len(n.Path))
	copy(p, n.Path)
	n.Path = p

	return n
}

// WorkerIdentity is the (rank, world_size) pair a Coordinator assigns a
// worker. Rank 0 has no search privileges; it only coordinates result
// emission (spec §3).
type WorkerIdentity struct {
	Rank      int
	WorldSize int
}

// BestCell is the shared best-solution cell of spec §3/§4.4: a pair
// (best_cost, best_path) that is monotonically non-increasing, read racily
// on the pruning fast path, and written under mutual exclusion with a
// re-check, so no reader ever observes a torn path.
type BestCell struct {
	cost  atomic.Int64
	nodes atomic.Int64
	mu    sync.Mutex
	path  []int
}

// NewBestCell returns a BestCell sized for an N-city tour (path length N+1),
// initialized to the "no tour found" sentinel.
func NewBestCell(n int) *BestCell {
	bc := &BestCell{path: make([]int, n+1)}
	bc.cost.Store(sentinelCost)

	return bc
}

// Peek returns the current best cost. This is the relaxed pruning fast path:
// a stale read only costs extra exploration, never a wrong answer (spec §5).
func (b *BestCell) Peek() int64 {
	return b.cost.Load()
}

// Found reports whether any complete tour has been committed yet.
func (b *BestCell) Found() bool {
	return b.Peek() < sentinelCost
}

// CountNode records one more stack pop against this cell's node counter.
// Every DFS thread sharing a BestCell increments the same counter, so
// Nodes reports the worker's total exploration progress across all of its
// threads, not just one.
func (b *BestCell) CountNode() {
	b.nodes.Add(1)
}

// Nodes returns the number of stack pops recorded so far via CountNode.
func (b *BestCell) Nodes() int64 {
	return b.nodes.Load()
}

// TryCommit attempts to install (cost, path) as the new incumbent. It
// re-checks cost against the current best under the lock before writing, so
// concurrent committers can never regress best_cost or interleave a torn
// path write. Returns whether the commit took effect.
func (b *BestCell) TryCommit(cost int64, path []int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cost >= b.cost.Load() {
		return false
	}
	copy(b.path, path)
	b.cost.Store(cost)

	return true
}

// Snapshot returns a consistent (cost, path) pair under the lock.
func (b *BestCell) Snapshot() (int64, []int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]int, len(b.path))
	copy(out, b.path)

	return b.cost.Load(), out
}
