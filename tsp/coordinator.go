// Coordinator (spec §3/§4.4/§4.5): owner-computes static partitioning of
// first-hop seed tasks across world_size workers, each worker's intra-worker
// parallel search, and the final two-phase distributed reduction. This is
// the single entry point a cmd/ binary or test calls to solve an instance
// end to end, mirroring the teacher's tsp.Solve top-level entry point
// (tsp/solve.go) that wires DistanceModel+BoundOracle+search together
// behind one function.
package tsp

import (
	"context"
	"fmt"
	"time"
)

// Progress is one point-in-time observation of a worker's local search,
// reported through CoordinatorOptions.OnProgress while Run is still
// searching (spec §2/§9's observability shell: a live surface, not just a
// final snapshot).
type Progress struct {
	Rank          int
	BestCost      int64
	BestFound     bool
	NodesExplored int64
}

// ProgressFunc receives periodic Progress observations. May be called
// concurrently from a Coordinator.Run goroutine; implementations must be
// safe for that (progress.Feed.Observe is).
type ProgressFunc func(Progress)

// CoordinatorOptions configures one end-to-end distributed solve.
type CoordinatorOptions struct {
	Identity  WorkerIdentity
	Scheme    BoundScheme
	Driver    DriverOptions
	Transport Transport

	// OnProgress, if set, is called roughly every ProgressInterval while
	// this worker's local search is running. Never called for the N==1
	// special case, which completes without ever starting a search.
	OnProgress ProgressFunc

	// ProgressInterval is how often OnProgress is polled. Defaults to
	// 200ms if zero, matching internal/tui's refresh tick.
	ProgressInterval time.Duration
}

// Solution is the final, agreed-upon answer every worker returns from Run.
type Solution struct {
	Cost  int64
	Path  []int
	Found bool
}

// Run solves dm end to end from this worker's perspective: verifies every
// worker agrees on dm, seeds and partitions this worker's share of the
// first-hop tasks, runs the local parallel search, and reduces to the
// global optimum. Every worker that calls Run on the same logical instance
// (coordinated through the same Transport) returns an identical Solution.
func Run(ctx context.Context, dm *DistanceModel, opts CoordinatorOptions) (Solution, error) {
	if opts.Identity.WorldSize < 1 {
		return Solution{}, fmt.Errorf("tsp: invalid world_size %d", opts.Identity.WorldSize)
	}
	if opts.Identity.Rank < 0 || opts.Identity.Rank >= opts.Identity.WorldSize {
		return Solution{}, fmt.Errorf("tsp: rank %d out of range [0, %d)", opts.Identity.Rank, opts.Identity.WorldSize)
	}

	if err := opts.Transport.VerifyInstance(ctx, opts.Identity, dm); err != nil {
		return Solution{}, err
	}

	bo := NewBoundOracle(dm, opts.Scheme)

	local := Result{Rank: opts.Identity.Rank, Cost: sentinelCost}
	if dm.N == 1 {
		if opts.Identity.Rank == 0 {
			local = Result{Rank: 0, Cost: 0, Path: []int{0, 0}}
		}
	} else {
		mySeeds := SeedShare(dm.N, opts.Identity.Rank, opts.Identity.WorldSize)
		seeds := make([]Node, len(mySeeds))
		for i, city := range mySeeds {
			seeds[i] = firstHopSeed(dm, bo, city)
		}

		best := NewBestCell(dm.N)
		stopProgress := startProgressTicker(opts, best)
		err := RunWorker(ctx, dm, bo, seeds, best, opts.Driver)
		stopProgress()
		if err != nil {
			return Solution{}, err
		}
		cost, path := best.Snapshot()
		if cost < sentinelCost {
			local = Result{Rank: opts.Identity.Rank, Cost: cost, Path: path}
		}
	}

	winner, err := opts.Transport.Reduce(ctx, opts.Identity, local)
	if err != nil {
		return Solution{}, err
	}

	if winner.Cost >= sentinelCost {
		return Solution{Found: false}, nil
	}

	return Solution{Cost: winner.Cost, Path: winner.Path, Found: true}, nil
}

// startProgressTicker, if opts.OnProgress is set, starts a goroutine that
// polls best's racy Peek/Nodes fast paths on a timer and reports them
// through opts.OnProgress, until the returned stop func is called. Polling
// best rather than threading a callback through RunDFS keeps the DFS hot
// loop free of any observability overhead.
func startProgressTicker(opts CoordinatorOptions, best *BestCell) func() {
	if opts.OnProgress == nil {
		return func() {}
	}

	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cost := best.Peek()
				opts.OnProgress(Progress{
					Rank:          opts.Identity.Rank,
					BestCost:      cost,
					BestFound:     best.Found(),
					NodesExplored: best.Nodes(),
				})
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}

// SeedShare returns the contiguous, balanced slice of first-hop cities
// [1, N) that rank owns out of worldSize workers, under owner-computes
// static partitioning (spec §4.4: "no work-stealing, no dynamic topology
// changes — the partition is fixed for the whole run"). City 0 is always
// path[0] and is never itself a seed city.
func SeedShare(n, rank, worldSize int) []int {
	cities := make([]int, 0, n-1)
	for c := 1; c < n; c++ {
		cities = append(cities, c)
	}

	chunks := Partition(nodesOf(cities), worldSize)
	if rank >= len(chunks) {
		return nil
	}

	out := make([]int, len(chunks[rank]))
	for i, node := range chunks[rank] {
		out[i] = node.Last
	}

	return out
}

// nodesOf wraps plain city indices as degenerate Nodes so Partition (which
// operates on []Node for the intra-worker case) can be reused for the
// inter-worker seed-city split too; only the Last field is meaningful here.
func nodesOf(cities []int) []Node {
	ns := make([]Node, len(cities))
	for i, c := range cities {
		ns[i] = Node{Last: c}
	}

	return ns
}

// firstHopSeed builds the depth-2 partial tour 0 -> city as a DFS seed task
// (spec §4.4's "first-hop seeding"), with its initial lower bound computed
// from scratch since a seed has no parent node to derive it from.
func firstHopSeed(dm *DistanceModel, bo *BoundOracle, city int) Node {
	cost := dm.At(0, city)
	mask := uint32(1) | uint32(1)<<uint(city)
	n := Node{
		Depth: 2,
		Cost:  cost,
		Last:  city,
		Mask:  mask,
		Path:  []int{0, city},
	}
	n.ParentLB = bo.FromScratch(n.Cost, n.Mask)

	return n
}
