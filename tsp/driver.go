// Parallel Driver (spec §4.4): fans a worker's assigned seed tasks out
// across T goroutines ("threads") that share one BestCell, joins them, and
// reports the worker-local optimum. Grounded on the teacher's fan-out/join
// shape (graph/ concurrency helpers use sync.WaitGroup directly); this
// package uses golang.org/x/sync/errgroup instead, so the first goroutine's
// error (e.g. ErrResourceExhausted) is the one returned and the shared
// context is cancelled. RunDFS does not observe that context, so goroutines
// already searching run their chunk to completion.
package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DriverOptions configures a single worker's local parallel search.
type DriverOptions struct {
	// Threads is T, the number of goroutines this worker fans its seed
	// tasks out across. Must be >= 1.
	Threads int

	// DFS is forwarded unmodified to every RunDFS call (spec §4.3).
	DFS DFSOptions
}

// Partition splits seeds into up to t contiguous, balanced chunks, the
// owner-computes static partition spec §4.4 requires for intra-worker
// fan-out: chunk i gets either floor(len/t) or ceil(len/t) seeds, with the
// longer chunks first, so no seed is ever assigned to more than one thread
// and no thread starves while another is overloaded.
func Partition(seeds []Node, t int) [][]Node {
	if t < 1 {
		t = 1
	}
	if len(seeds) == 0 {
		return nil
	}
	if t > len(seeds) {
		t = len(seeds)
	}

	out := make([][]Node, t)
	base := len(seeds) / t
	rem := len(seeds) % t

	start := 0
	for i := 0; i < t; i++ {
		size := base
		if i < rem {
			size++
		}
		out[i] = seeds[start : start+size]
		start += size
	}

	return out
}

// RunWorker executes one worker's assigned seeds across opts.Threads
// goroutines sharing best, returning once every goroutine has finished
// exploring (spec §4.4: "a worker's local optimum is only final once every
// thread has returned"). best is supplied by the caller, rather than
// constructed here, so a Coordinator can poll it for live progress
// (Peek/Nodes) while the search is still running. The context allows a
// Coordinator to cancel every worker's threads in lockstep, e.g. once a
// sibling worker has already reported the provably-global optimum under a
// future early-termination extension; ctx is checked once per goroutine
// before its chunk starts and RunDFS itself does not poll it, so
// cancellation only stops goroutines that have not yet begun searching.
func RunWorker(ctx context.Context, dm *DistanceModel, bo *BoundOracle, seeds []Node, best *BestCell, opts DriverOptions) error {
	chunks := Partition(seeds, opts.Threads)

	g, ctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			return RunDFS(dm, bo, chunk, best, opts.DFS)
		})
	}

	return g.Wait()
}
