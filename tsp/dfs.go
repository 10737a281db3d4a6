// DFS Engine (spec §4.3): given a set of seed partial tours and a shared
// best-cost cell, explore all completions that could improve the best cost.
//
// The stack is explicit (a []Node LIFO slice), never recursion — spec §9
// mandates this explicitly: "keep this decision. Recursion in a
// branch-and-bound solver this deep (N=18) would cost cache-unfriendly
// frames and complicate stack sizing." The teacher's own bb.go uses Go call
// recursion for its single-process solver; this package trades that
// convenience for the spec's explicit-stack contract.
package tsp

import "sort"

// DFSOptions configures one RunDFS invocation.
type DFSOptions struct {
	// MaxStackNodes caps the explicit stack's length; 0 means unbounded.
	// Modeling ErrResourceExhausted (spec §4.3) without needing to actually
	// exhaust process memory on an N<=18 instance: set this artificially low
	// in a test to exercise the failure path.
	MaxStackNodes int
}

// RunDFS explores all completions of the given seed Nodes that could improve
// best, updating best's (cost, path) whenever a strictly better complete
// tour is found. Returns ErrResourceExhausted if the explicit stack would
// grow past opts.MaxStackNodes; that is fatal to the whole computation
// (spec §4.3/§7) and callers must treat it as such.
func RunDFS(dm *DistanceModel, bo *BoundOracle, seeds []Node, best *BestCell, opts DFSOptions) error {
	stack := make([]Node, 0, initialStackCap(len(seeds)))
	for _, s := range seeds {
		stack = append(stack, s.clone())
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		best.CountNode()

		b := best.Peek()
		if n.Cost >= b {
			continue
		}
		lb := dfsLowerBound(bo, n)
		if lb >= b {
			continue
		}

		if n.Depth == dm.N {
			closeTour(dm, n, best)

			continue
		}

		var err error
		stack, err = pushChildren(dm, bo, n, b, stack, opts)
		if err != nil {
			return err
		}
	}

	return nil
}

// dfsLowerBound computes the admissible lower bound for n. Under
// SchemeTwoEdgeAvg it returns n.ParentLB as attached to the node:
// pushChildren sets it incrementally for every child and firstHopSeed sets
// it from scratch for every seed (a seed built with ParentLB == 0 is simply
// never pruned by bound). Under SchemeMinEdge it recomputes FromScratch.
func dfsLowerBound(bo *BoundOracle, n Node) int64 {
	if bo.Scheme() == SchemeTwoEdgeAvg {
		return n.ParentLB
	}

	return bo.FromScratch(n.Cost, n.Mask)
}

// closeTour closes n into a complete cycle back to city 0 and attempts to
// commit it to best under mutual exclusion, re-checking best_cost inside the
// critical section (spec §4.3 step b).
func closeTour(dm *DistanceModel, n Node, best *BestCell) {
	total := n.Cost + dm.At(n.Last, 0)
	if total >= best.Peek() {
		return
	}
	path := make([]int, len(n.Path)+1)
	copy(path, n.Path)
	path[len(path)-1] = 0
	best.TryCommit(total, path)
}

// childCandidate is a not-yet-pushed child, ordered by outgoing edge cost
// ascending (ties by city index ascending) per spec §4.3's branch-ordering
// rule — mirrors the teacher's neighborOrder/buildNeighborOrder in
// tsp/bb.go, computed per-node here since the visited set changes the
// candidate list at every level (the teacher precomputes a static order
// because its bound does not prune candidates before sorting; here we also
// apply the new-cost/new-bound prune before ever sorting, so the slice is
// already small).
type childCandidate struct {
	city     int
	editCost int64
}

// pushChildren enumerates city as an extension of n in ascending edge-cost
// order, prunes by new_cost/new_bound (and, one level before closing, by
// closing cost), and pushes survivors in reverse order so the LIFO stack
// pops the cheapest edge first (spec §4.3 step c).
func pushChildren(dm *DistanceModel, bo *BoundOracle, n Node, b int64, stack []Node, opts DFSOptions) ([]Node, error) {
	candidates := make([]childCandidate, 0, dm.N-n.Depth)
	for j := 0; j < dm.N; j++ {
		if n.Mask&(1<<uint(j)) != 0 {
			continue
		}
		candidates = append(candidates, childCandidate{city: j, editCost: dm.At(n.Last, j)})
	}
	sort.Slice(candidates, func(i, k int) bool {
		if candidates[i].editCost != candidates[k].editCost {
			return candidates[i].editCost < candidates[k].editCost
		}

		return candidates[i].city < candidates[k].city
	})

	children := make([]Node, 0, len(candidates))
	for _, c := range candidates {
		newCost := n.Cost + c.editCost
		if newCost >= b {
			continue
		}

		var newLB int64
		if bo.Scheme() == SchemeTwoEdgeAvg {
			newLB = bo.Incremental(n.ParentLB, n.Last, c.city)
		} else {
			newLB = bo.FromScratch(newCost, n.Mask|(1<<uint(c.city)))
		}
		if newLB >= b {
			continue
		}

		if n.Depth == dm.N-1 {
			closing := newCost + dm.At(c.city, 0)
			if closing >= b {
				continue
			}
		}

		child := Node{
			Depth:    n.Depth + 1,
			Cost:     newCost,
			Last:     c.city,
			Mask:     n.Mask | (1 << uint(c.city)),
			Path:     append(append([]int(nil), n.Path...), c.city),
			ParentLB: newLB,
		}
		children = append(children, child)
	}

	if opts.MaxStackNodes > 0 && len(stack)+len(children) > opts.MaxStackNodes {
		return stack, ErrResourceExhausted
	}

	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}

	return stack, nil
}

// initialStackCap picks a starting capacity for the explicit stack: 1<<15,
// the typical starting size spec §5 names, or the seed count when that is
// larger, so every seed fits without an initial reallocation.
func initialStackCap(seeds int) int {
	const typical = 1 << 15
	if seeds >= typical {
		return seeds
	}

	return typical
}
