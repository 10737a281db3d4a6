// Package tsp implements a distributed, exact branch-and-bound solver for
// the symmetric Travelling-Salesman Problem on small instances (N <= 18).
//
// The search is organized in five layers, leaves-first:
//
//   - DistanceModel: the immutable N x N cost matrix plus derived
//     cheapest/second-cheapest outgoing edge tables (c1/c2).
//   - BoundOracle: admissible lower bounds for a partial tour, computed
//     from scratch (Scheme A, minimum-outgoing-edge) or incrementally
//     (Scheme B, two-edge-averaged, O(1) per extension).
//   - RunDFS: a single-goroutine, explicit-stack branch-and-bound
//     enumerator that updates a shared BestCell.
//   - ParallelDriver: fans a worker's seed tasks out across T goroutines,
//     all racing relaxed atomic reads and serializing improving writes on one
//     BestCell.
//   - Coordinator: partitions the N-1 first-hop seeds across WorldSize
//     workers (owner-computes, deterministic, no idle master), drives the
//     ParallelDriver on each, and reduces the per-worker results to a
//     single global optimum via a pluggable Transport.
//
// Everything here is exact: no heuristic tours, no instances above 18
// cities (Node.Mask is a uint32 bitfield), no work-stealing, no
// checkpointing. The admissible-bound/branch-ordering/stack-discipline
// decisions follow github.com/katalvlaran/lvlath's tsp.TSPBranchAndBound,
// adapted from a single-process float64 solver to this package's
// distributed, integer-cost contract.
package tsp
