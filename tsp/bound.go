// Bound Oracle (spec §4.2): two admissible lower-bound schemes. Both must
// satisfy LB(partial) <= cost_of_any_extension(partial), so pruning never
// discards an optimal completion. Modeled as a capability with two
// operations, per the teacher's "polymorphism over bound schemes" design
// note (spec §9) — the DFS Engine is generic over whichever scheme is
// configured; Scheme A simply never calls Incremental.
package tsp

import "math/bits"

// BoundScheme selects which admissible lower bound BoundOracle computes.
type BoundScheme int

const (
	// SchemeMinEdge is Scheme A: LB = cost + sum over unvisited i of C1[i].
	// O(N) per call.
	SchemeMinEdge BoundScheme = iota

	// SchemeTwoEdgeAvg is Scheme B: LB = cost + sum over unvisited i of
	// floor((C1[i]+C2[i])/2). Admits an O(1) incremental update when
	// extending by edge prev->cur.
	SchemeTwoEdgeAvg
)

// BoundOracle computes admissible lower bounds under one consistently-used
// scheme (spec §4.2: "An implementation MUST use one scheme consistently
// for a given worker").
type BoundOracle struct {
	dm     *DistanceModel
	scheme BoundScheme
	avg    []int64 // avg[i] = floor((C1[i]+C2[i])/2); only used by Scheme B
}

// NewBoundOracle builds a BoundOracle over dm using the given scheme.
func NewBoundOracle(dm *DistanceModel, scheme BoundScheme) *BoundOracle {
	bo := &BoundOracle{dm: dm, scheme: scheme}
	if scheme == SchemeTwoEdgeAvg {
		bo.avg = make([]int64, dm.N)
		for i := 0; i < dm.N; i++ {
			bo.avg[i] = (dm.C1[i] + dm.C2[i]) / 2
		}
	}

	return bo
}

// Scheme reports which bound scheme this oracle computes.
func (bo *BoundOracle) Scheme() BoundScheme { return bo.scheme }

// perCityTerm returns the per-unvisited-city contribution under the active
// scheme: C1[i] for Scheme A, floor((C1[i]+C2[i])/2) for Scheme B.
func (bo *BoundOracle) perCityTerm(i int) int64 {
	if bo.scheme == SchemeTwoEdgeAvg {
		return bo.avg[i]
	}

	return bo.dm.C1[i]
}

// FromScratch computes LB(cost, mask) = cost + sum over unvisited i of
// perCityTerm(i), iterating the set bits of ~mask (spec §4.2).
func (bo *BoundOracle) FromScratch(cost int64, mask uint32) int64 {
	n := bo.dm.N
	full := uint32(1)<<uint(n) - 1
	unvisited := ^mask & full

	var extra int64
	for unvisited != 0 {
		i := bits.TrailingZeros32(unvisited)
		extra += bo.perCityTerm(i)
		unvisited &= unvisited - 1
	}

	return cost + extra
}

// Incremental computes the Scheme-B lower bound for a child node reached by
// extending a parent (whose lower bound was parentLB) with edge prev->cur:
//
//	LB_new = parentLB + D[prev][cur] - floor((C1[cur]+C2[cur])/2)
//
// City cur was unvisited in the parent and contributed its averaged-edge
// term to parentLB; in the child it is visited and instead contributes the
// actual incoming edge D[prev][cur]. All other unvisited cities contribute
// identically, so the delta is exact (spec §4.2). Only meaningful under
// SchemeTwoEdgeAvg; callers using SchemeMinEdge must not call this.
func (bo *BoundOracle) Incremental(parentLB int64, prev, cur int) int64 {
	return parentLB + bo.dm.At(prev, cur) - bo.avg[cur]
}
