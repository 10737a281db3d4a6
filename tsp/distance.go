package tsp

import (
	"github.com/coldbrew-labs/tspbb/matrix"
)

// MaxCities is the largest instance this package supports: Node.Mask is a
// uint32 bitfield, and the DFS branch ordering / bound bookkeeping are only
// specified (and tested) up to this size (spec §1).
const MaxCities = 18

// DistanceModel owns the immutable N x N cost matrix D and its derived
// cheapest/second-cheapest outgoing edge tables (spec §4.1).
type DistanceModel struct {
	N   int
	D   matrix.Matrix
	C1  []int64 // C1[i] = min over j != i of D[i][j]
	C2  []int64 // C2[i] = second-smallest such value
}

// NewDistanceModel builds a DistanceModel from a square *matrix.Dense that
// the caller has already populated (e.g. via ParseDistanceFile). D[i][i] is
// forced to 0 regardless of the supplied value, per spec §4.1.
func NewDistanceModel(d *matrix.Dense) (*DistanceModel, error) {
	n := d.Rows()
	if n != d.Cols() {
		return nil, ErrMalformedMatrix
	}
	if n < 1 || n > MaxCities {
		return nil, ErrSizeOutOfRange
	}
	for i := 0; i < n; i++ {
		if err := d.Set(i, i, 0); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := d.At(i, j)
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}

	dm := &DistanceModel{N: n, D: d}
	dm.buildCheapestEdges()

	return dm, nil
}

// buildCheapestEdges computes C1/C2 in one pass per row. For N < 3 there are
// fewer than two off-diagonal entries per row; missing values default to 0
// (spec §4.1).
func (dm *DistanceModel) buildCheapestEdges() {
	n := dm.N
	dm.C1 = make([]int64, n)
	dm.C2 = make([]int64, n)

	for i := 0; i < n; i++ {
		var c1, c2 int64 = -1, -1
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w, _ := dm.D.At(i, j)
			switch {
			case c1 == -1 || w < c1:
				c2 = c1
				c1 = w
			case c2 == -1 || w < c2:
				c2 = w
			}
		}
		if c1 == -1 {
			c1 = 0
		}
		if c2 == -1 {
			c2 = 0
		}
		dm.C1[i] = c1
		dm.C2[i] = c2
	}
}

// At returns D[i][j] without an error return, for hot-path use inside the
// DFS engine where i, j are already known to be in range.
func (dm *DistanceModel) At(i, j int) int64 {
	v, _ := dm.D.At(i, j)

	return v
}
