package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldbrew-labs/tspbb/tsp"
)

func seedAt(dm *tsp.DistanceModel, city int) tsp.Node {
	return tsp.Node{
		Depth: 2,
		Cost:  dm.At(0, city),
		Last:  city,
		Mask:  1 | (1 << uint(city)),
		Path:  []int{0, city},
	}
}

func TestRunDFS_FindsKnownOptimum(t *testing.T) {
	dm := square4(t)
	bo := tsp.NewBoundOracle(dm, tsp.SchemeTwoEdgeAvg)
	best := tsp.NewBestCell(dm.N)

	seeds := []tsp.Node{seedAt(dm, 1), seedAt(dm, 2), seedAt(dm, 3)}
	err := tsp.RunDFS(dm, bo, seeds, best, tsp.DFSOptions{})
	require.NoError(t, err)

	cost, path := best.Snapshot()
	want := bruteForceOptimalCost(dm)
	assert.Equal(t, want, cost)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 0, path[len(path)-1])
}

func TestRunDFS_NoSeeds_LeavesBestUntouched(t *testing.T) {
	dm := square4(t)
	bo := tsp.NewBoundOracle(dm, tsp.SchemeMinEdge)
	best := tsp.NewBestCell(dm.N)

	err := tsp.RunDFS(dm, bo, nil, best, tsp.DFSOptions{})
	require.NoError(t, err)
	assert.False(t, best.Found())
}

func TestRunDFS_ResourceExhausted(t *testing.T) {
	dm := square4(t)
	bo := tsp.NewBoundOracle(dm, tsp.SchemeMinEdge)
	best := tsp.NewBestCell(dm.N)

	seeds := []tsp.Node{seedAt(dm, 1), seedAt(dm, 2), seedAt(dm, 3)}
	err := tsp.RunDFS(dm, bo, seeds, best, tsp.DFSOptions{MaxStackNodes: 1})
	assert.ErrorIs(t, err, tsp.ErrResourceExhausted)
}

func TestBestCell_TryCommit_NeverRegresses(t *testing.T) {
	best := tsp.NewBestCell(3)
	assert.True(t, best.TryCommit(10, []int{0, 1, 2, 0}))
	assert.False(t, best.TryCommit(10, []int{0, 2, 1, 0}))
	assert.False(t, best.TryCommit(20, []int{0, 2, 1, 0}))
	assert.True(t, best.TryCommit(5, []int{0, 2, 1, 0}))

	cost, path := best.Snapshot()
	assert.EqualValues(t, 5, cost)
	assert.Equal(t, []int{0, 2, 1, 0}, path)
}
