package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coldbrew-labs/tspbb/tsp"
)

// bruteForceOptimalCost enumerates every Hamiltonian cycle starting and
// ending at city 0 and returns the minimum cost. Used only as a ground-truth
// oracle in tests (N small enough that N-1! is tractable), never by the
// solver itself — the whole point of the branch-and-bound engine is to
// avoid this enumeration.
func bruteForceOptimalCost(dm *tsp.DistanceModel) int64 {
	n := dm.N
	if n == 1 {
		return 0
	}
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}

	best := int64(-1)
	var permute func(prefix []int, remaining []int)
	permute = func(prefix []int, remaining []int) {
		if len(remaining) == 0 {
			cost := dm.At(0, prefix[0])
			for i := 0; i+1 < len(prefix); i++ {
				cost += dm.At(prefix[i], prefix[i+1])
			}
			cost += dm.At(prefix[len(prefix)-1], 0)
			if best == -1 || cost < best {
				best = cost
			}

			return
		}
		for i, c := range remaining {
			nextRemaining := make([]int, 0, len(remaining)-1)
			nextRemaining = append(nextRemaining, remaining[:i]...)
			nextRemaining = append(nextRemaining, remaining[i+1:]...)
			permute(append(prefix, c), nextRemaining)
		}
	}
	permute(nil, rest)

	return best
}

func solveSingleWorker(t *testing.T, dm *tsp.DistanceModel, scheme tsp.BoundScheme, threads int) tsp.Solution {
	t.Helper()
	transport := tsp.NewLocalTransport(1)
	identity := tsp.WorkerIdentity{Rank: 0, WorldSize: 1}
	sol, err := tsp.Run(context.Background(), dm, tsp.CoordinatorOptions{
		Identity:  identity,
		Scheme:    scheme,
		Driver:    tsp.DriverOptions{Threads: threads},
		Transport: transport,
	})
	require.NoError(t, err)

	return sol
}

func TestRun_MatchesBruteForce_SmallInstances(t *testing.T) {
	cases := []struct {
		name   string
		values []int64
		n      int
	}{
		{"n3", []int64{0, 1, 2, 1, 0, 3, 2, 3, 0}, 3},
		{"n4", []int64{
			0, 10, 15, 20,
			10, 0, 35, 25,
			15, 35, 0, 30,
			20, 25, 30, 0,
		}, 4},
		{"n5-asymmetricish-but-symmetric", []int64{
			0, 2, 9, 10, 7,
			2, 0, 6, 4, 3,
			9, 6, 0, 8, 5,
			10, 4, 8, 0, 6,
			7, 3, 5, 6, 0,
		}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := mustDense(t, tc.values, tc.n)
			dm, err := tsp.NewDistanceModel(d)
			require.NoError(t, err)

			want := bruteForceOptimalCost(dm)

			for _, scheme := range []tsp.BoundScheme{tsp.SchemeMinEdge, tsp.SchemeTwoEdgeAvg} {
				for _, threads := range []int{1, 3} {
					sol := solveSingleWorker(t, dm, scheme, threads)
					require.True(t, sol.Found)
					require.Equal(t, want, sol.Cost, "scheme=%v threads=%d", scheme, threads)
				}
			}
		})
	}
}

func TestRun_SingleCity(t *testing.T) {
	d := mustDense(t, []int64{0}, 1)
	dm, err := tsp.NewDistanceModel(d)
	require.NoError(t, err)

	sol := solveSingleWorker(t, dm, tsp.SchemeTwoEdgeAvg, 1)
	require.True(t, sol.Found)
	require.EqualValues(t, 0, sol.Cost)
}

func TestRun_DistributedAcrossWorkers_MatchesSingleWorker(t *testing.T) {
	d := mustDense(t, []int64{
		0, 10, 15, 20,
		10, 0, 35, 25,
		15, 35, 0, 30,
		20, 25, 30, 0,
	}, 4)
	dm, err := tsp.NewDistanceModel(d)
	require.NoError(t, err)

	want := solveSingleWorker(t, dm, tsp.SchemeTwoEdgeAvg, 1)

	const worldSize = 3
	transport := tsp.NewLocalTransport(worldSize)

	type outcome struct {
		sol tsp.Solution
		err error
	}
	results := make(chan outcome, worldSize)
	for rank := 0; rank < worldSize; rank++ {
		rank := rank
		go func() {
			sol, err := tsp.Run(context.Background(), dm, tsp.CoordinatorOptions{
				Identity:  tsp.WorkerIdentity{Rank: rank, WorldSize: worldSize},
				Scheme:    tsp.SchemeTwoEdgeAvg,
				Driver:    tsp.DriverOptions{Threads: 2},
				Transport: transport,
			})
			results <- outcome{sol, err}
		}()
	}

	for i := 0; i < worldSize; i++ {
		o := <-results
		require.NoError(t, o.err)
		require.True(t, o.sol.Found)
		require.Equal(t, want.Cost, o.sol.Cost)
	}
}
