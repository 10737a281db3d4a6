package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldbrew-labs/tspbb/internal/progress"
)

func TestFeed_Observe_AggregatesNodesAcrossRanks(t *testing.T) {
	feed := progress.NewFeed("run-1", 2, 4)

	feed.Observe(0, 0, false, 10)
	feed.Observe(1, 0, false, 25)

	snap := feed.Snapshot()
	assert.EqualValues(t, 35, snap.NodesExplored)
	assert.EqualValues(t, map[int]int64{0: 10, 1: 25}, snap.NodesByRank)

	feed.Observe(0, 0, false, 40)
	final := feed.Snapshot()
	assert.EqualValues(t, 65, final.NodesExplored)
	assert.EqualValues(t, map[int]int64{0: 40, 1: 25}, final.NodesByRank)
}

func TestFeed_Observe_TracksLowestReportedCost(t *testing.T) {
	feed := progress.NewFeed("run-1", 2, 1)

	feed.Observe(0, 100, true, 5)
	snap := feed.Snapshot()
	assert.True(t, snap.BestFound)
	assert.EqualValues(t, 100, snap.BestCost)

	feed.Observe(1, 40, true, 5)
	snap = feed.Snapshot()
	assert.EqualValues(t, 40, snap.BestCost)

	// A worse candidate from a rank that hasn't improved must not regress
	// the observed best.
	feed.Observe(0, 200, true, 6)
	assert.EqualValues(t, 40, feed.Snapshot().BestCost)
}

func TestFeed_Observe_IgnoresNotYetFound(t *testing.T) {
	feed := progress.NewFeed("run-1", 1, 1)

	feed.Observe(0, 0, false, 3)
	snap := feed.Snapshot()
	assert.False(t, snap.BestFound)
	assert.Zero(t, snap.BestCost)
}

func TestFeed_Update_SetsFinalOutcomeAndDone(t *testing.T) {
	feed := progress.NewFeed("run-1", 1, 1)
	feed.Observe(0, 999, true, 7)

	feed.Update(42, true, true)

	snap := feed.Snapshot()
	assert.EqualValues(t, 42, snap.BestCost)
	assert.True(t, snap.BestFound)
	assert.True(t, snap.Done)
}
