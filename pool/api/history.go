package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/valyala/fastjson"
	"slices"
)

// HistoricalStats returns pool performance samples, oldest first.
// Pools without recorded history get a week of daily points around the current figures.
func (c *Client) HistoricalStats(ctx context.Context, id string) []types.HistoricalStat {
	if id == "" {
		return make([]types.HistoricalStat, 0)
	}

	var stats []types.HistoricalStat
	err := c.getValue(ctx, poolPath(id, "performance"), func(v *fastjson.Value) error {
		stats = transformList(listOf(v, "stats"), transformHistoricalStat)
		return nil
	})
	if err == nil && len(stats) > 0 {
		slices.SortStableFunc(stats, func(a, b types.HistoricalStat) int {
			return a.Timestamp.Compare(b.Timestamp)
		})
		return stats
	}

	if err != nil {
		utils.Noticef(logPrefix, "history for pool %s unavailable, deriving from current stats: %s", id, err)
	}

	pool, _, err := c.poolDocument(ctx, id)
	if err != nil {
		utils.Errorf(logPrefix, "error fetching pool %s: %s", id, err)
		return make([]types.HistoricalStat, 0)
	}
	return c.syntheticHistory(pool)
}
