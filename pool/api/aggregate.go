package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"golang.org/x/sync/errgroup"
)

// poolFanOut caps how many pools are queried at once by the cross-pool operations
const poolFanOut = 8

// eachPool runs fetch for every listed pool in parallel and concatenates the results in pool order
func eachPool[T any](ctx context.Context, c *Client, fetch func(ctx context.Context, pool *types.PoolCoin) []T) []T {
	ctx = WithRequestCache(ctx)
	pools := c.Pools(ctx)

	results := make([][]T, len(pools))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(poolFanOut)
	for i := range pools {
		i := i
		g.Go(func() error {
			results[i] = fetch(gctx, &pools[i])
			return nil
		})
	}
	_ = g.Wait()

	var n int
	for _, r := range results {
		n += len(r)
	}
	merged := make([]T, 0, n)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// AllBlocks lists the blocks of every pool, most recent first.
func (c *Client) AllBlocks(ctx context.Context) []types.Block {
	blocks := eachPool(ctx, c, func(ctx context.Context, pool *types.PoolCoin) []types.Block {
		return c.PoolBlocks(ctx, pool.Id)
	})
	sortBlocks(blocks)
	return blocks
}

// AllPayments lists the payments of every pool, most recent first.
func (c *Client) AllPayments(ctx context.Context) []types.PoolPayment {
	payments := eachPool(ctx, c, func(ctx context.Context, pool *types.PoolCoin) []types.PoolPayment {
		payments := c.PoolPayments(ctx, pool.Id)
		labelPayments(payments, pool)
		return payments
	})
	sortPayments(payments)
	return payments
}

// AllTopMiners merges the top miners of every pool by address, highest total hashrate first.
func (c *Client) AllTopMiners(ctx context.Context) []types.MinerSummary {
	type poolMiner struct {
		pool  *types.PoolCoin
		miner types.TopMiner
	}
	entries := eachPool(ctx, c, func(ctx context.Context, pool *types.PoolCoin) []poolMiner {
		miners := c.TopMiners(ctx, pool.Id)
		result := make([]poolMiner, 0, len(miners))
		for _, m := range miners {
			result = append(result, poolMiner{pool: pool, miner: m})
		}
		return result
	})

	summaries := make([]types.MinerSummary, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.miner.Address == "" {
			continue
		}
		i, ok := index[e.miner.Address]
		if !ok {
			i = len(summaries)
			index[e.miner.Address] = i
			summaries = append(summaries, types.MinerSummary{
				Address: e.miner.Address,
				Pools:   make([]types.MinerPoolHashrate, 0, 1),
			})
		}
		summaries[i].TotalHashrate += e.miner.Hashrate
		summaries[i].Pools = append(summaries[i].Pools, types.MinerPoolHashrate{
			PoolId:   e.pool.Id,
			PoolName: coalesce(e.pool.Coin.Name, e.pool.Id),
			Hashrate: e.miner.Hashrate,
		})
	}

	sortByHashrate(summaries, func(m types.MinerSummary) float64 {
		return m.TotalHashrate
	})
	return summaries
}

// Summarize totals the hashrate, miners and blocks of pools.
func Summarize(pools []types.PoolCoin) types.PoolsSummary {
	summary := types.PoolsSummary{
		Pools: len(pools),
	}
	for _, pool := range pools {
		summary.TotalHashrate += pool.PoolStats.PoolHashrate
		summary.ActiveMiners += pool.PoolStats.ConnectedMiners
		summary.BlocksMined += pool.TotalBlocks
	}
	return summary
}
