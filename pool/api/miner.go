package api

import (
	"context"
	"fmt"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/valyala/fastjson"
	"golang.org/x/sync/errgroup"
)

// MinerStats returns figures for one wallet on a pool. Wallet and pool are validated before
// any request is made. When the upstream has no data for the wallet the figures are
// approximated from pool aggregates and flagged as Simulated.
func (c *Client) MinerStats(ctx context.Context, wallet, poolId string) (*types.MinerStats, error) {
	if err := ValidateWalletAddress(wallet); err != nil {
		return nil, err
	}
	if poolId == "" {
		return nil, fmt.Errorf("pool id: %w", ErrMissingParameter)
	}

	var (
		pool     *types.PoolCoin
		poolErr  error
		stats    *types.MinerStats
		minerErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pool, poolErr = c.LookupPool(gctx, poolId)
		return nil
	})
	g.Go(func() error {
		minerErr = c.getValue(gctx, poolPath(poolId, "miners", wallet), func(v *fastjson.Value) error {
			if v.Type() != fastjson.TypeObject {
				return fmt.Errorf("%w: miner %s is not an object", ErrMalformedResponse, wallet)
			}
			stats = c.transformMinerStats(wallet, poolId, v)
			return nil
		})
		return nil
	})
	_ = g.Wait()

	if poolErr != nil {
		utils.Errorf(logPrefix, "error fetching pool %s for miner stats: %s", poolId, poolErr)
		return nil, fmt.Errorf("miner stats: %w", poolErr)
	}

	if minerErr == nil {
		stats.EstimatedEarnings = estimateEarnings(stats.Hashrate, pool)
		return stats, nil
	}

	utils.Noticef(logPrefix, "miner %s on pool %s unavailable, approximating from pool stats: %s", wallet, poolId, minerErr)
	return c.simulatedMinerStats(wallet, pool), nil
}

// estimateEarnings projects daily earnings from a hashrate share of the network
func estimateEarnings(hashrate float64, pool *types.PoolCoin) float64 {
	return hashrate / max(pool.NetworkStats.NetworkHashrate, 1) * pool.BlockReward * blocksPerDay
}
