package api

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/valyala/fastjson"
	"golang.org/x/sync/errgroup"
	"slices"
)

// Pools lists every pool the upstream knows about. Failures yield an empty list.
func (c *Client) Pools(ctx context.Context) []types.PoolCoin {
	var pools []types.PoolCoin
	err := c.getValue(ctx, "/pools", func(v *fastjson.Value) error {
		pools = transformList(listOf(v, "pools"), c.transformPool)
		return nil
	})
	if err != nil {
		utils.Errorf(logPrefix, "error fetching pools: %s", err)
		return make([]types.PoolCoin, 0)
	}
	return pools
}

// Pool returns the pool with id, or nil when it cannot be loaded.
func (c *Client) Pool(ctx context.Context, id string) *types.PoolCoin {
	pool, err := c.LookupPool(ctx, id)
	if err != nil {
		utils.Errorf(logPrefix, "error fetching pool %s: %s", id, err)
		return nil
	}
	return pool
}

// LookupPool is Pool reporting why the pool could not be loaded.
// Unknown pools match ErrNotFound, every other failure ErrUpstreamUnavailable.
func (c *Client) LookupPool(ctx context.Context, id string) (*types.PoolCoin, error) {
	pool, _, err := c.poolDocument(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUpstreamUnavailable) || errors.Is(err, ErrMissingParameter) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return pool, nil
}

// poolDocument fetches a single pool along with the top miners embedded in its document
func (c *Client) poolDocument(ctx context.Context, id string) (*types.PoolCoin, []types.TopMiner, error) {
	if id == "" {
		return nil, nil, fmt.Errorf("pool id: %w", ErrMissingParameter)
	}

	var pool *types.PoolCoin
	var miners []types.TopMiner
	err := c.getValue(ctx, poolPath(id), func(v *fastjson.Value) error {
		doc := objectOf(v, "pool")
		if doc == nil {
			return fmt.Errorf("%w: pool %s is not an object", ErrMalformedResponse, id)
		}
		p, _ := c.transformPoolWithId(doc, id)
		pool = &p
		miners = transformList(doc.GetArray("topMiners"), transformTopMiner)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	sortTopMiners(miners)
	return pool, miners, nil
}

// PoolDetails loads a pool together with its recent blocks and top miners.
// Error is set instead of Pool when the pool itself cannot be loaded.
func (c *Client) PoolDetails(ctx context.Context, id string) types.PoolDetails {
	var (
		pool      *types.PoolCoin
		miners    []types.TopMiner
		poolErr   error
		blocks    []types.Block
		blocksErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pool, miners, poolErr = c.poolDocument(gctx, id)
		return nil
	})
	g.Go(func() error {
		if id == "" {
			blocksErr = ErrMissingParameter
			return nil
		}
		blocks, blocksErr = c.blockDocuments(gctx, id)
		return nil
	})
	_ = g.Wait()

	if poolErr != nil {
		utils.Errorf(logPrefix, "error fetching pool details %s: %s", id, poolErr)
		details := types.PoolDetails{
			RecentBlocks: make([]types.Block, 0),
			TopMiners:    make([]types.TopMiner, 0),
			Error:        "Failed to load pool data",
		}
		if errors.Is(poolErr, ErrNotFound) {
			details.Error = fmt.Sprintf("Pool %s not found", id)
			details.NotFound = true
		}
		return details
	}

	if blocksErr != nil {
		utils.Noticef(logPrefix, "blocks for pool %s unavailable, using last pool block: %s", id, blocksErr)
		blocks = c.syntheticBlocks(pool)
	} else {
		labelBlocks(blocks, pool)
		sortBlocks(blocks)
	}

	return types.PoolDetails{
		Pool:         pool,
		RecentBlocks: blocks,
		TopMiners:    miners,
	}
}

// TopMiners lists the pool's top miners by hashrate, highest first.
func (c *Client) TopMiners(ctx context.Context, id string) []types.TopMiner {
	_, miners, err := c.poolDocument(ctx, id)
	if err != nil {
		utils.Errorf(logPrefix, "error fetching top miners %s: %s", id, err)
		return make([]types.TopMiner, 0)
	}
	return miners
}

func sortTopMiners(miners []types.TopMiner) {
	sortByHashrate(miners, func(m types.TopMiner) float64 {
		return m.Hashrate
	})
}

// sortByHashrate orders s highest hashrate first, keeping input order on ties
func sortByHashrate[T any](s []T, hashrate func(T) float64) {
	slices.SortStableFunc(s, func(a, b T) int {
		return cmp.Compare(hashrate(b), hashrate(a))
	})
}
