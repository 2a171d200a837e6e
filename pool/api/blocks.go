package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/valyala/fastjson"
	"golang.org/x/sync/errgroup"
	"slices"
)

// PoolBlocks lists blocks found by the pool, most recent first.
// When the blocks endpoint is unavailable a single block is derived from the pool's last block.
func (c *Client) PoolBlocks(ctx context.Context, id string) []types.Block {
	if id == "" {
		return make([]types.Block, 0)
	}

	var (
		pool      *types.PoolCoin
		poolErr   error
		blocks    []types.Block
		blocksErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pool, _, poolErr = c.poolDocument(gctx, id)
		return nil
	})
	g.Go(func() error {
		blocks, blocksErr = c.blockDocuments(gctx, id)
		return nil
	})
	_ = g.Wait()

	if poolErr != nil {
		utils.Errorf(logPrefix, "error fetching pool %s: %s", id, poolErr)
		pool = nil
	}

	if blocksErr != nil {
		utils.Noticef(logPrefix, "blocks for pool %s unavailable, using last pool block: %s", id, blocksErr)
		return c.syntheticBlocks(pool)
	}

	labelBlocks(blocks, pool)
	sortBlocks(blocks)
	return blocks
}

func (c *Client) blockDocuments(ctx context.Context, id string) (blocks []types.Block, err error) {
	err = c.getValue(ctx, poolPath(id, "blocks"), func(v *fastjson.Value) error {
		blocks = transformList(listOf(v, "blocks"), c.transformBlock(id))
		return nil
	})
	return blocks, err
}

func sortBlocks(blocks []types.Block) {
	slices.SortStableFunc(blocks, func(a, b types.Block) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}
