package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/valyala/fastjson"
	"slices"
)

// PoolPayments lists the pool's payments, most recent first. When the upstream has no
// payments endpoint a small set is derived from the pool totals.
func (c *Client) PoolPayments(ctx context.Context, id string) []types.PoolPayment {
	if id == "" {
		return make([]types.PoolPayment, 0)
	}

	var payments []types.PoolPayment
	err := c.getValue(ctx, poolPath(id, "payments"), func(v *fastjson.Value) error {
		payments = transformList(listOf(v, "payments"), c.transformPayment(id))
		return nil
	})
	if err == nil {
		sortPayments(payments)
		return payments
	}

	utils.Noticef(logPrefix, "payments for pool %s unavailable, deriving from pool totals: %s", id, err)

	pool, miners, err := c.poolDocument(ctx, id)
	if err != nil {
		utils.Errorf(logPrefix, "error fetching pool %s: %s", id, err)
		return make([]types.PoolPayment, 0)
	}
	return c.syntheticPayments(pool, miners)
}

func sortPayments(payments []types.PoolPayment) {
	slices.SortStableFunc(payments, func(a, b types.PoolPayment) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}
