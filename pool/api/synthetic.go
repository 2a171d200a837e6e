package api

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"math"
	"time"
)

const (
	syntheticPaymentCount  = 3
	syntheticPaymentSpread = 0.2

	syntheticHistoryDays   = 7
	syntheticHistorySpread = 0.1

	// minerShareRatio is the fraction of the pool attributed to a wallet without upstream data
	minerShareRatio = 0.01

	blocksPerDay = 144

	day = time.Hour * 24
)

func syntheticTxHash(j *utils.Jitter) string {
	return "sim-" + utils.EncodeBinaryNumber(j.Uint64()) + utils.EncodeBinaryNumber(j.Uint64())
}

func (c *Client) syntheticBlocks(pool *types.PoolCoin) []types.Block {
	if pool == nil || pool.LastPoolBlockTime.IsZero() {
		return make([]types.Block, 0)
	}
	return []types.Block{
		{
			PoolId:      pool.Id,
			PoolName:    coalesce(pool.Coin.Name, pool.Id),
			CoinType:    coalesce(pool.Coin.Type, pool.Id),
			BlockHeight: pool.NetworkStats.BlockHeight,
			Timestamp:   pool.LastPoolBlockTime,
			Reward:      pool.BlockReward,
			Status:      "confirmed",
			Synthetic:   true,
		},
	}
}

func (c *Client) syntheticPayments(pool *types.PoolCoin, miners []types.TopMiner) []types.PoolPayment {
	now := c.now().UTC()
	j := c.jitter()
	base := pool.TotalPaid / 10

	payments := make([]types.PoolPayment, 0, syntheticPaymentCount)
	for i := 0; i < syntheticPaymentCount; i++ {
		address := pool.Address
		if len(miners) > 0 {
			address = miners[i%len(miners)].Address
		}
		payments = append(payments, types.PoolPayment{
			PoolId:       pool.Id,
			MinerAddress: address,
			Amount:       j.Spread(base, syntheticPaymentSpread),
			Timestamp:    now.Add(-day * time.Duration(i)),
			TxHash:       syntheticTxHash(j),
			Confirmed:    true,
			Synthetic:    true,
		})
	}
	labelPayments(payments, pool)
	return payments
}

func (c *Client) syntheticHistory(pool *types.PoolCoin) []types.HistoricalStat {
	now := c.now().UTC()
	j := c.jitter()

	stats := make([]types.HistoricalStat, 0, syntheticHistoryDays)
	for i := syntheticHistoryDays - 1; i >= 0; i-- {
		stats = append(stats, types.HistoricalStat{
			Timestamp:       now.Add(-day * time.Duration(i)),
			Hashrate:        j.Spread(pool.PoolStats.PoolHashrate, syntheticHistorySpread),
			SharesPerSecond: j.Spread(pool.PoolStats.SharesPerSecond, syntheticHistorySpread),
			ConnectedMiners: uint64(math.Round(j.Spread(float64(pool.PoolStats.ConnectedMiners), syntheticHistorySpread))),
			Synthetic:       true,
		})
	}
	return stats
}

func (c *Client) simulatedMinerStats(wallet string, pool *types.PoolCoin) *types.MinerStats {
	now := c.now().UTC()
	j := c.jitter()

	hashrate := pool.PoolStats.PoolHashrate * minerShareRatio
	sharesPerSecond := pool.PoolStats.SharesPerSecond * minerShareRatio
	payout := pool.TotalPaid / float64(max(pool.TotalBlocks, 1)) * minerShareRatio

	return &types.MinerStats{
		WalletAddress:     wallet,
		PoolId:            pool.Id,
		Hashrate:          hashrate,
		Shares:            uint64(math.Round(sharesPerSecond * day.Seconds())),
		SharesPerSecond:   sharesPerSecond,
		EstimatedEarnings: estimateEarnings(hashrate, pool),
		Workers: []types.Worker{
			{Name: "default", Hashrate: hashrate, SharesPerSecond: sharesPerSecond},
		},
		Payouts: []types.Payout{
			{Amount: payout, Timestamp: now.Add(-day), TxHash: syntheticTxHash(j)},
			{Amount: payout, Timestamp: now.Add(-day * 2), TxHash: syntheticTxHash(j)},
		},
		Simulated: true,
	}
}
