package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func aggregateUpstream(t *testing.T) *fakeUpstream {
	upstream := newFakeUpstream(t)
	upstream.handle("/pools", http.StatusOK, `{"pools":[
		{"id": "btc", "coin": {"type": "BTC", "name": "Bitcoin"}, "poolStats": {"poolHashrate": 1000, "connectedMiners": 10}, "totalBlocks": 4},
		{"id": "ltc", "coin": {"type": "LTC", "name": "Litecoin"}, "poolStats": {"poolHashrate": 500, "connectedMiners": 5}, "totalBlocks": 2}
	]}`)
	upstream.handle("/pools/btc", http.StatusOK, `{"pool": {
		"id": "btc", "coin": {"type": "BTC", "name": "Bitcoin"},
		"topMiners": [{"address": "shared", "hashrate": 100}, {"address": "btc-only", "hashrate": 300}]
	}}`)
	upstream.handle("/pools/ltc", http.StatusOK, `{"pool": {
		"id": "ltc", "coin": {"type": "LTC", "name": "Litecoin"}, "totalPaid": 10,
		"blockReward": 12.5, "lastPoolBlockTime": "2024-03-10T06:00:00Z", "networkStats": {"blockHeight": 2500000},
		"topMiners": [{"address": "shared", "hashrate": 250}, {"address": "ltc-only", "hashrate": 50}]
	}}`)
	upstream.handle("/pools/btc/blocks", http.StatusOK, `[
		{"blockHeight": 800001, "created": "2024-03-10T09:00:00Z", "reward": 6.25},
		{"blockHeight": 800000, "created": "2024-03-09T09:00:00Z", "reward": 6.25}
	]`)
	upstream.handle("/pools/btc/payments", http.StatusOK, `[
		{"address": "btc-only", "amount": 0.5, "created": "2024-03-10T08:00:00Z"}
	]`)
	return upstream
}

func TestAllBlocks(t *testing.T) {
	c := aggregateUpstream(t).client()

	blocks := c.AllBlocks(context.Background())
	require.Len(t, blocks, 3)

	assert.Equal(t, uint64(800001), blocks[0].BlockHeight)
	assert.Equal(t, "Bitcoin", blocks[0].PoolName)

	// ltc has no blocks endpoint, its last block is derived from the pool
	assert.Equal(t, uint64(2500000), blocks[1].BlockHeight)
	assert.Equal(t, "ltc", blocks[1].PoolId)
	assert.Equal(t, "Litecoin", blocks[1].PoolName)
	assert.True(t, blocks[1].Synthetic)

	assert.Equal(t, uint64(800000), blocks[2].BlockHeight)
}

func TestAllPayments(t *testing.T) {
	c := aggregateUpstream(t).client()

	payments := c.AllPayments(context.Background())
	// one real btc payment, three derived for ltc
	require.Len(t, payments, 4)

	for i := 1; i < len(payments); i++ {
		assert.False(t, payments[i].Timestamp.After(payments[i-1].Timestamp))
	}

	var btc, ltc int
	for _, p := range payments {
		switch p.PoolId {
		case "btc":
			btc++
			assert.Equal(t, "Bitcoin", p.PoolName)
			assert.Equal(t, "BTC", p.CoinType)
			assert.False(t, p.Synthetic)
		case "ltc":
			ltc++
			assert.Equal(t, "Litecoin", p.PoolName)
			assert.Equal(t, "LTC", p.CoinType)
			assert.True(t, p.Synthetic)
		}
	}
	assert.Equal(t, 1, btc)
	assert.Equal(t, syntheticPaymentCount, ltc)
}

func TestAllTopMiners(t *testing.T) {
	c := aggregateUpstream(t).client()

	miners := c.AllTopMiners(context.Background())
	require.Len(t, miners, 3)

	assert.Equal(t, "shared", miners[0].Address)
	assert.InDelta(t, 350, miners[0].TotalHashrate, 1e-9)
	assert.Equal(t, []types.MinerPoolHashrate{
		{PoolId: "btc", PoolName: "Bitcoin", Hashrate: 100},
		{PoolId: "ltc", PoolName: "Litecoin", Hashrate: 250},
	}, miners[0].Pools)

	assert.Equal(t, "btc-only", miners[1].Address)
	assert.Equal(t, "ltc-only", miners[2].Address)
}

func TestAllNoPools(t *testing.T) {
	upstream := newFakeUpstream(t)
	c := upstream.client()

	assert.NotNil(t, c.AllBlocks(context.Background()))
	assert.Empty(t, c.AllBlocks(context.Background()))
	assert.Empty(t, c.AllPayments(context.Background()))
	assert.Empty(t, c.AllTopMiners(context.Background()))
}

func TestSummarize(t *testing.T) {
	c := aggregateUpstream(t).client()

	summary := Summarize(c.Pools(context.Background()))
	assert.Equal(t, types.PoolsSummary{
		Pools:         2,
		TotalHashrate: 1500,
		ActiveMiners:  15,
		BlocksMined:   6,
	}, summary)

	assert.Equal(t, types.PoolsSummary{}, Summarize(nil))
}
