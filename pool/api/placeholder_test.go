package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const placeholderWallet = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func placeholderClient() *Client {
	c := NewPlaceholderClient()
	c.Jitter = utils.NewJitter(42)
	c.Now = func() time.Time {
		return testNow
	}
	return c
}

func TestPlaceholderPools(t *testing.T) {
	c := placeholderClient()
	assert.Equal(t, PlaceholderHost, c.Host)

	pools := c.Pools(context.Background())
	require.Len(t, pools, 3)
	assert.Equal(t, []string{"btc", "eth", "ltc"}, []string{pools[0].Id, pools[1].Id, pools[2].Id})

	btc := pools[0]
	assert.Equal(t, "Bitcoin", btc.Coin.Name)
	assert.Equal(t, "SHA-256", btc.Coin.Algorithm)
	assert.InDelta(t, 1.5, btc.PoolFeePercent, 1e-9)
	require.NotNil(t, btc.ConnectionDetails)
	require.Len(t, btc.ConnectionDetails.Ports, 2)
	assert.Equal(t, "stratum+tcp://btc.localhost:3333", btc.ConnectionDetails.Ports[0].StratumUrl)
	assert.Equal(t, "Backup", btc.ConnectionDetails.Ports[1].Name)
}

func TestPlaceholderResources(t *testing.T) {
	c := placeholderClient()
	ctx := context.Background()

	details := c.PoolDetails(ctx, "eth")
	require.True(t, details.Ok())
	assert.Equal(t, "Ethereum", details.Pool.Coin.Name)
	require.Len(t, details.RecentBlocks, 3)
	assert.Equal(t, uint64(18000001), details.RecentBlocks[0].BlockHeight)
	require.Len(t, details.TopMiners, 3)
	assert.Equal(t, placeholderWallet, details.TopMiners[0].Address)

	blocks := c.PoolBlocks(ctx, "btc")
	require.Len(t, blocks, 3)
	require.NotNil(t, blocks[0].Effort)
	assert.InDelta(t, 82, *blocks[0].Effort, 1e-9)
	assert.False(t, blocks[0].Synthetic)

	payments := c.PoolPayments(ctx, "ltc")
	require.Len(t, payments, 3)
	assert.InDelta(t, 0.02, payments[0].Amount, 1e-9)
	assert.False(t, payments[0].Synthetic)

	history := c.HistoricalStats(ctx, "btc")
	require.Len(t, history, 5)
	assert.False(t, history[0].Synthetic)
	assert.InDelta(t, 1200, history[0].Hashrate, 1e-9)

	// pools without recorded history get derived points
	history = c.HistoricalStats(ctx, "eth")
	require.Len(t, history, syntheticHistoryDays)
	assert.True(t, history[0].Synthetic)

	details = c.PoolDetails(ctx, "doge")
	assert.False(t, details.Ok())
	assert.True(t, details.NotFound)

	_, err := c.LookupPool(ctx, "doge")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceholderMinerStats(t *testing.T) {
	c := placeholderClient()

	stats, err := c.MinerStats(context.Background(), placeholderWallet, "btc")
	require.NoError(t, err)
	assert.True(t, stats.Simulated)
	assert.InDelta(t, 15, stats.Hashrate, 1e-9)
	assert.Len(t, stats.Payouts, 2)
}

func TestPlaceholderAggregates(t *testing.T) {
	c := placeholderClient()
	ctx := context.Background()

	blocks := c.AllBlocks(ctx)
	require.Len(t, blocks, 9)
	assert.Equal(t, uint64(2500001), blocks[0].BlockHeight)
	assert.Equal(t, uint64(18000001), blocks[1].BlockHeight)

	miners := c.AllTopMiners(ctx)
	require.Len(t, miners, 7)
	assert.Equal(t, placeholderWallet, miners[0].Address)
	assert.InDelta(t, 1000, miners[0].TotalHashrate, 1e-9)
	assert.Len(t, miners[0].Pools, 3)

	assert.Len(t, c.AllPayments(ctx), 9)

	assert.Equal(t, types.PoolsSummary{
		Pools:         3,
		TotalHashrate: 3000,
		ActiveMiners:  250,
		BlocksMined:   9,
	}, Summarize(c.Pools(ctx)))
}

func TestPlaceholderTransport(t *testing.T) {
	transport, err := newPlaceholderTransport([]byte(`{"pools":[{"id":"a b"}],"blocks":{"a b":[]}}`))
	require.NoError(t, err)

	for path, status := range map[string]int{
		"/pools":              http.StatusOK,
		"/pools/a%20b":        http.StatusOK,
		"/pools/a%20b/blocks": http.StatusOK,
		"/pools/a%20b/miners": http.StatusNotFound,
		"/unknown":            http.StatusNotFound,
	} {
		response, err := transport.RoundTrip(httptest.NewRequest(http.MethodGet, "http://placeholder.invalid"+path, nil))
		require.NoError(t, err)
		assert.Equal(t, status, response.StatusCode, path)
	}

	_, err = newPlaceholderTransport([]byte(`{`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
