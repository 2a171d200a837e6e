package api

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
	"time"
)

const testWallet = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func TestValidateWalletAddress(t *testing.T) {
	tests := []struct {
		wallet string
		err    error
	}{
		{testWallet, nil},
		{"abcdefghijklmnopqrstuvwxyz", nil},
		{"", ErrMissingParameter},
		{"", ErrInvalidInput},
		{"short", ErrInvalidInput},
		{"1A1zP1eP5QGefi2DMPTfTL5SLmv7Div-Na", ErrInvalidInput},
		{"1A1zP1eP5QGefi2DMPTf TL5SLmv7DivfNa", ErrInvalidInput},
		{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa12", ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.wallet, func(t *testing.T) {
			err := ValidateWalletAddress(tt.wallet)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestMinerStatsValidation(t *testing.T) {
	upstream := newFakeUpstream(t)
	c := upstream.client()

	for _, wallet := range []string{"short", "with-dash-aaaaaaaaaaaaaaaaaaaaaaa", "with space aaaaaaaaaaaaaaaaaaaaaa"} {
		stats, err := c.MinerStats(context.Background(), wallet, "btc")
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	stats, err := c.MinerStats(context.Background(), testWallet, "")
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrMissingParameter)

	assert.Zero(t, upstream.requests.Load())
}

func TestMinerStats(t *testing.T) {
	t.Run("upstream", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)
		upstream.handle("/pools/btc/miners/"+testWallet, http.StatusOK, `{
			"pendingBalance": 0.5,
			"totalPaid": "3",
			"performance": {"workers": {"rig1": {"hashrate": 600, "sharesPerSecond": 0.25}, "": {"hashrate": 400, "sharesPerSecond": 0.25}}},
			"payments": [{"amount": 1, "created": "2024-03-01T00:00:00Z", "transactionConfirmationData": "tx"}]
		}`)

		stats, err := upstream.client().MinerStats(context.Background(), testWallet, "btc")
		require.NoError(t, err)
		assert.False(t, stats.Simulated)
		assert.Equal(t, testWallet, stats.WalletAddress)
		assert.Equal(t, 1000.0, stats.Hashrate)
		assert.Equal(t, 0.5, stats.SharesPerSecond)
		assert.EqualValues(t, 43200, stats.Shares)
		assert.Equal(t, 0.5, stats.PendingBalance)
		assert.Equal(t, 3.0, stats.TotalPaid)
		require.Len(t, stats.Workers, 2)
		assert.Equal(t, "rig1", stats.Workers[0].Name)
		assert.Equal(t, "default", stats.Workers[1].Name)
		require.Len(t, stats.Payouts, 1)
		assert.Equal(t, "tx", stats.Payouts[0].TxHash)
		assert.InDelta(t, 1000.0/50000000*6.25*144, stats.EstimatedEarnings, 1e-12)
	})

	t.Run("simulated", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)

		stats, err := upstream.client().MinerStats(context.Background(), testWallet, "btc")
		require.NoError(t, err)
		assert.True(t, stats.Simulated)
		assert.Equal(t, "btc", stats.PoolId)
		assert.InDelta(t, 10000, stats.Hashrate, 1e-9)
		assert.EqualValues(t, 2160, stats.Shares)
		assert.InDelta(t, 10000.0/50000000*6.25*144, stats.EstimatedEarnings, 1e-12)
		require.Len(t, stats.Payouts, 2)
		assert.InDelta(t, 100.0/4*0.01, stats.Payouts[0].Amount, 1e-12)
		assert.Equal(t, stats.Payouts[0].Amount, stats.Payouts[1].Amount)
		assert.Equal(t, testNow.Add(-time.Hour*24), stats.Payouts[0].Timestamp)
		assert.Equal(t, stats.Payouts[0].Timestamp.Sub(stats.Payouts[1].Timestamp).Hours(), 24.0)
	})

	t.Run("zero network hashrate", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/ltc", http.StatusOK, `{"id":"ltc","poolStats":{"poolHashrate":100},"blockReward":2}`)

		stats, err := upstream.client().MinerStats(context.Background(), testWallet, "ltc")
		require.NoError(t, err)
		assert.InDelta(t, 1*2*144, stats.EstimatedEarnings, 1e-9)
		assert.Zero(t, stats.Payouts[0].Amount)
	})

	t.Run("unknown pool", func(t *testing.T) {
		upstream := newFakeUpstream(t)

		stats, err := upstream.client().MinerStats(context.Background(), testWallet, "nope")
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("pool unavailable", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusBadGateway, ``)

		stats, err := upstream.client().MinerStats(context.Background(), testWallet, "btc")
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
		assert.NotErrorIs(t, err, ErrNotFound)

		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
		assert.Equal(t, "/pools/btc", upstreamErr.Path)
	})

	t.Run("malformed pool", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusOK, `[1, 2`)

		_, err := upstream.client().MinerStats(context.Background(), testWallet, "btc")
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}
