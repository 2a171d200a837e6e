package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestPoolPayments(t *testing.T) {
	t.Run("upstream", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc/payments", http.StatusOK, `[
			{"address": "a", "amount": 1.5, "created": "2024-03-01T00:00:00Z", "transactionConfirmationData": "tx1"},
			{"minerAddress": "b", "amount": "2", "timestamp": "2024-03-02T00:00:00Z", "txHash": "tx2", "confirmed": true}
		]`)

		payments := upstream.client().PoolPayments(context.Background(), "btc")
		require.Len(t, payments, 2)
		assert.Equal(t, "b", payments[0].MinerAddress)
		assert.Equal(t, "tx2", payments[0].TxHash)
		assert.True(t, payments[0].Confirmed)
		assert.Equal(t, "btc", payments[0].PoolId)
		assert.Equal(t, "tx1", payments[1].TxHash)
		assert.False(t, payments[1].Confirmed)
		assert.False(t, payments[1].Synthetic)
	})

	t.Run("synthetic", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)

		payments := upstream.client().PoolPayments(context.Background(), "btc")
		require.Len(t, payments, syntheticPaymentCount)

		miners := []string{"addr-high", "addr-tie-1", "addr-tie-2"}
		for i, p := range payments {
			assert.True(t, p.Synthetic)
			assert.Equal(t, "btc", p.PoolId)
			assert.Equal(t, miners[i], p.MinerAddress)
			assert.True(t, strings.HasPrefix(p.TxHash, "sim-"))
			assert.GreaterOrEqual(t, p.Amount, 10*0.8)
			assert.LessOrEqual(t, p.Amount, 10*1.2)
			assert.Equal(t, testNow.Add(-time.Hour*24*time.Duration(i)), p.Timestamp)
		}
	})

	t.Run("synthetic pool address", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/ltc", http.StatusOK, `{"id":"ltc","address":"pool-address","totalPaid":50}`)

		payments := upstream.client().PoolPayments(context.Background(), "ltc")
		require.Len(t, payments, syntheticPaymentCount)
		for _, p := range payments {
			assert.Equal(t, "pool-address", p.MinerAddress)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)

		a := upstream.client().PoolPayments(context.Background(), "btc")
		b := upstream.client().PoolPayments(context.Background(), "btc")
		assert.Equal(t, a, b)

		c := upstream.client()
		c.Jitter = utils.NewJitter(7)
		assert.NotEqual(t, a, c.PoolPayments(context.Background(), "btc"))
	})

	t.Run("pool unavailable", func(t *testing.T) {
		upstream := newFakeUpstream(t)

		payments := upstream.client().PoolPayments(context.Background(), "btc")
		assert.NotNil(t, payments)
		assert.Empty(t, payments)
	})
}
