package api

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
	"time"
)

func TestHistoricalStats(t *testing.T) {
	t.Run("upstream", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc/performance", http.StatusOK, `{"stats":[
			{"created": "2024-03-02T00:00:00Z", "poolHashrate": 200, "connectedMiners": 4},
			{"created": "2024-03-01T00:00:00Z", "poolHashrate": 100, "connectedMiners": 3, "sharesPerSecond": 0.5},
			{"poolHashrate": 300}
		]}`)

		stats := upstream.client().HistoricalStats(context.Background(), "btc")
		require.Len(t, stats, 2)
		assert.Equal(t, 100.0, stats[0].Hashrate)
		assert.Equal(t, 0.5, stats[0].SharesPerSecond)
		assert.EqualValues(t, 4, stats[1].ConnectedMiners)
		assert.False(t, stats[0].Synthetic)
	})

	t.Run("synthetic", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)

		stats := upstream.client().HistoricalStats(context.Background(), "btc")
		require.Len(t, stats, syntheticHistoryDays)

		assert.Equal(t, testNow.Add(-time.Hour*24*6), stats[0].Timestamp)
		assert.Equal(t, testNow, stats[len(stats)-1].Timestamp)
		for i, s := range stats {
			assert.True(t, s.Synthetic)
			if i > 0 {
				assert.Equal(t, time.Hour*24, s.Timestamp.Sub(stats[i-1].Timestamp))
			}
			assert.InDelta(t, 1000000, s.Hashrate, 1000000*0.1)
			assert.InDelta(t, 10, s.ConnectedMiners, 1)
		}
	})

	t.Run("empty upstream history", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)
		upstream.handle("/pools/btc/performance", http.StatusOK, `{"stats":[]}`)

		stats := upstream.client().HistoricalStats(context.Background(), "btc")
		assert.Len(t, stats, syntheticHistoryDays)
	})

	t.Run("pool unavailable", func(t *testing.T) {
		upstream := newFakeUpstream(t)

		stats := upstream.client().HistoricalStats(context.Background(), "btc")
		assert.NotNil(t, stats)
		assert.Empty(t, stats)
	})
}
