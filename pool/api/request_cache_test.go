package api

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"sync"
	"testing"
)

func TestRequestCache(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)
	upstream.handle("/pools/btc/blocks", http.StatusOK, `[]`)
	c := upstream.client()

	ctx := WithRequestCache(context.Background())
	assert.Equal(t, ctx, WithRequestCache(ctx))

	_, err := c.LookupPool(ctx, "btc")
	require.NoError(t, err)
	c.PoolBlocks(ctx, "btc")
	c.TopMiners(ctx, "btc")
	assert.EqualValues(t, 2, upstream.requests.Load())

	// without a request cache every call goes upstream
	c.PoolBlocks(context.Background(), "btc")
	assert.EqualValues(t, 4, upstream.requests.Load())
}

func TestRequestCacheConcurrent(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("/pools/btc", http.StatusOK, testPoolDocument)
	c := upstream.client()

	ctx := WithRequestCache(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool, err := c.LookupPool(ctx, "btc")
			assert.NoError(t, err)
			assert.NotNil(t, pool)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, upstream.requests.Load())
}

func TestRequestCacheSkipsFailures(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("/pools/broken", http.StatusInternalServerError, ``)
	c := upstream.client()

	ctx := WithRequestCache(context.Background())
	for i := 0; i < 2; i++ {
		_, err := c.LookupPool(ctx, "broken")
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	}
	assert.EqualValues(t, 2, upstream.requests.Load())
}
