package api

import (
	"context"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeUpstream struct {
	*httptest.Server
	lock      sync.Mutex
	responses map[string]fakeResponse
	requests  atomic.Int64
	paths     []string
}

type fakeResponse struct {
	status int
	body   string
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	f := &fakeUpstream{
		responses: make(map[string]fakeResponse),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		f.requests.Add(1)
		f.lock.Lock()
		f.paths = append(f.paths, request.URL.EscapedPath())
		r, ok := f.responses[request.URL.EscapedPath()]
		f.lock.Unlock()
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			return
		}
		writer.Header().Set("content-type", "application/json")
		writer.WriteHeader(r.status)
		_, _ = writer.Write([]byte(r.body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeUpstream) handle(path string, status int, body string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.responses[path] = fakeResponse{status: status, body: body}
}

func (f *fakeUpstream) client() *Client {
	c := NewClient(f.URL)
	c.StratumHost = "{id}.pool.test"
	c.Jitter = utils.NewJitter(42)
	c.Now = func() time.Time {
		return testNow
	}
	return c
}

func TestNewClient(t *testing.T) {
	c := NewClient("https://api.example.com/")
	assert.Equal(t, "https://api.example.com", c.Host)
	assert.Equal(t, "{id}.example.com", c.StratumHost)
	assert.Equal(t, time.Second*15, c.Client.Timeout)
	assert.Equal(t, "stratum+tcp://btc.example.com:3333", c.stratumUrl("btc", 3333))
}

func TestPoolPath(t *testing.T) {
	assert.Equal(t, "/pools/btc", poolPath("btc"))
	assert.Equal(t, "/pools/btc/miners/abc", poolPath("btc", "miners", "abc"))
	assert.Equal(t, "/pools/a%2Fb/blocks", poolPath("a/b", "blocks"))
}

func TestClientCache(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("/pools", http.StatusOK, `{"pools":[{"id":"btc"}]}`)

	c := upstream.client()
	c.SetCacheTime(time.Minute)

	assert.Len(t, c.Pools(context.Background()), 1)
	assert.Len(t, c.Pools(context.Background()), 1)
	assert.EqualValues(t, 1, upstream.requests.Load())

	hits, misses := c.cache.Stats()
	assert.EqualValues(t, 1, hits)
	assert.EqualValues(t, 1, misses)

	c.SetCacheTime(0)
	assert.Len(t, c.Pools(context.Background()), 1)
	assert.EqualValues(t, 2, upstream.requests.Load())
}

func TestClientCacheSkipsFailures(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("/pools", http.StatusOK, `{not json`)

	c := upstream.client()
	c.SetCacheTime(time.Minute)

	assert.Empty(t, c.Pools(context.Background()))
	upstream.handle("/pools", http.StatusOK, `[{"id":"btc"}]`)
	require.Len(t, c.Pools(context.Background()), 1)
	assert.EqualValues(t, 2, upstream.requests.Load())
}

func TestClientJitterDefault(t *testing.T) {
	c := &Client{Host: "http://127.0.0.1:1", Client: http.DefaultClient}

	var wg sync.WaitGroup
	jitters := make([]*utils.Jitter, 8)
	for i := range jitters {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			jitters[i] = c.jitter()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, jitters[0])
	for _, j := range jitters {
		assert.Same(t, jitters[0], j)
	}
	assert.Same(t, c.Jitter, jitters[0])
}
