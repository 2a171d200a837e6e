package api

import (
	"context"
	"fmt"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/valyala/fastjson"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const logPrefix = "API"

// maxResponseSize caps how much of an upstream body is read
const maxResponseSize = 16 * 1024 * 1024

const responseCacheSize = 512

var parserPool fastjson.ParserPool

// Client fetches resources from a Miningcore-style pool API and normalizes them.
// Every list operation fails soft; only MinerStats reports errors to the caller.
type Client struct {
	Host   string
	Client *http.Client

	// StratumHost is the host advertised in stratum URLs, "{id}" is replaced by the pool id
	StratumHost string

	// Jitter perturbs synthetic payments and history
	Jitter     *utils.Jitter
	jitterOnce sync.Once

	Now func() time.Time

	cache *utils.ExpiringCache[string, []byte]
}

func NewClient(host string) *Client {
	host = strings.TrimRight(host, "/")
	stratumHost := "{id}.localhost"
	if u, err := url.Parse(host); err == nil && u.Hostname() != "" {
		stratumHost = "{id}." + strings.TrimPrefix(u.Hostname(), "api.")
	}
	return &Client{
		Host: host,
		Client: &http.Client{
			Timeout: time.Second * 15,
		},
		StratumHost: stratumHost,
		Jitter:      utils.NewTimeJitter(),
		Now:         time.Now,
	}
}

// SetCacheTime enables caching of successful upstream documents for d. Zero disables it.
func (c *Client) SetCacheTime(d time.Duration) {
	if d <= 0 {
		c.cache = nil
		return
	}
	c.cache = utils.NewExpiringCache[string, []byte](responseCacheSize, d, func() time.Time {
		return c.now()
	})
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// jitter returns Jitter, seeding it from time on first use when unset
func (c *Client) jitter() *utils.Jitter {
	c.jitterOnce.Do(func() {
		if c.Jitter == nil {
			c.Jitter = utils.NewTimeJitter()
		}
	})
	return c.Jitter
}

func (c *Client) stratumUrl(poolId string, port uint64) string {
	return fmt.Sprintf("stratum+tcp://%s:%d", strings.ReplaceAll(c.StratumHost, "{id}", poolId), port)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Host+path, nil)
	if err != nil {
		return nil, &UpstreamError{Path: path, Err: err}
	}
	request.Header.Set("accept", "application/json")

	response, err := c.Client.Do(request)
	if err != nil {
		return nil, &UpstreamError{Path: path, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, 4096))
		return nil, &UpstreamError{Path: path, StatusCode: response.StatusCode}
	}

	buf, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, &UpstreamError{Path: path, StatusCode: response.StatusCode, Err: err}
	}
	return buf, nil
}

// getValue fetches path and hands the parsed document to do. The value is only valid inside do.
func (c *Client) getValue(ctx context.Context, path string, do func(v *fastjson.Value) error) error {
	buf, cached := []byte(nil), false
	if c.cache != nil {
		buf, cached = c.cache.Get(path)
	}
	if !cached {
		var err error
		if rc := requestCacheFrom(ctx); rc != nil {
			buf, err = rc.get(path, func() ([]byte, error) {
				return c.get(ctx, path)
			})
		} else {
			buf, err = c.get(ctx, path)
		}
		if err != nil {
			return err
		}
	}

	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(buf)
	if err != nil {
		if cached {
			c.cache.Delete(path)
		}
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}

	if c.cache != nil {
		if !cached {
			c.cache.Set(path, buf)
		}
		hits, misses := c.cache.Stats()
		utils.Debugf(logPrefix, "GET %s (cached = %t, %d bytes, cache hits = %d, misses = %d)", path, cached, len(buf), hits, misses)
	} else {
		utils.Debugf(logPrefix, "GET %s (%d bytes)", path, len(buf))
	}

	return do(v)
}

func poolPath(id string, resource ...string) string {
	var sb strings.Builder
	sb.WriteString("/pools/")
	sb.WriteString(url.PathEscape(id))
	for _, r := range resource {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(r))
	}
	return sb.String()
}
