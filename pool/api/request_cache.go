package api

import (
	"context"
	"golang.org/x/sync/singleflight"
	"sync"
)

type requestCacheKey struct{}

// requestCache shares upstream documents between the fetches of a single page request
type requestCache struct {
	group  singleflight.Group
	lock   sync.RWMutex
	bodies map[string][]byte
}

// WithRequestCache returns a context under which every upstream path is fetched at most once.
// Concurrent fetches of the same path wait for the first one. Failures are not kept.
func WithRequestCache(ctx context.Context) context.Context {
	if _, ok := ctx.Value(requestCacheKey{}).(*requestCache); ok {
		return ctx
	}
	return context.WithValue(ctx, requestCacheKey{}, &requestCache{
		bodies: make(map[string][]byte),
	})
}

func requestCacheFrom(ctx context.Context) *requestCache {
	rc, _ := ctx.Value(requestCacheKey{}).(*requestCache)
	return rc
}

func (rc *requestCache) get(path string, fetch func() ([]byte, error)) ([]byte, error) {
	rc.lock.RLock()
	buf, ok := rc.bodies[path]
	rc.lock.RUnlock()
	if ok {
		return buf, nil
	}

	v, err, _ := rc.group.Do(path, func() (any, error) {
		rc.lock.RLock()
		buf, ok := rc.bodies[path]
		rc.lock.RUnlock()
		if ok {
			return buf, nil
		}

		buf, err := fetch()
		if err != nil {
			return nil, err
		}
		rc.lock.Lock()
		defer rc.lock.Unlock()
		rc.bodies[path] = buf
		return buf, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
