package resources

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

// CachedProvider memoises the tables of another provider. Concurrent loads
// of the same tables are collapsed into a single call.
type CachedProvider struct {
	next  Provider
	cache *gocache.Cache
	group singleflight.Group
}

var _ Provider = &CachedProvider{}

func NewCachedProvider(next Provider) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (p *CachedProvider) Load(ctx context.Context, suite framework.Suite, id, dim int) (*Tables, error) {
	logger := klog.FromContext(ctx)
	key := TableKey(suite, id, dim)
	if v, ok := p.cache.Get(key); ok {
		logger.V(5).Info("Benchmark tables cache hit", "key", key)
		return v.(*Tables), nil
	}

	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		if v, ok := p.cache.Get(key); ok {
			return v, nil
		}
		t, err := p.next.Load(ctx, suite, id, dim)
		if err != nil {
			return nil, err
		}
		p.cache.SetDefault(key, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tables), nil
}

// Len returns the number of cached table sets.
func (p *CachedProvider) Len() int {
	return p.cache.ItemCount()
}

// Flush drops every cached table set.
func (p *CachedProvider) Flush() {
	p.cache.Flush()
}
