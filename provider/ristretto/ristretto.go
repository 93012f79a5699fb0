package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/mackay/provider"
)

var _ pr.Provider = (*Provider)(nil)

// Provider keeps memoized codewords in an in-process Ristretto cache.
type Provider struct {
	c    *rc.Cache
	sync bool
}

// Config mirrors the Ristretto knobs. Zero values pick defaults sized for
// memoizing short codewords.
type Config struct {
	NumCounters int64 // 0 => 1e5
	MaxCost     int64 // 0 => 64 MiB (cost is the framed entry length)
	BufferItems int64 // 0 => 64
	Metrics     bool
	// Sync waits for Ristretto's write buffer after every Set so the entry is
	// visible to the next Get. Costs latency; mostly useful in tests.
	Sync bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters < 0 || cfg.MaxCost < 0 || cfg.BufferItems < 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	if cfg.NumCounters == 0 {
		cfg.NumCounters = 1e5
	}
	if cfg.MaxCost == 0 {
		cfg.MaxCost = 64 << 20
	}
	if cfg.BufferItems == 0 {
		cfg.BufferItems = 64
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c, sync: cfg.Sync}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	if ttl < 0 {
		ttl = 0
	}
	ok := p.c.SetWithTTL(key, value, cost, ttl)
	if ok && p.sync {
		p.c.Wait()
	}
	return ok, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes Ristretto's counters (nil unless Config.Metrics was set).
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
