package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pr "github.com/unkn0wn-root/mackay/provider"
)

var ErrNilClient = errors.New("redis provider: nil client")

// Redis shares memoized codewords between processes.
type Redis struct {
	rdb         goredis.UniversalClient
	closeClient bool
	maxTTL      time.Duration
}

var _ pr.Provider = (*Redis)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this provider exclusively owns the client
	// MaxTTL caps every entry's lifetime, including "no expiry" writes. 0 = no cap.
	MaxTTL time.Duration
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.MaxTTL < 0 {
		return nil, errors.New("redis provider: negative MaxTTL")
	}
	return &Redis{rdb: cfg.Client, closeClient: cfg.CloseClient, maxTTL: cfg.MaxTTL}, nil
}

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	if err := p.rdb.Set(ctx, key, value, p.ttl(ttl)).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Redis) ttl(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = 0
	}
	if p.maxTTL > 0 && (ttl == 0 || ttl > p.maxTTL) {
		return p.maxTTL
	}
	return ttl
}

func (p *Redis) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

// Close releases the underlying redis client only when this provider owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
