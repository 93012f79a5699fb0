package redis

import (
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func TestNewRequiresClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("expected ErrNilClient, got %v", err)
	}
}

func TestTTLCap(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()

	p, err := New(Config{Client: rdb, MaxTTL: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ in, want time.Duration }{
		{0, time.Minute},
		{-time.Second, time.Minute},
		{time.Second, time.Second},
		{time.Hour, time.Minute},
	}
	for _, tc := range cases {
		if got := p.ttl(tc.in); got != tc.want {
			t.Fatalf("ttl(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}

	uncapped, _ := New(Config{Client: rdb})
	if got := uncapped.ttl(-time.Second); got != 0 {
		t.Fatalf("uncapped ttl(-1s) = %s, want 0", got)
	}
	if _, err := New(Config{Client: rdb, MaxTTL: -1}); err == nil {
		t.Fatalf("expected error for negative MaxTTL")
	}
}
