//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Run with: FORDVIEW_REDIS_ADDR=localhost:6379 go test -tags integration ./pkg/cache
func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("FORDVIEW_REDIS_ADDR")
	if addr == "" {
		t.Skip("FORDVIEW_REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr, Prefix: "fordview:test:"})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	defer c.Clear(ctx)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("empty: hit=%v err=%v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	n, err := c.Clear(ctx)
	if err != nil || n != 1 {
		t.Errorf("Clear = %d, %v", n, err)
	}
}
