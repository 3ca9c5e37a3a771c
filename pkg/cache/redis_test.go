package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisConfig{URL: "ftp://localhost"}); err == nil {
		t.Error("expected an error for a non-redis URL")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := NewRedisCache(ctx, RedisConfig{URL: "redis://127.0.0.1:1/0"})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestRedisClassify(t *testing.T) {
	c := &RedisCache{}
	if c.classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	if IsRetryable(c.classify(context.Canceled)) {
		t.Error("cancellation must not be retried")
	}
	if err := c.classify(errors.New("dial tcp: connection refused")); !IsRetryable(err) || !errors.Is(err, ErrNetwork) {
		t.Errorf("connection error not retryable: %v", err)
	}
}
