package cache

import (
	"context"
	"errors"
	"time"
)

type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

var (
	ErrNotExists   = errors.New("key not exists on cache storage")
	ErrInvalidType = errors.New("invalid type result")
)
