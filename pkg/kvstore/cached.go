package kvstore

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached is a write-through LRU read cache in front of another Store.
type Cached struct {
	inner Store
	cache *lru.Cache[string, []byte]
}

func NewCached(inner Store, size int) (*Cached, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: c}, nil
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.cache.Get(key); ok {
		return clone(v), nil
	}
	v, err := c.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, clone(v))
	return v, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, clone(value))
	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	c.cache.Remove(key)
	return c.inner.Delete(ctx, key)
}

func (c *Cached) Close() error {
	c.cache.Purge()
	return c.inner.Close()
}
