package cache

import (
	"context"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
)

// NoopProductCache always misses. It is used when no Redis URL is configured.
type NoopProductCache struct{}

func (NoopProductCache) Get(context.Context, uint) (*products.Product, bool, error) {
	return nil, false, nil
}

func (NoopProductCache) Set(context.Context, *products.Product) error {
	return nil
}

func (NoopProductCache) GetList(context.Context) ([]*products.Product, bool, error) {
	return nil, false, nil
}

func (NoopProductCache) SetList(context.Context, []*products.Product) error {
	return nil
}

func (NoopProductCache) Invalidate(context.Context, uint) error {
	return nil
}

var (
	_ products.ProductCache = NoopProductCache{}
	_ products.ProductCache = (*RedisProductCache)(nil)
)
