package client

import (
	"context"
	"sync"
)

// ProductSource fetches one product; *Client satisfies it.
type ProductSource interface {
	Product(ctx context.Context, id int64) (*Product, error)
}

// Catalog is a read-through product cache keyed by id. Draft lines take
// their prices from here so every view of a product agrees.
type Catalog struct {
	mu     sync.Mutex
	source ProductSource
	byID   map[int64]Product
}

// NewCatalog builds an empty catalog backed by the given source.
func NewCatalog(source ProductSource) *Catalog {
	return &Catalog{
		source: source,
		byID:   make(map[int64]Product),
	}
}

// Product returns the cached product, fetching it on first access.
func (c *Catalog) Product(ctx context.Context, id int64) (*Product, error) {
	c.mu.Lock()
	if cached, ok := c.byID[id]; ok {
		c.mu.Unlock()
		return &cached, nil
	}
	c.mu.Unlock()

	product, err := c.source.Product(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byID[id] = *product
	c.mu.Unlock()
	return product, nil
}

// Invalidate drops one product so the next read refetches it. Call it
// after mutating the product or its stock.
func (c *Catalog) Invalidate(id int64) {
	c.mu.Lock()
	delete(c.byID, id)
	c.mu.Unlock()
}

// Reset drops the whole cache.
func (c *Catalog) Reset() {
	c.mu.Lock()
	c.byID = make(map[int64]Product)
	c.mu.Unlock()
}
