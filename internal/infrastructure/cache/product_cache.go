// Package cache implementa el cache de lectura del catálogo sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

var _ usecase.ProductCache = (*ProductCache)(nil)

// ProductCache cache de productos por tenant con TTL. Un fallo de Redis nunca
// corta la operación: el caller sigue contra la DB.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProductCache construye el cache con el cliente y TTL dados.
func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{rdb: rdb, ttl: ttl}
}

func key(tenantID, productID string) string {
	return fmt.Sprintf("product:%s:%s", tenantID, productID)
}

// Get devuelve el producto cacheado o nil si no está.
func (c *ProductCache) Get(ctx context.Context, tenantID, productID string) (*entity.Product, error) {
	raw, err := c.rdb.Get(ctx, key(tenantID, productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var p entity.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Set guarda el producto con el TTL configurado.
func (c *ProductCache) Set(ctx context.Context, product *entity.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(product.TenantID, product.ID), raw, c.ttl).Err()
}

// Invalidate borra la entrada del producto.
func (c *ProductCache) Invalidate(ctx context.Context, tenantID, productID string) error {
	return c.rdb.Del(ctx, key(tenantID, productID)).Err()
}
