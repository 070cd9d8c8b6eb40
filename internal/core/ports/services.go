package ports

import (
	"context"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

// CacheService provides read-through caching of generation results.
// Generation is deterministic, so a cached result for the same request
// is always valid until its TTL expires.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}

// RowGenerator is the stateless generation operation the delivery
// layers (HTTP, CLI) depend on.
type RowGenerator interface {
	Generate(ctx context.Context, area domain.GeoMultiPolygon, baseline domain.Baseline, cfg domain.RowConfig) (*domain.RowSet, error)
}
