package http

import (
	"github.com/fieldrows/rowgen/internal/adapters/valkey"
	"github.com/fieldrows/rowgen/internal/core/domain"
	"github.com/fieldrows/rowgen/internal/core/ports"
)

// Dependencies holds everything the HTTP handlers need.
type Dependencies struct {
	Generator ports.RowGenerator
	Defaults  domain.RowConfig
	Cache     *valkey.Cache
}
