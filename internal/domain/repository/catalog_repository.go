package repository

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

// BrandRepository puerto de lectura de la colección brands.
type BrandRepository interface {
	ListAll(ctx context.Context) ([]entity.Brand, error)
}

// CategoryRepository puerto de lectura de la colección categories.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]entity.Category, error)
}

// ProductTypeRepository puerto de lectura de la colección product_types.
type ProductTypeRepository interface {
	ListAll(ctx context.Context) ([]entity.ProductType, error)
}

// CompetitorRepository puerto de lectura de la colección competitors.
type CompetitorRepository interface {
	ListAll(ctx context.Context) ([]entity.Competitor, error)
}
