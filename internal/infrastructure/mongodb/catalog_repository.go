package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var (
	_ repository.BrandRepository       = (*BrandRepo)(nil)
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
	_ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)
	_ repository.CompetitorRepository  = (*CompetitorRepo)(nil)
)

// BrandRepo adaptador de lectura de la colección brands.
type BrandRepo struct{ db *mongo.Database }

// NewBrandRepository construye el adaptador.
func NewBrandRepository(db *mongo.Database) *BrandRepo { return &BrandRepo{db: db} }

func (r *BrandRepo) ListAll(ctx context.Context) ([]entity.Brand, error) {
	return listAll[entity.Brand](ctx, r.db, repository.ColBrands)
}

// CategoryRepo adaptador de lectura de la colección categories.
type CategoryRepo struct{ db *mongo.Database }

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) ListAll(ctx context.Context) ([]entity.Category, error) {
	return listAll[entity.Category](ctx, r.db, repository.ColCategories)
}

// ProductTypeRepo adaptador de lectura de la colección product_types.
type ProductTypeRepo struct{ db *mongo.Database }

// NewProductTypeRepository construye el adaptador.
func NewProductTypeRepository(db *mongo.Database) *ProductTypeRepo { return &ProductTypeRepo{db: db} }

func (r *ProductTypeRepo) ListAll(ctx context.Context) ([]entity.ProductType, error) {
	return listAll[entity.ProductType](ctx, r.db, repository.ColProductTypes)
}

// CompetitorRepo adaptador de lectura de la colección competitors.
type CompetitorRepo struct{ db *mongo.Database }

// NewCompetitorRepository construye el adaptador.
func NewCompetitorRepository(db *mongo.Database) *CompetitorRepo { return &CompetitorRepo{db: db} }

func (r *CompetitorRepo) ListAll(ctx context.Context) ([]entity.Competitor, error) {
	return listAll[entity.Competitor](ctx, r.db, repository.ColCompetitors)
}
