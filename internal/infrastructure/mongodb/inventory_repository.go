package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var (
	_ repository.UnitRepository      = (*UnitRepo)(nil)
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
	_ repository.TransferRepository  = (*TransferRepo)(nil)
)

// UnitRepo adaptador de lectura de la colección units.
type UnitRepo struct{ db *mongo.Database }

// NewUnitRepository construye el adaptador.
func NewUnitRepository(db *mongo.Database) *UnitRepo { return &UnitRepo{db: db} }

func (r *UnitRepo) ListAll(ctx context.Context) ([]entity.Unit, error) {
	return listAll[entity.Unit](ctx, r.db, repository.ColUnits)
}

// ProductRepo adaptador de lectura de la colección products.
type ProductRepo struct{ db *mongo.Database }

// NewProductRepository construye el adaptador.
func NewProductRepository(db *mongo.Database) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return listAll[entity.Product](ctx, r.db, repository.ColProducts)
}

// WarehouseRepo adaptador de lectura de la colección warehouses.
type WarehouseRepo struct{ db *mongo.Database }

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(db *mongo.Database) *WarehouseRepo { return &WarehouseRepo{db: db} }

func (r *WarehouseRepo) ListAll(ctx context.Context) ([]entity.Warehouse, error) {
	return listAll[entity.Warehouse](ctx, r.db, repository.ColWarehouses)
}

// TransferRepo adaptador de lectura de la colección transfers.
type TransferRepo struct{ db *mongo.Database }

// NewTransferRepository construye el adaptador.
func NewTransferRepository(db *mongo.Database) *TransferRepo { return &TransferRepo{db: db} }

func (r *TransferRepo) ListAll(ctx context.Context) ([]entity.Transfer, error) {
	return listAll[entity.Transfer](ctx, r.db, repository.ColTransfers)
}
