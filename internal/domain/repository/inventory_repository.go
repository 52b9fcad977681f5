package repository

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

// UnitRepository puerto de lectura de la colección units (fuente de verdad
// del stock). El motor solo necesita el escaneo completo.
type UnitRepository interface {
	ListAll(ctx context.Context) ([]entity.Unit, error)
}

// ProductRepository puerto de lectura de la colección products.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
}

// WarehouseRepository puerto de lectura de la colección warehouses.
type WarehouseRepository interface {
	ListAll(ctx context.Context) ([]entity.Warehouse, error)
}

// TransferRepository puerto de lectura de la colección transfers.
type TransferRepository interface {
	ListAll(ctx context.Context) ([]entity.Transfer, error)
}
