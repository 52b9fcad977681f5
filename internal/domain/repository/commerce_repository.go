package repository

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto de lectura de la colección purchase_orders.
type PurchaseOrderRepository interface {
	ListAll(ctx context.Context) ([]entity.PurchaseOrder, error)
}

// SaleRepository puerto de lectura de la colección sales.
type SaleRepository interface {
	ListAll(ctx context.Context) ([]entity.Sale, error)
}

// QuoteRepository puerto de lectura de la colección quotes.
type QuoteRepository interface {
	ListAll(ctx context.Context) ([]entity.Quote, error)
}

// ExpenseRepository puerto de lectura de la colección expenses.
type ExpenseRepository interface {
	ListAll(ctx context.Context) ([]entity.Expense, error)
}

// SupplierRepository puerto de lectura de la colección suppliers.
type SupplierRepository interface {
	ListAll(ctx context.Context) ([]entity.Supplier, error)
}

// ClientRepository puerto de lectura de la colección clients.
type ClientRepository interface {
	ListAll(ctx context.Context) ([]entity.Client, error)
}
