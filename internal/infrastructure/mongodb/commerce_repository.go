package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var (
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.SaleRepository          = (*SaleRepo)(nil)
	_ repository.QuoteRepository         = (*QuoteRepo)(nil)
	_ repository.ExpenseRepository       = (*ExpenseRepo)(nil)
	_ repository.SupplierRepository      = (*SupplierRepo)(nil)
	_ repository.ClientRepository        = (*ClientRepo)(nil)
)

// PurchaseOrderRepo adaptador de lectura de la colección purchase_orders.
type PurchaseOrderRepo struct{ db *mongo.Database }

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(db *mongo.Database) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{db: db}
}

func (r *PurchaseOrderRepo) ListAll(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return listAll[entity.PurchaseOrder](ctx, r.db, repository.ColPurchaseOrders)
}

// SaleRepo adaptador de lectura de la colección sales.
type SaleRepo struct{ db *mongo.Database }

// NewSaleRepository construye el adaptador.
func NewSaleRepository(db *mongo.Database) *SaleRepo { return &SaleRepo{db: db} }

func (r *SaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	return listAll[entity.Sale](ctx, r.db, repository.ColSales)
}

// QuoteRepo adaptador de lectura de la colección quotes.
type QuoteRepo struct{ db *mongo.Database }

// NewQuoteRepository construye el adaptador.
func NewQuoteRepository(db *mongo.Database) *QuoteRepo { return &QuoteRepo{db: db} }

func (r *QuoteRepo) ListAll(ctx context.Context) ([]entity.Quote, error) {
	return listAll[entity.Quote](ctx, r.db, repository.ColQuotes)
}

// ExpenseRepo adaptador de lectura de la colección expenses.
type ExpenseRepo struct{ db *mongo.Database }

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(db *mongo.Database) *ExpenseRepo { return &ExpenseRepo{db: db} }

func (r *ExpenseRepo) ListAll(ctx context.Context) ([]entity.Expense, error) {
	return listAll[entity.Expense](ctx, r.db, repository.ColExpenses)
}

// SupplierRepo adaptador de lectura de la colección suppliers.
type SupplierRepo struct{ db *mongo.Database }

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db *mongo.Database) *SupplierRepo { return &SupplierRepo{db: db} }

func (r *SupplierRepo) ListAll(ctx context.Context) ([]entity.Supplier, error) {
	return listAll[entity.Supplier](ctx, r.db, repository.ColSuppliers)
}

// ClientRepo adaptador de lectura de la colección clients.
type ClientRepo struct{ db *mongo.Database }

// NewClientRepository construye el adaptador.
func NewClientRepository(db *mongo.Database) *ClientRepo { return &ClientRepo{db: db} }

func (r *ClientRepo) ListAll(ctx context.Context) ([]entity.Client, error) {
	return listAll[entity.Client](ctx, r.db, repository.ColClients)
}
