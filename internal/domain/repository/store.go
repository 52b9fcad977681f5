package repository

import "context"

// Nombres de las colecciones del almacén documental.
const (
	ColUnits          = "units"
	ColProducts       = "products"
	ColWarehouses     = "warehouses"
	ColSuppliers      = "suppliers"
	ColPurchaseOrders = "purchase_orders"
	ColSales          = "sales"
	ColQuotes         = "quotes"
	ColTransfers      = "transfers"
	ColExpenses       = "expenses"
	ColClients        = "clients"
	ColBrands         = "brands"
	ColCategories     = "categories"
	ColProductTypes   = "product_types"
	ColCompetitors    = "competitors"
)

// OpKind tipo de mutación acumulable en un lote.
type OpKind int

const (
	OpUpdate OpKind = iota
	OpDelete
)

// Operation una mutación puntual sobre un documento. Para OpUpdate, Fields
// contiene los campos a sobreescribir (semántica $set campo a campo, nunca
// reemplazo del documento completo).
type Operation struct {
	Kind       OpKind
	Collection string
	ID         string
	Fields     map[string]any
}

// BulkWriter puerto de escritura por lotes del almacén documental (DIP).
// El almacén impone un máximo de operaciones por lote; el llamador es
// responsable de no excederlo (ver reconcile.Batch).
type BulkWriter interface {
	Commit(ctx context.Context, ops []Operation) error
}

// ExistenceIndexReader carga en un solo escaneo todos los ids existentes de
// una colección, para validar integridad referencial de llaves foráneas.
type ExistenceIndexReader interface {
	ListIDs(ctx context.Context, collection string) (map[string]struct{}, error)
}
