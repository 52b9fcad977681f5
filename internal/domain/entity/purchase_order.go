package entity

import "github.com/shopspring/decimal"

// PurchaseOrder representa una orden de compra a un proveedor.
// Subtotal y UnitCount son derivados de Lines y deben recalcularse cada vez
// que se filtran líneas con producto inexistente. SupplierID es opcional:
// si el proveedor desaparece se anula la referencia y SupplierName queda
// con la marca de eliminado (la orden sigue teniendo valor histórico).
type PurchaseOrder struct {
	ID           string          `bson:"_id"`
	SupplierID   string          `bson:"supplier_id,omitempty"`
	SupplierName string          `bson:"supplier_name,omitempty"`
	Lines        []Line          `bson:"lines"`
	Subtotal     decimal.Decimal `bson:"subtotal"`
	UnitCount    int             `bson:"unit_count"`
}
