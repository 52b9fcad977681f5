package entity

import "github.com/shopspring/decimal"

// Expense representa un gasto, opcionalmente asociado a una venta.
// Si la venta desaparece se limpia la referencia; el gasto se conserva porque
// su valor contable es independiente de la venta.
type Expense struct {
	ID      string          `bson:"_id"`
	SaleID  string          `bson:"sale_id,omitempty"`
	Concept string          `bson:"concept"`
	Amount  decimal.Decimal `bson:"amount"`
}
