package entity

import "github.com/shopspring/decimal"

// Sale representa una venta. ClientID es opcional (venta de mostrador o
// cliente eliminado); Subtotal y UnitCount son derivados de Lines.
type Sale struct {
	ID         string          `bson:"_id"`
	ClientID   string          `bson:"client_id,omitempty"`
	ClientName string          `bson:"client_name,omitempty"`
	Lines      []Line          `bson:"lines"`
	Subtotal   decimal.Decimal `bson:"subtotal"`
	UnitCount  int             `bson:"unit_count"`
}
