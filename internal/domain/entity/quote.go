package entity

import "github.com/shopspring/decimal"

// Quote representa una cotización enviada a un cliente. Misma estructura de
// líneas y totales derivados que Sale, pero nunca afecta stock.
type Quote struct {
	ID         string          `bson:"_id"`
	ClientID   string          `bson:"client_id,omitempty"`
	ClientName string          `bson:"client_name,omitempty"`
	Lines      []Line          `bson:"lines"`
	Subtotal   decimal.Decimal `bson:"subtotal"`
	UnitCount  int             `bson:"unit_count"`
}
