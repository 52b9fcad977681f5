package entity

import "github.com/shopspring/decimal"

// Supplier representa un proveedor con métricas cacheadas derivadas de las
// órdenes de compra que lo referencian.
type Supplier struct {
	ID             string          `bson:"_id"`
	Name           string          `bson:"name"`
	OrderCount     int             `bson:"order_count"`
	TotalPurchased decimal.Decimal `bson:"total_purchased"`
}
