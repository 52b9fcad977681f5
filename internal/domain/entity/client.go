package entity

import "github.com/shopspring/decimal"

// Client representa un cliente del CRM con métricas cacheadas derivadas de
// las ventas que lo referencian.
type Client struct {
	ID         string          `bson:"_id"`
	Name       string          `bson:"name"`
	SaleCount  int             `bson:"sale_count"`
	TotalSpent decimal.Decimal `bson:"total_spent"`
}
