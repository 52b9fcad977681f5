package entity

import "github.com/shopspring/decimal"

// Brand, Category y ProductType son catálogos con un contador cacheado de
// productos que los referencian.

// Brand marca comercial.
type Brand struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	ProductCount int    `bson:"product_count"`
}

// Category categoría de producto.
type Category struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	ProductCount int    `bson:"product_count"`
}

// ProductType tipo de producto.
type ProductType struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	ProductCount int    `bson:"product_count"`
}

// Competitor competidor observado. AveragePrice es el promedio cacheado del
// precio de competencia registrado en los productos que lo referencian.
type Competitor struct {
	ID           string          `bson:"_id"`
	Name         string          `bson:"name"`
	ProductCount int             `bson:"product_count"`
	AveragePrice decimal.Decimal `bson:"average_price"`
}
