package entity

import "github.com/shopspring/decimal"

// Line es una línea de detalle de una orden de compra, venta o cotización.
// Subtotal se almacena tal cual fue escrito por la aplicación; el motor de
// conciliación nunca lo re-deriva de UnitPrice × Quantity, solo suma los
// subtotales de las líneas que sobreviven al filtrado.
type Line struct {
	ProductID   string          `bson:"product_id"`
	ProductName string          `bson:"product_name"`
	Quantity    int             `bson:"quantity"`
	UnitPrice   decimal.Decimal `bson:"unit_price"`
	Subtotal    decimal.Decimal `bson:"subtotal"`
}

// SumLines devuelve el subtotal y la cantidad total de unidades de un conjunto
// de líneas (los totales derivados que se cachean en el documento padre).
func SumLines(lines []Line) (decimal.Decimal, int) {
	subtotal := decimal.Zero
	units := 0
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal)
		units += l.Quantity
	}
	return subtotal, units
}
