package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo con contadores de stock cacheados.
// Los cuatro contadores son derivados: la fuente de verdad es la colección units
// y el motor de conciliación los reescribe completos en cada pasada.
// AvailableStock no se almacena aparte de sus tres insumos: siempre vale
// origen + destino − reservado.
type Product struct {
	ID              string          `bson:"_id"`
	Name            string          `bson:"name"`
	BrandID         string          `bson:"brand_id,omitempty"`
	BrandName       string          `bson:"brand_name,omitempty"`
	CategoryID      string          `bson:"category_id,omitempty"`
	CategoryName    string          `bson:"category_name,omitempty"`
	ProductTypeID   string          `bson:"product_type_id,omitempty"`
	ProductTypeName string          `bson:"product_type_name,omitempty"`
	CompetitorID    string          `bson:"competitor_id,omitempty"`
	CompetitorPrice decimal.Decimal `bson:"competitor_price"`
	OriginStock     int             `bson:"origin_stock"`
	DestStock       int             `bson:"dest_stock"`
	TransitStock    int             `bson:"transit_stock"`
	ReservedStock   int             `bson:"reserved_stock"`
	AvailableStock  int             `bson:"available_stock"`
}

// ComputeAvailable devuelve el stock disponible derivado de los contadores.
func (p Product) ComputeAvailable() int {
	return p.OriginStock + p.DestStock - p.ReservedStock
}
