package entity

// Warehouse representa una bodega. CurrentStock es un contador cacheado:
// la fuente de verdad es la cantidad de unidades cuyo WarehouseID la referencia.
type Warehouse struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	CurrentStock int    `bson:"current_stock"`
}
