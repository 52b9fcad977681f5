package entity

// Transfer representa un traslado de unidades entre bodegas.
// UnitCount es derivado: debe ser igual a len(UnitIDs) después de filtrar
// unidades inexistentes. Las referencias a bodega se anulan (no se elimina el
// traslado) cuando la bodega desaparece.
type Transfer struct {
	ID                  string   `bson:"_id"`
	OriginWarehouseID   string   `bson:"origin_warehouse_id,omitempty"`
	OriginWarehouseName string   `bson:"origin_warehouse_name,omitempty"`
	DestWarehouseID     string   `bson:"dest_warehouse_id,omitempty"`
	DestWarehouseName   string   `bson:"dest_warehouse_name,omitempty"`
	UnitIDs             []string `bson:"unit_ids"`
	UnitCount           int      `bson:"unit_count"`
}
