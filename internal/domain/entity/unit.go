package entity

// Estados del ciclo de vida de una unidad física. El stock cacheado del
// producto se deriva de ellos: origen, destino, tránsito y reservado.
const (
	UnitStateReceivedOrigin       = "recibido_origen"
	UnitStateAvailableDestination = "disponible_destino"
	UnitStateTransitOrigin        = "transito_origen"
	UnitStateTransitDestination   = "transito_destino"
	UnitStateAssigned             = "asignada"
	UnitStateDispatch             = "en_despacho"
	UnitStateSold                 = "vendida"
	UnitStateExpired              = "vencida"
)

// Unit representa una unidad física individual de inventario. Es la fuente de
// verdad de todos los contadores de stock: producto, bodega y orden de compra
// la referencian por id, y una unidad cuyo producto u orden ya no existen se
// elimina en cascada.
type Unit struct {
	ID              string `bson:"_id"`
	ProductID       string `bson:"product_id"`
	State           string `bson:"state"`
	WarehouseID     string `bson:"warehouse_id,omitempty"`
	PurchaseOrderID string `bson:"purchase_order_id,omitempty"`
}
