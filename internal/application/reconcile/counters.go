package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

// stockCount contadores de stock por estado para un producto.
type stockCount struct {
	origin   int
	dest     int
	transit  int
	reserved int
}

func (c stockCount) available() int { return c.origin + c.dest - c.reserved }

// stockByProduct agrupa las unidades por producto y estado en una sola
// iteración. Los contadores de todo producto existente parten en cero, de modo
// que un producto que perdió todas sus unidades queda en cero y no con el
// valor rancio cacheado. Las unidades cuyo producto no resuelve son defectos
// referenciales: se excluyen del conteo (el módulo de unidades las elimina).
func stockByProduct(units []entity.Unit, products Index) map[string]stockCount {
	counts := make(map[string]stockCount, len(products))
	for id := range products {
		counts[id] = stockCount{}
	}
	for _, u := range units {
		if !products.Has(u.ProductID) {
			continue
		}
		c := counts[u.ProductID]
		switch u.State {
		case entity.UnitStateReceivedOrigin:
			c.origin++
		case entity.UnitStateAvailableDestination:
			c.dest++
		case entity.UnitStateTransitOrigin, entity.UnitStateTransitDestination:
			c.transit++
		case entity.UnitStateAssigned, entity.UnitStateDispatch:
			c.reserved++
		}
		counts[u.ProductID] = c
	}
	return counts
}

// stockByWarehouse cuenta las unidades que apuntan a cada bodega existente.
func stockByWarehouse(units []entity.Unit, warehouses Index) map[string]int {
	counts := make(map[string]int, len(warehouses))
	for id := range warehouses {
		counts[id] = 0
	}
	for _, u := range units {
		if u.WarehouseID == "" || !warehouses.Has(u.WarehouseID) {
			continue
		}
		counts[u.WarehouseID]++
	}
	return counts
}

// tally acumulador de conteo y suma monetaria por llave; sirve para las
// métricas cacheadas de proveedores, clientes y competidores.
type tally struct {
	count int
	total decimal.Decimal
}

// average promedio de la suma acumulada; cero si no hay observaciones.
func (t tally) average() decimal.Decimal {
	if t.count == 0 {
		return decimal.Zero
	}
	return t.total.Div(decimal.NewFromInt(int64(t.count)))
}

func addTally(m map[string]tally, key string, amount decimal.Decimal) {
	t := m[key]
	t.count++
	t.total = t.total.Add(amount)
	m[key] = t
}
