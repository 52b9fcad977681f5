package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

func TestStockByProduct_AgrupaPorEstado(t *testing.T) {
	units := []entity.Unit{
		{ID: "u1", ProductID: "p1", State: entity.UnitStateReceivedOrigin},
		{ID: "u2", ProductID: "p1", State: entity.UnitStateAvailableDestination},
		{ID: "u3", ProductID: "p1", State: entity.UnitStateTransitOrigin},
		{ID: "u4", ProductID: "p1", State: entity.UnitStateTransitDestination},
		{ID: "u5", ProductID: "p1", State: entity.UnitStateAssigned},
		{ID: "u6", ProductID: "p1", State: entity.UnitStateDispatch},
		{ID: "u7", ProductID: "p1", State: entity.UnitStateSold},
		{ID: "u8", ProductID: "p1", State: entity.UnitStateExpired},
	}
	counts := stockByProduct(units, IndexOf("p1"))

	c := counts["p1"]
	assert.Equal(t, 1, c.origin)
	assert.Equal(t, 1, c.dest)
	assert.Equal(t, 2, c.transit)
	assert.Equal(t, 2, c.reserved)
	assert.Equal(t, 0, c.available(), "vendidas y vencidas no suman a ningún contador")
}

func TestStockByProduct_ProductoSinUnidadesParteEnCero(t *testing.T) {
	counts := stockByProduct(nil, IndexOf("p1", "p2"))
	assert.Len(t, counts, 2)
	assert.Equal(t, stockCount{}, counts["p1"])
}

func TestStockByProduct_UnidadSinProductoResolubleSeExcluye(t *testing.T) {
	units := []entity.Unit{
		{ID: "u1", ProductID: "fantasma", State: entity.UnitStateReceivedOrigin},
	}
	counts := stockByProduct(units, IndexOf("p1"))
	assert.Equal(t, 0, counts["p1"].origin)
	assert.NotContains(t, counts, "fantasma")
}

func TestStockByWarehouse_IgnoraBodegasInexistentes(t *testing.T) {
	units := []entity.Unit{
		{ID: "u1", WarehouseID: "w1"},
		{ID: "u2", WarehouseID: "w1"},
		{ID: "u3", WarehouseID: "w-borrada"},
		{ID: "u4"},
	}
	counts := stockByWarehouse(units, IndexOf("w1", "w2"))
	assert.Equal(t, 2, counts["w1"])
	assert.Equal(t, 0, counts["w2"])
	assert.Len(t, counts, 2)
}

func TestTally_PromedioYCasoVacio(t *testing.T) {
	var t0 tally
	assert.True(t, t0.average().IsZero(), "sin observaciones el promedio es cero, no una división por cero")

	m := map[string]tally{}
	addTally(m, "k", decimal.NewFromInt(100))
	addTally(m, "k", decimal.NewFromInt(50))
	got := m["k"]
	assert.Equal(t, 2, got.count)
	assert.True(t, got.average().Equal(decimal.NewFromInt(75)))
}

func TestFilterLines_ConservaSoloProductosExistentes(t *testing.T) {
	lines := []entity.Line{
		{ProductID: "p1", Quantity: 1, Subtotal: decimal.NewFromInt(10)},
		{ProductID: "p-borrado", Quantity: 2, Subtotal: decimal.NewFromInt(20)},
		{ProductID: "p2", Quantity: 3, Subtotal: decimal.NewFromInt(30)},
	}
	valid, dropped := filterLines(lines, IndexOf("p1", "p2"))
	assert.Len(t, valid, 2)
	assert.Equal(t, 1, dropped)

	subtotal, units := entity.SumLines(valid)
	assert.True(t, subtotal.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 4, units)
}

func TestCleanRef_ConYSinEtiqueta(t *testing.T) {
	fields := map[string]any{}
	cleanRef(fields, "client_id", "client_name")
	assert.Nil(t, fields["client_id"])
	assert.Equal(t, RemovedLabel, fields["client_name"])

	fields = map[string]any{}
	cleanRef(fields, "competitor_id", "")
	assert.Len(t, fields, 1, "sin campo de etiqueta solo se anula la llave")
}
