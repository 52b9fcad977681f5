package reconcile

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// reconcilePurchaseOrders anula proveedores inexistentes, filtra líneas cuyo
// producto desapareció y recalcula subtotal y cantidad de unidades a partir
// de las líneas sobrevivientes.
func (s *Service) reconcilePurchaseOrders(ctx context.Context) ModuleResult {
	res := newResult(modulePurchaseOrders)
	orders, err := s.deps.PurchaseOrders.ListAll(ctx)
	if err != nil {
		return res.fail("leer purchase_orders", err)
	}
	suppliers, err := s.index(ctx, repository.ColSuppliers)
	if err != nil {
		return res.fail("índices", err)
	}
	products, err := s.index(ctx, repository.ColProducts)
	if err != nil {
		return res.fail("índices", err)
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, o := range orders {
		fields := map[string]any{}
		if o.SupplierID != "" && !suppliers.Has(o.SupplierID) {
			cleanRef(fields, "supplier_id", "supplier_name")
			res.ReferencesCleaned++
		}
		valid, dropped := filterLines(o.Lines, products)
		if dropped > 0 {
			fields["lines"] = valid
			res.ReferencesCleaned += dropped
		}
		subtotal, unitCount := entity.SumLines(valid)
		if !o.Subtotal.Equal(subtotal) {
			fields["subtotal"] = subtotal
		}
		if o.UnitCount != unitCount {
			fields["unit_count"] = unitCount
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColPurchaseOrders, o.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileSales anula clientes inexistentes y filtra líneas huérfanas de las
// ventas, con recálculo de totales.
func (s *Service) reconcileSales(ctx context.Context) ModuleResult {
	res := newResult(moduleSales)
	sales, err := s.deps.Sales.ListAll(ctx)
	if err != nil {
		return res.fail("leer sales", err)
	}
	clients, err := s.index(ctx, repository.ColClients)
	if err != nil {
		return res.fail("índices", err)
	}
	products, err := s.index(ctx, repository.ColProducts)
	if err != nil {
		return res.fail("índices", err)
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, v := range sales {
		fields := map[string]any{}
		if v.ClientID != "" && !clients.Has(v.ClientID) {
			cleanRef(fields, "client_id", "client_name")
			res.ReferencesCleaned++
		}
		valid, dropped := filterLines(v.Lines, products)
		if dropped > 0 {
			fields["lines"] = valid
			res.ReferencesCleaned += dropped
		}
		subtotal, unitCount := entity.SumLines(valid)
		if !v.Subtotal.Equal(subtotal) {
			fields["subtotal"] = subtotal
		}
		if v.UnitCount != unitCount {
			fields["unit_count"] = unitCount
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColSales, v.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileQuotes misma reparación que las ventas, sobre cotizaciones.
func (s *Service) reconcileQuotes(ctx context.Context) ModuleResult {
	res := newResult(moduleQuotes)
	quotes, err := s.deps.Quotes.ListAll(ctx)
	if err != nil {
		return res.fail("leer quotes", err)
	}
	clients, err := s.index(ctx, repository.ColClients)
	if err != nil {
		return res.fail("índices", err)
	}
	products, err := s.index(ctx, repository.ColProducts)
	if err != nil {
		return res.fail("índices", err)
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, q := range quotes {
		fields := map[string]any{}
		if q.ClientID != "" && !clients.Has(q.ClientID) {
			cleanRef(fields, "client_id", "client_name")
			res.ReferencesCleaned++
		}
		valid, dropped := filterLines(q.Lines, products)
		if dropped > 0 {
			fields["lines"] = valid
			res.ReferencesCleaned += dropped
		}
		subtotal, unitCount := entity.SumLines(valid)
		if !q.Subtotal.Equal(subtotal) {
			fields["subtotal"] = subtotal
		}
		if q.UnitCount != unitCount {
			fields["unit_count"] = unitCount
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColQuotes, q.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileSuppliers reescribe las métricas cacheadas del proveedor
// (cantidad de órdenes y total comprado) agregando las órdenes de compra que
// lo referencian. Corre después del módulo de órdenes, sobre totales ya
// recalculados.
func (s *Service) reconcileSuppliers(ctx context.Context) ModuleResult {
	res := newResult(moduleSuppliers)
	suppliers, err := s.deps.Suppliers.ListAll(ctx)
	if err != nil {
		return res.fail("leer suppliers", err)
	}
	orders, err := s.deps.PurchaseOrders.ListAll(ctx)
	if err != nil {
		return res.fail("leer purchase_orders", err)
	}

	agg := map[string]tally{}
	for _, o := range orders {
		if o.SupplierID != "" {
			addTally(agg, o.SupplierID, o.Subtotal)
		}
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, sup := range suppliers {
		t := agg[sup.ID]
		fields := map[string]any{}
		if sup.OrderCount != t.count {
			fields["order_count"] = t.count
		}
		if !sup.TotalPurchased.Equal(t.total) {
			fields["total_purchased"] = t.total
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColSuppliers, sup.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileClients reescribe las métricas cacheadas del cliente (cantidad de
// ventas y total gastado) agregando las ventas que lo referencian.
func (s *Service) reconcileClients(ctx context.Context) ModuleResult {
	res := newResult(moduleClients)
	clients, err := s.deps.Clients.ListAll(ctx)
	if err != nil {
		return res.fail("leer clients", err)
	}
	sales, err := s.deps.Sales.ListAll(ctx)
	if err != nil {
		return res.fail("leer sales", err)
	}

	agg := map[string]tally{}
	for _, v := range sales {
		if v.ClientID != "" {
			addTally(agg, v.ClientID, v.Subtotal)
		}
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, c := range clients {
		t := agg[c.ID]
		fields := map[string]any{}
		if c.SaleCount != t.count {
			fields["sale_count"] = t.count
		}
		if !c.TotalSpent.Equal(t.total) {
			fields["total_spent"] = t.total
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColClients, c.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileExpenses limpia la referencia a ventas inexistentes; el gasto se
// conserva porque su valor contable no depende de la venta.
func (s *Service) reconcileExpenses(ctx context.Context) ModuleResult {
	res := newResult(moduleExpenses)
	expenses, err := s.deps.Expenses.ListAll(ctx)
	if err != nil {
		return res.fail("leer expenses", err)
	}
	sales, err := s.index(ctx, repository.ColSales)
	if err != nil {
		return res.fail("índices", err)
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, e := range expenses {
		if e.SaleID != "" && !sales.Has(e.SaleID) {
			b.Update(ctx, repository.ColExpenses, e.ID, map[string]any{"sale_id": nil})
			res.ReferencesCleaned++
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}
