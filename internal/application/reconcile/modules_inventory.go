package reconcile

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// reconcileUnits elimina en cascada las unidades cuyo producto u orden de
// compra de origen ya no existen, y anula la referencia a bodegas
// inexistentes. Corre primero en la pasada: todos los contadores derivados se
// recalculan después sobre una colección units ya limpia.
func (s *Service) reconcileUnits(ctx context.Context) ModuleResult {
	res := newResult(moduleUnits)
	units, err := s.deps.Units.ListAll(ctx)
	if err != nil {
		return res.fail("leer units", err)
	}
	products, err := s.index(ctx, repository.ColProducts)
	if err != nil {
		return res.fail("índices", err)
	}
	orders, err := s.index(ctx, repository.ColPurchaseOrders)
	if err != nil {
		return res.fail("índices", err)
	}
	warehouses, err := s.index(ctx, repository.ColWarehouses)
	if err != nil {
		return res.fail("índices", err)
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, u := range units {
		// Una unidad sin producto válido corrompería todos los contadores
		// derivados de ella: se elimina, no se marca.
		if u.ProductID == "" || !products.Has(u.ProductID) {
			b.Delete(ctx, repository.ColUnits, u.ID)
			res.ReferencesCleaned++
			continue
		}
		if u.PurchaseOrderID != "" && !orders.Has(u.PurchaseOrderID) {
			b.Delete(ctx, repository.ColUnits, u.ID)
			res.ReferencesCleaned++
			continue
		}
		if u.WarehouseID != "" && !warehouses.Has(u.WarehouseID) {
			b.Update(ctx, repository.ColUnits, u.ID, map[string]any{"warehouse_id": nil})
			res.ReferencesCleaned++
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileTransfers anula bodegas inexistentes en los traslados, filtra los
// ids de unidades que ya no existen y cuadra el total de unidades con la
// lista sobreviviente.
func (s *Service) reconcileTransfers(ctx context.Context) ModuleResult {
	res := newResult(moduleTransfers)
	transfers, err := s.deps.Transfers.ListAll(ctx)
	if err != nil {
		return res.fail("leer transfers", err)
	}
	warehouses, err := s.index(ctx, repository.ColWarehouses)
	if err != nil {
		return res.fail("índices", err)
	}
	units, err := s.index(ctx, repository.ColUnits)
	if err != nil {
		return res.fail("índices", err)
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, t := range transfers {
		fields := map[string]any{}
		if t.OriginWarehouseID != "" && !warehouses.Has(t.OriginWarehouseID) {
			cleanRef(fields, "origin_warehouse_id", "origin_warehouse_name")
			res.ReferencesCleaned++
		}
		if t.DestWarehouseID != "" && !warehouses.Has(t.DestWarehouseID) {
			cleanRef(fields, "dest_warehouse_id", "dest_warehouse_name")
			res.ReferencesCleaned++
		}
		valid, dropped := filterIDs(t.UnitIDs, units)
		if dropped > 0 {
			fields["unit_ids"] = valid
			res.ReferencesCleaned += dropped
		}
		if t.UnitCount != len(valid) {
			fields["unit_count"] = len(valid)
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColTransfers, t.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileProducts repara referencias de catálogo del producto y reescribe
// los cuatro contadores de stock cacheados con los valores recalculados desde
// units. Un producto convergido no genera escritura alguna.
func (s *Service) reconcileProducts(ctx context.Context) ModuleResult {
	res := newResult(moduleProducts)
	prods, err := s.deps.Products.ListAll(ctx)
	if err != nil {
		return res.fail("leer products", err)
	}
	units, err := s.deps.Units.ListAll(ctx)
	if err != nil {
		return res.fail("leer units", err)
	}
	brands, err := s.index(ctx, repository.ColBrands)
	if err != nil {
		return res.fail("índices", err)
	}
	categories, err := s.index(ctx, repository.ColCategories)
	if err != nil {
		return res.fail("índices", err)
	}
	types, err := s.index(ctx, repository.ColProductTypes)
	if err != nil {
		return res.fail("índices", err)
	}
	competitors, err := s.index(ctx, repository.ColCompetitors)
	if err != nil {
		return res.fail("índices", err)
	}

	productIdx := make(Index, len(prods))
	for _, p := range prods {
		productIdx[p.ID] = struct{}{}
	}
	counts := stockByProduct(units, productIdx)

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, p := range prods {
		fields := map[string]any{}
		if p.BrandID != "" && !brands.Has(p.BrandID) {
			cleanRef(fields, "brand_id", "brand_name")
			res.ReferencesCleaned++
		}
		if p.CategoryID != "" && !categories.Has(p.CategoryID) {
			cleanRef(fields, "category_id", "category_name")
			res.ReferencesCleaned++
		}
		if p.ProductTypeID != "" && !types.Has(p.ProductTypeID) {
			cleanRef(fields, "product_type_id", "product_type_name")
			res.ReferencesCleaned++
		}
		if p.CompetitorID != "" && !competitors.Has(p.CompetitorID) {
			cleanRef(fields, "competitor_id", "")
			res.ReferencesCleaned++
		}
		c := counts[p.ID]
		if p.OriginStock != c.origin {
			fields["origin_stock"] = c.origin
		}
		if p.DestStock != c.dest {
			fields["dest_stock"] = c.dest
		}
		if p.TransitStock != c.transit {
			fields["transit_stock"] = c.transit
		}
		if p.ReservedStock != c.reserved {
			fields["reserved_stock"] = c.reserved
		}
		if p.AvailableStock != c.available() {
			fields["available_stock"] = c.available()
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColProducts, p.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileWarehouses reescribe el stock cacheado de cada bodega con el
// conteo real de unidades que la referencian.
func (s *Service) reconcileWarehouses(ctx context.Context) ModuleResult {
	res := newResult(moduleWarehouses)
	warehouses, err := s.deps.Warehouses.ListAll(ctx)
	if err != nil {
		return res.fail("leer warehouses", err)
	}
	units, err := s.deps.Units.ListAll(ctx)
	if err != nil {
		return res.fail("leer units", err)
	}

	idx := make(Index, len(warehouses))
	for _, w := range warehouses {
		idx[w.ID] = struct{}{}
	}
	counts := stockByWarehouse(units, idx)

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, w := range warehouses {
		if w.CurrentStock != counts[w.ID] {
			b.Update(ctx, repository.ColWarehouses, w.ID, map[string]any{"current_stock": counts[w.ID]})
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}
