package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Negocio-api/internal/domain/repository"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// DefaultBatchSize tope de operaciones por lote si la configuración no define
// otro (el almacén rechaza lotes de más de 500 operaciones).
const DefaultBatchSize = 450

// Nombres de módulo tal como aparecen en el resumen y en el progreso.
const (
	moduleUnits          = "Unidades"
	moduleTransfers      = "Traslados"
	moduleProducts       = "Productos"
	moduleWarehouses     = "Bodegas"
	modulePurchaseOrders = "Órdenes de compra"
	moduleSuppliers      = "Proveedores"
	moduleSales          = "Ventas"
	moduleQuotes         = "Cotizaciones"
	moduleClients        = "Clientes"
	moduleExpenses       = "Gastos"
	moduleBrands         = "Marcas"
	moduleCategories     = "Categorías"
	moduleProductTypes   = "Tipos de producto"
	moduleCompetitors    = "Competidores"
)

// Deps puertos que consume el motor de conciliación.
type Deps struct {
	Units          repository.UnitRepository
	Products       repository.ProductRepository
	Warehouses     repository.WarehouseRepository
	Transfers      repository.TransferRepository
	PurchaseOrders repository.PurchaseOrderRepository
	Sales          repository.SaleRepository
	Quotes         repository.QuoteRepository
	Expenses       repository.ExpenseRepository
	Suppliers      repository.SupplierRepository
	Clients        repository.ClientRepository
	Brands         repository.BrandRepository
	Categories     repository.CategoryRepository
	ProductTypes   repository.ProductTypeRepository
	Competitors    repository.CompetitorRepository
	IDs            repository.ExistenceIndexReader
	Writer         repository.BulkWriter
	BatchSize      int
	Log            *logger.Logger
}

// Service motor de conciliación de consistencia entre colecciones: detecta y
// repara la deriva entre los contadores cacheados y las colecciones fuente de
// verdad, y limpia referencias a entidades que ya no existen. Una pasada es
// estrictamente secuencial: los módulos posteriores dependen del estado ya
// corregido por los anteriores.
type Service struct {
	deps Deps
}

// NewService construye el motor. BatchSize en cero toma DefaultBatchSize.
func NewService(deps Deps) *Service {
	if deps.BatchSize <= 0 {
		deps.BatchSize = DefaultBatchSize
	}
	if deps.Log == nil {
		deps.Log = logger.New(logger.Config{Env: "production", Level: "error"})
	}
	return &Service{deps: deps}
}

// index construye el índice de existencia de una colección.
func (s *Service) index(ctx context.Context, collection string) (Index, error) {
	ids, err := s.deps.IDs.ListIDs(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("índice de %s: %w", collection, err)
	}
	return Index(ids), nil
}

// Run ejecuta la pasada completa de conciliación sobre todos los módulos en
// orden fijo y devuelve el resumen global. Nunca retorna error: la falla de un
// módulo queda registrada en su resultado y la pasada continúa con el
// siguiente. progress se invoca antes de cada módulo y al 100% al terminar.
func (s *Service) Run(ctx context.Context, progress ProgressFunc) GlobalSummary {
	start := time.Now()
	modules := []struct {
		name string
		fn   func(context.Context) ModuleResult
	}{
		{moduleUnits, s.reconcileUnits},
		{moduleTransfers, s.reconcileTransfers},
		{moduleProducts, s.reconcileProducts},
		{moduleWarehouses, s.reconcileWarehouses},
		{modulePurchaseOrders, s.reconcilePurchaseOrders},
		{moduleSuppliers, s.reconcileSuppliers},
		{moduleSales, s.reconcileSales},
		{moduleQuotes, s.reconcileQuotes},
		{moduleClients, s.reconcileClients},
		{moduleExpenses, s.reconcileExpenses},
		{moduleBrands, s.reconcileBrands},
		{moduleCategories, s.reconcileCategories},
		{moduleProductTypes, s.reconcileProductTypes},
		{moduleCompetitors, s.reconcileCompetitors},
	}

	summary := GlobalSummary{
		RunID:     uuid.New().String(),
		Timestamp: start,
		Results:   make([]ModuleResult, 0, len(modules)),
	}
	total := len(modules)
	for i, m := range modules {
		if progress != nil {
			progress(fmt.Sprintf("Conciliando %s (%d/%d)...", m.name, i+1, total),
				float64(i)/float64(total)*100)
		}
		res := s.runModule(ctx, m.name, m.fn)
		summary.Results = append(summary.Results, res)
		summary.Totals.Updated += res.RecordsUpdated
		summary.Totals.Deleted += res.RecordsDeleted
		summary.Totals.ReferencesCleaned += res.ReferencesCleaned
		summary.Totals.Errors += len(res.Errors)
		s.deps.Log.Info().
			Str("modulo", m.name).
			Int("actualizados", res.RecordsUpdated).
			Int("eliminados", res.RecordsDeleted).
			Int("referencias_limpiadas", res.ReferencesCleaned).
			Int("errores", len(res.Errors)).
			Msg("módulo conciliado")
	}
	if progress != nil {
		progress("Conciliación completada", 100)
	}
	summary.Success = summary.Totals.Errors == 0
	summary.DurationMS = time.Since(start).Milliseconds()
	return summary
}

// runModule aísla el módulo: ni un pánico debe abortar la pasada global.
func (s *Service) runModule(ctx context.Context, name string, fn func(context.Context) ModuleResult) (res ModuleResult) {
	defer func() {
		if r := recover(); r != nil {
			s.deps.Log.Error().Str("modulo", name).Interface("panico", r).Msg("módulo abortado")
			res = newResult(name).fail("pánico", fmt.Errorf("%v", r))
		}
	}()
	return fn(ctx)
}
