package reconcile_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocio-api/internal/application/reconcile"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// fakeStore almacén documental en memoria para los tests del motor: mantiene
// un mapa por colección, aplica los lotes confirmados sobre sí mismo y
// permite inyectar fallas de lectura por colección.
type fakeStore struct {
	units          map[string]entity.Unit
	products       map[string]entity.Product
	warehouses     map[string]entity.Warehouse
	transfers      map[string]entity.Transfer
	purchaseOrders map[string]entity.PurchaseOrder
	sales          map[string]entity.Sale
	quotes         map[string]entity.Quote
	expenses       map[string]entity.Expense
	suppliers      map[string]entity.Supplier
	clients        map[string]entity.Client
	brands         map[string]entity.Brand
	categories     map[string]entity.Category
	productTypes   map[string]entity.ProductType
	competitors    map[string]entity.Competitor

	failList  map[string]error // colección -> error de ListAll
	failIDs   map[string]error // colección -> error de ListIDs
	commitErr error

	commits int
	updates map[string]int // colección -> updates aplicados
	deletes map[string]int // colección -> deletes aplicados
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		units:          map[string]entity.Unit{},
		products:       map[string]entity.Product{},
		warehouses:     map[string]entity.Warehouse{},
		transfers:      map[string]entity.Transfer{},
		purchaseOrders: map[string]entity.PurchaseOrder{},
		sales:          map[string]entity.Sale{},
		quotes:         map[string]entity.Quote{},
		expenses:       map[string]entity.Expense{},
		suppliers:      map[string]entity.Supplier{},
		clients:        map[string]entity.Client{},
		brands:         map[string]entity.Brand{},
		categories:     map[string]entity.Category{},
		productTypes:   map[string]entity.ProductType{},
		competitors:    map[string]entity.Competitor{},
		failList:       map[string]error{},
		failIDs:        map[string]error{},
		updates:        map[string]int{},
		deletes:        map[string]int{},
	}
}

func values[T any](m map[string]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func keys[T any](m map[string]T) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// ListIDs implementa repository.ExistenceIndexReader.
func (f *fakeStore) ListIDs(_ context.Context, collection string) (map[string]struct{}, error) {
	if err := f.failIDs[collection]; err != nil {
		return nil, err
	}
	switch collection {
	case repository.ColUnits:
		return keys(f.units), nil
	case repository.ColProducts:
		return keys(f.products), nil
	case repository.ColWarehouses:
		return keys(f.warehouses), nil
	case repository.ColTransfers:
		return keys(f.transfers), nil
	case repository.ColPurchaseOrders:
		return keys(f.purchaseOrders), nil
	case repository.ColSales:
		return keys(f.sales), nil
	case repository.ColQuotes:
		return keys(f.quotes), nil
	case repository.ColExpenses:
		return keys(f.expenses), nil
	case repository.ColSuppliers:
		return keys(f.suppliers), nil
	case repository.ColClients:
		return keys(f.clients), nil
	case repository.ColBrands:
		return keys(f.brands), nil
	case repository.ColCategories:
		return keys(f.categories), nil
	case repository.ColProductTypes:
		return keys(f.productTypes), nil
	case repository.ColCompetitors:
		return keys(f.competitors), nil
	}
	return map[string]struct{}{}, nil
}

// Commit implementa repository.BulkWriter aplicando las operaciones sobre los
// mapas en memoria.
func (f *fakeStore) Commit(_ context.Context, ops []repository.Operation) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits++
	for _, op := range ops {
		f.apply(op)
		switch op.Kind {
		case repository.OpUpdate:
			f.updates[op.Collection]++
		case repository.OpDelete:
			f.deletes[op.Collection]++
		}
	}
	return nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (f *fakeStore) apply(op repository.Operation) {
	switch op.Collection {
	case repository.ColUnits:
		if op.Kind == repository.OpDelete {
			delete(f.units, op.ID)
			return
		}
		u := f.units[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "warehouse_id":
				u.WarehouseID = asString(v)
			case "purchase_order_id":
				u.PurchaseOrderID = asString(v)
			}
		}
		f.units[op.ID] = u
	case repository.ColProducts:
		p := f.products[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "brand_id":
				p.BrandID = asString(v)
			case "brand_name":
				p.BrandName = asString(v)
			case "category_id":
				p.CategoryID = asString(v)
			case "category_name":
				p.CategoryName = asString(v)
			case "product_type_id":
				p.ProductTypeID = asString(v)
			case "product_type_name":
				p.ProductTypeName = asString(v)
			case "competitor_id":
				p.CompetitorID = asString(v)
			case "origin_stock":
				p.OriginStock = v.(int)
			case "dest_stock":
				p.DestStock = v.(int)
			case "transit_stock":
				p.TransitStock = v.(int)
			case "reserved_stock":
				p.ReservedStock = v.(int)
			case "available_stock":
				p.AvailableStock = v.(int)
			}
		}
		f.products[op.ID] = p
	case repository.ColWarehouses:
		w := f.warehouses[op.ID]
		if v, ok := op.Fields["current_stock"]; ok {
			w.CurrentStock = v.(int)
		}
		f.warehouses[op.ID] = w
	case repository.ColTransfers:
		t := f.transfers[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "origin_warehouse_id":
				t.OriginWarehouseID = asString(v)
			case "origin_warehouse_name":
				t.OriginWarehouseName = asString(v)
			case "dest_warehouse_id":
				t.DestWarehouseID = asString(v)
			case "dest_warehouse_name":
				t.DestWarehouseName = asString(v)
			case "unit_ids":
				t.UnitIDs = v.([]string)
			case "unit_count":
				t.UnitCount = v.(int)
			}
		}
		f.transfers[op.ID] = t
	case repository.ColPurchaseOrders:
		o := f.purchaseOrders[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "supplier_id":
				o.SupplierID = asString(v)
			case "supplier_name":
				o.SupplierName = asString(v)
			case "lines":
				o.Lines = v.([]entity.Line)
			case "subtotal":
				o.Subtotal = v.(decimal.Decimal)
			case "unit_count":
				o.UnitCount = v.(int)
			}
		}
		f.purchaseOrders[op.ID] = o
	case repository.ColSales:
		s := f.sales[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "client_id":
				s.ClientID = asString(v)
			case "client_name":
				s.ClientName = asString(v)
			case "lines":
				s.Lines = v.([]entity.Line)
			case "subtotal":
				s.Subtotal = v.(decimal.Decimal)
			case "unit_count":
				s.UnitCount = v.(int)
			}
		}
		f.sales[op.ID] = s
	case repository.ColQuotes:
		q := f.quotes[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "client_id":
				q.ClientID = asString(v)
			case "client_name":
				q.ClientName = asString(v)
			case "lines":
				q.Lines = v.([]entity.Line)
			case "subtotal":
				q.Subtotal = v.(decimal.Decimal)
			case "unit_count":
				q.UnitCount = v.(int)
			}
		}
		f.quotes[op.ID] = q
	case repository.ColExpenses:
		e := f.expenses[op.ID]
		if v, ok := op.Fields["sale_id"]; ok {
			e.SaleID = asString(v)
		}
		f.expenses[op.ID] = e
	case repository.ColSuppliers:
		s := f.suppliers[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "order_count":
				s.OrderCount = v.(int)
			case "total_purchased":
				s.TotalPurchased = v.(decimal.Decimal)
			}
		}
		f.suppliers[op.ID] = s
	case repository.ColClients:
		c := f.clients[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "sale_count":
				c.SaleCount = v.(int)
			case "total_spent":
				c.TotalSpent = v.(decimal.Decimal)
			}
		}
		f.clients[op.ID] = c
	case repository.ColBrands:
		b := f.brands[op.ID]
		if v, ok := op.Fields["product_count"]; ok {
			b.ProductCount = v.(int)
		}
		f.brands[op.ID] = b
	case repository.ColCategories:
		c := f.categories[op.ID]
		if v, ok := op.Fields["product_count"]; ok {
			c.ProductCount = v.(int)
		}
		f.categories[op.ID] = c
	case repository.ColProductTypes:
		t := f.productTypes[op.ID]
		if v, ok := op.Fields["product_count"]; ok {
			t.ProductCount = v.(int)
		}
		f.productTypes[op.ID] = t
	case repository.ColCompetitors:
		c := f.competitors[op.ID]
		for k, v := range op.Fields {
			switch k {
			case "product_count":
				c.ProductCount = v.(int)
			case "average_price":
				c.AveragePrice = v.(decimal.Decimal)
			}
		}
		f.competitors[op.ID] = c
	}
}

// Adaptadores tipados por colección: cada puerto ListAll tiene una firma
// distinta, así que no pueden vivir todos sobre fakeStore.

type unitsOf struct{ f *fakeStore }

func (r unitsOf) ListAll(context.Context) ([]entity.Unit, error) {
	if err := r.f.failList[repository.ColUnits]; err != nil {
		return nil, err
	}
	return values(r.f.units), nil
}

type productsOf struct{ f *fakeStore }

func (r productsOf) ListAll(context.Context) ([]entity.Product, error) {
	if err := r.f.failList[repository.ColProducts]; err != nil {
		return nil, err
	}
	return values(r.f.products), nil
}

type warehousesOf struct{ f *fakeStore }

func (r warehousesOf) ListAll(context.Context) ([]entity.Warehouse, error) {
	if err := r.f.failList[repository.ColWarehouses]; err != nil {
		return nil, err
	}
	return values(r.f.warehouses), nil
}

type transfersOf struct{ f *fakeStore }

func (r transfersOf) ListAll(context.Context) ([]entity.Transfer, error) {
	if err := r.f.failList[repository.ColTransfers]; err != nil {
		return nil, err
	}
	return values(r.f.transfers), nil
}

type purchaseOrdersOf struct{ f *fakeStore }

func (r purchaseOrdersOf) ListAll(context.Context) ([]entity.PurchaseOrder, error) {
	if err := r.f.failList[repository.ColPurchaseOrders]; err != nil {
		return nil, err
	}
	return values(r.f.purchaseOrders), nil
}

type salesOf struct{ f *fakeStore }

func (r salesOf) ListAll(context.Context) ([]entity.Sale, error) {
	if err := r.f.failList[repository.ColSales]; err != nil {
		return nil, err
	}
	return values(r.f.sales), nil
}

type quotesOf struct{ f *fakeStore }

func (r quotesOf) ListAll(context.Context) ([]entity.Quote, error) {
	if err := r.f.failList[repository.ColQuotes]; err != nil {
		return nil, err
	}
	return values(r.f.quotes), nil
}

type expensesOf struct{ f *fakeStore }

func (r expensesOf) ListAll(context.Context) ([]entity.Expense, error) {
	if err := r.f.failList[repository.ColExpenses]; err != nil {
		return nil, err
	}
	return values(r.f.expenses), nil
}

type suppliersOf struct{ f *fakeStore }

func (r suppliersOf) ListAll(context.Context) ([]entity.Supplier, error) {
	if err := r.f.failList[repository.ColSuppliers]; err != nil {
		return nil, err
	}
	return values(r.f.suppliers), nil
}

type clientsOf struct{ f *fakeStore }

func (r clientsOf) ListAll(context.Context) ([]entity.Client, error) {
	if err := r.f.failList[repository.ColClients]; err != nil {
		return nil, err
	}
	return values(r.f.clients), nil
}

type brandsOf struct{ f *fakeStore }

func (r brandsOf) ListAll(context.Context) ([]entity.Brand, error) {
	if err := r.f.failList[repository.ColBrands]; err != nil {
		return nil, err
	}
	return values(r.f.brands), nil
}

type categoriesOf struct{ f *fakeStore }

func (r categoriesOf) ListAll(context.Context) ([]entity.Category, error) {
	if err := r.f.failList[repository.ColCategories]; err != nil {
		return nil, err
	}
	return values(r.f.categories), nil
}

type productTypesOf struct{ f *fakeStore }

func (r productTypesOf) ListAll(context.Context) ([]entity.ProductType, error) {
	if err := r.f.failList[repository.ColProductTypes]; err != nil {
		return nil, err
	}
	return values(r.f.productTypes), nil
}

type competitorsOf struct{ f *fakeStore }

func (r competitorsOf) ListAll(context.Context) ([]entity.Competitor, error) {
	if err := r.f.failList[repository.ColCompetitors]; err != nil {
		return nil, err
	}
	return values(r.f.competitors), nil
}

// newTestService arma el motor completo sobre el almacén en memoria.
func newTestService(f *fakeStore, batchSize int) *reconcile.Service {
	return reconcile.NewService(reconcile.Deps{
		Units:          unitsOf{f},
		Products:       productsOf{f},
		Warehouses:     warehousesOf{f},
		Transfers:      transfersOf{f},
		PurchaseOrders: purchaseOrdersOf{f},
		Sales:          salesOf{f},
		Quotes:         quotesOf{f},
		Expenses:       expensesOf{f},
		Suppliers:      suppliersOf{f},
		Clients:        clientsOf{f},
		Brands:         brandsOf{f},
		Categories:     categoriesOf{f},
		ProductTypes:   productTypesOf{f},
		Competitors:    competitorsOf{f},
		IDs:            f,
		Writer:         f,
		BatchSize:      batchSize,
		Log:            logger.New(logger.Config{Env: "production", Level: "error"}),
	})
}
