package reconcile

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// reconcileBrands reescribe el conteo cacheado de productos por marca.
func (s *Service) reconcileBrands(ctx context.Context) ModuleResult {
	res := newResult(moduleBrands)
	brands, err := s.deps.Brands.ListAll(ctx)
	if err != nil {
		return res.fail("leer brands", err)
	}
	prods, err := s.deps.Products.ListAll(ctx)
	if err != nil {
		return res.fail("leer products", err)
	}

	counts := map[string]int{}
	for _, p := range prods {
		if p.BrandID != "" {
			counts[p.BrandID]++
		}
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, br := range brands {
		if br.ProductCount != counts[br.ID] {
			b.Update(ctx, repository.ColBrands, br.ID, map[string]any{"product_count": counts[br.ID]})
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileCategories reescribe el conteo cacheado de productos por categoría.
func (s *Service) reconcileCategories(ctx context.Context) ModuleResult {
	res := newResult(moduleCategories)
	categories, err := s.deps.Categories.ListAll(ctx)
	if err != nil {
		return res.fail("leer categories", err)
	}
	prods, err := s.deps.Products.ListAll(ctx)
	if err != nil {
		return res.fail("leer products", err)
	}

	counts := map[string]int{}
	for _, p := range prods {
		if p.CategoryID != "" {
			counts[p.CategoryID]++
		}
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, c := range categories {
		if c.ProductCount != counts[c.ID] {
			b.Update(ctx, repository.ColCategories, c.ID, map[string]any{"product_count": counts[c.ID]})
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileProductTypes reescribe el conteo cacheado de productos por tipo.
func (s *Service) reconcileProductTypes(ctx context.Context) ModuleResult {
	res := newResult(moduleProductTypes)
	types, err := s.deps.ProductTypes.ListAll(ctx)
	if err != nil {
		return res.fail("leer product_types", err)
	}
	prods, err := s.deps.Products.ListAll(ctx)
	if err != nil {
		return res.fail("leer products", err)
	}

	counts := map[string]int{}
	for _, p := range prods {
		if p.ProductTypeID != "" {
			counts[p.ProductTypeID]++
		}
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, t := range types {
		if t.ProductCount != counts[t.ID] {
			b.Update(ctx, repository.ColProductTypes, t.ID, map[string]any{"product_count": counts[t.ID]})
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}

// reconcileCompetitors reescribe el conteo de productos y el promedio de
// precio observado por competidor.
func (s *Service) reconcileCompetitors(ctx context.Context) ModuleResult {
	res := newResult(moduleCompetitors)
	competitors, err := s.deps.Competitors.ListAll(ctx)
	if err != nil {
		return res.fail("leer competitors", err)
	}
	prods, err := s.deps.Products.ListAll(ctx)
	if err != nil {
		return res.fail("leer products", err)
	}

	agg := map[string]tally{}
	for _, p := range prods {
		if p.CompetitorID != "" {
			addTally(agg, p.CompetitorID, p.CompetitorPrice)
		}
	}

	b := NewBatch(s.deps.Writer, s.deps.BatchSize)
	for _, c := range competitors {
		t := agg[c.ID]
		fields := map[string]any{}
		if c.ProductCount != t.count {
			fields["product_count"] = t.count
		}
		if !c.AveragePrice.Equal(t.average()) {
			fields["average_price"] = t.average()
		}
		if len(fields) > 0 {
			b.Update(ctx, repository.ColCompetitors, c.ID, fields)
		}
	}
	b.Flush(ctx)
	b.settle(&res)
	return res
}
