package reconcile

import (
	"context"
	"fmt"

	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// Batch acumula mutaciones y las confirma por lotes respetando el tope de
// operaciones por lote del almacén. Los lotes se confirman en el orden en que
// se acumulan; un lote nuevo solo se abre cuando el anterior fue confirmado.
// Un lote fallido se descarta y queda registrado como un único error; las
// operaciones posteriores siguen acumulándose (aislamiento de falla parcial).
// No es seguro para uso concurrente: vive dentro de la pasada de un módulo.
type Batch struct {
	writer  repository.BulkWriter
	limit   int
	ops     []repository.Operation
	updated int
	deleted int
	errs    []string
}

// NewBatch construye un acumulador con el tope de operaciones dado.
func NewBatch(writer repository.BulkWriter, limit int) *Batch {
	if limit <= 0 {
		limit = 1
	}
	return &Batch{writer: writer, limit: limit}
}

// Update encola la sobreescritura de campos puntuales de un documento.
func (b *Batch) Update(ctx context.Context, collection, id string, fields map[string]any) {
	b.add(ctx, repository.Operation{
		Kind:       repository.OpUpdate,
		Collection: collection,
		ID:         id,
		Fields:     fields,
	})
}

// Delete encola la eliminación de un documento.
func (b *Batch) Delete(ctx context.Context, collection, id string) {
	b.add(ctx, repository.Operation{
		Kind:       repository.OpDelete,
		Collection: collection,
		ID:         id,
	})
}

func (b *Batch) add(ctx context.Context, op repository.Operation) {
	b.ops = append(b.ops, op)
	if len(b.ops) >= b.limit {
		b.Flush(ctx)
	}
}

// Flush confirma el lote pendiente. Es la última llamada obligatoria de cada
// módulo; también se dispara sola al llegar al tope.
func (b *Batch) Flush(ctx context.Context) {
	if len(b.ops) == 0 {
		return
	}
	ops := b.ops
	b.ops = nil
	if err := b.writer.Commit(ctx, ops); err != nil {
		b.errs = append(b.errs, fmt.Sprintf("lote de %d operaciones: %v", len(ops), err))
		return
	}
	for _, op := range ops {
		switch op.Kind {
		case repository.OpUpdate:
			b.updated++
		case repository.OpDelete:
			b.deleted++
		}
	}
}

// settle vuelca los contadores y errores del acumulador en el resultado del
// módulo, tras el Flush final.
func (b *Batch) settle(res *ModuleResult) {
	res.RecordsUpdated += b.updated
	res.RecordsDeleted += b.deleted
	res.Errors = append(res.Errors, b.errs...)
}
