package reconcile

import "github.com/jhoicas/Negocio-api/internal/domain/entity"

// RemovedLabel marca legible que queda en el campo de nombre emparejado cuando
// se anula una referencia a una entidad eliminada.
const RemovedLabel = "[eliminado]"

// cleanRef aplica la política anular-y-marcar sobre el mapa de campos en
// construcción: la llave foránea queda en null y, si existe, el campo de
// etiqueta emparejado recibe la marca de eliminado.
func cleanRef(fields map[string]any, field, labelField string) {
	fields[field] = nil
	if labelField != "" {
		fields[labelField] = RemovedLabel
	}
}

// filterLines devuelve las líneas cuyo producto sigue existiendo y cuántas
// fueron descartadas. El documento padre conserva las líneas válidas y debe
// recalcular sus totales derivados a partir de ellas.
func filterLines(lines []entity.Line, products Index) ([]entity.Line, int) {
	valid := make([]entity.Line, 0, len(lines))
	for _, l := range lines {
		if products.Has(l.ProductID) {
			valid = append(valid, l)
		}
	}
	return valid, len(lines) - len(valid)
}

// filterIDs devuelve los ids que resuelven en el índice y cuántos no.
func filterIDs(ids []string, idx Index) ([]string, int) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if idx.Has(id) {
			valid = append(valid, id)
		}
	}
	return valid, len(ids) - len(valid)
}
