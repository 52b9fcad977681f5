package reconcile

// Index conjunto de ids existentes de una colección, usado para validar
// integridad referencial. Se construye con un único escaneo completo antes de
// tomar cualquier decisión de reparación contra él.
type Index map[string]struct{}

// Has indica si el id existe en la colección indexada.
func (i Index) Has(id string) bool {
	_, ok := i[id]
	return ok
}

// IndexOf construye un índice a partir de una lista de ids.
func IndexOf(ids ...string) Index {
	idx := make(Index, len(ids))
	for _, id := range ids {
		idx[id] = struct{}{}
	}
	return idx
}
