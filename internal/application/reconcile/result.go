package reconcile

import (
	"fmt"
	"time"
)

// ModuleResult resultado de la pasada de conciliación de un módulo.
// Errors transporta mensajes planos: ningún error cruza la frontera del
// módulo como excepción (ver Run).
type ModuleResult struct {
	ModuleName        string   `json:"module_name"`
	RecordsUpdated    int      `json:"records_updated"`
	RecordsDeleted    int      `json:"records_deleted"`
	ReferencesCleaned int      `json:"references_cleaned"`
	Errors            []string `json:"errors"`
}

// Totals sumas globales sobre todos los módulos de una pasada.
type Totals struct {
	Updated           int `json:"updated"`
	Deleted           int `json:"deleted"`
	ReferencesCleaned int `json:"references_cleaned"`
	Errors            int `json:"errors"`
}

// GlobalSummary resumen final de una pasada de conciliación; es el único
// artefacto que ve la capa de operación. Success es verdadero solo si ningún
// módulo reportó errores (el éxito parcial queda explícito en Results).
type GlobalSummary struct {
	RunID      string         `json:"run_id"`
	Success    bool           `json:"success"`
	Timestamp  time.Time      `json:"timestamp"`
	DurationMS int64          `json:"duration_ms"`
	Results    []ModuleResult `json:"results"`
	Totals     Totals         `json:"totals"`
}

// ProgressFunc callback de progreso: se invoca una vez antes de cada módulo y
// una vez más al 100% al terminar la pasada.
type ProgressFunc func(message string, percent float64)

func newResult(name string) ModuleResult {
	return ModuleResult{ModuleName: name, Errors: []string{}}
}

// fail registra una falla de arranque del módulo (p. ej. la lectura completa
// de la colección): un solo error, contadores en cero, la pasada continúa.
func (r ModuleResult) fail(stage string, err error) ModuleResult {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", stage, err))
	return r
}
