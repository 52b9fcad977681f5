package http

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/application/reconcile"
	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// ReconcileHandler expone el disparador de la pasada de conciliación
// (el botón de la pantalla de ajustes). La pasada es una sola a la vez:
// los módulos dependen del estado corregido por los anteriores y dos pasadas
// simultáneas se pisarían las escrituras.
type ReconcileHandler struct {
	svc     *reconcile.Service
	log     *logger.Logger
	running atomic.Bool
}

// NewReconcileHandler construye el handler.
func NewReconcileHandler(svc *reconcile.Service, log *logger.Logger) *ReconcileHandler {
	return &ReconcileHandler{svc: svc, log: log.Component("conciliacion")}
}

// Run ejecuta la pasada completa de forma síncrona y devuelve el resumen
// global. El progreso por módulo se emite al log estructurado.
func (h *ReconcileHandler) Run(c *fiber.Ctx) error {
	if !h.running.CompareAndSwap(false, true) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "RUN_IN_PROGRESS",
			Message: domain.ErrRunInProgress.Error(),
		})
	}
	defer h.running.Store(false)

	operator := GetUserID(c)
	h.log.Info().Str("operador", operator).Msg("pasada de conciliación solicitada")

	summary := h.svc.Run(c.UserContext(), func(msg string, pct float64) {
		h.log.Info().Str("estado", msg).Float64("porcentaje", pct).Msg("progreso")
	})

	h.log.Info().
		Str("run_id", summary.RunID).
		Bool("exito", summary.Success).
		Int("actualizados", summary.Totals.Updated).
		Int("eliminados", summary.Totals.Deleted).
		Int("referencias_limpiadas", summary.Totals.ReferencesCleaned).
		Int("errores", summary.Totals.Errors).
		Msg("pasada de conciliación finalizada")

	return c.JSON(summary)
}
