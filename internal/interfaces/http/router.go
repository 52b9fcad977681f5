package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reconcile *ReconcileHandler
	JWTSecret string
}

// Router registra las rutas de la API. La conciliación es una operación
// administrativa: Bearer Token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole("admin"))
	admin.Post("/reconciliation", deps.Reconcile.Run)
}
