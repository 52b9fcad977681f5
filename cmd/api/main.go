package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Negocio-api/internal/application/reconcile"
	"github.com/jhoicas/Negocio-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/Negocio-api/internal/interfaces/http"
	"github.com/jhoicas/Negocio-api/pkg/config"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, disconnect, err := mongodb.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	store := mongodb.NewStore(db)
	reconcileSvc := reconcile.NewService(reconcile.Deps{
		Units:          mongodb.NewUnitRepository(db),
		Products:       mongodb.NewProductRepository(db),
		Warehouses:     mongodb.NewWarehouseRepository(db),
		Transfers:      mongodb.NewTransferRepository(db),
		PurchaseOrders: mongodb.NewPurchaseOrderRepository(db),
		Sales:          mongodb.NewSaleRepository(db),
		Quotes:         mongodb.NewQuoteRepository(db),
		Expenses:       mongodb.NewExpenseRepository(db),
		Suppliers:      mongodb.NewSupplierRepository(db),
		Clients:        mongodb.NewClientRepository(db),
		Brands:         mongodb.NewBrandRepository(db),
		Categories:     mongodb.NewCategoryRepository(db),
		ProductTypes:   mongodb.NewProductTypeRepository(db),
		Competitors:    mongodb.NewCompetitorRepository(db),
		IDs:            store,
		Writer:         store,
		BatchSize:      cfg.Reconcile.BatchSize,
		Log:            log.Component("reconcile"),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Minute * 5, // la pasada completa corre dentro de la petición
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reconcile: httpRouter.NewReconcileHandler(reconcileSvc, log),
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
