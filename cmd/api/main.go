package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ceylonpepper/pepperworks-api/internal/application/auth"
	"github.com/ceylonpepper/pepperworks-api/internal/application/inventory"
	"github.com/ceylonpepper/pepperworks-api/internal/application/procurement"
	"github.com/ceylonpepper/pepperworks-api/internal/application/usecase"
	infrapdf "github.com/ceylonpepper/pepperworks-api/internal/infrastructure/pdf"
	"github.com/ceylonpepper/pepperworks-api/internal/infrastructure/postgres"
	httpRouter "github.com/ceylonpepper/pepperworks-api/internal/interfaces/http"
	"github.com/ceylonpepper/pepperworks-api/pkg/config"
	"github.com/ceylonpepper/pepperworks-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios ligados al pool (lecturas y operaciones fuera de tx).
	materialRepo := postgres.NewRawMaterialRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	historyRepo := postgres.NewInventoryHistoryRepository(pool)
	orderRepo := postgres.NewRawMaterialOrderRepository(pool)
	farmerRepo := postgres.NewFarmerRepository(pool)
	paymentRepo := postgres.NewFarmerPaymentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(materialRepo, txRunner)
	stockUC := inventory.NewProductStockUseCase(productRepo, historyRepo, txRunner)
	procurementUC := procurement.NewUseCase(orderRepo, farmerRepo, paymentRepo, counterRepo, txRunner, log)
	farmerUC := usecase.NewFarmerUseCase(farmerRepo, counterRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, counterRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, counterRepo, cfg.JWT)
	authUC := auth.NewUseCase(userRepo, counterRepo, cfg.JWT)

	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PepperWorks API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:        authUC,
		Ledger:      ledgerUC,
		Stock:       stockUC,
		Procurement: procurementUC,
		Farmers:     farmerUC,
		Employees:   employeeUC,
		Customers:   customerUC,
		Payments:    paymentRepo,
		FarmerRepo:  farmerRepo,
		Receipts:    receipts,
		JWTSecret:   cfg.JWT.Secret,
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
