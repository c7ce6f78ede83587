package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Jaquiaro29/aqualife-api/internal/application/billing"
	"github.com/Jaquiaro29/aqualife-api/internal/application/orders"
	"github.com/Jaquiaro29/aqualife-api/internal/infrastructure/postgres"
	httpRouter "github.com/Jaquiaro29/aqualife-api/internal/interfaces/http"
	"github.com/Jaquiaro29/aqualife-api/pkg/config"
	"github.com/Jaquiaro29/aqualife-api/pkg/logger"
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

	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	priceRepo := postgres.NewPriceConfigRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	invoiceUC := billing.NewInvoiceUseCase(txRunner, customerRepo, invoiceRepo, orderRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, priceRepo)
	priceConfigUC := orders.NewPriceConfigUseCase(priceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:     invoiceUC,
		CustomerUC:    customerUC,
		OrderUC:       orderUC,
		PriceConfigUC: priceConfigUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	// Arranque y apagado ordenado
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando servidor...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
