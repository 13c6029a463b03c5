package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caisse-pos/internal/application/catalog"
	"github.com/tu-usuario/caisse-pos/internal/application/checkout"
	"github.com/tu-usuario/caisse-pos/internal/application/clients"
	"github.com/tu-usuario/caisse-pos/internal/application/reporting"
	"github.com/tu-usuario/caisse-pos/internal/application/settings"
	"github.com/tu-usuario/caisse-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/caisse-pos/internal/interfaces/http"
	"github.com/tu-usuario/caisse-pos/pkg/config"
	"github.com/tu-usuario/caisse-pos/pkg/logger"
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

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	paramRepo := postgres.NewParameterRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	settingsUC := settings.NewSettingsUseCase(paramRepo)
	if err := settingsUC.SeedDefaults(); err != nil {
		log.Fatal().Err(err).Msg("sembrar parámetros por defecto")
	}

	stampDuty, err := decimal.NewFromString(cfg.POS.StampDuty)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.POS.StampDuty).Msg("timbre fiscal inválido")
	}

	checkoutUC := checkout.NewCheckoutUseCase(txRunner, saleRepo, stampDuty)
	reportingUC := reporting.NewReportingUseCase(saleRepo, log)
	articleUC := catalog.NewArticleUseCase(articleRepo)
	clientUC := clients.NewClientUseCase(clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CheckoutUC:  checkoutUC,
		ReportingUC: reportingUC,
		ArticleUC:   articleUC,
		ClientUC:    clientUC,
		SettingsUC:  settingsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	// Apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
