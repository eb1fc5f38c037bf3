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

	"github.com/ecofood/ecofood-api/internal/application/analytics"
	appauth "github.com/ecofood/ecofood-api/internal/application/auth"
	"github.com/ecofood/ecofood-api/internal/application/catalog"
	"github.com/ecofood/ecofood-api/internal/application/onboarding"
	"github.com/ecofood/ecofood-api/internal/application/orders"
	infrapdf "github.com/ecofood/ecofood-api/internal/infrastructure/pdf"
	"github.com/ecofood/ecofood-api/internal/infrastructure/postgres"
	httpRouter "github.com/ecofood/ecofood-api/internal/interfaces/http"
	"github.com/ecofood/ecofood-api/pkg/config"
	"github.com/ecofood/ecofood-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migrações do esquema")
	}

	menuRepo := postgres.NewMenuItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewCatalogUseCase(menuRepo)
	orderUC := orders.NewOrderUseCase(menuRepo, orderRepo, txRunner)

	// PDF: comprovante do pedido
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := orders.NewReceiptUseCase(orderRepo, receiptGenerator)

	onboardingUC := onboarding.NewOnboardingUseCase(empresaRepo, onboarding.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	authUC := appauth.NewAuthUseCase(clientRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	revenueUC := analytics.NewRevenueUseCase(revenueRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EcoFood API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:    catalogUC,
		OrderUC:      orderUC,
		ReceiptUC:    receiptUC,
		OnboardingUC: onboardingUC,
		AuthUC:       authUC,
		RevenueUC:    revenueUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
