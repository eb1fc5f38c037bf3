package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecofood/ecofood-api/internal/application/analytics"
	appauth "github.com/ecofood/ecofood-api/internal/application/auth"
	"github.com/ecofood/ecofood-api/internal/application/catalog"
	"github.com/ecofood/ecofood-api/internal/application/onboarding"
	"github.com/ecofood/ecofood-api/internal/application/orders"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CatalogUC    *catalog.CatalogUseCase
	OrderUC      *orders.OrderUseCase
	ReceiptUC    *orders.ReceiptUseCase
	OnboardingUC *onboarding.OnboardingUseCase
	AuthUC       *appauth.AuthUseCase
	RevenueUC    *analytics.RevenueUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/clients", authHandler.Register)
	api.Post("/clients/login", authHandler.Login)

	// Cardápio: leitura pública; criação exige empresa autenticada
	menuHandler := NewMenuHandler(deps.CatalogUC)
	api.Get("/menu-items", menuHandler.List)
	api.Post("/menu-items", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleEmpresa), menuHandler.Create)

	// Pedidos: criação e listagem públicas; mudança de status exige empresa
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	api.Post("/orders", orderHandler.Create)
	api.Get("/orders", orderHandler.List)
	api.Put("/orders/status", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleEmpresa), orderHandler.UpdateStatus)
	api.Get("/orders/:id/comprovante", orderHandler.Receipt)

	// Empresas: submissão e revisão administrativa
	empresaHandler := NewEmpresaHandler(deps.OnboardingUC)
	api.Post("/empresas", empresaHandler.Submit)
	api.Get("/empresas", empresaHandler.List)
	api.Patch("/empresas", empresaHandler.Decide)
	api.Post("/empresas/login", empresaHandler.Login)
	api.Get("/empresas/perfil", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleEmpresa), empresaHandler.Profile)

	// Receita (consulta sob demanda)
	revenueHandler := NewRevenueHandler(deps.RevenueUC)
	api.Get("/revenue", revenueHandler.Summary)
}
