package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecofood/ecofood-api/internal/application/analytics"
	"github.com/ecofood/ecofood-api/internal/application/dto"
)

// RevenueHandler trata a consulta do resumo de receita.
type RevenueHandler struct {
	uc *analytics.RevenueUseCase
}

// NewRevenueHandler constrói o handler.
func NewRevenueHandler(uc *analytics.RevenueUseCase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

// Summary godoc
// @Summary      Receita dos pedidos entregues
// @Tags         revenue
// @Produce      json
// @Success      200  {object}  dto.RevenueSummaryResponse
// @Router       /api/revenue [get]
func (h *RevenueHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(out)
}
