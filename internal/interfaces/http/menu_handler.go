package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecofood/ecofood-api/internal/application/catalog"
	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/domain"
)

// MenuHandler trata as requisições HTTP do cardápio.
type MenuHandler struct {
	uc *catalog.CatalogUseCase
}

// NewMenuHandler constrói o handler.
func NewMenuHandler(uc *catalog.CatalogUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Create godoc
// @Summary      Criar item do cardápio
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "Dados do item"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu-items [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	empresaID := GetSubjectID(c)
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(empresaID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, price positivo e validade são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cardápio
// @Tags         menu
// @Produce      json
// @Success      200  {object}  dto.MenuItemListResponse
// @Router       /api/menu-items [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(out)
}
