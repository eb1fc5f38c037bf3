package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/application/onboarding"
	"github.com/ecofood/ecofood-api/internal/domain"
)

// EmpresaHandler trata as requisições HTTP do cadastro de empresas parceiras.
type EmpresaHandler struct {
	uc *onboarding.OnboardingUseCase
}

// NewEmpresaHandler constrói o handler.
func NewEmpresaHandler(uc *onboarding.OnboardingUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Submit godoc
// @Summary      Submeter cadastro de empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitEmpresaRequest  true  "Dados da empresa"
// @Success      201   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *EmpresaHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Submit(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "companyName e respName são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cadastros de empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {object}  dto.EmpresaListResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(out)
}

// Decide godoc
// @Summary      Aprovar ou rejeitar cadastro
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DecideEmpresaRequest  true  "ID e ação (approve|reject)"
// @Success      200   {object}  dto.DecideEmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas [patch]
func (h *EmpresaHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecideEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Decide(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id e action (approve|reject) são obrigatórios"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Empresa não encontrada"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "Cadastro já decidido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Login de empresa parceira
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmpresaLoginRequest  true  "Credenciais emitidas na aprovação"
// @Success      200   {object}  dto.EmpresaLoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/empresas/login [post]
func (h *EmpresaHandler) Login(c *fiber.Ctx) error {
	var in dto.EmpresaLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Authenticate(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
		}
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Credenciais inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil da empresa autenticada
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/perfil [get]
func (h *EmpresaHandler) Profile(c *fiber.Ctx) error {
	empresaID := GetSubjectID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token obrigatório"})
	}
	out, err := h.uc.Profile(empresaID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Empresa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(out)
}
