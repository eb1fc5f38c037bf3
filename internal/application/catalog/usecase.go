// Package catalog contém os casos de uso do catálogo de itens do marketplace.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
)

// Formatos de data aceitos no campo validade.
var validadeLayouts = []string{"2006-01-02", time.RFC3339}

// CatalogUseCase casos de uso do catálogo: publicar e listar itens.
type CatalogUseCase struct {
	repo repository.MenuItemRepository
}

// NewCatalogUseCase constrói o caso de uso com o porto de persistência.
func NewCatalogUseCase(repo repository.MenuItemRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create publica um item no catálogo. Devolve domain.ErrInvalidInput quando
// name está vazio, price não é positivo ou validade não é uma data válida.
func (uc *CatalogUseCase) Create(empresaID string, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Name == "" || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	validade, err := parseValidade(in.Validade)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Name:      in.Name,
		Price:     in.Price,
		Validade:  validade,
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// List devolve todos os itens do catálogo (a apresentação ordena/filtra).
func (uc *CatalogUseCase) List() (*dto.MenuItemListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toMenuItemResponse(it))
	}
	return &dto.MenuItemListResponse{Items: items}, nil
}

func parseValidade(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range validadeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toMenuItemResponse(it *entity.MenuItem) *dto.MenuItemResponse {
	if it == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:        it.ID,
		EmpresaID: it.EmpresaID,
		Name:      it.Name,
		Price:     it.Price,
		Validade:  it.Validade.Format("2006-01-02"),
		Image:     it.Image,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
