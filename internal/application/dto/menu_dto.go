package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest entrada para publicar um item no catálogo.
// Validade chega como data no formato 2006-01-02.
type CreateMenuItemRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Validade string          `json:"validade" validate:"required"`
	Image    *string         `json:"image"`
}

// MenuItemResponse saída de um item do catálogo.
type MenuItemResponse struct {
	ID        string          `json:"id"`
	EmpresaID string          `json:"empresa_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Validade  string          `json:"validade"`
	Image     *string         `json:"image"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MenuItemListResponse lista de itens do catálogo.
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
}
