package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest uma linha do pedido na entrada.
type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=1"`
}

// CreateOrderRequest entrada para criar um pedido.
type CreateOrderRequest struct {
	Endereco string             `json:"endereco" validate:"required"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderStatusRequest entrada para avançar o status de um pedido.
type UpdateOrderStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse linha do pedido com o preço congelado na criação.
type OrderItemResponse struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// OrderResponse saída de um pedido completo (linhas resolvidas, sem
// necessidade de reler o catálogo).
type OrderResponse struct {
	ID        string              `json:"id"`
	Endereco  string              `json:"endereco"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// OrderListResponse lista de pedidos, do mais recente para o mais antigo.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
