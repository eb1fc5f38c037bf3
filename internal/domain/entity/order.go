package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de preparo de um pedido (valores expostos na API).
const (
	OrderStatusRecebido = "Recebido"
	OrderStatusPreparo  = "Em Preparo"
	OrderStatusEntregue = "Entregue"
)

// ValidOrderStatus informa se s é um dos três status reconhecidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusRecebido, OrderStatusPreparo, OrderStatusEntregue:
		return true
	}
	return false
}

// Order representa um pedido de um cliente: endereço de entrega, linhas com
// preço congelado no momento da criação e o total derivado dessas linhas.
// Após a criação somente Status pode mudar.
type Order struct {
	ID        string
	Endereco  string
	Items     []OrderItem
	Total     decimal.Decimal // soma de price*quantity das linhas, calculada uma única vez
	Status    string          // ver constantes OrderStatus*
	CreatedAt time.Time
}

// OrderItem é uma linha do pedido. Name e Price são cópias do MenuItem no
// momento do pedido; o catálogo nunca é relido para pedidos existentes.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Subtotal   decimal.Decimal // Price * Quantity
}
