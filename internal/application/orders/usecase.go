// Package orders contém o motor de pedidos: criação validada contra o
// catálogo, listagem e avanço de status.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
)

// MenuItemNotFoundError indica que uma linha referencia um item inexistente
// do catálogo. O pedido inteiro é recusado (nenhuma persistência parcial).
type MenuItemNotFoundError struct {
	MenuItemID string
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("Item do menu não encontrado: %s", e.MenuItemID)
}

// TxRunner executa fn dentro de uma transação, com um OrderRepository
// atado a ela. Cabeçalho e linhas do pedido entram de forma atômica.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	menu   repository.MenuItemRepository
	orders repository.OrderRepository
	tx     TxRunner
}

// NewOrderUseCase constrói o caso de uso com os portos de persistência.
func NewOrderUseCase(menu repository.MenuItemRepository, orders repository.OrderRepository, tx TxRunner) *OrderUseCase {
	return &OrderUseCase{menu: menu, orders: orders, tx: tx}
}

// CreateOrder valida e precifica o pedido contra o catálogo e o persiste com
// status Recebido. Toda referência é resolvida ANTES de persistir: uma única
// linha inválida recusa o pedido inteiro. O preço de cada linha é congelado
// no momento da criação.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Endereco == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Passo de leitura: resolver cada item e congelar o preço.
	now := time.Now()
	orderID := uuid.New().String()
	items := make([]entity.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, reqItem := range in.Items {
		if reqItem.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		menuItem, err := uc.menu.GetByID(reqItem.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, &MenuItemNotFoundError{MenuItemID: reqItem.MenuItemID}
		}
		subtotal := menuItem.Price.Mul(decimal.NewFromInt(int64(reqItem.Quantity)))
		items = append(items, entity.OrderItem{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   reqItem.Quantity,
			Price:      menuItem.Price,
			Subtotal:   subtotal,
		})
		total = total.Add(subtotal)
	}

	order := &entity.Order{
		ID:        orderID,
		Endereco:  in.Endereco,
		Items:     items,
		Total:     total,
		Status:    entity.OrderStatusRecebido,
		CreatedAt: now,
	}

	// Escrita única: cabeçalho e linhas na mesma transação.
	err := uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for i := range order.Items {
			if err := orders.CreateItem(&order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("criar pedido: %w", err)
	}

	return toOrderResponse(order), nil
}

// List devolve todos os pedidos do mais recente para o mais antigo.
func (uc *OrderUseCase) List() (*dto.OrderListResponse, error) {
	list, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// AdvanceStatus sobrescreve o status de um pedido e devolve o registro
// atualizado. Qualquer status fora do conjunto reconhecido é recusado;
// transições entre status reconhecidos não são restringidas.
func (uc *OrderUseCase) AdvanceStatus(in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.orders.UpdateStatus(in.ID, in.Status); err != nil {
		return nil, err
	}
	order, err := uc.orders.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Subtotal:   it.Subtotal,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Endereco:  o.Endereco,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
