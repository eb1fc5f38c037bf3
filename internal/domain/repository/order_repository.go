package repository

import "github.com/ecofood/ecofood-api/internal/domain/entity"

// OrderRepository define o porto de persistência para Order e suas linhas.
type OrderRepository interface {
	// Create persiste o cabeçalho do pedido. As linhas entram via CreateItem,
	// dentro da mesma transação (ver TxRunner em application/orders).
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	// GetByID devolve o pedido com as linhas carregadas; nil quando não existe.
	GetByID(id string) (*entity.Order, error)
	// List devolve todos os pedidos do mais recente para o mais antigo
	// (created_at desc, desempate pela ordem de inserção).
	List() ([]*entity.Order, error)
	// UpdateStatus sobrescreve apenas o status. Devolve domain.ErrNotFound
	// quando o id não existe.
	UpdateStatus(id, status string) error
}
