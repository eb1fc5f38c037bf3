package repository

import "github.com/ecofood/ecofood-api/internal/domain/entity"

// ClientRepository define o porto de persistência para contas de cliente.
type ClientRepository interface {
	// Create devolve domain.ErrEmailAlreadyExists quando o email já existe.
	Create(c *entity.Client) error
	// GetByEmail busca pelo email em minúsculas; nil quando não existe.
	GetByEmail(email string) (*entity.Client, error)
}
