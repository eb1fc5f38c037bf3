package repository

import "github.com/ecofood/ecofood-api/internal/domain/entity"

// MenuItemRepository define o porto de persistência do catálogo (DIP).
// A implementação vive em infrastructure.
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	List() ([]*entity.MenuItem, error)
}
