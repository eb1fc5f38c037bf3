package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementação do porto MenuItemRepository sobre PostgreSQL (usável com pool ou tx).
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository constrói o adaptador de persistência do catálogo. Passar pool ou tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create persiste um novo item do cardápio.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, empresa_id, name, price, validade, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.EmpresaID, item.Name, item.Price, item.Validade, item.Image,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID. Devolve nil sem erro quando não existe.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `
		SELECT id, empresa_id, name, price, validade, image, created_at, updated_at
		FROM menu_items WHERE id = $1`
	var m entity.MenuItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.EmpresaID, &m.Name, &m.Price, &m.Validade, &m.Image, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &m, nil
}

// List devolve o cardápio completo, mais recentes primeiro.
func (r *MenuItemRepo) List() ([]*entity.MenuItem, error) {
	query := `
		SELECT id, empresa_id, name, price, validade, image, created_at, updated_at
		FROM menu_items ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.EmpresaID, &m.Name, &m.Price, &m.Validade, &m.Image,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
