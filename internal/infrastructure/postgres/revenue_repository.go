package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo agregações de receita sobre PostgreSQL.
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository constrói o adaptador de agregação de receita.
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// DeliveredSummary soma os totais e conta os pedidos com status Entregue.
// Marketplace vazio devolve zero e zero, sem erro.
func (r *RevenueRepo) DeliveredSummary(ctx context.Context) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders WHERE status = $1`
	var total decimal.Decimal
	var count int
	err := r.q.QueryRow(ctx, query, entity.OrderStatusEntregue).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("revenue summary: %w", err)
	}
	return total, count, nil
}
