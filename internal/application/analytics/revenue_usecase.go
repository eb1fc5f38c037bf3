// Package analytics contém o caso de uso do resumo de receita do marketplace.
package analytics

import (
	"context"

	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
)

// RevenueUseCase resumo de receita dos pedidos entregues.
type RevenueUseCase struct {
	repo repository.RevenueRepository
}

// NewRevenueUseCase constrói o caso de uso.
func NewRevenueUseCase(repo repository.RevenueRepository) *RevenueUseCase {
	return &RevenueUseCase{repo: repo}
}

// Summary calcula sob demanda a receita total e a contagem dos pedidos com
// status Entregue. Sem cache: um pedido entregue aparece na chamada seguinte.
func (uc *RevenueUseCase) Summary(ctx context.Context) (*dto.RevenueSummaryResponse, error) {
	total, count, err := uc.repo.DeliveredSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.RevenueSummaryResponse{TotalRevenue: total, DeliveredCount: count}, nil
}
