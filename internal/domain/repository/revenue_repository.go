package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// RevenueRepository define a consulta de leitura para o resumo de receita.
// As implementações são read-only (não modificam dados).
type RevenueRepository interface {
	// DeliveredSummary devolve a soma dos totais e a contagem dos pedidos
	// com status Entregue, calculadas sob demanda em uma única consulta
	// (snapshot consistente). Usa COALESCE para devolver zero sem pedidos.
	DeliveredSummary(ctx context.Context) (total decimal.Decimal, count int, err error)
}
