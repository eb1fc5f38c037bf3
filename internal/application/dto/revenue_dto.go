package dto

import "github.com/shopspring/decimal"

// RevenueSummaryResponse resumo de receita dos pedidos entregues,
// calculado sob demanda (nenhum acumulador persistido).
type RevenueSummaryResponse struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	DeliveredCount int             `json:"deliveredCount"`
}
