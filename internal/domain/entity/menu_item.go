package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa um produto publicado no catálogo do marketplace.
// Imutável após a criação: pedidos guardam uma cópia do preço, então
// alterações no catálogo nunca afetam pedidos já persistidos.
type MenuItem struct {
	ID        string
	EmpresaID string // vazio quando o item foi criado sem contexto de parceiro
	Name      string
	Price     decimal.Decimal // preço de venda, sempre positivo
	Validade  time.Time       // data de validade do alimento
	Image     *string         // URL da imagem; nil quando não informada
	CreatedAt time.Time
	UpdatedAt time.Time
}
