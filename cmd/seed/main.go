// seed popula o cardápio com itens de demonstração para ambiente local.
//
// Uso: go run ./cmd/seed
// Lê a mesma configuração do servidor (DATABASE_URL ou DB_*) e aplica as
// migrações antes de inserir. Idempotente por nome: itens já presentes são pulados.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/infrastructure/postgres"
	"github.com/ecofood/ecofood-api/pkg/config"
)

type seedItem struct {
	name  string
	price string
	dias  int // dias de validade a partir de hoje
}

var demoMenu = []seedItem{
	{name: "Marmita de frango grelhado", price: "18.90", dias: 2},
	{name: "Salada orgânica da horta", price: "14.50", dias: 1},
	{name: "Pão artesanal de fermentação natural", price: "12.00", dias: 3},
	{name: "Suco de laranja prensado", price: "8.00", dias: 1},
	{name: "Bolo de cenoura com cobertura", price: "22.00", dias: 4},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		fmt.Fprintf(os.Stderr, "migrações: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewMenuItemRepository(pool)
	existing, err := repo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar cardápio: %v\n", err)
		os.Exit(1)
	}
	present := make(map[string]bool, len(existing))
	for _, it := range existing {
		present[it.Name] = true
	}

	inserted := 0
	now := time.Now()
	for _, s := range demoMenu {
		if present[s.name] {
			continue
		}
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "preço inválido %q: %v\n", s.price, err)
			os.Exit(1)
		}
		item := &entity.MenuItem{
			ID:        uuid.New().String(),
			Name:      s.name,
			Price:     price,
			Validade:  now.AddDate(0, 0, s.dias),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(item); err != nil {
			fmt.Fprintf(os.Stderr, "inserir %q: %v\n", s.name, err)
			os.Exit(1)
		}
		inserted++
	}

	fmt.Printf("cardápio demo: %d itens inseridos, %d já presentes\n", inserted, len(demoMenu)-inserted)
}
