package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofood/ecofood-api/internal/application/catalog"
	"github.com/ecofood/ecofood-api/internal/application/dto"
	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
)

type fakeMenuRepo struct {
	items []*entity.MenuItem
}

func (f *fakeMenuRepo) Create(item *entity.MenuItem) error {
	cp := *item
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) List() ([]*entity.MenuItem, error) {
	out := make([]*entity.MenuItem, 0, len(f.items))
	for _, it := range f.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func TestCreate_ItemValido_Persistido(t *testing.T) {
	repo := &fakeMenuRepo{}
	uc := catalog.NewCatalogUseCase(repo)

	out, err := uc.Create("empresa-1", dto.CreateMenuItemRequest{
		Name:     "Marmita de frango",
		Price:    decimal.RequireFromString("18.90"),
		Validade: "2026-09-05",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "empresa-1", out.EmpresaID)
	assert.Equal(t, "18.9", out.Price.String())
	assert.Equal(t, "2026-09-05", out.Validade)
	require.Len(t, repo.items, 1)
}

func TestCreate_ValidadeRFC3339Aceita(t *testing.T) {
	uc := catalog.NewCatalogUseCase(&fakeMenuRepo{})

	out, err := uc.Create("empresa-1", dto.CreateMenuItemRequest{
		Name:     "Suco",
		Price:    decimal.RequireFromString("8.00"),
		Validade: "2026-09-05T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-05", out.Validade)
}

func TestCreate_EntradasInvalidas_Recusadas(t *testing.T) {
	uc := catalog.NewCatalogUseCase(&fakeMenuRepo{})

	cases := []struct {
		nome string
		in   dto.CreateMenuItemRequest
	}{
		{"nome vazio", dto.CreateMenuItemRequest{Name: "", Price: decimal.NewFromInt(10), Validade: "2026-09-05"}},
		{"preço zero", dto.CreateMenuItemRequest{Name: "Bolo", Price: decimal.Zero, Validade: "2026-09-05"}},
		{"preço negativo", dto.CreateMenuItemRequest{Name: "Bolo", Price: decimal.NewFromInt(-5), Validade: "2026-09-05"}},
		{"validade vazia", dto.CreateMenuItemRequest{Name: "Bolo", Price: decimal.NewFromInt(10), Validade: ""}},
		{"validade malformada", dto.CreateMenuItemRequest{Name: "Bolo", Price: decimal.NewFromInt(10), Validade: "05/09/2026"}},
	}
	for _, tc := range cases {
		_, err := uc.Create("empresa-1", tc.in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc.nome)
	}
}

func TestList_DevolveTodosOsItens(t *testing.T) {
	repo := &fakeMenuRepo{}
	uc := catalog.NewCatalogUseCase(repo)

	for _, name := range []string{"Marmita", "Suco", "Bolo"} {
		_, err := uc.Create("empresa-1", dto.CreateMenuItemRequest{
			Name:     name,
			Price:    decimal.NewFromInt(10),
			Validade: "2026-09-05",
		})
		require.NoError(t, err)
	}

	out, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
}
