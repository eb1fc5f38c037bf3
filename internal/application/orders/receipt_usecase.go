package orders

import (
	"context"

	"github.com/ecofood/ecofood-api/internal/domain"
	"github.com/ecofood/ecofood-api/internal/domain/entity"
	"github.com/ecofood/ecofood-api/internal/domain/repository"
)

// ReceiptGenerator porto para a geração do comprovante do pedido em PDF.
// A implementação vive em infrastructure/pdf.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}

// ReceiptUseCase gera o comprovante em PDF de um pedido persistido.
type ReceiptUseCase struct {
	orders repository.OrderRepository
	pdf    ReceiptGenerator
}

// NewReceiptUseCase constrói o caso de uso.
func NewReceiptUseCase(orders repository.OrderRepository, pdf ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, pdf: pdf}
}

// Receipt devolve os bytes do PDF do comprovante do pedido id.
func (uc *ReceiptUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateOrderReceipt(ctx, order)
}
