package sales

import (
	"context"

	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
)

// ReceiptPDFUseCase genera el comprobante PDF de una venta.
type ReceiptPDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{saleRepo: saleRepo, generator: generator}
}

// ReceiptPDF devuelve los bytes del PDF del comprobante de la venta.
func (uc *ReceiptPDFUseCase) ReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	sw, err := uc.saleRepo.GetWithNames(id)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, domain.ErrSaleNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, sw)
}
