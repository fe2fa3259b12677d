package sales

import (
	"context"

	"github.com/jcastellr/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a la
// tx. Commit si fn retorna nil; Rollback si retorna error. Todo o nada: ningún
// cambio de saldo, stock o venta queda visible si el commit falla.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación PDF del comprobante de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *repository.SaleWithNames) ([]byte, error)
}
