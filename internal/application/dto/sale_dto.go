package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest alta de venta. El precio unitario se toma del catálogo del
// producto al momento de la venta, por eso no viaja en el request.
type CreateSaleRequest struct {
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
}

// UpdateSaleRequest modificación de una venta existente: nueva cantidad y
// nuevo precio unitario.
type UpdateSaleRequest struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleResponse proyección de venta con los nombres de cliente y producto.
type SaleResponse struct {
	ID           string          `json:"id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
	CustomerName string          `json:"customer_name"`
	ProductName  string          `json:"product_name"`
}
