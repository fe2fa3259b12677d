package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale agregado de venta: cantidad, precio unitario al momento de la venta y
// total calculado. Referencia al cliente y al producto solo por id; el motor
// re-lee ambas filas antes de mutar en lugar de navegar referencias en memoria.
// Invariante: Total == Quantity × UnitPrice después de cada mutación.
type Sale struct {
	ID         string
	CustomerID string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	Date       time.Time
}

// NewSale construye la venta con el total calculado y la fecha actual.
func NewSale(quantity int, unitPrice decimal.Decimal, customerID, productID string) *Sale {
	return &Sale{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Total:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Date:       time.Now(),
	}
}

// Amend actualiza cantidad y precio unitario y recalcula el total. No valida:
// el motor de ventas verifica stock y saldo antes de llamar. La fecha original
// de la venta se conserva.
func (s *Sale) Amend(quantity int, unitPrice decimal.Decimal) {
	s.Quantity = quantity
	s.UnitPrice = unitPrice
	s.Total = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
