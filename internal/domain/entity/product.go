package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastellr/ventas-api/internal/domain"
)

var _ Deactivatable = (*Product)(nil)

// Product agregado de producto: identidad, baja lógica, precio de catálogo y
// stock entero. Invariante: Stock >= 0 en todo momento.
type Product struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Stock  int
	Active bool
}

// NewProduct construye un producto activo.
func NewProduct(name string, price decimal.Decimal, stock int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}
	if price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	if stock < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return &Product{
		ID:     uuid.New().String(),
		Name:   name,
		Price:  price,
		Stock:  stock,
		Active: true,
	}, nil
}

func (p *Product) EntityName() string { return p.Name }

func (p *Product) IsActive() bool { return p.Active }

// Rename cambia el nombre; rechaza nombres vacíos.
func (p *Product) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return domain.ErrEmptyName
	}
	p.Name = newName
	return nil
}

// Deactivate marca el producto como inactivo. Idempotente.
func (p *Product) Deactivate() { p.Active = false }

// IncreaseStock suma unidades al stock; la cantidad debe ser positiva.
func (p *Product) IncreaseStock(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	p.Stock += qty
	return nil
}

// DecreaseStock resta unidades del stock. El stock nunca queda negativo.
func (p *Product) DecreaseStock(qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	if qty > p.Stock {
		return &domain.InsufficientStockError{Available: p.Stock, Requested: qty}
	}
	p.Stock -= qty
	return nil
}

// HasSufficientStock indica si el stock alcanza para la cantidad solicitada.
func (p *Product) HasSufficientStock(requested int) bool {
	return p.Stock >= requested
}

// SetPrice fija el precio de catálogo; rechaza precios negativos.
func (p *Product) SetPrice(newPrice decimal.Decimal) error {
	if newPrice.IsNegative() {
		return domain.ErrInvalidPrice
	}
	p.Price = newPrice
	return nil
}

// SetStock fija el stock a un valor absoluto (operación administrativa).
func (p *Product) SetStock(newStock int) error {
	if newStock < 0 {
		return domain.ErrInvalidQuantity
	}
	p.Stock = newStock
	return nil
}
