package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// UpdateProductRequest modificación de catálogo: nombre, precio y stock total.
type UpdateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ProductResponse proyección de producto para respuestas.
type ProductResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
	Active bool            `json:"active"`
}
