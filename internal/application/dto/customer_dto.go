package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente. Balance es el saldo inicial.
type CreateCustomerRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     string          `json:"role"`
	Balance  decimal.Decimal `json:"balance"`
}

// UpdateCustomerRequest modificación administrativa de un cliente.
type UpdateCustomerRequest struct {
	Name    string          `json:"name"`
	Role    string          `json:"role"`
	Balance decimal.Decimal `json:"balance"`
}

// CustomerResponse proyección de cliente para respuestas (sin hash de password).
type CustomerResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         string          `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	Active       bool            `json:"active"`
	RegisteredAt time.Time       `json:"registered_at"`
}
