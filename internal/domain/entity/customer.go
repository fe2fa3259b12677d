package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastellr/ventas-api/internal/domain"
)

// Roles de la aplicación. Los clientes son también los usuarios del API.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var _ Deactivatable = (*Customer)(nil)

// Customer agregado de cliente: identidad, baja lógica y saldo monetario.
// Invariante: Balance >= 0 en todo momento. El saldo solo lo muta el motor de
// ventas (o un admin vía SetBalance).
type Customer struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Balance      decimal.Decimal
	Active       bool
	RegisteredAt time.Time
}

// NewCustomer construye un cliente activo con saldo inicial.
func NewCustomer(name, email, passwordHash, role string, balance decimal.Decimal) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}
	if balance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	return &Customer{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Balance:      balance,
		Active:       true,
		RegisteredAt: time.Now(),
	}, nil
}

func (c *Customer) EntityName() string { return c.Name }

func (c *Customer) IsActive() bool { return c.Active }

// Rename cambia el nombre; rechaza nombres vacíos.
func (c *Customer) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return domain.ErrEmptyName
	}
	c.Name = newName
	return nil
}

// Deactivate marca el cliente como inactivo. Idempotente.
func (c *Customer) Deactivate() { c.Active = false }

// IncreaseBalance suma al saldo; rechaza montos negativos.
func (c *Customer) IncreaseBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	c.Balance = c.Balance.Add(amount)
	return nil
}

// DecreaseBalance resta del saldo. El saldo nunca queda negativo.
func (c *Customer) DecreaseBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(c.Balance) {
		return &domain.InsufficientBalanceError{Available: c.Balance, Required: amount}
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}

// HasSufficientBalance indica si el saldo alcanza para el valor requerido.
func (c *Customer) HasSufficientBalance(required decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(required)
}

// SetRole asigna el rol del cliente.
func (c *Customer) SetRole(role string) { c.Role = role }

// SetBalance fija el saldo a un valor absoluto (operación administrativa).
func (c *Customer) SetBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return domain.ErrInvalidAmount
	}
	c.Balance = balance
	return nil
}
