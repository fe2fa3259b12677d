package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrSaleNotFound     = errors.New("venta no encontrada")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")

	// Guardas de los agregados. El motor de ventas valida antes de mutar,
	// pero los agregados verifican por su cuenta (defensa en profundidad).
	ErrInvalidAmount   = errors.New("monto inválido")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrInvalidPrice    = errors.New("precio inválido")
	ErrEmptyName       = errors.New("el nombre no puede estar vacío")

	// Reglas de negocio de la venta.
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrInsufficientBalance = errors.New("saldo insuficiente")
)

// InsufficientStockError indica que el stock disponible no alcanza para la
// cantidad solicitada. Lleva ambos valores para el mensaje al cliente.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// InsufficientBalanceError indica que el saldo del cliente no alcanza para el
// valor requerido de la operación.
type InsufficientBalanceError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("saldo insuficiente: disponible %s, necesario %s", e.Available, e.Required)
}

// Is permite errors.Is(err, ErrInsufficientBalance).
func (e *InsufficientBalanceError) Is(target error) bool { return target == ErrInsufficientBalance }

// ValidationError agrupa todas las violaciones de forma de un request,
// no solo la primera.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
