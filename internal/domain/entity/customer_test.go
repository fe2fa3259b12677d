package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/entity"
)

func newTestCustomer(t *testing.T, balance string) *entity.Customer {
	t.Helper()
	c, err := entity.NewCustomer("Juan Pérez", "juan@example.com", "hash", entity.RoleUser, decimal.RequireFromString(balance))
	require.NoError(t, err)
	return c
}

func TestNewCustomer_ActivoConSaldoInicial(t *testing.T) {
	c := newTestCustomer(t, "1000")

	assert.NotEmpty(t, c.ID)
	assert.True(t, c.Active)
	assert.True(t, c.Balance.Equal(decimal.RequireFromString("1000")))
	assert.False(t, c.RegisteredAt.IsZero())
}

func TestNewCustomer_NombreVacio_RetornaError(t *testing.T) {
	_, err := entity.NewCustomer("   ", "x@example.com", "hash", entity.RoleUser, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestNewCustomer_SaldoNegativo_RetornaError(t *testing.T) {
	_, err := entity.NewCustomer("Juan", "x@example.com", "hash", entity.RoleUser, decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestDecreaseBalance_DescuentaSaldo(t *testing.T) {
	c := newTestCustomer(t, "1000")

	require.NoError(t, c.DecreaseBalance(decimal.RequireFromString("400")))
	assert.True(t, c.Balance.Equal(decimal.RequireFromString("600")))
}

func TestDecreaseBalance_SaldoExacto_QuedaEnCero(t *testing.T) {
	c := newTestCustomer(t, "1000")

	require.NoError(t, c.DecreaseBalance(decimal.RequireFromString("1000")))
	assert.True(t, c.Balance.IsZero())
}

func TestDecreaseBalance_SaldoInsuficiente_RetornaErrorConValores(t *testing.T) {
	c := newTestCustomer(t, "1000")

	err := c.DecreaseBalance(decimal.RequireFromString("1000.01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	var insufErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &insufErr)
	assert.True(t, insufErr.Available.Equal(decimal.RequireFromString("1000")))
	assert.True(t, insufErr.Required.Equal(decimal.RequireFromString("1000.01")))

	// El saldo no debe haber cambiado.
	assert.True(t, c.Balance.Equal(decimal.RequireFromString("1000")))
}

func TestDecreaseBalance_MontoNegativo_RetornaError(t *testing.T) {
	c := newTestCustomer(t, "1000")
	assert.ErrorIs(t, c.DecreaseBalance(decimal.RequireFromString("-5")), domain.ErrInvalidAmount)
}

func TestIncreaseBalance_SumaSaldo(t *testing.T) {
	c := newTestCustomer(t, "100")

	require.NoError(t, c.IncreaseBalance(decimal.RequireFromString("50.50")))
	assert.True(t, c.Balance.Equal(decimal.RequireFromString("150.50")))
}

func TestIncreaseBalance_MontoNegativo_RetornaError(t *testing.T) {
	c := newTestCustomer(t, "100")
	assert.ErrorIs(t, c.IncreaseBalance(decimal.RequireFromString("-1")), domain.ErrInvalidAmount)
}

func TestHasSufficientBalance_Limites(t *testing.T) {
	c := newTestCustomer(t, "1000")

	assert.True(t, c.HasSufficientBalance(decimal.RequireFromString("1000")))
	assert.False(t, c.HasSufficientBalance(decimal.RequireFromString("1000.01")))
}

func TestDeactivate_EsIdempotente(t *testing.T) {
	c := newTestCustomer(t, "0")

	c.Deactivate()
	assert.False(t, c.IsActive())

	c.Deactivate()
	assert.False(t, c.IsActive())
}

func TestRename_NombreVacio_RetornaError(t *testing.T) {
	c := newTestCustomer(t, "0")

	assert.ErrorIs(t, c.Rename(""), domain.ErrEmptyName)
	assert.Equal(t, "Juan Pérez", c.Name)

	require.NoError(t, c.Rename("Juan Alberto"))
	assert.Equal(t, "Juan Alberto", c.Name)
}

func TestSetBalance_Negativo_RetornaError(t *testing.T) {
	c := newTestCustomer(t, "10")

	assert.ErrorIs(t, c.SetBalance(decimal.RequireFromString("-10")), domain.ErrInvalidAmount)
	require.NoError(t, c.SetBalance(decimal.RequireFromString("250")))
	assert.True(t, c.Balance.Equal(decimal.RequireFromString("250")))
}
