package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/application/sales"
	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/entity"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
	"github.com/jcastellr/ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: el TxRunner trabaja sobre una copia y solo la vuelca al
// store al "commit", igual que la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	customers map[string]entity.Customer
	products  map[string]entity.Product
	sales     map[string]entity.Sale
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: make(map[string]entity.Customer),
		products:  make(map[string]entity.Product),
		sales:     make(map[string]entity.Sale),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	return c
}

type fakeTxRunner struct {
	store      *fakeStore
	failCommit bool
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	staged := r.store.clone()
	err := fn(
		&fakeCustomerRepo{data: staged.customers},
		&fakeProductRepo{data: staged.products},
		&fakeSaleRepo{data: staged.sales},
	)
	if err != nil {
		return err
	}
	if r.failCommit {
		return errors.New("commit transaction: connection reset")
	}
	*r.store = *staged
	return nil
}

type fakeCustomerRepo struct{ data map[string]entity.Customer }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.data[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if c, ok := r.data[id]; ok {
		cc := c
		return &cc, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByIDForUpdate(id string) (*entity.Customer, error) {
	return r.GetByID(id)
}

func (r *fakeCustomerRepo) GetByName(name string) (*entity.Customer, error) {
	for _, c := range r.data {
		if c.Name == name {
			cc := c
			return &cc, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByNameForUpdate(name string) (*entity.Customer, error) {
	return r.GetByName(name)
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.data {
		if c.Email == email {
			cc := c
			return &cc, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error)       { return nil, nil }
func (r *fakeCustomerRepo) ListActive() ([]*entity.Customer, error) { return nil, nil }

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.data[c.ID] = *c
	return nil
}

type fakeProductRepo struct{ data map[string]entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.data[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.data[id]; ok {
		pp := p
		return &pp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.data {
		if p.Name == name {
			pp := p
			return &pp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByNameForUpdate(name string) (*entity.Product, error) {
	return r.GetByName(name)
}

func (r *fakeProductRepo) List() ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.data[p.ID] = *p
	return nil
}

type fakeSaleRepo struct{ data map[string]entity.Sale }

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.data[s.ID] = *s
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	if s, ok := r.data[id]; ok {
		ss := s
		return &ss, nil
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *fakeSaleRepo) GetWithNames(id string) (*repository.SaleWithNames, error) {
	if s, ok := r.data[id]; ok {
		return &repository.SaleWithNames{Sale: s}, nil
	}
	return nil, nil
}

func (r *fakeSaleRepo) List() ([]repository.SaleWithNames, error) { return nil, nil }
func (r *fakeSaleRepo) ListByCustomerName(string) ([]repository.SaleWithNames, error) {
	return nil, nil
}
func (r *fakeSaleRepo) ListByProductName(string) ([]repository.SaleWithNames, error) {
	return nil, nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	r.data[s.ID] = *s
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedEngine arma un motor con un cliente y un producto ya persistidos.
func seedEngine(t *testing.T, balance, price string, stock int) (*sales.Engine, *fakeTxRunner, *entity.Customer, *entity.Product) {
	t.Helper()
	store := newFakeStore()

	customer, err := entity.NewCustomer("Juan Pérez", "juan@example.com", "hash", entity.RoleUser, dec(balance))
	require.NoError(t, err)
	store.customers[customer.ID] = *customer

	product, err := entity.NewProduct("Notebook", dec(price), stock)
	require.NoError(t, err)
	store.products[product.ID] = *product

	runner := &fakeTxRunner{store: store}
	engine := sales.NewEngine(runner, &fakeSaleRepo{data: store.sales}, logger.Nop())
	return engine, runner, customer, product
}

func createSale(qty int) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{CustomerName: "Juan Pérez", ProductName: "Notebook", Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

// Ida y vuelta completa: saldo 1000, precio 200, stock 50, cantidad 5 →
// total 1000, saldo 0, stock 45.
func TestCreateSale_DescuentaSaldoYStock(t *testing.T) {
	engine, runner, customer, product := seedEngine(t, "1000", "200", 50)

	saleID, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)
	require.NotEmpty(t, saleID)

	sale := runner.store.sales[saleID]
	assert.True(t, sale.Total.Equal(dec("1000")))
	assert.True(t, sale.UnitPrice.Equal(dec("200")), "el precio unitario queda congelado en la venta")
	assert.Equal(t, customer.ID, sale.CustomerID)
	assert.Equal(t, product.ID, sale.ProductID)

	assert.True(t, runner.store.customers[customer.ID].Balance.IsZero())
	assert.Equal(t, 45, runner.store.products[product.ID].Stock)
}

func TestCreateSale_StockExacto_Pasa(t *testing.T) {
	engine, runner, _, product := seedEngine(t, "100000", "200", 5)

	_, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)
	assert.Equal(t, 0, runner.store.products[product.ID].Stock)
}

func TestCreateSale_StockInsuficiente_RetornaValores(t *testing.T) {
	engine, runner, customer, product := seedEngine(t, "100000", "200", 5)

	_, err := engine.CreateSale(context.Background(), createSale(6))
	require.Error(t, err)

	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, 5, insufErr.Available)
	assert.Equal(t, 6, insufErr.Requested)

	// Nada debe haber mutado.
	assert.Equal(t, 5, runner.store.products[product.ID].Stock)
	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("100000")))
	assert.Empty(t, runner.store.sales)
}

func TestCreateSale_SaldoExacto_Pasa(t *testing.T) {
	engine, runner, customer, _ := seedEngine(t, "1000", "200", 50)

	_, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)
	assert.True(t, runner.store.customers[customer.ID].Balance.IsZero())
}

func TestCreateSale_SaldoInsuficientePorUnCentavo_RetornaValores(t *testing.T) {
	engine, runner, customer, _ := seedEngine(t, "999.99", "200", 50)

	_, err := engine.CreateSale(context.Background(), createSale(5))
	require.Error(t, err)

	var insufErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &insufErr)
	assert.True(t, insufErr.Available.Equal(dec("999.99")))
	assert.True(t, insufErr.Required.Equal(dec("1000")))

	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("999.99")))
	assert.Empty(t, runner.store.sales)
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	engine, _, _, _ := seedEngine(t, "1000", "200", 50)

	_, err := engine.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerName: "No Existe",
		ProductName:  "Notebook",
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCreateSale_ClienteInactivo_EquivaleAInexistente(t *testing.T) {
	engine, runner, customer, _ := seedEngine(t, "1000", "200", 50)

	c := runner.store.customers[customer.ID]
	c.Deactivate()
	runner.store.customers[customer.ID] = c

	_, err := engine.CreateSale(context.Background(), createSale(1))
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCreateSale_ProductoInactivo_EquivaleAInexistente(t *testing.T) {
	engine, runner, _, product := seedEngine(t, "1000", "200", 50)

	p := runner.store.products[product.ID]
	p.Deactivate()
	runner.store.products[product.ID] = p

	_, err := engine.CreateSale(context.Background(), createSale(1))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateSale_RequestInvalido_NoTocaElStore(t *testing.T) {
	engine, runner, customer, _ := seedEngine(t, "1000", "200", 50)

	_, err := engine.CreateSale(context.Background(), dto.CreateSaleRequest{Quantity: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Violations, 3, "se reportan todas las violaciones juntas")

	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("1000")))
}

// Si el commit falla, una lectura fresca no debe ver ninguna mutación.
func TestCreateSale_CommitFallido_NadaPersiste(t *testing.T) {
	engine, runner, customer, product := seedEngine(t, "1000", "200", 50)
	runner.failCommit = true

	_, err := engine.CreateSale(context.Background(), createSale(5))
	require.Error(t, err)

	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("1000")))
	assert.Equal(t, 50, runner.store.products[product.ID].Stock)
	assert.Empty(t, runner.store.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateSale
// ──────────────────────────────────────────────────────────────────────────────

// Venta de 5 @200, se reduce a 3 @200: el cliente recupera 400 y el stock
// recupera 2 unidades.
func TestUpdateSale_ReduccionDevuelveSaldoYStock(t *testing.T) {
	engine, runner, customer, product := seedEngine(t, "1000", "200", 50)

	saleID, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)

	err = engine.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Quantity:  3,
		UnitPrice: dec("200"),
	})
	require.NoError(t, err)

	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("400")))
	assert.Equal(t, 47, runner.store.products[product.ID].Stock)

	sale := runner.store.sales[saleID]
	assert.Equal(t, 3, sale.Quantity)
	assert.True(t, sale.Total.Equal(dec("600")))
}

func TestUpdateSale_AumentoDescuentaDelta(t *testing.T) {
	engine, runner, customer, product := seedEngine(t, "2000", "200", 50)

	saleID, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)
	// saldo 1000, stock 45

	err = engine.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Quantity:  7,
		UnitPrice: dec("200"),
	})
	require.NoError(t, err)

	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("600")))
	assert.Equal(t, 43, runner.store.products[product.ID].Stock)
}

// Venta de 5 con stock restante 10: el guard usa stock + cantidad original
// (15) contra la nueva cantidad.
func TestUpdateSale_GuardDeStockUsaStockRevertido(t *testing.T) {
	engine, runner, customer, product := seedEngine(t, "100000", "200", 15)

	saleID, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)
	// stock restante: 10

	err = engine.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Quantity:  20,
		UnitPrice: dec("200"),
	})
	require.Error(t, err)

	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, 15, insufErr.Available)
	assert.Equal(t, 20, insufErr.Requested)

	// Nada debe haber mutado.
	assert.Equal(t, 10, runner.store.products[product.ID].Stock)
	assert.Equal(t, 5, runner.store.sales[saleID].Quantity)
	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("99000")))

	// La nueva cantidad entra justo en el límite del stock revertido.
	err = engine.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Quantity:  15,
		UnitPrice: dec("200"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, runner.store.products[product.ID].Stock)
}

// El chequeo de saldo del update usa el delta; el error reporta el saldo como
// si la venta original se devolviera: (saldo + total viejo, total nuevo).
func TestUpdateSale_SaldoInsuficiente_ReportaSaldoRevertido(t *testing.T) {
	engine, runner, customer, _ := seedEngine(t, "1000", "200", 50)

	saleID, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)
	// saldo 0, total viejo 1000

	err = engine.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Quantity:  5,
		UnitPrice: dec("300"),
	})
	require.Error(t, err)

	var insufErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &insufErr)
	assert.True(t, insufErr.Available.Equal(dec("1000")), "saldo reportado: saldo actual + total original")
	assert.True(t, insufErr.Required.Equal(dec("1500")), "requerido reportado: el total nuevo completo")

	assert.True(t, runner.store.customers[customer.ID].Balance.IsZero())
}

// El update fija el precio de catálogo del producto en el nuevo valor unitario.
func TestUpdateSale_SobrescribePrecioDeCatalogo(t *testing.T) {
	engine, runner, _, product := seedEngine(t, "5000", "200", 50)

	saleID, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)

	err = engine.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Quantity:  5,
		UnitPrice: dec("150"),
	})
	require.NoError(t, err)

	assert.True(t, runner.store.products[product.ID].Price.Equal(dec("150")))
	sale := runner.store.sales[saleID]
	assert.True(t, sale.UnitPrice.Equal(dec("150")))
	assert.True(t, sale.Total.Equal(dec("750")))
}

func TestUpdateSale_VentaInexistente(t *testing.T) {
	engine, _, _, _ := seedEngine(t, "1000", "200", 50)

	err := engine.UpdateSale(context.Background(), "no-existe", dto.UpdateSaleRequest{
		Quantity:  1,
		UnitPrice: dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestUpdateSale_CommitFallido_NadaPersiste(t *testing.T) {
	engine, runner, customer, product := seedEngine(t, "2000", "200", 50)

	saleID, err := engine.CreateSale(context.Background(), createSale(5))
	require.NoError(t, err)

	runner.failCommit = true
	err = engine.UpdateSale(context.Background(), saleID, dto.UpdateSaleRequest{
		Quantity:  3,
		UnitPrice: dec("200"),
	})
	require.Error(t, err)

	assert.True(t, runner.store.customers[customer.ID].Balance.Equal(dec("1000")))
	assert.Equal(t, 45, runner.store.products[product.ID].Stock)
	assert.Equal(t, 5, runner.store.sales[saleID].Quantity)
}
