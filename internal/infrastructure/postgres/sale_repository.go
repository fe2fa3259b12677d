package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellr/ventas-api/internal/domain/entity"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, customer_id, product_id, quantity, unit_price, total, sale_date`

// saleWithNamesQuery resuelve los nombres con un join; las ventas referencian
// clientes y productos por id aunque estén dados de baja.
const saleWithNamesQuery = `
	SELECT s.id, s.customer_id, s.product_id, s.quantity, s.unit_price, s.total, s.sale_date,
	       c.name, p.name
	FROM sales s
	JOIN customers c ON c.id = s.customer_id
	JOIN products p ON p.id = s.product_id`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, product_id, quantity, unit_price, total, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.ProductID, sale.Quantity, sale.UnitPrice, sale.Total, sale.Date,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.getOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene una venta por ID bloqueando la fila (FOR UPDATE).
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.getOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1 FOR UPDATE`, id)
}

func (r *SaleRepo) getOne(query string, arg any) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.CustomerID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.Total, &s.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetWithNames obtiene una venta con los nombres de cliente y producto.
func (r *SaleRepo) GetWithNames(id string) (*repository.SaleWithNames, error) {
	var sw repository.SaleWithNames
	err := r.q.QueryRow(context.Background(), saleWithNamesQuery+` WHERE s.id = $1`, id).Scan(
		&sw.Sale.ID, &sw.Sale.CustomerID, &sw.Sale.ProductID, &sw.Sale.Quantity,
		&sw.Sale.UnitPrice, &sw.Sale.Total, &sw.Sale.Date,
		&sw.CustomerName, &sw.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale with names: %w", err)
	}
	return &sw, nil
}

// List lista todas las ventas, más recientes primero.
func (r *SaleRepo) List() ([]repository.SaleWithNames, error) {
	return r.list(saleWithNamesQuery + ` ORDER BY s.sale_date DESC`)
}

// ListByCustomerName lista las ventas de un cliente por nombre.
func (r *SaleRepo) ListByCustomerName(name string) ([]repository.SaleWithNames, error) {
	return r.list(saleWithNamesQuery+` WHERE c.name = $1 ORDER BY s.sale_date DESC`, name)
}

// ListByProductName lista las ventas de un producto por nombre.
func (r *SaleRepo) ListByProductName(name string) ([]repository.SaleWithNames, error) {
	return r.list(saleWithNamesQuery+` WHERE p.name = $1 ORDER BY s.sale_date DESC`, name)
}

func (r *SaleRepo) list(query string, args ...any) ([]repository.SaleWithNames, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	out := make([]repository.SaleWithNames, 0)
	for rows.Next() {
		var sw repository.SaleWithNames
		if err := rows.Scan(
			&sw.Sale.ID, &sw.Sale.CustomerID, &sw.Sale.ProductID, &sw.Sale.Quantity,
			&sw.Sale.UnitPrice, &sw.Sale.Total, &sw.Sale.Date,
			&sw.CustomerName, &sw.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, sw)
	}
	return out, rows.Err()
}

// Update actualiza cantidad, precio unitario y total de una venta enmendada.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET quantity = $2, unit_price = $3, total = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Quantity, sale.UnitPrice, sale.Total,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}
