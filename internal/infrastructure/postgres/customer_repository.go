package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/entity"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, password_hash, role, balance, active, registered_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, password_hash, role, balance, active, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.PasswordHash,
		customer.Role, customer.Balance, customer.Active, customer.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.getOne(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene un cliente por ID bloqueando la fila (FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *CustomerRepo) GetByIDForUpdate(id string) (*entity.Customer, error) {
	return r.getOne(`SELECT `+customerColumns+` FROM customers WHERE id = $1 FOR UPDATE`, id)
}

// GetByName obtiene un cliente por nombre.
func (r *CustomerRepo) GetByName(name string) (*entity.Customer, error) {
	return r.getOne(`SELECT `+customerColumns+` FROM customers WHERE name = $1`, name)
}

// GetByNameForUpdate obtiene un cliente por nombre bloqueando la fila (FOR UPDATE).
func (r *CustomerRepo) GetByNameForUpdate(name string) (*entity.Customer, error) {
	return r.getOne(`SELECT `+customerColumns+` FROM customers WHERE name = $1 FOR UPDATE`, name)
}

// GetByEmail obtiene un cliente por email (login).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	return r.getOne(`SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

func (r *CustomerRepo) getOne(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Role, &c.Balance, &c.Active, &c.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista todos los clientes.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.list(`SELECT ` + customerColumns + ` FROM customers ORDER BY registered_at DESC`)
}

// ListActive lista solo los clientes activos.
func (r *CustomerRepo) ListActive() ([]*entity.Customer, error) {
	return r.list(`SELECT ` + customerColumns + ` FROM customers WHERE active ORDER BY registered_at DESC`)
}

func (r *CustomerRepo) list(query string) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Role, &c.Balance, &c.Active, &c.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update actualiza un cliente existente. El email no cambia.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, role = $3, balance = $4, active = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Role, customer.Balance, customer.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}
