package repository

import "github.com/jcastellr/ventas-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Las variantes ForUpdate bloquean la fila (SELECT ... FOR UPDATE) y solo
// tienen sentido dentro de una transacción.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByIDForUpdate(id string) (*entity.Customer, error)
	GetByName(name string) (*entity.Customer, error)
	GetByNameForUpdate(name string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	ListActive() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
}
