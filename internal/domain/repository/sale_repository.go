package repository

import "github.com/jcastellr/ventas-api/internal/domain/entity"

// SaleWithNames es una venta acompañada de los nombres de cliente y producto,
// resueltos con un join para los listados y respuestas.
type SaleWithNames struct {
	Sale         entity.Sale
	CustomerName string
	ProductName  string
}

// SaleRepository define el puerto de persistencia para Sale. Las ventas nunca
// se borran.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	GetByIDForUpdate(id string) (*entity.Sale, error)
	GetWithNames(id string) (*SaleWithNames, error)
	List() ([]SaleWithNames, error)
	ListByCustomerName(name string) ([]SaleWithNames, error)
	ListByProductName(name string) ([]SaleWithNames, error)
	Update(sale *entity.Sale) error
}
