package repository

import "github.com/jcastellr/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDForUpdate(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	GetByNameForUpdate(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	Update(product *entity.Product) error
}
