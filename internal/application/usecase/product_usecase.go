package usecase

import (
	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/entity"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de productos. El stock lo muta el motor de
// ventas; acá se fija el inicial y el ajuste de catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if existing, _ := uc.repo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	product, err := entity.NewProduct(in.Name, in.Price, in.Stock)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update modifica nombre, precio y stock de un producto existente.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if err := product.Rename(in.Name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(in.Price); err != nil {
		return nil, err
	}
	if err := product.SetStock(in.Stock); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate baja lógica del producto. Idempotente.
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	product.Deactivate()
	return uc.repo.Update(product)
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos; con onlyActive, solo los activos.
func (uc *ProductUseCase) List(onlyActive bool) ([]*dto.ProductResponse, error) {
	var (
		list []*entity.Product
		err  error
	)
	if onlyActive {
		list, err = uc.repo.ListActive()
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Stock:  p.Stock,
		Active: p.Active,
	}
}
