package sales

import (
	"context"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
)

// GetSale devuelve una venta por id con los nombres de cliente y producto.
func (e *Engine) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sw, err := e.saleRepo.GetWithNames(id)
	if err != nil {
		return nil, err
	}
	if sw == nil {
		return nil, domain.ErrSaleNotFound
	}
	return toSaleResponse(*sw), nil
}

// ListSales devuelve todas las ventas.
func (e *Engine) ListSales(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := e.saleRepo.List()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ListSalesByCustomerName devuelve las ventas de un cliente por nombre.
func (e *Engine) ListSalesByCustomerName(ctx context.Context, name string) ([]*dto.SaleResponse, error) {
	list, err := e.saleRepo.ListByCustomerName(name)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ListSalesByProductName devuelve las ventas de un producto por nombre.
func (e *Engine) ListSalesByProductName(ctx context.Context, name string) ([]*dto.SaleResponse, error) {
	list, err := e.saleRepo.ListByProductName(name)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

func toSaleResponse(sw repository.SaleWithNames) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           sw.Sale.ID,
		Quantity:     sw.Sale.Quantity,
		UnitPrice:    sw.Sale.UnitPrice,
		Total:        sw.Sale.Total,
		Date:         sw.Sale.Date,
		CustomerName: sw.CustomerName,
		ProductName:  sw.ProductName,
	}
}

func toSaleResponses(list []repository.SaleWithNames) []*dto.SaleResponse {
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, sw := range list {
		out = append(out, toSaleResponse(sw))
	}
	return out
}
