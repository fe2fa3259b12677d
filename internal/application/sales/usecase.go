package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/entity"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
	"github.com/jcastellr/ventas-api/pkg/logger"
)

// Engine orquesta la creación y modificación de ventas: valida el request,
// resuelve cliente y producto con bloqueo de fila, aplica los deltas de saldo
// y stock sobre los agregados y confirma los tres cambios en una sola
// transacción. Toda validación ocurre antes de cualquier mutación.
type Engine struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository // lecturas fuera de transacción
	log      *logger.Logger
}

// NewEngine construye el motor de ventas.
func NewEngine(txRunner TxRunner, saleRepo repository.SaleRepository, log *logger.Logger) *Engine {
	return &Engine{txRunner: txRunner, saleRepo: saleRepo, log: log}
}

// CreateSale registra una venta: descuenta saldo del cliente y stock del
// producto y persiste los tres agregados en una transacción. Devuelve el id
// de la venta creada.
func (e *Engine) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (string, error) {
	if err := ValidateCreateSale(in); err != nil {
		return "", err
	}

	var saleID string
	err := e.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquear las filas de cliente y producto: lecturas y mutaciones
		// deben ser consistentes hasta el commit, y dos ventas concurrentes
		// sobre el mismo producto o cliente se serializan acá.
		customer, err := customerRepo.GetByNameForUpdate(in.CustomerName)
		if err != nil {
			return err
		}
		if customer == nil || !customer.Active {
			return domain.ErrCustomerNotFound
		}

		product, err := productRepo.GetByNameForUpdate(in.ProductName)
		if err != nil {
			return err
		}
		if product == nil || !product.Active {
			return domain.ErrProductNotFound
		}

		if !product.HasSufficientStock(in.Quantity) {
			return &domain.InsufficientStockError{Available: product.Stock, Requested: in.Quantity}
		}

		total := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if !customer.HasSufficientBalance(total) {
			return &domain.InsufficientBalanceError{Available: customer.Balance, Required: total}
		}

		// Toda la validación pasó; recién ahora se mutan los agregados.
		sale := entity.NewSale(in.Quantity, product.Price, customer.ID, product.ID)

		if err := customer.DecreaseBalance(total); err != nil {
			return err
		}
		if err := product.DecreaseStock(in.Quantity); err != nil {
			return err
		}

		if err := customerRepo.Update(customer); err != nil {
			return err
		}
		if err := productRepo.Update(product); err != nil {
			return err
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		saleID = sale.ID
		return nil
	})
	if err != nil {
		e.log.Warn().Err(err).
			Str("customer", in.CustomerName).
			Str("product", in.ProductName).
			Int("quantity", in.Quantity).
			Msg("venta rechazada")
		return "", err
	}

	e.log.Info().Str("sale_id", saleID).Int("quantity", in.Quantity).Msg("venta creada")
	return saleID, nil
}

// UpdateSale modifica cantidad y precio unitario de una venta existente,
// ajustando saldo y stock por la diferencia contra la venta original. El
// precio de catálogo del producto queda en el nuevo valor unitario.
func (e *Engine) UpdateSale(ctx context.Context, id string, in dto.UpdateSaleRequest) error {
	if err := ValidateUpdateSale(in); err != nil {
		return err
	}

	err := e.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}

		// Re-lectura explícita con bloqueo de fila: la venta solo guarda los
		// ids, nunca referencias vivas.
		customer, err := customerRepo.GetByIDForUpdate(sale.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrCustomerNotFound
		}

		product, err := productRepo.GetByIDForUpdate(sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		// Stock disponible si se revirtiera la cantidad reservada por la
		// venta original.
		stockAvailable := product.Stock + sale.Quantity
		if stockAvailable < in.Quantity {
			return &domain.InsufficientStockError{Available: stockAvailable, Requested: in.Quantity}
		}

		oldTotal := sale.Total
		newTotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		delta := newTotal.Sub(oldTotal)

		// El chequeo de saldo usa solo el delta incremental; el error reporta
		// el saldo como si la venta original se devolviera.
		if delta.IsPositive() && !customer.HasSufficientBalance(delta) {
			return &domain.InsufficientBalanceError{
				Available: customer.Balance.Add(oldTotal),
				Required:  newTotal,
			}
		}

		switch {
		case delta.IsPositive():
			if err := customer.DecreaseBalance(delta); err != nil {
				return err
			}
		case delta.IsNegative():
			if err := customer.IncreaseBalance(delta.Neg()); err != nil {
				return err
			}
		}

		quantityDelta := in.Quantity - sale.Quantity
		switch {
		case quantityDelta > 0:
			if err := product.DecreaseStock(quantityDelta); err != nil {
				return err
			}
		case quantityDelta < 0:
			if err := product.IncreaseStock(-quantityDelta); err != nil {
				return err
			}
		}

		if err := product.SetPrice(in.UnitPrice); err != nil {
			return err
		}

		sale.Amend(in.Quantity, in.UnitPrice)

		if err := customerRepo.Update(customer); err != nil {
			return err
		}
		if err := productRepo.Update(product); err != nil {
			return err
		}
		return saleRepo.Update(sale)
	})
	if err != nil {
		e.log.Warn().Err(err).Str("sale_id", id).Msg("modificación de venta rechazada")
		return err
	}

	e.log.Info().Str("sale_id", id).Int("quantity", in.Quantity).Msg("venta actualizada")
	return nil
}
