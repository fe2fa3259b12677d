package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/application/sales"
	"github.com/jcastellr/ventas-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	engine  *sales.Engine
	receipt *sales.ReceiptPDFUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(engine *sales.Engine, receipt *sales.ReceiptPDFUseCase) *SaleHandler {
	return &SaleHandler{engine: engine, receipt: receipt}
}

// Create registra una venta: descuenta saldo del cliente y stock del producto
// en una sola transacción.
// @Summary Crear venta
// @Tags sales
// @Accept json
// @Produce json
// @Param body body dto.CreateSaleRequest true "Venta"
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.engine.CreateSale(c.Context(), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update enmienda cantidad y precio unitario de una venta, ajustando saldo y
// stock por la diferencia.
// @Summary Actualizar venta
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID de la venta"
// @Param body body dto.UpdateSaleRequest true "Cambios"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.engine.UpdateSale(c.Context(), c.Params("id"), in); err != nil {
		return saleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID obtiene una venta con nombres de cliente y producto.
// @Summary Obtener venta
// @Tags sales
// @Produce json
// @Param id path string true "ID de la venta"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.engine.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(resp)
}

// List lista todas las ventas.
// @Summary Listar ventas
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Router /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	resp, err := h.engine.ListSales(c.Context())
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(resp)
}

// ListByCustomerName lista las ventas de un cliente por nombre.
// @Summary Ventas por cliente
// @Tags sales
// @Produce json
// @Param name path string true "Nombre del cliente"
// @Success 200 {array} dto.SaleResponse
// @Router /api/sales/customer/{name} [get]
func (h *SaleHandler) ListByCustomerName(c *fiber.Ctx) error {
	resp, err := h.engine.ListSalesByCustomerName(c.Context(), c.Params("name"))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(resp)
}

// ListByProductName lista las ventas de un producto por nombre.
// @Summary Ventas por producto
// @Tags sales
// @Produce json
// @Param name path string true "Nombre del producto"
// @Success 200 {array} dto.SaleResponse
// @Router /api/sales/product/{name} [get]
func (h *SaleHandler) ListByProductName(c *fiber.Ctx) error {
	resp, err := h.engine.ListSalesByProductName(c.Context(), c.Params("name"))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(resp)
}

// Receipt genera el comprobante de la venta en PDF.
// @Summary Comprobante PDF
// @Tags sales
// @Produce application/pdf
// @Param id path string true "ID de la venta"
// @Success 200 {file} byte
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipt.ReceiptPDF(c.Context(), c.Params("id"))
	if err != nil {
		return saleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprobante-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

func saleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrSaleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientBalance):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
