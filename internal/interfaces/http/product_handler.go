package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/application/usecase"
	"github.com/jcastellr/ventas-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido, admin).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create registra un producto.
// @Summary Crear producto
// @Tags products
// @Accept json
// @Produce json
// @Param body body dto.CreateProductRequest true "Producto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update modifica nombre, precio y stock de un producto.
// @Summary Actualizar producto
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID del producto"
// @Param body body dto.UpdateProductRequest true "Cambios"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(resp)
}

// Deactivate da de baja lógica a un producto.
// @Summary Desactivar producto
// @Tags products
// @Produce json
// @Param id path string true "ID del producto"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return productError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID obtiene un producto.
// @Summary Obtener producto
// @Tags products
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(resp)
}

// List lista productos; ?active=true filtra solo activos.
// @Summary Listar productos
// @Tags products
// @Produce json
// @Param active query bool false "Solo activos"
// @Success 200 {array} dto.ProductResponse
// @Router /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.QueryBool("active"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(resp)
}

func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "nombre de producto ya registrado"})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
