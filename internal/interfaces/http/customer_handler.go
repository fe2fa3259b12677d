package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/application/usecase"
	"github.com/jcastellr/ventas-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido, admin).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create registra un cliente.
// @Summary Crear cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param body body dto.CreateCustomerRequest true "Cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update modifica nombre, rol y saldo de un cliente.
// @Summary Actualizar cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID del cliente"
// @Param body body dto.UpdateCustomerRequest true "Cambios"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(resp)
}

// Deactivate da de baja lógica a un cliente.
// @Summary Desactivar cliente
// @Tags customers
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return customerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID obtiene un cliente.
// @Summary Obtener cliente
// @Tags customers
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(resp)
}

// List lista clientes; ?active=true filtra solo activos.
// @Summary Listar clientes
// @Tags customers
// @Produce json
// @Param active query bool false "Solo activos"
// @Success 200 {array} dto.CustomerResponse
// @Router /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.QueryBool("active"))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(resp)
}

func customerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "nombre o email ya registrado"})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
