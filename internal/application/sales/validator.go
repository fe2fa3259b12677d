package sales

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/domain"
)

// Límites de los requests de venta.
const (
	nameMinLen  = 3
	nameMaxLen  = 100
	maxQuantity = 999999
)

var maxUnitPrice = decimal.RequireFromString("999999.99")

// ValidateCreateSale revisa la forma del request y acumula TODAS las
// violaciones, no solo la primera.
func ValidateCreateSale(in dto.CreateSaleRequest) error {
	var violations []string
	violations = append(violations, nameViolations("el nombre del cliente", in.CustomerName)...)
	violations = append(violations, nameViolations("el nombre del producto", in.ProductName)...)
	violations = append(violations, quantityViolations(in.Quantity)...)
	if len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return nil
}

// ValidateUpdateSale revisa cantidad y precio unitario del request de
// modificación.
func ValidateUpdateSale(in dto.UpdateSaleRequest) error {
	var violations []string
	violations = append(violations, quantityViolations(in.Quantity)...)
	if !in.UnitPrice.GreaterThan(decimal.Zero) {
		violations = append(violations, "el valor unitario debe ser mayor que cero")
	} else if in.UnitPrice.GreaterThanOrEqual(maxUnitPrice) {
		violations = append(violations, "el valor unitario debe ser menor que 999999.99")
	}
	if len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return nil
}

func quantityViolations(qty int) []string {
	if qty <= 0 {
		return []string{"la cantidad debe ser mayor que cero"}
	}
	if qty >= maxQuantity {
		return []string{fmt.Sprintf("la cantidad debe ser menor que %d", maxQuantity)}
	}
	return nil
}

func nameViolations(label, name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []string{label + " es obligatorio"}
	}
	var v []string
	if len(trimmed) < nameMinLen {
		v = append(v, fmt.Sprintf("%s debe tener al menos %d caracteres", label, nameMinLen))
	}
	if len(trimmed) > nameMaxLen {
		v = append(v, fmt.Sprintf("%s debe tener como máximo %d caracteres", label, nameMaxLen))
	}
	return v
}
