package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
	"github.com/jcastellr/ventas-api/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	JWTSecret  string
	Issuer     string
	ExpMinutes int
}

// UseCase autenticación de clientes contra la tabla de customers.
type UseCase struct {
	customers repository.CustomerRepository
	cfg       Config
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(customers repository.CustomerRepository, cfg Config) *UseCase {
	return &UseCase{customers: customers, cfg: cfg}
}

// Login valida credenciales y emite un JWT con el rol del cliente.
// Credenciales inválidas devuelven siempre ErrUnauthorized, sin distinguir
// email inexistente de password incorrecto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	customer, err := uc.customers.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !customer.Active {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, customer.ID, customer.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Email: customer.Email, Role: customer.Role}, nil
}
