package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellr/ventas-api/internal/application/dto"
	"github.com/jcastellr/ventas-api/internal/domain"
	"github.com/jcastellr/ventas-api/internal/domain/entity"
	"github.com/jcastellr/ventas-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD de clientes. El saldo solo lo muta el
// motor de ventas; acá se fija el inicial y el ajuste administrativo.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente: hashea el password con bcrypt y persiste.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.repo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	customer, err := entity.NewCustomer(in.Name, in.Email, string(hash), role, in.Balance)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update modifica nombre, rol y saldo de un cliente existente.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if err := customer.Rename(in.Name); err != nil {
		return nil, err
	}
	customer.SetRole(in.Role)
	if err := customer.SetBalance(in.Balance); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Deactivate baja lógica del cliente; las ventas históricas lo siguen
// referenciando. Idempotente.
func (uc *CustomerUseCase) Deactivate(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	customer.Deactivate()
	return uc.repo.Update(customer)
}

// Get devuelve un cliente por id.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes; con onlyActive, solo los activos.
func (uc *CustomerUseCase) List(onlyActive bool) ([]*dto.CustomerResponse, error) {
	var (
		list []*entity.Customer
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
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Role:         c.Role,
		Balance:      c.Balance,
		Active:       c.Active,
		RegisteredAt: c.RegisteredAt,
	}
}
