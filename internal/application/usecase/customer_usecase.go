package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/pkg/config"
	"github.com/ceylonpepper/pepperworks-api/pkg/jwt"
)

// RoleCustomer es el rol que viaja en el token de un cliente de la tienda.
const RoleCustomer = "Customer"

// CustomerUseCase expone registro, login y perfil de clientes de la tienda.
// Los passwords se guardan como hash bcrypt, nunca en texto plano.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	sequences repository.SequenceRepository
	jwtCfg    config.JWTConfig
}

// NewCustomerUseCase crea el caso de uso de clientes.
func NewCustomerUseCase(customers repository.CustomerRepository, sequences repository.SequenceRepository, jwtCfg config.JWTConfig) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, sequences: sequences, jwtCfg: jwtCfg}
}

// Register registra un cliente y devuelve el token de sesión.
func (uc *CustomerUseCase) Register(ctx context.Context, req dto.RegisterCustomerRequest) (*dto.CustomerLoginResponse, error) {
	if _, err := uc.customers.FindByEmail(req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	n, err := uc.sequences.Next(repository.SeqCustomer)
	if err != nil {
		return nil, err
	}
	c := &entity.Customer{
		ID:              uuid.NewString(),
		CustomerID:      n,
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    string(hash),
		Phone:           req.Phone,
		DeliveryAddress: req.DeliveryAddress,
		Status:          entity.CustomerStatusActive,
	}
	if err := uc.customers.Create(c); err != nil {
		return nil, err
	}
	return uc.loginResponse(c)
}

// Login valida credenciales de cliente y devuelve el token.
func (uc *CustomerUseCase) Login(ctx context.Context, req dto.LoginCustomerRequest) (*dto.CustomerLoginResponse, error) {
	c, err := uc.customers.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if c.Status != entity.CustomerStatusActive {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.loginResponse(c)
}

func (uc *CustomerUseCase) loginResponse(c *entity.Customer) (*dto.CustomerLoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, c.ID, RoleCustomer, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerLoginResponse{
		Token:    token,
		Customer: toCustomerResponse(c),
	}, nil
}

// Profile devuelve el perfil del cliente autenticado.
func (uc *CustomerUseCase) Profile(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// UpdateProfile actualiza los datos de contacto del cliente.
func (uc *CustomerUseCase) UpdateProfile(ctx context.Context, id string, req dto.UpdateCustomerProfileRequest) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.DeliveryAddress != nil {
		c.DeliveryAddress = *req.DeliveryAddress
	}
	if err := uc.customers.Update(c); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// List devuelve todos los clientes (vista de administración).
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	cs, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Stats devuelve el conteo de clientes por estado.
func (uc *CustomerUseCase) Stats(ctx context.Context) (*dto.CustomerStatsResponse, error) {
	cs, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	stats := &dto.CustomerStatsResponse{Total: len(cs)}
	for _, c := range cs {
		if c.Status == entity.CustomerStatusActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:              c.ID,
		CustomerID:      c.CustomerID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		DeliveryAddress: c.DeliveryAddress,
		Status:          c.Status,
		TotalOrders:     c.TotalOrders,
		LastOrderDate:   c.LastOrderDate,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
