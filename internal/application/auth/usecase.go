// Package auth implementa registro y login de usuarios de staff.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/pkg/config"
	"github.com/ceylonpepper/pepperworks-api/pkg/jwt"
)

// UseCase expone autenticación de staff. Los passwords se guardan como hash
// bcrypt; la comparación en login es de tiempo constante.
type UseCase struct {
	users     repository.UserRepository
	sequences repository.SequenceRepository
	jwtCfg    config.JWTConfig
}

// NewUseCase crea el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, sequences repository.SequenceRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, sequences: sequences, jwtCfg: jwtCfg}
}

// Register da de alta un usuario de staff con rol validado y devuelve la
// sesión iniciada.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	if !entity.IsValidRole(req.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
	}
	if _, err := uc.users.FindByEmail(req.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	n, err := uc.sequences.Next(repository.SeqUser)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           uuid.NewString(),
		UserID:       n,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       entity.UserStatusActive,
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}
	return uc.loginResponse(u)
}

// Login valida credenciales y devuelve el token con el rol en los claims.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if u.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.loginResponse(u)
}

func (uc *UseCase) loginResponse(u *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(u),
	}, nil
}

// Me devuelve el usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// ListUsers lista los usuarios de staff (solo Admin).
func (uc *UseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	us, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
