// Package usecase agrupa los casos de uso administrativos: agricultores,
// empleados, clientes y usuarios de staff.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/pkg/textutil"
)

// Formato NIC: 9 dígitos + V/X (formato viejo) o 12 dígitos (formato nuevo).
var nicPattern = regexp.MustCompile(`^([0-9]{9}[VvXx]|[0-9]{12})$`)

// FarmerUseCase expone el registro de agricultores proveedores.
type FarmerUseCase struct {
	farmers   repository.FarmerRepository
	sequences repository.SequenceRepository
}

// NewFarmerUseCase crea el caso de uso de agricultores.
func NewFarmerUseCase(farmers repository.FarmerRepository, sequences repository.SequenceRepository) *FarmerUseCase {
	return &FarmerUseCase{farmers: farmers, sequences: sequences}
}

// Create registra un agricultor. El NIC es único en el sistema.
func (uc *FarmerUseCase) Create(ctx context.Context, req dto.CreateFarmerRequest) (*dto.FarmerResponse, error) {
	if !nicPattern.MatchString(req.NIC) {
		return nil, fmt.Errorf("%w: formato de NIC inválido", domain.ErrInvalidInput)
	}
	if _, err := uc.farmers.GetByNIC(req.NIC); err == nil {
		return nil, domain.ErrNICAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.FarmerStatusActive
	}
	n, err := uc.sequences.Next(repository.SeqFarmer)
	if err != nil {
		return nil, fmt.Errorf("sequence farmer: %w", err)
	}

	f := &entity.Farmer{
		ID:       uuid.NewString(),
		FarmerID: n,
		Name:     req.Name,
		NIC:      req.NIC,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		FarmLocation: entity.FarmLocation{
			Latitude:  req.FarmLocation.Latitude,
			Longitude: req.FarmLocation.Longitude,
			Address:   req.FarmLocation.Address,
		},
		CapacityPerMonth: entity.PepperRates{
			Green: req.CapacityPerMonth.Green,
			Black: req.CapacityPerMonth.Black,
		},
		PricePerUnit: entity.PepperRates{
			Green: req.PricePerUnit.Green,
			Black: req.PricePerUnit.Black,
		},
		Status:           status,
		RegistrationDate: time.Now(),
	}
	if err := uc.farmers.Create(f); err != nil {
		return nil, err
	}
	resp := toFarmerResponse(f)
	return &resp, nil
}

// GetByID devuelve un agricultor por su UUID.
func (uc *FarmerUseCase) GetByID(ctx context.Context, id string) (*dto.FarmerResponse, error) {
	f, err := uc.farmers.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toFarmerResponse(f)
	return &resp, nil
}

// List lista agricultores con búsqueda (insensible a acentos) y filtro de estado.
func (uc *FarmerUseCase) List(ctx context.Context, search, status string) ([]dto.FarmerResponse, error) {
	if status == "all" {
		status = ""
	}
	fs, err := uc.farmers.List(repository.FarmerFilter{
		Search: textutil.NormalizeSearch(search),
		Status: status,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.FarmerResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, toFarmerResponse(f))
	}
	return out, nil
}

// Update actualiza un agricultor; si cambia el NIC se revalida la unicidad.
func (uc *FarmerUseCase) Update(ctx context.Context, id string, req dto.UpdateFarmerRequest) (*dto.FarmerResponse, error) {
	f, err := uc.farmers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.NIC != nil && *req.NIC != f.NIC {
		if !nicPattern.MatchString(*req.NIC) {
			return nil, fmt.Errorf("%w: formato de NIC inválido", domain.ErrInvalidInput)
		}
		if _, err := uc.farmers.GetByNIC(*req.NIC); err == nil {
			return nil, domain.ErrNICAlreadyExists
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		f.NIC = *req.NIC
	}
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Phone != nil {
		f.Phone = *req.Phone
	}
	if req.Email != nil {
		f.Email = *req.Email
	}
	if req.Address != nil {
		f.Address = *req.Address
	}
	if req.FarmLocation != nil {
		f.FarmLocation = entity.FarmLocation{
			Latitude:  req.FarmLocation.Latitude,
			Longitude: req.FarmLocation.Longitude,
			Address:   req.FarmLocation.Address,
		}
	}
	if req.CapacityPerMonth != nil {
		f.CapacityPerMonth = entity.PepperRates{
			Green: req.CapacityPerMonth.Green,
			Black: req.CapacityPerMonth.Black,
		}
	}
	if req.PricePerUnit != nil {
		f.PricePerUnit = entity.PepperRates{
			Green: req.PricePerUnit.Green,
			Black: req.PricePerUnit.Black,
		}
	}
	if req.Status != nil {
		if *req.Status != entity.FarmerStatusActive && *req.Status != entity.FarmerStatusInactive {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *req.Status)
		}
		f.Status = *req.Status
	}
	if err := uc.farmers.Update(f); err != nil {
		return nil, err
	}
	resp := toFarmerResponse(f)
	return &resp, nil
}

// Delete elimina un agricultor del registro.
func (uc *FarmerUseCase) Delete(ctx context.Context, id string) error {
	return uc.farmers.Delete(id)
}

// Stats devuelve el conteo de agricultores por estado.
func (uc *FarmerUseCase) Stats(ctx context.Context) (*dto.FarmerStatsResponse, error) {
	fs, err := uc.farmers.List(repository.FarmerFilter{})
	if err != nil {
		return nil, err
	}
	stats := &dto.FarmerStatsResponse{Total: len(fs)}
	for _, f := range fs {
		if f.Status == entity.FarmerStatusActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

func toFarmerResponse(f *entity.Farmer) dto.FarmerResponse {
	return dto.FarmerResponse{
		ID:       f.ID,
		FarmerID: f.FarmerID,
		Name:     f.Name,
		NIC:      f.NIC,
		Phone:    f.Phone,
		Email:    f.Email,
		Address:  f.Address,
		FarmLocation: dto.FarmLocationDTO{
			Latitude:  f.FarmLocation.Latitude,
			Longitude: f.FarmLocation.Longitude,
			Address:   f.FarmLocation.Address,
		},
		CapacityPerMonth: dto.PepperRatesDTO{
			Green: f.CapacityPerMonth.Green,
			Black: f.CapacityPerMonth.Black,
		},
		PricePerUnit: dto.PepperRatesDTO{
			Green: f.PricePerUnit.Green,
			Black: f.PricePerUnit.Black,
		},
		Status:           f.Status,
		RegistrationDate: f.RegistrationDate,
		LastSupplyDate:   f.LastSupplyDate,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}
