package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/sequence"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

// EmployeeUseCase expone la gestión de empleados de planta.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	sequences repository.SequenceRepository
}

// NewEmployeeUseCase crea el caso de uso de empleados.
func NewEmployeeUseCase(employees repository.EmployeeRepository, sequences repository.SequenceRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, sequences: sequences}
}

// Create da de alta un empleado con su EMP### secuencial.
func (uc *EmployeeUseCase) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if req.BasicSalary.IsNegative() {
		return nil, fmt.Errorf("%w: el salario no puede ser negativo", domain.ErrInvalidInput)
	}
	status := req.Status
	if status == "" {
		status = entity.EmployeeStatusActive
	}
	if status != entity.EmployeeStatusActive && status != entity.EmployeeStatusInactive {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	employeeID, err := sequence.NextEmployeeID(uc.sequences)
	if err != nil {
		return nil, err
	}
	e := &entity.Employee{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Name:        req.Name,
		Designation: req.Designation,
		BasicSalary: req.BasicSalary,
		Status:      status,
	}
	if err := uc.employees.Create(e); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// GetByID devuelve un empleado por su UUID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// List lista empleados; status vacío o "all" devuelve todos.
func (uc *EmployeeUseCase) List(ctx context.Context, status string) ([]dto.EmployeeResponse, error) {
	if status == "all" {
		status = ""
	}
	es, err := uc.employees.List(status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza un empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Designation != nil {
		e.Designation = *req.Designation
	}
	if req.BasicSalary != nil {
		if req.BasicSalary.IsNegative() {
			return nil, fmt.Errorf("%w: el salario no puede ser negativo", domain.ErrInvalidInput)
		}
		e.BasicSalary = *req.BasicSalary
	}
	if req.Status != nil {
		if *req.Status != entity.EmployeeStatusActive && *req.Status != entity.EmployeeStatusInactive {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *req.Status)
		}
		e.Status = *req.Status
	}
	if err := uc.employees.Update(e); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// ToggleStatus alterna Active <-> Inactive.
func (uc *EmployeeUseCase) ToggleStatus(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e.Status == entity.EmployeeStatusActive {
		e.Status = entity.EmployeeStatusInactive
	} else {
		e.Status = entity.EmployeeStatusActive
	}
	if err := uc.employees.Update(e); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.employees.Delete(id)
}

// Stats devuelve el conteo de empleados por estado.
func (uc *EmployeeUseCase) Stats(ctx context.Context) (*dto.EmployeeStatsResponse, error) {
	es, err := uc.employees.List("")
	if err != nil {
		return nil, err
	}
	stats := &dto.EmployeeStatsResponse{Total: len(es)}
	for _, e := range es {
		if e.Status == entity.EmployeeStatusActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Designation: e.Designation,
		BasicSalary: e.BasicSalary,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
