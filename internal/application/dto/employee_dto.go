package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	Name        string          `json:"name" validate:"required"`
	Designation string          `json:"designation" validate:"required"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Status      string          `json:"status"`
}

// UpdateEmployeeRequest actualización parcial de empleado.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name"`
	Designation *string          `json:"designation"`
	BasicSalary *decimal.Decimal `json:"basicSalary"`
	Status      *string          `json:"status"`
}

// EmployeeResponse representación pública de un empleado.
type EmployeeResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// EmployeeStatsResponse métricas del módulo de empleados.
type EmployeeStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
