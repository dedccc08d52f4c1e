package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un empleado.
const (
	EmployeeStatusActive   = "Active"
	EmployeeStatusInactive = "Inactive"
)

// Employee es un empleado de planta. EmployeeID sirve también como número EPF.
type Employee struct {
	ID          string // surrogate (UUID)
	EmployeeID  string // humano: EMP001
	Name        string
	Designation string
	BasicSalary decimal.Decimal
	Status      string // Active | Inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
