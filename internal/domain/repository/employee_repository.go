package repository

import "github.com/ceylonpepper/pepperworks-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List(status string) ([]*entity.Employee, error)
	Update(e *entity.Employee) error
	Delete(id string) error
}
