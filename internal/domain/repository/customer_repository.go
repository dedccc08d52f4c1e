package repository

import "github.com/ceylonpepper/pepperworks-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	FindByEmail(email string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(c *entity.Customer) error
}
