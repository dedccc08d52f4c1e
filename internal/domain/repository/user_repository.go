package repository

import "github.com/ceylonpepper/pepperworks-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios de staff.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(u *entity.User) error
}
