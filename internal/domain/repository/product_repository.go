package repository

import "github.com/ceylonpepper/pepperworks-api/internal/domain/entity"

// AvailableFilter filtros para el listado paginado de productos disponibles.
// Search ya viene normalizado (ver textutil.NormalizeSearch).
type AvailableFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// La receta viaja embebida en el producto (valor, no agregado aparte).
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByProductID(productID string) (*entity.Product, error)
	GetByIDForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// ListAvailable lista productos Active con disponibilidad > 0 y devuelve
	// también el total sin paginar.
	ListAvailable(f AvailableFilter) ([]*entity.Product, int, error)
	Categories() ([]string, error)
	Update(p *entity.Product) error
	Delete(id string) error
}
