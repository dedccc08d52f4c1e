package repository

import "github.com/ceylonpepper/pepperworks-api/internal/domain/entity"

// OrderFilter filtros opcionales del listado de órdenes.
type OrderFilter struct {
	Status          string
	RawMaterialType string
}

// RawMaterialOrderRepository define el puerto de persistencia para órdenes de
// materia prima. GetByRMOrderIDForUpdate bloquea la fila dentro de la
// transacción de entrega (guarda de idempotencia bajo concurrencia).
type RawMaterialOrderRepository interface {
	Create(o *entity.RawMaterialOrder) error
	GetByRMOrderID(rmOrderID string) (*entity.RawMaterialOrder, error)
	GetByRMOrderIDForUpdate(rmOrderID string) (*entity.RawMaterialOrder, error)
	List(filter OrderFilter) ([]*entity.RawMaterialOrder, error)
	Update(o *entity.RawMaterialOrder) error
	Delete(id string) error
}
