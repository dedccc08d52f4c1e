package repository

import (
	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
)

// RawMaterialRepository define el puerto del libro de materia prima.
// Debit/Credit son updates condicionales de una sola sentencia (el estado
// derivado se recalcula en la misma sentencia desde la cantidad NUEVA);
// GetByTypeForUpdate bloquea la fila dentro de una transacción.
type RawMaterialRepository interface {
	Create(m *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	GetByType(pepperType string) (*entity.RawMaterial, error)
	GetByTypeForUpdate(pepperType string) (*entity.RawMaterial, error)
	List() ([]*entity.RawMaterial, error)
	ListLowStock() ([]*entity.RawMaterial, error)
	Update(m *entity.RawMaterial) error
	// Debit descuenta amountKg solo si la cantidad actual alcanza.
	// Devuelve false (sin error) cuando la condición no se cumple.
	Debit(pepperType string, amountKg decimal.Decimal) (bool, error)
	// Credit acredita amountKg sobre una fila existente.
	Credit(pepperType string, amountKg decimal.Decimal) error
}
