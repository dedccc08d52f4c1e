// Package inventory implementa los motores de stock de la planta: el libro
// de materia prima, el stock de producto terminado con deducción de receta y
// el historial de inventario. Toda mutación de stock corre dentro de una
// transacción (TxRunner) para que el saldo, el estado derivado y la entrada
// de historial se muevan juntos o no se muevan.
package inventory

import (
	"context"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

// TxRepos son los repositorios atados a la transacción en curso.
type TxRepos struct {
	Materials repository.RawMaterialRepository
	Products  repository.ProductRepository
	History   repository.InventoryHistoryRepository
	Sequences repository.SequenceRepository
}

// TxRunner ejecuta fn dentro de una transacción; commit si fn devuelve nil,
// rollback en caso contrario.
type TxRunner interface {
	RunInventory(ctx context.Context, fn func(r TxRepos) error) error
}
