// Package procurement implementa el flujo de compras de materia prima:
// órdenes a agricultores con verificación de capacidad, entrega idempotente
// que acredita el libro de materia prima y generación del pago al agricultor.
package procurement

import (
	"context"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

// TxRepos son los repositorios atados a la transacción de entrega.
type TxRepos struct {
	Orders    repository.RawMaterialOrderRepository
	Materials repository.RawMaterialRepository
	Sequences repository.SequenceRepository
}

// TxRunner ejecuta fn dentro de una transacción; commit si fn devuelve nil,
// rollback en caso contrario.
type TxRunner interface {
	RunProcurement(ctx context.Context, fn func(r TxRepos) error) error
}
