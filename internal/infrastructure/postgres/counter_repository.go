package postgres

import (
	"context"
	"fmt"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*CounterRepo)(nil)

// CounterRepo implementación de SequenceRepository sobre la tabla counters.
// El incremento es una sola sentencia upsert del lado del servidor: dos
// llamadas concurrentes nunca ven el mismo valor.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador del contador. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next incrementa y devuelve el contador de la clave.
func (r *CounterRepo) Next(key string) (int64, error) {
	query := `
		INSERT INTO counters (key, seq)
		VALUES ($1, 1)
		ON CONFLICT (key)
		DO UPDATE SET seq = counters.seq + 1
		RETURNING seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, key).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next counter %s: %w", key, err)
	}
	return seq, nil
}
