package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implementación del libro de materia prima sobre PostgreSQL
// (usable con pool o tx). El estado derivado se recalcula en SQL dentro de la
// misma sentencia que mueve la cantidad.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

const rawMaterialColumns = `id, raw_material_id, type, quantity_kg, reorder_level_kg, low_stock_status, created_at, updated_at`

func scanRawMaterial(row pgx.Row) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := row.Scan(
		&m.ID, &m.RawMaterialID, &m.Type, &m.QuantityKg, &m.ReorderLevelKg,
		&m.LowStockStatus, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create persiste una fila nueva del libro. El tipo es único.
func (r *RawMaterialRepo) Create(m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, raw_material_id, type, quantity_kg, reorder_level_kg, low_stock_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.RawMaterialID, m.Type, m.QuantityKg, m.ReorderLevelKg, m.LowStockStatus,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una fila por su UUID.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1`
	m, err := scanRawMaterial(r.q.QueryRow(context.Background(), query, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return m, err
}

// GetByType obtiene la fila de un tipo de pimienta.
func (r *RawMaterialRepo) GetByType(pepperType string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE type = $1`
	m, err := scanRawMaterial(r.q.QueryRow(context.Background(), query, pepperType))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get raw material by type: %w", err)
	}
	return m, err
}

// GetByTypeForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE).
func (r *RawMaterialRepo) GetByTypeForUpdate(pepperType string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE type = $1 FOR UPDATE`
	m, err := scanRawMaterial(r.q.QueryRow(context.Background(), query, pepperType))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get raw material for update: %w", err)
	}
	return m, err
}

// List devuelve el libro completo.
func (r *RawMaterialRepo) List() ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials ORDER BY type`
	return r.list(query)
}

// ListLowStock devuelve las filas en LowStock.
func (r *RawMaterialRepo) ListLowStock() ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE low_stock_status = 'LowStock' ORDER BY type`
	return r.list(query)
}

func (r *RawMaterialRepo) list(query string, args ...any) ([]*entity.RawMaterial, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.RawMaterial, 0)
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(
			&m.ID, &m.RawMaterialID, &m.Type, &m.QuantityKg, &m.ReorderLevelKg,
			&m.LowStockStatus, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Update persiste cantidad, umbral y estado derivado.
func (r *RawMaterialRepo) Update(m *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials
		SET quantity_kg = $2, reorder_level_kg = $3, low_stock_status = $4, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, m.ID, m.QuantityKg, m.ReorderLevelKg, m.LowStockStatus)
	if err != nil {
		return fmt.Errorf("update raw material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Debit descuenta amountKg en una sola sentencia condicional: solo aplica si
// la cantidad actual alcanza, y el estado se deriva de la cantidad NUEVA en la
// misma sentencia. Devuelve false sin error cuando no alcanzó.
func (r *RawMaterialRepo) Debit(pepperType string, amountKg decimal.Decimal) (bool, error) {
	query := `
		UPDATE raw_materials
		SET quantity_kg = quantity_kg - $2,
		    low_stock_status = CASE WHEN quantity_kg - $2 <= reorder_level_kg THEN 'LowStock' ELSE 'InStock' END,
		    updated_at = now()
		WHERE type = $1 AND quantity_kg >= $2`
	cmd, err := r.q.Exec(context.Background(), query, pepperType, amountKg)
	if err != nil {
		return false, fmt.Errorf("debit raw material: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Credit acredita amountKg sobre la fila del tipo, rederivando el estado.
func (r *RawMaterialRepo) Credit(pepperType string, amountKg decimal.Decimal) error {
	query := `
		UPDATE raw_materials
		SET quantity_kg = quantity_kg + $2,
		    low_stock_status = CASE WHEN quantity_kg + $2 <= reorder_level_kg THEN 'LowStock' ELSE 'InStock' END,
		    updated_at = now()
		WHERE type = $1`
	cmd, err := r.q.Exec(context.Background(), query, pepperType, amountKg)
	if err != nil {
		return fmt.Errorf("credit raw material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
