package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

var _ repository.RawMaterialOrderRepository = (*RawMaterialOrderRepo)(nil)

// RawMaterialOrderRepo implementación de órdenes de compra sobre PostgreSQL
// (usable con pool o tx).
type RawMaterialOrderRepo struct {
	q Querier
}

// NewRawMaterialOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialOrderRepository(q Querier) *RawMaterialOrderRepo {
	return &RawMaterialOrderRepo{q: q}
}

const orderColumns = `id, rm_order_id, raw_material_type, requested_qty_kg, delivered_qty_kg,
	farmer_id, status, delivered_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.RawMaterialOrder, error) {
	var o entity.RawMaterialOrder
	err := row.Scan(
		&o.ID, &o.RMOrderID, &o.RawMaterialType, &o.RequestedQtyKg, &o.DeliveredQtyKg,
		&o.FarmerID, &o.Status, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden nueva (Pending, sin entregar).
func (r *RawMaterialOrderRepo) Create(o *entity.RawMaterialOrder) error {
	query := `
		INSERT INTO raw_material_orders (id, rm_order_id, raw_material_type, requested_qty_kg,
			delivered_qty_kg, farmer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.RMOrderID, o.RawMaterialType, o.RequestedQtyKg, o.FarmerID, o.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material order: %w", err)
	}
	return nil
}

// GetByRMOrderID obtiene una orden por su ID humano (RMO-####).
func (r *RawMaterialOrderRepo) GetByRMOrderID(rmOrderID string) (*entity.RawMaterialOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM raw_material_orders WHERE rm_order_id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, rmOrderID))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, err
}

// GetByRMOrderIDForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
func (r *RawMaterialOrderRepo) GetByRMOrderIDForUpdate(rmOrderID string) (*entity.RawMaterialOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM raw_material_orders WHERE rm_order_id = $1 FOR UPDATE`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, rmOrderID))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get order for update: %w", err)
	}
	return o, err
}

// List lista órdenes con filtros opcionales, más recientes primero.
func (r *RawMaterialOrderRepo) List(filter repository.OrderFilter) ([]*entity.RawMaterialOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM raw_material_orders`
	args := make([]any, 0, 2)
	where := ""
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if filter.RawMaterialType != "" {
		args = append(args, filter.RawMaterialType)
		if where == "" {
			where = fmt.Sprintf(" WHERE raw_material_type = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND raw_material_type = $%d", len(args))
		}
	}
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.RawMaterialOrder, 0)
	for rows.Next() {
		var o entity.RawMaterialOrder
		if err := rows.Scan(
			&o.ID, &o.RMOrderID, &o.RawMaterialType, &o.RequestedQtyKg, &o.DeliveredQtyKg,
			&o.FarmerID, &o.Status, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// Update persiste los campos mutables de la orden (entrega y estado).
func (r *RawMaterialOrderRepo) Update(o *entity.RawMaterialOrder) error {
	query := `
		UPDATE raw_material_orders
		SET delivered_qty_kg = $2, status = $3, delivered_at = $4, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, o.ID, o.DeliveredQtyKg, o.Status, o.DeliveredAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una orden por su UUID.
func (r *RawMaterialOrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM raw_material_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
