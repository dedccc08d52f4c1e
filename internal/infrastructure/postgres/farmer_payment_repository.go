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

var _ repository.FarmerPaymentRepository = (*FarmerPaymentRepo)(nil)

// FarmerPaymentRepo implementación de pagos a agricultores sobre PostgreSQL.
// rm_order_id lleva constraint único: la base garantiza a lo sumo un pago por
// orden aun si dos procesos intentan generarlo a la vez.
type FarmerPaymentRepo struct {
	q Querier
}

// NewFarmerPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFarmerPaymentRepository(q Querier) *FarmerPaymentRepo {
	return &FarmerPaymentRepo{q: q}
}

const paymentColumns = `id, payment_id, farmer_id, rm_order_id, pepper_type,
	delivered_qty_kg, price_per_kg, amount, created_at`

func scanPayment(row pgx.Row) (*entity.FarmerPayment, error) {
	var p entity.FarmerPayment
	err := row.Scan(
		&p.ID, &p.PaymentID, &p.FarmerID, &p.RMOrderID, &p.PepperType,
		&p.DeliveredQtyKg, &p.PricePerKg, &p.Amount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserta un pago.
func (r *FarmerPaymentRepo) Create(p *entity.FarmerPayment) error {
	query := `
		INSERT INTO farmer_payments (id, payment_id, farmer_id, rm_order_id, pepper_type,
			delivered_qty_kg, price_per_kg, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PaymentID, p.FarmerID, p.RMOrderID, p.PepperType,
		p.DeliveredQtyKg, p.PricePerKg, p.Amount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert farmer payment: %w", err)
	}
	return nil
}

// GetByPaymentID obtiene un pago por su ID humano (FP-####).
func (r *FarmerPaymentRepo) GetByPaymentID(paymentID string) (*entity.FarmerPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM farmer_payments WHERE payment_id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, paymentID))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, err
}

// GetByRMOrderID obtiene el pago de una orden, si existe.
func (r *FarmerPaymentRepo) GetByRMOrderID(rmOrderID string) (*entity.FarmerPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM farmer_payments WHERE rm_order_id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, rmOrderID))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get payment by order: %w", err)
	}
	return p, err
}

// List lista pagos, más recientes primero; farmerID vacío devuelve todos.
func (r *FarmerPaymentRepo) List(farmerID string) ([]*entity.FarmerPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM farmer_payments`
	args := make([]any, 0, 1)
	if farmerID != "" {
		args = append(args, farmerID)
		query += ` WHERE farmer_id = $1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.FarmerPayment, 0)
	for rows.Next() {
		var p entity.FarmerPayment
		if err := rows.Scan(
			&p.ID, &p.PaymentID, &p.FarmerID, &p.RMOrderID, &p.PepperType,
			&p.DeliveredQtyKg, &p.PricePerKg, &p.Amount, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
