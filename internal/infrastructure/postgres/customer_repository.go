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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de clientes sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, customer_id, name, email, password_hash, phone, delivery_address,
	status, total_orders, last_order_date, created_at, updated_at`

// Create persiste un cliente. El email es único.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, customer_id, name, email, password_hash, phone, delivery_address,
			status, total_orders, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CustomerID, c.Name, c.Email, c.PasswordHash, c.Phone, c.DeliveryAddress, c.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por su UUID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.get(query, id)
}

// FindByEmail obtiene un cliente por email.
func (r *CustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.get(query, email)
}

func (r *CustomerRepo) get(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.CustomerID, &c.Name, &c.Email, &c.PasswordHash, &c.Phone, &c.DeliveryAddress,
		&c.Status, &c.TotalOrders, &c.LastOrderDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista todos los clientes.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY customer_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Customer, 0)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.CustomerID, &c.Name, &c.Email, &c.PasswordHash, &c.Phone, &c.DeliveryAddress,
			&c.Status, &c.TotalOrders, &c.LastOrderDate, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update persiste un cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, password_hash = $4, phone = $5, delivery_address = $6,
		    status = $7, total_orders = $8, last_order_date = $9, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.PasswordHash, c.Phone, c.DeliveryAddress,
		c.Status, c.TotalOrders, c.LastOrderDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
