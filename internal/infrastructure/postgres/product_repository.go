package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). La receta se guarda como JSONB en la misma fila.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, product_id, name, description, category, size, unit, price,
	current_stock, safety_stock, reorder_level, stock_status, status, image_url, expiry_date, recipe,
	created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var recipe []byte
	err := row.Scan(
		&p.ID, &p.ProductID, &p.Name, &p.Description, &p.Category, &p.Size, &p.Unit, &p.Price,
		&p.CurrentStock, &p.SafetyStock, &p.ReorderLevel, &p.StockStatus, &p.Status,
		&p.ImageURL, &p.ExpiryDate, &recipe, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(recipe) > 0 {
		if err := json.Unmarshal(recipe, &p.Recipe); err != nil {
			return nil, fmt.Errorf("decode recipe: %w", err)
		}
	}
	return &p, nil
}

// Create persiste un producto nuevo con su receta.
func (r *ProductRepo) Create(p *entity.Product) error {
	recipe, err := json.Marshal(p.Recipe)
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}
	query := `
		INSERT INTO products (id, product_id, name, description, category, size, unit, price,
			current_stock, safety_stock, reorder_level, stock_status, status, image_url, expiry_date, recipe,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.ProductID, p.Name, p.Description, p.Category, p.Size, p.Unit, p.Price,
		p.CurrentStock, p.SafetyStock, p.ReorderLevel, p.StockStatus, p.Status,
		p.ImageURL, p.ExpiryDate, recipe,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por su UUID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, err
}

// GetByProductID obtiene un producto por su ID humano (PID-###).
func (r *ProductRepo) GetByProductID(productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, productID))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get product by product_id: %w", err)
	}
	return p, err
}

// GetByIDForUpdate obtiene un producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, err
}

// List devuelve todos los productos, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListAvailable lista productos Active con disponibilidad de venta mayor a
// cero, con filtros por categoría y búsqueda (sobre el nombre normalizado),
// y devuelve el total sin paginar. Limit <= 0 desactiva la paginación.
func (r *ProductRepo) ListAvailable(f repository.AvailableFilter) ([]*entity.Product, int, error) {
	where := `status = 'Active' AND (current_stock - safety_stock) > 0`
	args := make([]any, 0, 4)
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		// unaccent() en la columna: el término ya viene sin tildes desde el
		// caso de uso, y sin esto "Orgánica" almacenado jamás matchearía.
		where += fmt.Sprintf(" AND unaccent(name) ILIKE $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products WHERE ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count available products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where + ` ORDER BY category, name`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list available products: %w", err)
	}
	defer rows.Close()

	ps, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return ps, total, nil
}

// Categories devuelve las categorías distintas, ordenadas.
func (r *ProductRepo) Categories() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update persiste el producto completo, receta incluida.
func (r *ProductRepo) Update(p *entity.Product) error {
	recipe, err := json.Marshal(p.Recipe)
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, size = $5, unit = $6, price = $7,
		    current_stock = $8, safety_stock = $9, reorder_level = $10, stock_status = $11,
		    status = $12, image_url = $13, expiry_date = $14, recipe = $15, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Category, p.Size, p.Unit, p.Price,
		p.CurrentStock, p.SafetyStock, p.ReorderLevel, p.StockStatus,
		p.Status, p.ImageURL, p.ExpiryDate, recipe,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. El historial no se toca: conserva la foto del
// producto borrado.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		var recipe []byte
		if err := rows.Scan(
			&p.ID, &p.ProductID, &p.Name, &p.Description, &p.Category, &p.Size, &p.Unit, &p.Price,
			&p.CurrentStock, &p.SafetyStock, &p.ReorderLevel, &p.StockStatus, &p.Status,
			&p.ImageURL, &p.ExpiryDate, &recipe, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if len(recipe) > 0 {
			if err := json.Unmarshal(recipe, &p.Recipe); err != nil {
				return nil, fmt.Errorf("decode recipe: %w", err)
			}
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
