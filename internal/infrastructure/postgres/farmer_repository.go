package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

var _ repository.FarmerRepository = (*FarmerRepo)(nil)

// FarmerRepo implementación del registro de agricultores sobre PostgreSQL
// (usable con pool o tx). Capacidad y precio por tipo van en columnas
// explícitas; la ubicación de la finca en columnas lat/lng/dirección.
type FarmerRepo struct {
	q Querier
}

// NewFarmerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFarmerRepository(q Querier) *FarmerRepo {
	return &FarmerRepo{q: q}
}

const farmerColumns = `id, farmer_id, name, nic, phone, email, address,
	farm_latitude, farm_longitude, farm_address,
	capacity_green_kg, capacity_black_kg, price_green, price_black,
	status, registration_date, last_supply_date, created_at, updated_at`

func scanFarmer(row pgx.Row) (*entity.Farmer, error) {
	var f entity.Farmer
	err := row.Scan(
		&f.ID, &f.FarmerID, &f.Name, &f.NIC, &f.Phone, &f.Email, &f.Address,
		&f.FarmLocation.Latitude, &f.FarmLocation.Longitude, &f.FarmLocation.Address,
		&f.CapacityPerMonth.Green, &f.CapacityPerMonth.Black, &f.PricePerUnit.Green, &f.PricePerUnit.Black,
		&f.Status, &f.RegistrationDate, &f.LastSupplyDate, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Create registra un agricultor. El NIC es único.
func (r *FarmerRepo) Create(f *entity.Farmer) error {
	query := `
		INSERT INTO farmers (id, farmer_id, name, nic, phone, email, address,
			farm_latitude, farm_longitude, farm_address,
			capacity_green_kg, capacity_black_kg, price_green, price_black,
			status, registration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.FarmerID, f.Name, f.NIC, f.Phone, f.Email, f.Address,
		f.FarmLocation.Latitude, f.FarmLocation.Longitude, f.FarmLocation.Address,
		f.CapacityPerMonth.Green, f.CapacityPerMonth.Black, f.PricePerUnit.Green, f.PricePerUnit.Black,
		f.Status, f.RegistrationDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNICAlreadyExists
		}
		return fmt.Errorf("insert farmer: %w", err)
	}
	return nil
}

// GetByID obtiene un agricultor por su UUID.
func (r *FarmerRepo) GetByID(id string) (*entity.Farmer, error) {
	query := `SELECT ` + farmerColumns + ` FROM farmers WHERE id = $1`
	f, err := scanFarmer(r.q.QueryRow(context.Background(), query, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get farmer: %w", err)
	}
	return f, err
}

// GetByNIC obtiene un agricultor por NIC.
func (r *FarmerRepo) GetByNIC(nic string) (*entity.Farmer, error) {
	query := `SELECT ` + farmerColumns + ` FROM farmers WHERE nic = $1`
	f, err := scanFarmer(r.q.QueryRow(context.Background(), query, nic))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get farmer by nic: %w", err)
	}
	return f, err
}

// List lista agricultores con búsqueda sobre nombre y dirección de finca y
// filtro opcional de estado.
func (r *FarmerRepo) List(filter repository.FarmerFilter) ([]*entity.Farmer, error) {
	query := `SELECT ` + farmerColumns + ` FROM farmers`
	args := make([]any, 0, 2)
	where := ""
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		// unaccent() en ambas columnas: el término ya viene normalizado.
		where = fmt.Sprintf(" WHERE (unaccent(name) ILIKE $%d OR unaccent(farm_address) ILIKE $%d)", len(args), len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		if where == "" {
			where = fmt.Sprintf(" WHERE status = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND status = $%d", len(args))
		}
	}
	query += where + ` ORDER BY farmer_id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list farmers: %w", err)
	}
	defer rows.Close()
	return collectFarmers(rows)
}

// ListEligible lista agricultores Active cuya capacidad mensual del tipo
// cubre minQty (o es mayor a cero si minQty es cero).
func (r *FarmerRepo) ListEligible(pepperType string, minQty decimal.Decimal) ([]*entity.Farmer, error) {
	capacityCol := "capacity_black_kg"
	if pepperType == entity.PepperTypeGreen {
		capacityCol = "capacity_green_kg"
	}
	query := `SELECT ` + farmerColumns + ` FROM farmers
		WHERE status = 'Active' AND ` + capacityCol + ` >= GREATEST($1::numeric, 0.000001)
		ORDER BY ` + capacityCol + ` DESC`
	rows, err := r.q.Query(context.Background(), query, minQty)
	if err != nil {
		return nil, fmt.Errorf("list eligible farmers: %w", err)
	}
	defer rows.Close()
	return collectFarmers(rows)
}

// Update persiste un agricultor completo.
func (r *FarmerRepo) Update(f *entity.Farmer) error {
	query := `
		UPDATE farmers
		SET name = $2, nic = $3, phone = $4, email = $5, address = $6,
		    farm_latitude = $7, farm_longitude = $8, farm_address = $9,
		    capacity_green_kg = $10, capacity_black_kg = $11, price_green = $12, price_black = $13,
		    status = $14, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		f.ID, f.Name, f.NIC, f.Phone, f.Email, f.Address,
		f.FarmLocation.Latitude, f.FarmLocation.Longitude, f.FarmLocation.Address,
		f.CapacityPerMonth.Green, f.CapacityPerMonth.Black, f.PricePerUnit.Green, f.PricePerUnit.Black,
		f.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNICAlreadyExists
		}
		return fmt.Errorf("update farmer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un agricultor.
func (r *FarmerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM farmers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete farmer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TouchLastSupply estampa la última fecha de suministro.
func (r *FarmerRepo) TouchLastSupply(id string, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE farmers SET last_supply_date = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("touch last supply: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectFarmers(rows pgx.Rows) ([]*entity.Farmer, error) {
	out := make([]*entity.Farmer, 0)
	for rows.Next() {
		var f entity.Farmer
		if err := rows.Scan(
			&f.ID, &f.FarmerID, &f.Name, &f.NIC, &f.Phone, &f.Email, &f.Address,
			&f.FarmLocation.Latitude, &f.FarmLocation.Longitude, &f.FarmLocation.Address,
			&f.CapacityPerMonth.Green, &f.CapacityPerMonth.Black, &f.PricePerUnit.Green, &f.PricePerUnit.Black,
			&f.Status, &f.RegistrationDate, &f.LastSupplyDate, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan farmer: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}
