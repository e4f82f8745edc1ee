package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	"github.com/freightbooks/freight_ledger_app/internal/models"
	"github.com/freightbooks/freight_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const supplierColumns = `supplier_id, name, contact_no,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxSupplierRepository struct {
	db *pgxpool.Pool
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{db: db}
}

// Ensure PgxSupplierRepository implements portsrepo.SupplierRepositoryFacade
var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID, &m.Name, &m.ContactNo,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
        INSERT INTO suppliers (` + supplierColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.SupplierID, m.Name, m.ContactNo,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", translateError(err))
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	m, err := scanSupplier(r.db.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}
	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, mapping.ToDomainSupplier(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
        UPDATE suppliers SET
            name = $2,
            contact_no = $3,
            last_updated_at = $4,
            last_updated_by = $5
        WHERE supplier_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.SupplierID, m.Name, m.ContactNo, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const vehicleColumns = `vehicle_id, supplier_id, vehicle_no,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxVehicleRepository struct {
	db *pgxpool.Pool
}

func newPgxVehicleRepository(db *pgxpool.Pool) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{db: db}
}

// Ensure PgxVehicleRepository implements portsrepo.VehicleRepositoryFacade
var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

func scanVehicle(row pgx.Row) (models.Vehicle, error) {
	var m models.Vehicle
	err := row.Scan(
		&m.VehicleID, &m.SupplierID, &m.VehicleNo,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)
	query := `
        INSERT INTO vehicles (` + vehicleColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.VehicleID, m.SupplierID, m.VehicleNo,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vehicle: %w", translateError(err))
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1;`
	m, err := scanVehicle(r.db.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle by ID %s: %w", vehicleID, err)
	}
	vehicle := mapping.ToDomainVehicle(m)
	return &vehicle, nil
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return r.listVehicles(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY vehicle_no ASC;`)
}

func (r *PgxVehicleRepository) ListVehiclesBySupplier(ctx context.Context, supplierID string) ([]domain.Vehicle, error) {
	return r.listVehicles(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE supplier_id = $1 ORDER BY vehicle_no ASC;`, supplierID)
}

func (r *PgxVehicleRepository) listVehicles(ctx context.Context, query string, args ...interface{}) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		m, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, mapping.ToDomainVehicle(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle rows: %w", err)
	}
	return vehicles, nil
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)
	query := `
        UPDATE vehicles SET
            vehicle_no = $2,
            last_updated_at = $3,
            last_updated_by = $4
        WHERE vehicle_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.VehicleID, m.VehicleNo, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", vehicle.VehicleID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE vehicle_id = $1;`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
