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

const chargeTypeColumns = `charge_type_id, name, is_custom,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxChargeTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxChargeTypeRepository(db *pgxpool.Pool) portsrepo.ChargeTypeRepositoryFacade {
	return &PgxChargeTypeRepository{db: db}
}

// Ensure PgxChargeTypeRepository implements portsrepo.ChargeTypeRepositoryFacade
var _ portsrepo.ChargeTypeRepositoryFacade = (*PgxChargeTypeRepository)(nil)

func scanChargeType(row pgx.Row) (models.ChargeType, error) {
	var m models.ChargeType
	err := row.Scan(
		&m.ChargeTypeID, &m.Name, &m.IsCustom,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxChargeTypeRepository) SaveChargeType(ctx context.Context, chargeType domain.ChargeType) error {
	m := mapping.ToModelChargeType(chargeType)
	query := `
        INSERT INTO charge_types (` + chargeTypeColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.ChargeTypeID, m.Name, m.IsCustom,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save charge type: %w", translateError(err))
	}
	return nil
}

func (r *PgxChargeTypeRepository) FindChargeTypeByID(ctx context.Context, chargeTypeID string) (*domain.ChargeType, error) {
	query := `SELECT ` + chargeTypeColumns + ` FROM charge_types WHERE charge_type_id = $1;`
	m, err := scanChargeType(r.db.QueryRow(ctx, query, chargeTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charge type by ID %s: %w", chargeTypeID, err)
	}
	chargeType := mapping.ToDomainChargeType(m)
	return &chargeType, nil
}

func (r *PgxChargeTypeRepository) FindChargeTypeByName(ctx context.Context, name string) (*domain.ChargeType, error) {
	query := `SELECT ` + chargeTypeColumns + ` FROM charge_types WHERE lower(name) = lower($1);`
	m, err := scanChargeType(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charge type by name %q: %w", name, err)
	}
	chargeType := mapping.ToDomainChargeType(m)
	return &chargeType, nil
}

func (r *PgxChargeTypeRepository) ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error) {
	query := `SELECT ` + chargeTypeColumns + ` FROM charge_types ORDER BY is_custom ASC, name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query charge types: %w", err)
	}
	defer rows.Close()

	chargeTypes := []domain.ChargeType{}
	for rows.Next() {
		m, err := scanChargeType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan charge type row: %w", err)
		}
		chargeTypes = append(chargeTypes, mapping.ToDomainChargeType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating charge type rows: %w", err)
	}
	return chargeTypes, nil
}
