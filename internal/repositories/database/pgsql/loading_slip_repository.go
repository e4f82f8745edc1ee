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

const loadingSlipColumns = `loading_slip_id, party_id, vehicle_no, origin_place, destination_place,
		trip_date, freight_amount, advance_amount, material_desc, lr_no, notes,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxLoadingSlipRepository struct {
	db *pgxpool.Pool
}

func newPgxLoadingSlipRepository(db *pgxpool.Pool) portsrepo.LoadingSlipRepositoryFacade {
	return &PgxLoadingSlipRepository{db: db}
}

// Ensure PgxLoadingSlipRepository implements portsrepo.LoadingSlipRepositoryFacade
var _ portsrepo.LoadingSlipRepositoryFacade = (*PgxLoadingSlipRepository)(nil)

func scanLoadingSlip(row pgx.Row) (models.LoadingSlip, error) {
	var m models.LoadingSlip
	err := row.Scan(
		&m.LoadingSlipID, &m.PartyID, &m.VehicleNo, &m.OriginPlace, &m.DestinationPlace,
		&m.TripDate, &m.FreightAmount, &m.AdvanceAmount, &m.MaterialDesc, &m.LRNo, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLoadingSlipRepository) SaveLoadingSlip(ctx context.Context, slip domain.LoadingSlip) error {
	m := mapping.ToModelLoadingSlip(slip)
	query := `
        INSERT INTO loading_slips (` + loadingSlipColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		m.LoadingSlipID, m.PartyID, m.VehicleNo, m.OriginPlace, m.DestinationPlace,
		m.TripDate, m.FreightAmount, m.AdvanceAmount, m.MaterialDesc, m.LRNo, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save loading slip: %w", translateError(err))
	}
	return nil
}

func (r *PgxLoadingSlipRepository) FindLoadingSlipByID(ctx context.Context, loadingSlipID string) (*domain.LoadingSlip, error) {
	query := `SELECT ` + loadingSlipColumns + ` FROM loading_slips WHERE loading_slip_id = $1;`
	m, err := scanLoadingSlip(r.db.QueryRow(ctx, query, loadingSlipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loading slip by ID %s: %w", loadingSlipID, err)
	}
	slip := mapping.ToDomainLoadingSlip(m)
	return &slip, nil
}

func (r *PgxLoadingSlipRepository) ListLoadingSlips(ctx context.Context) ([]domain.LoadingSlip, error) {
	query := `SELECT ` + loadingSlipColumns + ` FROM loading_slips ORDER BY trip_date DESC, created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loading slips: %w", err)
	}
	defer rows.Close()

	slips := []domain.LoadingSlip{}
	for rows.Next() {
		m, err := scanLoadingSlip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loading slip row: %w", err)
		}
		slips = append(slips, mapping.ToDomainLoadingSlip(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loading slip rows: %w", err)
	}
	return slips, nil
}

func (r *PgxLoadingSlipRepository) UpdateLoadingSlip(ctx context.Context, slip domain.LoadingSlip) error {
	m := mapping.ToModelLoadingSlip(slip)
	query := `
        UPDATE loading_slips SET
            vehicle_no = $2,
            origin_place = $3,
            destination_place = $4,
            trip_date = $5,
            freight_amount = $6,
            advance_amount = $7,
            material_desc = $8,
            lr_no = $9,
            notes = $10,
            last_updated_at = $11,
            last_updated_by = $12
        WHERE loading_slip_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.LoadingSlipID, m.VehicleNo, m.OriginPlace, m.DestinationPlace,
		m.TripDate, m.FreightAmount, m.AdvanceAmount, m.MaterialDesc, m.LRNo, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update loading slip %s: %w", slip.LoadingSlipID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLoadingSlipRepository) DeleteLoadingSlip(ctx context.Context, loadingSlipID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM loading_slips WHERE loading_slip_id = $1;`, loadingSlipID)
	if err != nil {
		return fmt.Errorf("failed to delete loading slip %s: %w", loadingSlipID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
