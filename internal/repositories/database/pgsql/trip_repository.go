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
	"github.com/freightbooks/freight_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tripColumns = `trip_id, date, party_id, vehicle_id, origin, destination,
		freight_party, freight_supplier, lr_number, material_desc, notes,
		pod_uploaded, drive_folder_id, drive_folder_name, status,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxTripRepository struct {
	db *pgxpool.Pool
}

func newPgxTripRepository(db *pgxpool.Pool) portsrepo.TripRepositoryFacade {
	return &PgxTripRepository{db: db}
}

// Ensure PgxTripRepository implements portsrepo.TripRepositoryFacade
var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

func scanTrip(row pgx.Row) (models.Trip, error) {
	var m models.Trip
	err := row.Scan(
		&m.TripID,
		&m.Date,
		&m.PartyID,
		&m.VehicleID,
		&m.Origin,
		&m.Destination,
		&m.FreightParty,
		&m.FreightSupplier,
		&m.LRNumber,
		&m.MaterialDesc,
		&m.Notes,
		&m.PodUploaded,
		&m.DriveFolderID,
		&m.DriveFolderName,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
        INSERT INTO trips (` + tripColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
    `
	_, err := r.db.Exec(ctx, query,
		m.TripID, m.Date, m.PartyID, m.VehicleID, m.Origin, m.Destination,
		m.FreightParty, m.FreightSupplier, m.LRNumber, m.MaterialDesc, m.Notes,
		m.PodUploaded, m.DriveFolderID, m.DriveFolderName, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save trip: %w", translateError(err))
	}
	return nil
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1;`
	m, err := scanTrip(r.db.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip by ID %s: %w", tripID, err)
	}
	trip := mapping.ToDomainTrip(m)
	return &trip, nil
}

// ListTrips pages trips by (date DESC, created_at DESC) using a keyset token
// so inserts between pages never shift the cursor.
func (r *PgxTripRepository) ListTrips(ctx context.Context, limit int, nextToken *string) ([]domain.Trip, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + tripColumns + ` FROM trips`
	args := []interface{}{}
	if nextToken != nil && *nextToken != "" {
		tripDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (date, created_at) < ($1, $2)`
		args = append(args, tripDate, createdAt)
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		m, err := scanTrip(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, mapping.ToDomainTrip(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating trip rows: %w", err)
	}

	var token *string
	if len(trips) > limit {
		trips = trips[:limit]
		last := trips[len(trips)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}
	return trips, token, nil
}

func (r *PgxTripRepository) ListTripsByParty(ctx context.Context, partyID string) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE party_id = $1 ORDER BY date DESC, created_at DESC;`
	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips for party %s: %w", partyID, err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		m, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, mapping.ToDomainTrip(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", err)
	}
	return trips, nil
}

func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
        UPDATE trips SET
            date = $2,
            origin = $3,
            destination = $4,
            freight_party = $5,
            freight_supplier = $6,
            lr_number = $7,
            material_desc = $8,
            notes = $9,
            pod_uploaded = $10,
            drive_folder_id = $11,
            drive_folder_name = $12,
            status = $13,
            last_updated_at = $14,
            last_updated_by = $15
        WHERE trip_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.TripID, m.Date, m.Origin, m.Destination,
		m.FreightParty, m.FreightSupplier, m.LRNumber, m.MaterialDesc, m.Notes,
		m.PodUploaded, m.DriveFolderID, m.DriveFolderName, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip %s: %w", trip.TripID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", tripID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
