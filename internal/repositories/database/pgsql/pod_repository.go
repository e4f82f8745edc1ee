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

const podColumns = `pod_id, trip_id, image_url, drive_file_id, file_name, uploaded_at`

type PgxPodRepository struct {
	db *pgxpool.Pool
}

func newPgxPodRepository(db *pgxpool.Pool) portsrepo.PodRepositoryFacade {
	return &PgxPodRepository{db: db}
}

// Ensure PgxPodRepository implements portsrepo.PodRepositoryFacade
var _ portsrepo.PodRepositoryFacade = (*PgxPodRepository)(nil)

func scanPod(row pgx.Row) (models.Pod, error) {
	var m models.Pod
	err := row.Scan(&m.PodID, &m.TripID, &m.ImageURL, &m.DriveFileID, &m.FileName, &m.UploadedAt)
	return m, err
}

func (r *PgxPodRepository) SavePod(ctx context.Context, pod domain.Pod) error {
	m := mapping.ToModelPod(pod)
	query := `
        INSERT INTO pods (` + podColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query, m.PodID, m.TripID, m.ImageURL, m.DriveFileID, m.FileName, m.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to save pod: %w", translateError(err))
	}
	return nil
}

func (r *PgxPodRepository) FindPodByID(ctx context.Context, podID string) (*domain.Pod, error) {
	query := `SELECT ` + podColumns + ` FROM pods WHERE pod_id = $1;`
	m, err := scanPod(r.db.QueryRow(ctx, query, podID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pod by ID %s: %w", podID, err)
	}
	pod := mapping.ToDomainPod(m)
	return &pod, nil
}

func (r *PgxPodRepository) ListPodsByTrip(ctx context.Context, tripID string) ([]domain.Pod, error) {
	query := `SELECT ` + podColumns + ` FROM pods WHERE trip_id = $1 ORDER BY uploaded_at DESC;`
	rows, err := r.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pods for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	pods := []domain.Pod{}
	for rows.Next() {
		m, err := scanPod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pod row: %w", err)
		}
		pods = append(pods, mapping.ToDomainPod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pod rows: %w", err)
	}
	return pods, nil
}

func (r *PgxPodRepository) DeletePod(ctx context.Context, podID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pods WHERE pod_id = $1;`, podID)
	if err != nil {
		return fmt.Errorf("failed to delete pod %s: %w", podID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
