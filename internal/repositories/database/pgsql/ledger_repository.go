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

// PgxLedgerRepository persists the three trip transaction kinds. Listing is
// always scoped to a trip; the optional side filter keeps the SQL in one
// place instead of duplicating per-ledger queries.
type PgxLedgerRepository struct {
	db *pgxpool.Pool
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{db: db}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const advanceColumns = `advance_id, trip_id, side, amount, received_date, payment_mode, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanAdvance(row pgx.Row) (models.Advance, error) {
	var m models.Advance
	err := row.Scan(
		&m.AdvanceID, &m.TripID, &m.Side, &m.Amount, &m.ReceivedDate, &m.PaymentMode, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerRepository) ListAdvances(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE trip_id = $1`
	args := []interface{}{tripID}
	if side != nil {
		query += ` AND side = $2`
		args = append(args, string(*side))
	}
	query += ` ORDER BY received_date DESC, created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	advances := []domain.Advance{}
	for rows.Next() {
		m, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance row: %w", err)
		}
		advances = append(advances, mapping.ToDomainAdvance(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating advance rows: %w", err)
	}
	return advances, nil
}

func (r *PgxLedgerRepository) FindAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE advance_id = $1;`
	m, err := scanAdvance(r.db.QueryRow(ctx, query, advanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find advance by ID %s: %w", advanceID, err)
	}
	advance := mapping.ToDomainAdvance(m)
	return &advance, nil
}

func (r *PgxLedgerRepository) SaveAdvance(ctx context.Context, advance domain.Advance) error {
	m := mapping.ToModelAdvance(advance)
	query := `
        INSERT INTO advances (` + advanceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.AdvanceID, m.TripID, m.Side, m.Amount, m.ReceivedDate, m.PaymentMode, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save advance: %w", translateError(err))
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteAdvance(ctx context.Context, advanceID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM advances WHERE advance_id = $1;`, advanceID)
	if err != nil {
		return fmt.Errorf("failed to delete advance %s: %w", advanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const chargeColumns = `charge_id, trip_id, side, charge_type_id, operation, amount, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanCharge(row pgx.Row) (models.Charge, error) {
	var m models.Charge
	err := row.Scan(
		&m.ChargeID, &m.TripID, &m.Side, &m.ChargeTypeID, &m.Operation, &m.Amount, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerRepository) ListCharges(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE trip_id = $1`
	args := []interface{}{tripID}
	if side != nil {
		query += ` AND side = $2`
		args = append(args, string(*side))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query charges for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	charges := []domain.Charge{}
	for rows.Next() {
		m, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan charge row: %w", err)
		}
		charges = append(charges, mapping.ToDomainCharge(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating charge rows: %w", err)
	}
	return charges, nil
}

func (r *PgxLedgerRepository) FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE charge_id = $1;`
	m, err := scanCharge(r.db.QueryRow(ctx, query, chargeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charge by ID %s: %w", chargeID, err)
	}
	charge := mapping.ToDomainCharge(m)
	return &charge, nil
}

func (r *PgxLedgerRepository) SaveCharge(ctx context.Context, charge domain.Charge) error {
	m := mapping.ToModelCharge(charge)
	query := `
        INSERT INTO charges (` + chargeColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.ChargeID, m.TripID, m.Side, m.ChargeTypeID, m.Operation, m.Amount, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save charge: %w", translateError(err))
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteCharge(ctx context.Context, chargeID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM charges WHERE charge_id = $1;`, chargeID)
	if err != nil {
		return fmt.Errorf("failed to delete charge %s: %w", chargeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const balancePaymentColumns = `balance_payment_id, trip_id, side, amount, received_date, payment_mode, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBalancePayment(row pgx.Row) (models.BalancePayment, error) {
	var m models.BalancePayment
	err := row.Scan(
		&m.BalancePaymentID, &m.TripID, &m.Side, &m.Amount, &m.ReceivedDate, &m.PaymentMode, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerRepository) ListBalancePayments(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.BalancePayment, error) {
	query := `SELECT ` + balancePaymentColumns + ` FROM balance_payments WHERE trip_id = $1`
	args := []interface{}{tripID}
	if side != nil {
		query += ` AND side = $2`
		args = append(args, string(*side))
	}
	query += ` ORDER BY received_date DESC, created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance payments for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	payments := []domain.BalancePayment{}
	for rows.Next() {
		m, err := scanBalancePayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainBalancePayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance payment rows: %w", err)
	}
	return payments, nil
}

func (r *PgxLedgerRepository) FindBalancePaymentByID(ctx context.Context, balancePaymentID string) (*domain.BalancePayment, error) {
	query := `SELECT ` + balancePaymentColumns + ` FROM balance_payments WHERE balance_payment_id = $1;`
	m, err := scanBalancePayment(r.db.QueryRow(ctx, query, balancePaymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance payment by ID %s: %w", balancePaymentID, err)
	}
	payment := mapping.ToDomainBalancePayment(m)
	return &payment, nil
}

func (r *PgxLedgerRepository) SaveBalancePayment(ctx context.Context, payment domain.BalancePayment) error {
	m := mapping.ToModelBalancePayment(payment)
	query := `
        INSERT INTO balance_payments (` + balancePaymentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.BalancePaymentID, m.TripID, m.Side, m.Amount, m.ReceivedDate, m.PaymentMode, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save balance payment: %w", translateError(err))
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteBalancePayment(ctx context.Context, balancePaymentID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM balance_payments WHERE balance_payment_id = $1;`, balancePaymentID)
	if err != nil {
		return fmt.Errorf("failed to delete balance payment %s: %w", balancePaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
