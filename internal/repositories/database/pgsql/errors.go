package pgsql

import (
	"errors"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError maps Postgres constraint failures to the sentinel errors
// services branch on. 23505 is unique_violation, 23503 foreign_key_violation.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.ErrDuplicate
		case "23503":
			return apperrors.ErrConflict
		}
	}
	return err
}
