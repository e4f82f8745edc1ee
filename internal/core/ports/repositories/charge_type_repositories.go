package repositories

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// ChargeTypeRepositoryFacade defines persistence operations for charge
// categories. The registry never updates or deletes types: charges reference
// them by identity and the store owns the foreign-key constraint.
type ChargeTypeRepositoryFacade interface {
	SaveChargeType(ctx context.Context, chargeType domain.ChargeType) error
	FindChargeTypeByID(ctx context.Context, chargeTypeID string) (*domain.ChargeType, error)
	// FindChargeTypeByName returns apperrors.ErrNotFound when no type carries
	// the name; used for advisory duplicate prevention.
	FindChargeTypeByName(ctx context.Context, name string) (*domain.ChargeType, error)
	ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error)
}
