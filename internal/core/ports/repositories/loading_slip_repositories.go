package repositories

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// LoadingSlipRepositoryFacade defines persistence operations for loading slips.
type LoadingSlipRepositoryFacade interface {
	SaveLoadingSlip(ctx context.Context, slip domain.LoadingSlip) error
	FindLoadingSlipByID(ctx context.Context, loadingSlipID string) (*domain.LoadingSlip, error)
	ListLoadingSlips(ctx context.Context) ([]domain.LoadingSlip, error)
	UpdateLoadingSlip(ctx context.Context, slip domain.LoadingSlip) error
	DeleteLoadingSlip(ctx context.Context, loadingSlipID string) error
}
