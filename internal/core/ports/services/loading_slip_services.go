package services

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
)

// LoadingSlipSvcFacade defines operations for loading slips.
type LoadingSlipSvcFacade interface {
	// GetLoadingSlipByID retrieves a loading slip by its ID.
	GetLoadingSlipByID(ctx context.Context, loadingSlipID string) (*domain.LoadingSlip, error)

	// ListLoadingSlips retrieves all loading slips, newest trip date first.
	ListLoadingSlips(ctx context.Context) ([]domain.LoadingSlip, error)

	// CreateLoadingSlip persists a new loading slip.
	CreateLoadingSlip(ctx context.Context, req dto.CreateLoadingSlipRequest, creatorUserID string) (*domain.LoadingSlip, error)

	// UpdateLoadingSlip updates an existing loading slip's details.
	UpdateLoadingSlip(ctx context.Context, loadingSlipID string, req dto.UpdateLoadingSlipRequest, requestingUserID string) (*domain.LoadingSlip, error)

	// DeleteLoadingSlip removes a loading slip.
	DeleteLoadingSlip(ctx context.Context, loadingSlipID string, requestingUserID string) error
}
