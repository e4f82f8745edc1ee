package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
)

// loadingSlipService provides loading slip CRUD. Slips are standalone
// documents and never feed the trip ledger.
type loadingSlipService struct {
	slipRepo  portsrepo.LoadingSlipRepositoryFacade
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewLoadingSlipService creates a new LoadingSlipService.
func NewLoadingSlipService(slipRepo portsrepo.LoadingSlipRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade) portssvc.LoadingSlipSvcFacade {
	return &loadingSlipService{
		slipRepo:  slipRepo,
		partyRepo: partyRepo,
	}
}

// Ensure loadingSlipService implements the portssvc.LoadingSlipSvcFacade interface
var _ portssvc.LoadingSlipSvcFacade = (*loadingSlipService)(nil)

// GetLoadingSlipByID retrieves a loading slip by its ID.
func (s *loadingSlipService) GetLoadingSlipByID(ctx context.Context, loadingSlipID string) (*domain.LoadingSlip, error) {
	slip, err := s.slipRepo.FindLoadingSlipByID(ctx, loadingSlipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("loading slip %s: %w", loadingSlipID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find loading slip %s: %w", loadingSlipID, err)
	}
	return slip, nil
}

// ListLoadingSlips retrieves all loading slips, newest trip date first.
func (s *loadingSlipService) ListLoadingSlips(ctx context.Context) ([]domain.LoadingSlip, error) {
	slips, err := s.slipRepo.ListLoadingSlips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loading slips: %w", err)
	}
	return slips, nil
}

// CreateLoadingSlip persists a new loading slip.
func (s *loadingSlipService) CreateLoadingSlip(ctx context.Context, req dto.CreateLoadingSlipRequest, creatorUserID string) (*domain.LoadingSlip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.partyRepo.FindPartyByID(ctx, req.PartyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: partyID %s is not a known party", apperrors.ErrValidation, req.PartyID)
		}
		return nil, fmt.Errorf("failed to find party %s: %w", req.PartyID, err)
	}
	if req.FreightAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: freightAmount must be positive", apperrors.ErrValidation)
	}
	if req.AdvanceAmount.IsNegative() {
		return nil, fmt.Errorf("%w: advanceAmount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	slip := domain.LoadingSlip{
		LoadingSlipID:    uuid.NewString(),
		PartyID:          req.PartyID,
		VehicleNo:        req.VehicleNo,
		OriginPlace:      req.OriginPlace,
		DestinationPlace: req.DestinationPlace,
		TripDate:         req.TripDate,
		FreightAmount:    req.FreightAmount,
		AdvanceAmount:    req.AdvanceAmount,
		MaterialDesc:     req.MaterialDesc,
		LRNo:             req.LRNo,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.slipRepo.SaveLoadingSlip(ctx, slip); err != nil {
		logger.Error("Failed to save loading slip", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save loading slip: %w", err)
	}

	logger.Info("Loading slip created", slog.String("loading_slip_id", slip.LoadingSlipID), slog.String("party_id", slip.PartyID))
	return &slip, nil
}

// UpdateLoadingSlip updates an existing loading slip's details.
func (s *loadingSlipService) UpdateLoadingSlip(ctx context.Context, loadingSlipID string, req dto.UpdateLoadingSlipRequest, requestingUserID string) (*domain.LoadingSlip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	slip, err := s.GetLoadingSlipByID(ctx, loadingSlipID)
	if err != nil {
		return nil, err
	}

	if req.VehicleNo != nil {
		slip.VehicleNo = *req.VehicleNo
	}
	if req.OriginPlace != nil {
		slip.OriginPlace = *req.OriginPlace
	}
	if req.DestinationPlace != nil {
		slip.DestinationPlace = *req.DestinationPlace
	}
	if req.TripDate != nil {
		slip.TripDate = *req.TripDate
	}
	if req.FreightAmount != nil {
		if req.FreightAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: freightAmount must be positive", apperrors.ErrValidation)
		}
		slip.FreightAmount = *req.FreightAmount
	}
	if req.AdvanceAmount != nil {
		if req.AdvanceAmount.IsNegative() {
			return nil, fmt.Errorf("%w: advanceAmount cannot be negative", apperrors.ErrValidation)
		}
		slip.AdvanceAmount = *req.AdvanceAmount
	}
	if req.MaterialDesc != nil {
		slip.MaterialDesc = *req.MaterialDesc
	}
	if req.LRNo != nil {
		slip.LRNo = *req.LRNo
	}
	if req.Notes != nil {
		slip.Notes = *req.Notes
	}
	slip.LastUpdatedAt = time.Now().UTC()
	slip.LastUpdatedBy = requestingUserID

	if err := s.slipRepo.UpdateLoadingSlip(ctx, *slip); err != nil {
		logger.Error("Failed to update loading slip", slog.String("loading_slip_id", loadingSlipID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update loading slip %s: %w", loadingSlipID, err)
	}

	logger.Info("Loading slip updated", slog.String("loading_slip_id", loadingSlipID), slog.String("updated_by", requestingUserID))
	return slip, nil
}

// DeleteLoadingSlip removes a loading slip.
func (s *loadingSlipService) DeleteLoadingSlip(ctx context.Context, loadingSlipID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetLoadingSlipByID(ctx, loadingSlipID); err != nil {
		return err
	}

	if err := s.slipRepo.DeleteLoadingSlip(ctx, loadingSlipID); err != nil {
		logger.Error("Failed to delete loading slip", slog.String("loading_slip_id", loadingSlipID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete loading slip %s: %w", loadingSlipID, err)
	}

	logger.Info("Loading slip deleted", slog.String("loading_slip_id", loadingSlipID), slog.String("deleted_by", requestingUserID))
	return nil
}
