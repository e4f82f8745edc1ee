package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
	"github.com/freightbooks/freight_ledger_app/internal/utils/accounting"
)

// tripService provides trip CRUD and the POD driven lifecycle.
type tripService struct {
	tripRepo    portsrepo.TripRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
	vehicleRepo portsrepo.VehicleRepositoryFacade
}

// NewTripService creates a new TripService.
func NewTripService(tripRepo portsrepo.TripRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, vehicleRepo portsrepo.VehicleRepositoryFacade) portssvc.TripSvcFacade {
	return &tripService{
		tripRepo:    tripRepo,
		ledgerRepo:  ledgerRepo,
		partyRepo:   partyRepo,
		vehicleRepo: vehicleRepo,
	}
}

// Ensure tripService implements the portssvc.TripSvcFacade interface
var _ portssvc.TripSvcFacade = (*tripService)(nil)

// GetTripByID retrieves a specific trip by its ID.
func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("trip %s: %w", tripID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find trip %s: %w", tripID, err)
	}
	return trip, nil
}

// ListTrips retrieves a paginated list of trips, newest first.
func (s *tripService) ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	trips, nextToken, err := s.tripRepo.ListTrips(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	responses := make([]dto.TripResponse, len(trips))
	for i, t := range trips {
		responses[i] = dto.ToTripResponse(&t)
	}
	return &dto.ListTripsResponse{Trips: responses, NextToken: nextToken}, nil
}

// ListTripsByParty retrieves trips for a single party. The party's trips are
// bounded in practice, so the repository returns them all and pagination
// parameters only trim the response.
func (s *tripService) ListTripsByParty(ctx context.Context, partyID string, params dto.ListTripsParams) (*dto.ListTripsResponse, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("party %s: %w", partyID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}

	trips, err := s.tripRepo.ListTripsByParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for party %s: %w", partyID, err)
	}

	responses := make([]dto.TripResponse, len(trips))
	for i, t := range trips {
		responses[i] = dto.ToTripResponse(&t)
	}
	return &dto.ListTripsResponse{Trips: responses}, nil
}

// GetTripBalances recomputes the trip's ledger summary on demand.
func (s *tripService) GetTripBalances(ctx context.Context, tripID string) (*domain.TripBalances, error) {
	trip, err := s.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	advances, err := s.ledgerRepo.ListAdvances(ctx, tripID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for trip %s: %w", tripID, err)
	}
	charges, err := s.ledgerRepo.ListCharges(ctx, tripID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges for trip %s: %w", tripID, err)
	}
	payments, err := s.ledgerRepo.ListBalancePayments(ctx, tripID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance payments for trip %s: %w", tripID, err)
	}

	balances := accounting.ComputeTripBalances(*trip, advances, charges, payments)
	return &balances, nil
}

// CreateTrip persists a new trip in the open state with the POD flag clear.
func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.partyRepo.FindPartyByID(ctx, req.PartyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: partyID %s is not a known party", apperrors.ErrValidation, req.PartyID)
		}
		return nil, fmt.Errorf("failed to find party %s: %w", req.PartyID, err)
	}
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vehicleID %s is not a known vehicle", apperrors.ErrValidation, req.VehicleID)
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", req.VehicleID, err)
	}

	now := time.Now().UTC()
	trip := domain.Trip{
		TripID:          uuid.NewString(),
		Date:            req.Date,
		PartyID:         req.PartyID,
		VehicleID:       req.VehicleID,
		Origin:          req.Origin,
		Destination:     req.Destination,
		FreightParty:    req.FreightParty,
		FreightSupplier: req.FreightSupplier,
		LRNumber:        req.LRNumber,
		MaterialDesc:    req.MaterialDesc,
		Notes:           req.Notes,
		PodUploaded:     false,
		Status:          domain.StatusOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		logger.Error("Failed to save trip", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save trip: %w", err)
	}

	logger.Info("Trip created", slog.String("trip_id", trip.TripID), slog.String("party_id", trip.PartyID))
	return &trip, nil
}

// UpdateTrip updates trip details. Nil request fields are left as they are.
// The POD flag and status have their own operations and never move here.
func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, requestingUserID string) (*domain.Trip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		trip.Date = *req.Date
	}
	if req.Origin != nil {
		trip.Origin = *req.Origin
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.FreightParty != nil {
		trip.FreightParty = *req.FreightParty
	}
	if req.FreightSupplier != nil {
		trip.FreightSupplier = *req.FreightSupplier
	}
	if req.LRNumber != nil {
		trip.LRNumber = *req.LRNumber
	}
	if req.MaterialDesc != nil {
		trip.MaterialDesc = *req.MaterialDesc
	}
	if req.Notes != nil {
		trip.Notes = *req.Notes
	}
	trip.LastUpdatedAt = time.Now().UTC()
	trip.LastUpdatedBy = requestingUserID

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		logger.Error("Failed to update trip", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update trip %s: %w", tripID, err)
	}

	logger.Info("Trip updated", slog.String("trip_id", tripID), slog.String("updated_by", requestingUserID))
	return trip, nil
}

// DeleteTrip removes a trip. Child advances, charges, payments and POD
// records cascade in the store.
func (s *tripService) DeleteTrip(ctx context.Context, tripID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetTripByID(ctx, tripID); err != nil {
		return err
	}

	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		logger.Error("Failed to delete trip", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete trip %s: %w", tripID, err)
	}

	logger.Info("Trip deleted", slog.String("trip_id", tripID), slog.String("deleted_by", requestingUserID))
	return nil
}

// SetPodUploaded toggles the trip's POD flag and derives the status from it.
// Toggling is idempotent: setting the flag to its current value changes
// nothing.
func (s *tripService) SetPodUploaded(ctx context.Context, tripID string, podUploaded bool, requestingUserID string) (*domain.Trip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	trip.PodUploaded = podUploaded
	trip.Status = domain.StatusForPodFlag(trip.Status, podUploaded)
	trip.LastUpdatedAt = time.Now().UTC()
	trip.LastUpdatedBy = requestingUserID

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		logger.Error("Failed to set POD flag", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update trip %s: %w", tripID, err)
	}

	logger.Info("Trip POD flag set", slog.String("trip_id", tripID), slog.Bool("pod_uploaded", podUploaded), slog.String("status", string(trip.Status)))
	return trip, nil
}

// SettleTrip marks the trip settled. Settled is terminal; settling again is
// a conflict.
func (s *tripService) SettleTrip(ctx context.Context, tripID string, requestingUserID string) (*domain.Trip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.Status == domain.StatusSettled {
		return nil, fmt.Errorf("%w: trip %s is already settled", apperrors.ErrConflict, tripID)
	}

	trip.Status = domain.StatusSettled
	trip.LastUpdatedAt = time.Now().UTC()
	trip.LastUpdatedBy = requestingUserID

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		logger.Error("Failed to settle trip", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update trip %s: %w", tripID, err)
	}

	logger.Info("Trip settled", slog.String("trip_id", tripID), slog.String("settled_by", requestingUserID))
	return trip, nil
}
