package services

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
)

// TripReaderSvc defines read operations for trip data
type TripReaderSvc interface {
	// GetTripByID retrieves a specific trip by its ID.
	GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves a paginated list of trips, newest first.
	ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error)

	// ListTripsByParty retrieves a paginated list of trips for a single party.
	ListTripsByParty(ctx context.Context, partyID string, params dto.ListTripsParams) (*dto.ListTripsResponse, error)

	// GetTripBalances recomputes the trip's ledger summary from its stored
	// freights and transactions.
	GetTripBalances(ctx context.Context, tripID string) (*domain.TripBalances, error)
}

// TripWriterSvc defines write operations for trip data
type TripWriterSvc interface {
	// CreateTrip persists a new trip in the open state.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error)

	// UpdateTrip updates trip details. The POD flag and status are not
	// reachable from here.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, requestingUserID string) (*domain.Trip, error)

	// DeleteTrip removes a trip and its child transactions.
	DeleteTrip(ctx context.Context, tripID string, requestingUserID string) error
}

// TripLifecycleSvc defines the operations that move a trip through its states.
type TripLifecycleSvc interface {
	// SetPodUploaded toggles the trip's POD flag and derives the matching
	// status. Settled trips keep their status.
	SetPodUploaded(ctx context.Context, tripID string, podUploaded bool, requestingUserID string) (*domain.Trip, error)

	// SettleTrip marks the trip settled. Settling twice is a conflict.
	SettleTrip(ctx context.Context, tripID string, requestingUserID string) (*domain.Trip, error)
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
	TripLifecycleSvc
}
