package repositories

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// TripReader defines read operations for trip data.
type TripReader interface {
	// FindTripByID retrieves a specific trip by its unique identifier.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves a paginated list of trips ordered by date descending,
	// using token-based pagination. It returns the trips, a token for the next
	// page, and an error.
	ListTrips(ctx context.Context, limit int, nextToken *string) ([]domain.Trip, *string, error)

	// ListTripsByParty retrieves every trip belonging to a party.
	ListTripsByParty(ctx context.Context, partyID string) ([]domain.Trip, error)
}

// TripWriter defines write operations for trip data.
type TripWriter interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip replaces the mutable fields of an existing trip.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip. Child ledger records cascade in the store.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripRepositoryFacade combines all trip-related repository interfaces.
type TripRepositoryFacade interface {
	TripReader
	TripWriter
}
