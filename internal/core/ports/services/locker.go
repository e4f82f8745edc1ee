package services

import "context"

// TripLockerSvc serializes ledger mutations per trip. Implementations hold
// the lock for the duration of fn. A nil locker in the ledger service means
// mutations run unserialized.
type TripLockerSvc interface {
	// WithTripLock runs fn while holding an exclusive lock on the trip.
	WithTripLock(ctx context.Context, tripID string, fn func(ctx context.Context) error) error
}
