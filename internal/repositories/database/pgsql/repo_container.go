package pgsql

import (
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:       newPgxPartyRepository(dbPool),
		SupplierRepo:    newPgxSupplierRepository(dbPool),
		VehicleRepo:     newPgxVehicleRepository(dbPool),
		ChargeTypeRepo:  newPgxChargeTypeRepository(dbPool),
		TripRepo:        newPgxTripRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		PodRepo:         newPgxPodRepository(dbPool),
		LoadingSlipRepo: newPgxLoadingSlipRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
