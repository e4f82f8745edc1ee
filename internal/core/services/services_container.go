package services

import (
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The storage and locker arguments are optional:
// a nil storage disables POD uploads and a nil locker runs ledger mutations
// unserialized.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, storage portssvc.DocStorageSvc, locker portssvc.TripLockerSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo, repos.TripRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo, repos.VehicleRepo)
	container.ChargeType = NewChargeTypeService(repos.ChargeTypeRepo)
	container.Trip = NewTripService(repos.TripRepo, repos.LedgerRepo, repos.PartyRepo, repos.VehicleRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.TripRepo, repos.ChargeTypeRepo, locker)
	container.Pod = NewPodService(repos.PodRepo, repos.TripRepo, repos.PartyRepo, repos.VehicleRepo, storage)
	container.LoadingSlip = NewLoadingSlipService(repos.LoadingSlipRepo, repos.PartyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
