package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PartyRepo       PartyRepositoryFacade
	SupplierRepo    SupplierRepositoryFacade
	VehicleRepo     VehicleRepositoryFacade
	ChargeTypeRepo  ChargeTypeRepositoryFacade
	TripRepo        TripRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
	PodRepo         PodRepositoryFacade
	LoadingSlipRepo LoadingSlipRepositoryFacade
	UserRepo        UserRepositoryFacade
}
