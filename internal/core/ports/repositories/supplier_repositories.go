package repositories

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// SupplierRepositoryFacade defines persistence operations for suppliers.
type SupplierRepositoryFacade interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// VehicleRepositoryFacade defines persistence operations for vehicles.
type VehicleRepositoryFacade interface {
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListVehiclesBySupplier(ctx context.Context, supplierID string) ([]domain.Vehicle, error)
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID string) error
}
