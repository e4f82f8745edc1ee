package services

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
)

// SupplierReaderSvc defines read operations for supplier data
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a supplier by its ID.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers, ordered by name.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier data
type SupplierWriterSvc interface {
	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)

	// UpdateSupplier updates an existing supplier's details.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier. Suppliers with trips cannot be removed.
	DeleteSupplier(ctx context.Context, supplierID string, requestingUserID string) error
}

// VehicleSvc defines operations for a supplier's vehicles
type VehicleSvc interface {
	// GetVehicleByID retrieves a vehicle by its ID.
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// ListVehiclesBySupplier retrieves a supplier's vehicles.
	ListVehiclesBySupplier(ctx context.Context, supplierID string) ([]domain.Vehicle, error)

	// CreateVehicle registers a vehicle under a supplier.
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error)

	// UpdateVehicle updates a vehicle's details.
	UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, requestingUserID string) (*domain.Vehicle, error)

	// DeleteVehicle removes a vehicle.
	DeleteVehicle(ctx context.Context, vehicleID string, requestingUserID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
	VehicleSvc
}
