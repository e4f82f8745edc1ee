package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
)

// supplierService provides supplier and vehicle CRUD.
type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
	vehicleRepo  portsrepo.VehicleRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade, vehicleRepo portsrepo.VehicleRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{
		supplierRepo: supplierRepo,
		vehicleRepo:  vehicleRepo,
	}
}

// Ensure supplierService implements the portssvc.SupplierSvcFacade interface
var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

// GetSupplierByID retrieves a supplier by its ID.
func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("supplier %s: %w", supplierID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return supplier, nil
}

// ListSuppliers retrieves all suppliers, ordered by name.
func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

// CreateSupplier persists a new supplier.
func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       name,
		ContactNo:  req.ContactNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: supplier %q already exists", apperrors.ErrDuplicate, name)
		}
		logger.Error("Failed to save supplier", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID), slog.String("name", name))
	return &supplier, nil
}

// UpdateSupplier updates an existing supplier's details.
func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	supplier, err := s.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		supplier.Name = name
	}
	if req.ContactNo != nil {
		supplier.ContactNo = *req.ContactNo
	}
	supplier.LastUpdatedAt = time.Now().UTC()
	supplier.LastUpdatedBy = requestingUserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		logger.Error("Failed to update supplier", slog.String("supplier_id", supplierID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update supplier %s: %w", supplierID, err)
	}

	logger.Info("Supplier updated", slog.String("supplier_id", supplierID), slog.String("updated_by", requestingUserID))
	return supplier, nil
}

// DeleteSupplier removes a supplier together with its registered vehicles.
// The store blocks the delete while any of those vehicles still has trips.
func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetSupplierByID(ctx, supplierID); err != nil {
		return err
	}

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("%w: supplier %s has vehicles with trips", apperrors.ErrConflict, supplierID)
		}
		logger.Error("Failed to delete supplier", slog.String("supplier_id", supplierID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}

	logger.Info("Supplier deleted", slog.String("supplier_id", supplierID), slog.String("deleted_by", requestingUserID))
	return nil
}

// GetVehicleByID retrieves a vehicle by its ID.
func (s *supplierService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("vehicle %s: %w", vehicleID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

// ListVehiclesBySupplier retrieves a supplier's vehicles.
func (s *supplierService) ListVehiclesBySupplier(ctx context.Context, supplierID string) ([]domain.Vehicle, error) {
	if _, err := s.GetSupplierByID(ctx, supplierID); err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleRepo.ListVehiclesBySupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles for supplier %s: %w", supplierID, err)
	}
	return vehicles, nil
}

// CreateVehicle registers a vehicle under a supplier.
func (s *supplierService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	vehicleNo := strings.ToUpper(strings.TrimSpace(req.VehicleNo))
	if vehicleNo == "" {
		return nil, fmt.Errorf("%w: vehicleNo is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	vehicle := domain.Vehicle{
		VehicleID:  uuid.NewString(),
		SupplierID: req.SupplierID,
		VehicleNo:  vehicleNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: vehicle %q is already registered", apperrors.ErrDuplicate, vehicleNo)
		}
		logger.Error("Failed to save vehicle", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save vehicle: %w", err)
	}

	logger.Info("Vehicle created", slog.String("vehicle_id", vehicle.VehicleID), slog.String("vehicle_no", vehicleNo))
	return &vehicle, nil
}

// UpdateVehicle updates a vehicle's details.
func (s *supplierService) UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, requestingUserID string) (*domain.Vehicle, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vehicle, err := s.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.VehicleNo != nil {
		vehicleNo := strings.ToUpper(strings.TrimSpace(*req.VehicleNo))
		if vehicleNo == "" {
			return nil, fmt.Errorf("%w: vehicleNo cannot be empty", apperrors.ErrValidation)
		}
		vehicle.VehicleNo = vehicleNo
	}
	vehicle.LastUpdatedAt = time.Now().UTC()
	vehicle.LastUpdatedBy = requestingUserID

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		logger.Error("Failed to update vehicle", slog.String("vehicle_id", vehicleID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update vehicle %s: %w", vehicleID, err)
	}

	logger.Info("Vehicle updated", slog.String("vehicle_id", vehicleID), slog.String("updated_by", requestingUserID))
	return vehicle, nil
}

// DeleteVehicle removes a vehicle. The store blocks the delete while trips
// still reference it.
func (s *supplierService) DeleteVehicle(ctx context.Context, vehicleID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetVehicleByID(ctx, vehicleID); err != nil {
		return err
	}

	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("%w: vehicle %s has trips", apperrors.ErrConflict, vehicleID)
		}
		logger.Error("Failed to delete vehicle", slog.String("vehicle_id", vehicleID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}

	logger.Info("Vehicle deleted", slog.String("vehicle_id", vehicleID), slog.String("deleted_by", requestingUserID))
	return nil
}
