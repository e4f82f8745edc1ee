package dto

import "github.com/freightbooks/freight_ledger_app/internal/core/domain"

// CreateSupplierRequest defines the payload for creating a supplier.
type CreateSupplierRequest struct {
	Name      string `json:"name" binding:"required"`
	ContactNo string `json:"contactNo"`
}

// UpdateSupplierRequest defines the mutable supplier fields.
type UpdateSupplierRequest struct {
	Name      *string `json:"name"`
	ContactNo *string `json:"contactNo"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	ContactNo  string `json:"contactNo,omitempty"`
}

// ListSuppliersResponse wraps a listing of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain.Supplier to its DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		ContactNo:  s.ContactNo,
	}
}

// CreateVehicleRequest defines the payload for registering a vehicle.
type CreateVehicleRequest struct {
	SupplierID string `json:"supplierID" binding:"required"`
	VehicleNo  string `json:"vehicleNo" binding:"required"`
}

// UpdateVehicleRequest defines the mutable vehicle fields.
type UpdateVehicleRequest struct {
	VehicleNo *string `json:"vehicleNo"`
}

// VehicleResponse defines the data returned for a vehicle.
type VehicleResponse struct {
	VehicleID  string `json:"vehicleID"`
	SupplierID string `json:"supplierID"`
	VehicleNo  string `json:"vehicleNo"`
}

// ListVehiclesResponse wraps a listing of vehicles.
type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// ToVehicleResponse converts a domain.Vehicle to its DTO.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:  v.VehicleID,
		SupplierID: v.SupplierID,
		VehicleNo:  v.VehicleNo,
	}
}
