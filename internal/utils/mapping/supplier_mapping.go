package mapping

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier.
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		ContactNo:   d.ContactNo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		ContactNo:   m.ContactNo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVehicle converts a domain Vehicle to a model Vehicle.
func ToModelVehicle(d domain.Vehicle) models.Vehicle {
	return models.Vehicle{
		VehicleID:   d.VehicleID,
		SupplierID:  d.SupplierID,
		VehicleNo:   d.VehicleNo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVehicle converts a model Vehicle to a domain Vehicle.
func ToDomainVehicle(m models.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		VehicleID:   m.VehicleID,
		SupplierID:  m.SupplierID,
		VehicleNo:   m.VehicleNo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
