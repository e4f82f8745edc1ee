package mapping

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip.
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:          d.TripID,
		Date:            d.Date,
		PartyID:         d.PartyID,
		VehicleID:       d.VehicleID,
		Origin:          d.Origin,
		Destination:     d.Destination,
		FreightParty:    d.FreightParty,
		FreightSupplier: d.FreightSupplier,
		LRNumber:        d.LRNumber,
		MaterialDesc:    d.MaterialDesc,
		Notes:           d.Notes,
		PodUploaded:     d.PodUploaded,
		DriveFolderID:   d.DriveFolderID,
		DriveFolderName: d.DriveFolderName,
		Status:          models.TripStatus(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrip converts a model Trip to a domain Trip.
func ToDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:          m.TripID,
		Date:            m.Date,
		PartyID:         m.PartyID,
		VehicleID:       m.VehicleID,
		Origin:          m.Origin,
		Destination:     m.Destination,
		FreightParty:    m.FreightParty,
		FreightSupplier: m.FreightSupplier,
		LRNumber:        m.LRNumber,
		MaterialDesc:    m.MaterialDesc,
		Notes:           m.Notes,
		PodUploaded:     m.PodUploaded,
		DriveFolderID:   m.DriveFolderID,
		DriveFolderName: m.DriveFolderName,
		Status:          domain.TripStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
