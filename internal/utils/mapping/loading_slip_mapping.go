package mapping

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/models"
)

// ToModelLoadingSlip converts a domain LoadingSlip to a model LoadingSlip.
func ToModelLoadingSlip(d domain.LoadingSlip) models.LoadingSlip {
	return models.LoadingSlip{
		LoadingSlipID:    d.LoadingSlipID,
		PartyID:          d.PartyID,
		VehicleNo:        d.VehicleNo,
		OriginPlace:      d.OriginPlace,
		DestinationPlace: d.DestinationPlace,
		TripDate:         d.TripDate,
		FreightAmount:    d.FreightAmount,
		AdvanceAmount:    d.AdvanceAmount,
		MaterialDesc:     d.MaterialDesc,
		LRNo:             d.LRNo,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoadingSlip converts a model LoadingSlip to a domain LoadingSlip.
func ToDomainLoadingSlip(m models.LoadingSlip) domain.LoadingSlip {
	return domain.LoadingSlip{
		LoadingSlipID:    m.LoadingSlipID,
		PartyID:          m.PartyID,
		VehicleNo:        m.VehicleNo,
		OriginPlace:      m.OriginPlace,
		DestinationPlace: m.DestinationPlace,
		TripDate:         m.TripDate,
		FreightAmount:    m.FreightAmount,
		AdvanceAmount:    m.AdvanceAmount,
		MaterialDesc:     m.MaterialDesc,
		LRNo:             m.LRNo,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
