package mapping

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/models"
)

// ToModelChargeType converts a domain ChargeType to a model ChargeType.
func ToModelChargeType(d domain.ChargeType) models.ChargeType {
	return models.ChargeType{
		ChargeTypeID: d.ChargeTypeID,
		Name:         d.Name,
		IsCustom:     d.IsCustom,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChargeType converts a model ChargeType to a domain ChargeType.
func ToDomainChargeType(m models.ChargeType) domain.ChargeType {
	return domain.ChargeType{
		ChargeTypeID: m.ChargeTypeID,
		Name:         m.Name,
		IsCustom:     m.IsCustom,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
