package mapping

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/models"
)

// ToModelParty converts a domain Party to a model Party.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:       d.PartyID,
		Name:          d.Name,
		ContactNo:     d.ContactNo,
		PodAddress:    d.PodAddress,
		DriveFolderID: d.DriveFolderID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:       m.PartyID,
		Name:          m.Name,
		ContactNo:     m.ContactNo,
		PodAddress:    m.PodAddress,
		DriveFolderID: m.DriveFolderID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
