package mapping

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/models"
)

// ToModelAdvance converts a domain Advance to a model Advance.
func ToModelAdvance(d domain.Advance) models.Advance {
	return models.Advance{
		AdvanceID:    d.AdvanceID,
		TripID:       d.TripID,
		Side:         models.TransactionSide(d.Side),
		Amount:       d.Amount,
		ReceivedDate: d.ReceivedDate,
		PaymentMode:  models.PaymentMode(d.PaymentMode),
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdvance converts a model Advance to a domain Advance.
func ToDomainAdvance(m models.Advance) domain.Advance {
	return domain.Advance{
		AdvanceID:    m.AdvanceID,
		TripID:       m.TripID,
		Side:         domain.TransactionSide(m.Side),
		Amount:       m.Amount,
		ReceivedDate: m.ReceivedDate,
		PaymentMode:  domain.PaymentMode(m.PaymentMode),
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCharge converts a domain Charge to a model Charge.
func ToModelCharge(d domain.Charge) models.Charge {
	return models.Charge{
		ChargeID:     d.ChargeID,
		TripID:       d.TripID,
		Side:         models.TransactionSide(d.Side),
		ChargeTypeID: d.ChargeTypeID,
		Operation:    models.ChargeOperation(d.Operation),
		Amount:       d.Amount,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCharge converts a model Charge to a domain Charge.
func ToDomainCharge(m models.Charge) domain.Charge {
	return domain.Charge{
		ChargeID:     m.ChargeID,
		TripID:       m.TripID,
		Side:         domain.TransactionSide(m.Side),
		ChargeTypeID: m.ChargeTypeID,
		Operation:    domain.ChargeOperation(m.Operation),
		Amount:       m.Amount,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBalancePayment converts a domain BalancePayment to a model BalancePayment.
func ToModelBalancePayment(d domain.BalancePayment) models.BalancePayment {
	return models.BalancePayment{
		BalancePaymentID: d.BalancePaymentID,
		TripID:           d.TripID,
		Side:             models.TransactionSide(d.Side),
		Amount:           d.Amount,
		ReceivedDate:     d.ReceivedDate,
		PaymentMode:      models.PaymentMode(d.PaymentMode),
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBalancePayment converts a model BalancePayment to a domain BalancePayment.
func ToDomainBalancePayment(m models.BalancePayment) domain.BalancePayment {
	return domain.BalancePayment{
		BalancePaymentID: m.BalancePaymentID,
		TripID:           m.TripID,
		Side:             domain.TransactionSide(m.Side),
		Amount:           m.Amount,
		ReceivedDate:     m.ReceivedDate,
		PaymentMode:      domain.PaymentMode(m.PaymentMode),
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
