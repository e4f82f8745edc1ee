package repositories

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// The ledger repositories are the mutation gateway the balance computation
// sits on top of. Each operation is individually atomic; no multi-record
// transaction is assumed, and the aggregator re-reads the full lists after
// every mutation instead of trusting a cached delta.

// AdvanceRepository defines persistence operations for advances. A nil side
// filter returns both ledgers of the trip.
type AdvanceRepository interface {
	ListAdvances(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.Advance, error)
	FindAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error)
	SaveAdvance(ctx context.Context, advance domain.Advance) error
	DeleteAdvance(ctx context.Context, advanceID string) error
}

// ChargeRepository defines persistence operations for charges.
type ChargeRepository interface {
	ListCharges(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.Charge, error)
	FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error)
	SaveCharge(ctx context.Context, charge domain.Charge) error
	DeleteCharge(ctx context.Context, chargeID string) error
}

// BalancePaymentRepository defines persistence operations for balance payments.
type BalancePaymentRepository interface {
	ListBalancePayments(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.BalancePayment, error)
	FindBalancePaymentByID(ctx context.Context, balancePaymentID string) (*domain.BalancePayment, error)
	SaveBalancePayment(ctx context.Context, payment domain.BalancePayment) error
	DeleteBalancePayment(ctx context.Context, balancePaymentID string) error
}

// LedgerRepositoryFacade combines the three transaction repositories for
// clients that need the whole gateway.
type LedgerRepositoryFacade interface {
	AdvanceRepository
	ChargeRepository
	BalancePaymentRepository
}
