package services

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
)

// LedgerReaderSvc defines read operations over a trip's transactions
type LedgerReaderSvc interface {
	// ListAdvances retrieves a trip's advances, optionally filtered by side.
	ListAdvances(ctx context.Context, tripID string, params dto.ListTransactionsParams) ([]domain.Advance, error)

	// ListCharges retrieves a trip's charges, optionally filtered by side.
	ListCharges(ctx context.Context, tripID string, params dto.ListTransactionsParams) ([]domain.Charge, error)

	// ListBalancePayments retrieves a trip's balance payments, optionally filtered by side.
	ListBalancePayments(ctx context.Context, tripID string, params dto.ListTransactionsParams) ([]domain.BalancePayment, error)
}

// AdvanceWriterSvc defines write operations for advances
type AdvanceWriterSvc interface {
	// CreateAdvance records an advance against a trip and returns the record
	// with the recomputed trip balances.
	CreateAdvance(ctx context.Context, tripID string, req dto.CreateAdvanceRequest, creatorUserID string) (*dto.AdvanceMutationResponse, error)

	// DeleteAdvance removes an advance and returns the recomputed trip balances.
	DeleteAdvance(ctx context.Context, tripID string, advanceID string, requestingUserID string) (*domain.TripBalances, error)
}

// ChargeWriterSvc defines write operations for charges
type ChargeWriterSvc interface {
	// CreateCharge records a charge against a trip and returns the record
	// with the recomputed trip balances.
	CreateCharge(ctx context.Context, tripID string, req dto.CreateChargeRequest, creatorUserID string) (*dto.ChargeMutationResponse, error)

	// DeleteCharge removes a charge and returns the recomputed trip balances.
	DeleteCharge(ctx context.Context, tripID string, chargeID string, requestingUserID string) (*domain.TripBalances, error)
}

// BalancePaymentWriterSvc defines write operations for balance payments
type BalancePaymentWriterSvc interface {
	// CreateBalancePayment records a balance payment against a trip. Supplier
	// side payments are rejected until the trip's POD is uploaded.
	CreateBalancePayment(ctx context.Context, tripID string, req dto.CreateBalancePaymentRequest, creatorUserID string) (*dto.BalancePaymentMutationResponse, error)

	// DeleteBalancePayment removes a balance payment and returns the recomputed trip balances.
	DeleteBalancePayment(ctx context.Context, tripID string, balancePaymentID string, requestingUserID string) (*domain.TripBalances, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerReaderSvc
	AdvanceWriterSvc
	ChargeWriterSvc
	BalancePaymentWriterSvc
}
