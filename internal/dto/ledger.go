package dto

import (
	"time"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAdvanceRequest defines the payload for recording an advance.
type CreateAdvanceRequest struct {
	Side         domain.TransactionSide `json:"side" binding:"required,transactionside"`
	Amount       decimal.Decimal        `json:"amount" binding:"required"`
	ReceivedDate time.Time              `json:"receivedDate" binding:"required"`
	PaymentMode  domain.PaymentMode     `json:"paymentMode" binding:"required,paymentmode"`
	Notes        string                 `json:"notes"`
}

// CreateChargeRequest defines the payload for recording a charge.
type CreateChargeRequest struct {
	Side         domain.TransactionSide `json:"side" binding:"required,transactionside"`
	ChargeTypeID string                 `json:"chargeTypeID" binding:"required"`
	Operation    domain.ChargeOperation `json:"operation" binding:"required,chargeoperation"`
	Amount       decimal.Decimal        `json:"amount" binding:"required"`
	Notes        string                 `json:"notes"`
}

// CreateBalancePaymentRequest defines the payload for recording a balance payment.
type CreateBalancePaymentRequest struct {
	Side         domain.TransactionSide `json:"side" binding:"required,transactionside"`
	Amount       decimal.Decimal        `json:"amount" binding:"required"`
	ReceivedDate time.Time              `json:"receivedDate" binding:"required"`
	PaymentMode  domain.PaymentMode     `json:"paymentMode" binding:"required,paymentmode"`
	Notes        string                 `json:"notes"`
}

// ListTransactionsParams holds the optional side filter for ledger listings.
type ListTransactionsParams struct {
	Side *domain.TransactionSide `form:"side" binding:"omitempty,transactionside"`
}

// AdvanceResponse defines the data returned for an advance.
type AdvanceResponse struct {
	AdvanceID    string          `json:"advanceID"`
	TripID       string          `json:"tripID"`
	Side         string          `json:"side"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDate time.Time       `json:"receivedDate"`
	PaymentMode  string          `json:"paymentMode"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ChargeResponse defines the data returned for a charge.
type ChargeResponse struct {
	ChargeID     string          `json:"chargeID"`
	TripID       string          `json:"tripID"`
	Side         string          `json:"side"`
	ChargeTypeID string          `json:"chargeTypeID"`
	Operation    string          `json:"operation"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// BalancePaymentResponse defines the data returned for a balance payment.
type BalancePaymentResponse struct {
	BalancePaymentID string          `json:"balancePaymentID"`
	TripID           string          `json:"tripID"`
	Side             string          `json:"side"`
	Amount           decimal.Decimal `json:"amount"`
	ReceivedDate     time.Time       `json:"receivedDate"`
	PaymentMode      string          `json:"paymentMode"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// AdvanceMutationResponse couples the affected record with the trip's ledger
// summary recomputed after the mutation.
type AdvanceMutationResponse struct {
	Advance  AdvanceResponse      `json:"advance"`
	Balances TripBalancesResponse `json:"balances"`
}

// ChargeMutationResponse couples the affected record with the recomputed summary.
type ChargeMutationResponse struct {
	Charge   ChargeResponse       `json:"charge"`
	Balances TripBalancesResponse `json:"balances"`
}

// BalancePaymentMutationResponse couples the affected record with the recomputed summary.
type BalancePaymentMutationResponse struct {
	BalancePayment BalancePaymentResponse `json:"balancePayment"`
	Balances       TripBalancesResponse   `json:"balances"`
}

// ToAdvanceResponse converts a domain.Advance to its DTO.
func ToAdvanceResponse(a *domain.Advance) AdvanceResponse {
	return AdvanceResponse{
		AdvanceID:    a.AdvanceID,
		TripID:       a.TripID,
		Side:         string(a.Side),
		Amount:       a.Amount,
		ReceivedDate: a.ReceivedDate,
		PaymentMode:  string(a.PaymentMode),
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
	}
}

// ToAdvanceResponses converts a slice of domain.Advance to DTOs.
func ToAdvanceResponses(advances []domain.Advance) []AdvanceResponse {
	responses := make([]AdvanceResponse, len(advances))
	for i, a := range advances {
		responses[i] = ToAdvanceResponse(&a)
	}
	return responses
}

// ToChargeResponse converts a domain.Charge to its DTO.
func ToChargeResponse(c *domain.Charge) ChargeResponse {
	return ChargeResponse{
		ChargeID:     c.ChargeID,
		TripID:       c.TripID,
		Side:         string(c.Side),
		ChargeTypeID: c.ChargeTypeID,
		Operation:    string(c.Operation),
		Amount:       c.Amount,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}

// ToChargeResponses converts a slice of domain.Charge to DTOs.
func ToChargeResponses(charges []domain.Charge) []ChargeResponse {
	responses := make([]ChargeResponse, len(charges))
	for i, c := range charges {
		responses[i] = ToChargeResponse(&c)
	}
	return responses
}

// ToBalancePaymentResponse converts a domain.BalancePayment to its DTO.
func ToBalancePaymentResponse(p *domain.BalancePayment) BalancePaymentResponse {
	return BalancePaymentResponse{
		BalancePaymentID: p.BalancePaymentID,
		TripID:           p.TripID,
		Side:             string(p.Side),
		Amount:           p.Amount,
		ReceivedDate:     p.ReceivedDate,
		PaymentMode:      string(p.PaymentMode),
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
	}
}

// ToBalancePaymentResponses converts a slice of domain.BalancePayment to DTOs.
func ToBalancePaymentResponses(payments []domain.BalancePayment) []BalancePaymentResponse {
	responses := make([]BalancePaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToBalancePaymentResponse(&p)
	}
	return responses
}
