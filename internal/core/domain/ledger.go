package domain

import (
	"fmt"
	"time"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionSide identifies which ledger of a trip a record belongs to.
// The party ledger tracks money owed by the customer; the supplier ledger
// tracks money owed to the vehicle owner. The two are never mixed in a
// single balance computation.
type TransactionSide string

const (
	SideParty    TransactionSide = "party"
	SideSupplier TransactionSide = "supplier"
)

// Valid reports whether the side is one of the two known ledgers.
func (s TransactionSide) Valid() bool {
	return s == SideParty || s == SideSupplier
}

// PaymentMode is how an advance or balance payment was received.
type PaymentMode string

const (
	ModeUPI    PaymentMode = "UPI"
	ModeCash   PaymentMode = "Cash"
	ModeBank   PaymentMode = "Bank"
	ModeCheque PaymentMode = "Cheque"
	ModeFuel   PaymentMode = "Fuel"
	ModeOthers PaymentMode = "Others"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case ModeUPI, ModeCash, ModeBank, ModeCheque, ModeFuel, ModeOthers:
		return true
	}
	return false
}

// ChargeOperation says whether a charge increases or decreases the amount owed.
type ChargeOperation string

const (
	OperationAdd    ChargeOperation = "add"
	OperationDeduct ChargeOperation = "deduct"
)

func (o ChargeOperation) Valid() bool {
	return o == OperationAdd || o == OperationDeduct
}

// Advance is a payment received before final settlement. It always reduces
// the remaining balance on its side.
type Advance struct {
	AdvanceID    string          `json:"advanceID"`
	TripID       string          `json:"tripID"`
	Side         TransactionSide `json:"side"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDate time.Time       `json:"receivedDate"`
	PaymentMode  PaymentMode     `json:"paymentMode"`
	Notes        string          `json:"notes"`
	AuditFields
}

// Validate checks the advance's fields against the ledger invariants.
func (a Advance) Validate() error {
	if a.TripID == "" {
		return fmt.Errorf("%w: tripID is required", apperrors.ErrValidation)
	}
	if !a.Side.Valid() {
		return fmt.Errorf("%w: side must be %q or %q, got %q", apperrors.ErrValidation, SideParty, SideSupplier, a.Side)
	}
	if a.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, a.Amount)
	}
	if !a.PaymentMode.Valid() {
		return fmt.Errorf("%w: paymentMode %q is not a known payment mode", apperrors.ErrValidation, a.PaymentMode)
	}
	return nil
}

// Charge is a line-item adjustment to the amount owed on one side of a trip.
type Charge struct {
	ChargeID     string          `json:"chargeID"`
	TripID       string          `json:"tripID"`
	Side         TransactionSide `json:"side"`
	ChargeTypeID string          `json:"chargeTypeID"`
	Operation    ChargeOperation `json:"operation"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes"`
	AuditFields
}

// Validate checks the charge's fields against the ledger invariants.
func (c Charge) Validate() error {
	if c.TripID == "" {
		return fmt.Errorf("%w: tripID is required", apperrors.ErrValidation)
	}
	if !c.Side.Valid() {
		return fmt.Errorf("%w: side must be %q or %q, got %q", apperrors.ErrValidation, SideParty, SideSupplier, c.Side)
	}
	if c.ChargeTypeID == "" {
		return fmt.Errorf("%w: chargeTypeID is required", apperrors.ErrValidation)
	}
	if !c.Operation.Valid() {
		return fmt.Errorf("%w: operation must be %q or %q, got %q", apperrors.ErrValidation, OperationAdd, OperationDeduct, c.Operation)
	}
	if c.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, c.Amount)
	}
	return nil
}

// BalancePayment is a payment applied against the final balance of a trip,
// as opposed to an advance. Supplier-side balance payments additionally
// require the owning trip's POD to be uploaded at creation time; that rule
// lives in the ledger service, not here.
type BalancePayment struct {
	BalancePaymentID string          `json:"balancePaymentID"`
	TripID           string          `json:"tripID"`
	Side             TransactionSide `json:"side"`
	Amount           decimal.Decimal `json:"amount"`
	ReceivedDate     time.Time       `json:"receivedDate"`
	PaymentMode      PaymentMode     `json:"paymentMode"`
	Notes            string          `json:"notes"`
	AuditFields
}

// Validate checks the payment's fields against the ledger invariants.
func (p BalancePayment) Validate() error {
	if p.TripID == "" {
		return fmt.Errorf("%w: tripID is required", apperrors.ErrValidation)
	}
	if !p.Side.Valid() {
		return fmt.Errorf("%w: side must be %q or %q, got %q", apperrors.ErrValidation, SideParty, SideSupplier, p.Side)
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, p.Amount)
	}
	if !p.PaymentMode.Valid() {
		return fmt.Errorf("%w: paymentMode %q is not a known payment mode", apperrors.ErrValidation, p.PaymentMode)
	}
	return nil
}
