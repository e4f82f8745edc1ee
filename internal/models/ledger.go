package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSide mirrors the transaction_side enum in the database.
type TransactionSide string

const (
	SideParty    TransactionSide = "party"
	SideSupplier TransactionSide = "supplier"
)

// PaymentMode mirrors the payment_mode enum in the database.
type PaymentMode string

// ChargeOperation mirrors the charge_operation enum in the database.
type ChargeOperation string

// Advance is the database shape of an advance payment.
type Advance struct {
	AdvanceID    string          `db:"advance_id"`
	TripID       string          `db:"trip_id"`
	Side         TransactionSide `db:"side"`
	Amount       decimal.Decimal `db:"amount"`
	ReceivedDate time.Time       `db:"received_date"`
	PaymentMode  PaymentMode     `db:"payment_mode"`
	Notes        string          `db:"notes"` // Nullable
	AuditFields
}

// Charge is the database shape of a ledger charge.
type Charge struct {
	ChargeID     string          `db:"charge_id"`
	TripID       string          `db:"trip_id"`
	Side         TransactionSide `db:"side"`
	ChargeTypeID string          `db:"charge_type_id"`
	Operation    ChargeOperation `db:"operation"`
	Amount       decimal.Decimal `db:"amount"`
	Notes        string          `db:"notes"` // Nullable
	AuditFields
}

// BalancePayment is the database shape of a settlement payment.
type BalancePayment struct {
	BalancePaymentID string          `db:"balance_payment_id"`
	TripID           string          `db:"trip_id"`
	Side             TransactionSide `db:"side"`
	Amount           decimal.Decimal `db:"amount"`
	ReceivedDate     time.Time       `db:"received_date"`
	PaymentMode      PaymentMode     `db:"payment_mode"`
	Notes            string          `db:"notes"` // Nullable
	AuditFields
}
