package domain

import "github.com/shopspring/decimal"

// TripBalances is the derived, read-only ledger summary of a trip. It has no
// identity of its own: it is recomputed on demand from the trip's freight
// figures and its full transaction sets, never persisted or patched in place.
type TripBalances struct {
	TripID          string          `json:"tripID"`
	FreightParty    decimal.Decimal `json:"freightParty"`
	FreightSupplier decimal.Decimal `json:"freightSupplier"`

	PartyAdvancesTotal    decimal.Decimal `json:"partyAdvancesTotal"`
	PartyChargesAdd       decimal.Decimal `json:"partyChargesAdd"`
	PartyChargesDeduct    decimal.Decimal `json:"partyChargesDeduct"`
	PartyBalancePaid      decimal.Decimal `json:"partyBalancePaid"`
	PartyBalanceRemaining decimal.Decimal `json:"partyBalanceRemaining"`

	SupplierAdvancesTotal    decimal.Decimal `json:"supplierAdvancesTotal"`
	SupplierChargesAdd       decimal.Decimal `json:"supplierChargesAdd"`
	SupplierChargesDeduct    decimal.Decimal `json:"supplierChargesDeduct"`
	SupplierBalancePaid      decimal.Decimal `json:"supplierBalancePaid"`
	SupplierBalanceRemaining decimal.Decimal `json:"supplierBalanceRemaining"`
}
