package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoadingSlip is a pre-trip document promising a vehicle to a party. It is
// standalone bookkeeping: slips are not linked to trips and take no part in
// the ledger aggregation.
type LoadingSlip struct {
	LoadingSlipID    string          `json:"loadingSlipID"`
	PartyID          string          `json:"partyID"`
	VehicleNo        string          `json:"vehicleNo"`
	OriginPlace      string          `json:"originPlace"`
	DestinationPlace string          `json:"destinationPlace"`
	TripDate         time.Time       `json:"tripDate"`
	FreightAmount    decimal.Decimal `json:"freightAmount"`
	AdvanceAmount    decimal.Decimal `json:"advanceAmount"`
	MaterialDesc     string          `json:"materialDesc"`
	LRNo             string          `json:"lrNo"`
	Notes            string          `json:"notes"`
	AuditFields
}
