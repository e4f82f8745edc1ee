package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoadingSlip is the database shape of a loading slip.
type LoadingSlip struct {
	LoadingSlipID    string          `db:"loading_slip_id"`
	PartyID          string          `db:"party_id"`
	VehicleNo        string          `db:"vehicle_no"`
	OriginPlace      string          `db:"origin_place"`
	DestinationPlace string          `db:"destination_place"`
	TripDate         time.Time       `db:"trip_date"`
	FreightAmount    decimal.Decimal `db:"freight_amount"`
	AdvanceAmount    decimal.Decimal `db:"advance_amount"`
	MaterialDesc     string          `db:"material_desc"` // Nullable
	LRNo             string          `db:"lr_no"`         // Nullable
	Notes            string          `db:"notes"`         // Nullable
	AuditFields
}
