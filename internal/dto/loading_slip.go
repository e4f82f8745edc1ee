package dto

import (
	"time"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoadingSlipRequest defines the payload for creating a loading slip.
type CreateLoadingSlipRequest struct {
	PartyID          string          `json:"partyID" binding:"required"`
	VehicleNo        string          `json:"vehicleNo" binding:"required"`
	OriginPlace      string          `json:"originPlace" binding:"required"`
	DestinationPlace string          `json:"destinationPlace" binding:"required"`
	TripDate         time.Time       `json:"tripDate" binding:"required"`
	FreightAmount    decimal.Decimal `json:"freightAmount" binding:"required"`
	AdvanceAmount    decimal.Decimal `json:"advanceAmount"`
	MaterialDesc     string          `json:"materialDesc"`
	LRNo             string          `json:"lrNo"`
	Notes            string          `json:"notes"`
}

// UpdateLoadingSlipRequest defines the mutable slip fields.
type UpdateLoadingSlipRequest struct {
	VehicleNo        *string          `json:"vehicleNo"`
	OriginPlace      *string          `json:"originPlace"`
	DestinationPlace *string          `json:"destinationPlace"`
	TripDate         *time.Time       `json:"tripDate"`
	FreightAmount    *decimal.Decimal `json:"freightAmount"`
	AdvanceAmount    *decimal.Decimal `json:"advanceAmount"`
	MaterialDesc     *string          `json:"materialDesc"`
	LRNo             *string          `json:"lrNo"`
	Notes            *string          `json:"notes"`
}

// LoadingSlipResponse defines the data returned for a loading slip.
type LoadingSlipResponse struct {
	LoadingSlipID    string          `json:"loadingSlipID"`
	PartyID          string          `json:"partyID"`
	VehicleNo        string          `json:"vehicleNo"`
	OriginPlace      string          `json:"originPlace"`
	DestinationPlace string          `json:"destinationPlace"`
	TripDate         time.Time       `json:"tripDate"`
	FreightAmount    decimal.Decimal `json:"freightAmount"`
	AdvanceAmount    decimal.Decimal `json:"advanceAmount"`
	MaterialDesc     string          `json:"materialDesc,omitempty"`
	LRNo             string          `json:"lrNo,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// ListLoadingSlipsResponse wraps a listing of loading slips.
type ListLoadingSlipsResponse struct {
	LoadingSlips []LoadingSlipResponse `json:"loadingSlips"`
}

// ToLoadingSlipResponse converts a domain.LoadingSlip to its DTO.
func ToLoadingSlipResponse(s *domain.LoadingSlip) LoadingSlipResponse {
	return LoadingSlipResponse{
		LoadingSlipID:    s.LoadingSlipID,
		PartyID:          s.PartyID,
		VehicleNo:        s.VehicleNo,
		OriginPlace:      s.OriginPlace,
		DestinationPlace: s.DestinationPlace,
		TripDate:         s.TripDate,
		FreightAmount:    s.FreightAmount,
		AdvanceAmount:    s.AdvanceAmount,
		MaterialDesc:     s.MaterialDesc,
		LRNo:             s.LRNo,
		Notes:            s.Notes,
	}
}
