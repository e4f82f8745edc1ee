package dto

import (
	"time"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTripRequest defines the payload for creating a trip.
type CreateTripRequest struct {
	Date            time.Time       `json:"date" binding:"required"`
	PartyID         string          `json:"partyID" binding:"required"`
	VehicleID       string          `json:"vehicleID" binding:"required"`
	Origin          string          `json:"origin" binding:"required"`
	Destination     string          `json:"destination" binding:"required"`
	FreightParty    decimal.Decimal `json:"freightParty" binding:"required"`
	FreightSupplier decimal.Decimal `json:"freightSupplier" binding:"required"`
	LRNumber        string          `json:"lrNumber"`
	MaterialDesc    string          `json:"materialDesc"`
	Notes           string          `json:"notes"`
}

// UpdateTripRequest defines the mutable trip fields. Nil means "leave as is".
// The POD flag and status are deliberately absent: they only move through the
// POD toggle and settle operations.
type UpdateTripRequest struct {
	Date            *time.Time       `json:"date"`
	Origin          *string          `json:"origin"`
	Destination     *string          `json:"destination"`
	FreightParty    *decimal.Decimal `json:"freightParty"`
	FreightSupplier *decimal.Decimal `json:"freightSupplier"`
	LRNumber        *string          `json:"lrNumber"`
	MaterialDesc    *string          `json:"materialDesc"`
	Notes           *string          `json:"notes"`
}

// SetPodStatusRequest toggles the trip's POD flag.
type SetPodStatusRequest struct {
	PodUploaded *bool `json:"podUploaded" binding:"required"`
}

// ListTripsParams holds query parameters for listing trips.
type ListTripsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// TripResponse defines the data returned for a trip.
type TripResponse struct {
	TripID          string          `json:"tripID"`
	Date            time.Time       `json:"date"`
	PartyID         string          `json:"partyID"`
	VehicleID       string          `json:"vehicleID"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	FreightParty    decimal.Decimal `json:"freightParty"`
	FreightSupplier decimal.Decimal `json:"freightSupplier"`
	LRNumber        string          `json:"lrNumber,omitempty"`
	MaterialDesc    string          `json:"materialDesc,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	PodUploaded     bool            `json:"podUploaded"`
	DriveFolderID   string          `json:"driveFolderID,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListTripsResponse wraps a page of trips and the token for the next page.
type ListTripsResponse struct {
	Trips     []TripResponse `json:"trips"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// TripBalancesResponse is the wire shape of the derived ledger summary.
type TripBalancesResponse struct {
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

// ToTripResponse converts a domain.Trip to TripResponse DTO.
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:          t.TripID,
		Date:            t.Date,
		PartyID:         t.PartyID,
		VehicleID:       t.VehicleID,
		Origin:          t.Origin,
		Destination:     t.Destination,
		FreightParty:    t.FreightParty,
		FreightSupplier: t.FreightSupplier,
		LRNumber:        t.LRNumber,
		MaterialDesc:    t.MaterialDesc,
		Notes:           t.Notes,
		PodUploaded:     t.PodUploaded,
		DriveFolderID:   t.DriveFolderID,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
	}
}

// ToTripBalancesResponse converts a domain.TripBalances to its DTO.
func ToTripBalancesResponse(b domain.TripBalances) TripBalancesResponse {
	return TripBalancesResponse{
		TripID:          b.TripID,
		FreightParty:    b.FreightParty,
		FreightSupplier: b.FreightSupplier,

		PartyAdvancesTotal:    b.PartyAdvancesTotal,
		PartyChargesAdd:       b.PartyChargesAdd,
		PartyChargesDeduct:    b.PartyChargesDeduct,
		PartyBalancePaid:      b.PartyBalancePaid,
		PartyBalanceRemaining: b.PartyBalanceRemaining,

		SupplierAdvancesTotal:    b.SupplierAdvancesTotal,
		SupplierChargesAdd:       b.SupplierChargesAdd,
		SupplierChargesDeduct:    b.SupplierChargesDeduct,
		SupplierBalancePaid:      b.SupplierBalancePaid,
		SupplierBalanceRemaining: b.SupplierBalanceRemaining,
	}
}
