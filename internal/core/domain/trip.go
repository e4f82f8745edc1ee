package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	// StatusOpen is the initial state of every trip.
	StatusOpen TripStatus = "open"
	// StatusPodReceived means the proof of delivery has been uploaded.
	// Clearing the POD flag moves the trip back to open.
	StatusPodReceived TripStatus = "pod_received"
	// StatusSettled is terminal and only entered by an explicit settle action.
	StatusSettled TripStatus = "settled"
)

// Trip is a single freight job: a party pays for the haul, a supplier's
// vehicle carries it. Freight is tracked separately for each side.
type Trip struct {
	TripID          string          `json:"tripID"`
	Date            time.Time       `json:"date"`
	PartyID         string          `json:"partyID"`
	VehicleID       string          `json:"vehicleID"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	FreightParty    decimal.Decimal `json:"freightParty"`
	FreightSupplier decimal.Decimal `json:"freightSupplier"`
	LRNumber        string          `json:"lrNumber"`
	MaterialDesc    string          `json:"materialDesc"`
	Notes           string          `json:"notes"`
	PodUploaded     bool            `json:"podUploaded"`
	DriveFolderID   string          `json:"driveFolderID"`
	DriveFolderName string          `json:"driveFolderName"`
	Status          TripStatus      `json:"status"`
	AuditFields
}

// FreightFor returns the freight figure for the given ledger side.
func (t Trip) FreightFor(side TransactionSide) decimal.Decimal {
	if side == SideSupplier {
		return t.FreightSupplier
	}
	return t.FreightParty
}

// StatusForPodFlag is the single place the POD toggle drives the trip
// lifecycle: open becomes pod_received when the flag is set, pod_received
// falls back to open when it is cleared, and settled is never touched by
// the toggle.
func StatusForPodFlag(current TripStatus, podUploaded bool) TripStatus {
	if current == StatusSettled {
		return StatusSettled
	}
	if podUploaded {
		return StatusPodReceived
	}
	return StatusOpen
}
