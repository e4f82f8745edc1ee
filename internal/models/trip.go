package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus mirrors the trip_status enum in the database.
type TripStatus string

const (
	TripOpen        TripStatus = "open"
	TripPodReceived TripStatus = "pod_received"
	TripSettled     TripStatus = "settled"
)

// Trip is the database shape of a freight job.
type Trip struct {
	TripID          string          `db:"trip_id"`
	Date            time.Time       `db:"date"`
	PartyID         string          `db:"party_id"`
	VehicleID       string          `db:"vehicle_id"`
	Origin          string          `db:"origin"`
	Destination     string          `db:"destination"`
	FreightParty    decimal.Decimal `db:"freight_party"`
	FreightSupplier decimal.Decimal `db:"freight_supplier"`
	LRNumber        string          `db:"lr_number"` // Nullable
	MaterialDesc    string          `db:"material_desc"`
	Notes           string          `db:"notes"`
	PodUploaded     bool            `db:"pod_uploaded"`
	DriveFolderID   string          `db:"drive_folder_id"`   // Nullable
	DriveFolderName string          `db:"drive_folder_name"` // Nullable
	Status          TripStatus      `db:"status"`
	AuditFields
}
