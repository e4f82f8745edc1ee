package models

import "time"

// Pod is the database shape of a proof-of-delivery image record.
type Pod struct {
	PodID       string    `db:"pod_id"`
	TripID      string    `db:"trip_id"`
	ImageURL    string    `db:"image_url"`
	DriveFileID string    `db:"drive_file_id"`
	FileName    string    `db:"file_name"`
	UploadedAt  time.Time `db:"uploaded_at"`
}
