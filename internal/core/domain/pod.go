package domain

import "time"

// Pod is one proof-of-delivery image stored on the Drive, referenced by the
// trip it belongs to.
type Pod struct {
	PodID       string    `json:"podID"`
	TripID      string    `json:"tripID"`
	ImageURL    string    `json:"imageURL"`    // Drive web view link
	DriveFileID string    `json:"driveFileID"` // Drive file ID
	FileName    string    `json:"fileName"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
