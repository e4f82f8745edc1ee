package models

// Party is the database shape of a customer.
type Party struct {
	PartyID       string `db:"party_id"`
	Name          string `db:"name"`
	ContactNo     string `db:"contact_no"`      // Nullable
	PodAddress    string `db:"pod_address"`     // Nullable
	DriveFolderID string `db:"drive_folder_id"` // Nullable
	AuditFields
}
