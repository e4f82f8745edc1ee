package domain

// Party is a customer of the brokerage: the one who pays the party-side
// freight. Each party may own a Drive folder that holds its trips' POD images.
type Party struct {
	PartyID       string `json:"partyID"`
	Name          string `json:"name"`
	ContactNo     string `json:"contactNo"`
	PodAddress    string `json:"podAddress"`
	DriveFolderID string `json:"driveFolderID"`
	AuditFields
}
