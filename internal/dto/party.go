package dto

import "github.com/freightbooks/freight_ledger_app/internal/core/domain"

// CreatePartyRequest defines the payload for creating a party.
type CreatePartyRequest struct {
	Name       string `json:"name" binding:"required"`
	ContactNo  string `json:"contactNo"`
	PodAddress string `json:"podAddress"`
}

// UpdatePartyRequest defines the mutable party fields. Nil means "leave as is".
type UpdatePartyRequest struct {
	Name       *string `json:"name"`
	ContactNo  *string `json:"contactNo"`
	PodAddress *string `json:"podAddress"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID       string `json:"partyID"`
	Name          string `json:"name"`
	ContactNo     string `json:"contactNo,omitempty"`
	PodAddress    string `json:"podAddress,omitempty"`
	DriveFolderID string `json:"driveFolderID,omitempty"`
}

// ListPartiesResponse wraps a listing of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to its DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		Name:          p.Name,
		ContactNo:     p.ContactNo,
		PodAddress:    p.PodAddress,
		DriveFolderID: p.DriveFolderID,
	}
}
