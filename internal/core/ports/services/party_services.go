package services

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
)

// PartyReaderSvc defines read operations for party data
type PartyReaderSvc interface {
	// GetPartyByID retrieves a party by its ID.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties, ordered by name.
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for party data
type PartyWriterSvc interface {
	// CreateParty persists a new party.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error)

	// DeleteParty removes a party. Parties with trips cannot be removed.
	DeleteParty(ctx context.Context, partyID string, requestingUserID string) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
