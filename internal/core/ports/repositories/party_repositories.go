package repositories

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
)

// PartyReader defines read operations for party data.
type PartyReader interface {
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data.
type PartyWriter interface {
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party) error
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
