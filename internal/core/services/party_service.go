package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
)

// partyService provides party CRUD.
type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
	tripRepo  portsrepo.TripRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, tripRepo portsrepo.TripRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{
		partyRepo: partyRepo,
		tripRepo:  tripRepo,
	}
}

// Ensure partyService implements the portssvc.PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// GetPartyByID retrieves a party by its ID.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("party %s: %w", partyID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	return party, nil
}

// ListParties retrieves all parties, ordered by name.
func (s *partyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}

// CreateParty persists a new party.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	party := domain.Party{
		PartyID:    uuid.NewString(),
		Name:       name,
		ContactNo:  req.ContactNo,
		PodAddress: req.PodAddress,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: party %q already exists", apperrors.ErrDuplicate, name)
		}
		logger.Error("Failed to save party", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("name", name))
	return &party, nil
}

// UpdateParty updates an existing party's details.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.GetPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		party.Name = name
	}
	if req.ContactNo != nil {
		party.ContactNo = *req.ContactNo
	}
	if req.PodAddress != nil {
		party.PodAddress = *req.PodAddress
	}
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = requestingUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party", slog.String("party_id", partyID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update party %s: %w", partyID, err)
	}

	logger.Info("Party updated", slog.String("party_id", partyID), slog.String("updated_by", requestingUserID))
	return party, nil
}

// DeleteParty removes a party. A party that still owns trips cannot be
// removed; its history would lose its owner.
func (s *partyService) DeleteParty(ctx context.Context, partyID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetPartyByID(ctx, partyID); err != nil {
		return err
	}

	trips, err := s.tripRepo.ListTripsByParty(ctx, partyID)
	if err != nil {
		return fmt.Errorf("failed to list trips for party %s: %w", partyID, err)
	}
	if len(trips) > 0 {
		return fmt.Errorf("%w: party %s has %d trips", apperrors.ErrConflict, partyID, len(trips))
	}

	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		logger.Error("Failed to delete party", slog.String("party_id", partyID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}

	logger.Info("Party deleted", slog.String("party_id", partyID), slog.String("deleted_by", requestingUserID))
	return nil
}
