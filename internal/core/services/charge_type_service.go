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

// chargeTypeService manages the charge category registry.
type chargeTypeService struct {
	chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade
}

// NewChargeTypeService creates a new ChargeTypeService.
func NewChargeTypeService(chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade) portssvc.ChargeTypeSvcFacade {
	return &chargeTypeService{chargeTypeRepo: chargeTypeRepo}
}

// Ensure chargeTypeService implements the portssvc.ChargeTypeSvcFacade interface
var _ portssvc.ChargeTypeSvcFacade = (*chargeTypeService)(nil)

// GetChargeTypeByID retrieves a charge category by its ID.
func (s *chargeTypeService) GetChargeTypeByID(ctx context.Context, chargeTypeID string) (*domain.ChargeType, error) {
	chargeType, err := s.chargeTypeRepo.FindChargeTypeByID(ctx, chargeTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("charge type %s: %w", chargeTypeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find charge type %s: %w", chargeTypeID, err)
	}
	return chargeType, nil
}

// ListChargeTypes retrieves the full registry.
func (s *chargeTypeService) ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error) {
	chargeTypes, err := s.chargeTypeRepo.ListChargeTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list charge types: %w", err)
	}
	return chargeTypes, nil
}

// CreateChargeType registers a new charge category. The name check is
// advisory; the store's unique index is the real guard and also surfaces as
// ErrDuplicate when two creators race.
func (s *chargeTypeService) CreateChargeType(ctx context.Context, req dto.CreateChargeTypeRequest, creatorUserID string) (*domain.ChargeType, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	existing, err := s.chargeTypeRepo.FindChargeTypeByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check charge type name %q: %w", name, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: charge type %q already exists", apperrors.ErrDuplicate, name)
	}

	now := time.Now().UTC()
	chargeType := domain.ChargeType{
		ChargeTypeID: uuid.NewString(),
		Name:         name,
		IsCustom:     req.IsCustom,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.chargeTypeRepo.SaveChargeType(ctx, chargeType); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: charge type %q already exists", apperrors.ErrDuplicate, name)
		}
		logger.Error("Failed to save charge type", slog.String("name", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save charge type: %w", err)
	}

	logger.Info("Charge type created", slog.String("charge_type_id", chargeType.ChargeTypeID), slog.String("name", name))
	return &chargeType, nil
}
