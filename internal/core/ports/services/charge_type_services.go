package services

import (
	"context"

	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
)

// ChargeTypeReaderSvc defines read operations for the charge category registry
type ChargeTypeReaderSvc interface {
	// GetChargeTypeByID retrieves a charge category by its ID.
	GetChargeTypeByID(ctx context.Context, chargeTypeID string) (*domain.ChargeType, error)

	// ListChargeTypes retrieves the full registry.
	ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error)
}

// ChargeTypeWriterSvc defines write operations for the charge category registry
type ChargeTypeWriterSvc interface {
	// CreateChargeType registers a new charge category. Names are unique
	// case-insensitively.
	CreateChargeType(ctx context.Context, req dto.CreateChargeTypeRequest, creatorUserID string) (*domain.ChargeType, error)
}

// ChargeTypeSvcFacade combines the charge category service interfaces
type ChargeTypeSvcFacade interface {
	ChargeTypeReaderSvc
	ChargeTypeWriterSvc
}
