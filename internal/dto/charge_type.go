package dto

import "github.com/freightbooks/freight_ledger_app/internal/core/domain"

// CreateChargeTypeRequest defines the payload for registering a charge category.
type CreateChargeTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	IsCustom bool   `json:"isCustom"`
}

// ChargeTypeResponse defines the data returned for a charge category.
type ChargeTypeResponse struct {
	ChargeTypeID string `json:"chargeTypeID"`
	Name         string `json:"name"`
	IsCustom     bool   `json:"isCustom"`
}

// ListChargeTypesResponse wraps the full registry listing.
type ListChargeTypesResponse struct {
	ChargeTypes []ChargeTypeResponse `json:"chargeTypes"`
}

// ToChargeTypeResponse converts a domain.ChargeType to its DTO.
func ToChargeTypeResponse(ct *domain.ChargeType) ChargeTypeResponse {
	return ChargeTypeResponse{
		ChargeTypeID: ct.ChargeTypeID,
		Name:         ct.Name,
		IsCustom:     ct.IsCustom,
	}
}
