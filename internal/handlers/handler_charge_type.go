package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chargeTypeHandler handles HTTP requests related to the charge category registry.
type chargeTypeHandler struct {
	chargeTypeService portssvc.ChargeTypeSvcFacade
}

// newChargeTypeHandler creates a new chargeTypeHandler.
func newChargeTypeHandler(cts portssvc.ChargeTypeSvcFacade) *chargeTypeHandler {
	return &chargeTypeHandler{
		chargeTypeService: cts,
	}
}

// registerChargeTypeRoutes registers routes related to charge types.
func registerChargeTypeRoutes(rg *gin.RouterGroup, chargeTypeService portssvc.ChargeTypeSvcFacade) {
	h := newChargeTypeHandler(chargeTypeService)

	chargeTypes := rg.Group("/charge-types")
	{
		chargeTypes.POST("", h.createChargeType)
		chargeTypes.GET("", h.listChargeTypes)
		chargeTypes.GET("/:chargeTypeID", h.getChargeTypeByID)
	}
}

// createChargeType godoc
// @Summary Register a charge type
// @Description Adds a new charge category. Names are unique ignoring case.
// @Tags charge-types
// @Accept json
// @Produce json
// @Param chargeType body dto.CreateChargeTypeRequest true "Charge type details"
// @Success 201 {object} dto.ChargeTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Charge type name already exists"
// @Failure 500 {object} ErrorResponse "Failed to create charge type"
// @Security BearerAuth
// @Router /charge-types [post]
func (h *chargeTypeHandler) createChargeType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChargeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChargeType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdChargeType, err := h.chargeTypeService.CreateChargeType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate charge type", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, ErrorResponse{Error: fmt.Sprintf("Charge type '%s' already exists", req.Name)})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create charge type in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create charge type"})
		return
	}

	logger.Info("Charge type created successfully", slog.String("charge_type_id", createdChargeType.ChargeTypeID))
	c.JSON(http.StatusCreated, dto.ToChargeTypeResponse(createdChargeType))
}

// listChargeTypes godoc
// @Summary List charge types
// @Description Retrieves the full charge category registry, built-ins first
// @Tags charge-types
// @Produce json
// @Success 200 {object} dto.ListChargeTypesResponse
// @Failure 500 {object} ErrorResponse "Failed to list charge types"
// @Security BearerAuth
// @Router /charge-types [get]
func (h *chargeTypeHandler) listChargeTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	chargeTypes, err := h.chargeTypeService.ListChargeTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list charge types from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list charge types"})
		return
	}

	chargeTypeResponses := make([]dto.ChargeTypeResponse, len(chargeTypes))
	for i, ct := range chargeTypes {
		chargeTypeResponses[i] = dto.ToChargeTypeResponse(&ct)
	}

	c.JSON(http.StatusOK, dto.ListChargeTypesResponse{ChargeTypes: chargeTypeResponses})
}

// getChargeTypeByID godoc
// @Summary Get a charge type by ID
// @Description Retrieves details for a specific charge category
// @Tags charge-types
// @Produce json
// @Param chargeTypeID path string true "Charge type ID"
// @Success 200 {object} dto.ChargeTypeResponse
// @Failure 404 {object} ErrorResponse "Charge type not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve charge type"
// @Security BearerAuth
// @Router /charge-types/{chargeTypeID} [get]
func (h *chargeTypeHandler) getChargeTypeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeTypeID := c.Param("chargeTypeID")

	chargeType, err := h.chargeTypeService.GetChargeTypeByID(c.Request.Context(), chargeTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Charge type not found"})
			return
		}
		logger.Error("Failed to get charge type from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve charge type"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChargeTypeResponse(chargeType))
}
