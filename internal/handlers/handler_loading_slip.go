package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loadingSlipHandler handles HTTP requests related to loading slips.
type loadingSlipHandler struct {
	slipService portssvc.LoadingSlipSvcFacade
}

// newLoadingSlipHandler creates a new loadingSlipHandler.
func newLoadingSlipHandler(ls portssvc.LoadingSlipSvcFacade) *loadingSlipHandler {
	return &loadingSlipHandler{
		slipService: ls,
	}
}

// registerLoadingSlipRoutes registers routes related to loading slips.
func registerLoadingSlipRoutes(rg *gin.RouterGroup, slipService portssvc.LoadingSlipSvcFacade) {
	h := newLoadingSlipHandler(slipService)

	slips := rg.Group("/loading-slips")
	{
		slips.POST("", h.createLoadingSlip)
		slips.GET("", h.listLoadingSlips)
		slips.GET("/:loadingSlipID", h.getLoadingSlipByID)
		slips.PUT("/:loadingSlipID", h.updateLoadingSlip)
		slips.DELETE("/:loadingSlipID", h.deleteLoadingSlip)
	}
}

// createLoadingSlip godoc
// @Summary Create a loading slip
// @Description Records a loading slip for a party's upcoming trip
// @Tags loading-slips
// @Accept json
// @Produce json
// @Param loadingSlip body dto.CreateLoadingSlipRequest true "Loading slip details"
// @Success 201 {object} dto.LoadingSlipResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown party"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create loading slip"
// @Security BearerAuth
// @Router /loading-slips [post]
func (h *loadingSlipHandler) createLoadingSlip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoadingSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLoadingSlip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdSlip, err := h.slipService.CreateLoadingSlip(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create loading slip in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create loading slip"})
		return
	}

	logger.Info("Loading slip created successfully", slog.String("loading_slip_id", createdSlip.LoadingSlipID))
	c.JSON(http.StatusCreated, dto.ToLoadingSlipResponse(createdSlip))
}

// listLoadingSlips godoc
// @Summary List loading slips
// @Description Retrieves all loading slips, newest trip date first
// @Tags loading-slips
// @Produce json
// @Success 200 {object} dto.ListLoadingSlipsResponse
// @Failure 500 {object} ErrorResponse "Failed to list loading slips"
// @Security BearerAuth
// @Router /loading-slips [get]
func (h *loadingSlipHandler) listLoadingSlips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	slips, err := h.slipService.ListLoadingSlips(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list loading slips from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list loading slips"})
		return
	}

	slipResponses := make([]dto.LoadingSlipResponse, len(slips))
	for i, s := range slips {
		slipResponses[i] = dto.ToLoadingSlipResponse(&s)
	}

	c.JSON(http.StatusOK, dto.ListLoadingSlipsResponse{LoadingSlips: slipResponses})
}

// getLoadingSlipByID godoc
// @Summary Get a loading slip by ID
// @Description Retrieves details for a specific loading slip
// @Tags loading-slips
// @Produce json
// @Param loadingSlipID path string true "Loading slip ID"
// @Success 200 {object} dto.LoadingSlipResponse
// @Failure 404 {object} ErrorResponse "Loading slip not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve loading slip"
// @Security BearerAuth
// @Router /loading-slips/{loadingSlipID} [get]
func (h *loadingSlipHandler) getLoadingSlipByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loadingSlipID := c.Param("loadingSlipID")

	slip, err := h.slipService.GetLoadingSlipByID(c.Request.Context(), loadingSlipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Loading slip not found"})
			return
		}
		logger.Error("Failed to get loading slip from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve loading slip"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadingSlipResponse(slip))
}

// updateLoadingSlip godoc
// @Summary Update a loading slip
// @Description Updates an existing loading slip's details
// @Tags loading-slips
// @Accept json
// @Produce json
// @Param loadingSlipID path string true "Loading slip ID"
// @Param loadingSlip body dto.UpdateLoadingSlipRequest true "Fields to update"
// @Success 200 {object} dto.LoadingSlipResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Loading slip not found"
// @Failure 500 {object} ErrorResponse "Failed to update loading slip"
// @Security BearerAuth
// @Router /loading-slips/{loadingSlipID} [put]
func (h *loadingSlipHandler) updateLoadingSlip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loadingSlipID := c.Param("loadingSlipID")

	var req dto.UpdateLoadingSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedSlip, err := h.slipService.UpdateLoadingSlip(c.Request.Context(), loadingSlipID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Loading slip not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update loading slip in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update loading slip"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLoadingSlipResponse(updatedSlip))
}

// deleteLoadingSlip godoc
// @Summary Delete a loading slip
// @Description Removes a loading slip
// @Tags loading-slips
// @Produce json
// @Param loadingSlipID path string true "Loading slip ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Loading slip not found"
// @Failure 500 {object} ErrorResponse "Failed to delete loading slip"
// @Security BearerAuth
// @Router /loading-slips/{loadingSlipID} [delete]
func (h *loadingSlipHandler) deleteLoadingSlip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loadingSlipID := c.Param("loadingSlipID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.slipService.DeleteLoadingSlip(c.Request.Context(), loadingSlipID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Loading slip not found"})
			return
		}
		logger.Error("Failed to delete loading slip in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete loading slip"})
		return
	}

	c.Status(http.StatusNoContent)
}
