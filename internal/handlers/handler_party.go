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

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
	tripService  portssvc.TripReaderSvc
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(ps portssvc.PartySvcFacade, ts portssvc.TripReaderSvc) *partyHandler {
	return &partyHandler{
		partyService: ps,
		tripService:  ts,
	}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade, tripService portssvc.TripReaderSvc) {
	h := newPartyHandler(partyService, tripService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getPartyByID)
		parties.PUT("/:partyID", h.updateParty)
		parties.DELETE("/:partyID", h.deleteParty)
		parties.GET("/:partyID/trips", h.listPartyTrips)
	}
}

// createParty godoc
// @Summary Create a new party
// @Description Adds a new customer party to the books
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create party"
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdParty, err := h.partyService.CreateParty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create party in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create party"})
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", createdParty.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(createdParty))
}

// listParties godoc
// @Summary List all parties
// @Description Retrieves all parties ordered by name
// @Tags parties
// @Produce json
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 500 {object} ErrorResponse "Failed to list parties"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list parties from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list parties"})
		return
	}

	partyResponses := make([]dto.PartyResponse, len(parties))
	for i, p := range parties {
		partyResponses[i] = dto.ToPartyResponse(&p)
	}

	c.JSON(http.StatusOK, dto.ListPartiesResponse{Parties: partyResponses})
}

// getPartyByID godoc
// @Summary Get a party by ID
// @Description Retrieves details for a specific party
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve party"
// @Security BearerAuth
// @Router /parties/{partyID} [get]
func (h *partyHandler) getPartyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found", slog.String("party_id", partyID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		logger.Error("Failed to get party from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve party"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates an existing party's details
// @Tags parties
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to update party"
// @Security BearerAuth
// @Router /parties/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedParty, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update party in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update party"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(updatedParty))
}

// deleteParty godoc
// @Summary Delete a party
// @Description Removes a party. Parties with trips on the books cannot be removed.
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 409 {object} ErrorResponse "Party has trips"
// @Failure 500 {object} ErrorResponse "Failed to delete party"
// @Security BearerAuth
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.partyService.DeleteParty(c.Request.Context(), partyID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to delete party in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete party"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listPartyTrips godoc
// @Summary List a party's trips
// @Description Retrieves the trips booked for a party, newest first
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListTripsResponse
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to list trips"
// @Security BearerAuth
// @Router /parties/{partyID}/trips [get]
func (h *partyHandler) listPartyTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	var params dto.ListTripsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	trips, err := h.tripService.ListTripsByParty(c.Request.Context(), partyID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		logger.Error("Failed to list party trips from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, trips)
}
