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

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// newTripHandler creates a new tripHandler.
func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{
		tripService: ts,
	}
}

// registerTripRoutes registers routes related to trips, their ledger and POD images.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade, ledgerService portssvc.LedgerSvcFacade, podService portssvc.PodSvcFacade) {
	h := newTripHandler(tripService)

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:tripID", h.getTripByID)
		trips.PUT("/:tripID", h.updateTrip)
		trips.DELETE("/:tripID", h.deleteTrip)
		trips.GET("/:tripID/balances", h.getTripBalances)
		trips.PUT("/:tripID/pod-status", h.setPodStatus)
		trips.POST("/:tripID/settle", h.settleTrip)
	}

	registerLedgerRoutes(trips, ledgerService)
	registerPodRoutes(trips, podService)
}

// createTrip godoc
// @Summary Create a new trip
// @Description Books a trip in the open state with both freight amounts
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown party/vehicle"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create trip"
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdTrip, err := h.tripService.CreateTrip(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating trip", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create trip in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create trip"})
		return
	}

	logger.Info("Trip created successfully", slog.String("trip_id", createdTrip.TripID))
	c.JSON(http.StatusCreated, dto.ToTripResponse(createdTrip))
}

// listTrips godoc
// @Summary List trips
// @Description Retrieves a page of trips, newest trip date first
// @Tags trips
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque token from the previous page"
// @Success 200 {object} dto.ListTripsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to list trips"
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTripsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list trips from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, trips)
}

// getTripByID godoc
// @Summary Get a trip by ID
// @Description Retrieves details for a specific trip
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve trip"
// @Security BearerAuth
// @Router /trips/{tripID} [get]
func (h *tripHandler) getTripByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Trip not found", slog.String("trip_id", tripID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to get trip from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve trip"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// updateTrip godoc
// @Summary Update a trip
// @Description Updates trip details. The POD flag and status are only reachable through their own endpoints.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param trip body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to update trip"
// @Security BearerAuth
// @Router /trips/{tripID} [put]
func (h *tripHandler) updateTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedTrip, err := h.tripService.UpdateTrip(c.Request.Context(), tripID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update trip in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update trip"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(updatedTrip))
}

// deleteTrip godoc
// @Summary Delete a trip
// @Description Removes a trip and all its recorded transactions
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to delete trip"
// @Security BearerAuth
// @Router /trips/{tripID} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.tripService.DeleteTrip(c.Request.Context(), tripID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to delete trip in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete trip"})
		return
	}

	logger.Info("Trip deleted successfully", slog.String("trip_id", tripID))
	c.Status(http.StatusNoContent)
}

// getTripBalances godoc
// @Summary Get a trip's ledger summary
// @Description Recomputes party and supplier side totals and remaining balances from the stored transactions
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 200 {object} dto.TripBalancesResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to compute balances"
// @Security BearerAuth
// @Router /trips/{tripID}/balances [get]
func (h *tripHandler) getTripBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	balances, err := h.tripService.GetTripBalances(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to compute trip balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripBalancesResponse(*balances))
}

// setPodStatus godoc
// @Summary Set a trip's POD flag
// @Description Toggles whether the proof of delivery has been received. The trip status follows the flag unless the trip is settled.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param podStatus body dto.SetPodStatusRequest true "POD flag"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to update POD status"
// @Security BearerAuth
// @Router /trips/{tripID}/pod-status [put]
func (h *tripHandler) setPodStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.SetPodStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedTrip, err := h.tripService.SetPodUploaded(c.Request.Context(), tripID, *req.PodUploaded, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to set POD status in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update POD status"})
		return
	}

	logger.Info("Trip POD status updated", slog.String("trip_id", tripID), slog.Bool("pod_uploaded", *req.PodUploaded))
	c.JSON(http.StatusOK, dto.ToTripResponse(updatedTrip))
}

// settleTrip godoc
// @Summary Settle a trip
// @Description Marks a trip settled. Settling an already settled trip is a conflict.
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 409 {object} ErrorResponse "Trip already settled"
// @Failure 500 {object} ErrorResponse "Failed to settle trip"
// @Security BearerAuth
// @Router /trips/{tripID}/settle [post]
func (h *tripHandler) settleTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settledTrip, err := h.tripService.SettleTrip(c.Request.Context(), tripID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to settle trip in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle trip"})
		return
	}

	logger.Info("Trip settled", slog.String("trip_id", tripID))
	c.JSON(http.StatusOK, dto.ToTripResponse(settledTrip))
}
