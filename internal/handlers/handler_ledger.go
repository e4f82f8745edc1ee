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

// ledgerHandler handles HTTP requests for a trip's advances, charges and
// balance payments.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers the per-trip transaction routes under the trips group.
func registerLedgerRoutes(trips *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	trips.GET("/:tripID/advances", h.listAdvances)
	trips.POST("/:tripID/advances", h.createAdvance)
	trips.DELETE("/:tripID/advances/:advanceID", h.deleteAdvance)

	trips.GET("/:tripID/charges", h.listCharges)
	trips.POST("/:tripID/charges", h.createCharge)
	trips.DELETE("/:tripID/charges/:chargeID", h.deleteCharge)

	trips.GET("/:tripID/balance-payments", h.listBalancePayments)
	trips.POST("/:tripID/balance-payments", h.createBalancePayment)
	trips.DELETE("/:tripID/balance-payments/:balancePaymentID", h.deleteBalancePayment)
}

// respondLedgerWriteError maps the shared service error cases for ledger
// mutations to HTTP statuses.
func respondLedgerWriteError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPodRequired):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// listAdvances godoc
// @Summary List a trip's advances
// @Description Retrieves the advances recorded against a trip, optionally filtered by side
// @Tags ledger
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param side query string false "Transaction side" Enums(party, supplier)
// @Success 200 {array} dto.AdvanceResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to list advances"
// @Security BearerAuth
// @Router /trips/{tripID}/advances [get]
func (h *ledgerHandler) listAdvances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	advances, err := h.ledgerService.ListAdvances(c.Request.Context(), tripID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to list advances from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list advances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdvanceResponses(advances))
}

// createAdvance godoc
// @Summary Record an advance
// @Description Records an advance against a trip and returns it with the recomputed trip balances
// @Tags ledger
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param advance body dto.CreateAdvanceRequest true "Advance details"
// @Success 201 {object} dto.AdvanceMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to record advance"
// @Security BearerAuth
// @Router /trips/{tripID}/advances [post]
func (h *ledgerHandler) createAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAdvance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.ledgerService.CreateAdvance(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		respondLedgerWriteError(c, err, "Failed to record advance")
		return
	}

	logger.Info("Advance recorded", slog.String("trip_id", tripID), slog.String("advance_id", result.Advance.AdvanceID))
	c.JSON(http.StatusCreated, result)
}

// deleteAdvance godoc
// @Summary Delete an advance
// @Description Removes an advance and returns the recomputed trip balances
// @Tags ledger
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param advanceID path string true "Advance ID"
// @Success 200 {object} dto.TripBalancesResponse
// @Failure 404 {object} ErrorResponse "Trip or advance not found"
// @Failure 500 {object} ErrorResponse "Failed to delete advance"
// @Security BearerAuth
// @Router /trips/{tripID}/advances/{advanceID} [delete]
func (h *ledgerHandler) deleteAdvance(c *gin.Context) {
	tripID := c.Param("tripID")
	advanceID := c.Param("advanceID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balances, err := h.ledgerService.DeleteAdvance(c.Request.Context(), tripID, advanceID, requestingUserID)
	if err != nil {
		respondLedgerWriteError(c, err, "Failed to delete advance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripBalancesResponse(*balances))
}

// listCharges godoc
// @Summary List a trip's charges
// @Description Retrieves the charges recorded against a trip, optionally filtered by side
// @Tags ledger
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param side query string false "Transaction side" Enums(party, supplier)
// @Success 200 {array} dto.ChargeResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to list charges"
// @Security BearerAuth
// @Router /trips/{tripID}/charges [get]
func (h *ledgerHandler) listCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	charges, err := h.ledgerService.ListCharges(c.Request.Context(), tripID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to list charges from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list charges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChargeResponses(charges))
}

// createCharge godoc
// @Summary Record a charge
// @Description Records a charge against a trip and returns it with the recomputed trip balances
// @Tags ledger
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param charge body dto.CreateChargeRequest true "Charge details"
// @Success 201 {object} dto.ChargeMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown charge type"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to record charge"
// @Security BearerAuth
// @Router /trips/{tripID}/charges [post]
func (h *ledgerHandler) createCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.ledgerService.CreateCharge(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		respondLedgerWriteError(c, err, "Failed to record charge")
		return
	}

	logger.Info("Charge recorded", slog.String("trip_id", tripID), slog.String("charge_id", result.Charge.ChargeID))
	c.JSON(http.StatusCreated, result)
}

// deleteCharge godoc
// @Summary Delete a charge
// @Description Removes a charge and returns the recomputed trip balances
// @Tags ledger
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param chargeID path string true "Charge ID"
// @Success 200 {object} dto.TripBalancesResponse
// @Failure 404 {object} ErrorResponse "Trip or charge not found"
// @Failure 500 {object} ErrorResponse "Failed to delete charge"
// @Security BearerAuth
// @Router /trips/{tripID}/charges/{chargeID} [delete]
func (h *ledgerHandler) deleteCharge(c *gin.Context) {
	tripID := c.Param("tripID")
	chargeID := c.Param("chargeID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balances, err := h.ledgerService.DeleteCharge(c.Request.Context(), tripID, chargeID, requestingUserID)
	if err != nil {
		respondLedgerWriteError(c, err, "Failed to delete charge")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripBalancesResponse(*balances))
}

// listBalancePayments godoc
// @Summary List a trip's balance payments
// @Description Retrieves the balance payments recorded against a trip, optionally filtered by side
// @Tags ledger
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param side query string false "Transaction side" Enums(party, supplier)
// @Success 200 {array} dto.BalancePaymentResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to list balance payments"
// @Security BearerAuth
// @Router /trips/{tripID}/balance-payments [get]
func (h *ledgerHandler) listBalancePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.ledgerService.ListBalancePayments(c.Request.Context(), tripID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to list balance payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list balance payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalancePaymentResponses(payments))
}

// createBalancePayment godoc
// @Summary Record a balance payment
// @Description Records a balance payment against a trip. Supplier side payments are rejected until the trip's POD is uploaded.
// @Tags ledger
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param balancePayment body dto.CreateBalancePaymentRequest true "Balance payment details"
// @Success 201 {object} dto.BalancePaymentMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 422 {object} ErrorResponse "POD not uploaded"
// @Failure 500 {object} ErrorResponse "Failed to record balance payment"
// @Security BearerAuth
// @Router /trips/{tripID}/balance-payments [post]
func (h *ledgerHandler) createBalancePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateBalancePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBalancePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.ledgerService.CreateBalancePayment(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		respondLedgerWriteError(c, err, "Failed to record balance payment")
		return
	}

	logger.Info("Balance payment recorded", slog.String("trip_id", tripID), slog.String("balance_payment_id", result.BalancePayment.BalancePaymentID))
	c.JSON(http.StatusCreated, result)
}

// deleteBalancePayment godoc
// @Summary Delete a balance payment
// @Description Removes a balance payment and returns the recomputed trip balances
// @Tags ledger
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param balancePaymentID path string true "Balance payment ID"
// @Success 200 {object} dto.TripBalancesResponse
// @Failure 404 {object} ErrorResponse "Trip or balance payment not found"
// @Failure 500 {object} ErrorResponse "Failed to delete balance payment"
// @Security BearerAuth
// @Router /trips/{tripID}/balance-payments/{balancePaymentID} [delete]
func (h *ledgerHandler) deleteBalancePayment(c *gin.Context) {
	tripID := c.Param("tripID")
	balancePaymentID := c.Param("balancePaymentID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balances, err := h.ledgerService.DeleteBalancePayment(c.Request.Context(), tripID, balancePaymentID, requestingUserID)
	if err != nil {
		respondLedgerWriteError(c, err, "Failed to delete balance payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripBalancesResponse(*balances))
}
