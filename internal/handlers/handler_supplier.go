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

// supplierHandler handles HTTP requests related to suppliers and their vehicles.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{
		supplierService: ss,
	}
}

// registerSupplierRoutes registers routes related to suppliers and vehicles.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:supplierID", h.getSupplierByID)
		suppliers.PUT("/:supplierID", h.updateSupplier)
		suppliers.DELETE("/:supplierID", h.deleteSupplier)
		suppliers.GET("/:supplierID/vehicles", h.listSupplierVehicles)
	}

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("/:vehicleID", h.getVehicleByID)
		vehicles.PUT("/:vehicleID", h.updateVehicle)
		vehicles.DELETE("/:vehicleID", h.deleteVehicle)
	}
}

// createSupplier godoc
// @Summary Create a new supplier
// @Description Adds a new vehicle supplier to the books
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to create supplier"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdSupplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create supplier in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create supplier"})
		return
	}

	logger.Info("Supplier created successfully", slog.String("supplier_id", createdSupplier.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(createdSupplier))
}

// listSuppliers godoc
// @Summary List all suppliers
// @Description Retrieves all suppliers ordered by name
// @Tags suppliers
// @Produce json
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 500 {object} ErrorResponse "Failed to list suppliers"
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list suppliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list suppliers"})
		return
	}

	supplierResponses := make([]dto.SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		supplierResponses[i] = dto.ToSupplierResponse(&s)
	}

	c.JSON(http.StatusOK, dto.ListSuppliersResponse{Suppliers: supplierResponses})
}

// getSupplierByID godoc
// @Summary Get a supplier by ID
// @Description Retrieves details for a specific supplier
// @Tags suppliers
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve supplier"
// @Security BearerAuth
// @Router /suppliers/{supplierID} [get]
func (h *supplierHandler) getSupplierByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
			return
		}
		logger.Error("Failed to get supplier from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve supplier"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Description Updates an existing supplier's details
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse "Failed to update supplier"
// @Security BearerAuth
// @Router /suppliers/{supplierID} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedSupplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update supplier in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(updatedSupplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Description Removes a supplier. Suppliers whose vehicles ran trips cannot be removed.
// @Tags suppliers
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 409 {object} ErrorResponse "Supplier has trips"
// @Failure 500 {object} ErrorResponse "Failed to delete supplier"
// @Security BearerAuth
// @Router /suppliers/{supplierID} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.supplierService.DeleteSupplier(c.Request.Context(), supplierID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to delete supplier in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete supplier"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listSupplierVehicles godoc
// @Summary List a supplier's vehicles
// @Description Retrieves the vehicles registered under a supplier
// @Tags suppliers
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Success 200 {object} dto.ListVehiclesResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse "Failed to list vehicles"
// @Security BearerAuth
// @Router /suppliers/{supplierID}/vehicles [get]
func (h *supplierHandler) listSupplierVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	vehicles, err := h.supplierService.ListVehiclesBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
			return
		}
		logger.Error("Failed to list vehicles from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list vehicles"})
		return
	}

	vehicleResponses := make([]dto.VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		vehicleResponses[i] = dto.ToVehicleResponse(&v)
	}

	c.JSON(http.StatusOK, dto.ListVehiclesResponse{Vehicles: vehicleResponses})
}

// createVehicle godoc
// @Summary Register a vehicle
// @Description Registers a vehicle under a supplier
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Vehicle number already registered"
// @Failure 500 {object} ErrorResponse "Failed to create vehicle"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *supplierHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdVehicle, err := h.supplierService.CreateVehicle(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create vehicle in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create vehicle"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(createdVehicle))
}

// getVehicleByID godoc
// @Summary Get a vehicle by ID
// @Description Retrieves details for a specific vehicle
// @Tags vehicles
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve vehicle"
// @Security BearerAuth
// @Router /vehicles/{vehicleID} [get]
func (h *supplierHandler) getVehicleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	vehicle, err := h.supplierService.GetVehicleByID(c.Request.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"})
			return
		}
		logger.Error("Failed to get vehicle from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve vehicle"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Description Updates a vehicle's registration number
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Param vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 500 {object} ErrorResponse "Failed to update vehicle"
// @Security BearerAuth
// @Router /vehicles/{vehicleID} [put]
func (h *supplierHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedVehicle, err := h.supplierService.UpdateVehicle(c.Request.Context(), vehicleID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update vehicle in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update vehicle"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(updatedVehicle))
}

// deleteVehicle godoc
// @Summary Delete a vehicle
// @Description Removes a vehicle. Vehicles that ran trips cannot be removed.
// @Tags vehicles
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 409 {object} ErrorResponse "Vehicle has trips"
// @Failure 500 {object} ErrorResponse "Failed to delete vehicle"
// @Security BearerAuth
// @Router /vehicles/{vehicleID} [delete]
func (h *supplierHandler) deleteVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("vehicleID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.supplierService.DeleteVehicle(c.Request.Context(), vehicleID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to delete vehicle in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete vehicle"})
		return
	}

	c.Status(http.StatusNoContent)
}
