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

// maxPodUploadBytes caps the accepted POD image size at 10 MiB.
const maxPodUploadBytes = 10 << 20

// podHandler handles HTTP requests related to POD images.
type podHandler struct {
	podService portssvc.PodSvcFacade
}

// newPodHandler creates a new podHandler.
func newPodHandler(ps portssvc.PodSvcFacade) *podHandler {
	return &podHandler{
		podService: ps,
	}
}

// registerPodRoutes registers the per-trip POD image routes under the trips group.
func registerPodRoutes(trips *gin.RouterGroup, podService portssvc.PodSvcFacade) {
	h := newPodHandler(podService)

	trips.GET("/:tripID/pods", h.listPods)
	trips.POST("/:tripID/pods", h.uploadPod)
	trips.DELETE("/:tripID/pods/:podID", h.deletePod)
}

// listPods godoc
// @Summary List a trip's POD images
// @Description Retrieves the POD image records for a trip, newest first
// @Tags pods
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 200 {object} dto.ListPodsResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to list PODs"
// @Security BearerAuth
// @Router /trips/{tripID}/pods [get]
func (h *podHandler) listPods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	pods, err := h.podService.ListPods(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to list PODs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list PODs"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPodsResponse{Pods: dto.ToPodResponses(pods)})
}

// uploadPod godoc
// @Summary Upload a POD image
// @Description Stores a POD image in the trip's Drive folder and marks the trip's POD as received
// @Tags pods
// @Accept multipart/form-data
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param file formData file true "POD image file"
// @Success 201 {object} dto.PodResponse
// @Failure 400 {object} ErrorResponse "Missing or oversized file"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to upload POD"
// @Failure 503 {object} ErrorResponse "POD storage not configured"
// @Security BearerAuth
// @Router /trips/{tripID}/pods [post]
func (h *podHandler) uploadPod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing POD file in upload request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A 'file' form field is required"})
		return
	}
	if fileHeader.Size > maxPodUploadBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File exceeds the 10MB upload limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded POD file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	pod, err := h.podService.UploadPod(c.Request.Context(), tripID, fileHeader.Filename, mimeType, file, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "POD storage is not configured"})
			return
		}
		logger.Error("Failed to upload POD in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upload POD"})
		return
	}

	logger.Info("POD uploaded", slog.String("trip_id", tripID), slog.String("pod_id", pod.PodID))
	c.JSON(http.StatusCreated, dto.ToPodResponse(pod))
}

// deletePod godoc
// @Summary Delete a POD image
// @Description Removes a POD record and its Drive file. The trip's POD flag is left untouched.
// @Tags pods
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param podID path string true "POD ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Trip or POD not found"
// @Failure 500 {object} ErrorResponse "Failed to delete POD"
// @Failure 503 {object} ErrorResponse "POD storage not configured"
// @Security BearerAuth
// @Router /trips/{tripID}/pods/{podID} [delete]
func (h *podHandler) deletePod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	podID := c.Param("podID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.podService.DeletePod(c.Request.Context(), tripID, podID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "POD not found"})
			return
		}
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "POD storage is not configured"})
			return
		}
		logger.Error("Failed to delete POD in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete POD"})
		return
	}

	c.Status(http.StatusNoContent)
}
