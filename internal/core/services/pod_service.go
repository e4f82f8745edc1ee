package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/freightbooks/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/middleware"
)

// podService stores POD images in the Drive and keeps the owning trip's POD
// flag in sync. Folder layout on the Drive is root/party-name/trip-folder,
// where the trip folder is named from the vehicle number and trip date.
type podService struct {
	podRepo     portsrepo.PodRepositoryFacade
	tripRepo    portsrepo.TripRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
	vehicleRepo portsrepo.VehicleRepositoryFacade
	storage     portssvc.DocStorageSvc
}

// NewPodService creates a new PodService.
func NewPodService(podRepo portsrepo.PodRepositoryFacade, tripRepo portsrepo.TripRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, vehicleRepo portsrepo.VehicleRepositoryFacade, storage portssvc.DocStorageSvc) portssvc.PodSvcFacade {
	return &podService{
		podRepo:     podRepo,
		tripRepo:    tripRepo,
		partyRepo:   partyRepo,
		vehicleRepo: vehicleRepo,
		storage:     storage,
	}
}

// Ensure podService implements the portssvc.PodSvcFacade interface
var _ portssvc.PodSvcFacade = (*podService)(nil)

// tripFolderName builds the Drive folder name for a trip: the last four
// characters of the vehicle number joined with the trip date as DD-Mon.
func tripFolderName(vehicleNo string, tripDate time.Time) string {
	suffix := vehicleNo
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("%s_%s", suffix, tripDate.Format("02-Jan"))
}

// ListPods retrieves a trip's POD image records, newest first.
func (s *podService) ListPods(ctx context.Context, tripID string) ([]domain.Pod, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("trip %s: %w", tripID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find trip %s: %w", tripID, err)
	}
	pods, err := s.podRepo.ListPodsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pods for trip %s: %w", tripID, err)
	}
	return pods, nil
}

// ensureTripFolder resolves (creating if needed) the Drive folder for the
// trip, persisting newly assigned folder IDs on the party and the trip.
func (s *podService) ensureTripFolder(ctx context.Context, trip *domain.Trip, requestingUserID string) (string, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, trip.PartyID)
	if err != nil {
		return "", fmt.Errorf("failed to find party %s: %w", trip.PartyID, err)
	}

	now := time.Now().UTC()

	if party.DriveFolderID == "" {
		folderID, err := s.storage.EnsureFolder(ctx, "", party.Name)
		if err != nil {
			return "", fmt.Errorf("failed to ensure party folder for %s: %w", party.PartyID, err)
		}
		party.DriveFolderID = folderID
		party.LastUpdatedAt = now
		party.LastUpdatedBy = requestingUserID
		if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
			return "", fmt.Errorf("failed to persist party folder ID: %w", err)
		}
	}

	if trip.DriveFolderID != "" {
		return trip.DriveFolderID, nil
	}

	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, trip.VehicleID)
	if err != nil {
		return "", fmt.Errorf("failed to find vehicle %s: %w", trip.VehicleID, err)
	}

	folderName := tripFolderName(vehicle.VehicleNo, trip.Date)
	folderID, err := s.storage.EnsureFolder(ctx, party.DriveFolderID, folderName)
	if err != nil {
		return "", fmt.Errorf("failed to ensure trip folder %q: %w", folderName, err)
	}

	trip.DriveFolderID = folderID
	trip.DriveFolderName = folderName
	trip.LastUpdatedAt = now
	trip.LastUpdatedBy = requestingUserID
	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		return "", fmt.Errorf("failed to persist trip folder ID: %w", err)
	}
	return folderID, nil
}

// UploadPod stores a POD image in the trip's Drive folder, records it, and
// marks the trip's POD flag as uploaded.
func (s *podService) UploadPod(ctx context.Context, tripID string, fileName string, mimeType string, content io.Reader, requestingUserID string) (*domain.Pod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.storage == nil {
		return nil, fmt.Errorf("cannot upload POD for trip %s: %w", tripID, apperrors.ErrStorageUnavailable)
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("trip %s: %w", tripID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find trip %s: %w", tripID, err)
	}
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", apperrors.ErrValidation)
	}

	folderID, err := s.ensureTripFolder(ctx, trip, requestingUserID)
	if err != nil {
		logger.Error("Failed to resolve trip Drive folder", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		return nil, err
	}

	stored, err := s.storage.UploadImage(ctx, folderID, fileName, mimeType, content)
	if err != nil {
		logger.Error("Failed to upload POD image", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to upload POD image: %w", err)
	}

	now := time.Now().UTC()
	pod := domain.Pod{
		PodID:       uuid.NewString(),
		TripID:      trip.TripID,
		ImageURL:    stored.ViewURL,
		DriveFileID: stored.FileID,
		FileName:    stored.Name,
		UploadedAt:  now,
	}
	if err := s.podRepo.SavePod(ctx, pod); err != nil {
		return nil, fmt.Errorf("failed to save POD record: %w", err)
	}

	// First upload flips the gate open for supplier balance payments.
	if !trip.PodUploaded {
		trip.PodUploaded = true
		trip.Status = domain.StatusForPodFlag(trip.Status, true)
		trip.LastUpdatedAt = now
		trip.LastUpdatedBy = requestingUserID
		if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
			return nil, fmt.Errorf("failed to update trip POD flag: %w", err)
		}
	}

	logger.Info("POD uploaded", slog.String("pod_id", pod.PodID), slog.String("trip_id", trip.TripID), slog.String("file_name", pod.FileName))
	return &pod, nil
}

// DeletePod removes a POD record and its Drive file. The trip's POD flag is
// deliberately left set; clearing it is an explicit trip operation.
func (s *podService) DeletePod(ctx context.Context, tripID string, podID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.storage == nil {
		return fmt.Errorf("cannot delete POD %s: %w", podID, apperrors.ErrStorageUnavailable)
	}

	pod, err := s.podRepo.FindPodByID(ctx, podID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("pod %s: %w", podID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to find pod %s: %w", podID, err)
	}
	if pod.TripID != tripID {
		return fmt.Errorf("pod %s: %w", podID, apperrors.ErrNotFound)
	}

	if err := s.storage.DeleteFile(ctx, pod.DriveFileID); err != nil {
		logger.Error("Failed to delete POD Drive file", slog.String("pod_id", podID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete POD file: %w", err)
	}

	if err := s.podRepo.DeletePod(ctx, podID); err != nil {
		return fmt.Errorf("failed to delete POD record %s: %w", podID, err)
	}

	logger.Info("POD deleted", slog.String("pod_id", podID), slog.String("trip_id", tripID), slog.String("deleted_by", requestingUserID))
	return nil
}
