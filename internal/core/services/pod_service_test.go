package services_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockPodRepository is a mock type for the PodRepositoryFacade interface
type MockPodRepository struct {
	mock.Mock
}

func (m *MockPodRepository) SavePod(ctx context.Context, pod domain.Pod) error {
	args := m.Called(ctx, pod)
	return args.Error(0)
}

func (m *MockPodRepository) FindPodByID(ctx context.Context, podID string) (*domain.Pod, error) {
	args := m.Called(ctx, podID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pod), args.Error(1)
}

func (m *MockPodRepository) ListPodsByTrip(ctx context.Context, tripID string) ([]domain.Pod, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pod), args.Error(1)
}

func (m *MockPodRepository) DeletePod(ctx context.Context, podID string) error {
	args := m.Called(ctx, podID)
	return args.Error(0)
}

// MockDocStorage is a mock type for the DocStorageSvc interface
type MockDocStorage struct {
	mock.Mock
}

func (m *MockDocStorage) EnsureFolder(ctx context.Context, parentID string, name string) (string, error) {
	args := m.Called(ctx, parentID, name)
	return args.String(0), args.Error(1)
}

func (m *MockDocStorage) UploadImage(ctx context.Context, folderID string, name string, mimeType string, content io.Reader) (*portssvc.StoredFile, error) {
	args := m.Called(ctx, folderID, name, mimeType, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.StoredFile), args.Error(1)
}

func (m *MockDocStorage) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type PodServiceTestSuite struct {
	suite.Suite
	mockPodRepo     *MockPodRepository
	mockTripRepo    *MockTripRepository
	mockPartyRepo   *MockPartyRepository
	mockVehicleRepo *MockVehicleRepository
	mockStorage     *MockDocStorage
	service         portssvc.PodSvcFacade
}

func (suite *PodServiceTestSuite) SetupTest() {
	suite.mockPodRepo = new(MockPodRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.mockStorage = new(MockDocStorage)
	suite.service = services.NewPodService(suite.mockPodRepo, suite.mockTripRepo, suite.mockPartyRepo, suite.mockVehicleRepo, suite.mockStorage)
}

// newNilStorageService builds the service the way main does when Drive
// credentials are absent.
func (suite *PodServiceTestSuite) newNilStorageService() portssvc.PodSvcFacade {
	return services.NewPodService(suite.mockPodRepo, suite.mockTripRepo, suite.mockPartyRepo, suite.mockVehicleRepo, nil)
}

// --- Test Cases ---

func (suite *PodServiceTestSuite) TestUploadPod_NilStorage() {
	ctx := context.Background()
	service := suite.newNilStorageService()

	pod, err := service.UploadPod(ctx, "trip-1", "pod.jpg", "image/jpeg", strings.NewReader("img"), "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
	suite.Nil(pod)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindTripByID", mock.Anything, mock.Anything)
	suite.mockPodRepo.AssertNotCalled(suite.T(), "SavePod", mock.Anything, mock.Anything)
}

func (suite *PodServiceTestSuite) TestDeletePod_NilStorage() {
	ctx := context.Background()
	service := suite.newNilStorageService()

	err := service.DeletePod(ctx, "trip-1", "pod-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
	suite.mockPodRepo.AssertNotCalled(suite.T(), "DeletePod", mock.Anything, mock.Anything)
}

func (suite *PodServiceTestSuite) TestUploadPod_FirstUploadSetsFlag() {
	ctx := context.Background()
	trip := &domain.Trip{
		TripID:      "trip-1",
		Date:        time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		PartyID:     "party-1",
		VehicleID:   "vehicle-1",
		PodUploaded: false,
		Status:      domain.StatusOpen,
	}
	party := &domain.Party{PartyID: "party-1", Name: "Acme Traders"}
	vehicle := &domain.Vehicle{VehicleID: "vehicle-1", VehicleNo: "MH31AB1234"}
	content := strings.NewReader("img")

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, "party-1").Return(party, nil).Once()
	suite.mockPartyRepo.On("UpdateParty", ctx, mock.AnythingOfType("domain.Party")).Return(nil).Once()
	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "vehicle-1").Return(vehicle, nil).Once()
	suite.mockStorage.On("EnsureFolder", ctx, "", "Acme Traders").Return("party-folder", nil).Once()
	suite.mockStorage.On("EnsureFolder", ctx, "party-folder", "1234_02-Nov").Return("trip-folder", nil).Once()
	suite.mockStorage.On("UploadImage", ctx, "trip-folder", "pod.jpg", "image/jpeg", content).Return(&portssvc.StoredFile{
		FileID:  "file-1",
		Name:    "pod.jpg",
		ViewURL: "https://drive.google.com/file/d/file-1/view",
	}, nil).Once()
	suite.mockPodRepo.On("SavePod", ctx, mock.AnythingOfType("domain.Pod")).Return(nil).Once()
	// Two trip updates: the new folder ID, then the POD flag flip.
	suite.mockTripRepo.On("UpdateTrip", ctx, mock.AnythingOfType("domain.Trip")).Return(nil).Twice()

	pod, err := suite.service.UploadPod(ctx, "trip-1", "pod.jpg", "image/jpeg", content, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(pod)
	suite.Equal("file-1", pod.DriveFileID)
	suite.True(trip.PodUploaded)
	suite.Equal(domain.StatusPodReceived, trip.Status)
	suite.mockStorage.AssertExpectations(suite.T())
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *PodServiceTestSuite) TestDeletePod_WrongTrip() {
	ctx := context.Background()
	pod := &domain.Pod{PodID: "pod-1", TripID: "other-trip", DriveFileID: "file-1"}

	suite.mockPodRepo.On("FindPodByID", ctx, "pod-1").Return(pod, nil).Once()

	err := suite.service.DeletePod(ctx, "trip-1", "pod-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStorage.AssertNotCalled(suite.T(), "DeleteFile", mock.Anything, mock.Anything)
}

func (suite *PodServiceTestSuite) TestDeletePod_RemovesFileAndRecord() {
	ctx := context.Background()
	pod := &domain.Pod{PodID: "pod-1", TripID: "trip-1", DriveFileID: "file-1"}

	suite.mockPodRepo.On("FindPodByID", ctx, "pod-1").Return(pod, nil).Once()
	suite.mockStorage.On("DeleteFile", ctx, "file-1").Return(nil).Once()
	suite.mockPodRepo.On("DeletePod", ctx, "pod-1").Return(nil).Once()

	err := suite.service.DeletePod(ctx, "trip-1", "pod-1", "user-1")

	suite.Require().NoError(err)
	suite.mockPodRepo.AssertExpectations(suite.T())
	suite.mockStorage.AssertExpectations(suite.T())
}

func TestPodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PodServiceTestSuite))
}
