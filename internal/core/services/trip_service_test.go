package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/core/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockPartyRepository is a mock type for the PartyRepositoryFacade interface
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

// MockVehicleRepository is a mock type for the VehicleRepositoryFacade interface
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListVehiclesBySupplier(ctx context.Context, supplierID string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TripServiceTestSuite struct {
	suite.Suite
	mockTripRepo    *MockTripRepository
	mockLedgerRepo  *MockLedgerRepository
	mockPartyRepo   *MockPartyRepository
	mockVehicleRepo *MockVehicleRepository
	service         portssvc.TripSvcFacade
}

func (suite *TripServiceTestSuite) SetupTest() {
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.service = services.NewTripService(suite.mockTripRepo, suite.mockLedgerRepo, suite.mockPartyRepo, suite.mockVehicleRepo)
}

// --- Test Cases ---

func (suite *TripServiceTestSuite) TestCreateTrip_Success() {
	ctx := context.Background()
	req := dto.CreateTripRequest{
		Date:            time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		PartyID:         "party-1",
		VehicleID:       "vehicle-1",
		Origin:          "Nagpur",
		Destination:     "Pune",
		FreightParty:    decimal.NewFromInt(10000),
		FreightSupplier: decimal.NewFromInt(9000),
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, "party-1").Return(&domain.Party{PartyID: "party-1"}, nil).Once()
	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "vehicle-1").Return(&domain.Vehicle{VehicleID: "vehicle-1"}, nil).Once()
	suite.mockTripRepo.On("SaveTrip", ctx, mock.AnythingOfType("domain.Trip")).Return(nil).Once()

	trip, err := suite.service.CreateTrip(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(trip)
	suite.NotEmpty(trip.TripID)
	suite.Equal(domain.StatusOpen, trip.Status)
	suite.False(trip.PodUploaded)
	suite.Equal("user-1", trip.CreatedBy)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestCreateTrip_UnknownParty() {
	ctx := context.Background()
	suite.mockPartyRepo.On("FindPartyByID", ctx, "party-missing").Return(nil, apperrors.ErrNotFound).Once()

	trip, err := suite.service.CreateTrip(ctx, dto.CreateTripRequest{
		PartyID:   "party-missing",
		VehicleID: "vehicle-1",
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(trip)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "SaveTrip", mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCreateTrip_UnknownVehicle() {
	ctx := context.Background()
	suite.mockPartyRepo.On("FindPartyByID", ctx, "party-1").Return(&domain.Party{PartyID: "party-1"}, nil).Once()
	suite.mockVehicleRepo.On("FindVehicleByID", ctx, "vehicle-missing").Return(nil, apperrors.ErrNotFound).Once()

	trip, err := suite.service.CreateTrip(ctx, dto.CreateTripRequest{
		PartyID:   "party-1",
		VehicleID: "vehicle-missing",
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(trip)
}

func (suite *TripServiceTestSuite) TestUpdateTrip_PartialFields() {
	ctx := context.Background()
	existing := &domain.Trip{
		TripID:       "trip-1",
		Origin:       "Nagpur",
		Destination:  "Pune",
		FreightParty: decimal.NewFromInt(10000),
		Status:       domain.StatusOpen,
	}
	newDest := "Mumbai"

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(existing, nil).Once()
	suite.mockTripRepo.On("UpdateTrip", ctx, mock.AnythingOfType("domain.Trip")).Return(nil).Once()

	trip, err := suite.service.UpdateTrip(ctx, "trip-1", dto.UpdateTripRequest{Destination: &newDest}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("Mumbai", trip.Destination)
	// Fields without a value in the request keep their stored value.
	suite.Equal("Nagpur", trip.Origin)
	suite.True(trip.FreightParty.Equal(decimal.NewFromInt(10000)))
	suite.Equal("user-2", trip.LastUpdatedBy)
}

func (suite *TripServiceTestSuite) TestSetPodUploaded_OpenToPodReceived() {
	ctx := context.Background()
	existing := &domain.Trip{TripID: "trip-1", Status: domain.StatusOpen, PodUploaded: false}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(existing, nil).Once()
	suite.mockTripRepo.On("UpdateTrip", ctx, mock.AnythingOfType("domain.Trip")).Return(nil).Once()

	trip, err := suite.service.SetPodUploaded(ctx, "trip-1", true, "user-1")

	suite.Require().NoError(err)
	suite.True(trip.PodUploaded)
	suite.Equal(domain.StatusPodReceived, trip.Status)
}

func (suite *TripServiceTestSuite) TestSetPodUploaded_ClearFlagReopens() {
	ctx := context.Background()
	existing := &domain.Trip{TripID: "trip-1", Status: domain.StatusPodReceived, PodUploaded: true}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(existing, nil).Once()
	suite.mockTripRepo.On("UpdateTrip", ctx, mock.AnythingOfType("domain.Trip")).Return(nil).Once()

	trip, err := suite.service.SetPodUploaded(ctx, "trip-1", false, "user-1")

	suite.Require().NoError(err)
	suite.False(trip.PodUploaded)
	suite.Equal(domain.StatusOpen, trip.Status)
}

func (suite *TripServiceTestSuite) TestSetPodUploaded_SettledStaysSettled() {
	ctx := context.Background()
	existing := &domain.Trip{TripID: "trip-1", Status: domain.StatusSettled, PodUploaded: true}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(existing, nil).Once()
	suite.mockTripRepo.On("UpdateTrip", ctx, mock.AnythingOfType("domain.Trip")).Return(nil).Once()

	trip, err := suite.service.SetPodUploaded(ctx, "trip-1", false, "user-1")

	suite.Require().NoError(err)
	suite.False(trip.PodUploaded)
	suite.Equal(domain.StatusSettled, trip.Status)
}

func (suite *TripServiceTestSuite) TestSettleTrip_Success() {
	ctx := context.Background()
	existing := &domain.Trip{TripID: "trip-1", Status: domain.StatusPodReceived, PodUploaded: true}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(existing, nil).Once()
	suite.mockTripRepo.On("UpdateTrip", ctx, mock.AnythingOfType("domain.Trip")).Return(nil).Once()

	trip, err := suite.service.SettleTrip(ctx, "trip-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSettled, trip.Status)
	suite.Equal("user-1", trip.LastUpdatedBy)
}

func (suite *TripServiceTestSuite) TestSettleTrip_AlreadySettled() {
	ctx := context.Background()
	existing := &domain.Trip{TripID: "trip-1", Status: domain.StatusSettled}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(existing, nil).Once()

	trip, err := suite.service.SettleTrip(ctx, "trip-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(trip)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "UpdateTrip", mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestGetTripBalances() {
	ctx := context.Background()
	trip := &domain.Trip{
		TripID:          "trip-1",
		FreightParty:    decimal.NewFromInt(10000),
		FreightSupplier: decimal.NewFromInt(9000),
		Status:          domain.StatusOpen,
	}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockLedgerRepo.On("ListAdvances", ctx, "trip-1", mock.Anything).Return([]domain.Advance{
		{TripID: "trip-1", Side: domain.SideParty, Amount: decimal.NewFromInt(3000)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListCharges", ctx, "trip-1", mock.Anything).Return([]domain.Charge{
		{TripID: "trip-1", Side: domain.SideSupplier, Operation: domain.OperationDeduct, Amount: decimal.NewFromInt(500)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListBalancePayments", ctx, "trip-1", mock.Anything).Return([]domain.BalancePayment{}, nil).Once()

	balances, err := suite.service.GetTripBalances(ctx, "trip-1")

	suite.Require().NoError(err)
	suite.True(balances.PartyBalanceRemaining.Equal(decimal.NewFromInt(7000)))
	suite.True(balances.SupplierBalanceRemaining.Equal(decimal.NewFromInt(8500)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestGetTripByID_NotFound() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	trip, err := suite.service.GetTripByID(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(trip)
}

func (suite *TripServiceTestSuite) TestListTrips_DefaultLimit() {
	ctx := context.Background()
	token := "next"

	suite.mockTripRepo.On("ListTrips", ctx, 20, (*string)(nil)).Return([]domain.Trip{
		{TripID: "trip-1"}, {TripID: "trip-2"},
	}, &token, nil).Once()

	resp, err := suite.service.ListTrips(ctx, dto.ListTripsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Trips, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}

func (suite *TripServiceTestSuite) TestListTripsByParty_UnknownParty() {
	ctx := context.Background()
	suite.mockPartyRepo.On("FindPartyByID", ctx, "party-missing").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ListTripsByParty(ctx, "party-missing", dto.ListTripsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(resp)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "ListTripsByParty", mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestDeleteTrip_Success() {
	ctx := context.Background()
	existing := &domain.Trip{TripID: "trip-1", Status: domain.StatusOpen}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(existing, nil).Once()
	suite.mockTripRepo.On("DeleteTrip", ctx, "trip-1").Return(nil).Once()

	err := suite.service.DeleteTrip(ctx, "trip-1", "user-1")

	suite.Require().NoError(err)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func TestTripServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TripServiceTestSuite))
}
