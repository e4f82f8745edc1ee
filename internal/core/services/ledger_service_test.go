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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListAdvances(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.Advance, error) {
	args := m.Called(ctx, tripID, side)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Advance), args.Error(1)
}

func (m *MockLedgerRepository) FindAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error) {
	args := m.Called(ctx, advanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advance), args.Error(1)
}

func (m *MockLedgerRepository) SaveAdvance(ctx context.Context, advance domain.Advance) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteAdvance(ctx context.Context, advanceID string) error {
	args := m.Called(ctx, advanceID)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListCharges(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.Charge, error) {
	args := m.Called(ctx, tripID, side)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Charge), args.Error(1)
}

func (m *MockLedgerRepository) FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockLedgerRepository) SaveCharge(ctx context.Context, charge domain.Charge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteCharge(ctx context.Context, chargeID string) error {
	args := m.Called(ctx, chargeID)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListBalancePayments(ctx context.Context, tripID string, side *domain.TransactionSide) ([]domain.BalancePayment, error) {
	args := m.Called(ctx, tripID, side)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalancePayment), args.Error(1)
}

func (m *MockLedgerRepository) FindBalancePaymentByID(ctx context.Context, balancePaymentID string) (*domain.BalancePayment, error) {
	args := m.Called(ctx, balancePaymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalancePayment), args.Error(1)
}

func (m *MockLedgerRepository) SaveBalancePayment(ctx context.Context, payment domain.BalancePayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteBalancePayment(ctx context.Context, balancePaymentID string) error {
	args := m.Called(ctx, balancePaymentID)
	return args.Error(0)
}

// MockTripRepository is a mock type for the TripRepositoryFacade interface
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context, limit int, nextToken *string) ([]domain.Trip, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Trip), token, args.Error(2)
}

func (m *MockTripRepository) ListTripsByParty(ctx context.Context, partyID string) ([]domain.Trip, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

// MockChargeTypeRepository is a mock type for the ChargeTypeRepositoryFacade interface
type MockChargeTypeRepository struct {
	mock.Mock
}

func (m *MockChargeTypeRepository) SaveChargeType(ctx context.Context, chargeType domain.ChargeType) error {
	args := m.Called(ctx, chargeType)
	return args.Error(0)
}

func (m *MockChargeTypeRepository) FindChargeTypeByID(ctx context.Context, chargeTypeID string) (*domain.ChargeType, error) {
	args := m.Called(ctx, chargeTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChargeType), args.Error(1)
}

func (m *MockChargeTypeRepository) FindChargeTypeByName(ctx context.Context, name string) (*domain.ChargeType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChargeType), args.Error(1)
}

func (m *MockChargeTypeRepository) ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChargeType), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo     *MockLedgerRepository
	mockTripRepo       *MockTripRepository
	mockChargeTypeRepo *MockChargeTypeRepository
	service            portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockChargeTypeRepo = new(MockChargeTypeRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockTripRepo, suite.mockChargeTypeRepo, nil)
}

func (suite *LedgerServiceTestSuite) openTrip() *domain.Trip {
	return &domain.Trip{
		TripID:          "trip-1",
		Date:            time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		PartyID:         "party-1",
		VehicleID:       "vehicle-1",
		FreightParty:    decimal.NewFromInt(10000),
		FreightSupplier: decimal.NewFromInt(9000),
		PodUploaded:     false,
		Status:          domain.StatusOpen,
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateAdvance_Success() {
	ctx := context.Background()
	trip := suite.openTrip()
	req := dto.CreateAdvanceRequest{
		Side:         domain.SideParty,
		Amount:       decimal.NewFromInt(2000),
		ReceivedDate: time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC),
		PaymentMode:  domain.ModeUPI,
	}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockLedgerRepo.On("SaveAdvance", ctx, mock.AnythingOfType("domain.Advance")).Return(nil).Once()
	suite.mockLedgerRepo.On("ListAdvances", ctx, "trip-1", mock.Anything).Return([]domain.Advance{
		{TripID: "trip-1", Side: domain.SideParty, Amount: decimal.NewFromInt(2000)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListCharges", ctx, "trip-1", mock.Anything).Return([]domain.Charge{}, nil).Once()
	suite.mockLedgerRepo.On("ListBalancePayments", ctx, "trip-1", mock.Anything).Return([]domain.BalancePayment{}, nil).Once()

	result, err := suite.service.CreateAdvance(ctx, "trip-1", req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.Advance.AdvanceID)
	suite.Equal("trip-1", result.Advance.TripID)
	suite.True(result.Balances.PartyAdvancesTotal.Equal(decimal.NewFromInt(2000)))
	suite.True(result.Balances.PartyBalanceRemaining.Equal(decimal.NewFromInt(8000)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateAdvance_TripNotFound() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CreateAdvance(ctx, "missing", dto.CreateAdvanceRequest{
		Side:        domain.SideParty,
		Amount:      decimal.NewFromInt(100),
		PaymentMode: domain.ModeCash,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveAdvance", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateAdvance_InvalidAmount() {
	ctx := context.Background()
	trip := suite.openTrip()
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()

	result, err := suite.service.CreateAdvance(ctx, "trip-1", dto.CreateAdvanceRequest{
		Side:        domain.SideParty,
		Amount:      decimal.NewFromInt(-50),
		PaymentMode: domain.ModeCash,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveAdvance", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateCharge_UnknownChargeType() {
	ctx := context.Background()
	trip := suite.openTrip()
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockChargeTypeRepo.On("FindChargeTypeByID", ctx, "ct-missing").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CreateCharge(ctx, "trip-1", dto.CreateChargeRequest{
		Side:         domain.SideSupplier,
		ChargeTypeID: "ct-missing",
		Operation:    domain.OperationDeduct,
		Amount:       decimal.NewFromInt(300),
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveCharge", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateCharge_Success() {
	ctx := context.Background()
	trip := suite.openTrip()
	chargeType := &domain.ChargeType{ChargeTypeID: "ct-1", Name: "Halting"}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockChargeTypeRepo.On("FindChargeTypeByID", ctx, "ct-1").Return(chargeType, nil).Once()
	suite.mockLedgerRepo.On("SaveCharge", ctx, mock.AnythingOfType("domain.Charge")).Return(nil).Once()
	suite.mockLedgerRepo.On("ListAdvances", ctx, "trip-1", mock.Anything).Return([]domain.Advance{}, nil).Once()
	suite.mockLedgerRepo.On("ListCharges", ctx, "trip-1", mock.Anything).Return([]domain.Charge{
		{TripID: "trip-1", Side: domain.SideSupplier, Operation: domain.OperationDeduct, Amount: decimal.NewFromInt(300)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListBalancePayments", ctx, "trip-1", mock.Anything).Return([]domain.BalancePayment{}, nil).Once()

	result, err := suite.service.CreateCharge(ctx, "trip-1", dto.CreateChargeRequest{
		Side:         domain.SideSupplier,
		ChargeTypeID: "ct-1",
		Operation:    domain.OperationDeduct,
		Amount:       decimal.NewFromInt(300),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Balances.SupplierChargesDeduct.Equal(decimal.NewFromInt(300)))
	// 9000 - 300 = 8700
	suite.True(result.Balances.SupplierBalanceRemaining.Equal(decimal.NewFromInt(8700)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateBalancePayment_SupplierBlockedWithoutPod() {
	ctx := context.Background()
	trip := suite.openTrip() // PodUploaded is false
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()

	result, err := suite.service.CreateBalancePayment(ctx, "trip-1", dto.CreateBalancePaymentRequest{
		Side:        domain.SideSupplier,
		Amount:      decimal.NewFromInt(5000),
		PaymentMode: domain.ModeBank,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPodRequired)
	suite.Nil(result)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveBalancePayment", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateBalancePayment_SupplierAllowedWithPod() {
	ctx := context.Background()
	trip := suite.openTrip()
	trip.PodUploaded = true
	trip.Status = domain.StatusPodReceived

	// The trip is re-loaded inside the mutation to recheck the gate.
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Twice()
	suite.mockLedgerRepo.On("SaveBalancePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(nil).Once()
	suite.mockLedgerRepo.On("ListAdvances", ctx, "trip-1", mock.Anything).Return([]domain.Advance{}, nil).Once()
	suite.mockLedgerRepo.On("ListCharges", ctx, "trip-1", mock.Anything).Return([]domain.Charge{}, nil).Once()
	suite.mockLedgerRepo.On("ListBalancePayments", ctx, "trip-1", mock.Anything).Return([]domain.BalancePayment{
		{TripID: "trip-1", Side: domain.SideSupplier, Amount: decimal.NewFromInt(5000)},
	}, nil).Once()

	result, err := suite.service.CreateBalancePayment(ctx, "trip-1", dto.CreateBalancePaymentRequest{
		Side:        domain.SideSupplier,
		Amount:      decimal.NewFromInt(5000),
		PaymentMode: domain.ModeBank,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Balances.SupplierBalancePaid.Equal(decimal.NewFromInt(5000)))
	// 9000 - 5000 = 4000
	suite.True(result.Balances.SupplierBalanceRemaining.Equal(decimal.NewFromInt(4000)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateBalancePayment_PartySideNeverGated() {
	ctx := context.Background()
	trip := suite.openTrip() // PodUploaded is false

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Twice()
	suite.mockLedgerRepo.On("SaveBalancePayment", ctx, mock.AnythingOfType("domain.BalancePayment")).Return(nil).Once()
	suite.mockLedgerRepo.On("ListAdvances", ctx, "trip-1", mock.Anything).Return([]domain.Advance{}, nil).Once()
	suite.mockLedgerRepo.On("ListCharges", ctx, "trip-1", mock.Anything).Return([]domain.Charge{}, nil).Once()
	suite.mockLedgerRepo.On("ListBalancePayments", ctx, "trip-1", mock.Anything).Return([]domain.BalancePayment{
		{TripID: "trip-1", Side: domain.SideParty, Amount: decimal.NewFromInt(4000)},
	}, nil).Once()

	result, err := suite.service.CreateBalancePayment(ctx, "trip-1", dto.CreateBalancePaymentRequest{
		Side:        domain.SideParty,
		Amount:      decimal.NewFromInt(4000),
		PaymentMode: domain.ModeCheque,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Balances.PartyBalancePaid.Equal(decimal.NewFromInt(4000)))
}

func (suite *LedgerServiceTestSuite) TestDeleteAdvance_RecomputesBalances() {
	ctx := context.Background()
	trip := suite.openTrip()
	advance := &domain.Advance{AdvanceID: "adv-1", TripID: "trip-1", Side: domain.SideParty, Amount: decimal.NewFromInt(2000)}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockLedgerRepo.On("FindAdvanceByID", ctx, "adv-1").Return(advance, nil).Once()
	suite.mockLedgerRepo.On("DeleteAdvance", ctx, "adv-1").Return(nil).Once()
	suite.mockLedgerRepo.On("ListAdvances", ctx, "trip-1", mock.Anything).Return([]domain.Advance{}, nil).Once()
	suite.mockLedgerRepo.On("ListCharges", ctx, "trip-1", mock.Anything).Return([]domain.Charge{}, nil).Once()
	suite.mockLedgerRepo.On("ListBalancePayments", ctx, "trip-1", mock.Anything).Return([]domain.BalancePayment{}, nil).Once()

	balances, err := suite.service.DeleteAdvance(ctx, "trip-1", "adv-1", "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(balances)
	// With the advance gone the full freight is owed again.
	suite.True(balances.PartyBalanceRemaining.Equal(decimal.NewFromInt(10000)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteAdvance_WrongTrip() {
	ctx := context.Background()
	trip := suite.openTrip()
	advance := &domain.Advance{AdvanceID: "adv-1", TripID: "other-trip", Side: domain.SideParty, Amount: decimal.NewFromInt(2000)}

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockLedgerRepo.On("FindAdvanceByID", ctx, "adv-1").Return(advance, nil).Once()

	balances, err := suite.service.DeleteAdvance(ctx, "trip-1", "adv-1", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(balances)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "DeleteAdvance", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListAdvances_PassesSideFilter() {
	ctx := context.Background()
	trip := suite.openTrip()
	side := domain.SideParty

	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.mockLedgerRepo.On("ListAdvances", ctx, "trip-1", &side).Return([]domain.Advance{
		{TripID: "trip-1", Side: domain.SideParty, Amount: decimal.NewFromInt(100)},
	}, nil).Once()

	advances, err := suite.service.ListAdvances(ctx, "trip-1", dto.ListTransactionsParams{Side: &side})

	suite.Require().NoError(err)
	suite.Len(advances, 1)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
