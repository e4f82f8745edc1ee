package services_test

import (
	"context"
	"testing"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	portssvc "github.com/freightbooks/freight_ledger_app/internal/core/ports/services"
	"github.com/freightbooks/freight_ledger_app/internal/core/services"
	"github.com/freightbooks/freight_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChargeTypeServiceTestSuite struct {
	suite.Suite
	mockChargeTypeRepo *MockChargeTypeRepository
	service            portssvc.ChargeTypeSvcFacade
}

func (suite *ChargeTypeServiceTestSuite) SetupTest() {
	suite.mockChargeTypeRepo = new(MockChargeTypeRepository)
	suite.service = services.NewChargeTypeService(suite.mockChargeTypeRepo)
}

func (suite *ChargeTypeServiceTestSuite) TestCreateChargeType_Success() {
	ctx := context.Background()

	suite.mockChargeTypeRepo.On("FindChargeTypeByName", ctx, "Detention").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockChargeTypeRepo.On("SaveChargeType", ctx, mock.AnythingOfType("domain.ChargeType")).Return(nil).Once()

	chargeType, err := suite.service.CreateChargeType(ctx, dto.CreateChargeTypeRequest{Name: "  Detention  ", IsCustom: true}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(chargeType)
	suite.NotEmpty(chargeType.ChargeTypeID)
	suite.Equal("Detention", chargeType.Name)
	suite.True(chargeType.IsCustom)
	suite.mockChargeTypeRepo.AssertExpectations(suite.T())
}

func (suite *ChargeTypeServiceTestSuite) TestCreateChargeType_DuplicateName() {
	ctx := context.Background()
	existing := &domain.ChargeType{ChargeTypeID: "ct-1", Name: "Halting"}

	suite.mockChargeTypeRepo.On("FindChargeTypeByName", ctx, "Halting").Return(existing, nil).Once()

	chargeType, err := suite.service.CreateChargeType(ctx, dto.CreateChargeTypeRequest{Name: "Halting", IsCustom: true}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(chargeType)
	suite.mockChargeTypeRepo.AssertNotCalled(suite.T(), "SaveChargeType", mock.Anything, mock.Anything)
}

func (suite *ChargeTypeServiceTestSuite) TestCreateChargeType_DuplicateFromStore() {
	ctx := context.Background()

	suite.mockChargeTypeRepo.On("FindChargeTypeByName", ctx, "Hamali").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockChargeTypeRepo.On("SaveChargeType", ctx, mock.AnythingOfType("domain.ChargeType")).Return(apperrors.ErrDuplicate).Once()

	chargeType, err := suite.service.CreateChargeType(ctx, dto.CreateChargeTypeRequest{Name: "Hamali", IsCustom: true}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(chargeType)
}

func (suite *ChargeTypeServiceTestSuite) TestCreateChargeType_BlankName() {
	ctx := context.Background()

	chargeType, err := suite.service.CreateChargeType(ctx, dto.CreateChargeTypeRequest{Name: "   "}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(chargeType)
	suite.mockChargeTypeRepo.AssertNotCalled(suite.T(), "FindChargeTypeByName", mock.Anything, mock.Anything)
}

func (suite *ChargeTypeServiceTestSuite) TestGetChargeTypeByID_NotFound() {
	ctx := context.Background()
	suite.mockChargeTypeRepo.On("FindChargeTypeByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	chargeType, err := suite.service.GetChargeTypeByID(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(chargeType)
}

func (suite *ChargeTypeServiceTestSuite) TestListChargeTypes() {
	ctx := context.Background()
	suite.mockChargeTypeRepo.On("ListChargeTypes", ctx).Return([]domain.ChargeType{
		{ChargeTypeID: "ct-1", Name: "Halting"},
		{ChargeTypeID: "ct-2", Name: "Hamali"},
	}, nil).Once()

	chargeTypes, err := suite.service.ListChargeTypes(ctx)

	suite.Require().NoError(err)
	suite.Len(chargeTypes, 2)
}

func TestChargeTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChargeTypeServiceTestSuite))
}
