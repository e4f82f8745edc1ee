package domain_test

import (
	"testing"

	"github.com/freightbooks/freight_ledger_app/internal/apperrors"
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validAdvance() domain.Advance {
	return domain.Advance{
		AdvanceID:   "adv-1",
		TripID:      "trip-1",
		Side:        domain.SideParty,
		Amount:      decimal.NewFromInt(500),
		PaymentMode: domain.ModeUPI,
	}
}

func TestAdvance_Validate(t *testing.T) {
	assert.NoError(t, validAdvance().Validate())

	missingTrip := validAdvance()
	missingTrip.TripID = ""
	assert.ErrorIs(t, missingTrip.Validate(), apperrors.ErrValidation)

	badSide := validAdvance()
	badSide.Side = "broker"
	assert.ErrorIs(t, badSide.Validate(), apperrors.ErrValidation)

	zeroAmount := validAdvance()
	zeroAmount.Amount = decimal.Zero
	assert.ErrorIs(t, zeroAmount.Validate(), apperrors.ErrValidation)

	negativeAmount := validAdvance()
	negativeAmount.Amount = decimal.NewFromInt(-10)
	assert.ErrorIs(t, negativeAmount.Validate(), apperrors.ErrValidation)

	badMode := validAdvance()
	badMode.PaymentMode = "Barter"
	assert.ErrorIs(t, badMode.Validate(), apperrors.ErrValidation)
}

func TestCharge_Validate(t *testing.T) {
	valid := domain.Charge{
		ChargeID:     "chg-1",
		TripID:       "trip-1",
		Side:         domain.SideSupplier,
		ChargeTypeID: "ct-1",
		Operation:    domain.OperationDeduct,
		Amount:       decimal.NewFromInt(100),
	}
	assert.NoError(t, valid.Validate())

	missingType := valid
	missingType.ChargeTypeID = ""
	assert.ErrorIs(t, missingType.Validate(), apperrors.ErrValidation)

	badOperation := valid
	badOperation.Operation = "multiply"
	assert.ErrorIs(t, badOperation.Validate(), apperrors.ErrValidation)

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	assert.ErrorIs(t, zeroAmount.Validate(), apperrors.ErrValidation)
}

func TestBalancePayment_Validate(t *testing.T) {
	valid := domain.BalancePayment{
		BalancePaymentID: "bp-1",
		TripID:           "trip-1",
		Side:             domain.SideParty,
		Amount:           decimal.NewFromInt(2500),
		PaymentMode:      domain.ModeBank,
	}
	assert.NoError(t, valid.Validate())

	missingTrip := valid
	missingTrip.TripID = ""
	assert.ErrorIs(t, missingTrip.Validate(), apperrors.ErrValidation)

	badSide := valid
	badSide.Side = ""
	assert.ErrorIs(t, badSide.Validate(), apperrors.ErrValidation)

	badMode := valid
	badMode.PaymentMode = "IOU"
	assert.ErrorIs(t, badMode.Validate(), apperrors.ErrValidation)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, domain.SideParty.Valid())
	assert.True(t, domain.SideSupplier.Valid())
	assert.False(t, domain.TransactionSide("").Valid())

	for _, m := range []domain.PaymentMode{domain.ModeUPI, domain.ModeCash, domain.ModeBank, domain.ModeCheque, domain.ModeFuel, domain.ModeOthers} {
		assert.True(t, m.Valid())
	}
	assert.False(t, domain.PaymentMode("Gold").Valid())

	assert.True(t, domain.OperationAdd.Valid())
	assert.True(t, domain.OperationDeduct.Valid())
	assert.False(t, domain.ChargeOperation("divide").Valid())
}
