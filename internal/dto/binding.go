package dto

import (
	"github.com/freightbooks/freight_ledger_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterBindingValidations installs the ledger enum validations referenced
// by the binding tags in this package. The validator dereferences pointer
// fields before the check runs, so the same tags cover both required body
// fields and optional query filters.
func RegisterBindingValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("transactionside", func(fl validator.FieldLevel) bool {
		return domain.TransactionSide(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("paymentmode", func(fl validator.FieldLevel) bool {
		return domain.PaymentMode(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("chargeoperation", func(fl validator.FieldLevel) bool {
		return domain.ChargeOperation(fl.Field().String()).Valid()
	})
}
