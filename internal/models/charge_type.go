package models

// ChargeType is the database shape of a charge category.
type ChargeType struct {
	ChargeTypeID string `db:"charge_type_id"`
	Name         string `db:"name"`
	IsCustom     bool   `db:"is_custom"`
	AuditFields
}
