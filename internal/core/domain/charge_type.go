package domain

// ChargeType is a named category of charge (Detention, Loading, ...).
// Built-in and user-created ("custom") types behave identically in
// aggregation; the flag only drives display grouping.
type ChargeType struct {
	ChargeTypeID string `json:"chargeTypeID"`
	Name         string `json:"name"`
	IsCustom     bool   `json:"isCustom"`
	AuditFields
}
