package models

// Supplier is the database shape of a vehicle owner.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	ContactNo  string `db:"contact_no"` // Nullable
	AuditFields
}

// Vehicle is the database shape of a supplier's truck.
type Vehicle struct {
	VehicleID  string `db:"vehicle_id"`
	SupplierID string `db:"supplier_id"`
	VehicleNo  string `db:"vehicle_no"`
	AuditFields
}
