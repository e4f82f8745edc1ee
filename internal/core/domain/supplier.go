package domain

// Supplier is a vehicle owner who is paid the supplier-side freight.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	ContactNo  string `json:"contactNo"`
	AuditFields
}

// Vehicle is a truck belonging to a supplier.
type Vehicle struct {
	VehicleID  string `json:"vehicleID"`
	SupplierID string `json:"supplierID"`
	VehicleNo  string `json:"vehicleNo"`
	AuditFields
}
