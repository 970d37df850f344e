package domain

import "time"

// AssetStatus represents inventory lifecycle states.
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusAssigned    AssetStatus = "assigned"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

// AssetCondition grades physical state.
type AssetCondition string

const (
	AssetConditionExcellent AssetCondition = "excellent"
	AssetConditionGood      AssetCondition = "good"
	AssetConditionFair      AssetCondition = "fair"
	AssetConditionPoor      AssetCondition = "poor"
)

// Asset is a tracked inventory item. Code is unique; SerialNumber is
// unique when present.
type Asset struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category"`
	Status      AssetStatus `json:"status"`
	AssignedTo  *string     `json:"assignedTo,omitempty"`

	PurchaseDate  time.Time `json:"purchaseDate"`
	PurchasePrice float64   `json:"purchasePrice"`
	Supplier      string    `json:"supplier"`

	Location     string         `json:"location"`
	Condition    AssetCondition `json:"condition"`
	SerialNumber *string        `json:"serialNumber,omitempty"`

	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate *time.Time `json:"nextMaintenanceDate,omitempty"`
	WarrantyExpiry      *time.Time `json:"warrantyExpiry,omitempty"`

	Tags []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
