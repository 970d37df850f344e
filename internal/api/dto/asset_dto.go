package dto

import (
	"time"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// AssetRequest payload for creating or replacing an asset.
type AssetRequest struct {
	Code                string                `json:"code"`
	Name                string                `json:"name"`
	Description         string                `json:"description"`
	Category            string                `json:"category"`
	Status              domain.AssetStatus    `json:"status"`
	AssignedTo          *string               `json:"assignedTo"`
	PurchaseDate        time.Time             `json:"purchaseDate"`
	PurchasePrice       float64               `json:"purchasePrice"`
	Supplier            string                `json:"supplier"`
	Location            string                `json:"location"`
	Condition           domain.AssetCondition `json:"condition"`
	SerialNumber        *string               `json:"serialNumber"`
	LastMaintenanceDate *time.Time            `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time            `json:"nextMaintenanceDate"`
	WarrantyExpiry      *time.Time            `json:"warrantyExpiry"`
	Tags                []string              `json:"tags"`
}

// ToDomain builds the domain asset.
func (r *AssetRequest) ToDomain() *domain.Asset {
	return &domain.Asset{
		Code:                r.Code,
		Name:                r.Name,
		Description:         r.Description,
		Category:            r.Category,
		Status:              r.Status,
		AssignedTo:          r.AssignedTo,
		PurchaseDate:        r.PurchaseDate,
		PurchasePrice:       r.PurchasePrice,
		Supplier:            r.Supplier,
		Location:            r.Location,
		Condition:           r.Condition,
		SerialNumber:        r.SerialNumber,
		LastMaintenanceDate: r.LastMaintenanceDate,
		NextMaintenanceDate: r.NextMaintenanceDate,
		WarrantyExpiry:      r.WarrantyExpiry,
		Tags:                r.Tags,
	}
}
