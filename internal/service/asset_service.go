package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// AssetService manages the inventory.
type AssetService struct {
	assets repository.AssetRepository
}

// NewAssetService builds the service.
func NewAssetService(assets repository.AssetRepository) *AssetService {
	return &AssetService{assets: assets}
}

// List returns all assets, newest first.
func (s *AssetService) List(ctx context.Context) ([]*domain.Asset, error) {
	return s.assets.List(ctx)
}

// Get fetches a single asset.
func (s *AssetService) Get(ctx context.Context, id string) (*domain.Asset, error) {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Asset")
	}
	return asset, nil
}

// Create registers an asset. A code is generated when none is supplied;
// a colliding code or serial number surfaces as a conflict.
func (s *AssetService) Create(ctx context.Context, asset *domain.Asset) error {
	details := map[string]any{}
	if asset.Name == "" {
		details["name"] = "name is required"
	}
	if asset.Category == "" {
		details["category"] = "category is required"
	}
	if asset.Supplier == "" {
		details["supplier"] = "supplier is required"
	}
	if asset.Location == "" {
		details["location"] = "location is required"
	}
	if asset.PurchaseDate.IsZero() {
		details["purchaseDate"] = "purchaseDate is required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Validation failed", details)
	}

	if asset.Code == "" {
		asset.Code = generateAssetCode()
	}
	if asset.Status == "" {
		asset.Status = domain.AssetStatusAvailable
	}
	if asset.Condition == "" {
		asset.Condition = domain.AssetConditionGood
	}

	return mapRepoError(s.assets.Create(ctx, asset), "Asset")
}

// Update replaces an asset's record.
func (s *AssetService) Update(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, mapRepoError(err, "Asset")
	}
	updated, err := s.assets.GetByID(ctx, asset.ID)
	if err != nil {
		return nil, mapRepoError(err, "Asset")
	}
	return updated, nil
}

// Delete removes an asset.
func (s *AssetService) Delete(ctx context.Context, id string) error {
	return mapRepoError(s.assets.Delete(ctx, id), "Asset")
}

func generateAssetCode() string {
	return "AST-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
