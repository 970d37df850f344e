package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository/repofakes"
	"github.com/spec-kit/sunday-school-service/internal/service"
)

func validAsset() *domain.Asset {
	return &domain.Asset{
		Name:         "Projector",
		Category:     "electronics",
		Supplier:     "Tana Electronics",
		Location:     "Main hall",
		PurchaseDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAssetGeneratesCode(t *testing.T) {
	svc := service.NewAssetService(repofakes.NewFakeAssetRepo())

	asset := validAsset()
	require.NoError(t, svc.Create(context.Background(), asset))
	require.True(t, strings.HasPrefix(asset.Code, "AST-"))
	require.Len(t, asset.Code, 12)
	require.Equal(t, domain.AssetStatusAvailable, asset.Status)
	require.Equal(t, domain.AssetConditionGood, asset.Condition)
}

func TestCreateAssetValidation(t *testing.T) {
	svc := service.NewAssetService(repofakes.NewFakeAssetRepo())

	err := svc.Create(context.Background(), &domain.Asset{})
	de := requireDomainError(t, err, 400)
	require.Contains(t, de.Details, "name")
	require.Contains(t, de.Details, "supplier")
	require.Contains(t, de.Details, "purchaseDate")
}

func TestCreateAssetDuplicateCode(t *testing.T) {
	svc := service.NewAssetService(repofakes.NewFakeAssetRepo())

	first := validAsset()
	first.Code = "AST-BOOKS001"
	require.NoError(t, svc.Create(context.Background(), first))

	second := validAsset()
	second.Code = "AST-BOOKS001"
	err := svc.Create(context.Background(), second)
	de := requireDomainError(t, err, 409)
	require.Equal(t, "code already exists", de.Message)
}

func TestCreateAssetDuplicateSerialNumber(t *testing.T) {
	svc := service.NewAssetService(repofakes.NewFakeAssetRepo())

	serial := "SN-778899"
	first := validAsset()
	first.SerialNumber = &serial
	require.NoError(t, svc.Create(context.Background(), first))

	second := validAsset()
	second.SerialNumber = &serial
	err := svc.Create(context.Background(), second)
	requireDomainError(t, err, 409)
}

func TestAssetLifecycle(t *testing.T) {
	svc := service.NewAssetService(repofakes.NewFakeAssetRepo())

	asset := validAsset()
	require.NoError(t, svc.Create(context.Background(), asset))

	asset.Name = "HD Projector"
	updated, err := svc.Update(context.Background(), asset)
	require.NoError(t, err)
	require.Equal(t, "HD Projector", updated.Name)

	require.NoError(t, svc.Delete(context.Background(), asset.ID))
	_, err = svc.Get(context.Background(), asset.ID)
	requireDomainError(t, err, 404)
}
