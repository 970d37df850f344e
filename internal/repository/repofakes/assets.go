package repofakes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository"
)

// FakeAssetRepo is an in-memory AssetRepository for tests. It enforces
// the unique code and serial-number constraints.
type FakeAssetRepo struct {
	mu     sync.Mutex
	seq    int
	assets map[string]domain.Asset
}

// NewFakeAssetRepo builds an empty fake.
func NewFakeAssetRepo() *FakeAssetRepo {
	return &FakeAssetRepo{assets: make(map[string]domain.Asset)}
}

func (f *FakeAssetRepo) Create(_ context.Context, asset *domain.Asset) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.assets {
		if existing.Code == asset.Code {
			return &repository.UniqueViolationError{Field: "code"}
		}
		if existing.SerialNumber != nil && asset.SerialNumber != nil && *existing.SerialNumber == *asset.SerialNumber {
			return &repository.UniqueViolationError{Field: "serialNumber"}
		}
	}

	f.seq++
	now := time.Now()
	asset.ID = fmt.Sprintf("asset-%d", f.seq)
	asset.CreatedAt = now
	asset.UpdatedAt = now
	f.assets[asset.ID] = *asset
	return nil
}

func (f *FakeAssetRepo) GetByID(_ context.Context, id string) (*domain.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	asset, ok := f.assets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &asset, nil
}

func (f *FakeAssetRepo) List(_ context.Context) ([]*domain.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	assets := make([]*domain.Asset, 0, len(f.assets))
	for _, asset := range f.assets {
		a := asset
		assets = append(assets, &a)
	}
	return assets, nil
}

func (f *FakeAssetRepo) Update(_ context.Context, asset *domain.Asset) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.assets[asset.ID]; !ok {
		return repository.ErrNotFound
	}
	updated := *asset
	updated.UpdatedAt = time.Now()
	f.assets[asset.ID] = updated
	return nil
}

func (f *FakeAssetRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.assets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.assets, id)
	return nil
}

var _ repository.AssetRepository = (*FakeAssetRepo)(nil)
