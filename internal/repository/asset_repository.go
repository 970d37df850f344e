package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// AssetRepository defines persistence access for inventory assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id string) (*domain.Asset, error)
	List(ctx context.Context) ([]*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id string) error
}

type assetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository returns a Postgres-backed implementation.
func NewAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &assetRepository{pool: pool}
}

const assetColumns = `
	id, code, name, description, category, status, assigned_to,
	purchase_date, purchase_price, supplier,
	location, condition, serial_number,
	last_maintenance_date, next_maintenance_date, warranty_expiry,
	tags, created_at, updated_at`

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var a domain.Asset
	if err := row.Scan(
		&a.ID, &a.Code, &a.Name, &a.Description, &a.Category, &a.Status, &a.AssignedTo,
		&a.PurchaseDate, &a.PurchasePrice, &a.Supplier,
		&a.Location, &a.Condition, &a.SerialNumber,
		&a.LastMaintenanceDate, &a.NextMaintenanceDate, &a.WarrantyExpiry,
		&a.Tags, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	const query = `
        INSERT INTO assets (
            code, name, description, category, status, assigned_to,
            purchase_date, purchase_price, supplier,
            location, condition, serial_number,
            last_maintenance_date, next_maintenance_date, warranty_expiry, tags
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		asset.Code, asset.Name, asset.Description, asset.Category, asset.Status, asset.AssignedTo,
		asset.PurchaseDate, asset.PurchasePrice, asset.Supplier,
		asset.Location, asset.Condition, asset.SerialNumber,
		asset.LastMaintenanceDate, asset.NextMaintenanceDate, asset.WarrantyExpiry, asset.Tags,
	).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	return translate(err)
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	query := `SELECT` + assetColumns + ` FROM assets WHERE id=$1`
	return scanAsset(r.pool.QueryRow(ctx, query, id))
}

func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	query := `SELECT` + assetColumns + ` FROM assets ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, translate(rows.Err())
}

func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	const query = `
        UPDATE assets SET
            code=$1, name=$2, description=$3, category=$4, status=$5, assigned_to=$6,
            purchase_date=$7, purchase_price=$8, supplier=$9,
            location=$10, condition=$11, serial_number=$12,
            last_maintenance_date=$13, next_maintenance_date=$14, warranty_expiry=$15,
            tags=$16, updated_at=NOW()
        WHERE id=$17`

	cmd, err := r.pool.Exec(ctx, query,
		asset.Code, asset.Name, asset.Description, asset.Category, asset.Status, asset.AssignedTo,
		asset.PurchaseDate, asset.PurchasePrice, asset.Supplier,
		asset.Location, asset.Condition, asset.SerialNumber,
		asset.LastMaintenanceDate, asset.NextMaintenanceDate, asset.WarrantyExpiry,
		asset.Tags, asset.ID,
	)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
