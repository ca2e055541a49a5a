package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo implements the ReferenceRepository port on PostgreSQL.
type ReferenceRepo struct {
	pool *pgxpool.Pool
}

func NewReferenceRepository(pool *pgxpool.Pool) *ReferenceRepo {
	return &ReferenceRepo{pool: pool}
}

func (r *ReferenceRepo) CreateUnit(ctx context.Context, u *entity.ApplianceUnit) error {
	query := `INSERT INTO appliance_units (id, location_id, name, type, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.pool.Exec(ctx, query, u.ID, u.LocationID, u.Name, u.Type, u.CreatedAt); err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

func (r *ReferenceRepo) ListUnitsByLocation(ctx context.Context, locationID string) ([]*entity.ApplianceUnit, error) {
	query := `SELECT id, location_id, name, type, created_at FROM appliance_units WHERE location_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var list []*entity.ApplianceUnit
	for rows.Next() {
		var u entity.ApplianceUnit
		if err := rows.Scan(&u.ID, &u.LocationID, &u.Name, &u.Type, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *ReferenceRepo) DeleteUnit(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM appliance_units WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

func (r *ReferenceRepo) CreateFoodItem(ctx context.Context, it *entity.FoodItem) error {
	query := `INSERT INTO food_items (id, company_id, name, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, it.ID, it.CompanyID, it.Name, it.CreatedAt); err != nil {
		return fmt.Errorf("insert food item: %w", err)
	}
	return nil
}

func (r *ReferenceRepo) ListFoodItemsByCompany(ctx context.Context, companyID string) ([]*entity.FoodItem, error) {
	query := `SELECT id, company_id, name, created_at FROM food_items WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	defer rows.Close()

	var list []*entity.FoodItem
	for rows.Next() {
		var it entity.FoodItem
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.Name, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *ReferenceRepo) DeleteFoodItem(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete food item: %w", err)
	}
	return nil
}

func (r *ReferenceRepo) CreateSupplier(ctx context.Context, s *entity.Supplier) error {
	query := `INSERT INTO suppliers (id, location_id, name, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, s.ID, s.LocationID, s.Name, s.CreatedAt); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *ReferenceRepo) ListSuppliersByLocation(ctx context.Context, locationID string) ([]*entity.Supplier, error) {
	query := `SELECT id, location_id, name, created_at FROM suppliers WHERE location_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.LocationID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *ReferenceRepo) DeleteSupplier(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
