package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

var _ repository.TemperatureRepository = (*TemperatureRepo)(nil)

// TemperatureRepo implements the TemperatureRepository port on PostgreSQL.
// Values are NUMERIC columns scanned into shopspring decimals via the codec
// registered on the pool.
type TemperatureRepo struct {
	pool *pgxpool.Pool
}

func NewTemperatureRepository(pool *pgxpool.Pool) *TemperatureRepo {
	return &TemperatureRepo{pool: pool}
}

const tempColumns = `id, location_id, type, value, unit_id, food_item_id, supplier_id, out_of_range, corrective_action, recorded_by, recorded_at`

func (r *TemperatureRepo) Create(ctx context.Context, rec *entity.TemperatureRecord) error {
	query := `
		INSERT INTO temperature_records (` + tempColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.LocationID, rec.Type, rec.Value,
		nullUUID(rec.UnitID), nullUUID(rec.FoodItemID), nullUUID(rec.SupplierID),
		rec.OutOfRange, rec.CorrectiveAction, rec.RecordedBy, rec.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert temperature: %w", err)
	}
	return nil
}

func (r *TemperatureRepo) GetByID(ctx context.Context, id string) (*entity.TemperatureRecord, error) {
	query := `SELECT ` + tempColumns + ` FROM temperature_records WHERE id = $1`
	var (
		rec        entity.TemperatureRecord
		unitID     *string
		foodItemID *string
		supplierID *string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.LocationID, &rec.Type, &rec.Value,
		&unitID, &foodItemID, &supplierID,
		&rec.OutOfRange, &rec.CorrectiveAction, &rec.RecordedBy, &rec.RecordedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get temperature: %w", err)
	}
	rec.UnitID = deref(unitID)
	rec.FoodItemID = deref(foodItemID)
	rec.SupplierID = deref(supplierID)
	return &rec, nil
}

func (r *TemperatureRepo) ListByLocationBetween(ctx context.Context, locationID string, start, end time.Time) ([]*entity.TemperatureRecord, error) {
	query := `
		SELECT ` + tempColumns + ` FROM temperature_records
		WHERE location_id = $1 AND recorded_at >= $2 AND recorded_at < $3
		ORDER BY recorded_at DESC`
	rows, err := r.pool.Query(ctx, query, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list temperatures: %w", err)
	}
	defer rows.Close()

	var list []*entity.TemperatureRecord
	for rows.Next() {
		var (
			rec        entity.TemperatureRecord
			unitID     *string
			foodItemID *string
			supplierID *string
		)
		if err := rows.Scan(
			&rec.ID, &rec.LocationID, &rec.Type, &rec.Value,
			&unitID, &foodItemID, &supplierID,
			&rec.OutOfRange, &rec.CorrectiveAction, &rec.RecordedBy, &rec.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan temperature: %w", err)
		}
		rec.UnitID = deref(unitID)
		rec.FoodItemID = deref(foodItemID)
		rec.SupplierID = deref(supplierID)
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func (r *TemperatureRepo) UpdateCorrectiveAction(ctx context.Context, id, note string) error {
	query := `UPDATE temperature_records SET corrective_action = $2 WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id, note); err != nil {
		return fmt.Errorf("update corrective action: %w", err)
	}
	return nil
}
