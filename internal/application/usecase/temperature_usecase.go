package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

// TemperatureUseCase records probe readings and serves the service-day view.
// Safety classification happens here at write time, so a later change to the
// thresholds never reclassifies history.
type TemperatureUseCase struct {
	tempRepo     repository.TemperatureRepository
	locationRepo repository.LocationRepository
	now          func() time.Time
}

func NewTemperatureUseCase(tempRepo repository.TemperatureRepository, locationRepo repository.LocationRepository) *TemperatureUseCase {
	return &TemperatureUseCase{tempRepo: tempRepo, locationRepo: locationRepo, now: time.Now}
}

// Record logs a reading. The caller must hold the record-temperatures
// capability and have access to the location. Exactly one reference id must
// be set and it must match the reading type.
func (uc *TemperatureUseCase) Record(ctx context.Context, scope rbac.Scope, userID string, in dto.RecordTemperatureRequest) (*dto.TemperatureResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapRecordTemperatures) {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidTemperatureType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if err := validateReference(in); err != nil {
		return nil, err
	}

	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return nil, domain.ErrLocationDenied
	}

	rec := &entity.TemperatureRecord{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		Type:       in.Type,
		Value:      in.Value,
		UnitID:     in.UnitID,
		FoodItemID: in.FoodItemID,
		SupplierID: in.SupplierID,
		OutOfRange: entity.IsUnsafeTemperature(in.Type, in.Value),
		RecordedBy: userID,
		RecordedAt: uc.now(),
	}
	if err := uc.tempRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return toTemperatureResponse(rec), nil
}

// ListDay returns a location's readings for the service day containing the
// current time. The kitchen day rolls over at 02:00, not midnight.
func (uc *TemperatureUseCase) ListDay(ctx context.Context, scope rbac.Scope, locationID string) (*dto.TemperatureListResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapViewAllRecords) {
		return nil, domain.ErrForbidden
	}
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return nil, domain.ErrLocationDenied
	}

	start, end := entity.ServiceDay(uc.now())
	recs, err := uc.tempRepo.ListByLocationBetween(ctx, locationID, start, end)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemperatureResponse, 0, len(recs))
	for _, r := range recs {
		items = append(items, *toTemperatureResponse(r))
	}
	return &dto.TemperatureListResponse{Items: items, DayStart: start, DayEnd: end}, nil
}

// AddCorrectiveAction attaches a follow-up note to an unsafe reading.
func (uc *TemperatureUseCase) AddCorrectiveAction(ctx context.Context, scope rbac.Scope, id string, in dto.CorrectiveActionRequest) (*dto.TemperatureResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapRecordTemperatures) {
		return nil, domain.ErrForbidden
	}
	if in.Note == "" {
		return nil, domain.ErrInvalidInput
	}
	rec, err := uc.tempRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	loc, err := uc.locationRepo.GetByID(ctx, rec.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return nil, domain.ErrLocationDenied
	}
	if !rec.OutOfRange {
		return nil, domain.ErrConflict
	}
	if err := uc.tempRepo.UpdateCorrectiveAction(ctx, id, in.Note); err != nil {
		return nil, err
	}
	rec.CorrectiveAction = in.Note
	return toTemperatureResponse(rec), nil
}

// validateReference enforces the type/reference pairing: fridge and freezer
// readings name a unit, food readings a food item, deliveries a supplier.
func validateReference(in dto.RecordTemperatureRequest) error {
	switch in.Type {
	case entity.TempFridge, entity.TempFreezer:
		if in.UnitID == "" || in.FoodItemID != "" || in.SupplierID != "" {
			return domain.ErrInvalidInput
		}
	case entity.TempFood:
		if in.FoodItemID == "" || in.UnitID != "" || in.SupplierID != "" {
			return domain.ErrInvalidInput
		}
	case entity.TempDelivery:
		if in.SupplierID == "" || in.UnitID != "" || in.FoodItemID != "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toTemperatureResponse(r *entity.TemperatureRecord) *dto.TemperatureResponse {
	return &dto.TemperatureResponse{
		ID:               r.ID,
		LocationID:       r.LocationID,
		Type:             r.Type,
		Value:            r.Value,
		UnitID:           r.UnitID,
		FoodItemID:       r.FoodItemID,
		SupplierID:       r.SupplierID,
		OutOfRange:       r.OutOfRange,
		CorrectiveAction: r.CorrectiveAction,
		RecordedBy:       r.RecordedBy,
		RecordedAt:       r.RecordedAt,
	}
}
