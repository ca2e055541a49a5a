package usecase_test

import (
	"context"
	"time"

	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
)

const (
	companyA  = "aaaaaaaa-0000-0000-0000-000000000001"
	companyB  = "bbbbbbbb-0000-0000-0000-000000000002"
	locationA = "aaaaaaaa-1111-0000-0000-000000000001"
	locationB = "aaaaaaaa-1111-0000-0000-000000000002"
)

func adminScope(companyID string) rbac.Scope {
	return rbac.Scope{Role: rbac.RoleCompanyAdmin, CompanyID: companyID}
}

func opsScope(companyID string) rbac.Scope {
	return rbac.Scope{Role: rbac.RoleOps, CompanyID: companyID}
}

func managerScope(companyID string, locationIDs ...string) rbac.Scope {
	return rbac.Scope{Role: rbac.RoleManager, CompanyID: companyID, LocationIDs: locationIDs}
}

func superScope() rbac.Scope {
	return rbac.Scope{Role: rbac.RoleSuperUser}
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}
func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}
func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}
func (r *memUserRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUserRepo) ListAll(_ context.Context, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type memLocationRepo struct {
	locations map[string]*entity.Location
}

func newMemLocationRepo(locs ...*entity.Location) *memLocationRepo {
	r := &memLocationRepo{locations: map[string]*entity.Location{}}
	for _, l := range locs {
		r.locations[l.ID] = l
	}
	return r
}

func (r *memLocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.locations[l.ID] = l
	return nil
}
func (r *memLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.locations[id], nil
}
func (r *memLocationRepo) Update(_ context.Context, l *entity.Location) error {
	r.locations[l.ID] = l
	return nil
}
func (r *memLocationRepo) Delete(_ context.Context, id string) error {
	delete(r.locations, id)
	return nil
}
func (r *memLocationRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locations {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *memLocationRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, id := range ids {
		if l, ok := r.locations[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func twoLocations() *memLocationRepo {
	return newMemLocationRepo(
		&entity.Location{ID: locationA, CompanyID: companyA, Name: "High Street"},
		&entity.Location{ID: locationB, CompanyID: companyA, Name: "Riverside"},
	)
}

type memTemperatureRepo struct {
	records map[string]*entity.TemperatureRecord
}

func newMemTemperatureRepo() *memTemperatureRepo {
	return &memTemperatureRepo{records: map[string]*entity.TemperatureRecord{}}
}

func (r *memTemperatureRepo) Create(_ context.Context, rec *entity.TemperatureRecord) error {
	r.records[rec.ID] = rec
	return nil
}
func (r *memTemperatureRepo) GetByID(_ context.Context, id string) (*entity.TemperatureRecord, error) {
	return r.records[id], nil
}
func (r *memTemperatureRepo) ListByLocationBetween(_ context.Context, locationID string, start, end time.Time) ([]*entity.TemperatureRecord, error) {
	var out []*entity.TemperatureRecord
	for _, rec := range r.records {
		if rec.LocationID != locationID {
			continue
		}
		if rec.RecordedAt.Before(start) || !rec.RecordedAt.Before(end) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
func (r *memTemperatureRepo) UpdateCorrectiveAction(_ context.Context, id, note string) error {
	if rec, ok := r.records[id]; ok {
		rec.CorrectiveAction = note
	}
	return nil
}

type memChecklistRepo struct {
	checklists  map[string]*entity.Checklist
	completions map[string]*entity.SubtaskCompletion // keyed subtask|user|date
}

func newMemChecklistRepo() *memChecklistRepo {
	return &memChecklistRepo{
		checklists:  map[string]*entity.Checklist{},
		completions: map[string]*entity.SubtaskCompletion{},
	}
}

func completionKey(subtaskID, userID string, date time.Time) string {
	return subtaskID + "|" + userID + "|" + date.Format("2006-01-02")
}

func (r *memChecklistRepo) Create(_ context.Context, cl *entity.Checklist) error {
	r.checklists[cl.ID] = cl
	return nil
}
func (r *memChecklistRepo) GetByID(_ context.Context, id string) (*entity.Checklist, error) {
	return r.checklists[id], nil
}
func (r *memChecklistRepo) Update(_ context.Context, cl *entity.Checklist) error {
	r.checklists[cl.ID] = cl
	return nil
}
func (r *memChecklistRepo) Delete(_ context.Context, id string) error {
	delete(r.checklists, id)
	return nil
}
func (r *memChecklistRepo) ListByLocation(_ context.Context, locationID string) ([]*entity.Checklist, error) {
	var out []*entity.Checklist
	for _, cl := range r.checklists {
		if cl.LocationID == locationID {
			out = append(out, cl)
		}
	}
	return out, nil
}
func (r *memChecklistRepo) UpsertCompletion(_ context.Context, c *entity.SubtaskCompletion) error {
	r.completions[completionKey(c.SubtaskID, c.UserID, c.Date)] = c
	return nil
}
func (r *memChecklistRepo) ListCompletionsByUserDate(_ context.Context, userID string, date time.Time) ([]string, error) {
	var out []string
	day := date.Format("2006-01-02")
	for _, c := range r.completions {
		if c.UserID == userID && c.Date.Format("2006-01-02") == day && c.Completed {
			out = append(out, c.SubtaskID)
		}
	}
	return out, nil
}
func (r *memChecklistRepo) ListCompletionsBetween(_ context.Context, locationID string, start, end time.Time) ([]*entity.SubtaskCompletion, error) {
	var out []*entity.SubtaskCompletion
	for _, c := range r.completions {
		if c.LocationID != locationID {
			continue
		}
		if c.Date.Before(start) || !c.Date.Before(end) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type memReferenceRepo struct {
	units     map[string]*entity.ApplianceUnit
	foodItems map[string]*entity.FoodItem
	suppliers map[string]*entity.Supplier
}

func newMemReferenceRepo() *memReferenceRepo {
	return &memReferenceRepo{
		units:     map[string]*entity.ApplianceUnit{},
		foodItems: map[string]*entity.FoodItem{},
		suppliers: map[string]*entity.Supplier{},
	}
}

func (r *memReferenceRepo) CreateUnit(_ context.Context, u *entity.ApplianceUnit) error {
	r.units[u.ID] = u
	return nil
}
func (r *memReferenceRepo) ListUnitsByLocation(_ context.Context, locationID string) ([]*entity.ApplianceUnit, error) {
	var out []*entity.ApplianceUnit
	for _, u := range r.units {
		if u.LocationID == locationID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memReferenceRepo) DeleteUnit(_ context.Context, id string) error {
	delete(r.units, id)
	return nil
}
func (r *memReferenceRepo) CreateFoodItem(_ context.Context, it *entity.FoodItem) error {
	r.foodItems[it.ID] = it
	return nil
}
func (r *memReferenceRepo) ListFoodItemsByCompany(_ context.Context, companyID string) ([]*entity.FoodItem, error) {
	var out []*entity.FoodItem
	for _, it := range r.foodItems {
		if it.CompanyID == companyID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memReferenceRepo) DeleteFoodItem(_ context.Context, id string) error {
	delete(r.foodItems, id)
	return nil
}
func (r *memReferenceRepo) CreateSupplier(_ context.Context, s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}
func (r *memReferenceRepo) ListSuppliersByLocation(_ context.Context, locationID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memReferenceRepo) DeleteSupplier(_ context.Context, id string) error {
	delete(r.suppliers, id)
	return nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo(cs ...*entity.Company) *memCompanyRepo {
	r := &memCompanyRepo{companies: map[string]*entity.Company{}}
	for _, c := range cs {
		r.companies[c.ID] = c
	}
	return r
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}
func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *memCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}
func (r *memCompanyRepo) Delete(_ context.Context, id string) error {
	delete(r.companies, id)
	return nil
}
func (r *memCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}
